package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List popular manga",
	Long:  "List the highest rated manga with available chapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, err := newController()
		if err != nil {
			return err
		}
		titles, err := controller.ListTrending(cmd.Context())
		if err != nil {
			return err
		}

		if len(titles) == 0 {
			fmt.Println("No manga found.")
			return nil
		}

		fmt.Println(titlesTable(titles))
		return nil
	},
}
