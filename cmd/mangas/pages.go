package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [chapter-id]",
	Short: "Print the page URLs of a chapter",
	Long:  "Resolve a chapter's page manifest and print one image URL per page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := validateID("chapter", args[0])
		if err != nil {
			return err
		}

		controller, err := newController()
		if err != nil {
			return err
		}
		pages, err := controller.OpenChapter(cmd.Context(), id)
		if err != nil {
			return err
		}

		if pages.Chapter != nil {
			fmt.Println(pages.Chapter.Label())
		}
		if pages.Group != nil {
			fmt.Printf("Scanlated by %s\n", pages.Group.Name)
		}
		fmt.Println()

		for _, url := range pages.PageURLs(controller.UploadsURL(), cfg.DataSaver) {
			fmt.Println(url)
		}
		return nil
	},
}
