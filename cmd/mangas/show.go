package cmd

import (
	"fmt"
	"strings"

	"github.com/kerbaras/mangaread/pkg/app/styles"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [manga-id]",
	Short: "Show a manga and its chapters",
	Long:  "Display a manga's details and its chapter list in the configured language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := validateID("manga", args[0])
		if err != nil {
			return err
		}

		controller, err := newController()
		if err != nil {
			return err
		}
		manga, err := controller.GetDetails(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Println(styles.TitleStyle.Render(manga.Title))
		fmt.Printf("Status:    %s\n", manga.Status)
		if manga.Year > 0 {
			fmt.Printf("Year:      %d\n", manga.Year)
		}
		fmt.Printf("Language:  %s\n", manga.OriginalLanguage)
		if manga.Demographic != "" {
			fmt.Printf("Demographic: %s\n", manga.Demographic)
		}
		if len(manga.Authors) > 0 {
			fmt.Printf("Authors:   %s\n", strings.Join(manga.Authors, ", "))
		}
		if len(manga.Artists) > 0 {
			fmt.Printf("Artists:   %s\n", strings.Join(manga.Artists, ", "))
		}
		if len(manga.Tags) > 0 {
			fmt.Printf("Tags:      %s\n", strings.Join(manga.Tags, ", "))
		}
		if manga.CoverURL != "" {
			fmt.Printf("Cover:     %s\n", manga.CoverURL)
		}
		fmt.Printf("\n%s\n", manga.Description)

		if len(manga.Chapters) == 0 {
			fmt.Println("\nNo chapters available.")
			return nil
		}

		fmt.Printf("\nChapters (%d)\n\n", len(manga.Chapters))
		fmt.Println(chaptersTable(manga.Chapters).View())
		fmt.Println(styles.MutedStyle.Render("Powered by MangaDex"))
		return nil
	},
}
