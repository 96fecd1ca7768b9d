package cmd

import (
	"fmt"
	"strings"

	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/kerbaras/mangaread/pkg/app/components"
	"github.com/kerbaras/mangaread/pkg/data"
)

var (
	purple = lipgloss.Color("99")

	headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// validateID rejects anything that is not a MangaDex UUID before a request is made.
func validateID(kind, id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", fmt.Errorf("invalid %s id %q: %w", kind, id, err)
	}
	return parsed.String(), nil
}

func titlesTable(titles []data.TitleSummary) *table.Table {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers("#", "Title", "Status", "Year", "ID")

	for i, manga := range titles {
		year := ""
		if manga.Year > 0 {
			year = fmt.Sprintf("%d", manga.Year)
		}
		t.Row(fmt.Sprintf("%d", i+1), components.Truncate(manga.Title, 48), manga.Status, year, manga.ID)
	}

	return t
}

func chaptersTable(chapters []data.ChapterSummary) btable.Model {
	columns := []btable.Column{
		{Title: "Chapter", Width: 40},
		{Title: "Published", Width: 14},
		{Title: "Pages", Width: 6},
		{Title: "Group", Width: 24},
		{Title: "ID", Width: 36},
	}

	rows := []btable.Row{}
	for _, ch := range chapters {
		group := ""
		if ch.Group != nil {
			group = ch.Group.Name
		}
		rows = append(rows, btable.Row{
			components.Truncate(ch.Label(), 38),
			ch.PublishAt.Format("Jan 2, 2006"),
			fmt.Sprintf("%d", ch.Pages),
			components.Truncate(group, 22),
			ch.ID,
		})
	}

	t := btable.New(
		btable.WithColumns(columns),
		btable.WithRows(rows),
		btable.WithFocused(false),
		btable.WithHeight(len(rows)+1),
	)

	s := btable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}
