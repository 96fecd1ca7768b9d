package screens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangaread/pkg/app/components"
	"github.com/kerbaras/mangaread/pkg/app/styles"
	"github.com/kerbaras/mangaread/pkg/data"
	"github.com/kerbaras/mangaread/pkg/services"
)

const (
	detailsFailed   = "Failed to load manga details. Please try again later."
	detailsNotFound = "Manga not found"
	chapterWindow   = 10
	synopsisLength  = 400
)

type DetailsScreen struct {
	fetcher         Fetcher
	mangaID         string
	state           fetchState[*data.TitleDetail]
	selectedChapter int
	spinner         spinner.Model
	help            help.Model
	width           int
	height          int
}

func NewDetailsScreen(fetcher Fetcher, mangaID string) *DetailsScreen {
	return &DetailsScreen{
		fetcher: fetcher,
		mangaID: mangaID,
		spinner: newSpinner(),
		help:    help.New(),
	}
}

func (s *DetailsScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.loadDetails())
}

func (s *DetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = msg.Width

	case tea.KeyMsg:
		if s.state.Status != Success {
			return s, nil
		}
		chapters := s.state.Data.Chapters
		switch {
		case key.Matches(msg, keyUp):
			if s.selectedChapter > 0 {
				s.selectedChapter--
			}
		case key.Matches(msg, keyDown):
			if s.selectedChapter < len(chapters)-1 {
				s.selectedChapter++
			}
		case key.Matches(msg, keyOpen):
			if len(chapters) > 0 {
				return s, navigate(RouteReader, chapters[s.selectedChapter].ID)
			}
		}

	case detailsLoadedMsg:
		message := detailsFailed
		if errors.Is(msg.err, services.ErrMangaNotFound) {
			message = detailsNotFound
		}
		if s.state.resolve(msg.token, msg.detail, msg.err, message) {
			s.selectedChapter = 0
		}

	case spinner.TickMsg:
		if s.state.Status != Loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *DetailsScreen) View() string {
	helpView := styles.HelpStyle.Render(s.help.View(bindings{keyUp, keyDown, keyOpen, keyBack, keyQuit}))

	switch s.state.Status {
	case Success:
	case Failure:
		return fmt.Sprintf("%s\n%s", styles.StatusError.Render(s.state.Message), helpView)
	default:
		return fmt.Sprintf("%s Loading...\n%s", s.spinner.View(), helpView)
	}

	manga := s.state.Data
	header := styles.TitleStyle.Render(manga.Title)

	sections := []string{
		header,
		s.renderMangaInfo(manga),
		styles.SectionStyle.Render("Synopsis"),
		styles.TextStyle.Width(s.contentWidth()).Render(components.Truncate(manga.Description, synopsisLength)),
		styles.SectionStyle.Render("Chapters"),
		s.renderChaptersList(manga.Chapters),
		styles.AttributionStyle.Render("Powered by MangaDex"),
		helpView,
	}

	return strings.Join(sections, "\n")
}

func (s *DetailsScreen) contentWidth() int {
	if s.width < 8 {
		return 76
	}
	return s.width - 4
}

func (s *DetailsScreen) renderMangaInfo(manga *data.TitleDetail) string {
	rows := []string{
		infoRow("Status", styles.StatusStyle(manga.Status).Render(manga.Status)),
	}
	if manga.Year > 0 {
		rows = append(rows, infoRow("Year", fmt.Sprint(manga.Year)))
	}
	rows = append(rows, infoRow("Language", manga.OriginalLanguage))
	if manga.Demographic != "" {
		rows = append(rows, infoRow("Demographic", manga.Demographic))
	}
	if len(manga.Authors) > 0 {
		rows = append(rows, infoRow(plural("Author", len(manga.Authors)), strings.Join(manga.Authors, ", ")))
	}
	if len(manga.Artists) > 0 {
		rows = append(rows, infoRow(plural("Artist", len(manga.Artists)), strings.Join(manga.Artists, ", ")))
	}
	if tags := components.RenderTags(manga.Tags, 0); tags != "" {
		rows = append(rows, "", tags)
	}

	info := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return styles.CardStyle.Width(s.contentWidth()).Render(info)
}

func (s *DetailsScreen) renderChaptersList(chapters []data.ChapterSummary) string {
	if len(chapters) == 0 {
		return styles.MutedStyle.Render("No chapters available")
	}

	var b strings.Builder
	start, end := components.Window(s.selectedChapter, len(chapters), chapterWindow)

	for i := start; i < end; i++ {
		ch := chapters[i]
		line := ch.Label()
		meta := chapterMeta(ch)

		if i == s.selectedChapter {
			b.WriteString(styles.SelectedStyle.Render(line + "\n" + meta))
		} else {
			b.WriteString(styles.TextStyle.Render(line))
			b.WriteString("\n")
			b.WriteString(styles.MutedStyle.Render(meta))
		}
		b.WriteString("\n")
	}

	if len(chapters) > chapterWindow {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d chapters", start+1, end, len(chapters)),
		))
	}

	return b.String()
}

func chapterMeta(ch data.ChapterSummary) string {
	parts := []string{ch.PublishAt.Format("Jan 2, 2006"), fmt.Sprintf("%d pages", ch.Pages)}
	if ch.Group != nil {
		parts = append(parts, "Scanlated by "+ch.Group.Name)
	}
	return strings.Join(parts, " • ")
}

func infoRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, styles.LabelStyle.Render(label), styles.TextStyle.Render(value))
}

func plural(word string, n int) string {
	if n > 1 {
		return word + "s"
	}
	return word
}

func (s *DetailsScreen) Status() Status {
	return s.state.Status
}

func (s *DetailsScreen) loadDetails() tea.Cmd {
	token := s.state.begin()
	fetcher, id := s.fetcher, s.mangaID
	return func() tea.Msg {
		detail, err := fetcher.GetDetails(context.Background(), id)
		return detailsLoadedMsg{token: token, detail: detail, err: err}
	}
}
