package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangaread/pkg/app/components"
	"github.com/kerbaras/mangaread/pkg/app/styles"
	"github.com/kerbaras/mangaread/pkg/data"
)

const searchFailed = "Failed to search manga. Please try again later."

type SearchScreen struct {
	fetcher   Fetcher
	input     textinput.Model
	state     fetchState[[]data.TitleSummary]
	mangaList *components.MangaList
	spinner   spinner.Model
	help      help.Model
	width     int
	height    int
}

func NewSearchScreen(fetcher Fetcher) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search manga..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	list := components.NewMangaList()
	list.EmptyText = "Search for your favorite manga"
	list.Focused = false

	return &SearchScreen{
		fetcher:   fetcher,
		input:     ti,
		mangaList: list,
		spinner:   newSpinner(),
		help:      help.New(),
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

// CapturesInput is true while the query field has focus.
func (s *SearchScreen) CapturesInput() bool {
	return s.input.Focused()
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.mangaList.Width = msg.Width - 4
		s.mangaList.Height = msg.Height - 12
		s.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyFocus):
			s.toggleFocus()
			if s.input.Focused() {
				return s, textinput.Blink
			}
			return s, nil

		case key.Matches(msg, keySubmit):
			if s.input.Focused() {
				query := strings.TrimSpace(s.input.Value())
				if query == "" {
					return s, nil
				}
				return s, tea.Batch(s.spinner.Tick, s.search(query))
			}
			if selected := s.mangaList.Selected(); selected != nil {
				return s, navigate(RouteDetails, selected.ID)
			}
			return s, nil

		case !s.input.Focused() && key.Matches(msg, keyUp):
			s.mangaList.Prev()
			return s, nil

		case !s.input.Focused() && key.Matches(msg, keyDown):
			s.mangaList.Next()
			return s, nil
		}

	case searchResultMsg:
		if s.state.resolve(msg.token, msg.results, msg.err, searchFailed) {
			s.mangaList.SetItems(s.state.Data)
			s.mangaList.SelectedIndex = 0
			s.mangaList.EmptyText = "No results found"
			if len(s.state.Data) > 0 {
				s.input.Blur()
				s.mangaList.Focused = true
			}
		}
		return s, nil

	case spinner.TickMsg:
		if s.state.Status != Loading {
			return s, nil
		}
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	// Update text input
	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *SearchScreen) toggleFocus() {
	if s.input.Focused() {
		s.input.Blur()
		s.mangaList.Focused = true
		return
	}
	s.input.Focus()
	s.mangaList.Focused = false
}

func (s *SearchScreen) View() string {
	header := styles.TitleStyle.Render("Search Manga")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var resultsView string
	switch s.state.Status {
	case Loading:
		resultsView = fmt.Sprintf("%s Searching...", s.spinner.View())
	case Failure:
		resultsView = styles.StatusError.Render(s.state.Message)
	case Success:
		if n := len(s.state.Data); n > 0 {
			resultsView = styles.SubtitleStyle.Render(fmt.Sprintf("Found %d results:", n)) + "\n\n"
		}
		resultsView += s.mangaList.View()
	default:
		resultsView = s.mangaList.View()
	}

	helpView := styles.HelpStyle.Render(s.help.View(bindings{keySubmit, keyFocus, keyUp, keyDown, keyBack}))

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", header, inputView, resultsView, helpView)
}

func (s *SearchScreen) Status() Status {
	return s.state.Status
}

func (s *SearchScreen) search(query string) tea.Cmd {
	token := s.state.begin()
	fetcher := s.fetcher
	return func() tea.Msg {
		results, err := fetcher.SearchManga(context.Background(), query)
		return searchResultMsg{token: token, results: results, err: err}
	}
}
