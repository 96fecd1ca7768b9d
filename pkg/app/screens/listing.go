package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangaread/pkg/app/components"
	"github.com/kerbaras/mangaread/pkg/app/styles"
	"github.com/kerbaras/mangaread/pkg/data"
)

const listingFailed = "Failed to load manga list. Please try again later."

// ListingScreen shows the most popular titles.
type ListingScreen struct {
	fetcher   Fetcher
	state     fetchState[[]data.TitleSummary]
	mangaList *components.MangaList
	spinner   spinner.Model
	help      help.Model
	width     int
	height    int
}

func NewListingScreen(fetcher Fetcher) *ListingScreen {
	list := components.NewMangaList()
	list.ShowDescription = true
	return &ListingScreen{
		fetcher:   fetcher,
		mangaList: list,
		spinner:   newSpinner(),
		help:      help.New(),
	}
}

func (s *ListingScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.load())
}

func (s *ListingScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.mangaList.Width = msg.Width - 4
		s.mangaList.Height = msg.Height - 8
		s.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyUp):
			s.mangaList.Prev()
		case key.Matches(msg, keyDown):
			s.mangaList.Next()
		case key.Matches(msg, keySearch):
			return s, navigate(RouteSearch, "")
		case key.Matches(msg, keyOpen):
			if selected := s.mangaList.Selected(); selected != nil {
				return s, navigate(RouteDetails, selected.ID)
			}
		}

	case listingLoadedMsg:
		if s.state.resolve(msg.token, msg.titles, msg.err, listingFailed) {
			s.mangaList.SetItems(s.state.Data)
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

func (s *ListingScreen) View() string {
	header := styles.TitleStyle.Render("Popular Manga")

	var body string
	switch s.state.Status {
	case Loading:
		body = fmt.Sprintf("%s Loading...", s.spinner.View())
	case Failure:
		body = styles.StatusError.Render(s.state.Message)
	default:
		body = s.mangaList.View()
	}

	helpView := styles.HelpStyle.Render(s.help.View(bindings{keyUp, keyDown, keyOpen, keySearch, keyQuit}))

	return fmt.Sprintf("%s\n\n%s\n%s", header, body, helpView)
}

// Status exposes the fetch status for the root screen and tests.
func (s *ListingScreen) Status() Status {
	return s.state.Status
}

func (s *ListingScreen) load() tea.Cmd {
	token := s.state.begin()
	fetcher := s.fetcher
	return func() tea.Msg {
		titles, err := fetcher.ListTrending(context.Background())
		return listingLoadedMsg{token: token, titles: titles, err: err}
	}
}

func newSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.SpinnerStyle))
}
