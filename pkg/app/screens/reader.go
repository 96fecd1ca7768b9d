package screens

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangaread/pkg/app/components"
	"github.com/kerbaras/mangaread/pkg/app/styles"
	"github.com/kerbaras/mangaread/pkg/data"
)

const (
	readerFailed  = "Failed to load chapter. Please try again later."
	defaultWidth  = 80
	maxDotsPages  = 40
	wheelFraction = 3
)

// ReaderScreen pages horizontally through one chapter. The position is a
// horizontal offset in cells, one screen width per page.
type ReaderScreen struct {
	fetcher   Fetcher
	chapterID string
	dataSaver bool
	state     fetchState[*data.ChapterPages]
	offset    float64
	pageWidth int
	paginator paginator.Model
	progress  *components.PageProgress
	spinner   spinner.Model
	help      help.Model
	height    int
}

func NewReaderScreen(fetcher Fetcher, chapterID string, dataSaver bool) *ReaderScreen {
	p := paginator.New()
	p.PerPage = 1
	p.ActiveDot = styles.ProgressBarStyle.Render("•")
	p.InactiveDot = styles.MutedStyle.Render("•")

	return &ReaderScreen{
		fetcher:   fetcher,
		chapterID: chapterID,
		dataSaver: dataSaver,
		pageWidth: defaultWidth,
		paginator: p,
		progress:  components.NewPageProgress(defaultWidth - 4),
		spinner:   newSpinner(),
		help:      help.New(),
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.loadChapter())
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		page := s.CurrentPage()
		s.pageWidth = max(msg.Width, 1)
		s.height = msg.Height
		s.offset = float64(page * s.pageWidth)
		s.progress.SetWidth(msg.Width - 4)
		s.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyRetry):
			if s.state.Status == Failure {
				return s, tea.Batch(s.spinner.Tick, s.loadChapter())
			}
		case key.Matches(msg, keyNext):
			s.snapTo(s.CurrentPage() + 1)
		case key.Matches(msg, keyPrev):
			s.snapTo(s.CurrentPage() - 1)
		case key.Matches(msg, keySaver):
			s.dataSaver = !s.dataSaver
			s.scrollBy(0)
		}

	case tea.MouseMsg:
		step := float64(s.pageWidth) / wheelFraction
		switch {
		case msg.Button == tea.MouseButtonWheelRight, msg.Shift && msg.Button == tea.MouseButtonWheelDown:
			s.scrollBy(step)
		case msg.Button == tea.MouseButtonWheelLeft, msg.Shift && msg.Button == tea.MouseButtonWheelUp:
			s.scrollBy(-step)
		}

	case chapterLoadedMsg:
		if s.state.resolve(msg.token, msg.pages, msg.err, readerFailed) {
			s.offset = 0
			s.sync()
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

// PageCount is the number of pages in the active resolution.
func (s *ReaderScreen) PageCount() int {
	if s.state.Status != Success || s.state.Data == nil {
		return 0
	}
	return s.state.Data.PageCount(s.dataSaver)
}

// CurrentPage is the zero-based page nearest the horizontal offset.
func (s *ReaderScreen) CurrentPage() int {
	return pageAt(s.offset, s.pageWidth, s.PageCount())
}

// pageAt rounds offset to the nearest page and clamps it to [0, n-1].
func pageAt(offset float64, pageWidth, n int) int {
	if n <= 0 || pageWidth <= 0 {
		return 0
	}
	page := int(math.Round(offset / float64(pageWidth)))
	return min(max(page, 0), n-1)
}

func (s *ReaderScreen) maxOffset() float64 {
	return float64(max(s.PageCount()-1, 0) * s.pageWidth)
}

func (s *ReaderScreen) snapTo(page int) {
	s.offset = float64(page * s.pageWidth)
	s.scrollBy(0)
}

func (s *ReaderScreen) scrollBy(delta float64) {
	s.offset = math.Min(math.Max(s.offset+delta, 0), s.maxOffset())
	s.sync()
}

func (s *ReaderScreen) sync() {
	n := s.PageCount()
	s.paginator.SetTotalPages(n)
	s.paginator.Page = s.CurrentPage()
	if n > maxDotsPages {
		s.paginator.Type = paginator.Arabic
	} else {
		s.paginator.Type = paginator.Dots
	}
	s.progress.Set(s.CurrentPage(), n)
}

// PageURL is the address of the current page, or "" when there is none.
func (s *ReaderScreen) PageURL() string {
	if s.PageCount() == 0 {
		return ""
	}
	urls := s.state.Data.PageURLs(s.fetcher.UploadsURL(), s.dataSaver)
	return urls[s.CurrentPage()]
}

func (s *ReaderScreen) View() string {
	switch s.state.Status {
	case Success:
	case Failure:
		return fmt.Sprintf("%s\n\n%s",
			styles.StatusError.Render(s.state.Message),
			styles.HelpStyle.Render(s.help.View(bindings{keyRetry, keyBack, keyQuit})),
		)
	default:
		return fmt.Sprintf("%s Loading chapter...", s.spinner.View())
	}

	pages := s.state.Data
	var b strings.Builder

	title := "Chapter"
	if pages.Chapter != nil {
		title = pages.Chapter.Label()
	}
	b.WriteString(styles.TitleStyle.Render(title))
	b.WriteString("\n")

	if s.PageCount() == 0 {
		b.WriteString(styles.MutedStyle.Render("This chapter has no pages"))
	} else {
		b.WriteString(styles.TextStyle.Render(s.PageURL()))
	}
	b.WriteString("\n\n")

	b.WriteString(s.progress.View())
	b.WriteString("\n")
	b.WriteString(s.paginator.View())
	b.WriteString("\n")

	if pages.Group != nil {
		b.WriteString(styles.SubtitleStyle.Render("Scanlated by " + pages.Group.Name))
		b.WriteString("\n")
	}

	mode := "full quality"
	if s.dataSaver {
		mode = "data saver"
	}
	b.WriteString(styles.MutedStyle.Render("Images: " + mode))
	b.WriteString("\n")

	b.WriteString(styles.HelpStyle.Render(s.help.View(bindings{keyPrev, keyNext, keySaver, keyBack, keyQuit})))
	return b.String()
}

func (s *ReaderScreen) Status() Status {
	return s.state.Status
}

func (s *ReaderScreen) loadChapter() tea.Cmd {
	token := s.state.begin()
	s.offset = 0
	fetcher, id := s.fetcher, s.chapterID
	return func() tea.Msg {
		pages, err := fetcher.OpenChapter(context.Background(), id)
		return chapterLoadedMsg{token: token, pages: pages, err: err}
	}
}
