package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangaread/pkg/app/styles"
)

// Options carries the settings screens read at construction.
type Options struct {
	DataSaver bool
}

// inputCapturer is implemented by screens that own a text field.
type inputCapturer interface {
	CapturesInput() bool
}

// RootScreen owns the navigation stack. Keys go to the top screen only;
// every other message is offered to the whole stack so a covered screen
// still receives its own fetch results and spinner ticks.
type RootScreen struct {
	fetcher Fetcher
	options Options
	stack   []tea.Model

	width  int
	height int
}

func NewRootScreen(fetcher Fetcher, options Options) *RootScreen {
	return &RootScreen{
		fetcher: fetcher,
		options: options,
		stack:   []tea.Model{NewListingScreen(fetcher)},
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.top().Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, r.broadcast(r.contentSize())

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyForce):
			return r, tea.Quit
		case key.Matches(msg, keyBack):
			return r, func() tea.Msg { return BackMsg{} }
		case key.Matches(msg, keyQuit) && !r.capturingInput():
			return r, tea.Quit
		}
		return r, r.updateTop(msg)

	case tea.MouseMsg:
		return r, r.updateTop(msg)

	case NavigateMsg:
		screen := r.screenFor(msg)
		if screen == nil {
			return r, nil
		}
		r.stack = append(r.stack, screen)
		var sizeCmd tea.Cmd
		if r.width > 0 {
			sizeCmd = r.updateTop(r.contentSize())
		}
		return r, tea.Batch(screen.Init(), sizeCmd)

	case BackMsg:
		if len(r.stack) > 1 {
			r.stack = r.stack[:len(r.stack)-1]
		}
		return r, nil
	}

	return r, r.broadcast(msg)
}

func (r *RootScreen) screenFor(msg NavigateMsg) tea.Model {
	switch msg.Route {
	case RouteListing:
		return NewListingScreen(r.fetcher)
	case RouteSearch:
		return NewSearchScreen(r.fetcher)
	case RouteDetails:
		return NewDetailsScreen(r.fetcher, msg.Param)
	case RouteReader:
		return NewReaderScreen(r.fetcher, msg.Param, r.options.DataSaver)
	}
	return nil
}

func (r *RootScreen) top() tea.Model {
	return r.stack[len(r.stack)-1]
}

// Depth is the number of screens on the stack.
func (r *RootScreen) Depth() int {
	return len(r.stack)
}

// Active returns the screen currently receiving input.
func (r *RootScreen) Active() tea.Model {
	return r.top()
}

func (r *RootScreen) capturingInput() bool {
	c, ok := r.top().(inputCapturer)
	return ok && c.CapturesInput()
}

func (r *RootScreen) updateTop(msg tea.Msg) tea.Cmd {
	i := len(r.stack) - 1
	model, cmd := r.stack[i].Update(msg)
	r.stack[i] = model
	return cmd
}

func (r *RootScreen) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.stack))
	for i, screen := range r.stack {
		model, cmd := screen.Update(msg)
		r.stack[i] = model
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// contentSize is the window minus the tab bar.
func (r *RootScreen) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: r.width, Height: max(r.height-2, 0)}
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()
	if tabs == "" {
		return r.top().View()
	}
	return fmt.Sprintf("%s\n\n%s", tabs, r.top().View())
}

func (r *RootScreen) renderTabs() string {
	var active Route
	switch r.top().(type) {
	case *ListingScreen:
		active = RouteListing
	case *SearchScreen:
		active = RouteSearch
	default:
		// Details and reader render full screen
		return ""
	}

	popularTab := styles.InactiveTabStyle.Render("Popular")
	searchTab := styles.InactiveTabStyle.Render("Search")
	if active == RouteListing {
		popularTab = styles.ActiveTabStyle.Render("Popular")
	} else {
		searchTab = styles.ActiveTabStyle.Render("Search")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, popularTab, searchTab)
}
