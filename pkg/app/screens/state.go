package screens

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangaread/pkg/data"
)

// Fetcher is what the screens need from the controller.
type Fetcher interface {
	ListTrending(ctx context.Context) ([]data.TitleSummary, error)
	SearchManga(ctx context.Context, query string) ([]data.TitleSummary, error)
	GetDetails(ctx context.Context, mangaID string) (*data.TitleDetail, error)
	OpenChapter(ctx context.Context, chapterID string) (*data.ChapterPages, error)
	UploadsURL() string
}

type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

// generation is shared by every screen so tokens never repeat across
// screen instances.
var generation atomic.Uint64

// fetchState is the loading/success/failure cycle behind each screen.
// Only the result carrying the latest token is applied.
type fetchState[T any] struct {
	Status  Status
	Data    T
	Message string
	token   uint64
}

func (f *fetchState[T]) begin() uint64 {
	var zero T
	f.token = generation.Add(1)
	f.Status = Loading
	f.Data = zero
	f.Message = ""
	return f.token
}

// resolve applies a result and reports whether it was current.
func (f *fetchState[T]) resolve(token uint64, result T, err error, message string) bool {
	if token != f.token || f.Status != Loading {
		return false
	}
	if err != nil {
		var zero T
		f.Status = Failure
		f.Data = zero
		f.Message = message
		return true
	}
	f.Status = Success
	f.Data = result
	return true
}

// Fetch results. The token ties each one to the begin() that issued it.
type (
	listingLoadedMsg struct {
		token  uint64
		titles []data.TitleSummary
		err    error
	}

	searchResultMsg struct {
		token   uint64
		results []data.TitleSummary
		err     error
	}

	detailsLoadedMsg struct {
		token  uint64
		detail *data.TitleDetail
		err    error
	}

	chapterLoadedMsg struct {
		token uint64
		pages *data.ChapterPages
		err   error
	}
)

// Route names a screen on the navigation stack.
type Route string

const (
	RouteListing Route = "listing"
	RouteSearch  Route = "search"
	RouteDetails Route = "details"
	RouteReader  Route = "reader"
)

// NavigateMsg pushes a screen. Param is the manga id for details and the
// chapter id for the reader.
type NavigateMsg struct {
	Route Route
	Param string
}

// BackMsg pops the active screen.
type BackMsg struct{}

func navigate(route Route, param string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route, Param: param}
	}
}
