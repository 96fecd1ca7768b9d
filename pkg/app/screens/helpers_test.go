package screens

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangaread/pkg/data"
)

type fakeFetcher struct {
	listFunc    func() ([]data.TitleSummary, error)
	searchFunc  func(query string) ([]data.TitleSummary, error)
	detailsFunc func(id string) (*data.TitleDetail, error)
	chapterFunc func(id string) (*data.ChapterPages, error)

	mu    sync.Mutex
	calls map[string]int
	args  []string
}

func (f *fakeFetcher) record(name, arg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
	f.args = append(f.args, arg)
}

func (f *fakeFetcher) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeFetcher) ListTrending(ctx context.Context) ([]data.TitleSummary, error) {
	f.record("ListTrending", "")
	if f.listFunc != nil {
		return f.listFunc()
	}
	return nil, nil
}

func (f *fakeFetcher) SearchManga(ctx context.Context, query string) ([]data.TitleSummary, error) {
	f.record("SearchManga", query)
	if f.searchFunc != nil {
		return f.searchFunc(query)
	}
	return nil, nil
}

func (f *fakeFetcher) GetDetails(ctx context.Context, id string) (*data.TitleDetail, error) {
	f.record("GetDetails", id)
	if f.detailsFunc != nil {
		return f.detailsFunc(id)
	}
	return &data.TitleDetail{TitleSummary: data.TitleSummary{ID: id}}, nil
}

func (f *fakeFetcher) OpenChapter(ctx context.Context, id string) (*data.ChapterPages, error) {
	f.record("OpenChapter", id)
	if f.chapterFunc != nil {
		return f.chapterFunc(id)
	}
	return &data.ChapterPages{ChapterID: id}, nil
}

func (f *fakeFetcher) UploadsURL() string {
	return "https://uploads.example"
}

// runCmd executes cmd and any batched commands, collecting their messages.
// Spinner and cursor ticks returned here fire immediately; commands that
// sleep are only produced when a tick is fed back, which tests never do.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// firstOf returns the first collected message of type T.
func firstOf[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

// deliver feeds every fetch result in msgs back into model.
func deliver(model tea.Model, msgs []tea.Msg) tea.Model {
	for _, msg := range msgs {
		switch msg.(type) {
		case listingLoadedMsg, searchResultMsg, detailsLoadedMsg, chapterLoadedMsg:
			model, _ = model.Update(msg)
		}
	}
	return model
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyMsgEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyMsgEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyMsgTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyMsgRight = tea.KeyMsg{Type: tea.KeyRight}
	keyMsgLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyMsgDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyMsgCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)
