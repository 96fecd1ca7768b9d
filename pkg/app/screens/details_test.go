package screens

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangaread/pkg/data"
	"github.com/kerbaras/mangaread/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetail(id string) *data.TitleDetail {
	return &data.TitleDetail{
		TitleSummary: data.TitleSummary{
			ID:          id,
			Title:       "One Piece",
			Description: "Gol D. Roger was known as the Pirate King.",
			Status:      "ongoing",
			Year:        1997,
			Tags:        []string{"Action", "Adventure", "Comedy", "Fantasy"},
		},
		OriginalLanguage: "ja",
		Demographic:      "shounen",
		Authors:          []string{"Oda Eiichiro"},
		Artists:          []string{"Oda Eiichiro", "Assistant"},
		Chapters: []data.ChapterSummary{
			{
				ID:        "c1",
				Number:    "1",
				Title:     "Romance Dawn",
				PublishAt: time.Date(2018, 4, 7, 7, 35, 8, 0, time.UTC),
				Pages:     53,
				Group:     &data.ScanlationGroup{ID: "g", Name: "Pirate Scans"},
			},
			{ID: "c2", Number: "2", PublishAt: time.Date(2018, 4, 14, 0, 0, 0, 0, time.UTC), Pages: 20},
		},
	}
}

func loadedDetails(t *testing.T, fetcher *fakeFetcher, id string) *DetailsScreen {
	t.Helper()
	screen := NewDetailsScreen(fetcher, id)
	screen.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	deliver(screen, runCmd(screen.Init()))
	return screen
}

func TestDetailsRendersTitle(t *testing.T) {
	fetcher := &fakeFetcher{detailsFunc: func(id string) (*data.TitleDetail, error) { return testDetail(id), nil }}
	screen := loadedDetails(t, fetcher, "m1")

	require.Equal(t, Success, screen.Status())
	assert.Equal(t, []string{"m1"}, fetcher.args)

	view := screen.View()
	for _, want := range []string{
		"One Piece",
		"ongoing",
		"1997",
		"shounen",
		"Author",
		"Artists",
		"Oda Eiichiro, Assistant",
		"Fantasy",
		"Synopsis",
		"Pirate King",
		"Chapter 1: Romance Dawn",
		"Apr 7, 2018 • 53 pages • Scanlated by Pirate Scans",
		"Chapter 2: No Title",
		"Apr 14, 2018 • 20 pages",
		"Powered by MangaDex",
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, "Authors")
}

func TestDetailsOmitsUnknownRows(t *testing.T) {
	fetcher := &fakeFetcher{detailsFunc: func(id string) (*data.TitleDetail, error) {
		return &data.TitleDetail{TitleSummary: data.TitleSummary{ID: id, Title: "Bare"}}, nil
	}}
	view := loadedDetails(t, fetcher, "m1").View()

	assert.NotContains(t, view, "Year")
	assert.NotContains(t, view, "Demographic")
	assert.NotContains(t, view, "Author")
	assert.Contains(t, view, "No chapters available")
}

func TestDetailsFailureShowsNoPartialData(t *testing.T) {
	fetcher := &fakeFetcher{detailsFunc: func(id string) (*data.TitleDetail, error) {
		return testDetail(id), errors.New("failed to fetch chapters")
	}}
	screen := loadedDetails(t, fetcher, "m1")

	assert.Equal(t, Failure, screen.Status())
	assert.Nil(t, screen.state.Data)
	view := screen.View()
	assert.Contains(t, view, detailsFailed)
	assert.NotContains(t, view, "One Piece")
}

func TestDetailsNotFound(t *testing.T) {
	fetcher := &fakeFetcher{detailsFunc: func(id string) (*data.TitleDetail, error) {
		return nil, services.ErrMangaNotFound
	}}
	screen := loadedDetails(t, fetcher, "m1")

	assert.Equal(t, Failure, screen.Status())
	assert.Contains(t, screen.View(), "Manga not found")
}

func TestDetailsOpensChapter(t *testing.T) {
	fetcher := &fakeFetcher{detailsFunc: func(id string) (*data.TitleDetail, error) { return testDetail(id), nil }}
	screen := loadedDetails(t, fetcher, "m1")

	screen.Update(keyMsgDown)
	screen.Update(keyMsgDown) // clamps at the last chapter
	_, cmd := screen.Update(keyMsgEnter)
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateMsg{Route: RouteReader, Param: "c2"}, cmd())
}

func TestDetailsIgnoresKeysWhileLoading(t *testing.T) {
	screen := NewDetailsScreen(&fakeFetcher{}, "m1")
	screen.Init()

	_, cmd := screen.Update(keyMsgEnter)
	assert.Nil(t, cmd)
	assert.Contains(t, screen.View(), "Loading...")
}

func TestDetailsWindowsLongChapterLists(t *testing.T) {
	fetcher := &fakeFetcher{detailsFunc: func(id string) (*data.TitleDetail, error) {
		detail := testDetail(id)
		detail.Chapters = nil
		for i := 1; i <= 30; i++ {
			detail.Chapters = append(detail.Chapters, data.ChapterSummary{ID: fmt.Sprint(i), Number: fmt.Sprint(i)})
		}
		return detail, nil
	}}
	screen := loadedDetails(t, fetcher, "m1")

	assert.Contains(t, screen.View(), "Showing 1-10 of 30 chapters")
}

func TestDetailsSpinnerStopsAfterFailure(t *testing.T) {
	fetcher := &fakeFetcher{detailsFunc: func(id string) (*data.TitleDetail, error) {
		return nil, errors.New("timeout")
	}}
	screen := NewDetailsScreen(fetcher, "m1")
	msgs := runCmd(screen.Init())
	tick, ok := firstOf[spinner.TickMsg](msgs)
	require.True(t, ok)

	deliver(screen, msgs)
	require.Equal(t, Failure, screen.Status())
	_, cmd := screen.Update(tick)
	assert.Nil(t, cmd)
}
