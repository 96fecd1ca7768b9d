package services

import (
	"context"

	"github.com/kerbaras/mangaread/pkg/data"
)

// Mock implementations for testing

type mockSource struct {
	trendingFunc    func(ctx context.Context) ([]data.TitleSummary, error)
	searchFunc      func(ctx context.Context, query string) ([]data.TitleSummary, error)
	getMangaFunc    func(ctx context.Context, id string) (*data.TitleDetail, error)
	getChaptersFunc func(ctx context.Context, mangaID string) ([]data.ChapterSummary, error)
	getChapterFunc  func(ctx context.Context, chapterID string) (*data.ChapterSummary, error)
	getPagesFunc    func(ctx context.Context, chapterID string) (*data.ChapterPages, error)
	uploadsURL      string

	calls map[string]int
	order []string
}

func (m *mockSource) record(name string) {
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
	m.order = append(m.order, name)
}

func (m *mockSource) Trending(ctx context.Context) ([]data.TitleSummary, error) {
	m.record("Trending")
	if m.trendingFunc != nil {
		return m.trendingFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) Search(ctx context.Context, query string) ([]data.TitleSummary, error) {
	m.record("Search")
	if m.searchFunc != nil {
		return m.searchFunc(ctx, query)
	}
	return nil, nil
}

func (m *mockSource) GetManga(ctx context.Context, id string) (*data.TitleDetail, error) {
	m.record("GetManga")
	if m.getMangaFunc != nil {
		return m.getMangaFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSource) GetChapters(ctx context.Context, mangaID string) ([]data.ChapterSummary, error) {
	m.record("GetChapters")
	if m.getChaptersFunc != nil {
		return m.getChaptersFunc(ctx, mangaID)
	}
	return nil, nil
}

func (m *mockSource) GetChapter(ctx context.Context, chapterID string) (*data.ChapterSummary, error) {
	m.record("GetChapter")
	if m.getChapterFunc != nil {
		return m.getChapterFunc(ctx, chapterID)
	}
	return nil, nil
}

func (m *mockSource) GetPages(ctx context.Context, chapterID string) (*data.ChapterPages, error) {
	m.record("GetPages")
	if m.getPagesFunc != nil {
		return m.getPagesFunc(ctx, chapterID)
	}
	return &data.ChapterPages{ChapterID: chapterID}, nil
}

func (m *mockSource) UploadsURL() string {
	return m.uploadsURL
}
