package sources

import (
	"context"

	"github.com/kerbaras/mangaread/pkg/data"
)

type Source interface {
	Trending(ctx context.Context) ([]data.TitleSummary, error)
	Search(ctx context.Context, query string) ([]data.TitleSummary, error)
	// GetManga returns the title without chapters.
	GetManga(ctx context.Context, id string) (*data.TitleDetail, error)
	GetChapters(ctx context.Context, mangaID string) ([]data.ChapterSummary, error)
	GetChapter(ctx context.Context, chapterID string) (*data.ChapterSummary, error)
	GetPages(ctx context.Context, chapterID string) (*data.ChapterPages, error)
	// UploadsURL is the host covers and pages are served from.
	UploadsURL() string
}
