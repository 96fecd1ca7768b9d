package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kerbaras/mangaread/pkg/data"
	"github.com/kerbaras/mangaread/pkg/sources"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyQuery    = errors.New("search query is empty")
	ErrMangaNotFound = errors.New("manga not found")
)

// MangaController runs the fetch sequence behind each screen. It holds no
// state between calls: every call starts from the upstream.
type MangaController struct {
	source sources.Source
	log    zerolog.Logger
}

func NewMangaController(source sources.Source, log zerolog.Logger) *MangaController {
	return &MangaController{source: source, log: log}
}

// UploadsURL is the host cover and page URLs are built against.
func (c *MangaController) UploadsURL() string {
	return c.source.UploadsURL()
}

func (c *MangaController) ListTrending(ctx context.Context) ([]data.TitleSummary, error) {
	titles, err := c.source.Trending(ctx)
	if err != nil {
		c.log.Error().Err(err).Str("op", "listing").Msg("failed to fetch trending manga")
		return nil, fmt.Errorf("failed to fetch trending manga: %w", err)
	}
	c.log.Debug().Str("op", "listing").Int("count", len(titles)).Msg("fetched trending manga")
	return titles, nil
}

// SearchManga trims query and refuses to search for nothing.
func (c *MangaController) SearchManga(ctx context.Context, query string) ([]data.TitleSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	titles, err := c.source.Search(ctx, query)
	if err != nil {
		c.log.Error().Err(err).Str("op", "search").Str("query", query).Msg("failed to search manga")
		return nil, fmt.Errorf("failed to search manga: %w", err)
	}
	c.log.Debug().Str("op", "search").Str("query", query).Int("count", len(titles)).Msg("searched manga")
	return titles, nil
}

// GetDetails fetches the title and then its chapter list. Either failure
// fails the whole call; no partially filled detail is returned.
func (c *MangaController) GetDetails(ctx context.Context, mangaID string) (*data.TitleDetail, error) {
	log := c.log.With().Str("op", "details").Str("manga", mangaID).Logger()

	detail, err := c.source.GetManga(ctx, mangaID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch manga")
		return nil, fmt.Errorf("failed to fetch manga %s: %w", mangaID, err)
	}
	if detail == nil || detail.ID == "" {
		log.Warn().Msg("manga response was empty")
		return nil, ErrMangaNotFound
	}

	chapters, err := c.source.GetChapters(ctx, mangaID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch chapters")
		return nil, fmt.Errorf("failed to fetch chapters of %s: %w", mangaID, err)
	}
	detail.Chapters = chapters

	log.Debug().Int("chapters", len(chapters)).Msg("fetched manga details")
	return detail, nil
}

// OpenChapter fetches the chapter metadata and then its page manifest.
func (c *MangaController) OpenChapter(ctx context.Context, chapterID string) (*data.ChapterPages, error) {
	log := c.log.With().Str("op", "reader").Str("chapter", chapterID).Logger()

	chapter, err := c.source.GetChapter(ctx, chapterID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch chapter")
		return nil, fmt.Errorf("failed to fetch chapter %s: %w", chapterID, err)
	}

	pages, err := c.source.GetPages(ctx, chapterID)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch page manifest")
		return nil, fmt.Errorf("failed to fetch pages of %s: %w", chapterID, err)
	}
	pages.Chapter = chapter
	if chapter != nil {
		pages.Group = chapter.Group
	}

	log.Debug().Int("pages", len(pages.Data)).Msg("fetched chapter pages")
	return pages, nil
}
