package sources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kerbaras/mangaread/pkg/config"
	"github.com/kerbaras/mangaread/pkg/data"
	"github.com/kerbaras/mangaread/pkg/utils"
)

type MangaDex struct {
	api *utils.API
	cfg *config.Config
}

// NewMangaDex builds a client for cfg.APIURL. A nil client uses http.DefaultClient.
func NewMangaDex(cfg *config.Config, client *http.Client) *MangaDex {
	if cfg == nil {
		cfg = config.Default()
	}
	return &MangaDex{
		api: utils.NewAPI(cfg.APIURL, client, cfg.UserAgent),
		cfg: cfg,
	}
}

func (m *MangaDex) UploadsURL() string {
	return m.cfg.UploadsURL
}

func (m *MangaDex) listParams() url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(m.cfg.ListLimit))
	params.Add("includes[]", "cover_art")
	for _, rating := range m.cfg.ContentRatings {
		params.Add("contentRating[]", rating)
	}
	return params
}

// Trending lists the highest rated titles that have readable chapters.
func (m *MangaDex) Trending(ctx context.Context) ([]data.TitleSummary, error) {
	params := m.listParams()
	params.Set("order[rating]", "desc")
	params.Set("hasAvailableChapters", "true")

	var resp mangaListResponse
	if err := m.api.Get(ctx, "/manga", params, &resp); err != nil {
		return nil, err
	}
	return NormalizeTitles(resp.Data, m.cfg.UploadsURL), nil
}

func (m *MangaDex) Search(ctx context.Context, query string) ([]data.TitleSummary, error) {
	params := m.listParams()
	params.Set("title", query)
	params.Set("order[relevance]", "desc")

	var resp mangaListResponse
	if err := m.api.Get(ctx, "/manga", params, &resp); err != nil {
		return nil, err
	}
	return NormalizeTitles(resp.Data, m.cfg.UploadsURL), nil
}

func (m *MangaDex) GetManga(ctx context.Context, id string) (*data.TitleDetail, error) {
	params := url.Values{}
	for _, include := range []string{"cover_art", "author", "artist"} {
		params.Add("includes[]", include)
	}

	var resp mangaResponse
	if err := m.api.Get(ctx, "/manga/"+url.PathEscape(id), params, &resp); err != nil {
		return nil, err
	}
	detail := NormalizeTitle(resp.Data, m.cfg.UploadsURL)
	return &detail, nil
}

func (m *MangaDex) GetChapters(ctx context.Context, mangaID string) ([]data.ChapterSummary, error) {
	params := url.Values{}
	params.Set("manga", mangaID)
	params.Add("translatedLanguage[]", m.cfg.Language)
	params.Set("order[chapter]", "asc")
	params.Set("limit", strconv.Itoa(m.cfg.ChapterLimit))
	params.Add("includes[]", "scanlation_group")

	var resp chapterListResponse
	if err := m.api.Get(ctx, "/chapter", params, &resp); err != nil {
		return nil, err
	}
	return NormalizeChapters(resp.Data), nil
}

func (m *MangaDex) GetChapter(ctx context.Context, chapterID string) (*data.ChapterSummary, error) {
	params := url.Values{}
	params.Add("includes[]", "scanlation_group")

	var resp chapterResponse
	if err := m.api.Get(ctx, "/chapter/"+url.PathEscape(chapterID), params, &resp); err != nil {
		return nil, err
	}
	chapter := NormalizeChapter(resp.Data)
	return &chapter, nil
}

// GetPages fetches the page manifest. Page URLs are built against the
// configured uploads host, not the per-request baseUrl the endpoint returns.
func (m *MangaDex) GetPages(ctx context.Context, chapterID string) (*data.ChapterPages, error) {
	var resp AtHomeResponse
	if err := m.api.Get(ctx, "/at-home/server/"+url.PathEscape(chapterID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Chapter.Hash == "" {
		return nil, fmt.Errorf("page manifest for chapter %s has no hash", chapterID)
	}
	return &data.ChapterPages{
		ChapterID: chapterID,
		Hash:      resp.Chapter.Hash,
		Data:      resp.Chapter.Data,
		DataSaver: resp.Chapter.DataSaver,
	}, nil
}
