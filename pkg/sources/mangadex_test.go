package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/kerbaras/mangaread/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMangaDex serves canned bodies per path and records each request's query.
type fakeMangaDex struct {
	*httptest.Server
	bodies   map[string]string
	mu       sync.Mutex
	requests []*url.URL
}

func newFakeMangaDex(t *testing.T, bodies map[string]string) *fakeMangaDex {
	t.Helper()
	f := &fakeMangaDex{bodies: bodies}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL)
		f.mu.Unlock()
		body, ok := f.bodies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"result":"error","errors":[{"status":404,"title":"not_found","detail":"nothing here"}]}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeMangaDex) source() *MangaDex {
	cfg := config.Default()
	cfg.APIURL = f.URL
	cfg.UploadsURL = "https://uploads.example"
	return NewMangaDex(cfg, f.Client())
}

func (f *fakeMangaDex) lastQuery(t *testing.T) url.Values {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1].Query()
}

const listBody = `{"result":"ok","data":[
	{"id":"m1","attributes":{"title":{"en":"First"},"description":{"en":"d1"},"status":"ongoing","year":2001,"contentRating":"safe","tags":[]},
	 "relationships":[{"id":"c","type":"cover_art","attributes":{"fileName":"one.jpg"}}]},
	{"id":"m2","attributes":{"title":{"ja":"Second"},"description":{},"status":"completed","year":null,"contentRating":"suggestive","tags":[]},
	 "relationships":[]}
]}`

func TestMangaDex_Trending(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/manga": listBody})

	titles, err := f.source().Trending(context.Background())
	require.NoError(t, err)

	q := f.lastQuery(t)
	assert.Equal(t, "20", q.Get("limit"))
	assert.Equal(t, "desc", q.Get("order[rating]"))
	assert.Equal(t, []string{"cover_art"}, q["includes[]"])
	assert.Equal(t, []string{"safe", "suggestive"}, q["contentRating[]"])
	assert.Equal(t, "true", q.Get("hasAvailableChapters"))
	assert.Empty(t, q.Get("title"))

	require.Len(t, titles, 2)
	assert.Equal(t, "First", titles[0].Title)
	assert.Equal(t, "https://uploads.example/covers/m1/one.jpg", titles[0].CoverURL)
	assert.Equal(t, 2001, titles[0].Year)
	assert.Equal(t, "Second", titles[1].Title)
	assert.Empty(t, titles[1].CoverURL)
}

func TestMangaDex_Search(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/manga": listBody})

	titles, err := f.source().Search(context.Background(), "one piece")
	require.NoError(t, err)
	assert.Len(t, titles, 2)

	q := f.lastQuery(t)
	assert.Equal(t, "one piece", q.Get("title"))
	assert.Equal(t, "desc", q.Get("order[relevance]"))
	assert.Equal(t, "20", q.Get("limit"))
	assert.Equal(t, []string{"cover_art"}, q["includes[]"])
	assert.Equal(t, []string{"safe", "suggestive"}, q["contentRating[]"])
}

func TestMangaDex_GetManga(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/manga/m1": `{"result":"ok","data":` + fullMangaRecord + `}`})

	detail, err := f.source().GetManga(context.Background(), "m1")
	require.NoError(t, err)

	assert.Equal(t, []string{"cover_art", "author", "artist"}, f.lastQuery(t)["includes[]"])
	assert.Equal(t, "One Piece", detail.Title)
	assert.Equal(t, []string{"Oda Eiichiro", "Second Author"}, detail.Authors)
	assert.Equal(t, "https://uploads.example/covers/a1c7c817-4e59-43b7-9365-09675a149a6f/f8a2d4c4.jpg", detail.CoverURL)
}

func TestMangaDex_GetMangaNotFound(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{})

	_, err := f.source().GetManga(context.Background(), "missing")
	assert.Error(t, err)
}

func TestMangaDex_GetChapters(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/chapter": `{"result":"ok","data":[
		{"id":"c1","attributes":{"chapter":"1","publishAt":"2020-01-01T00:00:00+00:00","pages":10},"relationships":[]},
		{"id":"c2","attributes":{"chapter":"2","publishAt":"2020-01-08T00:00:00+00:00","pages":12},
		 "relationships":[{"id":"g","type":"scanlation_group","attributes":{"name":"Group"}}]}
	]}`})

	chapters, err := f.source().GetChapters(context.Background(), "m1")
	require.NoError(t, err)

	q := f.lastQuery(t)
	assert.Equal(t, "m1", q.Get("manga"))
	assert.Equal(t, []string{"en"}, q["translatedLanguage[]"])
	assert.Equal(t, "asc", q.Get("order[chapter]"))
	assert.Equal(t, "100", q.Get("limit"))
	assert.Equal(t, []string{"scanlation_group"}, q["includes[]"])

	require.Len(t, chapters, 2)
	assert.Equal(t, "c1", chapters[0].ID)
	assert.Equal(t, "Group", chapters[1].Group.Name)
}

func TestMangaDex_GetChapter(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/chapter/c1": `{"result":"ok","data":
		{"id":"c1","attributes":{"chapter":"7","title":"Seven","publishAt":"2020-01-01T00:00:00+00:00","pages":3},
		 "relationships":[{"id":"g","type":"scanlation_group","attributes":{"name":"Group"}}]}}`})

	chapter, err := f.source().GetChapter(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, []string{"scanlation_group"}, f.lastQuery(t)["includes[]"])
	assert.Equal(t, "7", chapter.Number)
	assert.Equal(t, "Seven", chapter.Title)
	require.NotNil(t, chapter.Group)
	assert.Equal(t, "g", chapter.Group.ID)
}

func TestMangaDex_GetPages(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/at-home/server/c1": `{"result":"ok","baseUrl":"https://node.example",
		"chapter":{"hash":"h4sh","data":["1.png","2.png"],"dataSaver":["1.jpg","2.jpg"]}}`})

	pages, err := f.source().GetPages(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "c1", pages.ChapterID)
	assert.Equal(t, "h4sh", pages.Hash)
	assert.Equal(t, []string{"1.png", "2.png"}, pages.Data)
	assert.Equal(t, []string{"1.jpg", "2.jpg"}, pages.DataSaver)
	assert.Equal(t, []string{
		"https://uploads.example/data/h4sh/1.png",
		"https://uploads.example/data/h4sh/2.png",
	}, pages.PageURLs(f.source().UploadsURL(), false))
}

func TestMangaDex_GetPagesMissingHash(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/at-home/server/c1": `{"result":"ok","chapter":{"data":[]}}`})

	_, err := f.source().GetPages(context.Background(), "c1")
	assert.Error(t, err)
}

func TestMangaDex_MalformedBody(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/manga": `{"data":[{"id":"m","attributes":{"title":"not a map"}}]}`})

	_, err := f.source().Trending(context.Background())
	assert.Error(t, err)
}

func TestMangaDex_UsesConfiguredLimits(t *testing.T) {
	f := newFakeMangaDex(t, map[string]string{"/manga": `{"data":[]}`, "/chapter": `{"data":[]}`})
	cfg := config.Default()
	cfg.APIURL = f.URL
	cfg.ListLimit = 5
	cfg.ChapterLimit = 30
	cfg.Language = "fr"
	cfg.ContentRatings = []string{"safe"}
	source := NewMangaDex(cfg, f.Client())

	_, err := source.Trending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "5", f.lastQuery(t).Get("limit"))
	assert.Equal(t, []string{"safe"}, f.lastQuery(t)["contentRating[]"])

	_, err = source.GetChapters(context.Background(), "m")
	require.NoError(t, err)
	assert.Equal(t, "30", f.lastQuery(t).Get("limit"))
	assert.Equal(t, []string{"fr"}, f.lastQuery(t)["translatedLanguage[]"])
}
