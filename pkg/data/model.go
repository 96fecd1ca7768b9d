package data

import (
	"fmt"
	"strings"
	"time"
)

// TitleSummary is what list and search screens render for one series.
type TitleSummary struct {
	ID            string
	Title         string
	CoverFile     string
	CoverURL      string // empty when the series has no cover
	Description   string
	Status        string
	Year          int // 0 when unknown
	ContentRating string
	Tags          []string
}

// TitleDetail is the details screen model.
type TitleDetail struct {
	TitleSummary
	OriginalLanguage string
	Demographic      string
	Authors          []string
	Artists          []string
	Chapters         []ChapterSummary
}

type ScanlationGroup struct {
	ID   string
	Name string
}

type ChapterSummary struct {
	ID        string
	Number    string // not always numeric: "10.5", "Extra", or empty for oneshots
	Volume    string
	Title     string
	Language  string
	PublishAt time.Time
	Pages     int
	Group     *ScanlationGroup
}

// ChapterPages is the page manifest of one chapter.
type ChapterPages struct {
	ChapterID string
	Chapter   *ChapterSummary
	Hash      string
	Data      []string
	DataSaver []string
	Group     *ScanlationGroup
}

// CoverURL derives the cover image URL, or "" when file is empty.
func CoverURL(uploadsURL, titleID, file string) string {
	if file == "" {
		return ""
	}
	return fmt.Sprintf("%s/covers/%s/%s", strings.TrimRight(uploadsURL, "/"), titleID, file)
}

// PageURLs returns one URL per page filename, in manifest order.
func (p *ChapterPages) PageURLs(uploadsURL string, dataSaver bool) []string {
	files, segment := p.Data, "data"
	if dataSaver {
		files, segment = p.DataSaver, "data-saver"
	}
	base := strings.TrimRight(uploadsURL, "/")
	urls := make([]string, len(files))
	for i, file := range files {
		urls[i] = fmt.Sprintf("%s/%s/%s/%s", base, segment, p.Hash, file)
	}
	return urls
}

// PageCount is the number of pages in the chosen resolution.
func (p *ChapterPages) PageCount(dataSaver bool) int {
	if dataSaver {
		return len(p.DataSaver)
	}
	return len(p.Data)
}

// Label renders "Chapter N: Title", falling back to "No Title".
func (c ChapterSummary) Label() string {
	title := c.Title
	if title == "" {
		title = "No Title"
	}
	if c.Number == "" {
		return fmt.Sprintf("Oneshot: %s", title)
	}
	return fmt.Sprintf("Chapter %s: %s", c.Number, title)
}
