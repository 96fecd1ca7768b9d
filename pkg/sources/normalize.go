package sources

import "github.com/kerbaras/mangaread/pkg/data"

// NormalizeTitle flattens a manga record into the details view model. List
// screens use its embedded TitleSummary.
func NormalizeTitle(record MangaRecord, uploadsURL string) data.TitleDetail {
	attrs := record.Attributes

	detail := data.TitleDetail{
		TitleSummary: data.TitleSummary{
			ID:            record.ID,
			Title:         attrs.Title.Preferred(),
			Description:   attrs.Description.Preferred(),
			Status:        attrs.Status,
			ContentRating: attrs.ContentRating,
			Tags:          make([]string, 0, len(attrs.Tags)),
		},
		OriginalLanguage: attrs.OriginalLanguage,
		Demographic:      attrs.PublicationDemographic,
		Authors:          []string{},
		Artists:          []string{},
	}
	if attrs.Year != nil {
		detail.Year = *attrs.Year
	}
	for _, tag := range attrs.Tags {
		detail.Tags = append(detail.Tags, tag.Attributes.Name.Preferred())
	}

	for _, rel := range record.Relationships {
		switch r := rel.(type) {
		case CoverArt:
			detail.CoverFile = r.FileName
		case Author:
			detail.Authors = append(detail.Authors, r.Name)
		case Artist:
			detail.Artists = append(detail.Artists, r.Name)
		}
	}
	detail.CoverURL = data.CoverURL(uploadsURL, record.ID, detail.CoverFile)

	return detail
}

// NormalizeTitles keeps the upstream order.
func NormalizeTitles(records []MangaRecord, uploadsURL string) []data.TitleSummary {
	out := make([]data.TitleSummary, len(records))
	for i, record := range records {
		out[i] = NormalizeTitle(record, uploadsURL).TitleSummary
	}
	return out
}

func NormalizeChapter(record ChapterRecord) data.ChapterSummary {
	attrs := record.Attributes
	return data.ChapterSummary{
		ID:        record.ID,
		Number:    attrs.Chapter,
		Volume:    attrs.Volume,
		Title:     attrs.Title,
		Language:  attrs.TranslatedLanguage,
		PublishAt: attrs.PublishAt,
		Pages:     attrs.Pages,
		Group:     scanlationGroup(record.Relationships),
	}
}

// NormalizeChapters keeps the upstream order; the request already asks for
// ascending chapter numbers.
func NormalizeChapters(records []ChapterRecord) []data.ChapterSummary {
	out := make([]data.ChapterSummary, len(records))
	for i, record := range records {
		out[i] = NormalizeChapter(record)
	}
	return out
}

func scanlationGroup(rels Relationships) *data.ScanlationGroup {
	for _, rel := range rels {
		if g, ok := rel.(ScanlationGroupRef); ok {
			return &data.ScanlationGroup{ID: g.ID, Name: g.Name}
		}
	}
	return nil
}
