package sources

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// LocalizedString is a language-code → text object that remembers the order
// its keys appeared in the response.
type LocalizedString struct {
	langs  []string
	values map[string]string
}

// NewLocalizedString builds a value from alternating language/text pairs.
func NewLocalizedString(pairs ...string) LocalizedString {
	var ls LocalizedString
	for i := 0; i+1 < len(pairs); i += 2 {
		ls.set(pairs[i], pairs[i+1])
	}
	return ls
}

func (ls *LocalizedString) set(lang, value string) {
	if ls.values == nil {
		ls.values = make(map[string]string)
	}
	if _, ok := ls.values[lang]; !ok {
		ls.langs = append(ls.langs, lang)
	}
	ls.values[lang] = value
}

func (ls LocalizedString) Get(lang string) (string, bool) {
	v, ok := ls.values[lang]
	return v, ok
}

func (ls LocalizedString) Len() int {
	return len(ls.langs)
}

// Preferred returns the English text when it is non-empty, otherwise the
// first non-empty entry in response order.
func (ls LocalizedString) Preferred() string {
	if v := ls.values["en"]; v != "" {
		return v
	}
	for _, lang := range ls.langs {
		if v := ls.values[lang]; v != "" {
			return v
		}
	}
	return ""
}

func (ls *LocalizedString) UnmarshalJSON(b []byte) error {
	*ls = LocalizedString{}
	b = bytes.TrimSpace(b)
	// The upstream encodes an empty map as [] in a few places.
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte("[]")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("localized string: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		lang := tok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("localized string %q: %w", lang, err)
		}
		ls.set(lang, value)
	}
	_, err = dec.Token()
	return err
}

type RelationshipType string

const (
	TypeCoverArt        RelationshipType = "cover_art"
	TypeAuthor          RelationshipType = "author"
	TypeArtist          RelationshipType = "artist"
	TypeScanlationGroup RelationshipType = "scanlation_group"
)

// Relationship is one decoded entry of a record's relationships array:
// CoverArt, Author, Artist, ScanlationGroupRef or UnknownRelationship.
type Relationship interface {
	RelationshipID() string
	Kind() RelationshipType
}

type CoverArt struct {
	ID       string
	FileName string
}

type Author struct {
	ID   string
	Name string
}

type Artist struct {
	ID   string
	Name string
}

type ScanlationGroupRef struct {
	ID   string
	Name string
}

// UnknownRelationship keeps types this reader does not render (manga, user, creator...).
type UnknownRelationship struct {
	ID   string
	Type RelationshipType
}

func (r CoverArt) RelationshipID() string            { return r.ID }
func (r CoverArt) Kind() RelationshipType            { return TypeCoverArt }
func (r Author) RelationshipID() string              { return r.ID }
func (r Author) Kind() RelationshipType              { return TypeAuthor }
func (r Artist) RelationshipID() string              { return r.ID }
func (r Artist) Kind() RelationshipType              { return TypeArtist }
func (r ScanlationGroupRef) RelationshipID() string  { return r.ID }
func (r ScanlationGroupRef) Kind() RelationshipType  { return TypeScanlationGroup }
func (r UnknownRelationship) RelationshipID() string { return r.ID }
func (r UnknownRelationship) Kind() RelationshipType { return r.Type }

// Relationships decodes a relationships array into typed variants.
type Relationships []Relationship

func (rs *Relationships) UnmarshalJSON(b []byte) error {
	var raw []struct {
		ID         string           `json:"id"`
		Type       RelationshipType `json:"type"`
		Attributes json.RawMessage  `json:"attributes"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	out := make(Relationships, 0, len(raw))
	for _, r := range raw {
		// attributes are only present when the relationship was expanded with includes[].
		var attrs struct {
			FileName string `json:"fileName"`
			Name     string `json:"name"`
		}
		if len(r.Attributes) > 0 && !bytes.Equal(r.Attributes, []byte("null")) {
			if err := json.Unmarshal(r.Attributes, &attrs); err != nil {
				return fmt.Errorf("relationship %s (%s): %w", r.ID, r.Type, err)
			}
		}

		switch r.Type {
		case TypeCoverArt:
			out = append(out, CoverArt{ID: r.ID, FileName: attrs.FileName})
		case TypeAuthor:
			out = append(out, Author{ID: r.ID, Name: attrs.Name})
		case TypeArtist:
			out = append(out, Artist{ID: r.ID, Name: attrs.Name})
		case TypeScanlationGroup:
			out = append(out, ScanlationGroupRef{ID: r.ID, Name: attrs.Name})
		default:
			out = append(out, UnknownRelationship{ID: r.ID, Type: r.Type})
		}
	}
	*rs = out
	return nil
}

type TagRecord struct {
	ID         string `json:"id"`
	Attributes struct {
		Name  LocalizedString `json:"name"`
		Group string          `json:"group"`
	} `json:"attributes"`
}

type MangaRecord struct {
	ID         string `json:"id"`
	Attributes struct {
		Title                  LocalizedString `json:"title"`
		Description            LocalizedString `json:"description"`
		Status                 string          `json:"status"`
		Year                   *int            `json:"year"`
		ContentRating          string          `json:"contentRating"`
		OriginalLanguage       string          `json:"originalLanguage"`
		PublicationDemographic string          `json:"publicationDemographic"`
		Tags                   []TagRecord     `json:"tags"`
	} `json:"attributes"`
	Relationships Relationships `json:"relationships"`
}

type ChapterRecord struct {
	ID         string `json:"id"`
	Attributes struct {
		Volume             string    `json:"volume"`
		Chapter            string    `json:"chapter"`
		Title              string    `json:"title"`
		TranslatedLanguage string    `json:"translatedLanguage"`
		PublishAt          time.Time `json:"publishAt"`
		Pages              int       `json:"pages"`
	} `json:"attributes"`
	Relationships Relationships `json:"relationships"`
}

type mangaListResponse struct {
	Data []MangaRecord `json:"data"`
}

type mangaResponse struct {
	Data MangaRecord `json:"data"`
}

type chapterListResponse struct {
	Data []ChapterRecord `json:"data"`
}

type chapterResponse struct {
	Data ChapterRecord `json:"data"`
}

type AtHomeResponse struct {
	Result  string `json:"result"`
	BaseURL string `json:"baseUrl"`
	Chapter struct {
		Hash      string   `json:"hash"`
		Data      []string `json:"data"`
		DataSaver []string `json:"dataSaver"`
	} `json:"chapter"`
}
