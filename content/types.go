// Package content defines compiled entries and their projections. An Entry
// is created once per source folder per build and is immutable afterward.
package content

import (
	"github.com/goliatone/go-articles/internal/frontmatter"
)

// Collection identifies one of the two entry corpora.
type Collection string

const (
	CollectionBlog     Collection = "blog"
	CollectionMaterial Collection = "material"
)

// BasePath returns the canonical URL prefix for entries of the collection.
func (c Collection) BasePath() string {
	return "/" + string(c)
}

// HeaderImage is the processed form of the front-matter header field. Width
// and Height are always set when the struct exists; probing failure aborts
// the build instead of emitting a partial header.
type HeaderImage struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// EntryMeta carries the normalized front-matter fields written to
// entry.json.
type EntryMeta struct {
	Title        string       `json:"title"`
	Published    string       `json:"published"`
	LastModified string       `json:"lastModified,omitempty"`
	Hidden       bool         `json:"hidden"`
	Sticky       bool         `json:"sticky"`
	Header       *HeaderImage `json:"header,omitempty"`
	Author       string       `json:"author,omitempty"`
	Mail         string       `json:"mail,omitempty"`
	Language     string       `json:"language,omitempty"`
	DarkenHeader bool         `json:"darkenHeader,omitempty"`
	Keywords     []string     `json:"keywords,omitempty"`
	Author2      string       `json:"author2,omitempty"`
	Mail2        string       `json:"mail2,omitempty"`
	IsUpdatePost *bool        `json:"isUpdatePost,omitempty"`
	Bio          string       `json:"bio,omitempty"`
}

// NewMeta converts parsed front matter into entry metadata. The header
// image stays unset here; the build driver attaches it after probing.
func NewMeta(fm frontmatter.Meta) EntryMeta {
	return EntryMeta{
		Title:        fm.Title,
		Published:    string(fm.Published),
		LastModified: string(fm.LastModified),
		Hidden:       fm.Hidden,
		Sticky:       fm.Sticky,
		Author:       fm.Author,
		Mail:         fm.Mail,
		Language:     fm.Language,
		DarkenHeader: fm.DarkenHeader,
		Keywords:     append([]string(nil), fm.Keywords...),
		Author2:      fm.Author2,
		Mail2:        fm.Mail2,
		IsUpdatePost: fm.IsUpdatePost,
		Bio:          fm.Bio,
	}
}

// Entry is one compiled article or material item.
type Entry struct {
	Slug string    `json:"slug"`
	HTML string    `json:"html"`
	Meta EntryMeta `json:"meta"`
}
