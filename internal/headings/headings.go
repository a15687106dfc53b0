// Package headings assigns stable anchor ids to document headings and keeps
// the per-document record the compiler and the link validator consume.
package headings

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-articles/internal/textutil"
)

// Heading describes one heading encountered during a compilation pass.
// Text keeps the rendered inline HTML; Raw is the entity-decoded, tag-stripped
// plain text used for TOC labels and slugging.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Raw   string `json:"raw"`
	ID    string `json:"id"`
}

// Collector assigns collision-free ids within one document. State is scoped
// to a single compilation pass; the compiler creates a fresh Collector per
// document so slug counters never leak across entries.
type Collector struct {
	occupied map[string]struct{}
	counters map[string]int
	headings []Heading
}

// NewCollector returns an empty per-document collector.
func NewCollector() *Collector {
	return &Collector{
		occupied: map[string]struct{}{},
		counters: map[string]int{},
	}
}

// Add records a heading with its rendered inline HTML and returns the
// completed record, including the assigned id.
func (c *Collector) Add(level int, text string) Heading {
	raw := textutil.StripTags(textutil.DecodeEntities(text))
	h := Heading{
		Level: level,
		Text:  text,
		Raw:   raw,
		ID:    c.Slug(raw),
	}
	c.headings = append(c.headings, h)
	return h
}

// Slug assigns an id for the given heading text. Collision counters are
// keyed by the exact slugified base, so a heading whose literal text already
// looks like "foo 1" occupies "foo-1" without perturbing the counter for
// "foo"; later collisions of "foo" skip over occupied ids.
func (c *Collector) Slug(text string) string {
	base := slugify(text)

	candidate := base
	for {
		if _, taken := c.occupied[candidate]; !taken {
			break
		}
		c.counters[base]++
		candidate = base + "-" + strconv.Itoa(c.counters[base])
	}

	c.occupied[candidate] = struct{}{}
	return candidate
}

// Headings returns the records collected so far, in document order.
func (c *Collector) Headings() []Heading {
	return append([]Heading(nil), c.headings...)
}

// slugify lowercases the text, drops punctuation, and turns spaces into
// hyphens. Letters outside ASCII keep their diacritics; nothing is
// transliterated.
func slugify(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
