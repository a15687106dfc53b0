// Package frontmatter splits raw documents into their YAML block and
// Markdown body and parses the block into entry metadata.
//
// The separator match is deliberately anchored on space/tab runs only
// (`---[ \t]*`), not on arbitrary whitespace: a `\s*` pattern would also
// consume newlines and shift where the second separator is found when a
// blank line follows the dashes. This anchoring is load-bearing behaviour,
// not a candidate for cleanup.
package frontmatter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissing reports a document without a front-matter block. Front
	// matter is mandatory for every entry.
	ErrMissing = errors.New("frontmatter: front matter is required")
	// ErrInvalid reports a block that is not a YAML mapping.
	ErrInvalid = errors.New("frontmatter: front matter must be a YAML mapping")
)

// ParseError wraps a YAML or validation failure with the offending document
// path when known.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("frontmatter: %v", e.Err)
	}
	return fmt.Sprintf("frontmatter %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var separatorPattern = regexp.MustCompile(`^---[ \t]*$`)

// Separate splits a raw document into its YAML block and Markdown body. The
// YAML block is the content between the first and second separator lines;
// everything after the second separator is the body. When either separator
// is missing the whole input is treated as body with an empty YAML block.
func Separate(source string) (yamlBlock, body string) {
	lines := strings.Split(source, "\n")

	first := -1
	second := -1
	for i, line := range lines {
		if !separatorPattern.MatchString(line) {
			continue
		}
		if first == -1 {
			first = i
			continue
		}
		second = i
		break
	}

	if first == -1 || second == -1 {
		return "", source
	}

	yamlBlock = strings.Join(lines[first+1:second], "\n")
	body = strings.Join(lines[second+1:], "\n")
	return yamlBlock, body
}

// ISODate normalizes YAML date values to ISO-8601 strings. Both native YAML
// timestamps and plain strings are accepted; string form is required for
// lexicographic sorting and JSON stability downstream.
type ISODate string

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *ISODate) UnmarshalYAML(value *yaml.Node) error {
	var t time.Time
	if err := value.Decode(&t); err == nil {
		*d = ISODate(t.UTC().Format(time.RFC3339))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*d = ISODate(normalizeDate(s))
	return nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeDate rewrites recognizable date strings to RFC 3339. Unknown
// formats pass through unchanged; validation only requires presence.
func normalizeDate(s string) string {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return s
}

// Meta carries the front-matter fields shared by both collections plus the
// blog-specific extras. Optional fields keep their zero value when absent;
// IsUpdatePost stays nil so projections can distinguish "absent" from
// "false".
type Meta struct {
	Title        string   `yaml:"title"`
	Published    ISODate  `yaml:"published"`
	LastModified ISODate  `yaml:"lastModified"`
	Hidden       bool     `yaml:"hidden"`
	Sticky       bool     `yaml:"sticky"`
	Header       string   `yaml:"header"`
	Author       string   `yaml:"author"`
	Mail         string   `yaml:"mail"`
	Language     string   `yaml:"language"`
	DarkenHeader bool     `yaml:"darkenHeader"`
	Keywords     []string `yaml:"keywords"`
	Author2      string   `yaml:"author2"`
	Mail2        string   `yaml:"mail2"`
	IsUpdatePost *bool    `yaml:"isUpdatePost"`
	Bio          string   `yaml:"bio"`
}

// Validate enforces the required-field contract up front instead of letting
// missing titles or dates surface at first use.
func (m Meta) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Published, validation.Required),
	)
}

// Parse splits the document and decodes its YAML block. An empty or
// non-mapping block fails with ErrMissing/ErrInvalid; a mapping missing the
// required fields fails validation. The Markdown body is returned untouched.
func Parse(source string) (Meta, string, error) {
	yamlBlock, body := Separate(source)

	if strings.TrimSpace(yamlBlock) == "" {
		return Meta{}, "", ErrMissing
	}

	var probe yaml.Node
	if err := yaml.Unmarshal([]byte(yamlBlock), &probe); err != nil {
		return Meta{}, "", &ParseError{Err: err}
	}
	if len(probe.Content) == 0 || probe.Content[0].Kind != yaml.MappingNode {
		return Meta{}, "", ErrInvalid
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(yamlBlock), &meta); err != nil {
		return Meta{}, "", &ParseError{Err: err}
	}
	if err := meta.Validate(); err != nil {
		return Meta{}, "", &ParseError{Err: err}
	}

	return meta, body, nil
}
