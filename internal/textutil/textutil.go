// Package textutil provides the small HTML-oriented string transforms shared
// by the compiler, the heading collector, and the list projections.
package textutil

import (
	"regexp"
	"strings"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes the characters that are unsafe inside HTML text and
// attribute positions. The renderer hands us raw alt/title text, so this is
// applied before any attribute is emitted.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var entityDecoder = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&#x27;", "'",
	"&#x2F;", "/",
	"&amp;", "&",
)

// DecodeEntities reverses the limited entity set emitted by EscapeHTML and by
// the Markdown renderer (including the hex apostrophe and slash forms). It is
// intentionally not a general entity decoder; heading text only ever carries
// this set.
func DecodeEntities(s string) string {
	return entityDecoder.Replace(s)
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes every HTML tag, keeping the text content.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
