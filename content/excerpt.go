package content

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-articles/internal/textutil"
)

const bigParagraphMinLength = 100

var (
	imgTagPattern     = regexp.MustCompile(`<img[^>]*>`)
	paragraphPattern  = regexp.MustCompile(`(?s)<p[^>]*>.*?</p>`)
	anchorOpenPattern = regexp.MustCompile(`<a[^>]*>`)
)

// ExtractFirstBigParagraph picks a representative paragraph for list views:
// the first <p> block whose text-only length exceeds 100 characters, the
// first paragraph as fallback, or the empty string when none exists. Images
// are removed up front; anchors are unwrapped to their inner text so list
// views carry no outbound links.
func ExtractFirstBigParagraph(html string) string {
	withoutImages := imgTagPattern.ReplaceAllString(html, "")

	paragraphs := paragraphPattern.FindAllString(withoutImages, -1)
	if len(paragraphs) == 0 {
		return ""
	}

	chosen := paragraphs[0]
	for _, p := range paragraphs {
		if utf8.RuneCountInString(textutil.StripTags(p)) > bigParagraphMinLength {
			chosen = p
			break
		}
	}

	chosen = anchorOpenPattern.ReplaceAllString(chosen, "")
	return strings.ReplaceAll(chosen, "</a>", "")
}
