// Package links checks referential integrity of internal anchor links
// across the whole corpus. The validator is diagnostic only: it never fails
// a build, it reports.
package links

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/internal/similarity"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// AnchorLink is one internal link with a fragment, observed in rendered
// HTML.
type AnchorLink struct {
	FromPath string `json:"fromPath"`
	ToPath   string `json:"toPath"`
	Anchor   string `json:"anchor"`
	FullLink string `json:"fullLink"`
}

// BrokenLink describes a link whose target path or anchor does not exist.
type BrokenLink struct {
	AnchorLink
	// TargetMissing is true when the destination path is not registered at
	// all (as opposed to the path existing without the anchor).
	TargetMissing bool `json:"targetMissing"`
	// Suggestions lists up to three known ids close to the requested
	// anchor, nearest first. Empty when the target path is missing.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report is the outcome of one validation run.
type Report struct {
	Valid       bool
	TotalLinks  int
	BrokenLinks []BrokenLink
}

// Validator accumulates anchors and links for the lifetime of one build.
// The build driver owns the instance and threads it through the collection
// loop; Reset isolates independent runs.
type Validator struct {
	anchors map[string]map[string]struct{}
	links   []AnchorLink
	logger  interfaces.Logger
}

// New constructs an empty validator. A nil logger falls back to the no-op
// implementation.
func New(logger interfaces.Logger) *Validator {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Validator{
		anchors: map[string]map[string]struct{}{},
		logger:  logger,
	}
}

// RegisterAnchors unions the given heading ids into the set stored for path.
func (v *Validator) RegisterAnchors(path string, ids []string) {
	set, ok := v.anchors[path]
	if !ok {
		set = map[string]struct{}{}
		v.anchors[path] = set
	}
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

var anchorTagPattern = regexp.MustCompile(`<a[^>]*\shref=(?:"([^"]*)"|'([^']*)')`)

// RegisterLinks scans rendered HTML for internal links carrying a fragment
// and appends them in encounter order. External links (http/https,
// protocol-relative, mailto, tel) are skipped.
func (v *Validator) RegisterLinks(fromPath, html string) {
	for _, match := range anchorTagPattern.FindAllStringSubmatch(html, -1) {
		href := match[1]
		if href == "" {
			href = match[2]
		}
		if !strings.Contains(href, "#") {
			continue
		}
		if isExternal(href) {
			continue
		}

		pathPart, anchor, _ := strings.Cut(href, "#")
		// Renderers may percent-encode non-ASCII fragment characters.
		if decoded, err := url.PathUnescape(anchor); err == nil {
			anchor = decoded
		}

		toPath := pathPart
		if toPath == "" {
			toPath = fromPath
		}

		v.links = append(v.links, AnchorLink{
			FromPath: fromPath,
			ToPath:   toPath,
			Anchor:   anchor,
			FullLink: href,
		})
	}
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") ||
		strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "//") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:")
}

// Validate checks every registered link against the anchor registry. The
// broken-link order matches registration order.
func (v *Validator) Validate() Report {
	var broken []BrokenLink

	for _, link := range v.links {
		ids, ok := v.anchors[link.ToPath]
		if !ok {
			broken = append(broken, BrokenLink{AnchorLink: link, TargetMissing: true})
			continue
		}
		if _, found := ids[link.Anchor]; found {
			continue
		}
		broken = append(broken, BrokenLink{
			AnchorLink:  link,
			Suggestions: v.suggest(link.Anchor, ids),
		})
	}

	report := Report{
		Valid:       len(broken) == 0,
		TotalLinks:  len(v.links),
		BrokenLinks: broken,
	}

	if report.Valid {
		v.logger.Info("anchor links validated", "total", report.TotalLinks)
	} else {
		v.logger.Warn("broken anchor links found",
			"total", report.TotalLinks,
			"broken", len(report.BrokenLinks),
		)
	}

	return report
}

const (
	maxSuggestionDistance = 3
	maxSuggestions        = 3
)

// suggest ranks the target's known ids by edit distance to the requested
// anchor and keeps the closest three.
func (v *Validator) suggest(anchor string, ids map[string]struct{}) []string {
	candidates := make([]string, 0, len(ids))
	for id := range ids {
		candidates = append(candidates, id)
	}

	matches := similarity.FindSimilar(anchor, candidates, maxSuggestionDistance)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}
	return matches
}

// Reset clears both registries so the validator can serve another build.
func (v *Validator) Reset() {
	v.anchors = map[string]map[string]struct{}{}
	v.links = nil
}
