package markdown

import (
	"path"
	"regexp"
	"strings"
)

const (
	// ImagePlaceholder stands in for the eventual image CDN origin in all
	// generated URLs; consuming systems substitute it at deploy time.
	ImagePlaceholder = "%%IMAGE_BASE%%"
	// LocalAssetPrefix marks site-served assets that must never be
	// rewritten.
	LocalAssetPrefix = "/assets/"
)

var schemePattern = regexp.MustCompile(`^\w+:`)

// IsAbsoluteURL reports whether a URL must pass through untouched: any
// scheme (https:, mailto:, tel:, ...), protocol-relative, rooted paths, the
// local asset prefix, or the image placeholder token.
func IsAbsoluteURL(u string) bool {
	return schemePattern.MatchString(u) ||
		strings.HasPrefix(u, "//") ||
		strings.HasPrefix(u, "/") ||
		strings.HasPrefix(u, LocalAssetPrefix) ||
		strings.HasPrefix(u, ImagePlaceholder)
}

// NormalizeRelativePath strips a leading "./" from a relative reference.
func NormalizeRelativePath(p string) string {
	return strings.TrimPrefix(p, "./")
}

// The rewrite passes pattern-match over self-generated HTML: one src/href
// per tag, single or double quoting, no embedded quote characters. That
// grammar is guaranteed by the renderer, so no HTML parser is needed.
var (
	imgSrcDouble = regexp.MustCompile(`(<img[^>]*\ssrc=")([^"]*)(")`)
	imgSrcSingle = regexp.MustCompile(`(<img[^>]*\ssrc=')([^']*)(')`)
	hrefDouble   = regexp.MustCompile(`(<a[^>]*\shref=")([^"]*)(")`)
	hrefSingle   = regexp.MustCompile(`(<a[^>]*\shref=')([^']*)(')`)
)

// RewriteImageSources rewrites every non-absolute <img src> against the
// image base URL. This second pass catches raw HTML images that never went
// through the Markdown image renderer.
func RewriteImageSources(html, imageBaseURL string) string {
	rewrite := func(re *regexp.Regexp, in string) string {
		return re.ReplaceAllStringFunc(in, func(match string) string {
			parts := re.FindStringSubmatch(match)
			if IsAbsoluteURL(parts[2]) {
				return match
			}
			return parts[1] + imageBaseURL + NormalizeRelativePath(parts[2]) + parts[3]
		})
	}
	return rewrite(imgSrcSingle, rewrite(imgSrcDouble, html))
}

// RewriteLinkHrefs resolves every non-absolute <a href> against the
// document's canonical path.
func RewriteLinkHrefs(html, linkBasePath string) string {
	rewrite := func(re *regexp.Regexp, in string) string {
		return re.ReplaceAllStringFunc(in, func(match string) string {
			parts := re.FindStringSubmatch(match)
			if IsAbsoluteURL(parts[2]) {
				return match
			}
			return parts[1] + ResolveLink(parts[2], linkBasePath) + parts[3]
		})
	}
	return rewrite(hrefSingle, rewrite(hrefDouble, html))
}

// ResolveLink resolves a relative href against the document's canonical
// absolute path with POSIX join semantics. The fragment is split off before
// resolution and reattached after; a bare fragment addresses the document
// itself.
func ResolveLink(href, basePath string) string {
	if href == "" {
		return basePath
	}

	pathPart, fragment, hasFragment := strings.Cut(href, "#")
	if pathPart == "" {
		return basePath + "#" + fragment
	}

	resolved := path.Join(basePath, NormalizeRelativePath(pathPart))
	if hasFragment {
		return resolved + "#" + fragment
	}
	return resolved
}
