package content

import "github.com/goliatone/go-slug"

// IsValidSlug reports whether an entry folder name satisfies the default
// slug rules. Folder names become URL path segments, so the build warns on
// anything that would not survive as one.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// SuggestSlug returns the normalized form of a folder name for the warning
// the build emits on unclean names. The original is returned unchanged when
// normalization fails.
func SuggestSlug(value string) string {
	normalized, err := slug.Normalize(value)
	if err != nil {
		return value
	}
	return normalized
}
