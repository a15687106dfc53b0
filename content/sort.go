package content

import "sort"

// Less orders entries for listing: sticky entries first, then more recent
// published dates (ISO strings compare lexicographically), ties broken by
// slug descending. Slugs are unique within a collection, so this is a total
// order.
func Less(a, b Entry) bool {
	if a.Meta.Sticky != b.Meta.Sticky {
		return a.Meta.Sticky
	}
	if a.Meta.Published != b.Meta.Published {
		return a.Meta.Published > b.Meta.Published
	}
	return a.Slug > b.Slug
}

// SortEntries sorts in place using Less.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Less(entries[i], entries[j])
	})
}
