package content

// BlogListMeta is the published-list-safe projection of blog metadata.
// Hidden, sticky, darkenHeader, keywords, and bio never appear in list
// output; author2/mail2/isUpdatePost appear only when the source entry set
// them.
type BlogListMeta struct {
	Title        string       `json:"title"`
	Published    string       `json:"published"`
	LastModified string       `json:"lastModified,omitempty"`
	Header       *HeaderImage `json:"header,omitempty"`
	Author       string       `json:"author,omitempty"`
	Mail         string       `json:"mail,omitempty"`
	Language     string       `json:"language,omitempty"`
	Author2      string       `json:"author2,omitempty"`
	Mail2        string       `json:"mail2,omitempty"`
	IsUpdatePost *bool        `json:"isUpdatePost,omitempty"`
}

// BlogListEntry is one abbreviated blog entry for the collection list.
type BlogListEntry struct {
	Slug string       `json:"slug"`
	HTML string       `json:"html"`
	Meta BlogListMeta `json:"meta"`
}

// MakeLightBlogList filters hidden entries, reduces each body to its
// representative paragraph, and projects the metadata to the blog
// allow-list. Input order is preserved.
func MakeLightBlogList(entries []Entry) []BlogListEntry {
	out := make([]BlogListEntry, 0, len(entries))
	for _, e := range entries {
		if e.Meta.Hidden {
			continue
		}
		out = append(out, BlogListEntry{
			Slug: e.Slug,
			HTML: ExtractFirstBigParagraph(e.HTML),
			Meta: BlogListMeta{
				Title:        e.Meta.Title,
				Published:    e.Meta.Published,
				LastModified: e.Meta.LastModified,
				Header:       e.Meta.Header,
				Author:       e.Meta.Author,
				Mail:         e.Meta.Mail,
				Language:     e.Meta.Language,
				Author2:      e.Meta.Author2,
				Mail2:        e.Meta.Mail2,
				IsUpdatePost: e.Meta.IsUpdatePost,
			},
		})
	}
	return out
}

// ListMeta is the published-list-safe projection of material metadata.
type ListMeta struct {
	Title        string       `json:"title"`
	Published    string       `json:"published"`
	LastModified string       `json:"lastModified,omitempty"`
	Header       *HeaderImage `json:"header,omitempty"`
	Language     string       `json:"language,omitempty"`
}

// ListEntry is one abbreviated material entry for the collection list.
type ListEntry struct {
	Slug string   `json:"slug"`
	HTML string   `json:"html"`
	Meta ListMeta `json:"meta"`
}

// MakeLightList is the material counterpart of MakeLightBlogList.
func MakeLightList(entries []Entry) []ListEntry {
	out := make([]ListEntry, 0, len(entries))
	for _, e := range entries {
		if e.Meta.Hidden {
			continue
		}
		out = append(out, ListEntry{
			Slug: e.Slug,
			HTML: ExtractFirstBigParagraph(e.HTML),
			Meta: ListMeta{
				Title:        e.Meta.Title,
				Published:    e.Meta.Published,
				LastModified: e.Meta.LastModified,
				Header:       e.Meta.Header,
				Language:     e.Meta.Language,
			},
		})
	}
	return out
}
