package panshare

// Share link and article constants. The crawler targets one knowledge base,
// so the site shape (collection segment, page suffix, share host) is fixed.
const (
	// CollectionSegment is the URL path segment that marks article pages.
	CollectionSegment = "/jprj/"

	// MarkupSuffix is the file suffix of article pages.
	MarkupSuffix = ".html"

	// ShareHost is the host of Baidu Netdisk share links.
	ShareHost = "pan.baidu.com"

	// DefaultTitle is substituted when no title extraction strategy yields
	// a value.
	DefaultTitle = "Untitled"
)

// ShareLink represents a Baidu Netdisk share link with an optional access
// password. Password is nil when no password could be resolved; it
// serializes as JSON null so consumers can tell "no password" from an empty
// string.
type ShareLink struct {
	URL      string  `json:"url"`
	Password *string `json:"password"`
}

// Article represents the structured record extracted from one article page.
// SEOTags and ShareLinks preserve first-seen order and contain no
// duplicates; both may be empty but are never nil, so they serialize as
// JSON arrays.
type Article struct {
	SourceURL  string      `json:"source_url"`
	Title      string      `json:"title"`
	SEOTags    []string    `json:"seo_tags"`
	ShareLinks []ShareLink `json:"share_links"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	return nil
}
