package panshare

import "context"

// ArticleExtractor builds an Article from one page's raw markup.
// Extraction is deterministic: identical input yields identical output,
// including ordering.
type ArticleExtractor interface {
	// Extract parses the markup and returns the article record.
	// The title falls back through a fixed strategy chain ending in
	// DefaultTitle, so it is never empty.
	Extract(sourceURL, html string) (*Article, error)
}

// ListingEnumerator discovers article URLs from listing-page markup.
type ListingEnumerator interface {
	// Enumerate returns up to limit absolute article URLs in document
	// order, deduplicated by exact string, with relative hrefs resolved
	// against listingURL.
	Enumerate(html, listingURL string, limit int) ([]string, error)
}

// ArticleSource discovers article URLs without scanning a listing page,
// e.g. from the site's XML sitemap.
type ArticleSource interface {
	// Discover returns up to limit article URLs for the site at baseURL.
	Discover(ctx context.Context, baseURL string, limit int) ([]string, error)
}
