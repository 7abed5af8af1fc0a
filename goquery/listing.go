package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/panshare"
)

// Ensure Enumerator implements panshare.ListingEnumerator at compile time.
var _ panshare.ListingEnumerator = (*Enumerator)(nil)

// Enumerator discovers article URLs from listing-page markup by scanning
// anchors in document order.
type Enumerator struct{}

// NewEnumerator creates a new Enumerator.
func NewEnumerator() *Enumerator {
	return &Enumerator{}
}

// Enumerate returns up to limit absolute article URLs from the listing
// markup. An href qualifies when it contains the article collection segment
// and ends with the markup suffix. Hrefs starting with "/" are resolved
// against listingURL's scheme and host, absolute http(s) hrefs are used as
// is, and any other shape is discarded. URLs are deduplicated by exact
// string, keeping the first occurrence, and the scan stops as soon as limit
// distinct URLs are collected.
func (e *Enumerator) Enumerate(rawHTML, listingURL string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, panshare.Errorf(panshare.EINVALID, "article limit must be positive, got %d", limit)
	}

	base, err := url.Parse(listingURL)
	if err != nil {
		return nil, panshare.Errorf(panshare.EINVALID, "invalid listing URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, panshare.Errorf(panshare.EINVALID, "failed to parse HTML: %v", err)
	}

	urls := []string{}
	seen := make(map[string]bool)

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, panshare.CollectionSegment) || !strings.HasSuffix(href, panshare.MarkupSuffix) {
			return true
		}

		var full string
		switch {
		case strings.HasPrefix(href, "/"):
			full = base.Scheme + "://" + base.Host + href
		case strings.HasPrefix(href, "http"):
			full = href
		default:
			// Not a resolvable article reference.
			return true
		}

		if seen[full] {
			return true
		}
		seen[full] = true
		urls = append(urls, full)

		// Early exit once the limit is reached; listing pages can be
		// very large.
		return len(urls) < limit
	})

	return urls, nil
}
