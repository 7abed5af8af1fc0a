package panshare

import "context"

// CacheMode selects how fetched pages interact with the local page cache.
type CacheMode int

// CacheMode values. The zero value bypasses the cache, matching the
// crawler's default behavior of always fetching fresh markup.
const (
	CacheBypass CacheMode = iota
	CacheUse
)

// String returns the mode's CLI spelling.
func (m CacheMode) String() string {
	switch m {
	case CacheBypass:
		return "bypass"
	case CacheUse:
		return "use"
	}
	return "unknown"
}

// ParseCacheMode parses the CLI spelling of a cache mode.
// Returns EINVALID for unrecognized values.
func ParseCacheMode(s string) (CacheMode, error) {
	switch s {
	case "bypass":
		return CacheBypass, nil
	case "use":
		return CacheUse, nil
	}
	return CacheBypass, Errorf(EINVALID, "unknown cache mode %q", s)
}

// Fetcher retrieves raw HTML from URLs. A failed fetch is reported as an
// ordinary error return; callers decide whether the failure is fatal or
// skippable. Implementations may use plain HTTP or browser automation to
// handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the HTML for the given URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// PageCache stores fetched pages keyed by URL. It backs the CacheUse fetch
// mode; extraction never sees it.
type PageCache interface {
	// Get returns the cached HTML for url. ok is false on a cache miss.
	Get(ctx context.Context, url string) (html string, ok bool, err error)

	// Put stores the HTML for url, replacing any previous entry.
	Put(ctx context.Context, url string, html string) error
}
