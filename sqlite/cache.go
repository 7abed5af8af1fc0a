package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/panshare"
)

// Compile-time interface verification.
var _ panshare.PageCache = (*PageCache)(nil)

// PageCache implements panshare.PageCache using SQLite. Entries are keyed
// by an xxHash of the URL.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// hashURL computes xxHash of a URL and returns it as a hex string.
func hashURL(url string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(url))
	return hex.EncodeToString(b[:])
}

// Get returns the cached HTML for url. ok is false on a cache miss.
func (c *PageCache) Get(ctx context.Context, url string) (string, bool, error) {
	var html string
	err := c.db.QueryRowContext(ctx, `
		SELECT html FROM pages WHERE url_hash = ?
	`, hashURL(url)).Scan(&html)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return html, true, nil
}

// Put stores the HTML for url, replacing any previous entry.
func (c *PageCache) Put(ctx context.Context, url, html string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO pages (url_hash, url, html, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(url_hash) DO UPDATE SET
			url = excluded.url,
			html = excluded.html,
			fetched_at = excluded.fetched_at
	`, hashURL(url), url, html, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Ensure CachedFetcher implements panshare.Fetcher.
var _ panshare.Fetcher = (*CachedFetcher)(nil)

// CachedFetcher implements the CacheUse fetch mode by consulting the page
// cache before delegating to the wrapped fetcher and storing each fetched
// page. Cache failures degrade to a normal fetch rather than failing the
// run.
type CachedFetcher struct {
	next   panshare.Fetcher
	cache  panshare.PageCache
	logger *slog.Logger
}

// NewCachedFetcher creates a new CachedFetcher. A nil logger disables
// logging.
func NewCachedFetcher(next panshare.Fetcher, cache panshare.PageCache, logger *slog.Logger) *CachedFetcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CachedFetcher{next: next, cache: cache, logger: logger}
}

// Fetch returns the cached page when present, otherwise fetches and caches.
func (f *CachedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	html, ok, err := f.cache.Get(ctx, url)
	if err != nil {
		f.logger.Warn("page cache read failed", "url", url, "err", err)
	} else if ok {
		f.logger.Debug("page cache hit", "url", url)
		return html, nil
	}

	html, err = f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	if err := f.cache.Put(ctx, url, html); err != nil {
		f.logger.Warn("page cache write failed", "url", url, "err", err)
	}
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *CachedFetcher) Close() error {
	return f.next.Close()
}
