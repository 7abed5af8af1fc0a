package rod

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/panshare"
)

// Ensure LoggingFetcher implements panshare.Fetcher.
var _ panshare.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-page logging. Failures log at
// warn so skipped articles are visible at the default level; successful
// fetches log the page size and how many share-host references the markup
// carries, which makes empty extractions easy to diagnose from the run log.
type LoggingFetcher struct {
	next   panshare.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next panshare.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, rawURL)
	if err != nil {
		f.logger.Warn("page fetch failed",
			"url", rawURL,
			"host", hostOf(rawURL),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	f.logger.Info("page fetched",
		"url", rawURL,
		"host", hostOf(rawURL),
		"bytes", len(html),
		"share_host_refs", strings.Count(html, panshare.ShareHost),
		"duration", time.Since(begin),
	)
	return html, nil
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
