// Package crawl provides pipeline orchestration for panshare. It
// classifies the input URL, fetches pages, drives listing enumeration and
// per-article extraction, and aggregates results into a single JSON
// document.
package crawl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/fwojciec/panshare"
	"github.com/google/uuid"
)

// Crawler orchestrates one crawl run. Fetches are issued strictly
// sequentially, so results preserve enumeration order; no state is shared
// across article extractions.
type Crawler struct {
	Fetcher    panshare.Fetcher
	Extractor  panshare.ArticleExtractor
	Enumerator panshare.ListingEnumerator

	// Source, when set, replaces listing-page enumeration with external
	// URL discovery (e.g. the site's XML sitemap).
	Source panshare.ArticleSource

	// Limiter, when set, paces fetches per domain.
	Limiter *DomainLimiter

	// Metadata is attached to error payloads. Zero value means
	// DefaultMetadata.
	Metadata Metadata

	// Logger receives run progress and per-article warnings. Nil
	// disables logging.
	Logger *slog.Logger
}

// Run executes the pipeline for one input URL and returns the extracted
// articles in enumeration order.
//
// A single-article URL is fetched once; a fetch failure is fatal. For a
// listing URL the listing fetch (or external discovery) is fatal on
// failure, while a failure on one enumerated article is logged and that
// article is skipped. The result holds at most limit articles and may be
// shorter when articles fail.
func (c *Crawler) Run(ctx context.Context, rawURL string, limit int) ([]*panshare.Article, error) {
	if limit <= 0 {
		return nil, panshare.Errorf(panshare.EINVALID, "article limit must be positive, got %d", limit)
	}

	logger := c.logger().With("run_id", uuid.New().String(), "url", rawURL)

	kind, articleID := panshare.Classify(rawURL)
	if kind == panshare.KindArticle {
		logger.Info("processing single article", "article_id", articleID)
		article, err := c.processArticle(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return []*panshare.Article{article}, nil
	}

	urls, err := c.discover(ctx, rawURL, limit)
	if err != nil {
		return nil, err
	}
	logger.Info("enumerated articles", "count", len(urls))

	results := make([]*panshare.Article, 0, len(urls))
	for _, articleURL := range urls {
		if len(results) >= limit {
			break
		}
		article, err := c.processArticle(ctx, articleURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			logger.Warn("article skipped", "article_url", articleURL, "err", err)
			continue
		}
		results = append(results, article)
	}
	return results, nil
}

// RunJSON executes the pipeline and always returns one well-formed JSON
// document: the article array on success, or an error object carrying the
// failure message and the crawler metadata. Panics from unanticipated
// input are caught at this boundary and converted into the error payload.
func (c *Crawler) RunJSON(ctx context.Context, rawURL string, limit int) (out []byte) {
	defer func() {
		if r := recover(); r != nil {
			c.logger().Error("crawl panicked", "panic", r)
			out = c.errorJSON(fmt.Sprintf("crawl failed: %v", r))
		}
	}()

	articles, err := c.Run(ctx, rawURL, limit)
	if err != nil {
		c.logger().Error("crawl failed", "err", err)
		return c.errorJSON(panshare.ErrorMessage(err))
	}

	out, err = marshalJSON(articles)
	if err != nil {
		return c.errorJSON(fmt.Sprintf("failed to encode results: %v", err))
	}
	return out
}

// discover produces the ordered article URL list for a listing run, either
// from the external source or by fetching and scanning the listing page.
func (c *Crawler) discover(ctx context.Context, listingURL string, limit int) ([]string, error) {
	if c.Source != nil {
		urls, err := c.Source.Discover(ctx, listingURL, limit)
		if err != nil {
			return nil, fetchError(err, "failed to discover article URLs: %v", err)
		}
		return urls, nil
	}

	html, err := c.fetch(ctx, listingURL)
	if err != nil {
		return nil, fetchError(err, "failed to fetch listing page: %v", err)
	}
	return c.Enumerator.Enumerate(html, listingURL, limit)
}

// processArticle fetches one article page and extracts its record.
func (c *Crawler) processArticle(ctx context.Context, articleURL string) (*panshare.Article, error) {
	html, err := c.fetch(ctx, articleURL)
	if err != nil {
		return nil, fetchError(err, "failed to fetch article: %v", err)
	}
	return c.Extractor.Extract(articleURL, html)
}

// fetchError returns err unchanged when it already carries an application
// error code, so fetcher messages reach the output without another layer of
// wrapping; anything else becomes an EFETCH error with the given message.
func fetchError(err error, format string, args ...any) error {
	var e *panshare.Error
	if errors.As(err, &e) {
		return err
	}
	return panshare.Errorf(panshare.EFETCH, format, args...)
}

// fetch retrieves one page, pacing per domain when a limiter is configured.
func (c *Crawler) fetch(ctx context.Context, rawURL string) (string, error) {
	if c.Limiter != nil {
		if u, err := url.Parse(rawURL); err == nil {
			if err := c.Limiter.Wait(ctx, u.Host); err != nil {
				return "", err
			}
		}
	}
	return c.Fetcher.Fetch(ctx, rawURL)
}

func (c *Crawler) errorJSON(msg string) []byte {
	meta := c.Metadata
	if meta.Version == "" {
		meta = DefaultMetadata()
	}
	out, err := marshalJSON(errorPayload{Error: msg, Metadata: meta})
	if err != nil {
		// Unreachable with these payload types; keep the contract anyway.
		return []byte(`{"error":"internal error"}`)
	}
	return out
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// marshalJSON renders v as pretty-printed JSON without HTML escaping, so
// CJK text and URLs appear verbatim.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
