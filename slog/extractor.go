// Package slog provides logging decorators for panshare services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/panshare"
)

// Ensure LoggingExtractor implements panshare.ArticleExtractor.
var _ panshare.ArticleExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an ArticleExtractor with debug logging.
type LoggingExtractor struct {
	next   panshare.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next panshare.ArticleExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(sourceURL, html string) (article *panshare.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"source_url", sourceURL,
			"duration", time.Since(begin),
			"err", err,
		}
		if article != nil {
			attrs = append(attrs,
				"title", article.Title,
				"tags", len(article.SEOTags),
				"share_links", len(article.ShareLinks),
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(sourceURL, html)
}
