package mock

import "github.com/fwojciec/panshare"

var _ panshare.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of panshare.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(sourceURL, html string) (*panshare.Article, error)
}

func (e *ArticleExtractor) Extract(sourceURL, html string) (*panshare.Article, error) {
	return e.ExtractFn(sourceURL, html)
}
