package http

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/panshare"
)

// Ensure SitemapSource implements panshare.ArticleSource.
var _ panshare.ArticleSource = (*SitemapSource)(nil)

// SitemapSource discovers article URLs from a site's XML sitemap instead of
// scanning a listing page. Only URLs the classifier accepts as articles are
// returned.
type SitemapSource struct {
	client *http.Client
}

// NewSitemapSource creates a new SitemapSource with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapSource(client *http.Client) *SitemapSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapSource{client: client}
}

// Discover fetches the site's sitemap and returns up to limit article URLs
// in sitemap order, deduplicated by exact string. A sitemap index is
// followed one level deep, in listed order.
func (s *SitemapSource) Discover(ctx context.Context, baseURL string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, panshare.Errorf(panshare.EINVALID, "article limit must be positive, got %d", limit)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, panshare.Errorf(panshare.EINVALID, "invalid base URL: %v", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, panshare.Errorf(panshare.EINVALID, "base URL %q must be absolute", baseURL)
	}

	sitemapURL := base.Scheme + "://" + base.Host + "/sitemap.xml"
	root, err := s.fetchSitemap(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seen := make(map[string]bool)

	add := func(loc string) bool {
		loc = strings.TrimSpace(loc)
		if kind, _ := panshare.Classify(loc); kind != panshare.KindArticle {
			return true
		}
		if seen[loc] {
			return true
		}
		seen[loc] = true
		urls = append(urls, loc)
		return len(urls) < limit
	}

	if root.Tag == "sitemapindex" {
		for _, sm := range root.SelectElements("sitemap") {
			loc := sm.SelectElement("loc")
			if loc == nil {
				continue
			}
			child, err := s.fetchSitemap(ctx, strings.TrimSpace(loc.Text()))
			if err != nil {
				return nil, err
			}
			if collectLocs(child, add) {
				return urls, nil
			}
		}
		return urls, nil
	}

	collectLocs(root, add)
	return urls, nil
}

// collectLocs feeds every url/loc entry under root to add, stopping early
// when add reports the limit was reached. Returns true on early stop.
func collectLocs(root *etree.Element, add func(string) bool) bool {
	for _, u := range root.SelectElements("url") {
		loc := u.SelectElement("loc")
		if loc == nil {
			continue
		}
		if !add(loc.Text()) {
			return true
		}
	}
	return false
}

// fetchSitemap retrieves and parses one sitemap document, returning its
// root element.
func (s *SitemapSource) fetchSitemap(ctx context.Context, sitemapURL string) (*etree.Element, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, panshare.Errorf(panshare.EFETCH, "failed to fetch sitemap %s: %v", sitemapURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, panshare.Errorf(panshare.EFETCH, "HTTP %d for sitemap %s", resp.StatusCode, sitemapURL)
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, panshare.Errorf(panshare.EINVALID, "failed to parse sitemap %s: %v", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, panshare.Errorf(panshare.EINVALID, "sitemap %s has no root element", sitemapURL)
	}
	return root, nil
}
