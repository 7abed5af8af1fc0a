// Package goquery implements panshare extraction interfaces using
// PuerkitoBio/goquery. It contains the article extractor (title, SEO tags,
// and the share-link engine) and the listing enumerator.
package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/panshare"
	"golang.org/x/net/html"
)

// Ensure Extractor implements panshare.ArticleExtractor at compile time.
var _ panshare.ArticleExtractor = (*Extractor)(nil)

// shareLinkPattern is the canonical Baidu Netdisk share-link shape:
// scheme, host, /s/, and an opaque token.
var shareLinkPattern = regexp.MustCompile(`https?://pan\.baidu\.com/s/[A-Za-z0-9_-]+`)

// tagClassPattern matches anchor class attributes that indicate tag links
// in common CMS markup.
var tagClassPattern = regexp.MustCompile(`(?i)tag|keyword|label`)

// siblingLimit bounds the structural password search to the few elements
// that typically follow a share link in author markup.
const siblingLimit = 3

// Extractor extracts article records from raw HTML. It is stateless and
// safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the markup and returns the article record. Extraction is
// deterministic and order-stable: tags and share links come out in document
// order with exact-string deduplication, so re-running on identical markup
// yields identical output.
func (e *Extractor) Extract(sourceURL, rawHTML string) (*panshare.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, panshare.Errorf(panshare.EINVALID, "failed to parse HTML: %v", err)
	}

	return &panshare.Article{
		SourceURL:  sourceURL,
		Title:      extractTitle(doc),
		SEOTags:    extractTags(doc),
		ShareLinks: extractShareLinks(doc, rawHTML),
	}, nil
}

// extractTitle tries title strategies in priority order, first non-empty
// result wins: <title>, first <h1>, og:title meta, then the fixed default.
// A step is attempted only when the previous one yielded nothing, including
// the present-but-whitespace case.
func extractTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	if c, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return panshare.DefaultTitle
}

// extractTags accumulates tags from the keywords meta, tag-carrying meta
// properties, and tag-classed anchors into one order-preserving set with
// exact-string deduplication.
func extractTags(doc *goquery.Document) []string {
	tags := []string{}
	seen := make(map[string]bool)

	add := func(tag string) {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	if c, ok := doc.Find(`meta[name="keywords"]`).First().Attr("content"); ok {
		for _, k := range strings.Split(c, ",") {
			add(k)
		}
	}

	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		prop, _ := sel.Attr("property")
		if prop != "article:tag" && prop != "og:tag" {
			return
		}
		if c, ok := sel.Attr("content"); ok {
			add(c)
		}
	})

	doc.Find("a[class]").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if tagClassPattern.MatchString(class) {
			add(sel.Text())
		}
	})

	return tags
}

// extractShareLinks discovers share links in two phases. Anchors are
// authoritative: they are scanned first in document order, with passwords
// resolved from the href's pwd query parameter or from nearby elements.
// A raw-text scan then catches links not wrapped in an anchor, resolving
// passwords from a bounded context window. Results are deduplicated by
// exact URL, first seen wins.
func extractShareLinks(doc *goquery.Document, rawHTML string) []panshare.ShareLink {
	links := []panshare.ShareLink{}
	seen := make(map[string]bool)

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, panshare.ShareHost+"/s/") {
			return
		}
		match := shareLinkPattern.FindString(href)
		if match == "" {
			return // malformed or unsupported href
		}
		if seen[match] {
			return
		}
		seen[match] = true

		pwd := passwordFromHref(href)
		if pwd == nil {
			pwd = passwordNearAnchor(sel)
		}
		links = append(links, panshare.ShareLink{URL: match, Password: pwd})
	})

	for _, loc := range shareLinkPattern.FindAllStringIndex(rawHTML, -1) {
		match := rawHTML[loc[0]:loc[1]]
		if seen[match] {
			continue
		}
		seen[match] = true

		links = append(links, panshare.ShareLink{
			URL:      match,
			Password: passwordNearOffset(rawHTML, loc[0], loc[1]),
		})
	}

	return links
}

// passwordFromHref extracts the pwd query parameter from the original href.
// Only hrefs that carry a query string are inspected.
func passwordFromHref(href string) *string {
	if !strings.Contains(href, "?") {
		return nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return nil
	}
	if pwd := u.Query().Get("pwd"); pwd != "" {
		return &pwd
	}
	return nil
}

// passwordNearAnchor performs the structural sibling search: the anchor's
// parent's own text, then up to siblingLimit of the parent's following
// element siblings, then up to siblingLimit of the anchor's own following
// element siblings, stopping at the first match.
func passwordNearAnchor(anchor *goquery.Selection) *string {
	parent := anchor.Parent()
	if parent.Length() > 0 {
		if pwd := passwordFromText(parent.Text()); pwd != nil {
			return pwd
		}
		if pwd := passwordInSiblings(parent, siblingLimit); pwd != nil {
			return pwd
		}
	}
	return passwordInSiblings(anchor, siblingLimit)
}

// passwordInSiblings scans up to limit following element siblings of sel,
// in document order, returning the first password found.
func passwordInSiblings(sel *goquery.Selection, limit int) *string {
	if sel.Length() == 0 {
		return nil
	}
	count := 0
	for n := sel.Get(0).NextSibling; n != nil && count < limit; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		count++
		if pwd := passwordFromText(nodeText(n)); pwd != nil {
			return pwd
		}
	}
	return nil
}

// nodeText returns the concatenated text content of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
