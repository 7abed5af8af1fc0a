package panshare

import (
	"strconv"
	"strings"
)

// Kind classifies an input URL as naming a single article or a listing of
// articles.
type Kind int

// Kind values returned by Classify.
const (
	KindListing Kind = iota
	KindArticle
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindArticle:
		return "article"
	case KindListing:
		return "listing"
	}
	return "unknown"
}

// Classify decides whether rawURL names a single article or a listing page.
// A URL names an article iff it contains the collection segment and the
// trailing path component, with the markup suffix stripped, is composed
// entirely of digits. Every other shape, including the bare collection
// root, classifies as a listing. For articles the digit basename is
// returned as the article ID.
//
// Classification is total: it never fails, and performs no network access.
func Classify(rawURL string) (Kind, int) {
	idx := strings.LastIndex(rawURL, CollectionSegment)
	if idx == -1 {
		return KindListing, 0
	}

	basename := rawURL[idx+len(CollectionSegment):]
	basename = strings.ReplaceAll(basename, MarkupSuffix, "")
	if basename == "" {
		return KindListing, 0
	}
	for _, r := range basename {
		if r < '0' || r > '9' {
			return KindListing, 0
		}
	}

	id, err := strconv.Atoi(basename)
	if err != nil {
		// All-digit but too large to represent; not a real article ID.
		return KindListing, 0
	}
	return KindArticle, id
}
