package panshare_test

import (
	"testing"

	"github.com/fwojciec/panshare"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		kind panshare.Kind
		id   int
	}{
		{
			name: "article URL with digit basename",
			url:  "https://www.lewz.cn/jprj/12345.html",
			kind: panshare.KindArticle,
			id:   12345,
		},
		{
			name: "article URL without scheme",
			url:  "www.lewz.cn/jprj/7.html",
			kind: panshare.KindArticle,
			id:   7,
		},
		{
			name: "bare collection root",
			url:  "https://www.lewz.cn/jprj",
			kind: panshare.KindListing,
		},
		{
			name: "collection root with trailing slash",
			url:  "https://www.lewz.cn/jprj/",
			kind: panshare.KindListing,
		},
		{
			name: "non-digit basename",
			url:  "https://www.lewz.cn/jprj/page-2.html",
			kind: panshare.KindListing,
		},
		{
			name: "digit basename outside collection",
			url:  "https://www.lewz.cn/news/12345.html",
			kind: panshare.KindListing,
		},
		{
			name: "basename mixes digits and letters",
			url:  "https://www.lewz.cn/jprj/12a45.html",
			kind: panshare.KindListing,
		},
		{
			name: "empty URL",
			url:  "",
			kind: panshare.KindListing,
		},
		{
			name: "nested collection segment uses last occurrence",
			url:  "https://www.lewz.cn/jprj/archive/jprj/42.html",
			kind: panshare.KindArticle,
			id:   42,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			kind, id := panshare.Classify(tt.url)

			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.id, id)
		})
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "article", panshare.KindArticle.String())
	assert.Equal(t, "listing", panshare.KindListing.String())
}
