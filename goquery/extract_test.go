package goquery_test

import (
	"testing"

	"github.com/fwojciec/panshare"
	"github.com/fwojciec/panshare/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements panshare.ArticleExtractor.
var _ panshare.ArticleExtractor = (*goquery.Extractor)(nil)

func TestExtract_Title(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "title element wins",
			html: `<html><head><title> 测试文章 - Python编程资源 </title></head>
<body><h1>Heading</h1></body></html>`,
			want: "测试文章 - Python编程资源",
		},
		{
			name: "h1 when title absent",
			html: `<html><body><h1> First Heading </h1><h1>Second</h1></body></html>`,
			want: "First Heading",
		},
		{
			name: "h1 when title is whitespace only",
			html: `<html><head><title>   </title></head><body><h1>Heading</h1></body></html>`,
			want: "Heading",
		},
		{
			name: "og:title when title and h1 absent",
			html: `<html><head><meta property="og:title" content=" OG Title "></head><body></body></html>`,
			want: "OG Title",
		},
		{
			name: "sentinel when nothing yields a value",
			html: `<html><body><p>no title here</p></body></html>`,
			want: "Untitled",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := goquery.NewExtractor()
			article, err := e.Extract("https://www.lewz.cn/jprj/1.html", tt.html)

			require.NoError(t, err)
			assert.Equal(t, tt.want, article.Title)
		})
	}
}

func TestExtract_SEOTags(t *testing.T) {
	t.Parallel()

	t.Run("accumulates from keywords, meta properties, and tag anchors", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title>t</title>
<meta name="keywords" content="Python, 编程 , ,资源">
<meta property="article:tag" content="教程">
<meta property="og:tag" content="Python">
<meta property="og:type" content="article">
</head><body>
<a class="tag-link" href="/tag/go">Go</a>
<a class="post-Keyword" href="/kw/web">Web</a>
<a class="nav-item" href="/about">About</a>
</body></html>`

		e := goquery.NewExtractor()
		article, err := e.Extract("https://www.lewz.cn/jprj/1.html", html)

		require.NoError(t, err)
		assert.Equal(t, []string{"Python", "编程", "资源", "教程", "Go", "Web"}, article.SEOTags)
	})

	t.Run("empty when no source yields tags", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()
		article, err := e.Extract("https://www.lewz.cn/jprj/1.html", `<html><body><p>plain</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, article.SEOTags)
		assert.NotNil(t, article.SEOTags)
	})
}

func TestExtract_EndToEnd(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>测试文章 - Python编程资源</title></head>
<body>
<p><a href="https://pan.baidu.com/s/1AbCdEfGhIjKlMnOpQrStUv">网盘下载</a></p>
<p>提取码: 1234</p>
<p><a href="https://pan.baidu.com/s/2XyZaBcDeFgHiJkLmNoPqRs">备用链接 提取码: abcd</a></p>
</body></html>`

	e := goquery.NewExtractor()
	article, err := e.Extract("https://www.lewz.cn/jprj/12345.html", html)

	require.NoError(t, err)
	assert.Equal(t, "https://www.lewz.cn/jprj/12345.html", article.SourceURL)
	assert.Equal(t, "测试文章 - Python编程资源", article.Title)

	require.Len(t, article.ShareLinks, 2)

	assert.Equal(t, "https://pan.baidu.com/s/1AbCdEfGhIjKlMnOpQrStUv", article.ShareLinks[0].URL)
	require.NotNil(t, article.ShareLinks[0].Password)
	assert.Equal(t, "1234", *article.ShareLinks[0].Password)

	assert.Equal(t, "https://pan.baidu.com/s/2XyZaBcDeFgHiJkLmNoPqRs", article.ShareLinks[1].URL)
	require.NotNil(t, article.ShareLinks[1].Password)
	assert.Equal(t, "abcd", *article.ShareLinks[1].Password)
}

func TestExtract_NoShareLinks(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>普通文章</title></head>
<body><p>This page links nowhere special.</p><a href="/jprj/2.html">next</a></body></html>`

	e := goquery.NewExtractor()
	article, err := e.Extract("https://www.lewz.cn/jprj/1.html", html)

	require.NoError(t, err)
	assert.Equal(t, "普通文章", article.Title)
	assert.Empty(t, article.ShareLinks)
	assert.NotNil(t, article.ShareLinks)
}

func TestExtract_Idempotent(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>t</title><meta name="keywords" content="a,b"></head>
<body>
<p><a href="https://pan.baidu.com/s/1AbCdEfG">one</a> 提取码: wxyz</p>
<p>https://pan.baidu.com/s/2HiJkLmN 密码: pass1234</p>
</body></html>`

	e := goquery.NewExtractor()
	first, err := e.Extract("https://www.lewz.cn/jprj/1.html", html)
	require.NoError(t, err)
	second, err := e.Extract("https://www.lewz.cn/jprj/1.html", html)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtract_DeduplicatesAcrossPhases(t *testing.T) {
	t.Parallel()

	// Same URL appears in an anchor (with a resolvable password) and as
	// bare text near a different password. The anchor phase runs first,
	// so its password wins.
	html := `<html><body>
<p><a href="https://pan.baidu.com/s/1AbCdEfG">下载</a> 提取码: 1111</p>
<p>备份: https://pan.baidu.com/s/1AbCdEfG 提取码: 2222</p>
</body></html>`

	e := goquery.NewExtractor()
	article, err := e.Extract("https://www.lewz.cn/jprj/1.html", html)

	require.NoError(t, err)
	require.Len(t, article.ShareLinks, 1)
	assert.Equal(t, "https://pan.baidu.com/s/1AbCdEfG", article.ShareLinks[0].URL)
	require.NotNil(t, article.ShareLinks[0].Password)
	assert.Equal(t, "1111", *article.ShareLinks[0].Password)
}

func TestExtract_DuplicateAnchors(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<p><a href="https://pan.baidu.com/s/1AbCdEfG?pwd=aaaa">first</a></p>
<p><a href="https://pan.baidu.com/s/1AbCdEfG?pwd=bbbb">second</a></p>
</body></html>`

	e := goquery.NewExtractor()
	article, err := e.Extract("https://www.lewz.cn/jprj/1.html", html)

	require.NoError(t, err)
	require.Len(t, article.ShareLinks, 1)
	require.NotNil(t, article.ShareLinks[0].Password)
	assert.Equal(t, "aaaa", *article.ShareLinks[0].Password)
}

func TestExtract_BareTextLink(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<p>链接: https://pan.baidu.com/s/3QqWwEeRr 提取码: zx9k</p>
</body></html>`

	e := goquery.NewExtractor()
	article, err := e.Extract("https://www.lewz.cn/jprj/1.html", html)

	require.NoError(t, err)
	require.Len(t, article.ShareLinks, 1)
	assert.Equal(t, "https://pan.baidu.com/s/3QqWwEeRr", article.ShareLinks[0].URL)
	require.NotNil(t, article.ShareLinks[0].Password)
	assert.Equal(t, "zx9k", *article.ShareLinks[0].Password)
}

func TestExtract_MalformedShareHref(t *testing.T) {
	t.Parallel()

	// The href mentions the share host but doesn't match the canonical
	// pattern; the anchor is skipped, not reported.
	html := `<html><body>
<a href="ftp://pan.baidu.com/s/1AbCdEfG">bad scheme</a>
</body></html>`

	e := goquery.NewExtractor()
	article, err := e.Extract("https://www.lewz.cn/jprj/1.html", html)

	require.NoError(t, err)
	assert.Empty(t, article.ShareLinks)
}
