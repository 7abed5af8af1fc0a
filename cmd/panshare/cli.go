package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `required:"" help:"Listing or article URL to crawl"`
	Limit     int           `default:"10" help:"Maximum number of articles to process"`
	Output    string        `type:"path" help:"Write results to this file (default: stdout)"`
	CacheMode string        `name:"cache-mode" enum:"bypass,use" default:"bypass" help:"Page cache mode: bypass or use"`
	DB        string        `help:"Page cache database path (default: $PANSHARE_DB or ~/.panshare/cache.db)"`
	Browser   bool          `help:"Render pages with a headless browser instead of plain HTTP"`
	Sitemap   bool          `help:"Discover article URLs from the site's XML sitemap instead of the listing page"`
	Timeout   time.Duration `default:"10s" help:"Per-fetch timeout"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`
}
