// Command panshare crawls a knowledge-base listing or article URL and
// emits the extracted article records as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/panshare"
	"github.com/fwojciec/panshare/crawl"
	"github.com/fwojciec/panshare/fs"
	"github.com/fwojciec/panshare/goquery"
	panhttp "github.com/fwojciec/panshare/http"
	"github.com/fwojciec/panshare/rod"
	panslog "github.com/fwojciec/panshare/slog"
	"github.com/fwojciec/panshare/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Page cache database path. Set before calling Run().
	DBPath string

	// NewFetcher constructs the page fetcher. Overridable for
	// end-to-end testing without network access.
	NewFetcher func(cli *CLI, logger *slog.Logger) (panshare.Fetcher, error)

	// Limiter paces fetches per domain. Nil means the default
	// requests-per-minute budget; tests override it to avoid waiting.
	Limiter *crawl.DomainLimiter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("panshare"),
		kong.Description("Crawl a knowledge base and extract Baidu Netdisk share links"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Limit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", cli.Limit)
	}

	cacheMode, err := panshare.ParseCacheMode(cli.CacheMode)
	if err != nil {
		return fmt.Errorf("invalid --cache-mode: %s", panshare.ErrorMessage(err))
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the fetcher chain: base fetcher, then logging, then the page
	// cache when enabled.
	newFetcher := m.NewFetcher
	if newFetcher == nil {
		newFetcher = defaultFetcher
	}
	fetcher, err := newFetcher(cli, logger)
	if err != nil {
		return err
	}
	defer fetcher.Close()

	if cacheMode == panshare.CacheUse {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = m.DBPath
		}
		db := sqlite.NewDB(dbPath)
		if err := db.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PANSHARE_DB to use a different database path\n")
			return fmt.Errorf("failed to open page cache at %q: %w", dbPath, err)
		}
		defer db.Close()
		fetcher = sqlite.NewCachedFetcher(fetcher, sqlite.NewPageCache(db), logger)
	}

	limiter := m.Limiter
	if limiter == nil {
		limiter = crawl.NewDefaultLimiter()
	}
	crawler := &crawl.Crawler{
		Fetcher:    fetcher,
		Extractor:  panslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Enumerator: goquery.NewEnumerator(),
		Limiter:    limiter,
		Metadata:   crawl.DefaultMetadata(),
		Logger:     logger,
	}
	if cli.Sitemap {
		crawler.Source = panhttp.NewSitemapSource(nil)
	}

	out := crawler.RunJSON(ctx, cli.URL, cli.Limit)

	return writeResults(out, cli.Output, stdout, stderr)
}

// defaultFetcher builds the production fetcher: headless browser when
// requested, plain HTTP otherwise, both wrapped with logging.
func defaultFetcher(cli *CLI, logger *slog.Logger) (panshare.Fetcher, error) {
	var fetcher panshare.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (is Chrome or Chromium installed?): %w", err)
		}
		fetcher = f
	} else {
		fetcher = panhttp.NewFetcher(panhttp.WithTimeout(cli.Timeout))
	}
	return rod.NewLoggingFetcher(fetcher, logger), nil
}

// writeResults emits the JSON document to the output file or stdout and
// reports the outcome. The document is always written, including the error
// object, so consumers never see truncated output; a failed run returns an
// error so the process exits non-zero.
func writeResults(out []byte, outputPath string, stdout, stderr io.Writer) error {
	var failure struct {
		Error string `json:"error"`
	}
	failed := json.Unmarshal(out, &failure) == nil && failure.Error != ""

	if outputPath != "" {
		if err := fs.WriteReport(outputPath, out); err != nil {
			return fmt.Errorf("failed to write results to %q: %w", outputPath, err)
		}
		fmt.Fprintf(stdout, "Results saved to: %s\n", outputPath)
	} else {
		fmt.Fprintln(stdout, string(out))
	}

	if failed {
		fmt.Fprintf(stderr, "Error: %s\n", failure.Error)
		return fmt.Errorf("crawl failed: %s", failure.Error)
	}

	if outputPath == "" {
		var articles []panshare.Article
		if err := json.Unmarshal(out, &articles); err == nil {
			fmt.Fprintln(stdout, "------------------------------------------------------------")
			fmt.Fprintf(stdout, "Successfully processed %d article(s)\n", len(articles))
			for _, a := range articles {
				fmt.Fprintf(stdout, "  - %s: %d share link(s)\n", a.Title, len(a.ShareLinks))
			}
		}
	}

	return nil
}

func defaultDBPath() string {
	if path := os.Getenv("PANSHARE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "panshare.db"
	}
	dir := filepath.Join(home, ".panshare")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cache.db")
}
