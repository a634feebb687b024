// Command docscrape scrapes the documentation sections declared in a YAML
// configuration file into local Markdown files plus a generated index.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/docmirror/docscrape"
	"github.com/docmirror/docscrape/fs"
	docgoquery "github.com/docmirror/docscrape/goquery"
	"github.com/docmirror/docscrape/htmltomarkdown"
	dochttp "github.com/docmirror/docscrape/http"
	"github.com/docmirror/docscrape/scrape"
	docslog "github.com/docmirror/docscrape/slog"
	"github.com/docmirror/docscrape/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "scrape interrupted")
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `default:"config.yaml" help:"Configuration file path"`
	Section string `help:"Scrape only the named section"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`
}

// Run executes the CLI with the given arguments. A non-nil error means the
// process should exit non-zero; per-section scrape failures do not produce
// an error here, only fatal conditions do.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docscrape"),
		kong.Description("Scrape documentation pages to local markdown files"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	cfg, err := yaml.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("%s", docscrape.ErrorMessage(err))
	}

	logger, closer, err := docslog.NewLogger(cfg.Logging, cli.Verbose)
	if err != nil {
		return fmt.Errorf("%s", docscrape.ErrorMessage(err))
	}
	if closer != nil {
		defer closer.Close()
	}

	fetcher := dochttp.NewFetcher(
		dochttp.WithTimeout(cfg.Scraping.Timeout),
		dochttp.WithUserAgent(cfg.Scraping.UserAgent),
	)
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Config:    cfg,
		Fetcher:   docslog.NewLoggingFetcher(fetcher, logger),
		Extractor: docgoquery.NewExtractor(cfg.Scraping.RemoveElements, cfg.Scraping.ContentSelectors),
		Converter: htmltomarkdown.NewConverter(htmltomarkdown.WithStrongDelimiter(cfg.Output.Markdown.StrongDelimiter)),
		Writer:    fs.NewWriter(cfg.Output.DocsFolder, cfg.Output.IndexFile),
		Logger:    logger,
	}

	stats, err := scraper.Run(ctx, cli.Section)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%s", docscrape.ErrorMessage(err))
	}

	fmt.Fprintf(stdout, "Scraped %d/%d sections in %s\n",
		stats.SuccessfulScrapes, stats.TotalSections, stats.Duration(time.Now()).Round(time.Millisecond))

	return nil
}
