// Package scrape orchestrates the documentation pipeline: fetch with
// bounded retry, extract the content region, convert to Markdown, annotate
// with provenance, and persist. Sections are processed strictly
// sequentially in declared order; one section's failure never blocks
// another's attempt.
package scrape

import (
	"context"
	"log/slog"
	"time"

	"github.com/docmirror/docscrape"
	"golang.org/x/time/rate"
)

// Scraper runs the scrape pipeline over the configured sections.
type Scraper struct {
	Config    *docscrape.Config
	Fetcher   docscrape.Fetcher
	Extractor docscrape.Extractor
	Converter docscrape.Converter
	Writer    docscrape.DocumentWriter
	Logger    *slog.Logger

	// Sleep and Now are injectable for tests. Nil uses real time.
	Sleep SleepFunc
	Now   func() time.Time
}

// Run processes the configured sections and returns the run statistics.
//
// With an empty sectionFilter every section is processed in declared order
// and the aggregate index is written afterwards. A non-empty filter
// restricts the run to exactly the named section (ENOTFOUND if the name is
// unknown, which is fatal) and never regenerates the index.
//
// Per-section errors are logged, counted as failures, and never abort the
// run; the returned error is non-nil only for fatal conditions and
// cancellation.
func (s *Scraper) Run(ctx context.Context, sectionFilter string) (*docscrape.RunStats, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sleep := s.Sleep
	if sleep == nil {
		sleep = Sleep
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}

	sections := s.Config.Sections
	if sectionFilter != "" {
		section, ok := s.Config.SectionByName(sectionFilter)
		if !ok {
			return nil, docscrape.Errorf(docscrape.ENOTFOUND, "section %q not found in configuration", sectionFilter)
		}
		sections = []docscrape.Section{*section}
	}

	stats := docscrape.NewRunStats(len(sections), now())
	logger = logger.With("run_id", stats.RunID)
	logger.Info("starting scrape", "sections", len(sections))

	// The limiter paces section processing at one section per configured
	// delay, with a burst of 1: the first section starts immediately and
	// no delay trails the last.
	var limiter *rate.Limiter
	if d := s.Config.Scraping.DelayBetweenRequests; d > 0 {
		limiter = rate.NewLimiter(rate.Every(d), 1)
	}

	for i, section := range sections {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return stats, err
			}
		} else if err := ctx.Err(); err != nil {
			return stats, err
		}

		logger.Info("processing section", "section", section.Name, "position", i+1, "total", len(sections))

		if err := s.scrapeSection(ctx, section, sleep, now, logger); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return stats, ctxErr
			}
			stats.RecordFailure()
			continue
		}
		stats.RecordSuccess()
	}

	if sectionFilter == "" {
		if err := s.Writer.WriteIndex(s.Config.Sections, now()); err != nil {
			logger.Error("failed to write index", "err", err)
			return stats, err
		}
		logger.Info("created index", "file", s.Config.Output.IndexFile)
	}

	logger.Info("scraping statistics",
		"total_sections", stats.TotalSections,
		"successful", stats.SuccessfulScrapes,
		"failed", stats.FailedScrapes,
		"success_rate", stats.SuccessRate(),
		"duration", stats.Duration(now()),
	)

	return stats, nil
}

// scrapeSection runs one section through fetch, extract, convert, annotate,
// and write. Any stage error is logged with the section and stage and
// returned so the caller can count the failure.
func (s *Scraper) scrapeSection(ctx context.Context, section docscrape.Section, sleep SleepFunc, now func() time.Time, logger *slog.Logger) error {
	url := section.PageURL(s.Config.BaseURL)

	html, err := FetchWithRetry(ctx, s.Fetcher, url, s.Config.Scraping.Retries, s.Config.Scraping.DelayBetweenRequests, sleep, logger)
	if err != nil {
		logger.Error("section failed", "section", section.Name, "stage", "fetch", "err", err)
		return err
	}

	content, err := s.Extractor.Extract(html)
	if err != nil {
		logger.Error("section failed", "section", section.Name, "stage", "extract", "err", err)
		return err
	}

	markdown, err := s.Converter.Convert(content)
	if err != nil {
		logger.Error("section failed", "section", section.Name, "stage", "convert", "err", err)
		return err
	}

	fetchedAt := now()
	doc := &docscrape.Document{
		Section:     section,
		SourceURL:   url,
		ContentHash: docscrape.HashContent(markdown),
		FetchedAt:   fetchedAt,
		Markdown:    docscrape.AnnotateMarkdown(markdown, section, s.Config.Output, url, fetchedAt),
	}

	if err := s.Writer.WriteDocument(doc); err != nil {
		logger.Error("section failed", "section", section.Name, "stage", "write", "err", err)
		return err
	}

	logger.Info("saved section",
		"section", section.Name,
		"file", section.Filename,
		"content_hash", doc.ContentHash,
	)
	return nil
}
