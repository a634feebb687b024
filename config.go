package docscrape

import (
	"fmt"
	"strings"
	"time"
)

// Config holds the full scraper configuration. It is loaded once at startup
// and treated as immutable for the duration of a run.
type Config struct {
	BaseURL  string
	Scraping ScrapingConfig
	Output   OutputConfig
	Logging  LoggingConfig
	Sections []Section
}

// ScrapingConfig holds network and extraction parameters.
type ScrapingConfig struct {
	UserAgent            string
	Timeout              time.Duration
	Retries              int
	DelayBetweenRequests time.Duration

	// RemoveElements are CSS selectors for elements stripped before content
	// extraction (navigation, scripts, chrome). Applied in listed order.
	RemoveElements []string

	// ContentSelectors locate the main content region. Tried in priority
	// order; the first selector with at least one match wins.
	ContentSelectors []string
}

// OutputConfig holds file output rules and annotation flags.
type OutputConfig struct {
	DocsFolder        string
	IndexFile         string
	Markdown          MarkdownOptions
	AddSectionHeaders bool
	AddSourceURL      bool
	AddTimestamp      bool
}

// MarkdownOptions tunes the HTML to Markdown conversion.
type MarkdownOptions struct {
	// StrongDelimiter renders <strong> as "**" (default) or "__".
	StrongDelimiter string
}

// LoggingConfig describes the log level, format, and sinks.
type LoggingConfig struct {
	Level   string // debug, info, warn, error
	Format  string // text, json
	Console bool
	File    string // optional log file path
}

// LogLevels and LogFormats are the accepted values for LoggingConfig.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// SectionByName returns the section with the given name, if declared.
func (c *Config) SectionByName(name string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].Name == name {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// Validate checks the entire configuration eagerly and reports every problem
// found as a single EINVALID error, so a malformed config fails the run once
// at load time rather than lazily mid-scrape.
func (c *Config) Validate() error {
	var problems []string

	if c.BaseURL == "" {
		problems = append(problems, "base_url required")
	}
	if c.Scraping.UserAgent == "" {
		problems = append(problems, "scraping.user_agent required")
	}
	if c.Scraping.Timeout <= 0 {
		problems = append(problems, "scraping.timeout must be positive")
	}
	if c.Scraping.Retries < 0 {
		problems = append(problems, "scraping.retries must not be negative")
	}
	if c.Scraping.DelayBetweenRequests < 0 {
		problems = append(problems, "scraping.delay_between_requests must not be negative")
	}
	if len(c.Scraping.ContentSelectors) == 0 {
		problems = append(problems, "scraping.content_selectors must list at least one selector")
	}
	if c.Output.DocsFolder == "" {
		problems = append(problems, "output.docs_folder required")
	}
	if c.Output.IndexFile == "" {
		problems = append(problems, "output.index_file required")
	}
	switch c.Output.Markdown.StrongDelimiter {
	case "", "**", "__":
	default:
		problems = append(problems, fmt.Sprintf("output.markdown.strong_delimiter must be %q or %q", "**", "__"))
	}
	if !contains(LogLevels, c.Logging.Level) {
		problems = append(problems, fmt.Sprintf("logging.level must be one of %s", strings.Join(LogLevels, ", ")))
	}
	if !contains(LogFormats, c.Logging.Format) {
		problems = append(problems, fmt.Sprintf("logging.format must be one of %s", strings.Join(LogFormats, ", ")))
	}
	if len(c.Sections) == 0 {
		problems = append(problems, "sections must list at least one section")
	}

	seen := make(map[string]bool, len(c.Sections))
	for i := range c.Sections {
		if err := c.Sections[i].Validate(); err != nil {
			problems = append(problems, ErrorMessage(err))
			continue
		}
		if seen[c.Sections[i].Name] {
			problems = append(problems, fmt.Sprintf("duplicate section name %q", c.Sections[i].Name))
		}
		seen[c.Sections[i].Name] = true
	}

	if len(problems) > 0 {
		return Errorf(EINVALID, "invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
