// Package yaml loads the scraper configuration from a YAML file into the
// strongly-typed docscrape.Config, validating it eagerly at load time.
package yaml

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/docmirror/docscrape"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration path used when none is given.
const DefaultConfigFile = "config.yaml"

// fileConfig mirrors the on-disk schema. Durations are declared in seconds,
// matching the configuration format, and converted on load.
type fileConfig struct {
	BaseURL  string              `yaml:"base_url"`
	Scraping fileScraping        `yaml:"scraping"`
	Output   fileOutput          `yaml:"output"`
	Logging  fileLogging         `yaml:"logging"`
	Sections []docscrape.Section `yaml:"sections"`
}

type fileScraping struct {
	UserAgent            string   `yaml:"user_agent"`
	Timeout              float64  `yaml:"timeout"`
	Retries              int      `yaml:"retries"`
	DelayBetweenRequests float64  `yaml:"delay_between_requests"`
	RemoveElements       []string `yaml:"remove_elements"`
	ContentSelectors     []string `yaml:"content_selectors"`
}

type fileOutput struct {
	DocsFolder string       `yaml:"docs_folder"`
	IndexFile  string       `yaml:"index_file"`
	Markdown   fileMarkdown `yaml:"markdown"`

	// The annotation flags default to true when omitted.
	AddSectionHeaders *bool `yaml:"add_section_headers"`
	AddSourceURL      *bool `yaml:"add_source_url"`
	AddTimestamp      *bool `yaml:"add_timestamp"`
}

type fileMarkdown struct {
	StrongDelimiter string `yaml:"strong_delimiter"`
}

type fileLogging struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Console *bool  `yaml:"console"`
	File    string `yaml:"file"`
}

// Load reads, parses, and validates the configuration file at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot
// be parsed or fails validation. Both are fatal for the run.
func Load(path string) (*docscrape.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, docscrape.Errorf(docscrape.ENOTFOUND, "configuration file %q not found", path)
		}
		return nil, docscrape.Errorf(docscrape.EINTERNAL, "failed to read configuration file %q: %v", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil {
		if err == io.EOF {
			return nil, docscrape.Errorf(docscrape.EINVALID, "configuration file %q is empty", path)
		}
		return nil, docscrape.Errorf(docscrape.EINVALID, "failed to parse configuration file %q: %v", path, err)
	}

	cfg := fc.toConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fc *fileConfig) toConfig() *docscrape.Config {
	cfg := &docscrape.Config{
		BaseURL: fc.BaseURL,
		Scraping: docscrape.ScrapingConfig{
			UserAgent:            fc.Scraping.UserAgent,
			Timeout:              secondsToDuration(fc.Scraping.Timeout),
			Retries:              fc.Scraping.Retries,
			DelayBetweenRequests: secondsToDuration(fc.Scraping.DelayBetweenRequests),
			RemoveElements:       fc.Scraping.RemoveElements,
			ContentSelectors:     fc.Scraping.ContentSelectors,
		},
		Output: docscrape.OutputConfig{
			DocsFolder: fc.Output.DocsFolder,
			IndexFile:  fc.Output.IndexFile,
			Markdown: docscrape.MarkdownOptions{
				StrongDelimiter: fc.Output.Markdown.StrongDelimiter,
			},
			AddSectionHeaders: boolOrTrue(fc.Output.AddSectionHeaders),
			AddSourceURL:      boolOrTrue(fc.Output.AddSourceURL),
			AddTimestamp:      boolOrTrue(fc.Output.AddTimestamp),
		},
		Logging: docscrape.LoggingConfig{
			Level:   fc.Logging.Level,
			Format:  fc.Logging.Format,
			Console: boolOrTrue(fc.Logging.Console),
			File:    fc.Logging.File,
		},
		Sections: fc.Sections,
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	return cfg
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func boolOrTrue(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
