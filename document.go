package docscrape

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// TimestampFormat is the layout for provenance timestamps. The rendered
// value is always UTC and suffixed with " UTC".
const TimestampFormat = "2006-01-02 15:04:05"

// Document is the rendered Markdown output for a single section. It exists
// only within one section's processing and is discarded after being written.
type Document struct {
	Section   Section
	SourceURL string

	// Markdown is the annotated document body as written to disk.
	Markdown string

	// ContentHash identifies the converted body before annotation, so two
	// runs against unchanged upstream content hash identically even though
	// the timestamp annotation differs.
	ContentHash string

	FetchedAt time.Time
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Section.Filename == "" {
		return Errorf(EINVALID, "document filename required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// HashContent returns a short content hash for a Markdown body.
func HashContent(markdown string) string {
	return strconv.FormatUint(xxhash.Sum64String(markdown), 16)
}

// AnnotateMarkdown applies the configured provenance annotations to a
// converted Markdown body, in fixed order: section header prepended, then
// source URL, then timestamp appended.
func AnnotateMarkdown(markdown string, section Section, out OutputConfig, sourceURL string, now time.Time) string {
	if out.AddSectionHeaders {
		markdown = "# " + section.Description + "\n\n" + markdown
	}
	if out.AddSourceURL {
		markdown += "\n\n---\n\n*Source: " + sourceURL + "*\n"
	}
	if out.AddTimestamp {
		markdown += "*Last updated: " + now.UTC().Format(TimestampFormat) + " UTC*\n"
	}
	return markdown
}
