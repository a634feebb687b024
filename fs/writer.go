// Package fs provides file-based persistence for rendered documentation.
package fs

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/docmirror/docscrape"
)

// Ensure Writer implements docscrape.DocumentWriter at compile time.
var _ docscrape.DocumentWriter = (*Writer)(nil)

// Writer writes section documents and the aggregate index as Markdown files
// under a docs directory. Existing files are overwritten unconditionally.
type Writer struct {
	dir       string
	indexFile string
}

// NewWriter creates a new Writer rooted at dir. indexFile is the index
// filename relative to dir.
func NewWriter(dir, indexFile string) *Writer {
	return &Writer{dir: dir, indexFile: indexFile}
}

// WriteDocument writes a rendered document to its section's file.
// The write is all-or-nothing: content goes to a temporary file in the
// target directory first and is renamed into place, so a failed write
// never leaves a partial file behind.
func (w *Writer) WriteDocument(doc *docscrape.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	return w.writeFile(doc.Section.Filename, doc.Markdown)
}

// WriteIndex writes the aggregate index listing all sections.
func (w *Writer) WriteIndex(sections []docscrape.Section, now time.Time) error {
	return w.writeFile(w.indexFile, FormatIndex(sections, now))
}

func (w *Writer) writeFile(relPath, content string) error {
	fullPath := filepath.Join(w.dir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), filepath.Base(fullPath)+".tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// FormatIndex renders the aggregate index document: a title, a generation
// timestamp, one bullet per section in declared order, and a static usage
// note and footer.
func FormatIndex(sections []docscrape.Section, now time.Time) string {
	var b strings.Builder
	b.WriteString("# Documentation Index\n")
	b.WriteString("\n")
	b.WriteString("*Auto-generated documentation index*\n")
	b.WriteString("\n")
	b.WriteString("Last updated: " + now.UTC().Format(docscrape.TimestampFormat) + " UTC\n")
	b.WriteString("\n")
	b.WriteString("## Available Documentation Sections\n")
	b.WriteString("\n")

	for _, section := range sections {
		b.WriteString("- **[" + section.Name + "](" + section.Filename + ")** - " + section.Description + "\n")
	}

	b.WriteString("\n")
	b.WriteString("## Usage\n")
	b.WriteString("\n")
	b.WriteString("This documentation is scraped automatically from the official documentation site.\n")
	b.WriteString("Use these files for offline reference.\n")
	b.WriteString("\n")
	b.WriteString("---\n")
	b.WriteString("\n")
	b.WriteString("*Generated by docscrape*\n")
	return b.String()
}
