package docscrape

import "time"

// DocumentWriter persists rendered documents and the aggregate index.
type DocumentWriter interface {
	// WriteDocument writes a rendered section document to its configured
	// file, overwriting any existing file. Writes are all-or-nothing per
	// file: a failed write never leaves a partial file behind.
	WriteDocument(doc *Document) error

	// WriteIndex writes the aggregate index listing all sections in
	// declared order. Called only after full (unfiltered) runs.
	WriteIndex(sections []Section, now time.Time) error
}
