package mock

import (
	"time"

	"github.com/docmirror/docscrape"
)

var _ docscrape.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of docscrape.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(doc *docscrape.Document) error
	WriteIndexFn    func(sections []docscrape.Section, now time.Time) error
}

func (w *DocumentWriter) WriteDocument(doc *docscrape.Document) error {
	return w.WriteDocumentFn(doc)
}

func (w *DocumentWriter) WriteIndex(sections []docscrape.Section, now time.Time) error {
	return w.WriteIndexFn(sections, now)
}
