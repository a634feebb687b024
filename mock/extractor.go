package mock

import "github.com/docmirror/docscrape"

var _ docscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
