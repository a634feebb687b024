package mock

import "github.com/docmirror/docscrape"

var _ docscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of docscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
