// Package htmltomarkdown provides the docscrape.Converter implementation
// backed by the html-to-markdown library.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/docmirror/docscrape"
)

// Ensure Converter implements docscrape.Converter at compile time.
var _ docscrape.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// Option configures a Converter.
type Option func(*options)

type options struct {
	strongDelimiter string
}

// WithStrongDelimiter renders <strong> with the given delimiter
// ("**" or "__"). An empty value keeps the library default.
func WithStrongDelimiter(delim string) Option {
	return func(o *options) {
		o.strongDelimiter = delim
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Converter{conv: newConverter(o.strongDelimiter)}
}

func newConverter(strongDelimiter string) *converter.Converter {
	if strongDelimiter != "" {
		return converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(
					commonmark.WithStrongDelimiter(strongDelimiter),
				),
				table.NewTablePlugin(),
			),
		)
	}
	return converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
}

// Convert transforms HTML content into Markdown. Empty input is rejected
// with EINVALID, which also makes an empty-but-matched content fragment a
// per-section failure upstream.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", docscrape.Errorf(docscrape.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}
