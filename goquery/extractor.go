// Package goquery provides a CSS-selector based implementation of
// docscrape.Extractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docmirror/docscrape"
)

// Ensure Extractor implements docscrape.Extractor at compile time.
var _ docscrape.Extractor = (*Extractor)(nil)

// Extractor locates the main content region of a page using a prioritized
// list of CSS selectors, after stripping denylisted elements.
type Extractor struct {
	removeSelectors  []string
	contentSelectors []string
}

// NewExtractor creates an Extractor. removeSelectors are applied first, in
// listed order; contentSelectors are tried in priority order until one
// matches.
func NewExtractor(removeSelectors, contentSelectors []string) *Extractor {
	return &Extractor{
		removeSelectors:  removeSelectors,
		contentSelectors: contentSelectors,
	}
}

// Extract returns the outer HTML of the first node matched by the first
// content selector with at least one match. Removed elements never
// interfere with content matching since the denylist pass runs first.
// Returns ENOTFOUND when no content selector matches anything; there is
// deliberately no fallback heuristic.
func (e *Extractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docscrape.Errorf(docscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range e.removeSelectors {
		doc.Find(selector).Remove()
	}

	for _, selector := range e.contentSelectors {
		match := doc.Find(selector).First()
		if match.Length() == 0 {
			continue
		}
		content, err := goquery.OuterHtml(match)
		if err != nil {
			return "", docscrape.Errorf(docscrape.EINTERNAL, "failed to render content for selector %q: %v", selector, err)
		}
		return content, nil
	}

	return "", docscrape.Errorf(docscrape.ENOTFOUND, "no content selector matched")
}
