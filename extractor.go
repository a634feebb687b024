package docscrape

// Extractor extracts the main content region from an HTML page.
// Implementations strip denylisted elements first, then locate the content
// region; both selector lists are fixed at construction time.
type Extractor interface {
	// Extract processes raw HTML and returns the main content as an HTML
	// fragment. Returns ENOTFOUND if no content selector matches anything.
	// There is no fallback heuristic: a missing match is a definitive
	// failure for the page.
	Extract(html string) (contentHTML string, err error)
}
