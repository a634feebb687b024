package docscrape

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs a single request and returns the response body.
	// The context controls timeout and cancellation. Retry is the
	// caller's responsibility.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
