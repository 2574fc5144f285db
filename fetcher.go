package sift

import "context"

// Fetcher retrieves a raw document with a single GET request.
// Implementations are safe for concurrent use.
type Fetcher interface {
	// Fetch returns the response body for url.
	// Transport failures and non-success responses return an EFETCH error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
