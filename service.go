package sift

import "context"

// Service exposes the extraction pipeline to callers.
// Every method returns a formatted plain-text report.
type Service interface {
	// SearchWeb runs a web search and reports up to maxResults hits.
	SearchWeb(ctx context.Context, query string, maxResults int) (string, error)

	// SearchNews searches a news feed and reports up to maxResults items.
	SearchNews(ctx context.Context, query string, maxResults int) (string, error)

	// FetchContent returns the normalized text of the page at url, cut to
	// maxLength characters with TruncationMarker appended when cut.
	FetchContent(ctx context.Context, url string, maxLength int) (string, error)
}
