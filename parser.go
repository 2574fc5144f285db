package sift

// TextNormalizer converts markup into plain text.
type TextNormalizer interface {
	// Normalize converts a full page into clean multi-line text.
	// Noise blocks are removed and block elements become line breaks.
	Normalize(markup string) string

	// StripInline removes tags from a short fragment and decodes entities.
	StripInline(fragment string) string
}

// ResultParser extracts search hits from a results page.
type ResultParser interface {
	// ParseResults returns at most maxResults hits in document order.
	// Hits whose URL the allow list rejects are skipped and do not count
	// towards the cap. Malformed markup yields fewer hits, never an error.
	ParseResults(page string, maxResults int, allow AllowList) []SearchResult
}

// FeedParser extracts items from a syndication document.
type FeedParser interface {
	// ParseFeed returns the first maxResults items in document order.
	// Returns EMALFORMED if the document cannot be parsed.
	ParseFeed(doc string, maxResults int) ([]FeedItem, error)
}
