package mock

import "github.com/fwojciec/sift"

var (
	_ sift.TextNormalizer = (*TextNormalizer)(nil)
	_ sift.ResultParser   = (*ResultParser)(nil)
	_ sift.FeedParser     = (*FeedParser)(nil)
)

// TextNormalizer is a mock implementation of sift.TextNormalizer.
type TextNormalizer struct {
	NormalizeFn   func(markup string) string
	StripInlineFn func(fragment string) string
}

func (n *TextNormalizer) Normalize(markup string) string {
	return n.NormalizeFn(markup)
}

func (n *TextNormalizer) StripInline(fragment string) string {
	return n.StripInlineFn(fragment)
}

// ResultParser is a mock implementation of sift.ResultParser.
type ResultParser struct {
	ParseResultsFn func(page string, maxResults int, allow sift.AllowList) []sift.SearchResult
}

func (p *ResultParser) ParseResults(page string, maxResults int, allow sift.AllowList) []sift.SearchResult {
	return p.ParseResultsFn(page, maxResults, allow)
}

// FeedParser is a mock implementation of sift.FeedParser.
type FeedParser struct {
	ParseFeedFn func(doc string, maxResults int) ([]sift.FeedItem, error)
}

func (p *FeedParser) ParseFeed(doc string, maxResults int) ([]sift.FeedItem, error) {
	return p.ParseFeedFn(doc, maxResults)
}
