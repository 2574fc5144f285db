package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sift"
)

var (
	_ sift.ResultParser = (*LoggingResultParser)(nil)
	_ sift.FeedParser   = (*LoggingFeedParser)(nil)
)

// LoggingResultParser wraps a ResultParser with debug logging.
type LoggingResultParser struct {
	next   sift.ResultParser
	logger *slog.Logger
}

// NewLoggingResultParser creates a new LoggingResultParser.
func NewLoggingResultParser(next sift.ResultParser, logger *slog.Logger) *LoggingResultParser {
	return &LoggingResultParser{next: next, logger: logger}
}

// ParseResults delegates to the wrapped parser and logs how many hits it kept.
func (p *LoggingResultParser) ParseResults(page string, maxResults int, allow sift.AllowList) []sift.SearchResult {
	begin := time.Now()
	results := p.next.ParseResults(page, maxResults, allow)
	p.logger.Debug("parse results",
		"bytes", len(page),
		"max", maxResults,
		"allowed_domains", allow.Len(),
		"count", len(results),
		"duration", time.Since(begin),
	)
	return results
}

// LoggingFeedParser wraps a FeedParser with debug logging.
type LoggingFeedParser struct {
	next   sift.FeedParser
	logger *slog.Logger
}

// NewLoggingFeedParser creates a new LoggingFeedParser.
func NewLoggingFeedParser(next sift.FeedParser, logger *slog.Logger) *LoggingFeedParser {
	return &LoggingFeedParser{next: next, logger: logger}
}

// ParseFeed delegates to the wrapped parser and logs the outcome.
func (p *LoggingFeedParser) ParseFeed(doc string, maxResults int) (items []sift.FeedItem, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("parse feed",
			"bytes", len(doc),
			"max", maxResults,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseFeed(doc, maxResults)
}
