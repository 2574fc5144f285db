// Package search implements sift's three operations by combining a fetcher
// with the markup parsers and the report formatter.
package search

import (
	"context"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/sift"
)

// Default endpoints used when the Service leaves them empty.
const (
	DefaultSearchEndpoint = "https://html.duckduckgo.com/html/"
	DefaultNewsEndpoint   = "https://news.google.com/rss/search"
)

// DefaultLocale fills the fields Service.Locale leaves empty.
var DefaultLocale = Locale{Language: "en-US", Country: "US"}

// WebReport renders web search results.
var WebReport = sift.Report{
	Heading: "Search results for",
	Noun:    "result",
	Empty:   sift.NoResults,
}

// NewsReport renders news items.
var NewsReport = sift.Report{
	Heading: "News for",
	Noun:    "article",
	Empty:   sift.NoNews,
}

// Locale selects the edition of the news feed.
type Locale struct {
	Language string // e.g. "en-US"
	Country  string // e.g. "US"
}

// edition returns the ceid value, "US:en" for Language "en-US".
func (l Locale) edition() string {
	lang, _, _ := strings.Cut(l.Language, "-")
	return l.Country + ":" + lang
}

// Ensure Service implements sift.Service at compile time.
var _ sift.Service = (*Service)(nil)

// Service implements sift.Service.
type Service struct {
	Fetcher    sift.Fetcher
	Results    sift.ResultParser
	Feeds      sift.FeedParser
	Normalizer sift.TextNormalizer

	// AllowList restricts web results to these domains. News items are not
	// filtered.
	AllowList sift.AllowList

	SearchEndpoint string
	NewsEndpoint   string
	Locale         Locale
}

// SearchWeb fetches the results page for query and reports up to
// maxResults hits accepted by the allow list.
func (s *Service) SearchWeb(ctx context.Context, query string, maxResults int) (string, error) {
	if err := validateQuery(query, maxResults); err != nil {
		return "", err
	}

	page, err := s.Fetcher.Fetch(ctx, s.searchURL(query))
	if err != nil {
		return "", err
	}

	results := s.Results.ParseResults(page, maxResults, s.AllowList)
	return WebReport.Render(sift.SearchEntries(results), query), nil
}

// SearchNews fetches the news feed for query and reports its first
// maxResults items.
func (s *Service) SearchNews(ctx context.Context, query string, maxResults int) (string, error) {
	if err := validateQuery(query, maxResults); err != nil {
		return "", err
	}

	doc, err := s.Fetcher.Fetch(ctx, s.newsURL(query))
	if err != nil {
		return "", err
	}

	items, err := s.Feeds.ParseFeed(doc, maxResults)
	if err != nil {
		return "", err
	}
	return NewsReport.Render(sift.FeedEntries(items), query), nil
}

// FetchContent fetches rawURL and returns its normalized text, cut to
// maxLength characters. Pages without text return sift.NoContent.
func (s *Service) FetchContent(ctx context.Context, rawURL string, maxLength int) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", sift.Errorf(sift.EINVALID, "url required")
	}
	if maxLength <= 0 {
		return "", sift.Errorf(sift.EINVALID, "max length must be positive, got %d", maxLength)
	}

	page, err := s.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}

	text := s.Normalizer.Normalize(page)
	if strings.TrimSpace(text) == "" {
		return sift.NoContent, nil
	}
	return Truncate(text, maxLength), nil
}

// Truncate cuts text to maxLength characters and appends
// sift.TruncationMarker. Text within the limit is returned unchanged.
func Truncate(text string, maxLength int) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	n := 0
	for i := range text {
		if n == maxLength {
			return text[:i] + sift.TruncationMarker
		}
		n++
	}
	return text
}

// SiteFilter returns the query suffix restricting a search to the allowed
// domains, e.g. " (site:a.com OR site:b.org)". An empty list gives "".
func SiteFilter(allow sift.AllowList) string {
	domains := allow.Domains()
	if len(domains) == 0 {
		return ""
	}
	sites := make([]string, len(domains))
	for i, d := range domains {
		sites[i] = "site:" + d
	}
	return " (" + strings.Join(sites, " OR ") + ")"
}

func (s *Service) searchURL(query string) string {
	endpoint := s.SearchEndpoint
	if endpoint == "" {
		endpoint = DefaultSearchEndpoint
	}
	q := url.Values{}
	q.Set("q", query+SiteFilter(s.AllowList))
	return withQuery(endpoint, q)
}

func (s *Service) newsURL(query string) string {
	endpoint := s.NewsEndpoint
	if endpoint == "" {
		endpoint = DefaultNewsEndpoint
	}
	locale := s.Locale
	if locale.Language == "" {
		locale.Language = DefaultLocale.Language
	}
	if locale.Country == "" {
		locale.Country = DefaultLocale.Country
	}
	q := url.Values{}
	q.Set("q", query)
	q.Set("hl", locale.Language)
	q.Set("gl", locale.Country)
	q.Set("ceid", locale.edition())
	return withQuery(endpoint, q)
}

// withQuery appends q to endpoint, keeping any query the endpoint has.
func withQuery(endpoint string, q url.Values) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + q.Encode()
}

func validateQuery(query string, maxResults int) error {
	if strings.TrimSpace(query) == "" {
		return sift.Errorf(sift.EINVALID, "query required")
	}
	if maxResults < 0 {
		return sift.Errorf(sift.EINVALID, "max results must not be negative, got %d", maxResults)
	}
	return nil
}
