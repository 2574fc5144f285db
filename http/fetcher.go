// Package http provides the shared HTTP client sift uses to retrieve
// results pages, feeds and content pages.
package http

import (
	"bufio"
	"context"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/sift"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
// Results pages serve a stripped-down page to unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 8 << 20

// Ensure Fetcher implements sift.Fetcher at compile time.
var _ sift.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents with plain GET requests. It does not execute
// JavaScript. A single Fetcher is safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	maxBody   int64
	limiter   *HostLimiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of body bytes read per response.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// WithRateLimit limits requests to rps per host. Zero or less disables it.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = NewHostLimiter(rps)
	}
}

// WithClient replaces the underlying HTTP client. The client's own timeout
// is left untouched.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		maxBody:   DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the body at rawURL. HTML bodies in other charsets are
// converted to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", sift.Errorf(sift.EINVALID, "invalid URL %q", rawURL)
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, u); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", sift.Errorf(sift.EINVALID, "creating request: %v", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", sift.Errorf(sift.EFETCH, "fetching %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", sift.Errorf(sift.EFETCH, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	var body io.Reader = resp.Body
	if f.maxBody > 0 {
		body = io.LimitReader(body, f.maxBody)
	}

	if contentType := resp.Header.Get("Content-Type"); isHTML(contentType) {
		body = decodeHTML(body, contentType)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", sift.Errorf(sift.EFETCH, "reading %s: %v", rawURL, err)
	}

	return string(data), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// decodeHTML converts r to UTF-8 when the charset is declared or detected
// with confidence. Undeclared pages are read as-is rather than falling back
// to windows-1252.
func decodeHTML(r io.Reader, contentType string) io.Reader {
	br := bufio.NewReaderSize(r, 1024)
	peek, _ := br.Peek(1024)
	enc, name, certain := charset.DetermineEncoding(peek, contentType)
	if name == "utf-8" || (!certain && name == "windows-1252") {
		return br
	}
	return enc.NewDecoder().Reader(br)
}

// isHTML reports whether contentType is an HTML media type. Feeds carry
// their encoding in the XML declaration and are left for the XML parser.
func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
