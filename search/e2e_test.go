package search_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/sift"
	sifteetree "github.com/fwojciec/sift/etree"
	sifthtml "github.com/fwojciec/sift/html"
	sifthttp "github.com/fwojciec/sift/http"
	"github.com/fwojciec/sift/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<!DOCTYPE html>
<html><head><title>golang at DuckDuckGo</title></head>
<body>
<div id="links" class="results">
<div class="result results_links results_links_deep web-result ">
  <div class="links_main links_deep result__body">
    <h2 class="result__title">
      <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2F&amp;rut=abc">The Go Programming Language</a>
    </h2>
    <a class="result__snippet" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2F">Go is an open source programming language.</a>
  </div>
</div>
<div class="result results_links results_links_deep web-result ">
  <div class="links_main links_deep result__body">
    <h2 class="result__title">
      <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fnotgo.dev%2Fspam">Not Go</a>
    </h2>
  </div>
</div>
<div class="result results_links results_links_deep web-result ">
  <div class="links_main links_deep result__body">
    <h2 class="result__title">
      <a rel="nofollow" class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fpkg.go.dev%2Fstd">Standard library</a>
    </h2>
  </div>
</div>
</div>
</body></html>`

const newsFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>"golang" - Google News</title>
<item>
  <title>Go 1.25 is released</title>
  <link>https://go.dev/blog/go1.25</link>
  <pubDate>Tue, 12 Aug 2025 16:00:00 GMT</pubDate>
  <description>&lt;a href="https://go.dev/blog/go1.25"&gt;Go 1.25 is released&lt;/a&gt;</description>
  <source url="https://go.dev">The Go Blog</source>
</item>
</channel></rss>`

const articlePage = `<html><head><style>body{color:red}</style></head>
<body>
<nav><a href="/">Home</a> | <a href="/blog">Blog</a></nav>
<h1>Release notes</h1>
<p>Go 1.25 brings container-aware GOMAXPROCS.</p>
<footer>Copyright</footer>
</body></html>`

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/html/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(resultsPage))
	})
	mux.HandleFunc("/rss/search", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		_, _ = w.Write([]byte(newsFeed))
	})
	mux.HandleFunc("/article", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(articlePage))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newService(server *httptest.Server, allow sift.AllowList) *search.Service {
	normalizer := sifthtml.NewNormalizer()
	return &search.Service{
		Fetcher:        sifthttp.NewFetcher(),
		Results:        sifthtml.NewResultParser(),
		Feeds:          sifteetree.NewFeedParser(normalizer),
		Normalizer:     normalizer,
		AllowList:      allow,
		SearchEndpoint: server.URL + "/html/",
		NewsEndpoint:   server.URL + "/rss/search",
	}
}

func TestService_EndToEnd(t *testing.T) {
	t.Parallel()

	t.Run("web search unwraps redirects and filters domains", func(t *testing.T) {
		t.Parallel()

		svc := newService(newServer(t), sift.NewAllowList("go.dev"))

		out, err := svc.SearchWeb(context.Background(), "golang", 5)

		require.NoError(t, err)
		assert.Equal(t, "Search results for: golang (2 results)\n"+
			"\n"+
			"1. The Go Programming Language\n"+
			"   URL: https://go.dev/\n"+
			"   Go is an open source programming language.\n"+
			"\n"+
			"2. Standard library\n"+
			"   URL: https://pkg.go.dev/std\n", out)
	})

	t.Run("web search stops at the cap", func(t *testing.T) {
		t.Parallel()

		svc := newService(newServer(t), sift.NewAllowList())

		out, err := svc.SearchWeb(context.Background(), "golang", 1)

		require.NoError(t, err)
		assert.Contains(t, out, "(1 result)")
		assert.NotContains(t, out, "Not Go")
	})

	t.Run("news search reads the feed", func(t *testing.T) {
		t.Parallel()

		svc := newService(newServer(t), sift.NewAllowList())

		out, err := svc.SearchNews(context.Background(), "golang", 5)

		require.NoError(t, err)
		assert.Equal(t, "News for: golang (1 article)\n"+
			"\n"+
			"1. Go 1.25 is released\n"+
			"   URL: https://go.dev/blog/go1.25\n"+
			"   Source: The Go Blog\n"+
			"   Published: Tue, 12 Aug 2025 16:00:00 GMT\n"+
			"   Go 1.25 is released\n", out)
	})

	t.Run("content fetch strips page chrome", func(t *testing.T) {
		t.Parallel()

		server := newServer(t)
		svc := newService(server, sift.NewAllowList())

		out, err := svc.FetchContent(context.Background(), server.URL+"/article", 8000)

		require.NoError(t, err)
		assert.Equal(t, "Release notes\nGo 1.25 brings container-aware GOMAXPROCS.", out)
	})

	t.Run("content fetch reports missing pages", func(t *testing.T) {
		t.Parallel()

		server := newServer(t)
		svc := newService(server, sift.NewAllowList())

		_, err := svc.FetchContent(context.Background(), server.URL+"/missing", 8000)

		require.Error(t, err)
		assert.Equal(t, sift.EFETCH, sift.ErrorCode(err))
	})
}
