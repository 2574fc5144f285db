package html

import (
	"strings"

	"github.com/fwojciec/sift"
	"golang.org/x/net/html"
)

// Ensure ResultParser implements sift.ResultParser at compile time.
var _ sift.ResultParser = (*ResultParser)(nil)

// Class names that mark the parts of a hit on the results page.
const (
	ContainerClass = "results_links_deep"
	LinkClass      = "result__a"
	SnippetClass   = "result__snippet"
)

// ResultParser extracts hits from a DuckDuckGo HTML results page.
type ResultParser struct{}

// NewResultParser creates a new ResultParser.
func NewResultParser() *ResultParser {
	return &ResultParser{}
}

// ParseResults implements sift.ResultParser.
//
// Containers are scanned in document order. A container is skipped when its
// primary link is missing or has no href, when its title is blank, or when
// the allow list rejects its resolved URL. Scanning stops once maxResults
// hits are accepted.
func (p *ResultParser) ParseResults(page string, maxResults int, allow sift.AllowList) []sift.SearchResult {
	results := []sift.SearchResult{}
	if maxResults <= 0 {
		return results
	}

	z := html.NewTokenizer(strings.NewReader(page))
	var c *container

	for len(results) < maxResults {
		tt := z.Next()
		if tt == html.ErrorToken {
			// A container left open at the end of the page still counts.
			if c != nil {
				if r, ok := c.result(allow); ok {
					results = append(results, r)
				}
			}
			break
		}

		if c == nil {
			if tt == html.StartTagToken {
				name, attrs := readTag(z)
				if name == "div" && hasClass(attrs["class"], ContainerClass) {
					c = &container{depth: 1}
				}
			}
			continue
		}

		if c.consume(z, tt) {
			if r, ok := c.result(allow); ok {
				results = append(results, r)
			}
			c = nil
		}
	}

	return results
}

// container accumulates the anchors of one result region.
type container struct {
	depth   int
	link    *anchor
	snippet *anchor
	open    *anchor
}

type anchor struct {
	href  string
	inner strings.Builder
}

// consume feeds the current token to the container and reports whether the
// container has been closed.
func (c *container) consume(z *html.Tokenizer, tt html.TokenType) bool {
	switch tt {
	case html.StartTagToken:
		raw := string(z.Raw())
		name, attrs := readTag(z)
		switch {
		case name == "div":
			c.depth++
		case name == "a" && c.open == nil:
			class := attrs["class"]
			if c.link == nil && hasClass(class, LinkClass) {
				c.link = &anchor{href: attrs["href"]}
				c.open = c.link
				return false
			}
			if c.snippet == nil && hasClass(class, SnippetClass) {
				c.snippet = &anchor{}
				c.open = c.snippet
				return false
			}
		}
		c.capture(raw)
	case html.EndTagToken:
		raw := string(z.Raw())
		name, _ := readTag(z)
		switch name {
		case "div":
			c.depth--
			if c.depth == 0 {
				c.open = nil
				return true
			}
		case "a":
			if c.open != nil {
				c.open = nil
				return false
			}
		}
		c.capture(raw)
	default:
		c.capture(string(z.Raw()))
	}
	return false
}

func (c *container) capture(raw string) {
	if c.open != nil {
		c.open.inner.WriteString(raw)
	}
}

func (c *container) result(allow sift.AllowList) (sift.SearchResult, bool) {
	if c.link == nil {
		return sift.SearchResult{}, false
	}

	// A link without a destination is no link at all.
	url := strings.TrimSpace(sift.ResolveRedirect(c.link.href))
	if url == "" {
		return sift.SearchResult{}, false
	}

	title := StripInline(c.link.inner.String())
	if strings.TrimSpace(title) == "" {
		return sift.SearchResult{}, false
	}

	var snippet string
	if c.snippet != nil {
		snippet = StripInline(c.snippet.inner.String())
	}

	if !allow.Allows(url) {
		return sift.SearchResult{}, false
	}

	return sift.SearchResult{Title: title, URL: url, Snippet: snippet}, true
}

// readTag returns the lower-cased tag name and its attributes.
// Earlier attributes win over later duplicates.
func readTag(z *html.Tokenizer) (string, map[string]string) {
	name, more := z.TagName()
	attrs := make(map[string]string)
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		k := string(key)
		if _, ok := attrs[k]; !ok {
			attrs[k] = string(val)
		}
	}
	return string(name), attrs
}

func hasClass(class, want string) bool {
	for _, c := range strings.Fields(class) {
		if c == want {
			return true
		}
	}
	return false
}
