package sift

import (
	"html"
	"net/url"
	"strings"
)

// RedirectParam is the query parameter the results page uses to wrap the
// destination of a hit in a redirect link.
const RedirectParam = "uddg"

// ResolveRedirect returns the destination of a possibly redirect-wrapped href.
//
// Entities are decoded first. When the href carries RedirectParam after '?'
// or '&', the percent-decoded parameter value is returned. Otherwise the
// decoded href is returned unchanged.
func ResolveRedirect(rawHref string) string {
	href := html.UnescapeString(rawHref)

	value, ok := redirectValue(href)
	if !ok {
		return href
	}

	dest, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return dest
}

// redirectValue finds the first RedirectParam occurrence that starts a
// query parameter and returns its raw value.
func redirectValue(href string) (string, bool) {
	key := RedirectParam + "="
	for i := 0; i < len(href); {
		j := strings.Index(href[i:], key)
		if j < 0 {
			return "", false
		}
		j += i
		if j > 0 && (href[j-1] == '?' || href[j-1] == '&') {
			value := href[j+len(key):]
			if end := strings.IndexByte(value, '&'); end >= 0 {
				value = value[:end]
			}
			if value != "" {
				return value, true
			}
		}
		i = j + len(key)
	}
	return "", false
}
