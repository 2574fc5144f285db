package sift

import (
	"net/url"
	"sort"
	"strings"
)

// AllowList is an immutable set of permitted registrable host suffixes.
// The zero value is empty and allows every URL.
type AllowList struct {
	domains map[string]struct{}
}

// NewAllowList builds an AllowList from configured domain strings.
// Entries are trimmed and lower-cased; a leading "www." is dropped and
// blank entries are ignored.
func NewAllowList(domains ...string) AllowList {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		d = strings.TrimPrefix(d, "www.")
		d = strings.Trim(d, ".")
		if d == "" {
			continue
		}
		set[d] = struct{}{}
	}
	return AllowList{domains: set}
}

// Len returns the number of domains in the list.
func (a AllowList) Len() int {
	return len(a.domains)
}

// Domains returns the entries in sorted order.
func (a AllowList) Domains() []string {
	out := make([]string, 0, len(a.domains))
	for d := range a.domains {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Allows reports whether rawURL's host is permitted.
//
// An empty list allows everything. Otherwise rawURL must be absolute with a
// host; anything unparseable is rejected. The host matches an entry exactly
// or as a subdomain of it, never as a bare substring.
func (a AllowList) Allows(rawURL string) bool {
	if len(a.domains) == 0 {
		return true
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return false
	}
	host = strings.TrimPrefix(host, "www.")

	if _, ok := a.domains[host]; ok {
		return true
	}
	for d := range a.domains {
		if strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// IsAllowed reports whether rawURL passes the allow list.
func IsAllowed(rawURL string, allow AllowList) bool {
	return allow.Allows(rawURL)
}
