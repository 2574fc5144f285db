package sift

import (
	"strconv"
	"strings"
)

// DefaultEmpty is rendered for an empty report when no sentinel is configured.
const DefaultEmpty = "No results found."

// Sentinels returned by the operations when there is nothing to show.
const (
	NoResults = DefaultEmpty
	NoNews    = "No news found."
	NoContent = "No content found."
)

// TruncationMarker is appended to fetched content cut at the length cap.
const TruncationMarker = "\n\n[content truncated]"

// Report describes how a list of entries is rendered.
type Report struct {
	// Heading precedes the query on the first line, e.g. "Search results for".
	Heading string

	// Noun is the singular label for one entry, e.g. "result".
	Noun string

	// Empty is returned verbatim when there are no entries.
	Empty string
}

// Render formats entries as a numbered plain-text report.
// The output for an empty list depends only on Empty.
func (r Report) Render(entries []Entry, query string) string {
	if len(entries) == 0 {
		if r.Empty == "" {
			return DefaultEmpty
		}
		return r.Empty
	}

	var b strings.Builder
	b.WriteString(r.header(len(entries), query))
	b.WriteString("\n")

	for i, e := range entries {
		b.WriteString("\n")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(e.Heading())
		b.WriteString("\n   URL: ")
		b.WriteString(e.Location())
		b.WriteString("\n")
		for _, f := range e.Details() {
			if f.Value == "" {
				continue
			}
			b.WriteString("   ")
			if f.Label != "" {
				b.WriteString(f.Label)
				b.WriteString(": ")
			}
			b.WriteString(f.Value)
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (r Report) header(n int, query string) string {
	heading := r.Heading
	if heading == "" {
		heading = "Results for"
	}
	noun := r.Noun
	if noun == "" {
		noun = "result"
	}
	if n != 1 {
		noun += "s"
	}
	return heading + ": " + query + " (" + strconv.Itoa(n) + " " + noun + ")"
}

// FormatEntries renders entries under queryLabel, counting them with
// itemLabelSingular. An empty list renders DefaultEmpty.
func FormatEntries(entries []Entry, queryLabel, itemLabelSingular string) string {
	return Report{Heading: "Results for", Noun: itemLabelSingular}.Render(entries, queryLabel)
}
