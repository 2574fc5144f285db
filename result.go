package sift

// SearchResult is one hit extracted from a search-engine results page.
type SearchResult struct {
	Title string `json:"title"`

	// URL is the destination of the hit with any redirect wrapper removed.
	URL string `json:"url"`

	Snippet string `json:"snippet"`
}

// Heading implements Entry.
func (r SearchResult) Heading() string { return r.Title }

// Location implements Entry.
func (r SearchResult) Location() string { return r.URL }

// Details implements Entry.
func (r SearchResult) Details() []Field {
	return []Field{{Value: r.Snippet}}
}

// FeedItem is one entry read from a syndication feed.
type FeedItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`

	// PublishDate is passed through verbatim from the feed.
	PublishDate string `json:"publishDate"`

	Source string `json:"source"`

	// Description is plain text; markup has been stripped.
	Description string `json:"description"`
}

// Heading implements Entry.
func (i FeedItem) Heading() string { return i.Title }

// Location implements Entry.
func (i FeedItem) Location() string { return i.Link }

// Details implements Entry.
func (i FeedItem) Details() []Field {
	return []Field{
		{Label: "Source", Value: i.Source},
		{Label: "Published", Value: i.PublishDate},
		{Value: i.Description},
	}
}

// Field is an additional line rendered beneath an entry's URL.
// An empty Label renders the value on its own.
type Field struct {
	Label string
	Value string
}

// Entry is anything the formatter can render as a numbered block.
type Entry interface {
	Heading() string
	Location() string
	Details() []Field
}

// SearchEntries converts results to entries for rendering.
func SearchEntries(results []SearchResult) []Entry {
	entries := make([]Entry, 0, len(results))
	for _, r := range results {
		entries = append(entries, r)
	}
	return entries
}

// FeedEntries converts feed items to entries for rendering.
func FeedEntries(items []FeedItem) []Entry {
	entries := make([]Entry, 0, len(items))
	for _, i := range items {
		entries = append(entries, i)
	}
	return entries
}
