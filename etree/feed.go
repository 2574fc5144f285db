// Package etree implements sift.FeedParser using github.com/beevik/etree.
package etree

import (
	"encoding/xml"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/sift"
	"golang.org/x/net/html/charset"
)

// Ensure FeedParser implements sift.FeedParser at compile time.
var _ sift.FeedParser = (*FeedParser)(nil)

// FeedParser reads items from RSS documents, and entries from Atom
// documents that have no RSS items.
type FeedParser struct {
	normalizer sift.TextNormalizer
}

// NewFeedParser creates a FeedParser that strips description markup with
// the given normalizer.
func NewFeedParser(normalizer sift.TextNormalizer) *FeedParser {
	return &FeedParser{normalizer: normalizer}
}

// ParseFeed implements sift.FeedParser.
func (p *FeedParser) ParseFeed(doc string, maxResults int) ([]sift.FeedItem, error) {
	d := etree.NewDocument()
	d.ReadSettings.CharsetReader = charset.NewReaderLabel
	d.ReadSettings.Entity = xml.HTMLEntity
	if err := d.ReadFromString(doc); err != nil {
		return nil, sift.Errorf(sift.EMALFORMED, "parsing feed XML: %v", err)
	}
	if d.Root() == nil {
		return nil, sift.Errorf(sift.EMALFORMED, "empty feed document")
	}

	items := []sift.FeedItem{}
	if maxResults <= 0 {
		return items, nil
	}

	elems := d.FindElements("//item")
	if len(elems) == 0 {
		elems = d.FindElements("//entry")
	}
	if len(elems) > maxResults {
		elems = elems[:maxResults]
	}

	for _, el := range elems {
		items = append(items, p.parseItem(el))
	}
	return items, nil
}

func (p *FeedParser) parseItem(el *etree.Element) sift.FeedItem {
	item := sift.FeedItem{
		Title:       childText(el, "title"),
		Link:        itemLink(el),
		PublishDate: childText(el, "pubDate", "published", "updated"),
		Source:      childText(el, "source"),
	}
	if desc := childText(el, "description", "summary", "content"); desc != "" {
		item.Description = p.normalizer.StripInline(desc)
	}
	return item
}

// itemLink picks the item's link, preferring a bare text node that follows
// an empty <link/> element, then the link element's text, then an Atom href,
// then the item identifier.
func itemLink(el *etree.Element) string {
	if link := bareLink(el); link != "" {
		return link
	}

	var href string
	for _, c := range el.ChildElements() {
		if c.Space != "" || c.Tag != "link" {
			continue
		}
		if text := strings.TrimSpace(c.Text()); text != "" {
			return text
		}
		if href == "" {
			if rel := c.SelectAttrValue("rel", ""); rel == "" || rel == "alternate" {
				href = strings.TrimSpace(c.SelectAttrValue("href", ""))
			}
		}
	}
	if href != "" {
		return href
	}

	return childText(el, "guid", "id")
}

// bareLink returns the first non-blank text node directly after an empty
// link element among el's children.
func bareLink(el *etree.Element) string {
	var prev *etree.Element
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.Element:
			prev = t
		case *etree.CharData:
			if prev == nil || prev.Space != "" || prev.Tag != "link" || len(prev.Child) > 0 {
				continue
			}
			if text := strings.TrimSpace(t.Data); text != "" {
				return text
			}
		}
	}
	return ""
}

// childText returns the trimmed text of the first un-prefixed child named by
// one of tags, trying tags in order.
func childText(el *etree.Element, tags ...string) string {
	for _, tag := range tags {
		for _, c := range el.ChildElements() {
			if c.Space != "" || c.Tag != tag {
				continue
			}
			if text := strings.TrimSpace(c.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}
