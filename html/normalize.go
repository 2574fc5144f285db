// Package html implements sift's markup handling on top of the streaming
// tokenizer from golang.org/x/net/html. No document tree is built.
package html

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/sift"
	"golang.org/x/net/html"
)

// Ensure Normalizer implements sift.TextNormalizer at compile time.
var _ sift.TextNormalizer = (*Normalizer)(nil)

// noiseTags are removed together with their content.
var noiseTags = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
	"iframe": true,
}

// blockTags become line breaks, whether opening, closing or self-closing.
var blockTags = map[string]bool{
	"p":          true,
	"div":        true,
	"br":         true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"li":         true,
	"tr":         true,
	"blockquote": true,
}

// Normalizer converts markup into plain text.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize implements sift.TextNormalizer.
func (n *Normalizer) Normalize(markup string) string {
	return Normalize(markup)
}

// StripInline implements sift.TextNormalizer.
func (n *Normalizer) StripInline(fragment string) string {
	return StripInline(fragment)
}

// Normalize converts a page into clean multi-line text.
//
// Noise elements are dropped with their content, each leaving one space.
// Same-named noise elements nest, and an unclosed one runs to the end of the
// input. Block tags become newlines, every other tag a space. Text is
// entity-decoded. Lines are then space-collapsed and trimmed, and blank
// lines or stray single symbols such as "|" are dropped.
func Normalize(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))

	var b strings.Builder
	var skip string
	depth := 0

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		if skip != "" {
			switch tt {
			case html.StartTagToken:
				if tagName(z) == skip {
					depth++
				}
			case html.EndTagToken:
				if tagName(z) == skip {
					depth--
					if depth == 0 {
						skip = ""
					}
				}
			}
			continue
		}

		switch tt {
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken:
			name := tagName(z)
			if noiseTags[name] {
				skip, depth = name, 1
				b.WriteByte(' ')
				continue
			}
			b.WriteString(separator(name))
		case html.EndTagToken, html.SelfClosingTagToken:
			b.WriteString(separator(tagName(z)))
		default:
			// Comments and doctypes are tags too.
			b.WriteByte(' ')
		}
	}

	return cleanLines(b.String())
}

// StripInline removes every tag from fragment, leaving one space per tag,
// decodes entities and trims the result.
func StripInline(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var b strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.Write(z.Text())
		default:
			b.WriteByte(' ')
		}
	}
}

func tagName(z *html.Tokenizer) string {
	name, _ := z.TagName()
	return string(name)
}

func separator(name string) string {
	if blockTags[name] {
		return "\n"
	}
	return " "
}

// cleanLines collapses space runs, trims each line and drops lines of at
// most one character. A lone letter or digit is content and survives.
func cleanLines(s string) string {
	lines := strings.Split(s, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(collapseSpaces(line))
		if utf8.RuneCountInString(line) <= 1 && !isWord(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func isWord(line string) bool {
	r, size := utf8.DecodeRuneInString(line)
	return size > 0 && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

func collapseSpaces(line string) string {
	if !strings.Contains(line, "  ") {
		return line
	}
	var b strings.Builder
	b.Grow(len(line))
	prev := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == ' ' && prev {
			continue
		}
		prev = c == ' '
		b.WriteByte(c)
	}
	return b.String()
}
