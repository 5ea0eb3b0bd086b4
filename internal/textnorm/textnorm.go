// Package textnorm normalizes text pulled out of HTML documents so it
// reads the way a browser would render it.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var whitespace = regexp.MustCompile(`\s+`)

// Collapse strips control characters, applies NFKC normalization (which
// also turns non-breaking spaces into plain ones) and collapses every run
// of whitespace into a single space, trimming the ends.
func Collapse(text string) string {
	text = stripControl(text)
	text = norm.NFKC.String(text)
	return whitespace.ReplaceAllString(strings.TrimSpace(text), " ")
}

// stripControl drops Unicode control characters, keeping the whitespace
// ones so that line structure still counts as word separation.
func stripControl(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case '\t', '\n', '\r', '\f':
			b.WriteRune(r)
		default:
			if !unicode.IsControl(r) {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
