// Package extract renders scraped HTML documents down to visible text.
// The parser is tolerant of malformed markup, which real downloaded law
// pages contain plenty of: unclosed tags, unquoted attributes and stray
// entities all parse to a best-effort tree instead of failing.
package extract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/skrymets/radatext/internal/textnorm"
)

// skippedTags hold content that is never part of the rendered page text.
var skippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"head":     true,
}

// blockTags separate words when rendered, even with no whitespace in the
// markup between them.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "caption": true, "dd": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

// Text reads an HTML document from r and returns the visible text of its
// body: markup stripped, script and style content dropped, whitespace
// collapsed to single spaces.
func Text(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var b strings.Builder
	// The html5 parser synthesizes a body even for fragment input, so
	// the selection is never empty for parseable bytes.
	for _, n := range doc.Find("body").Nodes {
		renderText(n, &b)
	}
	return textnorm.Collapse(b.String()), nil
}

// TextFromFile renders the visible body text of the HTML file at path.
// The file is assumed to already be UTF-8; run it through the batch
// transcoder first if it is not.
func TextFromFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	text, err := Text(f)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", path, err)
	}
	return text, nil
}

// TextAt reads an HTML document from r and returns the visible text of
// the first node matching the XPath expression, e.g. "//table" or
// "//div[@class='law']". It returns an error for an invalid expression
// and an empty string when nothing matches.
func TextAt(r io.Reader, expr string) (string, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	node, err := htmlquery.Query(doc, expr)
	if err != nil {
		return "", fmt.Errorf("xpath %q: %w", expr, err)
	}
	if node == nil {
		return "", nil
	}

	var b strings.Builder
	renderText(node, &b)
	return textnorm.Collapse(b.String()), nil
}

// renderText walks the subtree under n accumulating text node content,
// with a space written at block element boundaries so adjacent paragraphs
// do not run together.
func renderText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if skippedTags[n.Data] {
			return
		}
		if blockTags[n.Data] {
			b.WriteByte(' ')
		}
	case html.CommentNode:
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(c, b)
	}

	if n.Type == html.ElementNode && blockTags[n.Data] {
		b.WriteByte(' ')
	}
}
