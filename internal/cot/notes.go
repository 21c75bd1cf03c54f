package cot

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/net/html"
)

// DefaultNotesURL is the CFTC Explanatory Notes page.
const DefaultNotesURL = "https://www.cftc.gov/MarketReports/CommitmentsofTraders/ExplanatoryNotes/index.htm"

// notesContainerClass marks the accordion holding the dt/dd definition
// pairs on the notes page.
const notesContainerClass = "ckeditor-accordion"

var notesColumns = []string{"section", "title", "text"}

// ExplanatoryNotes scrapes the Explanatory Notes page for key definitions.
// Each row is a {section, title, text} triple where section is the
// normalized topic key. The page structure can change, so extraction is
// best-effort: when the expected container is missing, a single fallback
// row carries the visible text of the whole page.
func (c *Client) ExplanatoryNotes(ctx context.Context) (*Table, error) {
	page, err := c.cfg.Fetcher.Fetch(ctx, c.cfg.NotesURL)
	if err != nil {
		return nil, eris.Wrap(err, "cot: fetch explanatory notes")
	}
	return parseExplanatoryNotes(page)
}

// parseExplanatoryNotes extracts definition rows from the notes page HTML.
func parseExplanatoryNotes(page []byte) (*Table, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, eris.Wrap(err, "cot: parse explanatory notes html")
	}

	container := findByClass(doc, notesContainerClass)
	if container == nil {
		// Fallback: capture all visible text from the main content area.
		root := findElement(doc, "main")
		if root == nil {
			root = doc
		}
		return &Table{
			Columns: notesColumns,
			Rows: [][]string{{
				"full_page_fallback",
				"Explanatory Notes (fallback)",
				nodeText(root),
			}},
		}, nil
	}

	t := &Table{Columns: notesColumns}
	for _, dt := range findElements(container, "dt") {
		dd := nextSiblingElement(dt, "dd")
		if dd == nil {
			continue
		}
		title := nodeText(dt)
		t.Rows = append(t.Rows, []string{normalizeSection(title), title, nodeText(dd)})
	}

	return t, nil
}

var sectionRe = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeSection turns a section title into a stable key:
// "Open Interest" -> "open_interest".
func normalizeSection(title string) string {
	s := sectionRe.ReplaceAllString(strings.ToLower(title), "_")
	return strings.Trim(s, "_")
}

// findByClass returns the first element whose class attribute contains the
// given token, depth-first.
func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key != "class" {
				continue
			}
			for _, token := range strings.Fields(attr.Val) {
				if token == class {
					return n
				}
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findByClass(child, class); found != nil {
			return found
		}
	}
	return nil
}

// findElement returns the first element with the given tag, depth-first.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// findElements returns all elements with the given tag under n, in
// document order.
func findElements(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		out = append(out, findElements(child, tag)...)
	}
	return out
}

// nextSiblingElement returns the first following sibling element with the
// given tag, skipping text and comment nodes.
func nextSiblingElement(n *html.Node, tag string) *html.Node {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type == html.ElementNode {
			if sib.Data == tag {
				return sib
			}
			return nil
		}
	}
	return nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// nodeText returns the visible text under a node, whitespace-collapsed.
// Script and style contents are excluded.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(sb.String(), " "))
}
