// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// OutlineEntry is one heading as seen by a CommonMark parser.
type OutlineEntry struct {
	Level int    `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// Outline parses src with goldmark and returns its headings in document
// order. Unlike Headings it honors fenced code blocks and setext headings,
// so comparing the two shows where a document strays from the plain
// heading grammar the parsers expect.
func Outline(src []byte) []OutlineEntry {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var entries []OutlineEntry
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		var buf bytes.Buffer
		inlineText(h, src, &buf)
		entries = append(entries, OutlineEntry{
			Level: h.Level,
			Text:  strings.TrimSpace(buf.String()),
		})
		return ast.WalkSkipChildren, nil
	})
	return entries
}

// inlineText writes the text content of n's inline descendants to buf.
func inlineText(n ast.Node, src []byte, buf *bytes.Buffer) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			inlineText(c, src, buf)
		}
	}
}
