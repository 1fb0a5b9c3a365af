// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown provides the heading primitives used to read product plan
// documents: line-ending normalization, heading detection, slicing the body
// between headings, bullet collection and slugs.
//
// Headings are lines that begin with one or more '#' characters followed by
// whitespace and a label. Fenced code blocks are not recognized.
package markdown

import (
	"regexp"
	"strings"
)

// headingPattern matches a heading line and captures its marker and label.
var headingPattern = regexp.MustCompile(`^(#+)[ \t]+(\S.*?)[ \t]*$`)

var eolReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Heading is a heading line found in a document.
type Heading struct {
	Level int
	Label string
	// Line is the zero-based line index of the heading.
	Line int
}

// Block is a heading together with the body that follows it.
type Block struct {
	Label string
	// Body is the trimmed text between the heading and the next heading of
	// the same or a higher level.
	Body string
}

// NormalizeEOL converts "\r\n" and lone "\r" line endings to "\n".
func NormalizeEOL(s string) string {
	return eolReplacer.Replace(s)
}

// Lines splits a document into lines after normalizing line endings.
func Lines(doc string) []string {
	return strings.Split(NormalizeEOL(doc), "\n")
}

// ParseHeading reports whether line is a heading and returns its level and
// label with trailing whitespace removed.
func ParseHeading(line string) (level int, label string, ok bool) {
	m := headingPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, "", false
	}
	return len(m[1]), m[2], true
}

// Headings returns every heading of doc in document order.
func Headings(doc string) []Heading {
	var out []Heading
	for i, line := range Lines(doc) {
		if level, label, ok := ParseHeading(line); ok {
			out = append(out, Heading{Level: level, Label: label, Line: i})
		}
	}
	return out
}

// FirstHeading returns the label of the first heading at the given level.
func FirstHeading(doc string, level int) (string, bool) {
	for _, line := range Lines(doc) {
		if l, label, ok := ParseHeading(line); ok && l == level {
			return label, true
		}
	}
	return "", false
}

// ExtractSection returns the body under the first level-2 heading whose label
// equals label, up to the next level-1 or level-2 heading or the end of doc.
// The result is trimmed. It returns "" when the heading is missing.
func ExtractSection(doc, label string) string {
	lines := Lines(doc)
	start := -1
	for i, line := range lines {
		if level, l, ok := ParseHeading(line); ok && level == 2 && l == label {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}
	end := bodyEnd(lines, start, 2)
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

// Blocks returns every heading at exactly the given level with its body.
// A body runs until the next heading whose level is at most level.
func Blocks(doc string, level int) []Block {
	lines := Lines(doc)
	var blocks []Block
	for i, line := range lines {
		l, label, ok := ParseHeading(line)
		if !ok || l != level {
			continue
		}
		end := bodyEnd(lines, i+1, level)
		blocks = append(blocks, Block{
			Label: label,
			Body:  strings.TrimSpace(strings.Join(lines[i+1:end], "\n")),
		})
	}
	return blocks
}

// Bullets returns the items of lines that, once trimmed, start with "- ".
// The marker is removed and the remainder trimmed. Other lines are skipped.
func Bullets(body string) []string {
	var items []string
	for _, line := range Lines(body) {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "- ") {
			items = append(items, strings.TrimSpace(trimmed[2:]))
		}
	}
	return items
}

// bodyEnd returns the index of the first line at or after start that is a
// heading of level maxLevel or higher, or len(lines).
func bodyEnd(lines []string, start, maxLevel int) int {
	for i := start; i < len(lines); i++ {
		if level, _, ok := ParseHeading(lines[i]); ok && level <= maxLevel {
			return i
		}
	}
	return len(lines)
}
