// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package product turns product plan documents into typed records.
//
// The parsers are pure functions of their input text. They never return an
// error: a document that yields nothing meaningful produces nil, and any
// panic raised while scanning is recovered and also produces nil.
package product

import (
	"regexp"
	"strings"

	"github.com/pdiddy/product-plan/internal/markdown"
	"github.com/pdiddy/product-plan/pkg/types"
)

// DefaultProductName is used when the overview has no level-1 heading.
const DefaultProductName = "Product Overview"

const (
	descriptionHeading = "Description"
	problemsHeading    = "Problems & Solutions"
	featuresHeading    = "Key Features"
)

// problemPattern matches a level-3 label "Problem N: Title". The number is
// consumed for matching only.
var problemPattern = regexp.MustCompile(`^Problem \d+:\s*(.*)$`)

// ParseOverview parses product-overview.md. It returns nil when the text is
// blank or when description, problems and features are all empty.
func ParseOverview(text string) (overview *types.ProductOverview) {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	defer func() {
		if recover() != nil {
			overview = nil
		}
	}()

	name, ok := markdown.FirstHeading(text, 1)
	if !ok {
		name = DefaultProductName
	}

	ov := &types.ProductOverview{
		Name:        name,
		Description: markdown.ExtractSection(text, descriptionHeading),
		Problems:    nonNil(parseProblems(markdown.ExtractSection(text, problemsHeading))),
		Features:    nonNil(markdown.Bullets(markdown.ExtractSection(text, featuresHeading))),
	}

	if ov.Description == "" && len(ov.Problems) == 0 && len(ov.Features) == 0 {
		return nil
	}
	return ov
}

// parseProblems reads "### Problem N: Title" blocks in document order.
// Blocks with an empty title or solution are skipped.
func parseProblems(section string) []types.Problem {
	var problems []types.Problem
	for _, b := range markdown.Blocks(section, 3) {
		m := problemPattern.FindStringSubmatch(b.Label)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[1])
		if title == "" || b.Body == "" {
			continue
		}
		problems = append(problems, types.Problem{Title: title, Solution: b.Body})
	}
	return problems
}
