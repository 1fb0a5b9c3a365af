// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package product

import (
	"strings"

	"github.com/pdiddy/product-plan/internal/markdown"
	"github.com/pdiddy/product-plan/pkg/types"
)

// DefaultSectionTitle is used when a section spec has no level-1 heading.
const DefaultSectionTitle = "Section Specification"

// ParseSectionSpec parses a section's spec.md:
//
//	# Title
//	## Overview
//	## User Flows        (bullets)
//	## UI Requirements   (bullets)
//
// Missing parts are left empty. It returns nil only for blank input.
func ParseSectionSpec(text string) (spec *types.SectionSpec) {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	defer func() {
		if recover() != nil {
			spec = nil
		}
	}()

	title, ok := markdown.FirstHeading(text, 1)
	if !ok {
		title = DefaultSectionTitle
	}
	return &types.SectionSpec{
		Title:          title,
		Overview:       markdown.ExtractSection(text, "Overview"),
		UserFlows:      nonNil(markdown.Bullets(markdown.ExtractSection(text, "User Flows"))),
		UIRequirements: nonNil(markdown.Bullets(markdown.ExtractSection(text, "UI Requirements"))),
	}
}

// ParseShellSpec parses shell/spec.md. The raw text is kept alongside the
// overview, the "Navigation Structure" bullets and the "Layout Pattern"
// text. It returns nil only for blank input.
func ParseShellSpec(text string) (spec *types.ShellSpec) {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	defer func() {
		if recover() != nil {
			spec = nil
		}
	}()

	return &types.ShellSpec{
		Raw:             text,
		Overview:        markdown.ExtractSection(text, "Overview"),
		NavigationItems: nonNil(markdown.Bullets(markdown.ExtractSection(text, "Navigation Structure"))),
		LayoutPattern:   markdown.ExtractSection(text, "Layout Pattern"),
	}
}

// ParseDataModel parses data-model/data-model.md. Each level-3 heading under
// "## Entities" is an entity described by its body; "## Relationships" holds
// bullets. It returns nil when neither entities nor relationships are found.
func ParseDataModel(text string) (model *types.DataModel) {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	defer func() {
		if recover() != nil {
			model = nil
		}
	}()

	var entities []types.Entity
	for _, b := range markdown.Blocks(markdown.ExtractSection(text, "Entities"), 3) {
		entities = append(entities, types.Entity{Name: b.Label, Description: b.Body})
	}
	relationships := markdown.Bullets(markdown.ExtractSection(text, "Relationships"))

	if len(entities) == 0 && len(relationships) == 0 {
		return nil
	}
	return &types.DataModel{
		Entities:      nonNil(entities),
		Relationships: nonNil(relationships),
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
