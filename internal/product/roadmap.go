// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package product

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pdiddy/product-plan/internal/markdown"
	"github.com/pdiddy/product-plan/pkg/types"
)

// roadmapSectionPattern matches a level-3 label "N. Title".
var roadmapSectionPattern = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

// ParseRoadmap parses product-roadmap.md. Every "### N. Title" heading in
// the document becomes a Section; sections are stably sorted by N, so equal
// numbers keep their document order. It returns nil when no section is found.
func ParseRoadmap(text string) (roadmap *types.ProductRoadmap) {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	defer func() {
		if recover() != nil {
			roadmap = nil
		}
	}()

	var sections []types.Section
	for _, b := range markdown.Blocks(markdown.NormalizeEOL(text), 3) {
		m := roadmapSectionPattern.FindStringSubmatch(b.Label)
		if m == nil {
			continue
		}
		order, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		title := strings.TrimSpace(m[2])
		if title == "" {
			continue
		}
		sections = append(sections, types.Section{
			ID:          markdown.Slugify(title),
			Title:       title,
			Description: b.Body,
			Order:       order,
		})
	}

	if len(sections) == 0 {
		return nil
	}

	slices.SortStableFunc(sections, func(a, b types.Section) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return &types.ProductRoadmap{Sections: sections}
}

// FindSection returns the first section whose ID equals id.
func FindSection(r *types.ProductRoadmap, id string) (types.Section, bool) {
	if r == nil {
		return types.Section{}, false
	}
	for _, s := range r.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return types.Section{}, false
}

// OrderSectionIDs orders the section directories found on disk for export:
// roadmap sections present on disk in roadmap order, then the remaining
// directories sorted lexically. Duplicate roadmap IDs are listed once.
func OrderSectionIDs(r *types.ProductRoadmap, onDisk []string) []string {
	present := make(map[string]bool, len(onDisk))
	for _, id := range onDisk {
		present[id] = true
	}

	seen := make(map[string]bool)
	var ordered []string
	if r != nil {
		for _, s := range r.Sections {
			if present[s.ID] && !seen[s.ID] {
				seen[s.ID] = true
				ordered = append(ordered, s.ID)
			}
		}
	}

	var rest []string
	for _, id := range onDisk {
		if !seen[id] {
			seen[id] = true
			rest = append(rest, id)
		}
	}
	slices.Sort(rest)
	return append(ordered, rest...)
}
