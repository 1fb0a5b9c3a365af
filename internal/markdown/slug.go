// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"regexp"
	"strings"
)

// nonSlugRun matches a maximal run of characters not allowed in a slug.
var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a lowercase, anchor-safe identifier from a title.
// " & " becomes "-and-" before other punctuation is collapsed, so
// "Problems & Solutions" yields "problems-and-solutions".
// Slugify never checks for collisions.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = strings.ReplaceAll(s, " & ", "-and-")
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
