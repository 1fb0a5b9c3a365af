// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/product-plan/pkg/types"
)

const fullOverview = `# Brewly

## Description

A point of sale for coffee carts.
Works offline.

## Problems & Solutions

### Problem 2: Slow lines

Tap-to-pay and saved orders keep the queue moving.

### Problem 1: Lost receipts

Receipts are emailed and stored per order.

## Key Features

- Fast checkout
- Offline mode
not a bullet
-also not a bullet

# Appendix

- Not a feature
`

func TestParseOverviewFull(t *testing.T) {
	got := ParseOverview(fullOverview)
	require.NotNil(t, got)

	want := &types.ProductOverview{
		Name:        "Brewly",
		Description: "A point of sale for coffee carts.\nWorks offline.",
		Problems: []types.Problem{
			{Title: "Slow lines", Solution: "Tap-to-pay and saved orders keep the queue moving."},
			{Title: "Lost receipts", Solution: "Receipts are emailed and stored per order."},
		},
		Features: []string{"Fast checkout", "Offline mode"},
	}
	assert.Equal(t, want, got)
}

func TestParseOverviewDegradesToNil(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t\n"},
		{"no headings", "Just some prose about a product.\n- with a bullet"},
		{"title and blank description", "# Brewly\n\n## Description\n   \n\t\n"},
		{"title only", "# Brewly\n"},
		{"sections with nothing usable", "# Brewly\n## Problems & Solutions\n### Not a problem\ntext\n## Key Features\nprose only\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, ParseOverview(tt.text))
		})
	}
}

func TestParseOverviewFeaturesOnly(t *testing.T) {
	text := "# Brewly\n\n## Description\n\n## Key Features\n- Fast checkout\n"
	got := ParseOverview(text)
	require.NotNil(t, got)
	assert.Equal(t, &types.ProductOverview{
		Name:        "Brewly",
		Description: "",
		Problems:    []types.Problem{},
		Features:    []string{"Fast checkout"},
	}, got)
}

func TestParseOverviewDefaultName(t *testing.T) {
	got := ParseOverview("## Description\nA register app.\n")
	require.NotNil(t, got)
	assert.Equal(t, DefaultProductName, got.Name)
	assert.Equal(t, "A register app.", got.Description)
}

func TestParseOverviewProblems(t *testing.T) {
	text := `# Brewly
## Problems & Solutions
### Problem 3: Third first
Solved by ordering.
#### Detail
kept in the solution
### Problem 1:
No title, skipped.
### Problem 2: No solution
### Problem one: Not numbered
ignored
### Problem 4:Tight colon
Still parsed.
## Key Features
`
	got := ParseOverview(text)
	require.NotNil(t, got)
	assert.Equal(t, []types.Problem{
		{Title: "Third first", Solution: "Solved by ordering.\n#### Detail\nkept in the solution"},
		{Title: "Tight colon", Solution: "Still parsed."},
	}, got.Problems)
}

func TestParseOverviewCRLF(t *testing.T) {
	unix := ParseOverview(fullOverview)
	windows := ParseOverview(crlf(fullOverview))
	assert.Equal(t, unix, windows)
}

func TestParseOverviewIdempotent(t *testing.T) {
	assert.Equal(t, ParseOverview(fullOverview), ParseOverview(fullOverview))
}

func crlf(s string) string {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, '\r')
		}
		out = append(out, s[i])
	}
	return string(out)
}
