// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Problems & Solutions", "problems-and-solutions"},
		{"  Multiple   Spaces!! ", "multiple-spaces"},
		{"Core Loop", "core-loop"},
		{"Register & Sales", "register-and-sales"},
		{"R&D", "r-d"},
		{"Settings &Configuration", "settings-configuration"},
		{"v2.0 -- Launch", "v2-0-launch"},
		{"Café Menü", "caf-men"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, Slugify("Daily Expenses"), Slugify("Daily Expenses"))
	assert.Equal(t, Slugify("Daily Expenses"), Slugify("daily  expenses"))
}
