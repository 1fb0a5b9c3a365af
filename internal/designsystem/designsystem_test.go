// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package designsystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/product-plan/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
		check func(t *testing.T, ds *types.DesignSystem)
	}{
		{
			name:  "empty directory",
			files: nil,
			check: func(t *testing.T, ds *types.DesignSystem) {
				assert.Nil(t, ds)
			},
		},
		{
			name: "simple colors trimmed to known keys",
			files: map[string]string{
				"colors.json": `{"primary":"lime","secondary":"teal","neutral":"stone","extra":"x"}`,
			},
			check: func(t *testing.T, ds *types.DesignSystem) {
				require.NotNil(t, ds)
				assert.Equal(t, types.TokenSet{"primary": "lime", "secondary": "teal", "neutral": "stone"}, ds.Colors)
				assert.Nil(t, ds.Typography)
				assert.False(t, ds.Comprehensive)
			},
		},
		{
			name: "simple colors missing a key are dropped",
			files: map[string]string{
				"colors.json":     `{"primary":"lime","secondary":"teal"}`,
				"typography.json": `{"heading":"DM Sans","body":"DM Sans"}`,
			},
			check: func(t *testing.T, ds *types.DesignSystem) {
				require.NotNil(t, ds)
				assert.Nil(t, ds.Colors)
				assert.Equal(t, DefaultMonoFont, ds.Typography["mono"])
			},
		},
		{
			name: "comprehensive colors kept whole",
			files: map[string]string{
				"colors.json": `{"version":"1.0.0","system":"compost","semantic":{"onLayer":{"secondary":"#b5b5b7"}},"primitives":{},"gradients":{}}`,
			},
			check: func(t *testing.T, ds *types.DesignSystem) {
				require.NotNil(t, ds)
				assert.Equal(t, "compost", ds.Colors["system"])
				assert.True(t, ds.Comprehensive)
			},
		},
		{
			name: "extended sets mark the system comprehensive",
			files: map[string]string{
				"typography.json": `{"heading":"Inter","body":"Inter","mono":"JetBrains Mono"}`,
				"spacing.json":    `{"version":"1","system":"six","scale":{}}`,
			},
			check: func(t *testing.T, ds *types.DesignSystem) {
				require.NotNil(t, ds)
				assert.Equal(t, "JetBrains Mono", ds.Typography["mono"])
				assert.NotNil(t, ds.Spacing)
				assert.True(t, ds.Comprehensive)
			},
		},
		{
			name: "spacing alone is not a design system",
			files: map[string]string{
				"spacing.json": `{"scale":{}}`,
			},
			check: func(t *testing.T, ds *types.DesignSystem) {
				assert.Nil(t, ds)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tt.files {
				writeFile(t, dir, name, content)
			}
			ds, err := Load(dir)
			require.NoError(t, err)
			tt.check(t, ds)
		})
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "colors.json", "{not json")
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing colors.json")
}

func TestHas(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Has(dir))
	writeFile(t, dir, "typography.json", `{}`)
	assert.True(t, Has(dir))
}
