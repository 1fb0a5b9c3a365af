// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package designsystem loads design-token JSON files. Token documents are
// carried as opaque maps; the package only decides which format a file uses
// and whether a simple file has the keys it needs.
//
// Simple colors:      {"primary": ..., "secondary": ..., "neutral": ...}
// Simple typography:  {"heading": ..., "body": ..., "mono": ...}
// Comprehensive files carry additional top-level groups (see isComprehensive*).
package designsystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pdiddy/product-plan/pkg/types"
)

const (
	colorsFile     = "colors.json"
	typographyFile = "typography.json"
	spacingFile    = "spacing.json"
	radiusFile     = "radius.json"
	elevationsFile = "elevations.json"
)

// DefaultMonoFont fills a simple typography file that omits "mono".
const DefaultMonoFont = "IBM Plex Mono"

// Load reads the token files in dir. It returns nil when neither colors nor
// typography is usable. A missing file is not an error; malformed JSON is.
func Load(dir string) (*types.DesignSystem, error) {
	colors, err := readTokens(dir, colorsFile)
	if err != nil {
		return nil, err
	}
	typography, err := readTokens(dir, typographyFile)
	if err != nil {
		return nil, err
	}
	spacing, err := readTokens(dir, spacingFile)
	if err != nil {
		return nil, err
	}
	radius, err := readTokens(dir, radiusFile)
	if err != nil {
		return nil, err
	}
	elevations, err := readTokens(dir, elevationsFile)
	if err != nil {
		return nil, err
	}

	colors = normalizeColors(colors)
	typography = normalizeTypography(typography)
	if colors == nil && typography == nil {
		return nil, nil
	}

	comprehensive := isComprehensiveColors(colors) || isComprehensiveTypography(typography) ||
		spacing != nil || radius != nil || elevations != nil

	return &types.DesignSystem{
		Colors:        colors,
		Typography:    typography,
		Spacing:       spacing,
		Radius:        radius,
		Elevations:    elevations,
		Comprehensive: comprehensive,
	}, nil
}

// Has reports whether dir defines colors or typography.
func Has(dir string) bool {
	for _, name := range []string{colorsFile, typographyFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

func readTokens(dir, name string) (types.TokenSet, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	var tokens types.TokenSet
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	return tokens, nil
}

func isComprehensiveColors(t types.TokenSet) bool {
	return hasKeys(t, "semantic", "primitives", "gradients")
}

func isComprehensiveTypography(t types.TokenSet) bool {
	return hasKeys(t, "typefaces", "styles", "sizes")
}

// normalizeColors keeps comprehensive files as-is and trims simple files
// to their three keys. A simple file missing a key is unusable.
func normalizeColors(t types.TokenSet) types.TokenSet {
	if t == nil || isComprehensiveColors(t) {
		return t
	}
	if !hasValues(t, "primary", "secondary", "neutral") {
		return nil
	}
	return types.TokenSet{
		"primary":   t["primary"],
		"secondary": t["secondary"],
		"neutral":   t["neutral"],
	}
}

func normalizeTypography(t types.TokenSet) types.TokenSet {
	if t == nil || isComprehensiveTypography(t) {
		return t
	}
	if !hasValues(t, "heading", "body") {
		return nil
	}
	mono := t["mono"]
	if !truthy(mono) {
		mono = DefaultMonoFont
	}
	return types.TokenSet{
		"heading": t["heading"],
		"body":    t["body"],
		"mono":    mono,
	}
}

func hasKeys(t types.TokenSet, keys ...string) bool {
	if t == nil {
		return false
	}
	for _, k := range keys {
		if _, ok := t[k]; !ok {
			return false
		}
	}
	return true
}

func hasValues(t types.TokenSet, keys ...string) bool {
	for _, k := range keys {
		if !truthy(t[k]) {
			return false
		}
	}
	return true
}

// truthy treats nil, false and "" as missing.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	default:
		return true
	}
}
