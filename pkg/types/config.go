// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how records are printed.
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// PlanConfig locates the documents of a product plan.
type PlanConfig struct {
	// ProductDir holds product-overview.md, product-roadmap.md, sections/,
	// shell/, data-model/ and design-system/ (default "product").
	ProductDir string `json:"product_dir" yaml:"product_dir"`

	// ShellComponentsDir is checked for shell component sources
	// (default "src/shell/components").
	ShellComponentsDir string `json:"shell_components_dir" yaml:"shell_components_dir"`
}

// CatalogConfig holds settings for the SQLite catalog.
type CatalogConfig struct {
	// Dir contains catalog.db and the export files (default "catalog").
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the default search limit (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// ServeConfig holds settings for the read-only HTTP surface.
type ServeConfig struct {
	// Addr is the listen address (default ":8090").
	Addr string `json:"addr" yaml:"addr"`
}

// Config groups all settings read from product-plan.yaml.
type Config struct {
	Plan    PlanConfig    `json:"plan" yaml:"plan"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
	Serve   ServeConfig   `json:"serve" yaml:"serve"`
	Format  OutputFormat  `json:"format" yaml:"format"`
}
