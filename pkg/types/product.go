// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Problem pairs a customer problem with how the product solves it.
// Both fields are non-empty whenever a Problem exists.
type Problem struct {
	// Title is the text after "Problem N:" in the heading.
	Title string `json:"title" yaml:"title"`

	// Solution is the body under the problem heading.
	Solution string `json:"solution" yaml:"solution"`
}

// ProductOverview is the structured form of product-overview.md.
type ProductOverview struct {
	// Name is the first level-1 heading, or a fixed default.
	Name string `json:"name" yaml:"name"`

	// Description is the body of "## Description". May be empty.
	Description string `json:"description" yaml:"description"`

	// Problems are listed in document order.
	Problems []Problem `json:"problems" yaml:"problems"`

	// Features are the "- " bullets of "## Key Features".
	Features []string `json:"features" yaml:"features"`
}

// Section is one numbered entry of the product roadmap.
type Section struct {
	// ID is the slug of Title. Collisions are not resolved.
	ID string `json:"id" yaml:"id"`

	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`

	// Order is the number declared in the heading. It need not be unique
	// or contiguous.
	Order int `json:"order" yaml:"order"`
}

// ProductRoadmap is the structured form of product-roadmap.md.
type ProductRoadmap struct {
	// Sections are sorted ascending by Order; ties keep document order.
	Sections []Section `json:"sections" yaml:"sections"`
}

// SectionSpec is the structured form of a section's spec.md.
type SectionSpec struct {
	Title          string   `json:"title" yaml:"title"`
	Overview       string   `json:"overview" yaml:"overview"`
	UserFlows      []string `json:"user_flows" yaml:"user_flows"`
	UIRequirements []string `json:"ui_requirements" yaml:"ui_requirements"`
}

// SectionData bundles a section's raw and parsed spec.
type SectionData struct {
	ID     string       `json:"id" yaml:"id"`
	Spec   string       `json:"spec,omitempty" yaml:"spec,omitempty"`
	Parsed *SectionSpec `json:"parsed,omitempty" yaml:"parsed,omitempty"`
}

// Entity is one named type of the product data model.
type Entity struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// DataModel is the structured form of data-model/data-model.md.
type DataModel struct {
	Entities      []Entity `json:"entities" yaml:"entities"`
	Relationships []string `json:"relationships" yaml:"relationships"`
}

// ShellSpec is the structured form of shell/spec.md.
type ShellSpec struct {
	// Raw is the unparsed document.
	Raw             string   `json:"raw" yaml:"raw"`
	Overview        string   `json:"overview" yaml:"overview"`
	NavigationItems []string `json:"navigation_items" yaml:"navigation_items"`
	LayoutPattern   string   `json:"layout_pattern" yaml:"layout_pattern"`
}

// ShellInfo describes the application shell.
type ShellInfo struct {
	Spec          *ShellSpec `json:"spec" yaml:"spec"`
	HasComponents bool       `json:"has_components" yaml:"has_components"`
}

// TokenSet is an opaque design-token document, kept as decoded JSON.
type TokenSet map[string]any

// DesignSystem groups the design-token documents. Colors and Typography
// are the core sets; the rest exist only in comprehensive systems.
type DesignSystem struct {
	Colors     TokenSet `json:"colors" yaml:"colors"`
	Typography TokenSet `json:"typography" yaml:"typography"`
	Spacing    TokenSet `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Radius     TokenSet `json:"radius,omitempty" yaml:"radius,omitempty"`
	Elevations TokenSet `json:"elevations,omitempty" yaml:"elevations,omitempty"`

	// Comprehensive reports whether any set uses the extended format.
	Comprehensive bool `json:"comprehensive" yaml:"comprehensive"`
}

// ProductData is the aggregate of everything known about a product plan.
// Any field may be nil when its source is missing or unparseable.
type ProductData struct {
	Overview     *ProductOverview `json:"overview" yaml:"overview"`
	Roadmap      *ProductRoadmap  `json:"roadmap" yaml:"roadmap"`
	DataModel    *DataModel       `json:"data_model" yaml:"data_model"`
	DesignSystem *DesignSystem    `json:"design_system" yaml:"design_system"`
	Shell        *ShellInfo       `json:"shell" yaml:"shell"`
}
