// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// Export is the document written by ExportYAML and ExportJSON.
type Export struct {
	Product string  `json:"product" yaml:"product"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

const exportLimit = 100000

// ExportYAML writes the catalog, filtered by opts, to dir/export.yaml and
// returns the path written.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	doc, err := s.export(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dir, "export.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the catalog, filtered by opts, to dir/export.json and
// returns the path written.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	doc, err := s.export(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dir, "export.json")
	return path, os.WriteFile(path, data, 0o644)
}

func (s *Store) export(ctx context.Context, opts QueryOptions) (*Export, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = exportLimit
	}
	entries, err := s.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	name, err := s.ProductName(ctx)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return &Export{Product: name, Entries: entries}, nil
}
