// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/product-plan/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.CatalogConfig{Dir: t.TempDir(), MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleData() types.ProductData {
	return types.ProductData{
		Overview: &types.ProductOverview{
			Name:        "Brewly",
			Description: "A point of sale for coffee carts.",
			Problems: []types.Problem{
				{Title: "Slow lines", Solution: "Tap-to-pay keeps the queue moving."},
				{Title: "Lost receipts", Solution: "Receipts are emailed."},
			},
			Features: []string{"Fast checkout", "Offline mode"},
		},
		Roadmap: &types.ProductRoadmap{Sections: []types.Section{
			{ID: "register-and-sales", Title: "Register & Sales", Description: "Ring up orders and take payments.", Order: 1},
			{ID: "daily-expenses", Title: "Daily Expenses", Description: "Track spend during a shift.", Order: 2},
		}},
	}
}

func TestIngest(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	var out bytes.Buffer
	summary, err := store.Ingest(ctx, sampleData(), &out)
	require.NoError(t, err)
	assert.Equal(t, IngestSummary{Sections: 2, Problems: 2, Features: 2}, summary)
	assert.Equal(t, 6, summary.Total())
	assert.Contains(t, out.String(), "sections: 2, problems: 2, features: 2")

	name, err := store.ProductName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Brewly", name)
}

func TestIngestReplacesPreviousContents(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	_, err := store.Ingest(ctx, sampleData(), &bytes.Buffer{})
	require.NoError(t, err)

	data := types.ProductData{Roadmap: &types.ProductRoadmap{Sections: []types.Section{
		{ID: "core-loop", Title: "Core Loop", Description: "Handles the primary register flow.", Order: 1},
	}}}
	_, err = store.Ingest(ctx, data, &bytes.Buffer{})
	require.NoError(t, err)

	entries, err := store.Search(ctx, QueryOptions{Kind: KindSection})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "core-loop", entries[0].Ref)

	name, err := store.ProductName(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestIngestNilRecords(t *testing.T) {
	store := testStore(t)
	summary, err := store.Ingest(context.Background(), types.ProductData{}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Zero(t, summary.Total())
}

func TestSearchStructured(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	_, err := store.Ingest(ctx, sampleData(), &bytes.Buffer{})
	require.NoError(t, err)

	entries, err := store.Search(ctx, QueryOptions{Kind: KindSection})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{
		Kind:     KindSection,
		Ref:      "register-and-sales",
		Title:    "Register & Sales",
		Body:     "Ring up orders and take payments.",
		Position: 0,
		Order:    1,
	}, entries[0])
	assert.Equal(t, "daily-expenses", entries[1].Ref)

	all, err := store.Search(ctx, QueryOptions{MaxResults: 100})
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, KindDescription, all[0].Kind)
	assert.Equal(t, KindProblem, all[1].Kind)
	assert.Equal(t, KindFeature, all[3].Kind)
	assert.Equal(t, KindSection, all[6].Kind)

	limited, err := store.Search(ctx, QueryOptions{MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSearchFullText(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	_, err := store.Ingest(ctx, sampleData(), &bytes.Buffer{})
	require.NoError(t, err)

	entries, err := store.Search(ctx, QueryOptions{Query: "payments"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "register-and-sales", entries[0].Ref)

	entries, err = store.Search(ctx, QueryOptions{Query: "receipts", Kind: KindProblem})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Lost receipts", entries[0].Title)

	entries, err = store.Search(ctx, QueryOptions{Query: "nonexistentterm"})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestQueryOptionsIsEmpty(t *testing.T) {
	assert.True(t, QueryOptions{}.IsEmpty())
	assert.True(t, QueryOptions{MaxResults: 5}.IsEmpty())
	assert.False(t, QueryOptions{Kind: KindFeature}.IsEmpty())
	assert.False(t, QueryOptions{Query: "x"}.IsEmpty())
}

func TestExport(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()
	_, err := store.Ingest(ctx, sampleData(), &bytes.Buffer{})
	require.NoError(t, err)

	yamlPath, err := store.ExportYAML(ctx, QueryOptions{})
	require.NoError(t, err)
	assert.Equal(t, "export.yaml", filepath.Base(yamlPath))

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML Export
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, "Brewly", fromYAML.Product)
	assert.Len(t, fromYAML.Entries, 7)

	jsonPath, err := store.ExportJSON(ctx, QueryOptions{Kind: KindFeature})
	require.NoError(t, err)
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON Export
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	require.Len(t, fromJSON.Entries, 2)
	assert.Equal(t, "Fast checkout", fromJSON.Entries[0].Title)
}

func TestReopenStore(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(types.CatalogConfig{Dir: dir})
	require.NoError(t, err)
	_, err = store.Ingest(ctx, sampleData(), &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewStore(types.CatalogConfig{Dir: dir})
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Search(ctx, QueryOptions{Query: "checkout"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KindFeature, entries[0].Kind)
}
