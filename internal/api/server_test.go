// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/product-plan/internal/product"
	"github.com/pdiddy/product-plan/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestServer(t *testing.T, files map[string]string) *Server {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeFile(t, dir, name, content)
	}
	loader := product.NewLoader(types.PlanConfig{ProductDir: dir}, zerolog.Nop())
	return NewServer(loader, zerolog.Nop())
}

func get(t *testing.T, srv http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

var planFiles = map[string]string{
	product.OverviewDoc:       "# Brewly\n## Key Features\n- Fast checkout\n",
	product.RoadmapDoc:        "### 2. Beta\nb\n### 1. Alpha\na\n### 2. Gamma\ng\n",
	"sections/alpha/spec.md":  "# Alpha\n## Overview\nFirst section.\n",
	"sections/zeta/data.json": "{}",
}

func TestHealth(t *testing.T) {
	rec := get(t, newTestServer(t, nil), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestOverviewAndRoadmap(t *testing.T) {
	srv := newTestServer(t, planFiles)

	rec := get(t, srv, "/api/overview")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"Brewly","description":"","problems":[],"features":["Fast checkout"]}`, rec.Body.String())

	rec = get(t, srv, "/api/roadmap")
	require.Equal(t, http.StatusOK, rec.Code)
	var roadmap types.ProductRoadmap
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roadmap))
	require.Len(t, roadmap.Sections, 3)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, []string{
		roadmap.Sections[0].Title, roadmap.Sections[1].Title, roadmap.Sections[2].Title,
	})
}

func TestMissingDocumentsAre404(t *testing.T) {
	srv := newTestServer(t, nil)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/api/overview").Code)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/api/roadmap").Code)
	assert.Equal(t, http.StatusNotFound, get(t, srv, "/api/roadmap/sections/alpha").Code)

	rec := get(t, srv, "/api/product")
	require.Equal(t, http.StatusOK, rec.Code)
	var data types.ProductData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Nil(t, data.Overview)
	assert.Nil(t, data.Roadmap)
}

func TestRoadmapSection(t *testing.T) {
	srv := newTestServer(t, planFiles)
	rec := get(t, srv, "/api/roadmap/sections/gamma")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"gamma","title":"Gamma","description":"g","order":2}`, rec.Body.String())
}

func TestSections(t *testing.T) {
	srv := newTestServer(t, planFiles)
	rec := get(t, srv, "/api/sections")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sections":["alpha","zeta"]}`, rec.Body.String())

	rec = get(t, srv, "/api/sections/alpha/spec")
	require.Equal(t, http.StatusOK, rec.Code)
	var sec types.SectionData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sec))
	require.NotNil(t, sec.Parsed)
	assert.Equal(t, "First section.", sec.Parsed.Overview)

	assert.Equal(t, http.StatusNotFound, get(t, srv, "/api/sections/zeta/spec").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, srv, "/api/sections/../spec").Code)
}
