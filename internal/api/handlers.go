// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pdiddy/product-plan/internal/product"
)

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	data, err := s.loader.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("loading product plan")
		jsonError(w, "failed to load product plan", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	data, err := s.loader.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("loading product plan")
		jsonError(w, "failed to load product plan", http.StatusInternalServerError)
		return
	}
	if data.Overview == nil {
		jsonError(w, "product overview not defined", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, data.Overview)
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	data, err := s.loader.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("loading product plan")
		jsonError(w, "failed to load product plan", http.StatusInternalServerError)
		return
	}
	if data.Roadmap == nil {
		jsonError(w, "product roadmap not defined", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, data.Roadmap)
}

func (s *Server) handleRoadmapSection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	data, err := s.loader.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("loading product plan")
		jsonError(w, "failed to load product plan", http.StatusInternalServerError)
		return
	}
	sec, ok := product.FindSection(data.Roadmap, id)
	if !ok {
		jsonError(w, "section not found: "+id, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

// handleSections lists section directories in export order.
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	data, err := s.loader.Load()
	if err != nil {
		s.log.Error().Err(err).Msg("loading product plan")
		jsonError(w, "failed to load product plan", http.StatusInternalServerError)
		return
	}
	ids, err := s.loader.SectionIDs()
	if err != nil {
		s.log.Error().Err(err).Msg("listing sections")
		jsonError(w, "failed to list sections", http.StatusInternalServerError)
		return
	}
	ordered := product.OrderSectionIDs(data.Roadmap, ids)
	if ordered == nil {
		ordered = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sections": ordered})
}

func (s *Server) handleSectionSpec(w http.ResponseWriter, r *http.Request) {
	sec, err := s.loader.LoadSection(chi.URLParam(r, "id"))
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if sec.Parsed == nil {
		jsonError(w, "section spec not defined: "+sec.ID, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sec)
}
