// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api serves a parsed product plan over read-only HTTP endpoints.
// Each request re-reads the documents, so edits show up without a restart.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/pdiddy/product-plan/internal/product"
)

// Server is the HTTP server for product-plan.
type Server struct {
	router chi.Router
	loader *product.Loader
	log    zerolog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(loader *product.Loader, log zerolog.Logger) *Server {
	s := &Server{loader: loader, log: log}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/product", s.handleProduct)
		r.Get("/overview", s.handleOverview)
		r.Get("/roadmap", s.handleRoadmap)
		r.Get("/roadmap/sections/{id}", s.handleRoadmapSection)
		r.Get("/sections", s.handleSections)
		r.Get("/sections/{id}/spec", s.handleSectionSpec)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
