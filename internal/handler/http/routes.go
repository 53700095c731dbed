// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json", "application/yaml", "text/plain"))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getVersion)
		r.Get("/notes", h.listNotes)
		r.Get("/notes/export", h.exportNotes)
	})

	return router
}
