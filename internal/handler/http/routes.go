// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBody caps request bodies; credentials are small.
const maxRequestBody = 256 << 10

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, middleware.RequestSize(maxRequestBody))

	// probes
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withContentDigest)

		r.Post("/api/credentials/encrypt", h.encrypt)
		r.Post("/api/credentials/decrypt", h.decrypt)
		r.Post("/api/digest", h.digest)
		r.Post("/api/digest/verify", h.verifyDigest)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
