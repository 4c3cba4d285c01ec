package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router builds the chi router with middleware and all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(metricsMiddleware)

	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/questions", s.handleCreateQuestion)
		r.Get("/questions/{id}", s.handleGetQuestion)
		r.Post("/questions/{id}/attempts", s.handleSubmitAttempt)
		r.Get("/questions/{id}/hint", s.handleHint)
		r.Post("/solve", s.handleSolve)
	})

	return r
}
