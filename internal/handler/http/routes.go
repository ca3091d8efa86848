package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/ready", h.ready)
		r.Handle("/metrics", promhttp.Handler())
		r.Post("/login", h.login)
	})

	// protected routes: auth first, then rate limiting, in that order
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.rateLimit)
		r.Post("/orders", h.createOrder)
	})

	return router
}
