// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/middleware"
)

// ServiceName names the server in traces.
const ServiceName = "marquee"

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, config ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(config),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes in order
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered
	r.Use(router.chiMiddleware.Tracing(ServiceName))
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		NewResponseWriter(w, req).MethodNotAllowed()
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		// Probes are not rate limited.
		r.Route("/health", func(r chi.Router) {
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Route("/movies", func(r chi.Router) {
				r.Get("/months/{month}", router.handler.FilmsByMonth)
				r.Get("/days/{day}", router.handler.FilmsByDay)
				r.Get("/titles/{title}/score", router.handler.ScoreByTitle)
				r.Get("/titles/{title}/votes", router.handler.VotesByTitle)
			})

			r.Route("/people", func(r chi.Router) {
				r.Get("/actors/{name}", router.handler.Actor)
				r.Get("/directors/{name}", router.handler.Director)
			})

			r.Route("/recommendations", func(r chi.Router) {
				r.Get("/{title}", router.handler.Recommendations)
				r.Get("/{title}/similar", router.handler.SimilarTitles)
			})
		})
	})

	return r
}
