// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package api provides the HTTP interface for Marquee using the Chi router.
//
// # Endpoints
//
// Health:
//   - GET /api/v1/health/live: liveness probe
//   - GET /api/v1/health/ready: readiness probe with catalog and index statistics
//
// Catalog queries:
//   - GET /api/v1/movies/months/{month}: releases in a Spanish month (enero..diciembre)
//   - GET /api/v1/movies/days/{day}: releases on a Spanish weekday (lunes..domingo)
//   - GET /api/v1/movies/titles/{title}/score: release year and popularity
//   - GET /api/v1/movies/titles/{title}/votes: vote count and average
//   - GET /api/v1/people/actors/{name}: film count and return statistics
//   - GET /api/v1/people/directors/{name}: total return and films
//
// Recommendations:
//   - GET /api/v1/recommendations/{title}: the five most similar titles
//   - GET /api/v1/recommendations/{title}/similar?k=N: scored matches
//
// Operations:
//   - GET /metrics: Prometheus metrics
//
// # Response Format
//
// Every JSON endpoint returns the same envelope:
//
//	{
//	  "success": true,
//	  "data": {...},
//	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 0}
//	}
//
// Errors set success to false and carry {code, message, details, request_id}.
// Unknown titles and people are 404 NOT_FOUND; invalid month or day names are
// 400; titles below the vote threshold are 422 INSUFFICIENT_VOTES.
//
// # Middleware
//
// Applied to every route in order: request ID with logging context, real IP,
// panic recovery, CORS, OpenTelemetry spans, access log. API routes add rate
// limiting and Prometheus instrumentation.
//
// # Tracing
//
// Server spans are sent to ChiMiddlewareConfig.TracerProvider. When it is nil
// they go to the global OpenTelemetry provider, which is a no-op until the
// host installs one with otel.SetTracerProvider. Marquee ships no exporter, so
// out of the box no spans are recorded.
package api
