// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package middleware provides HTTP middleware for request instrumentation.
//
//   - PrometheusMetrics: request counts, latency and in-flight gauge,
//     labelled by chi route pattern so path parameters such as movie titles
//     do not create new series
//   - AccessLog: one structured zerolog line per request carrying the
//     request and correlation IDs, with slow requests logged at warn level
//
// Both are chi-compatible (func(http.Handler) http.Handler).
package middleware
