// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values for request counters.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Catalog Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogLoadDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_load_duration_seconds",
			Help: "Time spent loading the catalog at startup",
		},
	)

	// Similarity Index Metrics
	VocabularyTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_vocabulary_terms",
			Help: "Number of distinct terms in the TF-IDF vocabulary",
		},
	)

	SimilarityMatrixBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_similarity_matrix_bytes",
			Help: "Approximate memory held by the packed similarity matrix",
		},
	)

	IndexBuildDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_index_build_duration_seconds",
			Help: "Time spent vectorizing the catalog and computing similarities",
		},
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation lookups by outcome",
		},
		[]string{"outcome"},
	)

	// Query Metrics
	QueryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_requests_total",
			Help: "Total number of catalog queries by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordCatalogLoaded records catalog size and load time.
func RecordCatalogLoaded(movies int, duration time.Duration) {
	CatalogMovies.Set(float64(movies))
	CatalogLoadDuration.Set(duration.Seconds())
}

// RecordIndexBuilt records similarity index statistics. The matrix size is
// derived from the packed float32 triangle.
func RecordIndexBuilt(entries, vocabulary int, duration time.Duration) {
	n := float64(entries)
	VocabularyTerms.Set(float64(vocabulary))
	SimilarityMatrixBytes.Set(n * (n + 1) / 2 * 4)
	IndexBuildDuration.Set(duration.Seconds())
}

// RecordRecommendation counts a recommendation lookup.
func RecordRecommendation(outcome string) {
	RecommendRequests.WithLabelValues(outcome).Inc()
}

// RecordQuery counts a catalog query.
func RecordQuery(operation, outcome string) {
	QueryRequests.WithLabelValues(operation, outcome).Inc()
}
