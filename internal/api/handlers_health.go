// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"time"
)

// LivenessResponse is returned by the liveness probe.
type LivenessResponse struct {
	Status string  `json:"status"`
	Uptime float64 `json:"uptime_seconds"`
}

// ReadinessResponse reports the loaded catalog and similarity index.
type ReadinessResponse struct {
	Status          string      `json:"status"`
	Movies          int         `json:"movies"`
	VocabularyTerms int         `json:"vocabulary_terms"`
	IndexBuildMs    int64       `json:"index_build_ms"`
	RankingCache    CacheStatus `json:"ranking_cache"`
	Uptime          float64     `json:"uptime_seconds"`
	Timestamp       string      `json:"timestamp"`
}

// CacheStatus reports ranking cache usage.
type CacheStatus struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// HealthLive handles GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, r, LivenessResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles GET /api/v1/health/ready.
//
// The index is built before the server starts listening, so a handler that
// has one is ready. An empty index is reported as unavailable.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.requireIndex(w, r) {
		return
	}

	hits, misses, size := h.recommender.CacheStats()
	WriteSuccess(w, r, ReadinessResponse{
		Status:          "ready",
		Movies:          h.recommender.Len(),
		VocabularyTerms: h.recommender.VocabularySize(),
		IndexBuildMs:    h.recommender.BuildDuration().Milliseconds(),
		RankingCache:    CacheStatus{Hits: hits, Misses: misses, Size: size},
		Uptime:          time.Since(h.startTime).Seconds(),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}
