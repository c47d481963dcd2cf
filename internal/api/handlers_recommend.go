// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/recommend"
)

// RecommendationsResponse lists recommended titles, best match first.
type RecommendationsResponse struct {
	Title           string   `json:"title"`
	Recommendations []string `json:"recommendations"`
}

// SimilarResponse lists scored matches, best match first.
type SimilarResponse struct {
	Title   string            `json:"title"`
	K       int               `json:"k"`
	Matches []recommend.Match `json:"matches"`
}

// Recommendations handles GET /api/v1/recommendations/{title}.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	if !h.requireIndex(w, r) {
		metrics.RecordRecommendation(metrics.OutcomeError)
		return
	}
	req := TitleRequest{Title: pathParam(r, "title")}
	if !validateRequest(w, r, &req) {
		metrics.RecordRecommendation(metrics.OutcomeInvalid)
		return
	}

	titles, err := h.recommender.Recommend(r.Context(), req.Title)
	if err != nil {
		metrics.RecordRecommendation(writeDomainError(w, r, err))
		return
	}
	if titles == nil {
		titles = []string{}
	}

	metrics.RecordRecommendation(metrics.OutcomeOK)
	WriteSuccess(w, r, RecommendationsResponse{
		Title:           req.Title,
		Recommendations: titles,
	})
}

// SimilarTitles handles GET /api/v1/recommendations/{title}/similar?k=N.
// k defaults to the configured top-k and is capped at the configured maximum.
func (h *Handler) SimilarTitles(w http.ResponseWriter, r *http.Request) {
	if !h.requireIndex(w, r) {
		metrics.RecordRecommendation(metrics.OutcomeError)
		return
	}
	k, ok := parseK(r, h.recommender.Config().TopK)
	if !ok {
		metrics.RecordRecommendation(metrics.OutcomeInvalid)
		NewResponseWriter(w, r).BadRequest("k must be an integer")
		return
	}

	req := SimilarRequest{Title: pathParam(r, "title"), K: k}
	if !validateRequest(w, r, &req) {
		metrics.RecordRecommendation(metrics.OutcomeInvalid)
		return
	}

	matches, err := h.recommender.Similar(r.Context(), req.Title, req.K)
	if err != nil {
		metrics.RecordRecommendation(writeDomainError(w, r, err))
		return
	}
	if matches == nil {
		matches = []recommend.Match{}
	}

	metrics.RecordRecommendation(metrics.OutcomeOK)
	WriteSuccess(w, r, SimilarResponse{
		Title:   req.Title,
		K:       len(matches),
		Matches: matches,
	})
}
