// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/marquee/internal/query"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Recommender answers content-similarity requests.
type Recommender interface {
	Recommend(ctx context.Context, title string) ([]string, error)
	Similar(ctx context.Context, title string, k int) ([]recommend.Match, error)
	Len() int
	VocabularySize() int
	BuildDuration() time.Duration
	Config() recommend.Config
	CacheStats() (hits, misses int64, size int)
}

// Queries answers catalog lookups.
type Queries interface {
	FilmsByMonth(month string) (query.MonthCount, error)
	FilmsByDay(day string) (query.DayCount, error)
	ScoreByTitle(title string) (query.TitleScore, error)
	VotesByTitle(title string) (query.TitleVotes, error)
	Actor(name string) (query.ActorStats, error)
	Director(name string) (query.DirectorStats, error)
}

// Handler serves every API endpoint. Its dependencies are immutable after
// construction, so it is safe for concurrent use without locking.
type Handler struct {
	recommender Recommender
	queries     Queries
	startTime   time.Time
}

// NewHandler creates a Handler over a built index and query service.
// A nil *recommend.Index is treated as no recommender.
func NewHandler(recommender Recommender, queries Queries) *Handler {
	if idx, ok := recommender.(*recommend.Index); ok && idx == nil {
		recommender = nil
	}
	return &Handler{
		recommender: recommender,
		queries:     queries,
		startTime:   time.Now(),
	}
}

// indexReady reports whether a non-empty similarity index is loaded.
func (h *Handler) indexReady() bool {
	return h.recommender != nil && h.recommender.Len() > 0
}

// requireIndex writes 503 and returns false when no index is loaded.
func (h *Handler) requireIndex(w http.ResponseWriter, r *http.Request) bool {
	if h.indexReady() {
		return true
	}
	NewResponseWriter(w, r).Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Similarity index not loaded")
	return false
}
