// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/query"
	"github.com/tomtom215/marquee/internal/recommend"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// testMovies is a small catalog. Release dates:
// Toy Story 1995-10-30 (lunes), Toy Story 2 1999-10-30 (sábado),
// Heat 1995-12-15 (viernes), Forrest Gump 1994-09-14 (miércoles),
// Collateral 2004-08-06 (viernes), Face/Off 1997-06-27 (viernes).
func testMovies() []catalog.Movie {
	return []catalog.Movie{
		{
			Title: "Toy Story", ReleaseDate: date("1995-10-30"), Popularity: 21.9,
			VoteCount: 5415, VoteAverage: 7.7, Budget: 30e6, Revenue: 373.6e6,
			Genres: []string{"Animation", "Comedy"}, Overview: "Toys come to life when a cowboy meets a space ranger",
			Actors: []string{"Tom Hanks", "Tim Allen"}, Directors: []string{"John Lasseter"},
		},
		{
			Title: "Toy Story 2", ReleaseDate: date("1999-10-30"), Popularity: 17.5,
			VoteCount: 3914, VoteAverage: 7.3, Budget: 90e6, Revenue: 497.4e6,
			Genres: []string{"Animation", "Comedy"}, Overview: "Toys come to life when a cowboy is stolen by a collector",
			Actors: []string{"Tom Hanks", "Tim Allen"}, Directors: []string{"John Lasseter"},
		},
		{
			Title: "Heat", ReleaseDate: date("1995-12-15"), Popularity: 17.9,
			VoteCount: 1886, VoteAverage: 7.7, Budget: 60e6, Revenue: 187.4e6,
			Genres: []string{"Crime", "Thriller"}, Overview: "A detective hunts a professional thief after a heist in Los Angeles",
			Actors: []string{"Al Pacino", "Robert De Niro"}, Directors: []string{"Michael Mann"},
		},
		{
			Title: "Forrest Gump", ReleaseDate: date("1994-09-14"), Popularity: 48.3,
			VoteCount: 8147, VoteAverage: 8.2, Budget: 55e6, Revenue: 677.9e6,
			Genres: []string{"Drama", "Romance"}, Overview: "The life story of a simple man from Alabama",
			Actors: []string{"Tom Hanks", "Robin Wright"}, Directors: []string{"Robert Zemeckis"},
		},
		{
			Title: "Collateral", ReleaseDate: date("2004-08-06"), Popularity: 13.1,
			VoteCount: 2780, VoteAverage: 7.2, Budget: 65e6, Revenue: 217.8e6,
			Genres: []string{"Crime", "Thriller"}, Overview: "A taxi driver in Los Angeles is taken hostage by a hitman",
			Actors: []string{"Tom Cruise", "Jamie Foxx"}, Directors: []string{"Michael Mann"},
		},
		{
			Title: "Face/Off", ReleaseDate: date("1997-06-27"), Popularity: 10.2,
			VoteCount: 2186, VoteAverage: 6.8, Budget: 80e6, Revenue: 245.7e6,
			Genres: []string{"Action", "Crime"}, Overview: "An agent and a terrorist swap faces",
			Actors: []string{"John Travolta", "Nicolas Cage"}, Directors: []string{"John Woo"},
		},
	}
}

// newTestHandler builds a Handler over testMovies with real services.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	store, err := catalog.NewStore(testMovies())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	docs := make([]recommend.Document, store.Len())
	for i, m := range store.Movies() {
		docs[i] = recommend.Document{Title: m.Title, Text: m.CombinedText}
	}
	index, err := recommend.Build(context.Background(), docs, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	return NewHandler(index, query.New(store, query.DefaultConfig()))
}

// newTestServer returns the full router with rate limiting disabled.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(newTestHandler(t), cfg).Setup()
}

// envelope decodes the response envelope with a typed payload.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func do[T any](t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, envelope[T]) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var body envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("GET %s: decode body %q: %v", path, w.Body.String(), err)
	}
	return w, body
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	w, body := do[LivenessResponse](t, newTestServer(t), "/api/v1/health/live")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body.Data.Status != "alive" {
		t.Errorf("status = %q, want alive", body.Data.Status)
	}
	if body.Data.Uptime < 0 {
		t.Errorf("uptime = %v, want >= 0", body.Data.Uptime)
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	w, body := do[ReadinessResponse](t, newTestServer(t), "/api/v1/health/ready")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body.Data.Status != "ready" {
		t.Errorf("status = %q, want ready", body.Data.Status)
	}
	if body.Data.Movies != len(testMovies()) {
		t.Errorf("movies = %d, want %d", body.Data.Movies, len(testMovies()))
	}
	if body.Data.VocabularyTerms == 0 {
		t.Error("vocabulary_terms = 0, want > 0")
	}
}

func TestHealthReady_RankingCache(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	for range 2 {
		if w, _ := do[RecommendationsResponse](t, srv, "/api/v1/recommendations/Heat"); w.Code != http.StatusOK {
			t.Fatalf("recommendations status = %d, want 200", w.Code)
		}
	}

	_, body := do[ReadinessResponse](t, srv, "/api/v1/health/ready")
	got := body.Data.RankingCache
	if got.Misses != 1 || got.Hits != 1 || got.Size != 1 {
		t.Errorf("ranking_cache = %+v, want 1 hit, 1 miss, size 1", got)
	}
}

func TestNoIndex(t *testing.T) {
	t.Parallel()

	var nilIndex *recommend.Index
	recommenders := map[string]Recommender{
		"nil interface": nil,
		"nil index":     nilIndex,
	}
	paths := []string{
		"/api/v1/health/ready",
		"/api/v1/recommendations/Heat",
		"/api/v1/recommendations/Heat/similar?k=2",
	}

	for name, rec := range recommenders {
		cfg := DefaultChiMiddlewareConfig()
		cfg.RateLimitDisabled = true
		srv := NewRouter(NewHandler(rec, nil), cfg).Setup()

		for _, path := range paths {
			t.Run(name+" "+path, func(t *testing.T) {
				t.Parallel()
				w, body := do[map[string]any](t, srv, path)
				if w.Code != http.StatusServiceUnavailable {
					t.Errorf("status = %d, want 503", w.Code)
				}
				if body.Error == nil || body.Error.Code != ErrCodeServiceUnavailable {
					t.Errorf("error = %+v, want %s", body.Error, ErrCodeServiceUnavailable)
				}
			})
		}
	}
}
