// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations/{title}", "200"))

	RecordAPIRequest("GET", "/api/v1/recommendations/{title}", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommendations/{title}", "200"))
	if after != before+1 {
		t.Errorf("api_requests_total = %v, want %v", after, before+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordCatalogLoaded(t *testing.T) {
	RecordCatalogLoaded(4500, 1500*time.Millisecond)

	if got := testutil.ToFloat64(CatalogMovies); got != 4500 {
		t.Errorf("catalog_movies = %v, want 4500", got)
	}
	if got := testutil.ToFloat64(CatalogLoadDuration); got != 1.5 {
		t.Errorf("catalog_load_duration_seconds = %v, want 1.5", got)
	}
}

func TestRecordIndexBuilt(t *testing.T) {
	RecordIndexBuilt(100, 2500, 2*time.Second)

	if got := testutil.ToFloat64(VocabularyTerms); got != 2500 {
		t.Errorf("recommend_vocabulary_terms = %v, want 2500", got)
	}
	// 100*101/2 cells of 4 bytes.
	if got := testutil.ToFloat64(SimilarityMatrixBytes); got != 20200 {
		t.Errorf("recommend_similarity_matrix_bytes = %v, want 20200", got)
	}
	if got := testutil.ToFloat64(IndexBuildDuration); got != 2 {
		t.Errorf("recommend_index_build_duration_seconds = %v, want 2", got)
	}
}

func TestRecordOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		record func()
		get    func() float64
	}{
		{
			name:   "recommendation not found",
			record: func() { RecordRecommendation(OutcomeNotFound) },
			get:    func() float64 { return testutil.ToFloat64(RecommendRequests.WithLabelValues(OutcomeNotFound)) },
		},
		{
			name:   "query ok",
			record: func() { RecordQuery("films_by_month", OutcomeOK) },
			get:    func() float64 { return testutil.ToFloat64(QueryRequests.WithLabelValues("films_by_month", OutcomeOK)) },
		},
		{
			name:   "query invalid",
			record: func() { RecordQuery("films_by_day", OutcomeInvalid) },
			get:    func() float64 { return testutil.ToFloat64(QueryRequests.WithLabelValues("films_by_day", OutcomeInvalid)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.get()
			tt.record()
			if got := tt.get(); got != before+1 {
				t.Errorf("counter = %v, want %v", got, before+1)
			}
		})
	}
}
