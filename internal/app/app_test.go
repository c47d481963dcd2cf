// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/query"
	"github.com/tomtom215/marquee/internal/recommend"
)

const testCSV = `title,release_date,popularity,vote_average,vote_count,budget,revenue,genres,actors,directors,overview
Toy Story,1995-10-30,21.9,7.7,5415,30000000,373554033,Animation|Comedy,Tom Hanks|Tim Allen,John Lasseter,Toys come to life when a cowboy meets a space ranger
Toy Story 2,1999-10-30,17.5,7.3,3914,90000000,497366869,Animation|Comedy,Tom Hanks|Tim Allen,John Lasseter,Toys come to life when a cowboy is stolen by a collector
Heat,1995-12-15,17.9,7.7,1886,60000000,187436818,Crime|Thriller,Al Pacino|Robert De Niro,Michael Mann,A detective hunts a professional thief after a heist in Los Angeles
Collateral,2004-08-06,13.1,7.2,2780,65000000,217764291,Crime|Thriller,Tom Cruise|Jamie Foxx,Michael Mann,A taxi driver in Los Angeles is taken hostage by a hitman
`

func testConfig(t *testing.T, csv string) *config.Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte(csv), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	return &config.Config{
		Catalog:   config.CatalogConfig{Path: path, Threads: 1},
		Recommend: config.RecommendConfig{TopK: 5, MaxK: 50, Workers: 2, MaxCatalogSize: 100, CacheSize: 16},
		Query:     config.QueryConfig{MinVotes: query.DefaultMinVotes},
	}
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	svc, err := Bootstrap(context.Background(), testConfig(t, testCSV))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	if svc.Store.Len() != 4 || svc.Index.Len() != 4 {
		t.Fatalf("store %d, index %d entries, want 4", svc.Store.Len(), svc.Index.Len())
	}

	recs, err := svc.Index.Recommend(context.Background(), "toy story")
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(recs) != 3 || recs[0] != "Toy Story 2" {
		t.Errorf("recommendations = %v, want Toy Story 2 first of 3", recs)
	}

	months, err := svc.Queries.FilmsByMonth("octubre")
	if err != nil || months.Count != 2 {
		t.Errorf("FilmsByMonth(octubre) = %+v, %v; want 2", months, err)
	}

	if _, err := svc.Queries.VotesByTitle("Heat"); !errors.Is(err, query.ErrInsufficientVotes) {
		t.Errorf("VotesByTitle(Heat) err = %v, want ErrInsufficientVotes", err)
	}
}

func TestBootstrap_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t, testCSV)
		cfg.Catalog.Path = filepath.Join(t.TempDir(), "absent.csv")
		if _, err := Bootstrap(context.Background(), cfg); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("catalog too large", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t, testCSV)
		cfg.Recommend.MaxCatalogSize = 3
		if _, err := Bootstrap(context.Background(), cfg); !errors.Is(err, recommend.ErrCatalogTooLarge) {
			t.Errorf("err = %v, want ErrCatalogTooLarge", err)
		}
	})

	t.Run("invalid recommend config", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t, testCSV)
		cfg.Recommend.TopK = 0
		if _, err := Bootstrap(context.Background(), cfg); err == nil {
			t.Error("expected error for top_k = 0")
		}
	})
}

func TestDocuments(t *testing.T) {
	t.Parallel()

	svc, err := Bootstrap(context.Background(), testConfig(t, testCSV))
	if err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}

	docs := Documents(svc.Store)
	if len(docs) != svc.Store.Len() {
		t.Fatalf("len(docs) = %d, want %d", len(docs), svc.Store.Len())
	}
	for i, d := range docs {
		m := svc.Store.At(i)
		if d.Title != m.Title || d.Text != m.CombinedText {
			t.Errorf("doc %d = %+v, want %q/%q", i, d, m.Title, m.CombinedText)
		}
		if d.Text == "" {
			t.Errorf("doc %d has empty text", i)
		}
	}
}
