// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package app builds the immutable services shared by the HTTP server and the
// command line: the catalog, its similarity index and the query service.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/query"
	"github.com/tomtom215/marquee/internal/recommend"
)

// Services is the loaded catalog and everything derived from it.
// Nothing in it changes after Bootstrap returns.
type Services struct {
	Store   *catalog.Store
	Index   *recommend.Index
	Queries *query.Service
}

// Bootstrap loads the catalog named by cfg and builds the similarity index
// and query service over it.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Services, error) {
	loadStart := time.Now()
	store, err := catalog.Load(ctx, catalog.LoadOptions{
		Path:      cfg.Catalog.Path,
		Format:    cfg.Catalog.Format,
		Threads:   cfg.Catalog.Threads,
		MaxMemory: cfg.Catalog.MaxMemory,
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	metrics.RecordCatalogLoaded(store.Len(), time.Since(loadStart))

	return FromStore(ctx, store, cfg)
}

// FromStore builds the index and query service over an already loaded store.
func FromStore(ctx context.Context, store *catalog.Store, cfg *config.Config) (*Services, error) {
	index, err := recommend.Build(ctx, Documents(store), RecommendConfig(cfg), logging.Logger())
	if err != nil {
		return nil, fmt.Errorf("build similarity index: %w", err)
	}
	metrics.RecordIndexBuilt(index.Len(), index.VocabularySize(), index.BuildDuration())

	return &Services{
		Store:   store,
		Index:   index,
		Queries: query.New(store, query.Config{MinVotes: cfg.Query.MinVotes}),
	}, nil
}

// Documents returns the similarity corpus of store in catalog order.
func Documents(store *catalog.Store) []recommend.Document {
	movies := store.Movies()
	docs := make([]recommend.Document, len(movies))
	for i := range movies {
		docs[i] = recommend.Document{Title: movies[i].Title, Text: movies[i].CombinedText}
	}
	return docs
}

// RecommendConfig converts the recommend section of cfg.
func RecommendConfig(cfg *config.Config) recommend.Config {
	return recommend.Config{
		TopK:           cfg.Recommend.TopK,
		MaxK:           cfg.Recommend.MaxK,
		Workers:        cfg.Recommend.Workers,
		MaxCatalogSize: cfg.Recommend.MaxCatalogSize,
		CacheSize:      cfg.Recommend.CacheSize,
	}
}
