// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package recommend implements content-based movie recommendations from
// TF-IDF vectors and a precomputed cosine similarity matrix.
//
// # Architecture
//
// Build runs once at startup and produces an immutable Index:
//
//   - Vectorizer: tokenizes each document, fits a vocabulary and weights
//     terms with smoothed TF-IDF followed by L2 normalization
//   - Similarity: cosine similarity for every pair of documents, stored as a
//     packed upper triangle of float32 values
//   - Index: title resolution and top-k ranking over one matrix row
//
// # Usage
//
//	docs := make([]recommend.Document, store.Len())
//	for i, m := range store.Movies() {
//	    docs[i] = recommend.Document{Title: m.Title, Text: m.CombinedText}
//	}
//
//	idx, err := recommend.Build(ctx, docs, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	titles, err := idx.Recommend(ctx, "Toy Story")
//	if errors.Is(err, recommend.ErrNotFound) {
//	    // unknown title
//	}
//
// # Ranking
//
// Candidates are ordered by descending similarity. Equal scores keep catalog
// order (lower position first). The query entry itself is never returned.
// Titles are matched case-insensitively and the first catalog entry with a
// matching title answers the query.
//
// # Thread Safety
//
// Build may fan out over several goroutines. The vectors and matrix of the
// returned Index are never mutated. The only mutable state is the ranking
// cache, which locks internally, so an Index is safe for concurrent use.
//
// # Memory
//
// The matrix holds n(n+1)/2 float32 cells, about 800 MB for 20,000 movies.
// Config.MaxCatalogSize rejects larger catalogs before any allocation.
//
// Cells keep float32 precision (about 7 significant digits). Two candidates
// whose cosine scores differ only beyond that collapse to the same stored
// value and are then ordered by position. Scores reported by Similar are the
// stored float32 values widened to float64.
package recommend
