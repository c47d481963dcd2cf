// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package catalog holds the immutable movie catalog that every other component
// reads from.
//
// # Overview
//
// A catalog is loaded exactly once at startup and never changes for the
// lifetime of the process. Each record receives a stable, zero-based position
// in load order; the recommendation index and every query refer to movies by
// that position.
//
// # Loading
//
// Load scans a CSV, TSV or Parquet file through an in-memory DuckDB instance:
//
//	store, err := catalog.Load(ctx, catalog.LoadOptions{
//	    Path:      "/data/movies_credits.csv",
//	    Threads:   4,
//	    MaxMemory: "1GB",
//	})
//
// Only the title column is required. Missing optional columns load as zero
// values. List columns (genres, actors, directors) may be separated by "|" or
// ",".
//
// # Thread Safety
//
// A Store is read-only after NewStore returns and is safe for concurrent use
// without locking.
package catalog
