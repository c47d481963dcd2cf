// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package main is the entry point for the Marquee HTTP server.

Marquee loads a movie catalog once at startup, builds a TF-IDF similarity
index over it, and serves catalog queries and recommendations over HTTP.

# Startup

 1. Configuration: koanf v2 with defaults, an optional YAML file and environment variables
 2. Logging: zerolog, configured from the logging section
 3. Catalog: CSV, TSV or Parquet scanned through an in-memory DuckDB
 4. Similarity index: vocabulary, TF-IDF vectors and the packed cosine matrix
 5. HTTP: chi router supervised by suture v4

Any failure before the server starts listening exits the process with a
fatal log entry. Once running, the catalog and index are read-only.

# Process Supervision

	RootSupervisor ("marquee")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

SIGINT and SIGTERM cancel the root context; the HTTP server then drains
connections for up to SHUTDOWN_TIMEOUT.

# Configuration

See internal/config for every option. The most common ones:

	CATALOG_PATH=data/movies_credits.csv
	HTTP_PORT=8000
	RECOMMEND_TOP_K=5
	RECOMMEND_MAX_CATALOG_SIZE=20000
	LOG_LEVEL=info
	LOG_FORMAT=json
*/
package main
