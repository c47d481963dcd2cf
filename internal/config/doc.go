// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package config provides layered configuration loading for Marquee using Koanf v2.
//
// # Loading Order
//
// Configuration is assembled from three layers, later layers overriding earlier ones:
//
//  1. Defaults: built-in values from defaultConfig()
//  2. Config File: optional YAML file (config.yaml, config.yml,
//     /etc/marquee/config.yaml, or the path in CONFIG_PATH)
//  3. Environment Variables: explicit mapping table in envTransformFunc
//
// # Example config.yaml
//
//	catalog:
//	  path: data/movies_credits.csv
//	  threads: 4
//	recommend:
//	  top_k: 5
//	  max_catalog_size: 20000
//	  cache_size: 1024
//	query:
//	  min_votes: 2000
//	server:
//	  port: 8000
//	security:
//	  cors_origins: ["*"]
//	logging:
//	  level: info
//	  format: json
//
// # Environment Variables
//
//	CATALOG_PATH, CATALOG_FORMAT, DUCKDB_THREADS, DUCKDB_MAX_MEMORY
//	RECOMMEND_TOP_K, RECOMMEND_MAX_K, RECOMMEND_WORKERS, RECOMMEND_MAX_CATALOG_SIZE,
//	RECOMMEND_CACHE_SIZE
//	QUERY_MIN_VOTES
//	HTTP_HOST, HTTP_PORT, HTTP_TIMEOUT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT,
//	HTTP_IDLE_TIMEOUT, SHUTDOWN_TIMEOUT
//	CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
//	DISABLE_RATE_LIMIT
//	LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//
// Unmapped environment variables are ignored.
package config
