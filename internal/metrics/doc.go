// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

/*
Package metrics provides Prometheus metrics collection for Marquee.

Collectors are registered with the default registry through promauto and are
exposed at /metrics by the API router:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: requests by method, route pattern and status code
  - api_request_duration_seconds: latency by method and route pattern
  - api_active_requests: in-flight requests

Catalog and Index Metrics:
  - catalog_movies: movies in the loaded catalog
  - catalog_load_duration_seconds: time spent reading the dataset
  - recommend_vocabulary_terms: distinct TF-IDF terms
  - recommend_similarity_matrix_bytes: memory held by the similarity matrix
  - recommend_index_build_duration_seconds: vectorizing plus matrix time

Request Outcome Metrics:
  - recommend_requests_total: recommendations by outcome
  - query_requests_total: catalog queries by operation and outcome
*/
package metrics
