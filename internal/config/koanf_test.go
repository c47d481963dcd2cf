// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Catalog.Path != "data/movies_credits.csv" {
		t.Errorf("Catalog.Path = %q, want data/movies_credits.csv", cfg.Catalog.Path)
	}
	if cfg.Recommend.TopK != 5 {
		t.Errorf("Recommend.TopK = %d, want 5", cfg.Recommend.TopK)
	}
	if cfg.Recommend.MaxCatalogSize != 20000 {
		t.Errorf("Recommend.MaxCatalogSize = %d, want 20000", cfg.Recommend.MaxCatalogSize)
	}
	if cfg.Recommend.CacheSize != 1024 {
		t.Errorf("Recommend.CacheSize = %d, want 1024", cfg.Recommend.CacheSize)
	}
	if cfg.Query.MinVotes != 2000 {
		t.Errorf("Query.MinVotes = %d, want 2000", cfg.Query.MinVotes)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("Security.RateLimitWindow = %v, want 1m", cfg.Security.RateLimitWindow)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"CATALOG_PATH", "catalog.path"},
		{"DUCKDB_THREADS", "catalog.threads"},
		{"RECOMMEND_MAX_CATALOG_SIZE", "recommend.max_catalog_size"},
		{"RECOMMEND_CACHE_SIZE", "recommend.cache_size"},
		{"QUERY_MIN_VOTES", "query.min_votes"},
		{"HTTP_PORT", "server.port"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileLayers(t *testing.T) {
	path := writeConfig(t, `
catalog:
  path: /srv/movies.parquet
recommend:
  top_k: 3
  max_k: 20
server:
  port: 9000
  read_timeout: 5s
security:
  cors_origins:
    - https://a.example
    - https://b.example
logging:
  level: debug
`)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Catalog.Path != "/srv/movies.parquet" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Recommend.TopK != 3 || cfg.Recommend.MaxK != 20 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.MaxCatalogSize != 20000 {
		t.Errorf("default MaxCatalogSize lost: %d", cfg.Recommend.MaxCatalogSize)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("env should override file: Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("CATALOG_PATH", "/data/movies.csv")
	t.Setenv("RECOMMEND_WORKERS", "3")
	t.Setenv("QUERY_MIN_VOTES", "500")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("LOG_CALLER", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Catalog.Path != "/data/movies.csv" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Recommend.Workers != 3 {
		t.Errorf("Recommend.Workers = %d, want 3", cfg.Recommend.Workers)
	}
	if cfg.Query.MinVotes != 500 {
		t.Errorf("Query.MinVotes = %d, want 500", cfg.Query.MinVotes)
	}
	if cfg.Security.RateLimitWindow != 30*time.Second {
		t.Errorf("RateLimitWindow = %v, want 30s", cfg.Security.RateLimitWindow)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if !cfg.Logging.Caller {
		t.Error("Logging.Caller should be true")
	}
}

func TestLoadConfigPathEnv(t *testing.T) {
	path := writeConfig(t, "query:\n  min_votes: 10\n")
	t.Setenv(ConfigPathEnvVar, path)

	if got := findConfigFile(); got != path {
		t.Fatalf("findConfigFile() = %q, want %q", got, path)
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Query.MinVotes != 10 {
		t.Errorf("Query.MinVotes = %d, want 10", cfg.Query.MinVotes)
	}
}

func TestLoadValidationFailure(t *testing.T) {
	path := writeConfig(t, "recommend:\n  top_k: 0\n")

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "RECOMMEND_TOP_K") {
		t.Errorf("LoadFile() error = %v, want RECOMMEND_TOP_K validation error", err)
	}
}

func TestLoadFileTopKAboveFive(t *testing.T) {
	path := writeConfig(t, "recommend:\n  top_k: 7\n  max_k: 20\n")

	_, err := LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "RECOMMEND_TOP_K must be at most 5") {
		t.Errorf("LoadFile() error = %v, want RECOMMEND_TOP_K upper bound error", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFile() with missing file should fail")
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated\n")

	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() with invalid YAML should fail")
	}
}
