// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for all settings
//  2. Config File: Optional YAML config file
//  3. Environment Variables: Override any mapped setting
type Config struct {
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Query     QueryConfig     `koanf:"query"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// CatalogConfig locates the movie dataset and tunes the DuckDB reader.
type CatalogConfig struct {
	// Path is the CSV, TSV or Parquet dataset.
	Path string `koanf:"path"`

	// Format overrides detection by file extension: csv, tsv or parquet.
	Format string `koanf:"format"`

	// Threads is the DuckDB worker count (0 = all CPUs).
	Threads int `koanf:"threads"`

	// MaxMemory caps DuckDB memory while scanning, e.g. "1GB".
	MaxMemory string `koanf:"max_memory"`
}

// RecommendConfig holds similarity index settings.
type RecommendConfig struct {
	TopK           int `koanf:"top_k"`
	MaxK           int `koanf:"max_k"`
	Workers        int `koanf:"workers"`
	MaxCatalogSize int `koanf:"max_catalog_size"`
	// CacheSize is the number of per-title rankings kept in memory. 0 disables caching.
	CacheSize int `koanf:"cache_size"`
}

// QueryConfig holds catalog query settings.
type QueryConfig struct {
	// MinVotes is the vote count below which vote lookups are refused.
	MinVotes int `koanf:"min_votes"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, the first config file found and
// the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// String returns a one-line summary for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("catalog=%s addr=%s top_k=%d max_catalog_size=%d log=%s/%s",
		c.Catalog.Path, c.Server.Addr(), c.Recommend.TopK, c.Recommend.MaxCatalogSize,
		c.Logging.Level, c.Logging.Format)
}
