// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package recommend

import (
	"fmt"
	"runtime"
)

// MaxRecommendations bounds the number of titles Recommend returns.
const MaxRecommendations = 5

// Config controls index construction and ranking.
type Config struct {
	// TopK is the number of titles Recommend returns and the default k for
	// Similar. At most MaxRecommendations.
	TopK int `json:"top_k"`

	// MaxK caps the k accepted by Similar.
	MaxK int `json:"max_k"`

	// Workers is the number of goroutines computing matrix rows.
	// Zero uses runtime.NumCPU().
	Workers int `json:"workers"`

	// MaxCatalogSize rejects catalogs with more entries. Zero disables the check.
	MaxCatalogSize int `json:"max_catalog_size"`

	// CacheSize is the number of per-title rankings kept in memory.
	// Zero disables the cache.
	CacheSize int `json:"cache_size"`
}

// DefaultConfig returns the configuration used by the server.
func DefaultConfig() Config {
	return Config{
		TopK:           5,
		MaxK:           50,
		Workers:        0,
		MaxCatalogSize: 20000,
		CacheSize:      1024,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be at least 1, got %d", c.TopK)
	}
	if c.TopK > MaxRecommendations {
		return fmt.Errorf("top_k must be at most %d, got %d", MaxRecommendations, c.TopK)
	}
	if c.MaxK < c.TopK {
		return fmt.Errorf("max_k (%d) must be >= top_k (%d)", c.MaxK, c.TopK)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.MaxCatalogSize < 0 {
		return fmt.Errorf("max_catalog_size must be non-negative, got %d", c.MaxCatalogSize)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative, got %d", c.CacheSize)
	}
	return nil
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
