// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"strings"
	"time"
)

// Movie is a single catalog record.
type Movie struct {
	// Position is the zero-based index assigned at load time.
	Position int `json:"position"`

	// ID is the upstream identifier (kept as a string, it is never computed on).
	ID string `json:"id,omitempty"`

	// Title is the display title.
	Title string `json:"title"`

	// ReleaseDate is the theatrical release date. Zero when unknown.
	ReleaseDate time.Time `json:"release_date"`

	// ReleaseYear is the release year. Derived from ReleaseDate when absent.
	ReleaseYear int `json:"release_year"`

	// Popularity is the upstream popularity score.
	Popularity float64 `json:"popularity"`

	// VoteAverage is the mean user rating (0-10).
	VoteAverage float64 `json:"vote_average"`

	// VoteCount is the number of user ratings.
	VoteCount int `json:"vote_count"`

	// Budget and Revenue are in US dollars.
	Budget  float64 `json:"budget"`
	Revenue float64 `json:"revenue"`

	// Return is revenue divided by budget, 0 when budget is unknown.
	Return float64 `json:"return"`

	Genres    []string `json:"genres,omitempty"`
	Actors    []string `json:"actors,omitempty"`
	Directors []string `json:"directors,omitempty"`

	// Overview is the synopsis.
	Overview string `json:"overview,omitempty"`

	// CombinedText is the descriptive text used for similarity.
	CombinedText string `json:"-"`
}

// HasReleaseDate reports whether the release date is known.
func (m *Movie) HasReleaseDate() bool {
	return !m.ReleaseDate.IsZero()
}

// combineText builds the descriptive text from title, genres and overview.
// Used when the dataset carries no precomputed combined_text column.
func combineText(m *Movie) string {
	parts := make([]string, 0, 2+len(m.Genres))
	if m.Title != "" {
		parts = append(parts, m.Title)
	}
	parts = append(parts, m.Genres...)
	if m.Overview != "" {
		parts = append(parts, m.Overview)
	}
	return strings.Join(parts, " ")
}

// TitleKey normalizes a title for case-insensitive lookups.
func TitleKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// splitList splits a list column. "|" takes precedence over "," so that
// names containing commas survive when the dataset uses pipes.
func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	sep := ","
	if strings.Contains(raw, "|") {
		sep = "|"
	}

	parts := strings.Split(raw, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
