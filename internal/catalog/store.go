// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"errors"
)

// ErrEmptyCatalog is returned when a catalog has no records.
var ErrEmptyCatalog = errors.New("catalog is empty")

// Store is an immutable, positionally stable collection of movies.
type Store struct {
	movies  []Movie
	byTitle map[string]int // TitleKey -> lowest position
}

// NewStore builds a store from movies in catalog order.
// Positions are reassigned to match slice order. Movies without CombinedText
// get one built from title, genres and overview; Return is derived from
// budget and revenue when absent.
//
//nolint:gocritic // rangeValCopy: Movie copied once at construction
func NewStore(movies []Movie) (*Store, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}

	s := &Store{
		movies:  make([]Movie, len(movies)),
		byTitle: make(map[string]int, len(movies)),
	}

	for i, m := range movies {
		m.Position = i
		if m.CombinedText == "" {
			m.CombinedText = combineText(&m)
		}
		if m.ReleaseYear == 0 && m.HasReleaseDate() {
			m.ReleaseYear = m.ReleaseDate.Year()
		}
		if m.Return == 0 && m.Budget > 0 {
			m.Return = m.Revenue / m.Budget
		}
		s.movies[i] = m

		key := TitleKey(m.Title)
		if _, seen := s.byTitle[key]; !seen {
			s.byTitle[key] = i
		}
	}

	return s, nil
}

// Len returns the number of movies.
func (s *Store) Len() int {
	return len(s.movies)
}

// At returns the movie at position i. It panics if i is out of range.
func (s *Store) At(i int) *Movie {
	return &s.movies[i]
}

// Movies returns the backing slice. Callers must not modify it.
func (s *Store) Movies() []Movie {
	return s.movies
}

// FindTitle returns the first movie (lowest position) whose title matches
// case-insensitively.
func (s *Store) FindTitle(title string) (*Movie, bool) {
	pos, ok := s.byTitle[TitleKey(title)]
	if !ok {
		return nil, false
	}
	return &s.movies[pos], true
}

// Titles returns titles in catalog order.
func (s *Store) Titles() []string {
	out := make([]string, len(s.movies))
	for i := range s.movies {
		out[i] = s.movies[i].Title
	}
	return out
}

// Texts returns combined descriptive texts in catalog order.
func (s *Store) Texts() []string {
	out := make([]string, len(s.movies))
	for i := range s.movies {
		out[i] = s.movies[i].CombinedText
	}
	return out
}
