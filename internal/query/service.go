// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
)

var (
	// ErrInvalidMonth is returned for names that are not Spanish months.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDay is returned for names that are not Spanish weekdays.
	ErrInvalidDay = errors.New("invalid day")

	// ErrTitleNotFound is returned when no movie has the requested title.
	ErrTitleNotFound = errors.New("title not found")

	// ErrPersonNotFound is returned when an actor or director has no films.
	ErrPersonNotFound = errors.New("person not found")

	// ErrInsufficientVotes is returned by VotesByTitle below the vote threshold.
	ErrInsufficientVotes = errors.New("insufficient votes")
)

// DefaultMinVotes is the vote count VotesByTitle requires.
const DefaultMinVotes = 2000

// Config configures a Service.
type Config struct {
	// MinVotes is the minimum vote count VotesByTitle reports.
	MinVotes int `json:"min_votes"`
}

// DefaultConfig returns the default query configuration.
func DefaultConfig() Config {
	return Config{MinVotes: DefaultMinVotes}
}

// MonthCount is the number of movies released in a month of any year.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DayCount is the number of movies released on a weekday.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// TitleScore is the popularity of a title.
type TitleScore struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	Popularity  float64 `json:"popularity"`
}

// TitleVotes is the rating summary of a title.
type TitleVotes struct {
	Title       string  `json:"title"`
	ReleaseYear int     `json:"release_year"`
	VoteCount   int     `json:"vote_count"`
	VoteAverage float64 `json:"vote_average"`
}

// ActorStats summarizes the films an actor appears in.
type ActorStats struct {
	Actor         string  `json:"actor"`
	FilmCount     int     `json:"film_count"`
	TotalReturn   float64 `json:"total_return"`
	AverageReturn float64 `json:"average_return"`
}

// DirectorFilm is one film in DirectorStats.
type DirectorFilm struct {
	Title       string     `json:"title"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Return      float64    `json:"return"`
	Budget      float64    `json:"budget"`
	Revenue     float64    `json:"revenue"`
}

// DirectorStats summarizes a director's films.
type DirectorStats struct {
	Director    string         `json:"director"`
	TotalReturn float64        `json:"total_return"`
	Films       []DirectorFilm `json:"films"`
}

// Service answers catalog queries.
type Service struct {
	store       *catalog.Store
	cfg         Config
	monthCounts [13]int
	dayCounts   [7]int
	actors      map[string][]int
	directors   map[string][]int
}

// New indexes store for querying.
func New(store *catalog.Store, cfg Config) *Service {
	s := &Service{
		store:     store,
		cfg:       cfg,
		actors:    make(map[string][]int),
		directors: make(map[string][]int),
	}

	for i, m := range store.Movies() {
		if m.HasReleaseDate() {
			s.monthCounts[m.ReleaseDate.Month()]++
			s.dayCounts[m.ReleaseDate.Weekday()]++
		}
		indexPeople(s.actors, m.Actors, i)
		indexPeople(s.directors, m.Directors, i)
	}

	return s
}

// indexPeople appends pos under each distinct folded name.
func indexPeople(into map[string][]int, names []string, pos int) {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := foldKey(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		into[key] = append(into[key], pos)
	}
}

// Config returns the service configuration.
func (s *Service) Config() Config { return s.cfg }

// FilmsByMonth counts movies released in the named Spanish month.
func (s *Service) FilmsByMonth(month string) (MonthCount, error) {
	m, ok := ParseMonth(month)
	if !ok {
		return MonthCount{}, fmt.Errorf("%w: %q is not a Spanish month name", ErrInvalidMonth, month)
	}
	return MonthCount{Month: foldKey(month), Count: s.monthCounts[m]}, nil
}

// FilmsByDay counts movies released on the named Spanish weekday.
func (s *Service) FilmsByDay(day string) (DayCount, error) {
	d, ok := ParseWeekday(day)
	if !ok {
		return DayCount{}, fmt.Errorf("%w: %q is not a Spanish weekday name", ErrInvalidDay, day)
	}
	return DayCount{Day: foldKey(day), Count: s.dayCounts[d]}, nil
}

func (s *Service) findTitle(title string) (*catalog.Movie, error) {
	m, ok := s.store.FindTitle(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTitleNotFound, title)
	}
	return m, nil
}

// ScoreByTitle returns the release year and popularity of a title.
func (s *Service) ScoreByTitle(title string) (TitleScore, error) {
	m, err := s.findTitle(title)
	if err != nil {
		return TitleScore{}, err
	}
	return TitleScore{Title: m.Title, ReleaseYear: m.ReleaseYear, Popularity: m.Popularity}, nil
}

// VotesByTitle returns the vote summary of a title. Titles with fewer than
// MinVotes votes return ErrInsufficientVotes.
func (s *Service) VotesByTitle(title string) (TitleVotes, error) {
	m, err := s.findTitle(title)
	if err != nil {
		return TitleVotes{}, err
	}
	if m.VoteCount < s.cfg.MinVotes {
		return TitleVotes{}, fmt.Errorf("%w: %q has %d votes, at least %d required",
			ErrInsufficientVotes, m.Title, m.VoteCount, s.cfg.MinVotes)
	}
	return TitleVotes{
		Title:       m.Title,
		ReleaseYear: m.ReleaseYear,
		VoteCount:   m.VoteCount,
		VoteAverage: m.VoteAverage,
	}, nil
}

// Actor returns the film count and return totals for an actor.
func (s *Service) Actor(name string) (ActorStats, error) {
	positions, ok := s.actors[foldKey(name)]
	if !ok {
		return ActorStats{}, fmt.Errorf("%w: actor %q", ErrPersonNotFound, name)
	}

	stats := ActorStats{Actor: displayName(s.store, positions[0], name, actorsOf), FilmCount: len(positions)}
	for _, pos := range positions {
		stats.TotalReturn += s.store.At(pos).Return
	}
	stats.AverageReturn = stats.TotalReturn / float64(stats.FilmCount)
	return stats, nil
}

// Director returns the total return and films of a director ordered by
// release date. Films without a date come last.
func (s *Service) Director(name string) (DirectorStats, error) {
	positions, ok := s.directors[foldKey(name)]
	if !ok {
		return DirectorStats{}, fmt.Errorf("%w: director %q", ErrPersonNotFound, name)
	}

	stats := DirectorStats{
		Director: displayName(s.store, positions[0], name, directorsOf),
		Films:    make([]DirectorFilm, 0, len(positions)),
	}
	for _, pos := range positions {
		m := s.store.At(pos)
		film := DirectorFilm{Title: m.Title, Return: m.Return, Budget: m.Budget, Revenue: m.Revenue}
		if m.HasReleaseDate() {
			date := m.ReleaseDate
			film.ReleaseDate = &date
		}
		stats.TotalReturn += m.Return
		stats.Films = append(stats.Films, film)
	}

	sort.SliceStable(stats.Films, func(i, j int) bool {
		a, b := stats.Films[i].ReleaseDate, stats.Films[j].ReleaseDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return stats, nil
}

func actorsOf(m *catalog.Movie) []string    { return m.Actors }
func directorsOf(m *catalog.Movie) []string { return m.Directors }

// displayName returns the catalog spelling of name from the movie at pos.
func displayName(store *catalog.Store, pos int, name string, people func(*catalog.Movie) []string) string {
	key := foldKey(name)
	for _, p := range people(store.At(pos)) {
		if foldKey(p) == key {
			return p
		}
	}
	return name
}
