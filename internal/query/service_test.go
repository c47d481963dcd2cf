// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package query

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tomtom215/marquee/internal/catalog"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := catalog.NewStore([]catalog.Movie{
		{
			Title: "Toy Story", ReleaseDate: date("1995-10-30"), Popularity: 21.9,
			VoteCount: 5415, VoteAverage: 7.7, Budget: 30e6, Revenue: 373.6e6,
			Actors: []string{"Tom Hanks", "Tim Allen"}, Directors: []string{"John Lasseter"},
		},
		{
			Title: "Heat", ReleaseDate: date("1995-12-15"), Popularity: 17.9,
			VoteCount: 1886, VoteAverage: 7.7, Budget: 60e6, Revenue: 187.4e6,
			Actors: []string{"Al Pacino", "Robert De Niro"}, Directors: []string{"Michael Mann"},
		},
		{
			Title: "Forrest Gump", ReleaseDate: date("1994-09-14"),
			VoteCount: 8147, VoteAverage: 8.2, Budget: 55e6, Revenue: 677.9e6,
			Actors: []string{"Tom Hanks", "Robin Wright"}, Directors: []string{"Robert Zemeckis"},
		},
		{
			Title: "Collateral", ReleaseDate: date("2004-08-06"),
			Budget: 65e6, Revenue: 217.8e6,
			Actors: []string{"Tom Cruise"}, Directors: []string{"Michael Mann"},
		},
		{
			Title: "Thief", Actors: []string{"James Caan"}, Directors: []string{"Michael Mann"},
		},
		{
			Title: "heat", ReleaseDate: date("1986-03-01"), Popularity: 2.1,
			Directors: []string{"Dick Richards"},
		},
		{
			Title: "Amélie", ReleaseDate: date("2001-04-25"), Popularity: 12,
			Actors: []string{"Audrey Tautou"}, Directors: []string{"Jean-Pierre Jeunet"},
		},
	})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return New(store, DefaultConfig())
}

func TestFilmsByMonth(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	tests := []struct {
		month   string
		want    int
		wantErr bool
	}{
		{"diciembre", 1, false},
		{"Octubre", 1, false},
		{"SEPTIEMBRE", 1, false},
		{"setiembre", 1, false},
		{"marzo", 1, false},
		{"enero", 0, false},
		{"  abril ", 1, false},
		{"december", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.month, func(t *testing.T) {
			t.Parallel()
			got, err := svc.FilmsByMonth(tt.month)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMonth) {
					t.Errorf("FilmsByMonth(%q) error = %v, want ErrInvalidMonth", tt.month, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FilmsByMonth(%q) error = %v", tt.month, err)
			}
			if got.Count != tt.want {
				t.Errorf("FilmsByMonth(%q) = %d, want %d", tt.month, got.Count, tt.want)
			}
		})
	}
}

func TestFilmsByDay(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	tests := []struct {
		day     string
		want    int
		wantErr bool
	}{
		{"lunes", 1, false},
		{"miércoles", 2, false},
		{"MIERCOLES", 2, false},
		{"viernes", 2, false},
		{"sábado", 1, false},
		{"domingo", 0, false},
		{"monday", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.day, func(t *testing.T) {
			t.Parallel()
			got, err := svc.FilmsByDay(tt.day)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDay) {
					t.Errorf("FilmsByDay(%q) error = %v, want ErrInvalidDay", tt.day, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FilmsByDay(%q) error = %v", tt.day, err)
			}
			if got.Count != tt.want {
				t.Errorf("FilmsByDay(%q) = %d, want %d", tt.day, got.Count, tt.want)
			}
		})
	}
}

func TestFilmsByDayNormalizesName(t *testing.T) {
	t.Parallel()

	got, err := newTestService(t).FilmsByDay("Miércoles")
	if err != nil {
		t.Fatalf("FilmsByDay() error = %v", err)
	}
	if got.Day != "miercoles" {
		t.Errorf("Day = %q, want miercoles", got.Day)
	}
}

func TestScoreByTitle(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	got, err := svc.ScoreByTitle("HEAT")
	if err != nil {
		t.Fatalf("ScoreByTitle() error = %v", err)
	}
	want := TitleScore{Title: "Heat", ReleaseYear: 1995, Popularity: 17.9}
	if got != want {
		t.Errorf("ScoreByTitle(HEAT) = %+v, want %+v", got, want)
	}

	if _, err := svc.ScoreByTitle("Unknown"); !errors.Is(err, ErrTitleNotFound) {
		t.Errorf("ScoreByTitle(Unknown) error = %v, want ErrTitleNotFound", err)
	}
}

func TestVotesByTitle(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	got, err := svc.VotesByTitle("toy story")
	if err != nil {
		t.Fatalf("VotesByTitle() error = %v", err)
	}
	want := TitleVotes{Title: "Toy Story", ReleaseYear: 1995, VoteCount: 5415, VoteAverage: 7.7}
	if got != want {
		t.Errorf("VotesByTitle = %+v, want %+v", got, want)
	}

	if _, err := svc.VotesByTitle("Heat"); !errors.Is(err, ErrInsufficientVotes) {
		t.Errorf("VotesByTitle(Heat) error = %v, want ErrInsufficientVotes", err)
	}
	if _, err := svc.VotesByTitle("Nope"); !errors.Is(err, ErrTitleNotFound) {
		t.Errorf("VotesByTitle(Nope) error = %v, want ErrTitleNotFound", err)
	}
}

func TestVotesByTitleThreshold(t *testing.T) {
	t.Parallel()

	store, err := catalog.NewStore([]catalog.Movie{{Title: "Heat", VoteCount: 1886}})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	svc := New(store, Config{MinVotes: 1000})

	if _, err := svc.VotesByTitle("Heat"); err != nil {
		t.Errorf("VotesByTitle with lower threshold error = %v", err)
	}
}

func TestActor(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	got, err := svc.Actor("tom hanks")
	if err != nil {
		t.Fatalf("Actor() error = %v", err)
	}
	if got.Actor != "Tom Hanks" || got.FilmCount != 2 {
		t.Errorf("Actor(tom hanks) = %+v", got)
	}
	wantTotal := 373.6/30 + 677.9/55
	if math.Abs(got.TotalReturn-wantTotal) > 1e-9 {
		t.Errorf("TotalReturn = %f, want %f", got.TotalReturn, wantTotal)
	}
	if math.Abs(got.AverageReturn-wantTotal/2) > 1e-9 {
		t.Errorf("AverageReturn = %f, want %f", got.AverageReturn, wantTotal/2)
	}

	zero, err := svc.Actor("James Caan")
	if err != nil {
		t.Fatalf("Actor(James Caan) error = %v", err)
	}
	if zero.FilmCount != 1 || zero.TotalReturn != 0 || zero.AverageReturn != 0 {
		t.Errorf("Actor(James Caan) = %+v", zero)
	}

	if _, err := svc.Actor("Nobody"); !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("Actor(Nobody) error = %v, want ErrPersonNotFound", err)
	}
}

func TestActorAccentInsensitive(t *testing.T) {
	t.Parallel()

	store, err := catalog.NewStore([]catalog.Movie{{Title: "Y tu mamá también", Actors: []string{"Gael García Bernal"}}})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	got, err := New(store, DefaultConfig()).Actor("gael garcia  bernal")
	if err != nil {
		t.Fatalf("Actor() error = %v", err)
	}
	if got.Actor != "Gael García Bernal" {
		t.Errorf("Actor = %q, want catalog spelling", got.Actor)
	}
}

func TestDirector(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	got, err := svc.Director("MICHAEL MANN")
	if err != nil {
		t.Fatalf("Director() error = %v", err)
	}
	if got.Director != "Michael Mann" {
		t.Errorf("Director = %q", got.Director)
	}

	wantTitles := []string{"Heat", "Collateral", "Thief"}
	if len(got.Films) != len(wantTitles) {
		t.Fatalf("Films = %+v, want %v", got.Films, wantTitles)
	}
	for i, title := range wantTitles {
		if got.Films[i].Title != title {
			t.Errorf("Films[%d] = %q, want %q", i, got.Films[i].Title, title)
		}
	}
	if got.Films[2].ReleaseDate != nil {
		t.Errorf("undated film has release date %v", got.Films[2].ReleaseDate)
	}

	wantTotal := 187.4/60 + 217.8/65
	if math.Abs(got.TotalReturn-wantTotal) > 1e-9 {
		t.Errorf("TotalReturn = %f, want %f", got.TotalReturn, wantTotal)
	}

	if _, err := svc.Director("Nobody"); !errors.Is(err, ErrPersonNotFound) {
		t.Errorf("Director(Nobody) error = %v, want ErrPersonNotFound", err)
	}
}

func TestParseMonthAndWeekday(t *testing.T) {
	t.Parallel()

	if m, ok := ParseMonth("Diciembre"); !ok || m != time.December {
		t.Errorf("ParseMonth(Diciembre) = %v, %v", m, ok)
	}
	if d, ok := ParseWeekday("SÁBADO"); !ok || d != time.Saturday {
		t.Errorf("ParseWeekday(SÁBADO) = %v, %v", d, ok)
	}
	if _, ok := ParseWeekday("funday"); ok {
		t.Error("ParseWeekday(funday) should fail")
	}
}
