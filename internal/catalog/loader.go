// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/marquee/internal/logging"
)

// ErrUnsupportedFormat is returned for dataset files that are not CSV, TSV or Parquet.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// LoadOptions configures Load.
type LoadOptions struct {
	// Path is the dataset file.
	Path string

	// Format overrides detection by extension: csv, tsv or parquet.
	Format string

	// Threads is the DuckDB worker count. 0 uses runtime.NumCPU().
	Threads int

	// MaxMemory caps DuckDB memory, e.g. "1GB". Empty uses the DuckDB default.
	MaxMemory string
}

// column describes how one Movie field is read from the dataset.
// expr receives the quoted source column name.
type column struct {
	name string
	expr func(col string) string
}

// columns lists the dataset schema in scan order. Only title is required.
var columns = []column{
	{"id", varcharExpr},
	{"title", varcharExpr},
	{"release_date", func(c string) string { return "TRY_CAST(" + c + " AS DATE)" }},
	{"release_year", func(c string) string { return "COALESCE(TRY_CAST(" + c + " AS INTEGER), 0)" }},
	{"popularity", doubleExpr},
	{"vote_average", doubleExpr},
	{"vote_count", func(c string) string { return "COALESCE(TRY_CAST(TRY_CAST(" + c + " AS DOUBLE) AS BIGINT), 0)" }},
	{"budget", doubleExpr},
	{"revenue", doubleExpr},
	{"return", doubleExpr},
	{"genres", varcharExpr},
	{"actors", varcharExpr},
	{"directors", varcharExpr},
	{"overview", varcharExpr},
	{"combined_text", varcharExpr},
}

func varcharExpr(c string) string { return "COALESCE(CAST(" + c + " AS VARCHAR), '')" }
func doubleExpr(c string) string  { return "COALESCE(TRY_CAST(" + c + " AS DOUBLE), 0)" }

// Load reads the dataset at opts.Path into a Store.
func Load(ctx context.Context, opts LoadOptions) (*Store, error) {
	start := time.Now()

	source, err := sourceExpr(opts.Path, opts.Format)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(opts.Path); err != nil {
		return nil, fmt.Errorf("catalog file: %w", err)
	}

	conn, err := openDuckDB(opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Error closing catalog loader database")
		}
	}()

	present, err := describeColumns(ctx, conn, source)
	if err != nil {
		return nil, err
	}
	if !present["title"] {
		return nil, fmt.Errorf("catalog %s: missing required column %q", opts.Path, "title")
	}

	movies, err := scanMovies(ctx, conn, buildSelect(source, present))
	if err != nil {
		return nil, err
	}

	store, err := NewStore(movies)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", opts.Path, err)
	}

	logging.Info().
		Str("path", opts.Path).
		Int("movies", store.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Catalog loaded")

	return store, nil
}

// openDuckDB opens an in-memory DuckDB tuned for a one-off scan.
func openDuckDB(opts LoadOptions) (*sql.DB, error) {
	threads := opts.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	// Extension auto-install is disabled; csv and parquet readers are built in.
	connStr := fmt.Sprintf(":memory:?threads=%d&preserve_insertion_order=true&autoinstall_known_extensions=false&autoload_known_extensions=false", threads)
	if opts.MaxMemory != "" {
		connStr += "&max_memory=" + opts.MaxMemory
	}

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb: %w", err)
	}
	// A single connection keeps insertion order deterministic.
	conn.SetMaxOpenConns(1)
	return conn, nil
}

// sourceExpr returns the DuckDB table function that reads path.
func sourceExpr(path, format string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("catalog path is empty")
	}

	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	quoted := quoteLiteral(path)
	switch strings.ToLower(format) {
	case "csv":
		return "read_csv_auto(" + quoted + ", header = true, all_varchar = true)", nil
	case "tsv":
		return "read_csv_auto(" + quoted + ", header = true, all_varchar = true, delim = '\t')", nil
	case "parquet":
		return "read_parquet(" + quoted + ")", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// describeColumns returns the lower-cased column names of source.
func describeColumns(ctx context.Context, conn *sql.DB, source string) (map[string]bool, error) {
	rows, err := conn.QueryContext(ctx, "SELECT * FROM "+source+" LIMIT 0")
	if err != nil {
		return nil, fmt.Errorf("failed to describe catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to describe catalog: %w", err)
	}

	present := make(map[string]bool, len(names))
	for _, name := range names {
		present[strings.ToLower(name)] = true
	}
	return present, nil
}

// buildSelect builds the scan query. Absent optional columns are read as NULL
// so every row scans into the same shape.
func buildSelect(source string, present map[string]bool) string {
	exprs := make([]string, len(columns))
	for i, c := range columns {
		src := "NULL"
		if present[c.name] {
			src = quoteIdent(c.name)
		}
		exprs[i] = c.expr(src)
	}
	return "SELECT " + strings.Join(exprs, ", ") + " FROM " + source
}

// scanMovies runs query and decodes every row in insertion order.
func scanMovies(ctx context.Context, conn *sql.DB, query string) ([]Movie, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to scan catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var movies []Movie
	for rows.Next() {
		var (
			m                         Movie
			releaseDate               sql.NullTime
			voteCount                 int64
			genres, actors, directors string
		)
		if err := rows.Scan(
			&m.ID,
			&m.Title,
			&releaseDate,
			&m.ReleaseYear,
			&m.Popularity,
			&m.VoteAverage,
			&voteCount,
			&m.Budget,
			&m.Revenue,
			&m.Return,
			&genres,
			&actors,
			&directors,
			&m.Overview,
			&m.CombinedText,
		); err != nil {
			return nil, fmt.Errorf("failed to decode catalog row %d: %w", len(movies), err)
		}

		if releaseDate.Valid {
			m.ReleaseDate = releaseDate.Time.UTC()
		}
		m.VoteCount = int(voteCount)
		m.Genres = splitList(genres)
		m.Actors = splitList(actors)
		m.Directors = splitList(directors)

		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan catalog: %w", err)
	}

	return movies, nil
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
