// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package query answers filter and aggregate questions over the catalog:
// release counts by Spanish month or weekday name, score and vote lookups by
// title, and return statistics for actors and directors.
//
// Month and day names are matched ignoring case and accents, so "miércoles",
// "MIERCOLES" and "Miercoles" are equivalent. Person names are matched the
// same way. Titles follow the catalog rule: case-insensitive, first position
// wins.
//
// A Service precomputes its lookup tables in New and is read-only afterwards;
// it is safe for concurrent use.
package query
