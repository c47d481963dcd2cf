// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package logging provides centralized zerolog-based structured logging for Marquee.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", n).Msg("Catalog loaded")
//	logging.Ctx(ctx).Warn().Str("title", title).Msg("Title not in catalog")
//
// # Configuration
//
// Environment Variables (through internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Context-Aware Logging
//
// The HTTP layer stores a request ID and a short correlation ID on the request
// context. Ctx returns a logger carrying both:
//
//	logging.Ctx(ctx).Info().Msg("Recommendation served")
//	// {"level":"info","service":"marquee","correlation_id":"abc12345","request_id":"...","message":"..."}
//
// # slog Adapter
//
// Suture's event hook (sutureslog) requires an *slog.Logger; NewSlogLogger
// returns one that writes through zerolog.
//
// # Thread Safety
//
// All exported functions are safe for concurrent use. The global logger is
// held in an atomic.Pointer and swapped whole by Init and SetLogger.
package logging
