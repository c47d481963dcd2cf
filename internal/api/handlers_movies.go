// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/query"
)

// Query operation labels.
const (
	opMonth    = "month"
	opDay      = "day"
	opScore    = "score"
	opVotes    = "votes"
	opActor    = "actor"
	opDirector = "director"
)

// serveQuery runs fn and writes its result, recording the outcome under op.
func serveQuery[T any](w http.ResponseWriter, r *http.Request, op string, fn func() (T, error)) {
	result, err := fn()
	if err != nil {
		metrics.RecordQuery(op, writeDomainError(w, r, err))
		return
	}
	metrics.RecordQuery(op, metrics.OutcomeOK)
	WriteSuccess(w, r, result)
}

// FilmsByMonth handles GET /api/v1/movies/months/{month}.
func (h *Handler) FilmsByMonth(w http.ResponseWriter, r *http.Request) {
	req := MonthRequest{Month: pathParam(r, "month")}
	if !validateRequest(w, r, &req) {
		metrics.RecordQuery(opMonth, metrics.OutcomeInvalid)
		return
	}
	serveQuery(w, r, opMonth, func() (query.MonthCount, error) {
		return h.queries.FilmsByMonth(req.Month)
	})
}

// FilmsByDay handles GET /api/v1/movies/days/{day}.
func (h *Handler) FilmsByDay(w http.ResponseWriter, r *http.Request) {
	req := DayRequest{Day: pathParam(r, "day")}
	if !validateRequest(w, r, &req) {
		metrics.RecordQuery(opDay, metrics.OutcomeInvalid)
		return
	}
	serveQuery(w, r, opDay, func() (query.DayCount, error) {
		return h.queries.FilmsByDay(req.Day)
	})
}

// ScoreByTitle handles GET /api/v1/movies/titles/{title}/score.
func (h *Handler) ScoreByTitle(w http.ResponseWriter, r *http.Request) {
	req := TitleRequest{Title: pathParam(r, "title")}
	if !validateRequest(w, r, &req) {
		metrics.RecordQuery(opScore, metrics.OutcomeInvalid)
		return
	}
	serveQuery(w, r, opScore, func() (query.TitleScore, error) {
		return h.queries.ScoreByTitle(req.Title)
	})
}

// VotesByTitle handles GET /api/v1/movies/titles/{title}/votes.
// Titles below the vote threshold return 422.
func (h *Handler) VotesByTitle(w http.ResponseWriter, r *http.Request) {
	req := TitleRequest{Title: pathParam(r, "title")}
	if !validateRequest(w, r, &req) {
		metrics.RecordQuery(opVotes, metrics.OutcomeInvalid)
		return
	}
	serveQuery(w, r, opVotes, func() (query.TitleVotes, error) {
		return h.queries.VotesByTitle(req.Title)
	})
}
