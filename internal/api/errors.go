// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/metrics"
	"github.com/tomtom215/marquee/internal/query"
	"github.com/tomtom215/marquee/internal/recommend"
)

// domainError is the HTTP rendering of a service error.
type domainError struct {
	status  int
	code    string
	outcome string
}

// classify maps a service error to its HTTP status, error code and metric outcome.
func classify(err error) domainError {
	switch {
	case errors.Is(err, recommend.ErrNotFound),
		errors.Is(err, query.ErrTitleNotFound),
		errors.Is(err, query.ErrPersonNotFound):
		return domainError{http.StatusNotFound, ErrCodeNotFound, metrics.OutcomeNotFound}
	case errors.Is(err, query.ErrInvalidMonth):
		return domainError{http.StatusBadRequest, ErrCodeInvalidMonth, metrics.OutcomeInvalid}
	case errors.Is(err, query.ErrInvalidDay):
		return domainError{http.StatusBadRequest, ErrCodeInvalidDay, metrics.OutcomeInvalid}
	case errors.Is(err, query.ErrInsufficientVotes):
		return domainError{http.StatusUnprocessableEntity, ErrCodeInsufficientVotes, metrics.OutcomeInvalid}
	case errors.Is(err, context.DeadlineExceeded):
		return domainError{http.StatusGatewayTimeout, ErrCodeTimeout, metrics.OutcomeError}
	case errors.Is(err, context.Canceled):
		return domainError{http.StatusServiceUnavailable, ErrCodeServiceUnavailable, metrics.OutcomeError}
	default:
		return domainError{http.StatusInternalServerError, ErrCodeInternalError, metrics.OutcomeError}
	}
}

// writeDomainError renders err and returns the metric outcome it maps to.
// Internal errors are logged and replaced with a generic message.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) string {
	de := classify(err)

	msg := err.Error()
	if de.status == http.StatusInternalServerError {
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		msg = "Internal server error"
	}

	NewResponseWriter(w, r).Error(de.status, de.code, msg)
	return de.outcome
}
