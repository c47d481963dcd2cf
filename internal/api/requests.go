// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/marquee/internal/validation"
)

// TitleRequest identifies a catalog title.
type TitleRequest struct {
	Title string `json:"title" validate:"notblank,max=500"`
}

// SimilarRequest asks for the k titles most similar to Title.
type SimilarRequest struct {
	Title string `json:"title" validate:"notblank,max=500"`
	K     int    `json:"k" validate:"min=1"`
}

// PersonRequest identifies an actor or director.
type PersonRequest struct {
	Name string `json:"name" validate:"notblank,max=200"`
}

// MonthRequest names a Spanish month.
type MonthRequest struct {
	Month string `json:"month" validate:"notblank,max=32"`
}

// DayRequest names a Spanish weekday.
type DayRequest struct {
	Day string `json:"day" validate:"notblank,max=32"`
}

// pathParam returns the decoded URL parameter. chi matches on the raw path
// when it is set, so escaped separators such as %2F arrive still encoded.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// parseK reads the optional k query parameter. Missing means def.
func parseK(r *http.Request, def int) (int, bool) {
	v := r.URL.Query().Get("k")
	if v == "" {
		return def, true
	}
	k, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return k, true
}

// validateRequest validates req and writes a 400 on failure.
func validateRequest(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	verr := validation.ValidateStruct(req)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
	return false
}
