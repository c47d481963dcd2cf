// Marquee - Movie Catalog Queries and Content Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation provides request validation using go-playground/validator v10.
//
// A single validator instance is created lazily and shared; it caches struct
// metadata and is safe for concurrent use. Field names in errors come from the
// struct's json tag, so messages match the names clients send.
//
// Custom tags:
//   - notblank: the string contains a non-whitespace character
//
// Example:
//
//	type SimilarRequest struct {
//	    Title string `json:"title" validate:"notblank,max=300"`
//	    K     int    `json:"k" validate:"min=1,max=50"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code, apiErr.Message, apiErr.Details
//	}
package validation
