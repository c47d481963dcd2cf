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

// Actor handles GET /api/v1/people/actors/{name}.
func (h *Handler) Actor(w http.ResponseWriter, r *http.Request) {
	req := PersonRequest{Name: pathParam(r, "name")}
	if !validateRequest(w, r, &req) {
		metrics.RecordQuery(opActor, metrics.OutcomeInvalid)
		return
	}
	serveQuery(w, r, opActor, func() (query.ActorStats, error) {
		return h.queries.Actor(req.Name)
	})
}

// Director handles GET /api/v1/people/directors/{name}.
func (h *Handler) Director(w http.ResponseWriter, r *http.Request) {
	req := PersonRequest{Name: pathParam(r, "name")}
	if !validateRequest(w, r, &req) {
		metrics.RecordQuery(opDirector, metrics.OutcomeInvalid)
		return
	}
	serveQuery(w, r, opDirector, func() (query.DirectorStats, error) {
		return h.queries.Director(req.Name)
	})
}
