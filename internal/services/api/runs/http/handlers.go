// Package http provides http transport for run history
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"polesplit/internal/modkit/httpkit"
	runsdom "polesplit/internal/services/runs/domain"
)

// Register mounts run history endpoints on the given router
func Register(r httpkit.Router, reader runsdom.ReaderPort) {
	h := &handlers{reader: reader}

	// most recent runs, newest first
	httpkit.Get(r, "/", h.recent)

	// one run by id
	httpkit.Get(r, "/{id}", h.get)
}

type handlers struct{ reader runsdom.ReaderPort }

func (h *handlers) recent(r *stdhttp.Request) (any, error) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}
	runs, err := h.reader.Recent(r.Context(), runsdom.ListInput{Limit: limit})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.reader.Get(r.Context(), chi.URLParam(r, "id"))
}
