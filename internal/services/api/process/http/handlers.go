// Package http provides http transport for processing
package http

import (
	stdhttp "net/http"

	"polesplit/internal/core/splitter"
	"polesplit/internal/modkit/httpkit"
	"polesplit/internal/services/api/process/domain"
	procdom "polesplit/internal/services/process/domain"
)

// Register mounts process endpoints on the given router
func Register(r httpkit.Router, runner procdom.RunnerPort) {
	h := &handlers{runner: runner}

	// full pipeline over inline rows
	httpkit.PostJSON[domain.RowsRequest](r, "/rows", h.rows)

	// single-string field extraction, no filtering or dedupe
	httpkit.PostJSON[domain.SplitRequest](r, "/split", h.split)
}

type handlers struct{ runner procdom.RunnerPort }

func (h *handlers) rows(r *stdhttp.Request, in domain.RowsRequest) (any, error) {
	res, err := h.runner.ProcessRows(r.Context(), in.PipelineRows(), procdom.FileOptions{
		KeepJobNumbers: in.KeepJobNumbers,
		NoDedupe:       in.NoDedupe,
		Prefix:         in.Prefix,
		Workers:        in.Workers,
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (h *handlers) split(_ *stdhttp.Request, in domain.SplitRequest) (any, error) {
	f := splitter.Split(in.Raw)
	return domain.SplitResponse{
		MarkerName:   f.MarkerName,
		EngineNumber: f.EngineNumber,
		PoleNumber:   f.PoleNumber,
		Parsed:       f.Parsed(),
	}, nil
}
