// Package domain defines the transport DTOs for the process API
package domain

import "polesplit/internal/core/pipeline"

// RowInput is one inline row to process
type RowInput struct {
	ID  string `json:"id" validate:"required"`
	Raw string `json:"raw"`
}

// RowsRequest asks for an inline rows run
type RowsRequest struct {
	Rows []RowInput `json:"rows" validate:"required,min=1,dive"`

	KeepJobNumbers bool   `json:"keep_job_numbers"`
	NoDedupe       bool   `json:"no_dedupe"`
	Prefix         string `json:"prefix" validate:"omitempty,alpha_prefix"`
	Workers        int    `json:"workers" validate:"omitempty,min=1,max=64"`
}

// PipelineRows converts the request rows to pipeline input
func (r RowsRequest) PipelineRows() []pipeline.Row {
	rows := make([]pipeline.Row, len(r.Rows))
	for i, in := range r.Rows {
		rows[i] = pipeline.Row{ID: in.ID, Raw: in.Raw}
	}
	return rows
}

// SplitRequest asks for a single raw string split
type SplitRequest struct {
	Raw string `json:"raw" validate:"required"`
}

// SplitResponse carries the extracted fields for one raw string
type SplitResponse struct {
	MarkerName   string `json:"marker_name"`
	EngineNumber string `json:"engine_number"`
	PoleNumber   string `json:"pole_number"`
	Parsed       bool   `json:"parsed"`
}
