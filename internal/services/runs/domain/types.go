// Package domain defines the types and interfaces for the runs service
package domain

import (
	"time"

	"polesplit/internal/core/pipeline"
)

// Run is one recorded processing run with its report counters
type Run struct {
	ID        string    `json:"id"` // uuid
	CreatedAt time.Time `json:"created_at"`

	Input  string `json:"input"`
	Output string `json:"output"`
	Column string `json:"column"`
	Sheet  string `json:"sheet,omitempty"`

	ElapsedMs int64 `json:"elapsed_ms"`

	Report pipeline.Report `json:"report"`
}

// ListInput narrows a Recent call
type ListInput struct {
	Limit int
}
