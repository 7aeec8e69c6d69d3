package domain

import (
	"context"

	"polesplit/internal/core/pipeline"
)

// RunnerPort executes processing runs
type RunnerPort interface {
	// ProcessFile reads input, processes it and writes output
	ProcessFile(ctx context.Context, input, output string, opts FileOptions) (FileResult, error)
	// ProcessRows processes inline rows without touching the filesystem
	ProcessRows(ctx context.Context, rows []pipeline.Row, opts FileOptions) (RowsResult, error)
}
