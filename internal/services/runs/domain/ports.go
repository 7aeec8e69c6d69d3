package domain

import "context"

// WriterPort records completed runs
type WriterPort interface {
	Record(ctx context.Context, run Run) (Run, error)
}

// ReaderPort reads recorded runs back
type ReaderPort interface {
	Recent(ctx context.Context, in ListInput) ([]Run, error)
	Get(ctx context.Context, id string) (Run, error)
}
