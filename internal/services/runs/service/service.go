// Package service provides the runs service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	perr "polesplit/internal/platform/errors"

	"polesplit/internal/modkit/repokit"
	"polesplit/internal/services/runs/domain"
	"polesplit/internal/services/runs/repo"
)

// Config for the runs service
type Config struct {
	// HardLimit is the maximum allowed limit per Recent call; defaults to 50 if <=0
	HardLimit int
}

// Svc implements domain.WriterPort and domain.ReaderPort
type Svc struct {
	db     repokit.TxRunner
	binder repokit.Binder[repo.Storage]
	cfg    Config

	now func() time.Time
}

// New constructs the runs service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Storage], cfg Config) *Svc {
	if db == nil {
		panic("runs.Svc requires a non-nil TxRunner")
	}
	if binder == nil {
		panic("runs.Svc requires a non-nil Storage binder")
	}
	if cfg.HardLimit <= 0 {
		cfg.HardLimit = 50
	}
	return &Svc{db: db, binder: binder, cfg: cfg, now: time.Now}
}

// Record implements domain.WriterPort
//
// Identity is assigned here, not by the caller: a zero ID gets a fresh
// uuid and a zero CreatedAt gets the current time
func (s *Svc) Record(ctx context.Context, run domain.Run) (domain.Run, error) {
	if run.Input == "" {
		return domain.Run{}, perr.InvalidArgf("run input is required")
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if _, err := uuid.Parse(run.ID); err != nil {
		return domain.Run{}, perr.InvalidArgf("run id %q is not a uuid", run.ID)
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now().UTC()
	}

	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		return s.binder.Bind(q).Insert(ctx, run)
	})
	if err != nil {
		return domain.Run{}, err
	}
	return run, nil
}

// Recent implements domain.ReaderPort
func (s *Svc) Recent(ctx context.Context, in domain.ListInput) ([]domain.Run, error) {
	limit := in.Limit
	if limit <= 0 || limit > s.cfg.HardLimit {
		limit = s.cfg.HardLimit
	}

	var out []domain.Run
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.binder.Bind(q).Recent(ctx, limit)
		return err
	})
	return out, err
}

// Get implements domain.ReaderPort
func (s *Svc) Get(ctx context.Context, id string) (domain.Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Run{}, perr.InvalidArgf("run id %q is not a uuid", id)
	}

	var run domain.Run
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		run, err = s.binder.Bind(q).Get(ctx, id)
		return err
	})
	return run, err
}
