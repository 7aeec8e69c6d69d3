// Package repo provides the runs repository implementation.
package repo

import (
	"context"

	perr "polesplit/internal/platform/errors"
	pstr "polesplit/internal/platform/strings"

	"polesplit/internal/modkit/repokit"
	"polesplit/internal/services/runs/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the runs repository
type Storage interface {
	Insert(ctx context.Context, run domain.Run) error
	Recent(ctx context.Context, limit int) ([]domain.Run, error)
	Get(ctx context.Context, id string) (domain.Run, error)
}

const runColumns = `
	id::text, created_at, input_path, output_path, marker_column, COALESCE(sheet_name, ''),
	elapsed_ms,
	input_rows, output_rows, rows_filtered, job_number_rows, duplicate_rows,
	rows_with_marker_name, rows_with_engine_number, rows_with_pole_number,
	unique_marker_names, unique_engine_numbers, unique_pole_numbers,
	unparsed_rows`

// Insert implements Storage
func (s *pg) Insert(ctx context.Context, run domain.Run) error {
	const q = `
		INSERT INTO process_runs
			(id, created_at, input_path, output_path, marker_column, sheet_name,
			elapsed_ms,
			input_rows, output_rows, rows_filtered, job_number_rows, duplicate_rows,
			rows_with_marker_name, rows_with_engine_number, rows_with_pole_number,
			unique_marker_names, unique_engine_numbers, unique_pole_numbers,
			unparsed_rows)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`

	r := run.Report
	_, err := s.q.Exec(ctx, q,
		run.ID, run.CreatedAt, run.Input, run.Output, run.Column, pstr.SQLNull(run.Sheet),
		run.ElapsedMs,
		r.InputRows, r.OutputRows, r.RowsFiltered, r.JobNumberRows, r.DuplicateRows,
		r.RowsWithMarkerName, r.RowsWithEngineNumber, r.RowsWithPoleNumber,
		r.UniqueMarkerNames, r.UniqueEngineNumbers, r.UniquePoleNumbers,
		r.UnparsedRows,
	)
	if err != nil {
		return perr.FromPostgres(err, "insert run")
	}
	return nil
}

// Recent implements Storage
func (s *pg) Recent(ctx context.Context, limit int) ([]domain.Run, error) {
	q := `SELECT` + runColumns + `
		FROM process_runs
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	rows, err := s.q.Query(ctx, q, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list runs")
	}
	defer rows.Close()

	out := make([]domain.Run, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Get implements Storage
func (s *pg) Get(ctx context.Context, id string) (domain.Run, error) {
	q := `SELECT` + runColumns + `
		FROM process_runs
		WHERE id = $1::uuid`

	rows, err := s.q.Query(ctx, q, id)
	if err != nil {
		return domain.Run{}, perr.FromPostgres(err, "get run")
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.Run{}, perr.FromPostgres(err, "get run")
		}
		return domain.Run{}, perr.NotFoundf("run %s not found", id)
	}
	return scanRun(rows)
}

type scanner interface{ Scan(dest ...any) error }

func scanRun(sc scanner) (domain.Run, error) {
	var run domain.Run
	r := &run.Report
	err := sc.Scan(
		&run.ID, &run.CreatedAt, &run.Input, &run.Output, &run.Column, &run.Sheet,
		&run.ElapsedMs,
		&r.InputRows, &r.OutputRows, &r.RowsFiltered, &r.JobNumberRows, &r.DuplicateRows,
		&r.RowsWithMarkerName, &r.RowsWithEngineNumber, &r.RowsWithPoleNumber,
		&r.UniqueMarkerNames, &r.UniqueEngineNumbers, &r.UniquePoleNumbers,
		&r.UnparsedRows,
	)
	if err != nil {
		return domain.Run{}, perr.FromPostgres(err, "scan run")
	}
	return run, nil
}
