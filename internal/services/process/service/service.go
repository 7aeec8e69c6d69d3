// Package service provides the process service implementation
package service

import (
	"context"
	"strconv"
	"time"

	"polesplit/internal/platform/logger"

	"polesplit/internal/adapters/tabular"
	"polesplit/internal/core/pipeline"
	"polesplit/internal/services/process/domain"
	runsdom "polesplit/internal/services/runs/domain"
)

// Output column names appended to every processed table
const (
	ColumnMarkerName   = "Marker_Name"
	ColumnEngineNumber = "Engine_Number"
	ColumnPoleNumber   = "Pole_Number"
)

// Config for the process service
type Config struct {
	// Workers is the default extraction parallelism when a run does not set one
	Workers int
	// Prefix is the default job-number prefix when a run does not set one
	Prefix string
}

// Svc implements domain.RunnerPort
//
// Runs is optional: when nil, completed runs are simply not recorded
type Svc struct {
	runs runsdom.WriterPort
	log  logger.Logger
	cfg  Config

	now func() time.Time
}

// New constructs the process service
func New(runs runsdom.WriterPort, log logger.Logger, cfg Config) *Svc {
	if cfg.Workers <= 0 {
		cfg.Workers = pipeline.DefaultWorkers
	}
	return &Svc{runs: runs, log: log, cfg: cfg, now: time.Now}
}

// ProcessFile implements domain.RunnerPort
func (s *Svc) ProcessFile(ctx context.Context, input, output string, opts domain.FileOptions) (domain.FileResult, error) {
	start := s.now()

	table, err := tabular.ReadFile(input, opts.Sheet)
	if err != nil {
		return domain.FileResult{}, err
	}

	column := opts.Column
	if column == "" {
		if column, err = tabular.DetectMarkerColumn(table); err != nil {
			return domain.FileResult{}, err
		}
	}
	if err := tabular.Validate(table, column); err != nil {
		return domain.FileResult{}, err
	}

	rows := make([]pipeline.Row, len(table.Rows))
	for i := range table.Rows {
		rows[i] = pipeline.Row{ID: strconv.Itoa(i), Raw: table.Cell(i, column)}
	}

	kept, report, err := pipeline.Run(rows, s.pipelineOptions(opts))
	if err != nil {
		return domain.FileResult{}, err
	}

	out := mergeTable(table, column, kept, opts.KeepOriginal)

	backupPath := ""
	if !opts.NoBackup {
		if backupPath, err = tabular.Backup(output); err != nil {
			return domain.FileResult{}, err
		}
	}
	if err := tabular.WriteFile(output, out, tabular.DefaultSheet); err != nil {
		return domain.FileResult{}, err
	}

	elapsed := s.now().Sub(start)
	s.log.Info().
		Str("input", input).
		Str("output", output).
		Str("column", column).
		Int("rows_in", report.InputRows).
		Int("rows_out", report.OutputRows).
		Dur("elapsed", elapsed).
		Msg("file processed")

	res := domain.FileResult{
		Report:     report,
		Column:     column,
		OutputPath: output,
		BackupPath: backupPath,
	}
	res.RunID = s.record(ctx, runsdom.Run{
		Input:     input,
		Output:    output,
		Column:    column,
		Sheet:     opts.Sheet,
		ElapsedMs: elapsed.Milliseconds(),
		Report:    report,
	})
	return res, nil
}

// ProcessRows implements domain.RunnerPort
func (s *Svc) ProcessRows(ctx context.Context, rows []pipeline.Row, opts domain.FileOptions) (domain.RowsResult, error) {
	start := s.now()

	kept, report, err := pipeline.Run(rows, s.pipelineOptions(opts))
	if err != nil {
		return domain.RowsResult{}, err
	}

	elapsed := s.now().Sub(start)
	s.log.Debug().
		Int("rows_in", report.InputRows).
		Int("rows_out", report.OutputRows).
		Dur("elapsed", elapsed).
		Msg("rows processed")

	res := domain.RowsResult{Rows: kept, Report: report}
	res.RunID = s.record(ctx, runsdom.Run{
		Input:     "(inline)",
		ElapsedMs: elapsed.Milliseconds(),
		Report:    report,
	})
	return res, nil
}

func (s *Svc) pipelineOptions(opts domain.FileOptions) pipeline.Options {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = s.cfg.Prefix
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = s.cfg.Workers
	}
	return pipeline.Options{
		FilterJobNumbers: !opts.KeepJobNumbers,
		Deduplicate:      !opts.NoDedupe,
		JobNumberPrefix:  prefix,
		Workers:          workers,
	}
}

// record persists the run when a writer is wired; failures are logged,
// never surfaced, so history never breaks a processing run
func (s *Svc) record(ctx context.Context, run runsdom.Run) string {
	if s.runs == nil {
		return ""
	}
	saved, err := s.runs.Record(ctx, run)
	if err != nil {
		s.log.Warn().Err(err).Msg("run history write failed")
		return ""
	}
	return saved.ID
}

// mergeTable builds the output table: the surviving original rows plus
// the three extracted columns, with the raw column optionally dropped
func mergeTable(t *tabular.Table, column string, kept []pipeline.ResultRow, keepOriginal bool) *tabular.Table {
	out := &tabular.Table{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, 0, len(kept)),
	}
	for _, k := range kept {
		i, _ := strconv.Atoi(k.ID)
		out.Rows = append(out.Rows, append([]string(nil), t.Rows[i]...))
	}

	markers := make([]string, len(kept))
	engines := make([]string, len(kept))
	poles := make([]string, len(kept))
	for i, k := range kept {
		markers[i] = k.Fields.MarkerName
		engines[i] = k.Fields.EngineNumber
		poles[i] = k.Fields.PoleNumber
	}
	out.AddColumn(ColumnMarkerName, markers)
	out.AddColumn(ColumnEngineNumber, engines)
	out.AddColumn(ColumnPoleNumber, poles)

	if !keepOriginal {
		out.DropColumn(column)
	}
	return out
}
