// Package domain defines the types and interfaces for the process service
package domain

import "polesplit/internal/core/pipeline"

// FileOptions controls one file-to-file processing run
type FileOptions struct {
	// Column names the marker column; empty means auto-detect
	Column string
	// Sheet names the workbook sheet to read; csv inputs ignore it
	Sheet string
	// KeepOriginal retains the raw marker column in the output
	KeepOriginal bool
	// NoDedupe disables the duplicate pole-number stage
	NoDedupe bool
	// KeepJobNumbers disables the job-number filter stage
	KeepJobNumbers bool
	// NoBackup skips the timestamped copy of an existing output file
	NoBackup bool
	// Prefix overrides the job-number prefix; empty means the default
	Prefix string
	// Workers bounds parallel extraction
	Workers int
}

// FileResult is the outcome of a file-to-file run
type FileResult struct {
	Report     pipeline.Report `json:"report"`
	Column     string          `json:"column"`
	OutputPath string          `json:"output_path"`
	BackupPath string          `json:"backup_path,omitempty"`
	RunID      string          `json:"run_id,omitempty"`
}

// RowsResult is the outcome of an inline rows run
type RowsResult struct {
	Rows   []pipeline.ResultRow `json:"rows"`
	Report pipeline.Report      `json:"report"`
	RunID  string               `json:"run_id,omitempty"`
}
