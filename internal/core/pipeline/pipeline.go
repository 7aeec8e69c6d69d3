// Package pipeline composes splitting, job-number filtering and
// deduplication over an ordered row set and reports what happened
//
// Stage order is fixed: extract, filter, dedupe, report. Extraction
// always runs; the filter and dedupe stages are toggleable. Original
// row order is preserved except for rows actually removed
package pipeline

import (
	"sync"

	"polesplit/internal/core/dedupe"
	"polesplit/internal/core/jobnum"
	"polesplit/internal/core/splitter"
)

// Row is one input row: a stable identity plus the raw marker text
type Row struct {
	ID  string `json:"id"`
	Raw string `json:"raw"`
}

// ResultRow pairs a kept row with its extracted fields
type ResultRow struct {
	ID     string          `json:"id"`
	Raw    string          `json:"raw"`
	Fields splitter.Fields `json:"fields"`
}

// Options controls the optional stages
type Options struct {
	// FilterJobNumbers removes rows carrying a job-number token
	FilterJobNumbers bool
	// Deduplicate drops repeats of an already-seen pole number
	Deduplicate bool
	// JobNumberPrefix overrides jobnum.DefaultPrefix when non-empty
	JobNumberPrefix string
	// Workers bounds parallel extraction; <=0 means DefaultWorkers
	Workers int
}

// DefaultWorkers bounds extraction concurrency when Options.Workers is unset
const DefaultWorkers = 4

// DefaultOptions returns the stock configuration: both stages on
func DefaultOptions() Options {
	return Options{FilterJobNumbers: true, Deduplicate: true}
}

// InvalidInputError reports a malformed input row sequence
type InvalidInputError struct{ Reason string }

func (e *InvalidInputError) Error() string { return "pipeline: invalid input: " + e.Reason }

// InvalidConfigurationError reports an unusable Options value
type InvalidConfigurationError struct{ Reason string }

func (e *InvalidConfigurationError) Error() string {
	return "pipeline: invalid configuration: " + e.Reason
}

// rowEval is the per-row outcome of the parallel stage
type rowEval struct {
	fields splitter.Fields
	job    bool
}

// Run executes the pipeline over rows and returns the kept rows in
// original order plus the report.
//
// Row IDs must be unique; a repeat violates the ordering contract and
// fails the whole invocation. Unparsed rows are not errors: they flow
// through with absent fields and surface only in the report
func Run(rows []Row, opts Options) ([]ResultRow, Report, error) {
	prefix := opts.JobNumberPrefix
	if prefix == "" {
		prefix = jobnum.DefaultPrefix
	}
	matcher, err := jobnum.NewWithPrefix(prefix)
	if err != nil {
		return nil, Report{}, &InvalidConfigurationError{Reason: err.Error()}
	}

	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if _, dup := seen[r.ID]; dup {
			return nil, Report{}, &InvalidInputError{Reason: "duplicate row id " + r.ID}
		}
		seen[r.ID] = struct{}{}
	}

	evals := evaluate(rows, matcher, opts.Workers)

	afterFilter := make([]ResultRow, 0, len(rows))
	jobRows := 0
	for i, r := range rows {
		if opts.FilterJobNumbers && evals[i].job {
			jobRows++
			continue
		}
		afterFilter = append(afterFilter, ResultRow{ID: r.ID, Raw: r.Raw, Fields: evals[i].fields})
	}

	kept := afterFilter
	dupRows := 0
	if opts.Deduplicate {
		set := dedupe.NewSet()
		kept = make([]ResultRow, 0, len(afterFilter))
		for _, r := range afterFilter {
			if set.Admit(r.Fields.PoleNumber) {
				kept = append(kept, r)
				continue
			}
			dupRows++
		}
	}

	return kept, buildReport(len(rows), jobRows, dupRows, kept), nil
}

// evaluate runs the per-row pure functions across workers and rejoins
// results in input order by index
func evaluate(rows []Row, matcher *jobnum.Matcher, workers int) []rowEval {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	evals := make([]rowEval, len(rows))
	sem := make(chan struct{}, workers)
	wg := sync.WaitGroup{}

	for i := range rows {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			evals[i] = rowEval{
				fields: splitter.Split(rows[i].Raw),
				job:    matcher.Match(rows[i].Raw),
			}
		}(i)
	}
	wg.Wait()

	return evals
}
