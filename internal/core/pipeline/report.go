package pipeline

import (
	"fmt"
	"strings"
)

// Report is an immutable snapshot of pipeline counters, built once at
// the end of a run. Per-field presence and distinct-value counts are
// computed over the output rows
type Report struct {
	InputRows    int `json:"input_rows"`
	OutputRows   int `json:"output_rows"`
	RowsFiltered int `json:"rows_filtered"`

	JobNumberRows int `json:"job_number_rows"`
	DuplicateRows int `json:"duplicate_rows"`

	RowsWithMarkerName   int `json:"rows_with_marker_name"`
	RowsWithEngineNumber int `json:"rows_with_engine_number"`
	RowsWithPoleNumber   int `json:"rows_with_pole_number"`

	UniqueMarkerNames   int `json:"unique_marker_names"`
	UniqueEngineNumbers int `json:"unique_engine_numbers"`
	UniquePoleNumbers   int `json:"unique_pole_numbers"`

	UnparsedRows int `json:"unparsed_rows"`
}

func buildReport(input, jobRows, dupRows int, kept []ResultRow) Report {
	r := Report{
		InputRows:     input,
		OutputRows:    len(kept),
		RowsFiltered:  input - len(kept),
		JobNumberRows: jobRows,
		DuplicateRows: dupRows,
	}

	markers := map[string]struct{}{}
	engines := map[string]struct{}{}
	poles := map[string]struct{}{}

	for _, row := range kept {
		f := row.Fields
		if f.HasMarkerName() {
			r.RowsWithMarkerName++
			markers[f.MarkerName] = struct{}{}
		}
		if f.EngineNumber != "" {
			r.RowsWithEngineNumber++
			engines[f.EngineNumber] = struct{}{}
		}
		if f.PoleNumber != "" {
			r.RowsWithPoleNumber++
			poles[f.PoleNumber] = struct{}{}
		}
		if !f.Parsed() {
			r.UnparsedRows++
		}
	}

	r.UniqueMarkerNames = len(markers)
	r.UniqueEngineNumbers = len(engines)
	r.UniquePoleNumbers = len(poles)

	return r
}

// FormatReport renders a Report as a human-readable block covering
// every counter. Deterministic: same report, same text
func FormatReport(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Rows Processed: %d -> %d\n", r.InputRows, r.OutputRows)
	fmt.Fprintf(&b, "Rows Filtered: %d\n", r.RowsFiltered)
	fmt.Fprintf(&b, "  - Job Number Rows: %d\n", r.JobNumberRows)
	fmt.Fprintf(&b, "  - Duplicate Pole Numbers: %d\n", r.DuplicateRows)
	b.WriteString("Successfully Parsed:\n")
	fmt.Fprintf(&b, "  - Rows with Marker Name:   %d\n", r.RowsWithMarkerName)
	fmt.Fprintf(&b, "  - Rows with Engine Number: %d\n", r.RowsWithEngineNumber)
	fmt.Fprintf(&b, "  - Rows with Pole Number:   %d\n", r.RowsWithPoleNumber)
	b.WriteString("Unique Values:\n")
	fmt.Fprintf(&b, "  - Unique Markers:        %d\n", r.UniqueMarkerNames)
	fmt.Fprintf(&b, "  - Unique Engine Numbers: %d\n", r.UniqueEngineNumbers)
	fmt.Fprintf(&b, "  - Unique Pole Numbers:   %d\n", r.UniquePoleNumbers)
	fmt.Fprintf(&b, "Unparsed Rows: %d\n", r.UnparsedRows)

	return b.String()
}
