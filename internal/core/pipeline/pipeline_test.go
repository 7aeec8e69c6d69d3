package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// sampleRows mirrors a realistic batch: markers, bare pairs, a job
// number, an unparsed row and a duplicate pole number.
func sampleRows() []Row {
	raws := []string{
		"POLE TRANSFER 1237876 - 07613020",
		"3584096 - 10823022",
		"JAYSON POLE TRANSFER 3414407 - 7325119",
		"JB10452 switch audit",
		"3355758 - IPID 77731",
		"Plant Repair",
		"UG SPAN REPLACE 2841567 - 08451230",
		"POLE TRANSFER 1237876 - 07613020",
	}
	rows := make([]Row, len(raws))
	for i, r := range raws {
		rows[i] = Row{ID: fmt.Sprintf("r%02d", i), Raw: r}
	}
	return rows
}

func TestRun_FullPipeline(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	kept, rep, err := Run(rows, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// 8 in, minus 1 job number, minus 1 duplicate pole number
	if rep.InputRows != 8 || rep.OutputRows != 6 {
		t.Fatalf("rows %d -> %d, want 8 -> 6", rep.InputRows, rep.OutputRows)
	}
	if rep.JobNumberRows != 1 || rep.DuplicateRows != 1 {
		t.Fatalf("job=%d dup=%d, want 1 and 1", rep.JobNumberRows, rep.DuplicateRows)
	}
	if rep.RowsFiltered != rep.InputRows-rep.OutputRows {
		t.Fatalf("RowsFiltered %d inconsistent", rep.RowsFiltered)
	}
	if rep.UnparsedRows != 1 {
		t.Fatalf("unparsed = %d, want 1 (Plant Repair is retained)", rep.UnparsedRows)
	}
	if len(kept) != 6 {
		t.Fatalf("kept %d rows, want 6", len(kept))
	}

	// first occurrence of the duplicate pole number wins
	if kept[0].ID != "r00" {
		t.Fatalf("first kept row = %s, want r00", kept[0].ID)
	}
	for _, r := range kept {
		if r.ID == "r07" {
			t.Fatalf("duplicate row r07 survived")
		}
		if r.ID == "r03" {
			t.Fatalf("job-number row r03 survived")
		}
	}
}

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	kept, _, err := Run(rows, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	pos := make(map[string]int, len(rows))
	for i, r := range rows {
		pos[r.ID] = i
	}
	for i := 1; i < len(kept); i++ {
		if pos[kept[i-1].ID] >= pos[kept[i].ID] {
			t.Fatalf("order broken: %s before %s", kept[i-1].ID, kept[i].ID)
		}
	}
}

func TestRun_NoDedupeArithmetic(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	opts := DefaultOptions()
	opts.Deduplicate = false

	_, rep, err := Run(rows, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.OutputRows != rep.InputRows-rep.JobNumberRows {
		t.Fatalf("output %d != input %d - job rows %d", rep.OutputRows, rep.InputRows, rep.JobNumberRows)
	}
	if rep.DuplicateRows != 0 {
		t.Fatalf("dedupe disabled but DuplicateRows = %d", rep.DuplicateRows)
	}
}

func TestRun_FilterDisabled(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	opts := DefaultOptions()
	opts.FilterJobNumbers = false

	kept, rep, err := Run(rows, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.JobNumberRows != 0 {
		t.Fatalf("filter disabled but JobNumberRows = %d", rep.JobNumberRows)
	}
	found := false
	for _, r := range kept {
		if r.ID == "r03" {
			found = true
			if r.Fields.Parsed() {
				t.Fatalf("job-number row parsed unexpectedly: %+v", r.Fields)
			}
		}
	}
	if !found {
		t.Fatalf("job-number row dropped with filtering disabled")
	}
}

func TestRun_NoKeyNeverDropped(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{ID: "a", Raw: "Plant Repair"},
		{ID: "b", Raw: "Plant Repair"},
		{ID: "c", Raw: "Small Jobs"},
	}
	kept, rep, err := Run(rows, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(kept) != 3 || rep.DuplicateRows != 0 {
		t.Fatalf("unparsed rows were deduplicated: kept=%d dup=%d", len(kept), rep.DuplicateRows)
	}
	if rep.UnparsedRows != 3 {
		t.Fatalf("unparsed = %d, want 3", rep.UnparsedRows)
	}
}

func TestRun_DuplicateRowID(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{ID: "x", Raw: "1234567 - 1"},
		{ID: "x", Raw: "7654321 - 2"},
	}
	_, _, err := Run(rows, DefaultOptions())
	var iie *InvalidInputError
	if !errors.As(err, &iie) {
		t.Fatalf("err = %v, want InvalidInputError", err)
	}
}

func TestRun_BadPrefix(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions()
	opts.JobNumberPrefix = "J8"
	_, _, err := Run([]Row{{ID: "a", Raw: "x"}}, opts)
	var ice *InvalidConfigurationError
	if !errors.As(err, &ice) {
		t.Fatalf("err = %v, want InvalidConfigurationError", err)
	}
}

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()

	kept, rep, err := Run(nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(kept) != 0 || rep.InputRows != 0 || rep.OutputRows != 0 {
		t.Fatalf("empty input produced %+v", rep)
	}
}

// Larger batches exercise the worker pool while order still holds.
func TestRun_ManyRowsParallel(t *testing.T) {
	t.Parallel()

	const n = 5000
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			ID:  fmt.Sprintf("row-%04d", i),
			Raw: fmt.Sprintf("POLE TRANSFER %07d - %08d", 1000000+i, 10000000+i),
		}
	}
	opts := DefaultOptions()
	opts.Workers = 8

	kept, rep, err := Run(rows, opts)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(kept) != n || rep.OutputRows != n {
		t.Fatalf("kept %d, want %d", len(kept), n)
	}
	for i, r := range kept {
		if r.ID != rows[i].ID {
			t.Fatalf("row %d out of order: %s", i, r.ID)
		}
		if !r.Fields.Parsed() {
			t.Fatalf("row %s failed to parse", r.ID)
		}
	}
	if rep.UniquePoleNumbers != n {
		t.Fatalf("unique pole numbers = %d, want %d", rep.UniquePoleNumbers, n)
	}
}

func TestFormatReport_CoversEveryCounter(t *testing.T) {
	t.Parallel()

	_, rep, err := Run(sampleRows(), DefaultOptions())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := FormatReport(rep)
	for _, want := range []string{
		fmt.Sprintf("Rows Processed: %d -> %d", rep.InputRows, rep.OutputRows),
		fmt.Sprintf("Rows Filtered: %d", rep.RowsFiltered),
		fmt.Sprintf("Job Number Rows: %d", rep.JobNumberRows),
		fmt.Sprintf("Duplicate Pole Numbers: %d", rep.DuplicateRows),
		fmt.Sprintf("Rows with Marker Name:   %d", rep.RowsWithMarkerName),
		fmt.Sprintf("Rows with Engine Number: %d", rep.RowsWithEngineNumber),
		fmt.Sprintf("Rows with Pole Number:   %d", rep.RowsWithPoleNumber),
		fmt.Sprintf("Unique Markers:        %d", rep.UniqueMarkerNames),
		fmt.Sprintf("Unique Engine Numbers: %d", rep.UniqueEngineNumbers),
		fmt.Sprintf("Unique Pole Numbers:   %d", rep.UniquePoleNumbers),
		fmt.Sprintf("Unparsed Rows: %d", rep.UnparsedRows),
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q in:\n%s", want, out)
		}
	}

	if FormatReport(rep) != out {
		t.Fatalf("FormatReport is not deterministic")
	}
}
