// Package tabular reads and writes the spreadsheet shaped files the
// processing service consumes: CSV via encoding/csv and XLSX via excelize.
// A Table is a header row plus string cells; type interpretation is left
// to callers.
package tabular

import (
	"strings"

	perr "polesplit/internal/platform/errors"
)

// Table is an in-memory spreadsheet: one header row and zero or more data rows.
// Rows are padded or truncated to the header width on read.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of name in Columns
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Cell returns the value at (row, col name); empty string when out of range
func (t *Table) Cell(row int, name string) string {
	idx, ok := t.ColumnIndex(name)
	if !ok || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][idx]
}

// AddColumn appends a column with the given values, padding short input
func (t *Table) AddColumn(name string, values []string) {
	t.Columns = append(t.Columns, name)
	for i := range t.Rows {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		t.Rows[i] = append(t.Rows[i], v)
	}
}

// DropColumn removes a column by name; unknown names are a no-op
func (t *Table) DropColumn(name string) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return
	}
	t.Columns = append(t.Columns[:idx], t.Columns[idx+1:]...)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i][:idx], t.Rows[i][idx+1:]...)
	}
}

// markerColumnNames are tried as exact header matches first
var markerColumnNames = []string{
	"Raw_Marker_Data",
	"Area Section Marker / Installation plan",
	"Marker Data",
	"Marker",
	"Installation Plan",
	"Raw Data",
}

// markerKeywords drive the fallback case-insensitive substring match
var markerKeywords = []string{"marker", "installation", "raw"}

// DetectMarkerColumn finds the column holding raw marker data.
// Exact well-known headers win; otherwise the first header containing a
// marker keyword (case-insensitive) is used.
func DetectMarkerColumn(t *Table) (string, error) {
	for _, name := range markerColumnNames {
		if _, ok := t.ColumnIndex(name); ok {
			return name, nil
		}
	}
	for _, col := range t.Columns {
		lower := strings.ToLower(col)
		for _, kw := range markerKeywords {
			if strings.Contains(lower, kw) {
				return col, nil
			}
		}
	}
	return "", perr.InvalidArgf(
		"could not auto-detect marker column among %v; specify one explicitly", t.Columns)
}

// Validate checks a table is processable with the given marker column
func Validate(t *Table, column string) error {
	if t == nil || len(t.Rows) == 0 {
		return perr.Validationf("input file is empty")
	}
	idx, ok := t.ColumnIndex(column)
	if !ok {
		return perr.WithField(perr.Validationf("column %q not found in input file", column), column)
	}
	for _, row := range t.Rows {
		if strings.TrimSpace(row[idx]) != "" {
			return nil
		}
	}
	return perr.WithField(perr.Validationf("column %q has no data", column), column)
}

// normalizeRows pads or truncates each row to the header width
func normalizeRows(columns []string, rows [][]string) [][]string {
	w := len(columns)
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		row := make([]string, w)
		copy(row, r)
		out = append(out, row)
	}
	return out
}
