package tabular

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	perr "polesplit/internal/platform/errors"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is used when writing XLSX output without an explicit sheet
const DefaultSheet = "Processed Data"

// ReadFile loads a CSV or XLSX file into a Table.
// sheet selects a worksheet for XLSX input; empty means the first sheet.
func ReadFile(path, sheet string) (*Table, error) {
	switch ext(path) {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readXLSX(path, sheet)
	default:
		return nil, perr.InvalidArgf("unsupported file format %q", ext(path))
	}
}

// WriteFile writes a Table as CSV or XLSX depending on the extension.
// sheet names the worksheet for XLSX output; empty means DefaultSheet.
func WriteFile(path string, t *Table, sheet string) error {
	switch ext(path) {
	case ".csv":
		return writeCSV(path, t)
	case ".xlsx", ".xlsm":
		return writeXLSX(path, t, sheet)
	default:
		return perr.InvalidArgf("unsupported output format %q", ext(path))
	}
}

func ext(path string) string { return strings.ToLower(filepath.Ext(path)) }

func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.NotFoundf("input file not found: %s", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "open %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows tolerated; normalized below

	header, err := r.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read csv header from %s", path)
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read csv row from %s", path)
		}
		rows = append(rows, rec)
	}
	return &Table{Columns: header, Rows: normalizeRows(header, rows)}, nil
}

func writeCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Columns); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write csv header to %s", path)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "write csv row to %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "flush csv to %s", path)
	}
	return f.Close()
}

func readXLSX(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.NotFoundf("input file not found: %s", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open workbook %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, perr.WithField(
			perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "read sheet %q from %s", sheet, path),
			"sheet")
	}
	if len(raw) == 0 {
		return &Table{}, nil
	}
	return &Table{Columns: raw[0], Rows: normalizeRows(raw[0], raw[1:])}, nil
}

func writeXLSX(path string, t *Table, sheet string) error {
	if sheet == "" {
		sheet = DefaultSheet
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "name sheet %q", sheet)
	}
	if err := f.SetSheetRow(sheet, "A1", &t.Columns); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "write header to %s", path)
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "cell name for row %d", i+2)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnknown, "write row %d to %s", i+2, path)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "save workbook %s", path)
	}
	return nil
}
