package cot

import (
	"encoding/csv"
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// Table is an ordered sequence of rows under a header, as parsed from one
// archive's data file. Values stay raw strings: no schema is imposed, and
// ragged rows pass through untouched.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ParseTable reads comma-delimited content. CFTC files are comma-delimited
// regardless of extension (the .txt files are CSV-formatted). The first
// line declares the columns, in order.
func ParseTable(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "cot: parse delimited content")
	}

	t := &Table{}
	if len(records) > 0 {
		t.Columns = records[0]
		t.Rows = records[1:]
	}
	return t, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// Append adds another table's rows. Columns are kept from the receiver;
// per-year format drift is passed through, not normalized.
func (t *Table) Append(other *Table) {
	if len(t.Columns) == 0 {
		t.Columns = other.Columns
	}
	t.Rows = append(t.Rows, other.Rows...)
}

// Get returns the value of the named column in row i, or empty string when
// the column is unknown or the row is too short.
func (t *Table) Get(i int, column string) string {
	if i < 0 || i >= len(t.Rows) {
		return ""
	}
	for j, c := range t.Columns {
		if c == column {
			if j < len(t.Rows[i]) {
				return t.Rows[i][j]
			}
			return ""
		}
	}
	return ""
}

// WriteCSV writes the header and rows as CSV.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if len(t.Columns) > 0 {
		if err := cw.Write(t.Columns); err != nil {
			return eris.Wrap(err, "cot: write csv header")
		}
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "cot: write csv row")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "cot: flush csv")
}

// WriteXLSX writes the table as a single-sheet spreadsheet.
func (t *Table) WriteXLSX(path, sheetName string) error {
	if sheetName == "" {
		sheetName = "data"
	}

	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "cot: add xlsx sheet")
	}

	header := sheet.AddRow()
	for _, c := range t.Columns {
		header.AddCell().Value = c
	}
	for _, row := range t.Rows {
		xr := sheet.AddRow()
		for _, v := range row {
			xr.AddCell().Value = v
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "cot: save xlsx %s", path)
	}
	return nil
}
