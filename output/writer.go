package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/notargets/gosph/grid"
)

// Writer receives a header and then the rows of a harmonics table
type Writer interface {
	WriteHeader(cols []string) error
	WriteRow(r grid.Row) error
	Close() error
}

// FieldStrings renders the row fields in table column order
func FieldStrings(r grid.Row) []string {
	return []string{
		FormatInt(r.N), FormatInt(r.M),
		FormatFloat(r.Theta), FormatFloat(r.Phi),
		FormatFloat(r.Re), FormatFloat(r.Im),
	}
}

// DelimitedWriter writes character separated text. None of the fields can
// contain the separator, a quote or a newline, so nothing is ever quoted.
type DelimitedWriter struct {
	w *csv.Writer
}

func NewCSV(w io.Writer) *DelimitedWriter {
	return &DelimitedWriter{w: csv.NewWriter(w)}
}

func NewTSV(w io.Writer) *DelimitedWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &DelimitedWriter{w: cw}
}

func (dw *DelimitedWriter) WriteHeader(cols []string) error {
	return dw.w.Write(cols)
}

func (dw *DelimitedWriter) WriteRow(r grid.Row) error {
	return dw.w.Write(FieldStrings(r))
}

// Close flushes; the underlying io.Writer stays open
func (dw *DelimitedWriter) Close() error {
	dw.w.Flush()
	return dw.w.Error()
}

// XLSXWriter stores the table in one sheet of a workbook, numbers as numeric
// cells. The file is written on Close.
type XLSXWriter struct {
	f        *excelize.File
	sw       *excelize.StreamWriter
	filename string
	sheet    string
	row      int
}

func NewXLSX(filename, sheet string) (xw *XLSXWriter, err error) {
	if len(filename) == 0 {
		err = fmt.Errorf("xlsx output needs a file name")
		return
	}
	if len(sheet) == 0 {
		sheet = "Sheet1"
	}
	f := excelize.NewFile()
	if sheet != "Sheet1" {
		if err = f.SetSheetName("Sheet1", sheet); err != nil {
			return
		}
	}
	var sw *excelize.StreamWriter
	if sw, err = f.NewStreamWriter(sheet); err != nil {
		return
	}
	xw = &XLSXWriter{f: f, sw: sw, filename: filename, sheet: sheet, row: 1}
	return
}

func (xw *XLSXWriter) writeCells(cells []interface{}) (err error) {
	var cell string
	if cell, err = excelize.CoordinatesToCellName(1, xw.row); err != nil {
		return
	}
	if err = xw.sw.SetRow(cell, cells); err != nil {
		return
	}
	xw.row++
	return
}

func (xw *XLSXWriter) WriteHeader(cols []string) error {
	cells := make([]interface{}, len(cols))
	for i, c := range cols {
		cells[i] = c
	}
	return xw.writeCells(cells)
}

func (xw *XLSXWriter) WriteRow(r grid.Row) error {
	return xw.writeCells([]interface{}{r.N, r.M, r.Theta, r.Phi, r.Re, r.Im})
}

func (xw *XLSXWriter) Close() (err error) {
	defer func() {
		if cerr := xw.f.Close(); err == nil {
			err = cerr
		}
	}()
	if err = xw.sw.Flush(); err != nil {
		return
	}
	return xw.f.SaveAs(xw.filename)
}

// Rows returns the number of data rows written so far
func (xw *XLSXWriter) Rows() int { return xw.row - 2 }

// New opens a writer of the given format. CSV and TSV go to w; XLSX goes to
// filename.
func New(format Format, w io.Writer, filename string) (Writer, error) {
	switch format {
	case CSV:
		return NewCSV(w), nil
	case TSV:
		return NewTSV(w), nil
	case XLSX:
		xw, err := NewXLSX(filename, "sph_harm")
		if err != nil {
			return nil, err
		}
		return xw, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// WriteTable walks g with eval and writes the header and every row. Rows may
// stay buffered in w until the caller closes it.
func WriteTable(g *grid.Grid, eval grid.Evaluator, w Writer) (err error) {
	if err = w.WriteHeader(grid.Header); err != nil {
		return
	}
	return g.Walk(eval, w.WriteRow)
}
