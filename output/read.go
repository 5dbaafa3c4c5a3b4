package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/notargets/gosph/grid"
)

// ReadTable parses a comma separated harmonics table with the reference
// header, as written by NewCSV or by any other implementation of the format
func ReadTable(rd io.Reader) (rows []grid.Row, err error) {
	var (
		records [][]string
	)
	r := csv.NewReader(bufio.NewReader(rd))
	r.FieldsPerRecord = len(grid.Header)
	if records, err = r.ReadAll(); err != nil {
		return
	}
	if len(records) == 0 {
		err = fmt.Errorf("empty table, want header %s", strings.Join(grid.Header, ","))
		return
	}
	for j, h := range records[0] {
		if strings.TrimSpace(h) != grid.Header[j] {
			err = fmt.Errorf("column %d is %q, want header %s", j+1, h, strings.Join(grid.Header, ","))
			return
		}
	}
	rows = make([]grid.Row, 0, len(records)-1)
	for i, rec := range records[1:] {
		var row grid.Row
		ints := []*int{&row.N, &row.M}
		floats := []*float64{&row.Theta, &row.Phi, &row.Re, &row.Im}
		for j, p := range ints {
			if *p, err = strconv.Atoi(strings.TrimSpace(rec[j])); err != nil {
				return nil, fmt.Errorf("line %d, column %s: %w", i+2, grid.Header[j], err)
			}
		}
		for j, p := range floats {
			if *p, err = strconv.ParseFloat(strings.TrimSpace(rec[j+2]), 64); err != nil {
				return nil, fmt.Errorf("line %d, column %s: %w", i+2, grid.Header[j+2], err)
			}
		}
		rows = append(rows, row)
	}
	return
}

// Comparison summarizes the difference between a reference table and a
// candidate table of the same layout
type Comparison struct {
	Rows        int
	MaxAbsRe    float64
	MaxAbsIm    float64
	WorstRow    int // 0 based data row of the largest difference
	Mismatches  int // rows whose difference exceeds the tolerance
	LayoutError error
}

// Compare checks that both tables list the same points in the same order,
// then measures the value differences
func Compare(ref, got []grid.Row, tol float64) (c Comparison) {
	c.Rows = len(ref)
	if len(ref) != len(got) {
		c.LayoutError = fmt.Errorf("reference has %d rows, candidate has %d", len(ref), len(got))
		return
	}
	var worst float64
	for i := range ref {
		a, b := ref[i], got[i]
		if a.N != b.N || a.M != b.M ||
			math.Abs(a.Theta-b.Theta) > tol || math.Abs(a.Phi-b.Phi) > tol {
			c.LayoutError = fmt.Errorf("row %d is (n=%d, m=%d, theta=%v, phi=%v), want (n=%d, m=%d, theta=%v, phi=%v)",
				i+1, b.N, b.M, b.Theta, b.Phi, a.N, a.M, a.Theta, a.Phi)
			return
		}
		dRe, dIm := math.Abs(a.Re-b.Re), math.Abs(a.Im-b.Im)
		c.MaxAbsRe = math.Max(c.MaxAbsRe, dRe)
		c.MaxAbsIm = math.Max(c.MaxAbsIm, dIm)
		if d := math.Max(dRe, dIm); d > worst {
			worst = d
			c.WorstRow = i
		}
		if !(dRe <= tol && dIm <= tol) {
			c.Mismatches++
		}
	}
	return
}

func (c Comparison) OK() bool { return c.LayoutError == nil && c.Mismatches == 0 }
