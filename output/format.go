package output

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Format uint8

const (
	CSV Format = iota
	TSV
	XLSX
)

var (
	ErrUnknownFormat = errors.New("unknown table format")

	FormatNames = map[string]Format{
		"csv":  CSV,
		"tsv":  TSV,
		"xlsx": XLSX,
	}
)

func (f Format) String() string {
	for name, ff := range FormatNames {
		if ff == f {
			return name
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(label string) (f Format, err error) {
	var ok bool
	if f, ok = FormatNames[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("%w: %q, want csv, tsv or xlsx", ErrUnknownFormat, label)
	}
	return
}

// FormatFloat renders the shortest decimal that round trips, positional for
// decimal exponents in [-4, 16) with at least one fractional digit, scientific
// with a two digit minimum exponent otherwise: 0.0, -0.0, 0.28209479177387814,
// 1e-05, 1.5e+16.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	// Shortest digits, then decide the layout from the decimal exponent
	e := strconv.FormatFloat(f, 'e', -1, 64)
	mant, expStr, _ := strings.Cut(e, "e")
	exp, _ := strconv.Atoi(expStr)
	if f == 0 || (exp >= -4 && exp < 16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
		return s
	}
	sign := "+"
	if exp < 0 {
		sign = "-"
		exp = -exp
	}
	return fmt.Sprintf("%se%s%02d", mant, sign, exp)
}

func FormatInt(i int) string { return strconv.Itoa(i) }
