package output

import (
	"fmt"
	"io"
	"strings"
)

// Fmt4 is the four significant digit layout used in console tables
func Fmt4(x float64) string { return fmt.Sprintf("%10.4g", x) }

// PrintTable draws a boxed text table, first column right aligned with a wider
// pad, the rest left aligned under their headers
func PrintTable(w io.Writer, title string, headers []string, rows [][]string) {
	fmt.Fprintln(w, title)
	if len(rows) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for j, cell := range row {
			if len(cell) > widths[j] {
				widths[j] = len(cell)
			}
		}
	}

	pad := func(col int) int {
		if col == 0 {
			return 2
		}
		return 1
	}

	printLine := func() {
		fmt.Fprint(w, "+")
		for i, wd := range widths {
			fmt.Fprint(w, strings.Repeat("-", wd+pad(i))+"+")
		}
		fmt.Fprintln(w)
	}

	printLine()
	fmt.Fprint(w, "|")
	for i, h := range headers {
		if i == 0 {
			fmt.Fprintf(w, " %-*s |", widths[i], h)
		} else {
			fmt.Fprintf(w, " %-*s|", widths[i], h)
		}
	}
	fmt.Fprintln(w)
	printLine()

	for _, row := range rows {
		fmt.Fprint(w, "|")
		for j, cell := range row {
			if j == 0 {
				fmt.Fprintf(w, " %*s |", widths[j], cell)
			} else {
				fmt.Fprintf(w, " %*s|", widths[j], cell)
			}
		}
		fmt.Fprintln(w)
	}
	printLine()
}
