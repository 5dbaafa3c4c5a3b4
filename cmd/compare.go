package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/gosph/grid"
	"github.com/notargets/gosph/output"
)

// CompareCmd represents the compare command
var CompareCmd = &cobra.Command{
	Use:   "compare reference.csv candidate.csv",
	Short: "Compare a harmonics table against a reference table",
	Long: `
Reads two CSV tables with the n,m,theta,phi,sph_re,sph_im header, checks that
they cover the same points in the same order and reports the largest
differences. Exits non zero when any value differs by more than --tol.

gosph > ours.csv; python scipy_comparison.py > scipy.csv; gosph compare scipy.csv ours.csv`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			tol      float64
			ref, got []grid.Row
		)
		if tol, err = cmd.Flags().GetFloat64("tol"); err != nil {
			return
		}
		if ref, err = readTableFile(args[0]); err != nil {
			return
		}
		if got, err = readTableFile(args[1]); err != nil {
			return
		}
		return RunCompare(ref, got, tol, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(CompareCmd)
	CompareCmd.Flags().Float64("tol", 1.e-12, "absolute tolerance on coordinates and values")
}

func readTableFile(fileName string) (rows []grid.Row, err error) {
	var f *os.File
	if f, err = os.Open(fileName); err != nil {
		return
	}
	defer f.Close()
	if rows, err = output.ReadTable(f); err != nil {
		err = fmt.Errorf("%s: %w", fileName, err)
	}
	return
}

func RunCompare(ref, got []grid.Row, tol float64, w io.Writer) error {
	c := output.Compare(ref, got, tol)
	if c.LayoutError != nil {
		return c.LayoutError
	}
	worst := [][]string{}
	if c.Rows > 0 {
		a, b := ref[c.WorstRow], got[c.WorstRow]
		worst = append(worst,
			[]string{"reference", fmt.Sprintf("%d", a.N), fmt.Sprintf("%d", a.M),
				output.FormatFloat(a.Theta), output.FormatFloat(a.Phi), output.FormatFloat(a.Re), output.FormatFloat(a.Im)},
			[]string{"candidate", fmt.Sprintf("%d", b.N), fmt.Sprintf("%d", b.M),
				output.FormatFloat(b.Theta), output.FormatFloat(b.Phi), output.FormatFloat(b.Re), output.FormatFloat(b.Im)},
		)
	}
	output.PrintTable(w, "Largest difference", append([]string{"table"}, grid.Header...), worst)
	fmt.Fprintf(w, "rows=%d  max|dRe|=%s  max|dIm|=%s  mismatches=%d  tol=%s\n",
		c.Rows, output.Fmt4(c.MaxAbsRe), output.Fmt4(c.MaxAbsIm), c.Mismatches, output.Fmt4(tol))
	logger.Info("Compared tables",
		zap.Int("rows", c.Rows),
		zap.Float64("maxAbsRe", c.MaxAbsRe),
		zap.Float64("maxAbsIm", c.MaxAbsIm),
		zap.Int("mismatches", c.Mismatches))
	if !c.OK() {
		return fmt.Errorf("%d of %d rows differ by more than %v", c.Mismatches, c.Rows, tol)
	}
	return nil
}
