package cmd

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/notargets/gosph/InputParameters"
	"github.com/notargets/gosph/coords"
	"github.com/notargets/gosph/harmonics"
	"github.com/notargets/gosph/output"
)

// FitCmd represents the fit command
var FitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Recover harmonic coefficients from sampled values",
	Long: `
Samples the expansion given by the target coefficients, then recovers the
coefficients by least squares on a Cartesian lattice or by quadrature
projection on the unit sphere, and prints target against recovered values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName string
			data     []byte
		)
		if fileName, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			return
		}
		if len(fileName) == 0 {
			return fmt.Errorf("must supply an input parameters file (-I, --inputParametersFile), like:%s", exampleFitFile)
		}
		if data, err = os.ReadFile(fileName); err != nil {
			return
		}
		ip := &InputParameters.FitParameters{}
		if err = ip.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", fileName, err)
		}
		ip.Print()
		_, err = RunFit(ip, cmd.OutOrStdout())
		return
	},
}

var exampleFitFile = `
########################################
Title: "Regular solid, degree 1"
Degree: 1
Kind: RegularSolid # Spherical, RegularSolid or IrregularSolid
Method: LeastSquares # or Projection, Spherical only
Coefficients: [0.1, 2.0, 8.9, 3.2]
Positions: [-2, -1.5, -1, -0.5, 0.5, 1, 1.5, 2]
########################################
`

func init() {
	rootCmd.AddCommand(FitCmd)
	FitCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file with the fit parameters")
}

// RunFit returns the recovered coefficients after printing them
func RunFit(ip *InputParameters.FitParameters, w io.Writer) (coeffs []float64, err error) {
	var (
		kind harmonics.Kind
		fm   InputParameters.FitMethod
		set  *harmonics.Set
	)
	if kind, err = ip.HarmonicKind(); err != nil {
		return
	}
	if fm, err = ip.FitMethod(); err != nil {
		return
	}
	if set, err = harmonics.NewSet(ip.Degree, kind); err != nil {
		return
	}
	switch fm {
	case InputParameters.LeastSquares:
		pts := coords.CartesianGrid(ip.Positions)
		values := make([]float64, len(pts))
		for i, p := range pts {
			if values[i], err = set.Sum(p, ip.Coefficients); err != nil {
				return nil, fmt.Errorf("sampling point %d: %w", i, err)
			}
		}
		logger.Debug("Least squares fit", zap.Int("points", len(pts)), zap.Int("harmonics", set.Len()))
		if coeffs, err = set.Fit(pts, values); err != nil {
			return
		}
	case InputParameters.Projection:
		var sampleErr error
		f := func(polar, azimuth float64) (v float64) {
			var e error
			if v, e = set.Sum(coords.OnUnitSphere(polar, azimuth), ip.Coefficients); e != nil && sampleErr == nil {
				sampleErr = e
			}
			return
		}
		logger.Debug("Quadrature projection", zap.Int("harmonics", set.Len()))
		if coeffs, err = set.Project(f); err != nil {
			return
		}
		if sampleErr != nil {
			return nil, sampleErr
		}
	}

	var (
		maxErr float64
		rows   = make([][]string, len(coeffs))
	)
	for i, c := range coeffs {
		l, m := harmonics.DegreeOrder(i)
		e := math.Abs(c - ip.Coefficients[i])
		maxErr = math.Max(maxErr, e)
		rows[i] = []string{
			fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", l), fmt.Sprintf("%d", m),
			output.Fmt4(ip.Coefficients[i]), output.Fmt4(c), output.Fmt4(e),
		}
	}
	title := fmt.Sprintf("%s: %s, degree %d, %s", ip.Title, kind, ip.Degree, fm)
	output.PrintTable(w, title, []string{"No", "l", "m", "target", "fit", "error"}, rows)
	fmt.Fprintf(w, "max error = %s\n", output.Fmt4(maxErr))
	logger.Info("Fit complete", zap.Float64("maxError", maxErr))
	return
}
