package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/gosph/coords"
	"github.com/notargets/gosph/harmonics"
	"github.com/notargets/gosph/output"
)

type EvalParameters struct {
	Degree                 int
	Kind                   harmonics.Kind
	Real                   bool
	Radius, Polar, Azimuth float64
}

// EvalCmd represents the eval command
var EvalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate every harmonic up to a degree at one point",
	Long: `
Evaluates the set of harmonics of degree 0 through --degree at one point given
in spherical coordinates, one line per (l, m) in canonical order.

gosph eval --degree 3 --real --polar 0.5 --azimuth 1.2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ep   = &EvalParameters{}
			kind string
		)
		flags := cmd.Flags()
		if ep.Degree, err = flags.GetInt("degree"); err != nil {
			return
		}
		if ep.Real, err = flags.GetBool("real"); err != nil {
			return
		}
		if ep.Radius, err = flags.GetFloat64("r"); err != nil {
			return
		}
		if ep.Polar, err = flags.GetFloat64("polar"); err != nil {
			return
		}
		if ep.Azimuth, err = flags.GetFloat64("azimuth"); err != nil {
			return
		}
		if kind, err = flags.GetString("kind"); err != nil {
			return
		}
		if ep.Kind, err = harmonics.ParseKind(kind); err != nil {
			return
		}
		return RunEval(ep, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(EvalCmd)
	EvalCmd.Flags().IntP("degree", "d", 2, "maximum degree of the set")
	EvalCmd.Flags().StringP("kind", "k", "Spherical", "harmonic kind: Spherical, RegularSolid, IrregularSolid")
	EvalCmd.Flags().Bool("real", false, "real harmonics instead of complex")
	EvalCmd.Flags().Float64("r", 1, "radius")
	EvalCmd.Flags().Float64("polar", 0, "polar angle, from +z")
	EvalCmd.Flags().Float64("azimuth", 0, "azimuthal angle, from +x")
}

func RunEval(ep *EvalParameters, w io.Writer) (err error) {
	var (
		set *harmonics.Set
		p   = coords.NewSpherical(ep.Radius, ep.Polar, ep.Azimuth)
	)
	if set, err = harmonics.NewSet(ep.Degree, ep.Kind); err != nil {
		return
	}
	if ep.Real {
		var y []float64
		if y, err = set.EvalReal(p); err != nil {
			return
		}
		fmt.Fprintln(w, "l,m,value")
		for i, v := range y {
			l, m := harmonics.DegreeOrder(i)
			fmt.Fprintf(w, "%d,%d,%s\n", l, m, output.FormatFloat(v))
		}
		return
	}
	var y []complex128
	if y, err = set.EvalComplex(p); err != nil {
		return
	}
	fmt.Fprintln(w, "l,m,re,im")
	for i, v := range y {
		l, m := harmonics.DegreeOrder(i)
		fmt.Fprintf(w, "%d,%d,%s,%s\n", l, m, output.FormatFloat(real(v)), output.FormatFloat(imag(v)))
	}
	return
}
