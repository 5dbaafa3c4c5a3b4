package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/gosph/coords"
	"github.com/notargets/gosph/grid"
	"github.com/notargets/gosph/harmonics"
	"github.com/notargets/gosph/output"
)

type TableParameters struct {
	NumPhis, NMax int
	Kind          harmonics.Kind
	Radius        float64
	Format        output.Format
	OutputFile    string
	Profile       string
	ProfilePath   string
}

// TableCmd represents the table command
var TableCmd = &cobra.Command{
	Use:   "table",
	Short: "Harmonics table on a configurable grid",
	Long: `
Writes the same walk as the reference table (n, then m, then phi, then theta)
with a configurable grid size, harmonic kind and output format. Values come from
flags, the config file (keys under "table:") or GOSPH_TABLE_* variables.

gosph table --numPhis 36 --nMax 20 --format xlsx --output sph.xlsx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var tp *TableParameters
		if tp, err = tableParameters(); err != nil {
			return
		}
		switch tp.Profile {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(tp.ProfilePath), profile.Quiet).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(tp.ProfilePath), profile.Quiet).Stop()
		default:
			return fmt.Errorf("unknown profile %q, want cpu or mem", tp.Profile)
		}
		return RunTable(tp, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(TableCmd)
	TableCmd.Flags().IntP("numPhis", "p", grid.NumPhis, "number of polar angles, the azimuth gets twice as many")
	TableCmd.Flags().IntP("nMax", "n", grid.NMax, "maximum degree")
	TableCmd.Flags().StringP("kind", "k", "Spherical", "harmonic kind: Spherical, RegularSolid, IrregularSolid")
	TableCmd.Flags().Float64P("radius", "r", 1, "radius for solid harmonics")
	TableCmd.Flags().StringP("format", "f", "csv", "output format: csv, tsv, xlsx")
	TableCmd.Flags().StringP("output", "o", "", "output file, stdout when empty (required for xlsx)")
	TableCmd.Flags().String("profile", "", "write a cpu or mem profile")
	TableCmd.Flags().String("profilePath", ".", "directory for profile output")
	for _, name := range []string{"numPhis", "nMax", "kind", "radius", "format", "output", "profile", "profilePath"} {
		if err := viper.BindPFlag("table."+name, TableCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func tableParameters() (tp *TableParameters, err error) {
	tp = &TableParameters{
		NumPhis:     viper.GetInt("table.numPhis"),
		NMax:        viper.GetInt("table.nMax"),
		Radius:      viper.GetFloat64("table.radius"),
		OutputFile:  viper.GetString("table.output"),
		Profile:     viper.GetString("table.profile"),
		ProfilePath: viper.GetString("table.profilePath"),
	}
	if tp.Kind, err = harmonics.ParseKind(viper.GetString("table.kind")); err != nil {
		return nil, err
	}
	if tp.Format, err = output.ParseFormat(viper.GetString("table.format")); err != nil {
		return nil, err
	}
	return
}

// Evaluator returns the table's harmonic as a function of the grid angles
func (tp *TableParameters) Evaluator() grid.Evaluator {
	if tp.Kind == harmonics.Spherical {
		return harmonics.SphHarm
	}
	return func(m, n int, theta, phi float64) (complex128, error) {
		return tp.Kind.EvalComplex(n, m, coords.NewSpherical(tp.Radius, phi, theta))
	}
}

func RunTable(tp *TableParameters, stdout io.Writer) (err error) {
	var (
		g  *grid.Grid
		tw output.Writer
		w  = stdout
	)
	if g, err = grid.New(tp.NumPhis, tp.NMax); err != nil {
		return
	}
	if tp.Format == output.XLSX && len(tp.OutputFile) == 0 {
		return fmt.Errorf("xlsx output needs --output")
	}
	if tp.Format != output.XLSX && len(tp.OutputFile) != 0 {
		var fp *os.File
		if fp, err = os.Create(tp.OutputFile); err != nil {
			return
		}
		defer func() {
			if cerr := fp.Close(); err == nil {
				err = cerr
			}
		}()
		w = fp
	}
	if tw, err = output.New(tp.Format, w, tp.OutputFile); err != nil {
		return
	}
	logger.Info("Writing table",
		zap.Int("numPhis", tp.NumPhis),
		zap.Int("nMax", tp.NMax),
		zap.Stringer("kind", tp.Kind),
		zap.Stringer("format", tp.Format),
		zap.String("output", tp.OutputFile),
		zap.Int("rows", g.Rows()))
	if err = output.WriteTable(g, tp.Evaluator(), tw); err != nil {
		_ = tw.Close()
		return
	}
	return tw.Close()
}
