package grid

import (
	"fmt"
	"math"

	"github.com/notargets/gosph/harmonics"
	"github.com/notargets/gosph/utils"
)

// Reference table dimensions
const (
	NumPhis = 10
	NMax    = 10
)

var Header = []string{"n", "m", "theta", "phi", "sph_re", "sph_im"}

// Grid is the angular sampling and degree range of a harmonics table. Thetas
// are azimuthal angles covering [0, 2Pi), Phis polar angles covering [0, Pi),
// both with step Pi/numPhis.
type Grid struct {
	Thetas, Phis []float64
	NMax         int
}

type Row struct {
	N, M       int
	Theta, Phi float64
	Re, Im     float64
}

// Evaluator has the argument order of harmonics.SphHarm: order, degree,
// azimuthal angle, polar angle
type Evaluator func(m, n int, theta, phi float64) (complex128, error)

func New(numPhis, nMax int) (g *Grid, err error) {
	if numPhis < 1 {
		err = fmt.Errorf("grid needs at least one polar angle, have %d", numPhis)
		return
	}
	if nMax < 0 {
		err = fmt.Errorf("grid maximum degree %d is negative", nMax)
		return
	}
	numThetas := 2 * numPhis
	g = &Grid{
		Thetas: utils.Linspace(0, 2*math.Pi, numThetas),
		Phis:   utils.Linspace(0, math.Pi, numPhis),
		NMax:   nMax,
	}
	return
}

// Default is the reference table grid
func Default() *Grid {
	g, _ := New(NumPhis, NMax)
	return g
}

// Orders is the number of (n, m) pairs, sum over n of 2n+1
func (g *Grid) Orders() int { return (g.NMax + 1) * (g.NMax + 1) }

// Rows is the number of data rows a walk emits
func (g *Grid) Rows() int { return g.Orders() * len(g.Phis) * len(g.Thetas) }

// Walk evaluates every grid point in table order: n ascending, m ascending
// from -n to n, phi ascending, theta ascending. The first failure stops the
// walk.
func (g *Grid) Walk(eval Evaluator, emit func(r Row) error) (err error) {
	var y complex128
	for n := 0; n <= g.NMax; n++ {
		for m := -n; m <= n; m++ {
			for _, phi := range g.Phis {
				for _, theta := range g.Thetas {
					if y, err = eval(m, n, theta, phi); err != nil {
						return fmt.Errorf("evaluating n = %d, m = %d, theta = %v, phi = %v: %w",
							n, m, theta, phi, err)
					}
					if err = emit(Row{N: n, M: m, Theta: theta, Phi: phi, Re: real(y), Im: imag(y)}); err != nil {
						return
					}
				}
			}
		}
	}
	return
}

// WalkReference walks with the scipy convention harmonics
func (g *Grid) WalkReference(emit func(r Row) error) error {
	return g.Walk(harmonics.SphHarm, emit)
}
