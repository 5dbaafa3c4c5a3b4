package harmonics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gosph/coords"
	"github.com/notargets/gosph/quadrature"
	"github.com/notargets/gosph/utils"
)

// Set is every harmonic of one kind from degree 0 through Degree, in the
// canonical order l ascending, then m ascending from -l to l
type Set struct {
	Degree int
	Kind   Kind
	num    int
}

func NewSet(degree int, kind Kind) (s *Set, err error) {
	if degree < 0 {
		err = fmt.Errorf("%w: harmonic set degree %d is negative", ErrDomain, degree)
		return
	}
	if int(kind) >= len(KindPrintNames) {
		err = fmt.Errorf("unknown harmonic kind %d", int(kind))
		return
	}
	s = &Set{
		Degree: degree,
		Kind:   kind,
		num:    (degree + 1) * (degree + 1),
	}
	return
}

// Len is the number of harmonics in the set, (Degree+1)^2
func (s *Set) Len() int { return s.num }

// Index is the position of (l, m) in the canonical order
func Index(l, m int) int { return l*l + l + m }

// DegreeOrder inverts Index
func DegreeOrder(i int) (l, m int) {
	l = int(math.Sqrt(float64(i)))
	// Guard the float square root at perfect squares
	for l*l > i {
		l--
	}
	for (l+1)*(l+1) <= i {
		l++
	}
	m = i - l*l - l
	return
}

func (s *Set) EvalComplex(p coords.Coordinates) (y []complex128, err error) {
	y = make([]complex128, s.num)
	for l := 0; l <= s.Degree; l++ {
		for m := -l; m <= l; m++ {
			if y[Index(l, m)], err = s.Kind.EvalComplex(l, m, p); err != nil {
				return nil, err
			}
		}
	}
	return
}

func (s *Set) EvalReal(p coords.Coordinates) (y []float64, err error) {
	y = make([]float64, s.num)
	for l := 0; l <= s.Degree; l++ {
		for m := -l; m <= l; m++ {
			if y[Index(l, m)], err = s.Kind.EvalReal(l, m, p); err != nil {
				return nil, err
			}
		}
	}
	return
}

// EvalRealWithCoefficients returns the harmonics at p scaled term by term
func (s *Set) EvalRealWithCoefficients(p coords.Coordinates, coeffs []float64) (y []float64, err error) {
	if len(coeffs) != s.num {
		err = fmt.Errorf("have %d coefficients for a degree %d set of %d harmonics",
			len(coeffs), s.Degree, s.num)
		return
	}
	if y, err = s.EvalReal(p); err != nil {
		return
	}
	for i, c := range coeffs {
		y[i] *= c
	}
	return
}

// Sum is the expansion sum_i coeffs[i] Y_i(p)
func (s *Set) Sum(p coords.Coordinates, coeffs []float64) (f float64, err error) {
	var y []float64
	if y, err = s.EvalRealWithCoefficients(p, coeffs); err != nil {
		return
	}
	for _, v := range y {
		f += v
	}
	return
}

// DesignMatrix has one row of real harmonics per point
func (s *Set) DesignMatrix(pts []coords.Coordinates) (A *mat.Dense, err error) {
	if len(pts) == 0 {
		err = fmt.Errorf("design matrix needs at least one point")
		return
	}
	A = mat.NewDense(len(pts), s.num, nil)
	var y []float64
	for i, p := range pts {
		if y, err = s.EvalReal(p); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		A.SetRow(i, y)
	}
	return
}

// Fit returns the coefficients that best reproduce values at pts in the
// least squares sense
func (s *Set) Fit(pts []coords.Coordinates, values []float64) (coeffs []float64, err error) {
	if len(pts) != len(values) {
		err = fmt.Errorf("have %d points and %d values", len(pts), len(values))
		return
	}
	if len(pts) < s.num {
		err = fmt.Errorf("fit of %d harmonics is underdetermined with %d points", s.num, len(pts))
		return
	}
	var A *mat.Dense
	if A, err = s.DesignMatrix(pts); err != nil {
		return
	}
	b := mat.NewVecDense(len(values), values)
	var x mat.VecDense
	if err = x.SolveVec(A, b); err != nil {
		err = fmt.Errorf("least squares fit: %w", err)
		return
	}
	coeffs = make([]float64, s.num)
	copy(coeffs, x.RawVector().Data)
	return
}

// Project returns the coefficients of f in the orthonormal real spherical
// harmonics, using Gauss-Legendre nodes in cos(polar) and a uniform azimuth
// rule. The result is exact when f is band limited to the set's degree.
func (s *Set) Project(f func(polar, azimuth float64) float64) (coeffs []float64, err error) {
	if s.Kind != Spherical {
		err = fmt.Errorf("projection needs the orthonormal spherical kind, have %s", s.Kind)
		return
	}
	var (
		X, W []float64
		nAz  = 2*s.Degree + 2
		Az   = utils.Linspace(0, 2*math.Pi, nAz)
		WAz  = utils.ConstArray(nAz, 2*math.Pi/float64(nAz))
		y    []float64
	)
	if X, W, err = quadrature.GaussLegendre(s.Degree + 1); err != nil {
		return
	}
	coeffs = make([]float64, s.num)
	for i, x := range X {
		polar := math.Acos(x)
		for j, az := range Az {
			if y, err = s.EvalReal(coords.OnUnitSphere(polar, az)); err != nil {
				return nil, err
			}
			fw := f(polar, az) * W[i] * WAz[j]
			for k, v := range y {
				coeffs[k] += fw * v
			}
		}
	}
	return
}
