package harmonics

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gosph/coords"
	"github.com/notargets/gosph/quadrature"
	"github.com/notargets/gosph/utils"
)

const tol = 1.e-13

func TestLegendre(t *testing.T) {
	for _, x := range []float64{-1, -0.6, 0, 0.3, 0.99, 1} {
		s := math.Sqrt(1 - x*x)
		cases := []struct {
			l, m int
			want float64
		}{
			{0, 0, 1},
			{1, 0, x},
			{1, 1, -s},
			{2, 0, 0.5 * (3*x*x - 1)},
			{2, 1, -3 * x * s},
			{2, 2, 3 * s * s},
			{3, 0, 0.5 * (5*x*x*x - 3*x)},
			{3, 3, -15 * s * s * s},
			{4, 0, (35*x*x*x*x - 30*x*x + 3) / 8},
		}
		for _, c := range cases {
			p, err := Legendre(c.l, c.m, x)
			require.NoError(t, err)
			assert.InDeltaf(t, c.want, p, tol, "P_%d^%d(%v)", c.l, c.m, x)
		}
	}
	_, err := Legendre(2, 3, 0.5)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = Legendre(2, -1, 0.5)
	assert.ErrorIs(t, err, ErrDomain)
	_, err = Legendre(2, 1, 1.5)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestNormalizedMatchesLegendre(t *testing.T) {
	for _, polar := range []float64{0, 0.2, 1.1, math.Pi / 2, 2.9} {
		x, s := math.Cos(polar), math.Sin(polar)
		for l := 0; l <= 10; l++ {
			for m := 0; m <= l; m++ {
				p, err := Legendre(l, m, x)
				require.NoError(t, err)
				want := math.Sqrt(float64(2*l+1)/(4*math.Pi)*utils.FactorialRatio(l, m)) * p
				assert.InDeltaf(t, want, normalized(l, m, x, s, true), 1.e-12,
					"l = %d, m = %d, polar = %v", l, m, polar)
				assert.InDeltaf(t, utils.MinusOnePow(m)*want, normalized(l, m, x, s, false), 1.e-12,
					"l = %d, m = %d, polar = %v", l, m, polar)
			}
		}
	}
}

func TestSphHarm(t *testing.T) {
	// Y_0^0 is constant
	{
		for _, phi := range []float64{0, 0.4, 1.7, math.Pi} {
			for _, theta := range []float64{0, 1, 4, 2 * math.Pi} {
				y, err := SphHarm(0, 0, theta, phi)
				require.NoError(t, err)
				assert.InDelta(t, 1/(2*math.Sqrt(math.Pi)), real(y), tol)
				assert.Equal(t, 0., imag(y))
			}
		}
		y, err := SphHarm(0, 0, 0, 0)
		require.NoError(t, err)
		assert.InDelta(t, 0.28209479177387814, real(y), 1.e-16)
	}
	// Low degree closed forms, Condon-Shortley phase included
	{
		theta, phi := 0.5, 0.3
		sp, cp := math.Sin(phi), math.Cos(phi)
		eit := func(m int) complex128 { return cmplx.Exp(complex(0, float64(m)*theta)) }
		cases := []struct {
			m, n int
			want complex128
		}{
			{0, 1, complex(math.Sqrt(3/(4*math.Pi))*cp, 0)},
			{1, 1, complex(-math.Sqrt(3/(8*math.Pi))*sp, 0) * eit(1)},
			{-1, 1, complex(math.Sqrt(3/(8*math.Pi))*sp, 0) * eit(-1)},
			{1, 2, complex(-math.Sqrt(15/(8*math.Pi))*sp*cp, 0) * eit(1)},
			{2, 2, complex(0.25*math.Sqrt(15/(2*math.Pi))*sp*sp, 0) * eit(2)},
			{-2, 2, complex(0.25*math.Sqrt(15/(2*math.Pi))*sp*sp, 0) * eit(-2)},
			{0, 2, complex(0.25*math.Sqrt(5/math.Pi)*(3*cp*cp-1), 0)},
			{3, 3, complex(-0.125*math.Sqrt(35/math.Pi)*sp*sp*sp, 0) * eit(3)},
		}
		for _, c := range cases {
			y, err := SphHarm(c.m, c.n, theta, phi)
			require.NoError(t, err)
			assert.InDeltaf(t, real(c.want), real(y), tol, "re Y_%d^%d", c.n, c.m)
			assert.InDeltaf(t, imag(c.want), imag(y), tol, "im Y_%d^%d", c.n, c.m)
		}
	}
	// Y_n^-m = (-1)^m conj(Y_n^m) and the addition theorem
	{
		theta, phi := 2.3, 1.2
		for n := 0; n <= 10; n++ {
			var sum float64
			for m := -n; m <= n; m++ {
				y, err := SphHarm(m, n, theta, phi)
				require.NoError(t, err)
				sum += real(y)*real(y) + imag(y)*imag(y)
				yn, err := SphHarm(-m, n, theta, phi)
				require.NoError(t, err)
				want := complex(utils.MinusOnePow(m), 0) * cmplx.Conj(y)
				assert.InDelta(t, real(want), real(yn), tol)
				assert.InDelta(t, imag(want), imag(yn), tol)
			}
			assert.InDeltaf(t, float64(2*n+1)/(4*math.Pi), sum, 1.e-12, "n = %d", n)
		}
	}
	// Poles: only m = 0 survives
	{
		for n := 1; n <= 6; n++ {
			for m := -n; m <= n; m++ {
				y, err := SphHarm(m, n, 0.7, 0)
				require.NoError(t, err)
				if m == 0 {
					assert.InDelta(t, math.Sqrt(float64(2*n+1)/(4*math.Pi)), real(y), tol)
				} else {
					assert.Equal(t, 0., cmplx.Abs(y))
				}
			}
		}
	}
	// Domain
	{
		_, err := SphHarm(3, 2, 0, 0)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = SphHarm(-3, 2, 0, 0)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = SphHarm(0, -1, 0, 0)
		assert.ErrorIs(t, err, ErrDomain)
		_, err = SphHarm(0, 2, 0, math.NaN())
		assert.ErrorIs(t, err, ErrNotFinite)
	}
}

func TestComplexAndRealAgree(t *testing.T) {
	// Y_real(l, m>0) = sqrt2 (-1)^m Re Y_l^m, Y_real(l, m<0) = sqrt2 (-1)^m Im Y_l^|m|
	p := coords.NewSpherical(2, 1.1, -2.4)
	for l := 0; l <= 8; l++ {
		for m := -l; m <= l; m++ {
			yr, err := Real(l, m, p)
			require.NoError(t, err)
			am := m
			if am < 0 {
				am = -am
			}
			yc, err := Complex(l, am, p)
			require.NoError(t, err)
			var want float64
			switch {
			case m == 0:
				want = real(yc)
			case m > 0:
				want = math.Sqrt2 * utils.MinusOnePow(m) * real(yc)
			default:
				want = math.Sqrt2 * utils.MinusOnePow(m) * imag(yc)
			}
			assert.InDeltaf(t, want, yr, tol, "l = %d, m = %d", l, m)
		}
	}
}

func TestRealClosedForm(t *testing.T) {
	pts := []coords.Coordinates{
		coords.NewCartesian(0.3, -0.2, 0.9),
		coords.NewCartesian(-1.5, 2, 0.25),
		coords.NewCartesian(0, 0, 1),
		coords.NewCartesian(0, 0, -3),
		coords.NewCartesian(1, 1, 1),
		coords.NewSpherical(0.5, 2.2, 4.0),
	}
	for _, p := range pts {
		for l := 0; l <= 5; l++ {
			for m := -l; m <= l; m++ {
				want, err := Real(l, m, p)
				require.NoError(t, err)
				got, err := RealClosedForm(l, m, p)
				require.NoError(t, err)
				assert.InDeltaf(t, want, got, 1.e-12, "l = %d, m = %d at %v", l, m, p)
			}
		}
	}
	// Origin falls back to the angular form
	y, err := RealClosedForm(1, 0, coords.NewCartesian(0, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3/(4*math.Pi)), y, tol)
	_, err = RealClosedForm(1, 2, coords.NewCartesian(1, 0, 0))
	assert.ErrorIs(t, err, ErrDomain)
}

func TestOrthonormality(t *testing.T) {
	const L = 6
	X, W, err := quadrature.GaussLegendre(L + 1)
	require.NoError(t, err)
	nAz := 2*L + 2
	dAz := 2 * math.Pi / float64(nAz)
	set, err := NewSet(L, Spherical)
	require.NoError(t, err)
	n := set.Len()
	gramC := make([]complex128, n*n)
	gramR := make([]float64, n*n)
	for i, x := range X {
		for j := 0; j < nAz; j++ {
			p := coords.OnUnitSphere(math.Acos(x), dAz*float64(j))
			yc, err := set.EvalComplex(p)
			require.NoError(t, err)
			yr, err := set.EvalReal(p)
			require.NoError(t, err)
			w := W[i] * dAz
			for a := 0; a < n; a++ {
				for b := 0; b < n; b++ {
					gramC[a*n+b] += complex(w, 0) * yc[a] * cmplx.Conj(yc[b])
					gramR[a*n+b] += w * yr[a] * yr[b]
				}
			}
		}
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			want := 0.
			if a == b {
				want = 1
			}
			assert.InDeltaf(t, want, real(gramC[a*n+b]), 1.e-12, "complex <%d,%d>", a, b)
			assert.InDeltaf(t, 0, imag(gramC[a*n+b]), 1.e-12, "complex <%d,%d>", a, b)
			assert.InDeltaf(t, want, gramR[a*n+b], 1.e-12, "real <%d,%d>", a, b)
		}
	}
}

func TestSolidHarmonics(t *testing.T) {
	p := coords.NewCartesian(0.4, -1.2, 0.7)
	r := p.R()
	for l := 0; l <= 4; l++ {
		norm := math.Sqrt(4 * math.Pi / float64(2*l+1))
		for m := -l; m <= l; m++ {
			y, err := Spherical.EvalReal(l, m, p)
			require.NoError(t, err)
			reg, err := RegularSolid.EvalReal(l, m, p)
			require.NoError(t, err)
			irr, err := IrregularSolid.EvalReal(l, m, p)
			require.NoError(t, err)
			assert.InDelta(t, norm*math.Pow(r, float64(l))*y, reg, tol)
			assert.InDelta(t, norm*math.Pow(r, -float64(l+1))*y, irr, tol)

			yc, err := Spherical.EvalComplex(l, m, p)
			require.NoError(t, err)
			regc, err := RegularSolid.EvalComplex(l, m, p)
			require.NoError(t, err)
			assert.InDelta(t, norm*math.Pow(r, float64(l))*real(yc), real(regc), tol)
			assert.InDelta(t, norm*math.Pow(r, float64(l))*imag(yc), imag(regc), tol)
		}
	}
	// Regular solid harmonics of degree 1 are the coordinates themselves
	{
		x, err := RegularSolid.EvalReal(1, 1, p)
		require.NoError(t, err)
		assert.InDelta(t, p.X(), x, tol)
		z, err := RegularSolid.EvalReal(1, 0, p)
		require.NoError(t, err)
		assert.InDelta(t, p.Z(), z, tol)
	}
	// Irregular harmonics blow up at the origin
	{
		_, err := IrregularSolid.EvalReal(0, 0, coords.NewCartesian(0, 0, 0))
		assert.ErrorIs(t, err, ErrNotFinite)
		_, err = IrregularSolid.EvalComplex(1, 0, coords.NewCartesian(0, 0, 0))
		assert.ErrorIs(t, err, ErrNotFinite)
		y, err := RegularSolid.EvalReal(0, 0, coords.NewCartesian(0, 0, 0))
		require.NoError(t, err)
		assert.InDelta(t, 1., y, tol)
	}
}

func TestKind(t *testing.T) {
	for _, label := range []string{"Spherical", "regular_solid", "Irregular-Solid", "regularsolid"} {
		k, err := ParseKind(label)
		require.NoError(t, err)
		assert.Contains(t, KindPrintNames, k.String())
	}
	k, _ := ParseKind("RegularSolid")
	assert.Equal(t, RegularSolid, k)
	_, err := ParseKind("hemispherical")
	assert.Error(t, err)
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
