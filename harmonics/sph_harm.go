package harmonics

import (
	"errors"
	"fmt"
	"math"

	"github.com/notargets/gosph/coords"
)

var (
	// ErrDomain is returned for a degree/order combination, or argument, outside
	// the domain of the function
	ErrDomain = errors.New("argument outside domain")
	// ErrNotFinite is returned when an evaluation overflows or hits a
	// singularity
	ErrNotFinite = errors.New("result is not finite")
)

func checkDegreeOrder(l, m int) error {
	if l < 0 {
		return fmt.Errorf("%w: degree n = %d is negative", ErrDomain, l)
	}
	if m < -l || m > l {
		return fmt.Errorf("%w: order m = %d outside [-%d, %d]", ErrDomain, m, l, l)
	}
	return nil
}

func checkFinite(l, m int, v ...float64) error {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: degree %d, order %d", ErrNotFinite, l, m)
		}
	}
	return nil
}

// SphHarm evaluates the complex spherical harmonic Y_n^m at azimuthal angle
// theta and polar angle phi:
//
//	Y_n^m = sqrt((2n+1)/(4Pi) (n-m)!/(n+m)!) P_n^m(cos phi) exp(i m theta)
//
// with the Condon-Shortley phase carried by P_n^m, and
// Y_n^-m = (-1)^m conj(Y_n^m). The argument order matches scipy.special.sph_harm.
func SphHarm(m, n int, theta, phi float64) (y complex128, err error) {
	if err = checkDegreeOrder(n, m); err != nil {
		return
	}
	am := m
	if m < 0 {
		am = -m
	}
	v := normalized(n, am, math.Cos(phi), math.Abs(math.Sin(phi)), true)
	if m < 0 && am%2 == 1 {
		v = -v
	}
	sin, cos := math.Sincos(float64(m) * theta)
	re, im := v*cos, v*sin
	if err = checkFinite(n, m, re, im); err != nil {
		return
	}
	y = complex(re, im)
	return
}

// Complex evaluates Y_l^m at p, using only the angles of p
func Complex(l, m int, p coords.Coordinates) (complex128, error) {
	return SphHarm(m, l, p.Azimuth(), p.Polar())
}

// Real evaluates the real spherical harmonic of degree l and order m at p.
// Negative orders carry the sine terms, positive orders the cosine terms, and
// the Condon-Shortley phase is not applied.
func Real(l, m int, p coords.Coordinates) (y float64, err error) {
	if err = checkDegreeOrder(l, m); err != nil {
		return
	}
	polar, az := p.Polar(), p.Azimuth()
	x, s := math.Cos(polar), math.Abs(math.Sin(polar))
	switch {
	case m == 0:
		y = normalized(l, 0, x, s, false)
	case m > 0:
		y = math.Sqrt2 * normalized(l, m, x, s, false) * math.Cos(float64(m)*az)
	default:
		y = math.Sqrt2 * normalized(l, -m, x, s, false) * math.Sin(float64(-m)*az)
	}
	err = checkFinite(l, m, y)
	return
}
