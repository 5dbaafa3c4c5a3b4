package harmonics

import (
	"math"

	"github.com/notargets/gosph/coords"
)

// Cartesian closed forms of the real harmonics through degree 3
var (
	c00 = 0.5 * math.Sqrt(1/math.Pi)
	c1  = math.Sqrt(3 / (4 * math.Pi))
	c2a = 0.5 * math.Sqrt(15/math.Pi)
	c20 = 0.25 * math.Sqrt(5/math.Pi)
	c22 = 0.25 * math.Sqrt(15/math.Pi)
	c33 = 0.25 * math.Sqrt(35/(2*math.Pi))
	c32 = 0.5 * math.Sqrt(105/math.Pi)
	c31 = 0.25 * math.Sqrt(21/(2*math.Pi))
	c30 = 0.25 * math.Sqrt(7/math.Pi)
	c3b = 0.25 * math.Sqrt(105/math.Pi)
)

// RealClosedForm evaluates the real harmonic from the Cartesian components of
// p through degree 3 and defers to Real above that, or at the origin
func RealClosedForm(l, m int, p coords.Coordinates) (y float64, err error) {
	if err = checkDegreeOrder(l, m); err != nil {
		return
	}
	r := p.R()
	if l > 3 || r == 0 {
		return Real(l, m, p)
	}
	x, yy, z := p.X()/r, p.Y()/r, p.Z()/r
	switch l {
	case 0:
		y = c00
	case 1:
		switch m {
		case -1:
			y = c1 * yy
		case 0:
			y = c1 * z
		case 1:
			y = c1 * x
		}
	case 2:
		switch m {
		case -2:
			y = c2a * x * yy
		case -1:
			y = c2a * yy * z
		case 0:
			y = c20 * (2*z*z - x*x - yy*yy)
		case 1:
			y = c2a * x * z
		case 2:
			y = c22 * (x*x - yy*yy)
		}
	case 3:
		switch m {
		case -3:
			y = c33 * (3*x*x - yy*yy) * yy
		case -2:
			y = c32 * x * yy * z
		case -1:
			y = c31 * yy * (4*z*z - x*x - yy*yy)
		case 0:
			y = c30 * z * (2*z*z - 3*x*x - 3*yy*yy)
		case 1:
			y = c31 * x * (4*z*z - x*x - yy*yy)
		case 2:
			y = c3b * (x*x - yy*yy) * z
		case 3:
			y = c33 * (x*x - 3*yy*yy) * x
		}
	}
	err = checkFinite(l, m, y)
	return
}
