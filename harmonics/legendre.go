package harmonics

import (
	"fmt"
	"math"
)

// Legendre returns the associated Legendre function P_l^m(x) for 0 <= m <= l
// and |x| <= 1, including the Condon-Shortley phase (-1)^m. It is the plain,
// unnormalized recurrence and loses range quickly with l; the harmonics use
// the normalized recurrence instead.
func Legendre(l, m int, x float64) (p float64, err error) {
	if m < 0 || m > l {
		err = fmt.Errorf("%w: legendre order m = %d outside [0, %d]", ErrDomain, m, l)
		return
	}
	if math.Abs(x) > 1 {
		err = fmt.Errorf("%w: legendre argument x = %v outside [-1, 1]", ErrDomain, x)
		return
	}
	pmm := 1.
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm, nil
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1, nil
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (float64(2*ll-1)*x*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}
	return pll, nil
}

// normalized returns sqrt((2l+1)/(4Pi) (l-m)!/(l+m)!) P_l^m(x) for
// 0 <= m <= l, given x = cos(polar) and s = sin(polar) >= 0. With csPhase
// false the (-1)^m factor is left out.
//
// The recurrence runs on the normalized functions so that the factorials are
// never formed.
func normalized(l, m int, x, s float64, csPhase bool) (p float64) {
	pmm := 0.5 / math.SqrtPi
	for k := 1; k <= m; k++ {
		fk := float64(k)
		pmm *= math.Sqrt((2*fk+1)/(2*fk)) * s
		if csPhase {
			pmm = -pmm
		}
	}
	if l == m {
		return pmm
	}
	fm := float64(m)
	pmmp1 := x * math.Sqrt(2*fm+3) * pmm
	if l == m+1 {
		return pmmp1
	}
	for ll := m + 2; ll <= l; ll++ {
		fl := float64(ll)
		a := math.Sqrt((4*fl*fl - 1) / (fl*fl - fm*fm))
		b := math.Sqrt(((fl-1)*(fl-1) - fm*fm) / (4*(fl-1)*(fl-1) - 1))
		p = a * (x*pmmp1 - b*pmm)
		pmm = pmmp1
		pmmp1 = p
	}
	return
}
