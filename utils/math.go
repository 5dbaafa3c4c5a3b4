package utils

import (
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// POW is an integer power, unrolled for the small exponents that solid
// harmonics use most
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return
}

// FactorialRatio returns (n-m)!/(n+m)! for 0 <= m <= n without forming
// either factorial
func FactorialRatio(n, m int) (r float64) {
	r = 1
	for k := n - m + 1; k <= n+m; k++ {
		r /= float64(k)
	}
	return
}

// MinusOnePow is (-1)^m
func MinusOnePow(m int) float64 {
	if m%2 == 0 {
		return 1
	}
	return -1
}

// Linspace returns N points a + k*(b-a)/N for k in [0, N), the half open
// sampling used for periodic coordinates. The step is formed first, then
// multiplied by k.
func Linspace(a, b float64, N int) (v []float64) {
	v = make([]float64, N)
	step := (b - a) / float64(N)
	for k := range v {
		v[k] = a + step*float64(k)
	}
	return
}
