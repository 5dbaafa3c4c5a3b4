package quadrature

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// GaussJacobi returns the n nodes and weights of the Gauss quadrature for the
// weight (1-x)^alpha (1+x)^beta on [-1,1], nodes ascending. The rule is exact
// for polynomials up to degree 2n-1.
func GaussJacobi(alpha, beta float64, n int) (X, W []float64, err error) {
	var (
		fac        float64
		h1, d0, d1 []float64
		VVr        *mat.Dense
	)
	if n < 1 {
		err = fmt.Errorf("gauss quadrature needs at least one node, have %d", n)
		return
	}
	if alpha <= -1 || beta <= -1 {
		err = fmt.Errorf("jacobi weight needs alpha, beta > -1, have %v, %v", alpha, beta)
		return
	}
	if n == 1 {
		X = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		W = []float64{gamma0(alpha, beta)}
		return
	}
	N := n - 1

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: (beta^2-alpha^2)/(h1*(h1+2))
	d0 = make([]float64, N+1)
	fac = beta*beta - alpha*alpha
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// First entry reduced by (alpha+beta), which is 0/0 when alpha+beta vanishes
	d0[0] = (beta - alpha) / (alpha + beta + 2.)

	// 1st off diagonal
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := symTriDiagonal(d0, d1)

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		err = fmt.Errorf("eigenvalue decomposition of the jacobi matrix failed, n = %d", n)
		return
	}
	X = eig.Values(nil)

	VVr = mat.NewDense(n, n, nil)
	eig.VectorsTo(VVr)
	g0 := gamma0(alpha, beta)
	W = make([]float64, n)
	for i, v := range VVr.RawRowView(0) {
		W[i] = v * v * g0
	}
	return
}

// GaussLegendre is the Gauss-Jacobi rule with unit weight
func GaussLegendre(n int) (X, W []float64, err error) {
	return GaussJacobi(0, 0, n)
}

// Integrate applies a rule to f
func Integrate(f func(x float64) float64, X, W []float64) (sum float64) {
	for i, x := range X {
		sum += W[i] * f(x)
	}
	return
}

func symTriDiagonal(d0, d1 []float64) (S *mat.SymDense) {
	n := len(d0)
	S = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		S.SetSym(i, i, d0[i])
		if i < n-1 {
			S.SetSym(i, i+1, d1[i])
		}
	}
	return
}

// gamma0 is the integral of the jacobi weight over [-1,1]
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}
