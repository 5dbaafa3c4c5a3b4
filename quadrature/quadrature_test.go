package quadrature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestGaussJacobi_PartitionAndFirstMoment(t *testing.T) {
	const (
		α   = 0.3
		β   = 0.7
		N   = 6
		tol = 1e-12
	)
	x, w, err := GaussJacobi(α, β, N)
	require.NoError(t, err)

	// ∫ (1-x)^α (1+x)^β dx = 2^{α+β+1} B(α+1, β+1)
	exactZero := math.Pow(2, α+β+1) * beta(α+1, β+1)
	// ∫ x (1-x)^α (1+x)^β dx = (β-α)/(α+β+2) * exactZero
	exactOne := (β - α) / (α + β + 2) * exactZero

	var sum0, sum1 float64
	for i := range x {
		sum0 += w[i]
		sum1 += x[i] * w[i]
	}
	assert.InDeltaf(t, exactZero, sum0, tol, "sum(w) = %v, want %v", sum0, exactZero)
	assert.InDeltaf(t, exactOne, sum1, tol, "sum(x*w) = %v, want %v", sum1, exactOne)
}

func TestGaussJacobi_UnequalWeights(t *testing.T) {
	for _, ab := range [][2]float64{{0.3, 0.7}, {1, 0}, {0, 2}, {0.5, -0.5}, {-0.5, 0.5}, {2.5, 1}} {
		α, β := ab[0], ab[1]
		for _, n := range []int{1, 2, 4, 7} {
			X, W, err := GaussJacobi(α, β, n)
			require.NoError(t, err)
			// Nodes are the roots of P_n^(α,β)
			for i := range X {
				assert.InDeltaf(t, 0, jacobiP(n, α, β, X[i]), 1.e-10, "α = %v, β = %v, P_%d(%v) != 0", α, β, n, X[i])
			}
			exactZero := math.Pow(2, α+β+1) * beta(α+1, β+1)
			exactOne := (β - α) / (α + β + 2) * exactZero
			assert.InDeltaf(t, exactZero, floats.Sum(W), 1.e-12, "α = %v, β = %v, n = %d", α, β, n)
			assert.InDeltaf(t, exactOne, floats.Dot(X, W), 1.e-12, "α = %v, β = %v, n = %d", α, β, n)
		}
	}
	// Weight sqrt((1-x)/(1+x)) integrates to Pi, its first moment to -Pi/2
	X, W, err := GaussJacobi(0.5, -0.5, 5)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, floats.Sum(W), 1.e-12)
	assert.InDelta(t, -math.Pi/2, floats.Dot(X, W), 1.e-12)
}

func TestGaussLegendre(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 11, 20} {
		X, W, err := GaussLegendre(n)
		require.NoError(t, err)
		require.Equal(t, n, len(X))
		require.Equal(t, n, len(W))
		assert.InDelta(t, 2., floats.Sum(W), 1.e-13)
		for i := range X {
			assert.True(t, X[i] > -1 && X[i] < 1, "node %d = %v outside (-1,1)", i, X[i])
			assert.True(t, W[i] > 0, "weight %d = %v not positive", i, W[i])
			if i > 0 {
				assert.True(t, X[i] > X[i-1], "nodes not ascending at %d", i)
			}
			// Nodes are the roots of P_n
			assert.InDeltaf(t, 0, legendreP(n, X[i]), 1.e-12, "P_%d(%v) != 0", n, X[i])
		}
		// Symmetric about the origin
		for i := range X {
			assert.InDelta(t, -X[i], X[n-1-i], 1.e-13)
			assert.InDelta(t, W[i], W[n-1-i], 1.e-13)
		}
		// Exact through degree 2n-1
		for k := 0; k <= 2*n-1; k++ {
			got := Integrate(func(x float64) float64 { return math.Pow(x, float64(k)) }, X, W)
			want := 0.
			if k%2 == 0 {
				want = 2. / float64(k+1)
			}
			assert.InDeltaf(t, want, got, 1.e-13, "n = %d, moment %d", n, k)
		}
	}
}

func TestGaussLegendre_AgainstGonum(t *testing.T) {
	f := func(x float64) float64 { return math.Exp(x) * math.Cos(3*x) }
	for _, n := range []int{4, 8, 16} {
		X, W, err := GaussLegendre(n)
		require.NoError(t, err)
		ours := Integrate(f, X, W)
		theirs := quad.Fixed(f, -1, 1, n, quad.Legendre{}, 0)
		assert.InDeltaf(t, theirs, ours, 1.e-12, "n = %d", n)
	}
}

func TestGaussJacobi_Errors(t *testing.T) {
	_, _, err := GaussJacobi(0, 0, 0)
	assert.Error(t, err)
	_, _, err = GaussJacobi(-1, 0, 3)
	assert.Error(t, err)
	X, W, err := GaussJacobi(1, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, (2.-1.)/(1+2+2.), X[0], 1.e-15)
	assert.InDelta(t, gamma0(1, 2), W[0], 1.e-15)
}

// legendreP by the three term recurrence
func legendreP(n int, x float64) (p float64) {
	p0, p1 := 1., x
	if n == 0 {
		return p0
	}
	for k := 2; k <= n; k++ {
		fk := float64(k)
		p0, p1 = p1, ((2*fk-1)*x*p1-(fk-1)*p0)/fk
	}
	return p1
}

// jacobiP by the three term recurrence in n
func jacobiP(n int, a, b, x float64) float64 {
	p0, p1 := 1., (a+1)+(a+b+2)*(x-1)/2
	if n == 0 {
		return p0
	}
	for k := 2; k <= n; k++ {
		fk := float64(k)
		c := 2*fk + a + b
		p0, p1 = p1, ((c-1)*(c*(c-2)*x+a*a-b*b)*p1-2*(fk+a-1)*(fk+b-1)*c*p0)/(2*fk*(fk+a+b)*(c-2))
	}
	return p1
}

func beta(a, b float64) float64 {
	return math.Gamma(a) * math.Gamma(b) / math.Gamma(a+b)
}
