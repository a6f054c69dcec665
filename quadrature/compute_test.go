package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every generator reproduces exactly the moments it guarantees, and for small
// orders no more.
func TestComputedExactness(t *testing.T) {
	params := map[string][]Params{
		"gen-hermite":  {{Alpha: 0.5}, {Alpha: 2}},
		"gen-laguerre": {{Alpha: -0.5}, {Alpha: 1.25}},
		"jacobi":       {{Alpha: 0.5, Beta: -0.25}, {Alpha: 2, Beta: 1}, {Alpha: 1, Beta: 1}},
		"gegenbauer":   {{Alpha: -0.5}, {Alpha: 0.75}, {Alpha: 2.5}},
	}
	for _, f := range Families() {
		if f.Compute == nil {
			continue
		}
		ps, ok := params[f.Name]
		if !ok {
			ps = []Params{{}}
		}
		t.Run(f.Name, func(t *testing.T) {
			for _, p := range ps {
				for _, solver := range []Solver{SolverIMTQLX, SolverEigenSym} {
					for n := f.MinOrder; n <= 8; n++ {
						r, err := f.Generate(n, p, Options{Source: SourceCompute, Solver: solver})
						require.NoError(t, err, "n = %d %+v", n, p)
						require.Equal(t, n, r.Order())
						rep, err := Check(f, r, p)
						require.NoError(t, err)
						assert.Equal(t, rep.Expected, rep.Degree, "n = %d %+v errors %v", n, p, rep.Errors)
						assert.True(t, rep.Symmetric, "n = %d %+v", n, p)
						if f.Symmetric && n%2 == 1 {
							assert.Equal(t, 0., r.X[n/2], "n = %d", n)
						}
					}
				}
			}
		})
	}
}

func TestChebyshev(t *testing.T) {
	r, err := Chebyshev1Compute(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-math.Sqrt2 / 2, math.Sqrt2 / 2}, r.X, 1.e-15)
	assert.InDeltaSlice(t, []float64{math.Pi / 2, math.Pi / 2}, r.W, 1.e-15)
	r, err = Chebyshev2Compute(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, r.X)
	assert.InDelta(t, math.Pi/2, r.W[0], 1.e-15)
	r, err = Chebyshev3Compute(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 1}, r.X)
	assert.InDeltaSlice(t, []float64{math.Pi / 4, math.Pi / 2, math.Pi / 4}, r.W, 1.e-15)
	for n := 1; n <= 40; n++ {
		r, err = Chebyshev3Compute(n)
		require.NoError(t, err)
		// The weights of the Lobatto variant sum to pi, not 2
		assert.InDelta(t, math.Pi, r.Sum(), 1.e-13)
	}
	for _, c := range []func(int) (Rule, error){Chebyshev1Compute, Chebyshev2Compute, Chebyshev3Compute} {
		_, err = c(0)
		assert.True(t, errors.Is(err, ErrInvalidOrder))
	}
}

func TestInterpolatory(t *testing.T) {
	r, err := ClenshawCurtisCompute(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 1}, r.X)
	assert.InDeltaSlice(t, []float64{1. / 3., 4. / 3., 1. / 3.}, r.W, 1.e-15)
	r, err = ClenshawCurtisCompute(1)
	require.NoError(t, err)
	assert.Equal(t, Rule{X: []float64{0}, W: []float64{2}}, r)
	for n := 1; n <= 40; n++ {
		for _, c := range []func(int) (Rule, error){ClenshawCurtisCompute, Fejer1Compute, Fejer2Compute} {
			r, err = c(n)
			require.NoError(t, err)
			assert.InDelta(t, 2., r.Sum(), 1.e-13)
			assert.True(t, r.IsSymmetric(0))
		}
	}
	// Fejer type 2 on two points sits at the interior extrema of T3
	r, err = Fejer2Compute(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.5, 0.5}, r.X, 1.e-15)
	assert.InDeltaSlice(t, []float64{1, 1}, r.W, 1.e-15)
}

func TestLegendreDR(t *testing.T) {
	for n := 1; n <= 40; n++ {
		r1, err := LegendreDRCompute(n)
		require.NoError(t, err)
		r2, err := LegendreEKCompute(n)
		require.NoError(t, err)
		assert.InDeltaSlice(t, r2.X, r1.X, 1.e-13, "n = %d", n)
		assert.InDeltaSlice(t, r2.W, r1.W, 1.e-13, "n = %d", n)
		assert.True(t, r1.IsSymmetric(0))
	}
	_, err := LegendreDRCompute(-3)
	assert.True(t, errors.Is(err, ErrInvalidOrder))
}

func TestGegenbauer(t *testing.T) {
	for _, alpha := range []float64{-0.5, 0, 0.5, 1, 2.5} {
		for n := 1; n < 30; n++ {
			rg, err := GegenbauerSSCompute(n, alpha)
			require.NoError(t, err, "n = %d alpha = %g", n, alpha)
			rj, err := JacobiEKCompute(n, alpha, alpha)
			require.NoError(t, err)
			assert.InDeltaSlice(t, rj.X, rg.X, 1.e-10, "n = %d alpha = %g", n, alpha)
			assert.InDeltaSlice(t, rj.W, rg.W, 1.e-10, "n = %d alpha = %g", n, alpha)
		}
	}
	// large alpha, lower roots start from their mirrors
	for _, alpha := range []float64{5, 10, 20, 30, 50} {
		for n := 1; n <= 40; n++ {
			rg, err := GegenbauerSSCompute(n, alpha)
			require.NoError(t, err, "n = %d alpha = %g", n, alpha)
			rj, err := JacobiEKCompute(n, alpha, alpha)
			require.NoError(t, err)
			assert.InDeltaSlice(t, rj.X, rg.X, 1.e-10, "n = %d alpha = %g", n, alpha)
		}
	}
	rg, err := GegenbauerSSCompute(2, 20)
	require.NoError(t, err)
	rj, err := JacobiEKCompute(2, 20, 20)
	require.NoError(t, err)
	assert.InDeltaSlice(t, rj.X, rg.X, 1.e-15)
	assert.InEpsilonSlice(t, rj.W, rg.W, 1.e-13)

	r, err := GegenbauerSSCompute(3, 0.5)
	require.NoError(t, err)
	// Gauss-Chebyshev of the second kind
	assert.InDeltaSlice(t, []float64{-math.Sqrt2 / 2, 0, math.Sqrt2 / 2}, r.X, 1.e-14)
	assert.InDeltaSlice(t, []float64{math.Pi / 8, math.Pi / 4, math.Pi / 8}, r.W, 1.e-14)
	_, err = GegenbauerSSCompute(3, -1)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	_, err = GegenbauerSSCompute(0, 1)
	assert.True(t, errors.Is(err, ErrInvalidOrder))
}

func TestLobattoRadau(t *testing.T) {
	r, err := LobattoCompute(4)
	require.NoError(t, err)
	s5 := 1 / math.Sqrt(5)
	assert.InDeltaSlice(t, []float64{-1, -s5, s5, 1}, r.X, 1.e-15)
	assert.InDeltaSlice(t, []float64{1. / 6., 5. / 6., 5. / 6., 1. / 6.}, r.W, 1.e-15)
	for n := 3; n <= 30; n++ {
		r, err = LobattoCompute(n)
		require.NoError(t, err)
		assert.Equal(t, -1., r.X[0])
		assert.Equal(t, 1., r.X[n-1])
		// Interior abscissas are the zeros of P'(n-1)
		for _, v := range GradJacobiP(r.X[1:n-1], 0, 0, n-1) {
			assert.InDelta(t, 0., v, 1.e-10, "n = %d", n)
		}
	}
	_, err = LobattoCompute(1)
	var oe *OrderError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "n >= 2", oe.Legal)

	r, err = RadauCompute(3)
	require.NoError(t, err)
	s6 := math.Sqrt(6)
	assert.InDeltaSlice(t, []float64{-1, (1 - s6) / 5, (1 + s6) / 5}, r.X, 1.e-15)
	assert.InDeltaSlice(t, []float64{2. / 9., (16 + s6) / 18, (16 - s6) / 18}, r.W, 1.e-15)
	r, err = RadauCompute(1)
	require.NoError(t, err)
	assert.Equal(t, Rule{X: []float64{-1}, W: []float64{2}}, r)
	for n := 2; n <= 25; n++ {
		r, err = RadauCompute(n)
		require.NoError(t, err)
		assert.InDelta(t, 2., r.Sum(), 1.e-13)
	}
}

func TestNewtonCotes(t *testing.T) {
	w := NewtonCotesWeights([]float64{-1, 0, 1}, -1, 1)
	assert.InDeltaSlice(t, []float64{1. / 3., 4. / 3., 1. / 3.}, w, 1.e-15)
	// Simpson's 3/8 rule
	w = NewtonCotesWeights([]float64{0, 1, 2, 3}, 0, 3)
	assert.InDeltaSlice(t, []float64{3. / 8., 9. / 8., 9. / 8., 3. / 8.}, w, 1.e-14)

	r, err := NCCCompute(1)
	require.NoError(t, err)
	assert.Equal(t, Rule{X: []float64{0}, W: []float64{2}}, r)
	r, err = NCOCompute(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1. / 3., 1. / 3.}, r.X, 1.e-15)
	assert.InDeltaSlice(t, []float64{1, 1}, r.W, 1.e-15)
	r, err = NCOHCompute(2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-0.5, 0.5}, r.X, 1.e-15)

	r, err = AdamsBashforthCompute(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -1}, r.X)
	assert.InDeltaSlice(t, []float64{1.5, -0.5}, r.W, 1.e-15)
	r, err = AdamsMoultonCompute(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -1}, r.X)
	assert.InDeltaSlice(t, []float64{5. / 12., 8. / 12., -1. / 12.}, r.W, 1.e-15)

	for _, c := range []func(int) (Rule, error){NCCCompute, NCOCompute, NCOHCompute, AdamsBashforthCompute, AdamsMoultonCompute} {
		_, err = c(0)
		assert.True(t, errors.Is(err, ErrInvalidOrder))
	}
}
