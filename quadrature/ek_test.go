package quadrature

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegendreEK(t *testing.T) {
	r, err := LegendreEKCompute(3)
	require.NoError(t, err)
	fmt.Printf("x = %v\nw = %v\n", r.X, r.W)
	assert.InDeltaSlice(t, []float64{-math.Sqrt(0.6), 0, math.Sqrt(0.6)}, r.X, 1.e-15)
	assert.InDeltaSlice(t, []float64{5. / 9., 8. / 9., 5. / 9.}, r.W, 1.e-15)
	assert.Equal(t, 0., r.X[1])

	t.Run("against gonum", func(t *testing.T) {
		for _, n := range []int{1, 2, 5, 12, 31, 64} {
			r, err := LegendreEKCompute(n)
			require.NoError(t, err)
			x, w := make([]float64, n), make([]float64, n)
			quad.Legendre{}.FixedLocations(x, w, -1, 1)
			inds := make([]int, n)
			floats.Argsort(x, inds)
			ws := make([]float64, n)
			for i, j := range inds {
				ws[i] = w[j]
			}
			w = ws
			assert.True(t, floats.EqualApprox(x, r.X, 1.e-13), "n = %d", n)
			assert.True(t, floats.EqualApprox(w, r.W, 1.e-13), "n = %d", n)
		}
	})
	t.Run("solvers agree", func(t *testing.T) {
		for _, n := range []int{1, 4, 9, 40} {
			r1, err := legendreEK(n, SolverIMTQLX)
			require.NoError(t, err)
			r2, err := legendreEK(n, SolverEigenSym)
			require.NoError(t, err)
			assert.InDeltaSlice(t, r1.X, r2.X, 1.e-13)
			assert.InDeltaSlice(t, r1.W, r2.W, 1.e-13)
		}
	})
	_, err = LegendreEKCompute(0)
	assert.True(t, errors.Is(err, ErrInvalidOrder))
}

func TestEKGenerators(t *testing.T) {
	type tcase struct {
		name    string
		compute func(n int) (Rule, error)
		measure float64
		sym     bool
	}
	g := math.Gamma
	tests := []tcase{
		{"legendre", LegendreEKCompute, 2, true},
		{"hermite", HermiteEKCompute, math.Sqrt(math.Pi), true},
		{"hermite probabilist", HermiteProbabilistEKCompute, math.Sqrt(2 * math.Pi), true},
		{"gen hermite", func(n int) (Rule, error) { return GenHermiteEKCompute(n, 1.5) }, g(1.25), true},
		{"laguerre", LaguerreEKCompute, 1, false},
		{"gen laguerre", func(n int) (Rule, error) { return GenLaguerreEKCompute(n, 0.5) }, g(1.5), false},
		{"jacobi", func(n int) (Rule, error) { return JacobiEKCompute(n, 0.5, 1.5) },
			8 * g(1.5) * g(2.5) / g(4), false},
		{"jacobi symmetric", func(n int) (Rule, error) { return JacobiEKCompute(n, -0.5, -0.5) }, math.Pi, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for n := 1; n <= 25; n++ {
				r, err := tc.compute(n)
				require.NoError(t, err)
				require.Equal(t, n, len(r.X))
				require.Equal(t, n, len(r.W))
				assert.InEpsilon(t, tc.measure, r.Sum(), 1.e-12, "n = %d", n)
				for i := 1; i < n; i++ {
					assert.Less(t, r.X[i-1], r.X[i])
				}
				if tc.sym {
					assert.True(t, r.IsSymmetric(0), "n = %d", n)
					if n%2 == 1 {
						assert.Equal(t, 0., r.X[n/2])
					}
				}
				again, _ := tc.compute(n)
				assert.Equal(t, r, again)
			}
		})
	}
	t.Run("hermite probabilist is the stretched hermite rule", func(t *testing.T) {
		r, err := HermiteProbabilistEKCompute(2)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{-1, 1}, r.X, 1.e-15)
		rh, _ := HermiteEKCompute(7)
		rp, _ := HermiteProbabilistEKCompute(7)
		for i := range rh.X {
			assert.InDelta(t, rh.X[i]*math.Sqrt2, rp.X[i], 1.e-15)
		}
	})
	t.Run("gen laguerre at zero is laguerre", func(t *testing.T) {
		r1, _ := LaguerreEKCompute(8)
		r2, _ := GenLaguerreEKCompute(8, 0)
		assert.Equal(t, r1, r2)
	})
	t.Run("jacobi roots", func(t *testing.T) {
		r, err := JacobiEKCompute(9, 0.25, 2.5)
		require.NoError(t, err)
		for _, v := range JacobiP(r.X, 0.25, 2.5, 9) {
			assert.InDelta(t, 0., v, 1.e-11)
		}
	})
	t.Run("parameters", func(t *testing.T) {
		var err error
		_, err = GenHermiteEKCompute(4, -1)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		_, err = GenLaguerreEKCompute(4, -1.5)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		_, err = JacobiEKCompute(4, 0, -1)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		_, err = JacobiEKCompute(4, math.NaN(), 0)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		_, err = HermiteProbabilistEKCompute(0)
		var oe *OrderError
		require.True(t, errors.As(err, &oe))
		assert.Equal(t, "HermiteProbabilistEKCompute", oe.Func)
	})
}

func TestSolver(t *testing.T) {
	for _, s := range []Solver{SolverIMTQLX, SolverEigenSym} {
		p, err := ParseSolver(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}
	s, err := ParseSolver("")
	require.NoError(t, err)
	assert.Equal(t, SolverIMTQLX, s)
	_, err = ParseSolver("lapack")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
