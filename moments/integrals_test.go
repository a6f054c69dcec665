package moments

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mathext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimpleIntegrals(t *testing.T) {
	sqpi := math.Sqrt(math.Pi)
	// Odd moments of symmetric weights vanish
	for k := 1; k < 20; k += 2 {
		assert.Equal(t, 0., LegendreIntegral(k))
		assert.Equal(t, 0., Chebyshev1Integral(k))
		assert.Equal(t, 0., Chebyshev2Integral(k))
		assert.Equal(t, 0., HermiteIntegral(k))
		assert.Equal(t, 0., HermiteProbabilistIntegral(k))
	}
	assert.InDelta(t, math.Pi, Chebyshev1Integral(0), 1.e-15)
	assert.InDelta(t, math.Pi/2, Chebyshev1Integral(2), 1.e-15)
	assert.InDelta(t, 3*math.Pi/8, Chebyshev1Integral(4), 1.e-15)
	assert.InDelta(t, math.Pi/2, Chebyshev2Integral(0), 1.e-15)
	assert.InDelta(t, math.Pi/8, Chebyshev2Integral(2), 1.e-15)
	assert.InDelta(t, sqpi, HermiteIntegral(0), 1.e-15)
	assert.InDelta(t, sqpi/2, HermiteIntegral(2), 1.e-15)
	assert.InDelta(t, 3*sqpi/4, HermiteIntegral(4), 1.e-15)
	assert.InDelta(t, math.Sqrt(2*math.Pi), HermiteProbabilistIntegral(2), 1.e-14)
	assert.InDelta(t, 3*math.Sqrt(2*math.Pi), HermiteProbabilistIntegral(4), 1.e-14)
	assert.Equal(t, 24., LaguerreIntegral(4))
	assert.Equal(t, 1., LaguerreIntegral(0))
	assert.InDelta(t, 21., MonomialIntegral(2, 1, 4), 1.e-14)
	assert.True(t, math.IsNaN(LegendreIntegral(-1)))
	assert.True(t, math.IsNaN(MonomialIntegral(-2, 0, 1)))

	t.Run("legendre against gonum quadrature", func(t *testing.T) {
		for k := 0; k < 19; k++ {
			kk := k
			f := func(x float64) float64 { return math.Pow(x, float64(kk)) }
			ref := quad.Fixed(f, -1, 1, 10, quad.Legendre{}, 0)
			assert.InDelta(t, ref, LegendreIntegral(k), 1.e-14, "k = %d", k)
		}
		f := func(x float64) float64 { return x * x * x }
		assert.InDelta(t, quad.Fixed(f, -0.5, 2, 4, quad.Legendre{}, 0), MonomialIntegral(3, -0.5, 2), 1.e-13)
	})
}

func TestParameterIntegrals(t *testing.T) {
	t.Run("generalized families reduce at alpha zero", func(t *testing.T) {
		for k := 0; k < 12; k++ {
			v, err := GenHermiteIntegral(k, 0)
			require.NoError(t, err)
			assert.InDelta(t, HermiteIntegral(k), v, 1.e-13*math.Max(1, HermiteIntegral(k)))
			v, err = GenLaguerreIntegral(k, 0)
			require.NoError(t, err)
			assert.InEpsilon(t, LaguerreIntegral(k), v, 1.e-13)
			v, err = GegenbauerIntegral(k, 0)
			require.NoError(t, err)
			assert.InDelta(t, LegendreIntegral(k), v, 1.e-14)
			v, err = JacobiIntegral(k, 0, 0)
			require.NoError(t, err)
			assert.InDelta(t, LegendreIntegral(k), v, 1.e-14)
		}
	})
	t.Run("gegenbauer against beta function", func(t *testing.T) {
		for _, alpha := range []float64{-0.5, -0.25, 0.5, 1, 2.5} {
			for k := 0; k < 10; k += 2 {
				v, err := GegenbauerIntegral(k, alpha)
				require.NoError(t, err)
				ref := mathext.Beta(float64(k+1)/2, alpha+1)
				assert.InEpsilon(t, ref, v, 1.e-12, "k = %d alpha = %g", k, alpha)
			}
		}
		v, err := GegenbauerIntegral(0, -0.5)
		require.NoError(t, err)
		assert.InDelta(t, Chebyshev1Integral(0), v, 1.e-13)
		v, err = GegenbauerIntegral(2, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, Chebyshev2Integral(2), v, 1.e-13)
	})
	t.Run("jacobi", func(t *testing.T) {
		for _, ab := range [][2]float64{{0.5, 0.5}, {1, 0}, {0, 2}, {-0.5, 1.5}, {2.25, 0.75}} {
			alpha, beta := ab[0], ab[1]
			m0 := math.Pow(2, alpha+beta+1) * mathext.Beta(alpha+1, beta+1)
			v, err := JacobiIntegral(0, alpha, beta)
			require.NoError(t, err)
			assert.InEpsilon(t, m0, v, 1.e-12)
			v, err = JacobiIntegral(1, alpha, beta)
			require.NoError(t, err)
			assert.InDelta(t, m0*(beta-alpha)/(alpha+beta+2), v, 1.e-12)
		}
		for k := 0; k < 8; k++ {
			vj, err := JacobiIntegral(k, 1.5, 1.5)
			require.NoError(t, err)
			vg, err := GegenbauerIntegral(k, 1.5)
			require.NoError(t, err)
			assert.InDelta(t, vg, vj, 1.e-13)
		}
	})
	t.Run("domain", func(t *testing.T) {
		var err error
		_, err = GenHermiteIntegral(2, -1)
		assert.True(t, errors.Is(err, ErrDomain))
		_, err = GenLaguerreIntegral(2, -3)
		assert.True(t, errors.Is(err, ErrDomain))
		_, err = JacobiIntegral(2, 0, -1)
		assert.True(t, errors.Is(err, ErrDomain))
		_, err = GegenbauerIntegral(2, math.NaN())
		assert.True(t, errors.Is(err, ErrDomain))
	})
}
