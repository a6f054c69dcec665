package quadrature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJacobiP(t *testing.T) {
	// Orthonormal under the Gauss-Jacobi rule that integrates their products
	for _, ab := range [][2]float64{{0, 0}, {0.5, -0.5}, {1, 2}} {
		alpha, beta := ab[0], ab[1]
		r, err := JacobiEKCompute(12, alpha, beta)
		require.NoError(t, err)
		N := 8
		P := make([][]float64, N+1)
		for i := range P {
			P[i] = JacobiP(r.X, alpha, beta, i)
		}
		for i := 0; i <= N; i++ {
			for j := 0; j <= N; j++ {
				var sum float64
				for k, w := range r.W {
					sum += w * P[i][k] * P[j][k]
				}
				if i == j {
					assert.InDelta(t, 1., sum, 1.e-12, "i=%d j=%d %v", i, j, ab)
				} else {
					assert.InDelta(t, 0., sum, 1.e-12, "i=%d j=%d %v", i, j, ab)
				}
			}
		}
	}
	// Normalized Legendre P1 = sqrt(3/2) x
	p := JacobiP([]float64{-1, 0.5, 1}, 0, 0, 1)
	assert.InDeltaSlice(t, []float64{-1.224744871391589, 0.6123724356957945, 1.224744871391589}, p, 1.e-15)
	g := GradJacobiP([]float64{0.3}, 0, 0, 1)
	assert.InDelta(t, 1.224744871391589, g[0], 1.e-15)
	assert.Equal(t, []float64{0, 0}, GradJacobiP([]float64{0.1, 0.2}, 0, 0, 0))
}
