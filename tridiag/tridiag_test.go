package tridiag

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

func laplacian(n int) (J Matrix) {
	d := make([]float64, n)
	e := make([]float64, n)
	for i := range d {
		d[i] = 2
		e[i] = -1
	}
	J, _ = NewMatrix(d, e)
	return
}

func TestIMTQLXLaplacian(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 10, 25, 64} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			J := laplacian(n)
			z := make([]float64, n)
			z[0] = 1
			lam, qtz, err := J.Diagonalize(z)
			require.NoError(t, err)
			require.Equal(t, n, len(lam))
			require.Equal(t, n, len(qtz))
			for k := 1; k <= n; k++ {
				s := math.Sin(float64(k) * math.Pi / float64(2*(n+1)))
				assert.InDelta(t, 4*s*s, lam[k-1], 1.e-13)
			}
			// Q is orthogonal, so Q'z keeps the norm of z
			assert.InDelta(t, 1., floats.Dot(qtz, qtz), 1.e-13)
			for i := 1; i < n; i++ {
				assert.True(t, lam[i-1] <= lam[i])
			}
		})
	}
}

func TestIMTQLXDoesNotModifyInputs(t *testing.T) {
	d := []float64{4, 1, 3, 2}
	e := []float64{0.5, 0.25, 0.125, 99}
	z := []float64{1, 0, 0, 0}
	dc, ec, zc := append([]float64{}, d...), append([]float64{}, e...), append([]float64{}, z...)
	_, _, err := IMTQLX(d, e, z)
	require.NoError(t, err)
	assert.Equal(t, dc, d)
	assert.Equal(t, ec, e)
	assert.Equal(t, zc, z)
}

func TestIMTQLXTrivial(t *testing.T) {
	lam, qtz, err := IMTQLX([]float64{3.5}, []float64{7}, []float64{0.25})
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5}, lam)
	assert.Equal(t, []float64{0.25}, qtz)

	lam, qtz, err = IMTQLX(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, len(lam))
	assert.Equal(t, 0, len(qtz))
}

func TestIMTQLXDiagonalSorts(t *testing.T) {
	// Already diagonal: only the sort runs
	lam, qtz, err := IMTQLX([]float64{3, -1, 2}, []float64{0, 0, 0}, []float64{10, 20, 30})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2, 3}, lam)
	assert.Equal(t, []float64{20, 30, 10}, qtz)
}

func TestIMTQLXDimension(t *testing.T) {
	_, _, err := IMTQLX([]float64{1, 2}, []float64{1}, []float64{1, 0})
	assert.ErrorIs(t, err, ErrDimension)
	_, err = NewMatrix([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrDimension)
}

func TestIMTQLXNotConverged(t *testing.T) {
	// NaN never satisfies the deflation test
	_, _, err := IMTQLX([]float64{1, math.NaN()}, []float64{1, 0}, []float64{1, 0})
	assert.ErrorIs(t, err, ErrNoConvergence)
}

func TestIMTQLXAgainstEigenSym(t *testing.T) {
	// Legendre Jacobi matrix, compared with the gonum solver
	for _, n := range []int{2, 7, 16, 33} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			d := make([]float64, n)
			e := make([]float64, n)
			for i := range e {
				ip1 := float64(i + 1)
				e[i] = math.Sqrt(ip1 * ip1 / (4*ip1*ip1 - 1))
			}
			J, err := NewMatrix(d, e)
			require.NoError(t, err)
			z := make([]float64, n)
			z[0] = 1
			lam, qtz, err := J.Diagonalize(z)
			require.NoError(t, err)
			lamG, first, err := J.EigenSym()
			require.NoError(t, err)
			assert.True(t, floats.EqualApprox(lam, lamG, 1.e-13))
			for i := range qtz {
				assert.InDelta(t, first[i]*first[i], qtz[i]*qtz[i], 1.e-13)
			}
		})
	}
}

func TestDenseAndSparse(t *testing.T) {
	J, err := NewMatrix([]float64{1, 2, 3}, []float64{4, 5, 0})
	require.NoError(t, err)
	expected := mat.NewSymDense(3, []float64{
		1, 4, 0,
		4, 2, 5,
		0, 5, 3,
	})
	assert.True(t, mat.Equal(expected, J.Dense()))
	assert.True(t, mat.Equal(expected, J.Sparse()))
	fmt.Printf("J = \n%v\n", mat.Formatted(J.Sparse(), mat.Squeeze()))
}

func TestResidual(t *testing.T) {
	J := laplacian(6)
	lam, _, err := J.EigenSym()
	require.NoError(t, err)
	// Eigenvectors of the discrete Laplacian are sampled sines
	for k := 1; k <= 6; k++ {
		v := make([]float64, 6)
		for i := range v {
			v[i] = math.Sin(float64((i+1)*k) * math.Pi / 7)
		}
		assert.InDelta(t, 0., J.Residual(lam[k-1], v), 1.e-13)
	}
	assert.Panics(t, func() { J.Residual(1, []float64{1}) })
}
