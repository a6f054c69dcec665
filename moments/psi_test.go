package moments

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mathext"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eulerGamma = 0.57721566490153286061

func TestPsi(t *testing.T) {
	t.Run("known values", func(t *testing.T) {
		v, err := Psi(1)
		require.NoError(t, err)
		assert.InDelta(t, -eulerGamma, v, 1.e-15)
		v, err = Psi(0.5)
		require.NoError(t, err)
		assert.InDelta(t, -eulerGamma-2*math.Ln2, v, 1.e-15)
		// psi(n+1) = H_n - gamma
		v, err = Psi(11)
		require.NoError(t, err)
		h := 0.
		for i := 1; i <= 10; i++ {
			h += 1 / float64(i)
		}
		assert.InDelta(t, h-eulerGamma, v, 1.e-14)
	})
	t.Run("half integers", func(t *testing.T) {
		// psi(k+1/2) = -gamma - 2 ln2 + sum 2/(2j-1)
		want := -eulerGamma - 2*math.Ln2
		for k := 0; k <= 10; k++ {
			if k > 0 {
				want += 2 / float64(2*k-1)
			}
			v, err := Psi(float64(k) + 0.5)
			require.NoError(t, err)
			assert.InDelta(t, want, v, 1.e-14*math.Max(1, math.Abs(want)), "k = %d", k)
		}
	})
	t.Run("quarters", func(t *testing.T) {
		q1 := -eulerGamma - math.Pi/2 - 3*math.Ln2
		q3 := -eulerGamma + math.Pi/2 - 3*math.Ln2
		q7 := q1 + 4
		for j := 1; j < 7; j++ {
			q7 += 1 / (0.25 + float64(j))
		}
		for _, tc := range []struct{ x, want float64 }{
			{0.25, q1},
			{0.75, q3},
			{1.25, q1 + 4},
			{3.25, q1 + 4 + 1/1.25 + 1/2.25},
			{7.25, q7},
			{-0.75, q1 + 4./3.},
		} {
			v, err := Psi(tc.x)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, v, 1.e-14*math.Max(1, math.Abs(tc.want)), "x = %g", tc.x)
		}
	})
	t.Run("against gonum digamma", func(t *testing.T) {
		for _, x := range []float64{-3.7, -1.5, -0.25, 0.01, 0.3, 1.4616321, 2.5, 2.999, 3.001, 7.25, 42, 1.e6} {
			v, err := Psi(x)
			require.NoError(t, err)
			ref := mathext.Digamma(x)
			fmt.Printf("psi(%g) = %.16g, gonum %.16g\n", x, v, ref)
			// mathext.Digamma is good to about 5e-11
			assert.InDelta(t, ref, v, 1.e-9*math.Max(1, math.Abs(ref)))
		}
	})
	t.Run("recurrence", func(t *testing.T) {
		for _, x := range []float64{0.2, 0.9, 2.7, 5.5} {
			p0, err := Psi(x)
			require.NoError(t, err)
			p1, err := Psi(x + 1)
			require.NoError(t, err)
			assert.InDelta(t, 1/x, p1-p0, 1.e-13)
		}
	})
	t.Run("poles", func(t *testing.T) {
		for _, x := range []float64{0, -1, -2, -17, math.NaN()} {
			_, err := Psi(x)
			assert.True(t, errors.Is(err, ErrDomain), "x = %g", x)
		}
	})
}
