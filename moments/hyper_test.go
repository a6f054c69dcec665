package moments

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHyper2F1(t *testing.T) {
	t.Run("elementary closed forms", func(t *testing.T) {
		type tcase struct {
			name       string
			a, b, c, x float64
			want       float64
		}
		s := math.Sqrt(0.9)
		tests := []tcase{
			{"log series", 1, 1, 2, 0.3, -math.Log(0.7) / 0.3},
			{"log near unity", 1, 1, 2, 0.9, -math.Log(0.1) / 0.9},
			{"arcsin", 0.5, 0.5, 1.5, 0.9, math.Asin(s) / s},
			{"binomial pfaff", 0.3, 2.2, 2.2, -0.7, math.Pow(1.7, -0.3)},
			{"binomial near unity", 0.3, 2.2, 2.2, 0.95, math.Pow(0.05, -0.3)},
			{"polynomial", -2, 3, 1.5, 0.4, 1 - 2*3*0.4/1.5 + 3*4*0.16/(1.5*2.5)},
			{"gauss at one", 1, 1, 3, 1, 2},
			{"atanh", 0.5, 1, 1.5, 0.81, math.Atanh(0.9) / 0.9},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				v, err := Hyper2F1(tc.a, tc.b, tc.c, tc.x)
				require.NoError(t, err)
				assert.InEpsilon(t, tc.want, v, 1.e-13)
			})
		}
	})
	t.Run("against the direct series", func(t *testing.T) {
		type tcase struct {
			name       string
			a, b, c, x float64
		}
		tests := []tcase{
			{"series", 0.5, 1.5, 2.5, 0.3},
			{"pfaff", 1.2, -0.7, 3.1, -0.6},
			{"near unity", 1, 1, 3, 0.9},
			{"near unity", 0.5, 1.5, 4, 0.95},
			{"near unity", 0.4, 0.9, 2.3, 0.97},
			{"log, c-a-b = -1", 1.5, 2.5, 3, 0.9},
			{"log, c-a-b = -1", 0.25, 1.25, 0.5, 0.85},
			{"log, c-a-b = 0", 2.5, 1, 3.5, 0.99},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				v, err := Hyper2F1(tc.a, tc.b, tc.c, tc.x)
				require.NoError(t, err)
				ref := directSeries(tc.a, tc.b, tc.c, tc.x)
				fmt.Printf("2F1(%g,%g;%g;%g) = %.16g, series %.16g\n", tc.a, tc.b, tc.c, tc.x, v, ref)
				assert.InEpsilon(t, ref, v, 1.e-12)
			})
		}
	})
	t.Run("moment arguments at minus one", func(t *testing.T) {
		// 2F1(-alpha, 1; 2+alpha; -1) for alpha = 1 is the polynomial 1 + 1/3
		v, err := Hyper2F1(-1, 1, 3, -1)
		require.NoError(t, err)
		assert.InDelta(t, 4./3., v, 1.e-15)
		v, err = Hyper2F1(0.5, 3, 2.5, -1)
		require.NoError(t, err)
		// Pfaff: (1-x)^-a 2F1(a, c-b; c; x/(x-1))
		ref := math.Pow(2, -0.5) * directSeries(0.5, -0.5, 2.5, 0.5)
		assert.InEpsilon(t, ref, v, 1.e-12)
	})
	t.Run("domain", func(t *testing.T) {
		for _, p := range [][4]float64{
			{1, 1, 0, 0.5},
			{1, 1, -2, 0.5},
			{1, 1, 2, 1.5},
			{1, 1, 2, 1},
			{math.NaN(), 1, 2, 0.5},
		} {
			_, err := Hyper2F1(p[0], p[1], p[2], p[3])
			assert.True(t, errors.Is(err, ErrDomain), "args %v", p)
		}
	})
}

// directSeries sums the hypergeometric series term by term, |x| < 1.
func directSeries(a, b, c, x float64) (s float64) {
	s = 1
	t := 1.
	for k := 0.; k < 1.e6; k++ {
		t *= (a + k) * (b + k) / ((c + k) * (k + 1)) * x
		s += t
		if math.Abs(t) <= 1.e-17*math.Abs(s) {
			break
		}
	}
	return
}
