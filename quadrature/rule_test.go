package quadrature

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRule(t *testing.T) {
	r := Rule{X: []float64{-1, 0, 1}, W: []float64{1. / 3., 4. / 3., 1. / 3.}}
	assert.Equal(t, 3, r.Order())
	assert.InDelta(t, 2., r.Sum(), 1.e-15)
	assert.InDelta(t, 2./3., r.Moment(2), 1.e-15)
	assert.InDelta(t, 0., r.Moment(3), 1.e-15)
	assert.InDelta(t, 2./3., r.Integrate(func(x float64) float64 { return x * x }), 1.e-15)
	assert.True(t, r.IsSymmetric(1.e-15))

	t.Run("Rescale", func(t *testing.T) {
		R, err := r.Rescale(-1, 1, 0, 4)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 2, 4}, R.X)
		assert.InDelta(t, 4., R.Sum(), 1.e-14)
		// Simpson on [0,4] integrates x^3 exactly
		assert.InDelta(t, 64., R.Integrate(func(x float64) float64 { return x * x * x }), 1.e-12)
		// The receiver is left alone
		assert.Equal(t, []float64{-1, 0, 1}, r.X)
		_, err = r.Rescale(1, 1, 0, 4)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		_, err = r.Rescale(-1, 1, 2, 2)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
	})
	t.Run("Copy", func(t *testing.T) {
		c := r.Copy()
		c.X[0] = 42
		assert.Equal(t, -1., r.X[0])
	})
	t.Run("symmetrize", func(t *testing.T) {
		s := Rule{X: []float64{-0.5000000001, 1.e-17, 0.5}, W: []float64{1, 2, 1.0000000002}}
		assert.False(t, s.IsSymmetric(1.e-12))
		s.symmetrize()
		assert.Equal(t, 0., s.X[1])
		assert.Equal(t, -s.X[0], s.X[2])
		assert.Equal(t, s.W[0], s.W[2])
		assert.True(t, s.IsSymmetric(0))
	})
	t.Run("IsSymmetric tolerance", func(t *testing.T) {
		s := Rule{X: []float64{-0.5 - 1.e-13, 0, 0.5}, W: []float64{1, 2, 1 + 1.e-13}}
		assert.True(t, s.IsSymmetric(1.e-12))
		assert.False(t, s.IsSymmetric(1.e-14))
		assert.True(t, Rule{}.IsSymmetric(0))
	})
	t.Run("reverse", func(t *testing.T) {
		s := Rule{X: []float64{3, 2, 1, 0}, W: []float64{30, 20, 10, 0}}
		s.reverse()
		assert.Equal(t, []float64{0, 1, 2, 3}, s.X)
		assert.Equal(t, []float64{0, 10, 20, 30}, s.W)
	})
}

func TestErrors(t *testing.T) {
	var (
		oe *OrderError
		pe *ParameterError
	)
	err := checkOrder("LegendreEKCompute", 0, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOrder))
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "LegendreEKCompute", oe.Func)
	assert.Equal(t, 0, oe.N)
	assert.Equal(t, "LegendreEKCompute: illegal order n = 0, legal values are n >= 1", err.Error())

	for _, v := range []float64{-1, -2.5, math.NaN()} {
		err = checkShape("JacobiEKCompute", "beta", v)
		assert.True(t, errors.Is(err, ErrInvalidParameter))
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "beta", pe.Name)
	}
	assert.NoError(t, checkShape("JacobiEKCompute", "beta", -0.999))

	assert.Equal(t, "1-33, 63-65, 127-129", formatOrders(tableOrders(legendreTable)))
	assert.Equal(t, "15, 21, 31, 41, 51, 61", formatOrders(tableOrders(kronrodTable)))
	assert.Equal(t, "1, 2, 4, 6-8", formatOrders([]int{8, 7, 6, 4, 2, 1}))
	assert.Equal(t, "", formatOrders(nil))
}
