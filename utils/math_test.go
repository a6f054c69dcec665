package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPOW(t *testing.T) {
	for _, x := range []float64{-1.5, -1, 0.3, 2} {
		for p := -10; p <= 10; p++ {
			if x == 0 && p < 0 {
				continue
			}
			assert.InDelta(t, math.Pow(x, float64(p)), POW(x, p), 1.e-12*math.Max(1, math.Abs(math.Pow(x, float64(p)))), "x=%g p=%d", x, p)
		}
	}
	assert.Equal(t, 1., POW(0, 0))
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{-1, -0.5, 0, 0.5, 1}, Linspace(-1, 1, 5))
	assert.Equal(t, []float64{0.5}, Linspace(0, 1, 1))
	assert.Equal(t, 0, len(Linspace(0, 1, 0)))
}

func TestFactorials(t *testing.T) {
	assert.Equal(t, 1., Factorial(0))
	assert.Equal(t, 120., Factorial(5))
	assert.True(t, math.IsInf(Factorial(171), 1))
	assert.Equal(t, 1., DoubleFactorial(-1))
	assert.Equal(t, 1., DoubleFactorial(0))
	assert.Equal(t, 15., DoubleFactorial(5))
	assert.Equal(t, 48., DoubleFactorial(6))
}

func TestIsInteger(t *testing.T) {
	assert.True(t, IsInteger(3))
	assert.True(t, IsInteger(-2))
	assert.False(t, IsInteger(2.5))
	assert.False(t, IsInteger(math.Inf(1)))
	assert.False(t, IsInteger(math.NaN()))
	assert.Equal(t, 2.220446049250313e-16, Epsilon)
}
