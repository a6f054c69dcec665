package utils

import (
	"math"
)

// Epsilon is the spacing of float64 values at 1.
var Epsilon = math.Nextafter(1, 2) - 1

// Linspace returns N equally spaced values from a to b inclusive. For N == 1
// the single value is the midpoint.
func Linspace(a, b float64, N int) (v []float64) {
	v = make([]float64, N)
	if N == 1 {
		v[0] = 0.5 * (a + b)
		return
	}
	fN := float64(N - 1)
	for i := range v {
		v[i] = (float64(N-1-i)*a + float64(i)*b) / fN
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(pp))
	return
}

// Factorial returns n! as a float64, +Inf once it overflows.
func Factorial(n int) (f float64) {
	f = 1
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return
}

// DoubleFactorial returns n!! = n (n-2) (n-4) ..., with (-1)!! = 0!! = 1.
func DoubleFactorial(n int) (f float64) {
	f = 1
	for i := n; i > 1; i -= 2 {
		f *= float64(i)
	}
	return
}

// IsInteger reports whether x has no fractional part.
func IsInteger(x float64) bool {
	return x == math.Trunc(x) && !math.IsInf(x, 0)
}
