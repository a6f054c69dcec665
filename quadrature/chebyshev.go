package quadrature

import "math"

// Chebyshev1Compute computes the n point Gauss-Chebyshev rule of the first
// kind, weight 1/sqrt(1-x^2) on [-1,1].
func Chebyshev1Compute(n int) (r Rule, err error) {
	if err = checkOrder("Chebyshev1Compute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	fn := float64(n)
	for i := range r.X {
		r.X[i] = math.Cos(float64(2*n-1-2*i) * math.Pi / (2 * fn))
		r.W[i] = math.Pi / fn
	}
	r.symmetrize()
	return
}

// Chebyshev2Compute computes the n point Gauss-Chebyshev rule of the second
// kind, weight sqrt(1-x^2) on [-1,1].
func Chebyshev2Compute(n int) (r Rule, err error) {
	if err = checkOrder("Chebyshev2Compute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	np1 := float64(n + 1)
	for i := range r.X {
		angle := float64(n-i) * math.Pi / np1
		s := math.Sin(angle)
		r.X[i] = math.Cos(angle)
		r.W[i] = math.Pi / np1 * s * s
	}
	r.symmetrize()
	return
}

// Chebyshev3Compute computes the n point Gauss-Lobatto-Chebyshev rule, weight
// 1/sqrt(1-x^2) on [-1,1] with both endpoints as abscissas. The weights sum
// to pi.
func Chebyshev3Compute(n int) (r Rule, err error) {
	if err = checkOrder("Chebyshev3Compute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	if n == 1 {
		r.W[0] = math.Pi
		return
	}
	nm1 := float64(n - 1)
	for i := range r.X {
		r.X[i] = math.Cos(float64(n-1-i) * math.Pi / nm1)
		r.W[i] = math.Pi / nm1
	}
	r.X[0], r.X[n-1] = -1, 1
	r.W[0] *= 0.5
	r.W[n-1] *= 0.5
	r.symmetrize()
	return
}
