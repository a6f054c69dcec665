package quadrature

import "math"

// ClenshawCurtisCompute computes the n point Clenshaw-Curtis rule on [-1,1].
// The abscissas are the extrema of the Chebyshev polynomial T(n-1),
// endpoints included.
func ClenshawCurtisCompute(n int) (r Rule, err error) {
	if err = checkOrder("ClenshawCurtisCompute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	if n == 1 {
		r.W[0] = 2
		return
	}
	nm1 := float64(n - 1)
	for i := range r.X {
		r.X[i] = math.Cos(float64(n-1-i) * math.Pi / nm1)
	}
	r.X[0], r.X[n-1] = -1, 1
	for i := range r.W {
		theta := float64(i) * math.Pi / nm1
		v := 1.
		for j := 1; j <= (n-1)/2; j++ {
			b := 2.
			if 2*j == n-1 {
				b = 1
			}
			fj := float64(j)
			v -= b * math.Cos(2*fj*theta) / (4*fj*fj - 1)
		}
		r.W[i] = 2 * v / nm1
	}
	r.W[0] *= 0.5
	r.W[n-1] *= 0.5
	r.symmetrize()
	return
}

// Fejer1Compute computes the n point Fejer type 1 rule on [-1,1], abscissas
// at the zeros of the Chebyshev polynomial T(n).
func Fejer1Compute(n int) (r Rule, err error) {
	if err = checkOrder("Fejer1Compute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	fn := float64(n)
	for i := range r.X {
		theta := float64(2*(n-i)-1) * math.Pi / (2 * fn)
		r.X[i] = math.Cos(theta)
		v := 1.
		for j := 1; j <= n/2; j++ {
			fj := float64(j)
			v -= 2 * math.Cos(2*fj*theta) / (4*fj*fj - 1)
		}
		r.W[i] = 2 * v / fn
	}
	r.symmetrize()
	return
}

// Fejer2Compute computes the n point Fejer type 2 rule on [-1,1], abscissas
// at the interior extrema of T(n+1).
func Fejer2Compute(n int) (r Rule, err error) {
	if err = checkOrder("Fejer2Compute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	np1 := float64(n + 1)
	p := float64(2*((n+1)/2) - 1)
	for i := range r.X {
		theta := float64(n-i) * math.Pi / np1
		r.X[i] = math.Cos(theta)
		v := 1.
		for j := 1; j <= (n-1)/2; j++ {
			fj := float64(j)
			v -= 2 * math.Cos(2*fj*theta) / (4*fj*fj - 1)
		}
		v -= math.Cos((p+1)*theta) / p
		r.W[i] = 2 * v / np1
	}
	r.symmetrize()
	return
}
