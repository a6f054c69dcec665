package quadrature

import (
	"fmt"
	"math"

	"github.com/notargets/quadrule/utils"
)

// GegenbauerMaxNewton bounds the Newton steps spent on each root.
const GegenbauerMaxNewton = 10

// GegenbauerSSCompute computes the n point Gauss-Gegenbauer rule for weight
// (1-x^2)^alpha on [-1,1], alpha > -1, by the Stroud-Secrest root finder.
// The empirical initial guesses serve the upper half of the roots, the
// lower half starts from the mirror images.
//
// When a root fails to settle within GegenbauerMaxNewton steps the error
// wraps ErrNoConvergence and the returned rule holds the last iterates.
func GegenbauerSSCompute(n int, alpha float64) (r Rule, err error) {
	const fn = "GegenbauerSSCompute"
	if err = checkOrder(fn, n, 1); err != nil {
		return
	}
	if err = checkShape(fn, "alpha", alpha); err != nil {
		return
	}
	var (
		c     = make([]float64, n)
		fn64  = float64(n)
		a2    = alpha + alpha
		x     float64
		stuck = -1
	)
	if n >= 2 {
		c[1] = 1 / (a2 + 3)
	}
	prod := 1.
	for i := 3; i <= n; i++ {
		fi := float64(i)
		c[i-1] = (fi - 1) * (a2 + fi - 1) / ((a2 + 2*fi - 1) * (a2 + 2*fi - 3))
	}
	for i := 2; i <= n; i++ {
		prod *= c[i-1]
	}
	ga := math.Gamma(alpha + 1)
	cc := ga * ga / math.Gamma(a2+2) * math.Pow(2, a2+1) * prod

	r = newRule(n)
	for i := 0; i < n; i++ {
		switch {
		case n-1-i < i:
			// the weight is even, seed the lower half from the mirrored root
			x = -r.X[n-1-i]
		case i == 0:
			an := alpha / fn64
			r1 := (1 + alpha) * (2.78/(4+fn64*fn64) + 0.768*an/fn64)
			r2 := 1 + 2.44*an + 1.282*an*an
			x = (r2 - r1) / r2
		case i == 1:
			r1 := (4.1 + alpha) / ((1 + alpha) * (1 + 0.156*alpha))
			r2 := 1 + 0.06*(fn64-8)*(1+0.12*alpha)/fn64
			r3 := 1 + 0.012*alpha*(1+0.25*math.Abs(alpha))/fn64
			x -= r1 * r2 * r3 * (1 - x)
		case i == 2:
			r1 := (1.67 + 0.28*alpha) / (1 + 0.37*alpha)
			r2 := 1 + 0.22*(fn64-8)/fn64
			r3 := 1 + 8*alpha/((6.28+alpha)*fn64*fn64)
			x -= r1 * r2 * r3 * (r.X[0] - x)
		case i < n-2:
			x = 3*r.X[i-1] - 3*r.X[i-2] + r.X[i-3]
		case i == n-2:
			r1 := (1 + 0.235*alpha) / (0.766 + 0.119*alpha)
			r2 := 1 / (1 + 0.639*(fn64-4)/(1+0.71*(fn64-4)))
			r3 := 1 / (1 + 20*alpha/((7.5+alpha)*fn64*fn64))
			x += r1 * r2 * r3 * (x - r.X[i-2])
		default:
			r1 := (1 + 0.37*alpha) / (1.67 + 0.28*alpha)
			r2 := 1 / (1 + 0.22*(fn64-8)/fn64)
			r3 := 1 / (1 + 8*alpha/((6.28+alpha)*fn64*fn64))
			x += r1 * r2 * r3 * (x - r.X[i-2])
		}
		var (
			dp2, p1 float64
			ok      bool
		)
		x, dp2, p1, ok = gegenbauerSSRoot(x, n, c)
		if !ok && stuck < 0 {
			stuck = i
		}
		r.X[i] = x
		r.W[i] = cc / (dp2 * p1)
	}
	r.reverse()
	r.symmetrize()
	if stuck >= 0 {
		err = fmt.Errorf("%s: %w: root %d of n = %d, alpha = %g after %d Newton steps",
			fn, ErrNoConvergence, n-1-stuck, n, alpha, GegenbauerMaxNewton)
	}
	return
}

// gegenbauerSSRoot refines an approximate root x of the degree n monic
// polynomial. It also returns the derivative there and the value of the
// degree n-1 polynomial, both needed for the weight.
func gegenbauerSSRoot(x float64, n int, c []float64) (xr, dp2, p1 float64, ok bool) {
	var p2 float64
	for step := 0; step < GegenbauerMaxNewton; step++ {
		p2, dp2, p1 = gegenbauerSSRecur(x, n, c)
		d := p2 / dp2
		x -= d
		if math.Abs(d) <= utils.Epsilon*(math.Abs(x)+1) {
			return x, dp2, p1, true
		}
	}
	// out of steps, settled if the next step would be a few ulps
	p2, dp2, p1 = gegenbauerSSRecur(x, n, c)
	ok = math.Abs(p2/dp2) <= 4*utils.Epsilon*(math.Abs(x)+1)
	return x, dp2, p1, ok
}

// gegenbauerSSRecur evaluates the monic polynomials of degree n and n-1 at x
// together with the derivative of the former.
func gegenbauerSSRecur(x float64, n int, c []float64) (p2, dp2, p1 float64) {
	var (
		p0, dp0 float64
		dp1     = 0.
	)
	p1 = 1
	p2, dp2 = x, 1
	for i := 2; i <= n; i++ {
		p0, dp0 = p1, dp1
		p1, dp1 = p2, dp2
		p2 = x*p1 - c[i-1]*p0
		dp2 = x*dp1 + p1 - c[i-1]*dp0
	}
	return
}
