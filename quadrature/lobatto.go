package quadrature

import (
	"fmt"
	"math"

	"github.com/notargets/quadrule/utils"
)

// MaxSweeps bounds the fixed-point sweeps of LobattoCompute and RadauCompute.
const MaxSweeps = 100

// legendrePair returns P(n-1) and P(n) at x, P(-1) taken as zero.
func legendrePair(x float64, n int) (pnm1, pn float64) {
	pnm1, pn = 0, 1
	for j := 1; j <= n; j++ {
		fj := float64(j)
		pnm1, pn = pn, ((2*fj-1)*x*pn-(fj-1)*pnm1)/fj
	}
	return
}

// LobattoCompute computes the n point Gauss-Lobatto rule on [-1,1], n >= 2.
// The abscissas are the endpoints and the zeros of P'(n-1), found by a fixed
// point iteration started at the Chebyshev-Gauss-Lobatto points.
func LobattoCompute(n int) (r Rule, err error) {
	const fn = "LobattoCompute"
	if err = checkOrder(fn, n, 2); err != nil {
		return
	}
	var (
		tol  = 100 * utils.Epsilon
		fn64 = float64(n)
		p    = make([]float64, n)
	)
	r = newRule(n)
	for i := range r.X {
		r.X[i] = math.Cos(math.Pi * float64(i) / float64(n-1))
	}
	converged := false
	for sweep := 0; sweep < MaxSweeps && !converged; sweep++ {
		test := 0.
		for i, x := range r.X {
			pnm2, pnm1 := legendrePair(x, n-1)
			p[i] = pnm1
			dx := (x*pnm1 - pnm2) / (fn64 * pnm1)
			r.X[i] = x - dx
			test = math.Max(test, math.Abs(dx))
		}
		converged = test <= tol
	}
	for i, pv := range p {
		r.W[i] = 2 / ((fn64 - 1) * fn64 * pv * pv)
	}
	r.reverse()
	r.symmetrize()
	if !converged {
		err = fmt.Errorf("%s: %w: n = %d after %d sweeps", fn, ErrNoConvergence, n, MaxSweeps)
	}
	return
}

// RadauCompute computes the n point Gauss-Radau rule on [-1,1] with the fixed
// abscissa at -1. The free abscissas are the zeros of (P(n-1)+P(n))/(1+x).
func RadauCompute(n int) (r Rule, err error) {
	const fn = "RadauCompute"
	if err = checkOrder(fn, n, 1); err != nil {
		return
	}
	var (
		tol  = 100 * utils.Epsilon
		fn64 = float64(n)
		p    = make([]float64, n)
	)
	r = newRule(n)
	for i := range r.X {
		r.X[i] = -math.Cos(2 * math.Pi * float64(i) / float64(2*n-1))
	}
	r.X[0] = -1
	converged := n == 1
	for sweep := 0; sweep < MaxSweeps && !converged; sweep++ {
		test := 0.
		for i := 1; i < n; i++ {
			x := r.X[i]
			pnm1, pn := legendrePair(x, n)
			p[i] = pnm1
			dx := ((1 - x) / fn64) * (pnm1 + pn) / (pnm1 - pn)
			r.X[i] = x - dx
			test = math.Max(test, math.Abs(dx))
		}
		converged = test <= tol
	}
	r.W[0] = 2 / (fn64 * fn64)
	for i := 1; i < n; i++ {
		v := fn64 * p[i]
		r.W[i] = (1 - r.X[i]) / (v * v)
	}
	if !converged {
		err = fmt.Errorf("%s: %w: n = %d after %d sweeps", fn, ErrNoConvergence, n, MaxSweeps)
	}
	return
}
