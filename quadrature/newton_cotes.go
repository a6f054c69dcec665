package quadrature

import (
	"github.com/notargets/quadrule/utils"
)

// NewtonCotesWeights returns the weights that integrate over [a,b] every
// polynomial of degree below len(x) exactly, given distinct abscissas x.
// Each weight is the integral of the Lagrange basis polynomial of its
// abscissa, built by divided differences and antidifferentiated exactly.
func NewtonCotesWeights(x []float64, a, b float64) (w []float64) {
	var (
		n = len(x)
		d = make([]float64, n)
	)
	w = make([]float64, n)
	for i := range w {
		for j := range d {
			d[j] = 0
		}
		d[i] = 1
		// Divided differences of the data that is 1 at x[i], 0 elsewhere.
		for j := 2; j <= n; j++ {
			for k := j; k <= n; k++ {
				d[n+j-k-1] = (d[n+j-k-2] - d[n+j-k-1]) / (x[n-k] - x[n+j-k-1])
			}
		}
		// Newton form to monomial coefficients.
		for j := 1; j < n; j++ {
			for k := 1; k <= n-j; k++ {
				d[n-k-1] -= x[n-k-j] * d[n-k]
			}
		}
		w[i] = antiderivative(d, b) - antiderivative(d, a)
	}
	return
}

// antiderivative evaluates the integral from 0 to x of sum d[j] t^j.
func antiderivative(d []float64, x float64) (y float64) {
	n := len(d)
	y = d[n-1] / float64(n)
	for j := n - 2; j >= 0; j-- {
		y = y*x + d[j]/float64(j+1)
	}
	return y * x
}

// NCCCompute computes the n point closed Newton-Cotes rule on [-1,1]. The
// single point rule is the midpoint rule.
func NCCCompute(n int) (r Rule, err error) {
	if err = checkOrder("NCCCompute", n, 1); err != nil {
		return
	}
	x := utils.Linspace(-1, 1, n)
	r = Rule{X: x, W: NewtonCotesWeights(x, -1, 1)}
	r.symmetrize()
	return
}

// NCOCompute computes the n point open Newton-Cotes rule on [-1,1], the
// interior points of n+2 equally spaced points.
func NCOCompute(n int) (r Rule, err error) {
	if err = checkOrder("NCOCompute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	for i := range r.X {
		r.X[i] = float64(2*i+1-n) / float64(n+1)
	}
	r.W = NewtonCotesWeights(r.X, -1, 1)
	r.symmetrize()
	return
}

// NCOHCompute computes the n point open half Newton-Cotes rule on [-1,1],
// abscissas at the midpoints of n equal subintervals.
func NCOHCompute(n int) (r Rule, err error) {
	if err = checkOrder("NCOHCompute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	for i := range r.X {
		r.X[i] = float64(2*i+1-n) / float64(n)
	}
	r.W = NewtonCotesWeights(r.X, -1, 1)
	r.symmetrize()
	return
}

// AdamsBashforthCompute computes the weights of the n step explicit Adams
// method: the integral over [0,1] from samples at 0, -1, ... , 1-n.
func AdamsBashforthCompute(n int) (r Rule, err error) {
	if err = checkOrder("AdamsBashforthCompute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	for i := range r.X {
		r.X[i] = -float64(i)
	}
	r.W = NewtonCotesWeights(r.X, 0, 1)
	return
}

// AdamsMoultonCompute computes the weights of the n step implicit Adams
// method: the integral over [0,1] from samples at 1, 0, ... , 2-n.
func AdamsMoultonCompute(n int) (r Rule, err error) {
	if err = checkOrder("AdamsMoultonCompute", n, 1); err != nil {
		return
	}
	r = newRule(n)
	for i := range r.X {
		r.X[i] = float64(1 - i)
	}
	r.W = NewtonCotesWeights(r.X, 0, 1)
	return
}
