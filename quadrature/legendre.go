package quadrature

import "math"

// LegendreDRCompute computes the n point Gauss-Legendre rule by the method of
// Davis and Rabinowitz: an asymptotic first guess for each positive root,
// one fourth order Taylor correction, then a Newton step.
func LegendreDRCompute(n int) (r Rule, err error) {
	if err = checkOrder("LegendreDRCompute", n, 1); err != nil {
		return
	}
	var (
		fn = float64(n)
		e1 = fn * (fn + 1)
		m  = (n + 1) / 2
	)
	r = newRule(n)
	for i := 1; i <= m; i++ {
		t := float64(4*i-1) * math.Pi / float64(4*n+2)
		x0 := math.Cos(t) * (1 - (1-1/fn)/(8*fn*fn))
		pkm1, pk := 1., x0
		for k := 2; k <= n; k++ {
			fk := float64(k)
			pkp1 := 2*x0*pk - pkm1 - (x0*pk-pkm1)/fk
			pkm1, pk = pk, pkp1
		}
		var (
			den  = 1 - x0*x0
			d1   = fn * (pkm1 - x0*pk)
			dpn  = d1 / den
			d2pn = (2*x0*dpn - e1*pk) / den
			d3pn = (4*x0*d2pn + (2-e1)*dpn) / den
			d4pn = (6*x0*d3pn + (6-e1)*d2pn) / den
			u    = pk / dpn
			v    = d2pn / dpn
		)
		// Initial approximation h to the root offset, then a Newton step.
		h := -u * (1 + 0.5*u*(v+u*(v*v-d3pn/(3*dpn))))
		p := pk + h*(dpn+0.5*h*(d2pn+h/3*(d3pn+0.25*h*d4pn)))
		dp := dpn + h*(d2pn+0.5*h*(d3pn+h*d4pn/3))
		h -= p / dp

		xt := x0 + h
		fx := d1 - h*e1*(pk+0.5*h*(dpn+h/3*(d2pn+0.25*h*(d3pn+0.2*h*d4pn))))
		// Roots are found from +1 inwards; fill the upper half of the rule.
		r.X[n-i] = xt
		r.W[n-i] = 2 * (1 - xt*xt) / (fx * fx)
	}
	for i := 0; i < n/2; i++ {
		r.X[i] = -r.X[n-1-i]
		r.W[i] = r.W[n-1-i]
	}
	if n%2 == 1 {
		r.X[n/2] = 0
	}
	return
}
