package quadrature

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/notargets/quadrule/utils"
)

// Rule is an N point quadrature rule, X[i] pairs with W[i].
type Rule struct {
	X, W []float64
}

// Params carries the shape parameters of the Jacobi type families. Families
// with a single parameter read Alpha only.
type Params struct {
	Alpha, Beta float64
}

func newRule(n int) Rule {
	return Rule{X: make([]float64, n), W: make([]float64, n)}
}

func (r Rule) Order() int { return len(r.X) }

// Sum is the total weight, the integral of the weight function itself.
func (r Rule) Sum() float64 { return floats.Sum(r.W) }

func (r Rule) Integrate(f func(x float64) float64) (sum float64) {
	for i, x := range r.X {
		sum += r.W[i] * f(x)
	}
	return
}

// Moment applies the rule to x^k.
func (r Rule) Moment(k int) (sum float64) {
	for i, x := range r.X {
		sum += r.W[i] * utils.POW(x, k)
	}
	return
}

// Rescale maps a rule for the interval [a,b] onto [c,d].
func (r Rule) Rescale(a, b, c, d float64) (R Rule, err error) {
	if a == b || c == d {
		err = &ParameterError{Func: "Rescale", Name: "interval",
			Value: b - a, Constraint: fmt.Sprintf("a != b and c != d, got [%g,%g] -> [%g,%g]", a, b, c, d)}
		return
	}
	R = newRule(r.Order())
	scale := (d - c) / (b - a)
	for i, x := range r.X {
		R.X[i] = ((b-x)*c + (x-a)*d) / (b - a)
		R.W[i] = r.W[i] * scale
	}
	return
}

// Copy returns a rule sharing no storage with r.
func (r Rule) Copy() Rule {
	return Rule{X: append([]float64(nil), r.X...), W: append([]float64(nil), r.W...)}
}

// reverse puts a rule generated from +1 downwards into ascending order.
func (r Rule) reverse() {
	n := len(r.X)
	for i := 0; i < n/2; i++ {
		r.X[i], r.X[n-1-i] = r.X[n-1-i], r.X[i]
		r.W[i], r.W[n-1-i] = r.W[n-1-i], r.W[i]
	}
}

// symmetrize averages mirrored pairs of an ascending rule on a symmetric
// interval, leaving X[i] == -X[n-1-i], W[i] == W[n-1-i] and an exact zero at
// the center of odd rules.
func (r Rule) symmetrize() {
	n := len(r.X)
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		x := 0.5 * (r.X[j] - r.X[i])
		w := 0.5 * (r.W[i] + r.W[j])
		r.X[i], r.X[j] = -x, x
		r.W[i], r.W[j] = w, w
	}
	if n%2 == 1 {
		r.X[n/2] = 0
	}
}

// IsSymmetric reports whether the rule mirrors about the origin within tol.
func (r Rule) IsSymmetric(tol float64) bool {
	n := len(r.X)
	for i := 0; i < (n+1)/2; i++ {
		j := n - 1 - i
		if !scalar.EqualWithinAbs(r.X[i], -r.X[j], tol) || !scalar.EqualWithinAbs(r.W[i], r.W[j], tol) {
			return false
		}
	}
	return true
}

// tabulated is a literal rule held by one of the order keyed tables.
type tabulated struct {
	x, w []float64
}

func (t tabulated) rule() Rule {
	return Rule{X: append([]float64(nil), t.x...), W: append([]float64(nil), t.w...)}
}

func tableOrders(table map[int]tabulated) (orders []int) {
	orders = make([]int, 0, len(table))
	for n := range table {
		orders = append(orders, n)
	}
	sort.Ints(orders)
	return
}

// lookup copies the n point rule out of table.
func lookup(fn string, table map[int]tabulated, n int) (r Rule, err error) {
	t, ok := table[n]
	if !ok {
		err = &OrderError{Func: fn, N: n, Legal: formatOrders(tableOrders(table))}
		return
	}
	return t.rule(), nil
}
