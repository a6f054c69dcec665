package quadrature

import (
	"fmt"
	"math"
)

// KronrodEstimate integrates f over [-1,1] with the n point Gauss-Kronrod
// rule and estimates the error by the embedded Gauss rule, which is applied
// to the same function values.
func KronrodEstimate(f func(x float64) float64, n int) (q, errEst float64, err error) {
	var (
		rk, rg Rule
	)
	if rk, err = KronrodSet(n); err != nil {
		return
	}
	if rg, err = LegendreSet((n - 1) / 2); err != nil {
		return 0, 0, fmt.Errorf("KronrodEstimate: %w", err)
	}
	q, qLow := embedded(f, rk, rg)
	return q, math.Abs(q - qLow), nil
}

// PattersonEstimate integrates f over [-1,1] with the n point Gauss-Patterson
// rule, n > 1, and estimates the error by the rule nested inside it.
func PattersonEstimate(f func(x float64) float64, n int) (q, errEst float64, err error) {
	var (
		rp, rl Rule
	)
	if rp, err = PattersonSet(n); err != nil {
		return
	}
	if n == 1 {
		err = &OrderError{Func: "PattersonEstimate", N: n,
			Legal: formatOrders(tableOrders(pattersonTable)[1:])}
		return
	}
	if rl, err = PattersonSet((n - 1) / 2); err != nil {
		return
	}
	q, qLow := embedded(f, rp, rl)
	return q, math.Abs(q - qLow), nil
}

// embedded applies an outer rule and the rule nested at its odd indexed
// abscissas, evaluating f once per outer abscissa.
func embedded(f func(x float64) float64, outer, inner Rule) (qHigh, qLow float64) {
	for i, x := range outer.X {
		fx := f(x)
		qHigh += outer.W[i] * fx
		if i%2 == 1 {
			qLow += inner.W[i/2] * fx
		}
	}
	return
}
