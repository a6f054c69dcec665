package moments

import (
	"fmt"
	"math"

	"github.com/notargets/quadrule/utils"
)

// Each function returns the integral of x^k against the weight function of
// its family over the family's interval. Odd moments of the symmetric
// families are exactly zero. A negative exponent yields NaN.

// LegendreIntegral integrates x^k over [-1,1].
func LegendreIntegral(k int) float64 {
	switch {
	case k < 0:
		return math.NaN()
	case k%2 == 1:
		return 0
	}
	return 2 / float64(k+1)
}

// Chebyshev1Integral integrates x^k / sqrt(1-x^2) over [-1,1].
func Chebyshev1Integral(k int) float64 {
	switch {
	case k < 0:
		return math.NaN()
	case k%2 == 1:
		return 0
	}
	return math.Pi * utils.DoubleFactorial(k-1) / utils.DoubleFactorial(k)
}

// Chebyshev2Integral integrates x^k sqrt(1-x^2) over [-1,1].
func Chebyshev2Integral(k int) float64 {
	switch {
	case k < 0:
		return math.NaN()
	case k%2 == 1:
		return 0
	}
	return math.Pi * utils.DoubleFactorial(k-1) / utils.DoubleFactorial(k+2)
}

// HermiteIntegral integrates x^k exp(-x^2) over the real line.
func HermiteIntegral(k int) float64 {
	switch {
	case k < 0:
		return math.NaN()
	case k%2 == 1:
		return 0
	}
	return utils.DoubleFactorial(k-1) * math.Sqrt(math.Pi) / math.Pow(2, float64(k/2))
}

// HermiteProbabilistIntegral integrates x^k exp(-x^2/2) over the real line.
func HermiteProbabilistIntegral(k int) float64 {
	switch {
	case k < 0:
		return math.NaN()
	case k%2 == 1:
		return 0
	}
	return utils.DoubleFactorial(k-1) * math.Sqrt(2*math.Pi)
}

// GenHermiteIntegral integrates x^k |x|^alpha exp(-x^2) over the real line.
func GenHermiteIntegral(k int, alpha float64) (v float64, err error) {
	if err = checkAlpha("GenHermiteIntegral", alpha); err != nil {
		return
	}
	switch {
	case k < 0:
		return math.NaN(), nil
	case k%2 == 1:
		return 0, nil
	}
	return math.Gamma((alpha + float64(k) + 1) / 2), nil
}

// LaguerreIntegral integrates x^k exp(-x) over [0,+inf).
func LaguerreIntegral(k int) float64 {
	if k < 0 {
		return math.NaN()
	}
	return utils.Factorial(k)
}

// GenLaguerreIntegral integrates x^k x^alpha exp(-x) over [0,+inf).
func GenLaguerreIntegral(k int, alpha float64) (v float64, err error) {
	if err = checkAlpha("GenLaguerreIntegral", alpha); err != nil {
		return
	}
	if k < 0 {
		return math.NaN(), nil
	}
	return math.Gamma(float64(k) + alpha + 1), nil
}

// JacobiIntegral integrates x^k (1-x)^alpha (1+x)^beta over [-1,1].
func JacobiIntegral(k int, alpha, beta float64) (v float64, err error) {
	var v1, v2 float64
	if err = checkAlpha("JacobiIntegral", alpha); err != nil {
		return
	}
	if beta <= -1 {
		return 0, fmt.Errorf("%w: JacobiIntegral requires beta > -1, got %g", ErrDomain, beta)
	}
	if k < 0 {
		return math.NaN(), nil
	}
	c := float64(k)
	s := 1.
	if k%2 == 1 {
		s = -1
	}
	if v1, err = Hyper2F1(-alpha, 1+c, 2+beta+c, -1); err != nil {
		return
	}
	if v2, err = Hyper2F1(-beta, 1+c, 2+alpha+c, -1); err != nil {
		return
	}
	v = math.Gamma(1+c) * (s*math.Gamma(1+beta)*v1/math.Gamma(2+beta+c) +
		math.Gamma(1+alpha)*v2/math.Gamma(2+alpha+c))
	return
}

// GegenbauerIntegral integrates x^k (1-x^2)^alpha over [-1,1].
func GegenbauerIntegral(k int, alpha float64) (v float64, err error) {
	if err = checkAlpha("GegenbauerIntegral", alpha); err != nil {
		return
	}
	switch {
	case k < 0:
		return math.NaN(), nil
	case k%2 == 1:
		return 0, nil
	}
	c := float64(k)
	if v, err = Hyper2F1(-alpha, 1+c, 2+alpha+c, -1); err != nil {
		return
	}
	v *= math.Gamma(1+c) * 2 * math.Gamma(1+alpha) / math.Gamma(2+alpha+c)
	return
}

// MonomialIntegral integrates x^k over [a,b].
func MonomialIntegral(k int, a, b float64) float64 {
	if k < 0 {
		return math.NaN()
	}
	return (utils.POW(b, k+1) - utils.POW(a, k+1)) / float64(k+1)
}

func checkAlpha(fn string, alpha float64) error {
	if !(alpha > -1) {
		return fmt.Errorf("%w: %s requires alpha > -1, got %g", ErrDomain, fn, alpha)
	}
	return nil
}
