package moments

import (
	"fmt"
	"math"

	"github.com/notargets/quadrule/utils"
)

const (
	hyperEps     = 1.e-15
	hyperMaxTerm = 1000
	// hyperNearOne is where the power series gives way to the connection
	// formulas in 1-x.
	hyperNearOne = 0.75
)

// Hyper2F1 evaluates the Gauss hypergeometric function 2F1(a,b;c;x) for real
// arguments with x <= 1, following the branch structure of Zhang and Jin:
// terminating polynomials, Euler and Pfaff transformations, the power series
// for small x and the analytic continuation to the neighbourhood of 1, with
// the logarithmic (integer c-a-b) case handled through Psi.
func Hyper2F1(a, b, c, x float64) (hf float64, err error) {
	switch {
	case math.IsNaN(a) || math.IsNaN(b) || math.IsNaN(c) || math.IsNaN(x):
		return 0, fmt.Errorf("%w: 2F1(%g,%g;%g;%g)", ErrDomain, a, b, c, x)
	case c <= 0 && utils.IsInteger(c):
		return 0, fmt.Errorf("%w: 2F1 with non-positive integer c = %g", ErrDomain, c)
	case x > 1:
		return 0, fmt.Errorf("%w: 2F1 for x = %g > 1", ErrDomain, x)
	}
	if x == 0 || a == 0 || b == 0 {
		return 1, nil
	}
	if x == 1 {
		if c-a-b <= 0 {
			return 0, fmt.Errorf("%w: 2F1 diverges at x = 1 for c-a-b = %g", ErrDomain, c-a-b)
		}
		return math.Gamma(c) * math.Gamma(c-a-b) * rgamma(c-a) * rgamma(c-b), nil
	}
	// A negative integer numerator parameter terminates the series.
	for _, p := range []float64{a, b} {
		if p < 0 && utils.IsInteger(p) {
			hf, r := 1., 1.
			for k := 1; k <= int(-p); k++ {
				fk := float64(k)
				r *= (a + fk - 1) * (b + fk - 1) / (fk * (c + fk - 1)) * x
				hf += r
			}
			return hf, nil
		}
	}
	// Euler's transformation turns c-a or c-b into the terminating parameter.
	if (c-a <= 0 && utils.IsInteger(c-a)) || (c-b <= 0 && utils.IsInteger(c-b)) {
		if hf, err = Hyper2F1(c-a, c-b, c, x); err != nil {
			return
		}
		return math.Pow(1-x, c-a-b) * hf, nil
	}
	if x < 0 {
		// Pfaff: maps x in (-inf,0) onto (0,1).
		if hf, err = Hyper2F1(a, c-b, c, x/(x-1)); err != nil {
			return
		}
		return math.Pow(1-x, -a) * hf, nil
	}
	if x < hyperNearOne {
		return hyperSeries(a, b, c, x)
	}
	return hyperNearUnity(a, b, c, x)
}

func hyperSeries(a, b, c, x float64) (hf float64, err error) {
	hf = 1
	r := 1.
	for k := 1; k <= hyperMaxTerm; k++ {
		fk := float64(k)
		r *= (a + fk - 1) * (b + fk - 1) / (fk * (c + fk - 1)) * x
		hf += r
		if math.Abs(r) <= hyperEps*math.Abs(hf) {
			return
		}
	}
	err = fmt.Errorf("%w: 2F1(%g,%g;%g;%g) series after %d terms",
		ErrNoConvergence, a, b, c, x, hyperMaxTerm)
	return
}

// hyperNearUnity continues 2F1 to 0.75 <= x < 1 through series in 1-x.
func hyperNearUnity(a, b, c, x float64) (hf float64, err error) {
	var (
		g = c - a - b
		y = 1 - x
	)
	if m := math.Round(g); math.Abs(g-m) < 1.e-12 {
		if m >= 0 {
			return hyperLogCase(a, b, c, x, int(m))
		}
		if hf, err = hyperLogCase(c-a, c-b, c, x, int(-m)); err != nil {
			return
		}
		return math.Pow(y, g) * hf, nil
	}
	var s1, s2 float64
	if s1, err = hyperSeries(a, b, 1-g, y); err != nil {
		return
	}
	if s2, err = hyperSeries(c-a, c-b, g+1, y); err != nil {
		return
	}
	gc := math.Gamma(c)
	hf = gc*math.Gamma(g)*rgamma(c-a)*rgamma(c-b)*s1 +
		math.Pow(y, g)*gc*math.Gamma(-g)*rgamma(a)*rgamma(b)*s2
	return
}

// hyperLogCase evaluates 2F1(a,b;a+b+m;x) for integer m >= 0, Abramowitz and
// Stegun 15.3.10 and 15.3.11.
func hyperLogCase(a, b, c, x float64, m int) (hf float64, err error) {
	var (
		y   = 1 - x
		ly  = math.Log(y)
		fm  = float64(m)
		s1  float64
		psi [4]float64
	)
	if m > 0 {
		r := 1.
		for n := 0; n < m; n++ {
			s1 += r
			if n+1 < m {
				fn := float64(n)
				r *= (a + fn) * (b + fn) / ((fn + 1) * (1 - fm + fn)) * y
			}
		}
		s1 *= math.Gamma(fm) * math.Gamma(c) * rgamma(a+fm) * rgamma(b+fm)
	}
	f := math.Gamma(c) * rgamma(a) * rgamma(b)
	if f == 0 {
		return s1, nil
	}
	var (
		s2 float64
		r  = 1 / utils.Factorial(m)
	)
	for n := 0; n < hyperMaxTerm; n++ {
		fn := float64(n)
		for i, arg := range []float64{fn + 1, fn + fm + 1, a + fn + fm, b + fn + fm} {
			if psi[i], err = Psi(arg); err != nil {
				return
			}
		}
		t := r * (ly - psi[0] - psi[1] + psi[2] + psi[3])
		s2 += t
		if n > 2 && math.Abs(t) <= hyperEps*math.Abs(s2) {
			hf = s1 - utils.POW(-y, m)*f*s2
			return
		}
		r *= (a + fm + fn) * (b + fm + fn) / ((fn + 1) * (fn + fm + 1)) * y
	}
	err = fmt.Errorf("%w: 2F1(%g,%g;%g;%g) logarithmic series", ErrNoConvergence, a, b, c, x)
	return
}

// rgamma is 1/Gamma(x), zero at the poles.
func rgamma(x float64) float64 {
	if x <= 0 && utils.IsInteger(x) {
		return 0
	}
	return 1 / math.Gamma(x)
}
