package moments

import (
	"fmt"
	"math"
)

// Rational minimax coefficients for psi on [0.5, 3] (p1, q1) and for the
// asymptotic correction above 3 (p2, q2).
var (
	psiP1 = [9]float64{
		4.5104681245762934160e-03, 5.4932855833000385356e+00,
		3.7646693175929276856e+02, 7.9525490849151998065e+03,
		7.1451595818951933210e+04, 3.0655976301987365674e+05,
		6.3606997788964458797e+05, 5.8041312783537569993e+05,
		1.6585695029761022321e+05,
	}
	psiQ1 = [8]float64{
		9.6141654774222358525e+01, 2.6287715790581193330e+03,
		2.9862497022250277920e+04, 1.6206566091533671639e+05,
		4.3487880712768329037e+05, 5.4256384537269993733e+05,
		2.4242185002017985252e+05, 6.4155223783576225996e-08,
	}
	psiP2 = [7]float64{
		-2.7103228277757834192e+00, -1.5166271776896121383e+01,
		-1.9784554148719218667e+01, -8.8100958828312219821e+00,
		-1.4479614616899842986e+00, -7.3689600332394549911e-02,
		-6.5135387732718171306e-21,
	}
	psiQ2 = [6]float64{
		4.4992760373789365846e+01, 2.0240955312679931159e+02,
		2.4736979003315290057e+02, 1.0742543875702278326e+02,
		1.7463965060678569906e+01, 8.8427520398873480342e-01,
	}
)

const (
	psiPiOver4 = 0.78539816339744830962
	psiX01     = 187.0
	psiX01d    = 128.0
	psiX02     = 6.9464496836234126266e-04
	psiXLarge  = 2.04e+15
	psiXMax1   = 3.60e+16
	psiXMin1   = 5.89e-39
	psiXSmall  = 2.05e-09
)

// Psi evaluates the digamma function, the logarithmic derivative of Gamma,
// with W. J. Cody's rational Chebyshev approximations. Arguments below 0.5
// are reflected through psi(1-x) = psi(x) + pi cot(pi x).
func Psi(xx float64) (value float64, err error) {
	var (
		x, w = xx, math.Abs(xx)
		aug  float64
	)
	if -x >= psiXMax1 || w < psiXMin1 || math.IsNaN(x) {
		return 0, fmt.Errorf("%w: psi(%g)", ErrDomain, xx)
	}
	if x < 0.5 {
		if w <= psiXSmall {
			aug = -1 / x
		} else {
			// Reduce the argument of cot(pi x) to the first octant.
			sgn := psiPiOver4
			w = -x
			if w <= 0 {
				w = -w
				sgn = -sgn
			}
			nq := int(w)
			w -= float64(nq)
			nq = int(w * 4)
			w = (w - float64(nq)*0.25) * 4
			n := nq / 2
			if n+n != nq {
				w = 1 - w
			}
			z := psiPiOver4 * w
			if m := n / 2; m+m != n {
				sgn = -sgn
			}
			n = (nq + 1) / 2
			if m := n / 2; m+m == n {
				if z == 0 {
					return 0, fmt.Errorf("%w: psi has a pole at %g", ErrDomain, xx)
				}
				aug = sgn * (math.Cos(z) / math.Sin(z) * 4)
			} else {
				aug = sgn * (math.Sin(z) / math.Cos(z) * 4)
			}
		}
		x = 1 - x
	}

	if x <= 3 {
		den := x
		upper := psiP1[0] * x
		for i := 1; i <= 7; i++ {
			den = (den + psiQ1[i-1]) * x
			upper = (upper + psiP1[i]) * x
		}
		den = (upper + psiP1[8]) / (den + psiQ1[7])
		x = (x - psiX01/psiX01d) - psiX02
		value = den*x + aug
		return
	}

	if x < psiXLarge {
		w = 1 / (x * x)
		den := w
		upper := psiP2[0] * w
		for i := 1; i <= 5; i++ {
			den = (den + psiQ2[i-1]) * w
			upper = (upper + psiP2[i]) * w
		}
		aug += (upper+psiP2[6])/(den+psiQ2[5]) - 0.5/x
	}
	value = aug + math.Log(x)
	return
}
