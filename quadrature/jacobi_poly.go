package quadrature

import (
	"math"
)

// JacobiP evaluates at each x the orthonormal Jacobi polynomial of degree N
// for weight (1-x)^alpha (1+x)^beta on [-1,1]. The zeros of the degree N
// polynomial are the abscissas of the N point Gauss-Jacobi rule.
func JacobiP(x []float64, alpha, beta float64, N int) (p []float64) {
	var (
		Nc  = len(x)
		ab  = alpha + beta
		rg  = 1. / math.Sqrt(gamma0(alpha, beta))
		rg1 = 1. / math.Sqrt(gamma1(alpha, beta))
	)
	pm1 := make([]float64, Nc)
	p = make([]float64, Nc)
	for i := range p {
		pm1[i] = rg
		p[i] = rg1 * ((ab+2.0)*x[i]/2.0 + (alpha-beta)/2.0)
	}
	if N == 0 {
		return pm1
	}
	a1 := alpha + 1.
	b1 := beta + 1.
	ab1 := ab + 1.
	aold := 2.0 * math.Sqrt(a1*b1/(ab+3.0)) / (ab + 2.0)
	for i := 0; i < N-1; i++ {
		ip1 := float64(i + 1)
		ip2 := ip1 + 1
		h1 := 2.0*ip1 + ab
		anew := 2.0 / (h1 + 2.0) * math.Sqrt(ip2*(ip1+ab1)*(ip1+a1)*(ip1+b1)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		for j := range p {
			pm1[j], p[j] = p[j], (-aold*pm1[j]+(x[j]-bnew)*p[j])/anew
		}
		aold = anew
	}
	return
}

// GradJacobiP is the derivative of JacobiP with respect to x.
func GradJacobiP(x []float64, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		return make([]float64, len(x))
	}
	p = JacobiP(x, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i := range p {
		p[i] *= fac
	}
	return
}

// gamma0 is the squared norm of the constant polynomial, the total measure
// of the Jacobi weight.
func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	return math.Gamma(alpha+1.) * math.Gamma(beta+1.) * math.Pow(2, ab1) / math.Gamma(ab1+1.)
}

func gamma1(alpha, beta float64) float64 {
	return (alpha + 1.) * (beta + 1.) * gamma0(alpha, beta) / (alpha + beta + 3.0)
}
