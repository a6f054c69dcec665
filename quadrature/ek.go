package quadrature

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/notargets/quadrule/tridiag"
)

// Solver selects the eigensolver applied to a Jacobi matrix.
type Solver int

const (
	// SolverIMTQLX is the implicit QL iteration of tridiag.IMTQLX.
	SolverIMTQLX Solver = iota
	// SolverEigenSym factors the dense matrix with gonum's EigenSym.
	SolverEigenSym
)

func (s Solver) String() string {
	switch s {
	case SolverIMTQLX:
		return "imtqlx"
	case SolverEigenSym:
		return "eigensym"
	}
	return fmt.Sprintf("Solver(%d)", int(s))
}

func ParseSolver(name string) (s Solver, err error) {
	switch strings.ToLower(name) {
	case "", "imtqlx":
		return SolverIMTQLX, nil
	case "eigensym":
		return SolverEigenSym, nil
	}
	err = &ParameterError{Func: "ParseSolver", Name: "solver", Value: math.NaN(),
		Constraint: fmt.Sprintf("one of imtqlx, eigensym, got %q", name)}
	return
}

// gauss turns the Jacobi matrix J of a weight function with zero-th moment
// zemu into its Gauss rule: the eigenvalues are the abscissas and the
// squared first eigenvector components scaled by zemu are the weights.
func (s Solver) gauss(fn string, J tridiag.Matrix, zemu float64) (r Rule, err error) {
	var (
		n      = J.Order()
		x, qtz []float64
	)
	switch s {
	case SolverEigenSym:
		if x, qtz, err = J.EigenSym(); err == nil {
			sz := math.Sqrt(zemu)
			for i := range qtz {
				qtz[i] *= sz
			}
		}
	default:
		z := make([]float64, n)
		z[0] = math.Sqrt(zemu)
		x, qtz, err = J.Diagonalize(z)
	}
	if err != nil {
		if errors.Is(err, tridiag.ErrNoConvergence) {
			err = fmt.Errorf("%s: %w: %w", fn, ErrNoConvergence, err)
		} else {
			err = fmt.Errorf("%s: %w", fn, err)
		}
		return
	}
	r = Rule{X: x, W: qtz}
	for i, v := range qtz {
		r.W[i] = v * v
	}
	return
}

// LegendreMatrix is the Jacobi matrix of the Legendre polynomials, weight 1
// on [-1,1], and the zero-th moment 2.
func LegendreMatrix(n int) (J tridiag.Matrix, zemu float64) {
	J = tridiag.Matrix{Diag: make([]float64, n), Sub: make([]float64, n)}
	for i := range J.Sub {
		ii := float64((i + 1) * (i + 1))
		J.Sub[i] = math.Sqrt(ii / (4*ii - 1))
	}
	return J, 2
}

// HermiteMatrix is the Jacobi matrix for weight exp(-x^2) on the real line.
func HermiteMatrix(n int) (J tridiag.Matrix, zemu float64) {
	J = tridiag.Matrix{Diag: make([]float64, n), Sub: make([]float64, n)}
	for i := range J.Sub {
		J.Sub[i] = math.Sqrt(float64(i+1) / 2)
	}
	return J, math.Sqrt(math.Pi)
}

// GenHermiteMatrix is the Jacobi matrix for weight |x|^alpha exp(-x^2).
func GenHermiteMatrix(n int, alpha float64) (J tridiag.Matrix, zemu float64) {
	J = tridiag.Matrix{Diag: make([]float64, n), Sub: make([]float64, n)}
	for i := range J.Sub {
		ip1 := float64(i + 1)
		if i%2 == 0 {
			J.Sub[i] = math.Sqrt((ip1 + alpha) / 2)
		} else {
			J.Sub[i] = math.Sqrt(ip1 / 2)
		}
	}
	return J, math.Gamma((alpha + 1) / 2)
}

// GenLaguerreMatrix is the Jacobi matrix for weight x^alpha exp(-x) on
// [0,+inf). Alpha = 0 is the Laguerre case.
func GenLaguerreMatrix(n int, alpha float64) (J tridiag.Matrix, zemu float64) {
	J = tridiag.Matrix{Diag: make([]float64, n), Sub: make([]float64, n)}
	for i := range J.Sub {
		ip1 := float64(i + 1)
		J.Diag[i] = 2*ip1 - 1 + alpha
		J.Sub[i] = math.Sqrt(ip1 * (ip1 + alpha))
	}
	return J, math.Gamma(alpha + 1)
}

// JacobiMatrix is the Jacobi matrix for weight (1-x)^alpha (1+x)^beta on
// [-1,1].
func JacobiMatrix(n int, alpha, beta float64) (J tridiag.Matrix, zemu float64) {
	var (
		ab   = alpha + beta
		abi  = 2 + ab
		a2b2 = beta*beta - alpha*alpha
	)
	zemu = math.Pow(2, ab+1) * math.Gamma(alpha+1) * math.Gamma(beta+1) / math.Gamma(abi)
	J = tridiag.Matrix{Diag: make([]float64, n), Sub: make([]float64, n)}
	if n == 0 {
		return
	}
	J.Diag[0] = (beta - alpha) / abi
	J.Sub[0] = math.Sqrt(4 * (1 + alpha) * (1 + beta) / ((abi + 1) * abi * abi))
	for i := 2; i <= n; i++ {
		fi := float64(i)
		abi = 2*fi + ab
		J.Diag[i-1] = a2b2 / ((abi - 2) * abi)
		abi *= abi
		J.Sub[i-1] = math.Sqrt(4 * fi * (fi + alpha) * (fi + beta) * (fi + ab) / ((abi - 1) * abi))
	}
	return
}

// LegendreEKCompute computes the n point Gauss-Legendre rule, weight 1 on
// [-1,1], by the Elhay-Kautsky method.
func LegendreEKCompute(n int) (Rule, error) { return legendreEK(n, SolverIMTQLX) }

func legendreEK(n int, s Solver) (r Rule, err error) {
	const fn = "LegendreEKCompute"
	if err = checkOrder(fn, n, 1); err != nil {
		return
	}
	J, zemu := LegendreMatrix(n)
	if r, err = s.gauss(fn, J, zemu); err != nil {
		return
	}
	r.symmetrize()
	return
}

// HermiteEKCompute computes the n point Gauss-Hermite rule for weight
// exp(-x^2) on (-inf,+inf).
func HermiteEKCompute(n int) (Rule, error) { return hermiteEK(n, SolverIMTQLX) }

func hermiteEK(n int, s Solver) (r Rule, err error) {
	const fn = "HermiteEKCompute"
	if err = checkOrder(fn, n, 1); err != nil {
		return
	}
	J, zemu := HermiteMatrix(n)
	if r, err = s.gauss(fn, J, zemu); err != nil {
		return
	}
	r.symmetrize()
	return
}

// HermiteProbabilistEKCompute computes the n point rule for weight
// exp(-x^2/2), the physicists' rule stretched by sqrt(2).
func HermiteProbabilistEKCompute(n int) (Rule, error) { return hermiteProbabilistEK(n, SolverIMTQLX) }

func hermiteProbabilistEK(n int, s Solver) (r Rule, err error) {
	if r, err = hermiteEK(n, s); err != nil {
		err = rename(err, "HermiteEKCompute", "HermiteProbabilistEKCompute")
		return
	}
	for i := range r.X {
		r.X[i] *= math.Sqrt2
		r.W[i] *= math.Sqrt2
	}
	return
}

// GenHermiteEKCompute computes the n point rule for weight |x|^alpha
// exp(-x^2), alpha > -1.
func GenHermiteEKCompute(n int, alpha float64) (Rule, error) {
	return genHermiteEK(n, alpha, SolverIMTQLX)
}

func genHermiteEK(n int, alpha float64, s Solver) (r Rule, err error) {
	const fn = "GenHermiteEKCompute"
	if err = checkOrder(fn, n, 1); err != nil {
		return
	}
	if err = checkShape(fn, "alpha", alpha); err != nil {
		return
	}
	J, zemu := GenHermiteMatrix(n, alpha)
	if r, err = s.gauss(fn, J, zemu); err != nil {
		return
	}
	r.symmetrize()
	return
}

// LaguerreEKCompute computes the n point Gauss-Laguerre rule for weight
// exp(-x) on [0,+inf).
func LaguerreEKCompute(n int) (Rule, error) {
	return genLaguerreEK("LaguerreEKCompute", n, 0, SolverIMTQLX)
}

// GenLaguerreEKCompute computes the n point rule for weight x^alpha exp(-x),
// alpha > -1.
func GenLaguerreEKCompute(n int, alpha float64) (Rule, error) {
	return genLaguerreEK("GenLaguerreEKCompute", n, alpha, SolverIMTQLX)
}

func genLaguerreEK(fn string, n int, alpha float64, s Solver) (r Rule, err error) {
	if err = checkOrder(fn, n, 1); err != nil {
		return
	}
	if err = checkShape(fn, "alpha", alpha); err != nil {
		return
	}
	J, zemu := GenLaguerreMatrix(n, alpha)
	return s.gauss(fn, J, zemu)
}

// JacobiEKCompute computes the n point Gauss-Jacobi rule for weight
// (1-x)^alpha (1+x)^beta on [-1,1], alpha, beta > -1.
func JacobiEKCompute(n int, alpha, beta float64) (Rule, error) {
	return jacobiEK(n, alpha, beta, SolverIMTQLX)
}

func jacobiEK(n int, alpha, beta float64, s Solver) (r Rule, err error) {
	const fn = "JacobiEKCompute"
	if err = checkOrder(fn, n, 1); err != nil {
		return
	}
	if err = checkShape(fn, "alpha", alpha); err != nil {
		return
	}
	if err = checkShape(fn, "beta", beta); err != nil {
		return
	}
	J, zemu := JacobiMatrix(n, alpha, beta)
	if r, err = s.gauss(fn, J, zemu); err != nil {
		return
	}
	if alpha == beta {
		r.symmetrize()
	}
	return
}

// rename reports an error raised by a delegate under the caller's name.
func rename(err error, from, to string) error {
	var oe *OrderError
	if errors.As(err, &oe) && oe.Func == from {
		return &OrderError{Func: to, N: oe.N, Legal: oe.Legal}
	}
	return fmt.Errorf("%s: %w", to, err)
}
