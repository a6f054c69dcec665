package tridiag

import (
	"errors"
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrNoConvergence = errors.New("tridiag: iteration limit exceeded")
	ErrDimension     = errors.New("tridiag: dimension mismatch")
)

// MaxIterations bounds the QL sweeps spent isolating any single eigenvalue.
const MaxIterations = 30

// Matrix is a real symmetric tridiagonal matrix. Sub[i] couples rows i and
// i+1, the last entry of Sub is not referenced.
type Matrix struct {
	Diag, Sub []float64
}

func NewMatrix(diag, sub []float64) (J Matrix, err error) {
	if len(diag) != len(sub) {
		err = fmt.Errorf("%w: %d diagonal entries, %d sub-diagonal entries",
			ErrDimension, len(diag), len(sub))
		return
	}
	J = Matrix{Diag: diag, Sub: sub}
	return
}

func (J Matrix) Order() int { return len(J.Diag) }

// Diagonalize returns the ascending eigenvalues of J and Q'z, where Q holds
// the eigenvectors of J in the same order.
func (J Matrix) Diagonalize(z []float64) (lam, qtz []float64, err error) {
	return IMTQLX(J.Diag, J.Sub, z)
}

// IMTQLX diagonalizes the symmetric tridiagonal matrix with diagonal d and
// sub-diagonal e using the implicit QL method with a Wilkinson shift, applying
// every plane rotation to z as well. The eigenvalues come back sorted
// ascending in lam, and qtz holds Q'z permuted the same way. None of the
// input slices are modified.
//
// This is the EISPACK imtql2 scheme as restructured by Elhay and Kautsky.
func IMTQLX(d, e, z []float64) (lam, qtz []float64, err error) {
	var (
		n    = len(d)
		prec = math.Nextafter(1, 2) - 1
	)
	if len(e) != n || len(z) != n {
		err = fmt.Errorf("%w: d=%d, e=%d, z=%d", ErrDimension, n, len(e), len(z))
		return
	}
	lam = make([]float64, n)
	qtz = make([]float64, n)
	copy(lam, d)
	copy(qtz, z)
	if n <= 1 {
		return
	}
	sub := make([]float64, n)
	copy(sub, e)
	sub[n-1] = 0

	var (
		b, c, f, g, p, r, s float64
		m                   int
	)
	for l := 0; l < n; l++ {
		for j := 0; ; j++ {
			// Look for a negligible sub-diagonal element to split the matrix.
			for m = l; m < n-1; m++ {
				if math.Abs(sub[m]) <= prec*(math.Abs(lam[m])+math.Abs(lam[m+1])) {
					break
				}
			}
			p = lam[l]
			if m == l {
				break
			}
			if j >= MaxIterations {
				err = fmt.Errorf("%w: eigenvalue %d not isolated after %d sweeps",
					ErrNoConvergence, l, MaxIterations)
				return nil, nil, err
			}
			g = (lam[l+1] - p) / (2 * sub[l])
			r = math.Hypot(g, 1)
			g = lam[m] - p + sub[l]/(g+math.Copysign(r, sign(g)))
			s, c, p = 1, 1, 0
			for i := m - 1; i >= l; i-- {
				f = s * sub[i]
				b = c * sub[i]
				if math.Abs(g) <= math.Abs(f) {
					c = g / f
					r = math.Sqrt(c*c + 1)
					sub[i+1] = f * r
					s = 1 / r
					c *= s
				} else {
					s = f / g
					r = math.Sqrt(s*s + 1)
					sub[i+1] = g * r
					c = 1 / r
					s *= c
				}
				g = lam[i+1] - p
				r = (lam[i]-g)*s + 2*c*b
				p = s * r
				lam[i+1] = g + p
				g = c*r - b
				f = qtz[i+1]
				qtz[i+1] = s*qtz[i] + c*f
				qtz[i] = c*qtz[i] - s*f
			}
			lam[l] -= p
			sub[l] = g
			sub[m] = 0
		}
	}
	// Selection sort, carrying qtz along.
	for i := 0; i < n-1; i++ {
		k := i
		p = lam[i]
		for j := i + 1; j < n; j++ {
			if lam[j] < p {
				k, p = j, lam[j]
			}
		}
		if k != i {
			lam[k], lam[i] = lam[i], p
			qtz[i], qtz[k] = qtz[k], qtz[i]
		}
	}
	return
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Dense expands J into gonum symmetric storage.
func (J Matrix) Dense() (A *mat.SymDense) {
	n := J.Order()
	A = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		A.SetSym(i, i, J.Diag[i])
		if i < n-1 {
			A.SetSym(i, i+1, J.Sub[i])
		}
	}
	return
}

// Sparse assembles J in compressed sparse row form.
func (J Matrix) Sparse() *sparse.CSR {
	n := J.Order()
	dok := sparse.NewDOK(n, n)
	for i := 0; i < n; i++ {
		dok.Set(i, i, J.Diag[i])
		if i < n-1 && J.Sub[i] != 0 {
			dok.Set(i, i+1, J.Sub[i])
			dok.Set(i+1, i, J.Sub[i])
		}
	}
	return dok.ToCSR()
}

// EigenSym diagonalizes J with the LAPACK based gonum solver. It returns the
// ascending eigenvalues and the first component of every normalized
// eigenvector, which is what a Golub-Welsch weight computation needs.
func (J Matrix) EigenSym() (lam, first []float64, err error) {
	var (
		n   = J.Order()
		eig mat.EigenSym
	)
	if n == 0 {
		return
	}
	if ok := eig.Factorize(J.Dense(), true); !ok {
		err = fmt.Errorf("%w: symmetric eigendecomposition failed", ErrNoConvergence)
		return
	}
	lam = eig.Values(nil)
	V := mat.NewDense(n, n, nil)
	eig.VectorsTo(V)
	first = make([]float64, n)
	copy(first, V.RawRowView(0))
	return
}

// Residual returns max|(J v - lam v)_i|, a measure of how well (lam, v) is an
// eigenpair of J.
func (J Matrix) Residual(lam float64, v []float64) (res float64) {
	n := J.Order()
	if len(v) != n {
		panic(fmt.Errorf("%w: vector length %d for order %d", ErrDimension, len(v), n))
	}
	var Jv mat.VecDense
	Jv.MulVec(J.Sparse(), mat.NewVecDense(n, v))
	for i := 0; i < n; i++ {
		res = math.Max(res, math.Abs(Jv.AtVec(i)-lam*v[i]))
	}
	return
}
