// Package quadrature generates one-dimensional quadrature rules. Every rule
// is returned as a Rule holding index-aligned abscissas and weights so that
//
//	sum(W[i] * f(X[i])) ~ integral of f(x) w(x) over the family's interval
//
// Rules come either from generators (Gauss rules through the eigenvalues of
// their Jacobi matrix, root finding, fixed-point iteration or closed-form
// trigonometric formulas) or from literal tables of precomputed values. Each
// call builds a fresh Rule, so results may be modified by the caller.
//
// Invalid orders and shape parameters are reported as *OrderError and
// *ParameterError, which match ErrInvalidOrder and ErrInvalidParameter under
// errors.Is.
package quadrature
