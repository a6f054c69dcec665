// Package moments evaluates exact integrals of monomials against the weight
// functions of the classical quadrature families, together with the special
// functions (digamma, Gauss hypergeometric 2F1) those integrals require.
//
// The values serve as references when checking how many moments a computed
// or tabulated rule reproduces.
package moments
