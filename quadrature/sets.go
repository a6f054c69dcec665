package quadrature

// The Set functions copy a rule out of the literal tables. An order with no
// table entry returns an *OrderError listing the tabulated orders.

// LegendreSet returns the tabulated n point Gauss-Legendre rule, weight 1 on
// [-1,1].
func LegendreSet(n int) (Rule, error) { return lookup("LegendreSet", legendreTable, n) }

// Chebyshev1Set returns the tabulated Gauss-Chebyshev rule of the first kind.
func Chebyshev1Set(n int) (Rule, error) { return lookup("Chebyshev1Set", chebyshev1Table, n) }

// Chebyshev2Set returns the tabulated Gauss-Chebyshev rule of the second kind.
func Chebyshev2Set(n int) (Rule, error) { return lookup("Chebyshev2Set", chebyshev2Table, n) }

// Chebyshev3Set returns the tabulated Gauss-Lobatto-Chebyshev rule.
func Chebyshev3Set(n int) (Rule, error) { return lookup("Chebyshev3Set", chebyshev3Table, n) }

func ClenshawCurtisSet(n int) (Rule, error) {
	return lookup("ClenshawCurtisSet", clenshawCurtisTable, n)
}

func Fejer1Set(n int) (Rule, error) { return lookup("Fejer1Set", fejer1Table, n) }

func Fejer2Set(n int) (Rule, error) { return lookup("Fejer2Set", fejer2Table, n) }

// HermiteSet returns the tabulated Gauss-Hermite rule, weight exp(-x^2).
func HermiteSet(n int) (Rule, error) { return lookup("HermiteSet", hermiteTable, n) }

// HermiteProbabilistSet returns the tabulated rule for weight exp(-x^2/2).
func HermiteProbabilistSet(n int) (Rule, error) {
	return lookup("HermiteProbabilistSet", hermiteProbabilistTable, n)
}

// LaguerreSet returns the tabulated Gauss-Laguerre rule, weight exp(-x) on
// [0,+inf).
func LaguerreSet(n int) (Rule, error) { return lookup("LaguerreSet", laguerreTable, n) }

func LobattoSet(n int) (Rule, error) { return lookup("LobattoSet", lobattoTable, n) }

func RadauSet(n int) (Rule, error) { return lookup("RadauSet", radauTable, n) }

// KronrodSet returns the tabulated Gauss-Kronrod rule. The odd-indexed
// abscissas of the n point rule are those of the (n-1)/2 point Gauss rule.
func KronrodSet(n int) (Rule, error) { return lookup("KronrodSet", kronrodTable, n) }

// PattersonSet returns the tabulated Gauss-Patterson rule.
func PattersonSet(n int) (Rule, error) { return lookup("PattersonSet", pattersonTable, n) }

func NCCSet(n int) (Rule, error) { return lookup("NCCSet", nccTable, n) }

func NCOSet(n int) (Rule, error) { return lookup("NCOSet", ncoTable, n) }

func NCOHSet(n int) (Rule, error) { return lookup("NCOHSet", ncohTable, n) }

func AdamsBashforthSet(n int) (Rule, error) {
	return lookup("AdamsBashforthSet", adamsBashforthTable, n)
}

func AdamsMoultonSet(n int) (Rule, error) {
	return lookup("AdamsMoultonSet", adamsMoultonTable, n)
}
