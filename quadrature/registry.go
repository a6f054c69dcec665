package quadrature

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/quadrule/moments"
	"github.com/notargets/quadrule/tridiag"
	"github.com/notargets/quadrule/utils"
)

// Source selects where Generate takes a rule from.
type Source int

const (
	// SourceAuto uses the table when the order is tabulated, else computes.
	SourceAuto Source = iota
	SourceCompute
	SourceTable
)

func (s Source) String() string {
	switch s {
	case SourceAuto:
		return "auto"
	case SourceCompute:
		return "compute"
	case SourceTable:
		return "table"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

func ParseSource(name string) (s Source, err error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return SourceAuto, nil
	case "compute":
		return SourceCompute, nil
	case "table":
		return SourceTable, nil
	}
	err = &ParameterError{Func: "ParseSource", Name: "source", Value: math.NaN(),
		Constraint: fmt.Sprintf("one of auto, compute, table, got %q", name)}
	return
}

type Options struct {
	Source Source
	Solver Solver
}

// Family describes one rule family of the catalogue.
type Family struct {
	Name     string
	Weight   string
	Interval [2]float64
	// NParams is the number of shape parameters read from Params.
	NParams int
	// MinOrder is the smallest order the generator accepts.
	MinOrder int
	// Degree is the exactness degree of the n point rule.
	Degree    func(n int) int
	Symmetric bool
	Compute   func(n int, p Params, s Solver) (Rule, error)
	// Matrix is set for the Gauss families built from their Jacobi matrix.
	Matrix func(n int, p Params) (J tridiag.Matrix, zemu float64)
	Moment func(k int, p Params) (float64, error)
	table  map[int]tabulated
	set    func(n int) (Rule, error)
}

// Orders lists the tabulated orders of the family, ascending.
func (f *Family) Orders() []int { return tableOrders(f.table) }

// Legal renders the tabulated orders as ranges, empty when untabulated.
func (f *Family) Legal() string { return formatOrders(f.Orders()) }

func (f *Family) Tabulated(n int) bool {
	_, ok := f.table[n]
	return ok
}

// Measure is the integral of the weight function over the interval.
func (f *Family) Measure(p Params) (float64, error) { return f.Moment(0, p) }

func (f *Family) checkParams(p Params) (err error) {
	fn := "quadrature." + f.Name
	if f.NParams >= 1 {
		if err = checkShape(fn, "alpha", p.Alpha); err != nil {
			return
		}
	}
	if f.NParams >= 2 {
		err = checkShape(fn, "beta", p.Beta)
	}
	return
}

var (
	unitInterval = [2]float64{-1, 1}
	halfLine     = [2]float64{0, math.Inf(1)}
	realLine     = [2]float64{math.Inf(-1), math.Inf(1)}
)

func gaussDegree(n int) int { return 2*n - 1 }

// interpolatoryDegree belongs to n point rules that are exact for degree
// n-1 and, being symmetric, for degree n when n is odd.
func interpolatoryDegree(n int) int {
	if n%2 == 1 {
		return n
	}
	return n - 1
}

func plain(m func(k int) float64) func(int, Params) (float64, error) {
	return func(k int, _ Params) (float64, error) { return m(k), nil }
}

func fixed(c func(n int) (Rule, error)) func(int, Params, Solver) (Rule, error) {
	return func(n int, _ Params, _ Solver) (Rule, error) { return c(n) }
}

var registry = map[string]*Family{}

func register(f *Family) {
	if _, dup := registry[f.Name]; dup {
		panic("quadrature: family registered twice: " + f.Name)
	}
	if f.MinOrder == 0 {
		f.MinOrder = 1
	}
	registry[f.Name] = f
}

func init() {
	legendreMoment := plain(moments.LegendreIntegral)
	register(&Family{
		Name: "legendre", Weight: "1", Interval: unitInterval,
		Degree: gaussDegree, Symmetric: true,
		Compute: func(n int, _ Params, s Solver) (Rule, error) { return legendreEK(n, s) },
		Matrix:  func(n int, _ Params) (tridiag.Matrix, float64) { return LegendreMatrix(n) },
		Moment:  legendreMoment,
		table:   legendreTable, set: LegendreSet,
	})
	register(&Family{
		Name: "legendre-dr", Weight: "1", Interval: unitInterval,
		Degree: gaussDegree, Symmetric: true,
		Compute: fixed(LegendreDRCompute), Moment: legendreMoment,
	})
	register(&Family{
		Name: "chebyshev1", Weight: "1/sqrt(1-x^2)", Interval: unitInterval,
		Degree: gaussDegree, Symmetric: true,
		Compute: fixed(Chebyshev1Compute), Moment: plain(moments.Chebyshev1Integral),
		table: chebyshev1Table, set: Chebyshev1Set,
	})
	register(&Family{
		Name: "chebyshev2", Weight: "sqrt(1-x^2)", Interval: unitInterval,
		Degree: gaussDegree, Symmetric: true,
		Compute: fixed(Chebyshev2Compute), Moment: plain(moments.Chebyshev2Integral),
		table: chebyshev2Table, set: Chebyshev2Set,
	})
	register(&Family{
		Name: "chebyshev3", Weight: "1/sqrt(1-x^2)", Interval: unitInterval,
		Degree: func(n int) int {
			if n == 1 {
				return 1
			}
			return 2*n - 3
		},
		Symmetric: true,
		Compute:   fixed(Chebyshev3Compute), Moment: plain(moments.Chebyshev1Integral),
		table: chebyshev3Table, set: Chebyshev3Set,
	})
	register(&Family{
		Name: "clenshaw-curtis", Weight: "1", Interval: unitInterval,
		Degree: interpolatoryDegree, Symmetric: true,
		Compute: fixed(ClenshawCurtisCompute), Moment: legendreMoment,
		table: clenshawCurtisTable, set: ClenshawCurtisSet,
	})
	register(&Family{
		Name: "fejer1", Weight: "1", Interval: unitInterval,
		Degree: interpolatoryDegree, Symmetric: true,
		Compute: fixed(Fejer1Compute), Moment: legendreMoment,
		table: fejer1Table, set: Fejer1Set,
	})
	register(&Family{
		Name: "fejer2", Weight: "1", Interval: unitInterval,
		Degree: interpolatoryDegree, Symmetric: true,
		Compute: fixed(Fejer2Compute), Moment: legendreMoment,
		table: fejer2Table, set: Fejer2Set,
	})
	register(&Family{
		Name: "hermite", Weight: "exp(-x^2)", Interval: realLine,
		Degree: gaussDegree, Symmetric: true,
		Compute: func(n int, _ Params, s Solver) (Rule, error) { return hermiteEK(n, s) },
		Matrix:  func(n int, _ Params) (tridiag.Matrix, float64) { return HermiteMatrix(n) },
		Moment:  plain(moments.HermiteIntegral),
		table:   hermiteTable, set: HermiteSet,
	})
	register(&Family{
		Name: "hermite-probabilist", Weight: "exp(-x^2/2)", Interval: realLine,
		Degree: gaussDegree, Symmetric: true,
		Compute: func(n int, _ Params, s Solver) (Rule, error) { return hermiteProbabilistEK(n, s) },
		Moment:  plain(moments.HermiteProbabilistIntegral),
		table:   hermiteProbabilistTable, set: HermiteProbabilistSet,
	})
	register(&Family{
		Name: "gen-hermite", Weight: "|x|^alpha exp(-x^2)", Interval: realLine,
		NParams: 1, Degree: gaussDegree, Symmetric: true,
		Compute: func(n int, p Params, s Solver) (Rule, error) { return genHermiteEK(n, p.Alpha, s) },
		Matrix:  func(n int, p Params) (tridiag.Matrix, float64) { return GenHermiteMatrix(n, p.Alpha) },
		Moment:  func(k int, p Params) (float64, error) { return moments.GenHermiteIntegral(k, p.Alpha) },
	})
	register(&Family{
		Name: "laguerre", Weight: "exp(-x)", Interval: halfLine,
		Degree: gaussDegree,
		Compute: func(n int, _ Params, s Solver) (Rule, error) {
			return genLaguerreEK("LaguerreEKCompute", n, 0, s)
		},
		Matrix: func(n int, _ Params) (tridiag.Matrix, float64) { return GenLaguerreMatrix(n, 0) },
		Moment: plain(moments.LaguerreIntegral),
		table:  laguerreTable, set: LaguerreSet,
	})
	register(&Family{
		Name: "gen-laguerre", Weight: "x^alpha exp(-x)", Interval: halfLine,
		NParams: 1, Degree: gaussDegree,
		Compute: func(n int, p Params, s Solver) (Rule, error) {
			return genLaguerreEK("GenLaguerreEKCompute", n, p.Alpha, s)
		},
		Matrix: func(n int, p Params) (tridiag.Matrix, float64) { return GenLaguerreMatrix(n, p.Alpha) },
		Moment: func(k int, p Params) (float64, error) { return moments.GenLaguerreIntegral(k, p.Alpha) },
	})
	register(&Family{
		Name: "jacobi", Weight: "(1-x)^alpha (1+x)^beta", Interval: unitInterval,
		NParams: 2, Degree: gaussDegree,
		Compute: func(n int, p Params, s Solver) (Rule, error) { return jacobiEK(n, p.Alpha, p.Beta, s) },
		Matrix: func(n int, p Params) (tridiag.Matrix, float64) {
			return JacobiMatrix(n, p.Alpha, p.Beta)
		},
		Moment: func(k int, p Params) (float64, error) { return moments.JacobiIntegral(k, p.Alpha, p.Beta) },
	})
	register(&Family{
		Name: "gegenbauer", Weight: "(1-x^2)^alpha", Interval: unitInterval,
		NParams: 1, Degree: gaussDegree, Symmetric: true,
		Compute: func(n int, p Params, _ Solver) (Rule, error) { return GegenbauerSSCompute(n, p.Alpha) },
		Matrix: func(n int, p Params) (tridiag.Matrix, float64) {
			return JacobiMatrix(n, p.Alpha, p.Alpha)
		},
		Moment: func(k int, p Params) (float64, error) { return moments.GegenbauerIntegral(k, p.Alpha) },
	})
	register(&Family{
		Name: "lobatto", Weight: "1", Interval: unitInterval,
		MinOrder: 2, Degree: func(n int) int { return 2*n - 3 }, Symmetric: true,
		Compute: fixed(LobattoCompute), Moment: legendreMoment,
		table: lobattoTable, set: LobattoSet,
	})
	register(&Family{
		Name: "radau", Weight: "1", Interval: unitInterval,
		Degree:  func(n int) int { return 2*n - 2 },
		Compute: fixed(RadauCompute), Moment: legendreMoment,
		table: radauTable, set: RadauSet,
	})
	register(&Family{
		Name: "kronrod", Weight: "1", Interval: unitInterval,
		Degree: func(n int) int {
			// 3m+1 for the 2m+1 point rule, one more when that is even.
			d := 3*((n-1)/2) + 1
			if d%2 == 0 {
				d++
			}
			return d
		},
		Symmetric: true, Moment: legendreMoment,
		table: kronrodTable, set: KronrodSet,
	})
	register(&Family{
		Name: "patterson", Weight: "1", Interval: unitInterval,
		Degree: func(n int) int {
			if n == 1 {
				return 1
			}
			return (3*n + 1) / 2
		},
		Symmetric: true, Moment: legendreMoment,
		table: pattersonTable, set: PattersonSet,
	})
	register(&Family{
		Name: "ncc", Weight: "1", Interval: unitInterval,
		Degree: interpolatoryDegree, Symmetric: true,
		Compute: fixed(NCCCompute), Moment: legendreMoment,
		table: nccTable, set: NCCSet,
	})
	register(&Family{
		Name: "nco", Weight: "1", Interval: unitInterval,
		Degree: interpolatoryDegree, Symmetric: true,
		Compute: fixed(NCOCompute), Moment: legendreMoment,
		table: ncoTable, set: NCOSet,
	})
	register(&Family{
		Name: "ncoh", Weight: "1", Interval: unitInterval,
		Degree: interpolatoryDegree, Symmetric: true,
		Compute: fixed(NCOHCompute), Moment: legendreMoment,
		table: ncohTable, set: NCOHSet,
	})
	unitMoment := plain(func(k int) float64 { return moments.MonomialIntegral(k, 0, 1) })
	adamsDegree := func(n int) int { return n - 1 }
	register(&Family{
		Name: "adams-bashforth", Weight: "1", Interval: [2]float64{0, 1},
		Degree: adamsDegree, Compute: fixed(AdamsBashforthCompute), Moment: unitMoment,
		table: adamsBashforthTable, set: AdamsBashforthSet,
	})
	register(&Family{
		Name: "adams-moulton", Weight: "1", Interval: [2]float64{0, 1},
		Degree: adamsDegree, Compute: fixed(AdamsMoultonCompute), Moment: unitMoment,
		table: adamsMoultonTable, set: AdamsMoultonSet,
	})
}

// Lookup finds a family by name, case insensitive.
func Lookup(name string) (f *Family, err error) {
	var ok bool
	if f, ok = registry[strings.ToLower(name)]; !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownFamily, name)
	}
	return
}

// Families returns every registered family sorted by name.
func Families() (fams []*Family) {
	fams = make([]*Family, 0, len(registry))
	for _, f := range registry {
		fams = append(fams, f)
	}
	sort.Slice(fams, func(i, j int) bool { return fams[i].Name < fams[j].Name })
	return
}

// Generate builds the n point rule of the named family.
func Generate(name string, n int, p Params, opt Options) (r Rule, err error) {
	var f *Family
	if f, err = Lookup(name); err != nil {
		return
	}
	return f.Generate(n, p, opt)
}

func (f *Family) Generate(n int, p Params, opt Options) (r Rule, err error) {
	if err = f.checkParams(p); err != nil {
		return
	}
	switch opt.Source {
	case SourceTable:
		if f.table == nil {
			err = &OrderError{Func: f.Name + " table", N: n, Legal: "none, the family is not tabulated"}
			return
		}
		return f.set(n)
	case SourceCompute:
		if f.Compute == nil {
			err = &OrderError{Func: f.Name + " compute", N: n, Legal: "none, the family is tabulated only"}
			return
		}
		return f.Compute(n, p, opt.Solver)
	}
	if f.Tabulated(n) || f.Compute == nil {
		return f.set(n)
	}
	return f.Compute(n, p, opt.Solver)
}

// MomentTolerance is the moment error Check accepts as exact, relative to
// the largest of 1, the exact moment and the sum of the absolute terms.
const MomentTolerance = 1.e-10

// Report is the outcome of Check.
type Report struct {
	Family string
	N      int
	// Expected is the exactness degree the family guarantees.
	Expected int
	// Degree is the largest k for which moments 0..k are all exact.
	Degree int
	// Errors holds the scaled moment error for k = 0..Expected+1.
	Errors []float64
	Sum    float64
	// Symmetric reports the mirror test, true for families without symmetry.
	Symmetric bool
}

// Check applies rule r of family f to the monomials up to one degree past
// the guaranteed exactness and compares against the exact moments.
func Check(f *Family, r Rule, p Params) (rep Report, err error) {
	if err = f.checkParams(p); err != nil {
		return
	}
	n := r.Order()
	rep = Report{Family: f.Name, N: n, Expected: f.Degree(n), Sum: r.Sum(), Symmetric: true}
	if f.Symmetric {
		rep.Symmetric = r.IsSymmetric(utils.NODETOL)
	}
	rep.Errors = make([]float64, rep.Expected+2)
	rep.Degree = -1
	exact := true
	for k := range rep.Errors {
		var m float64
		if m, err = f.Moment(k, p); err != nil {
			return
		}
		var q, scale float64
		for i, x := range r.X {
			t := r.W[i] * utils.POW(x, k)
			q += t
			scale += math.Abs(t)
		}
		e := math.Abs(q-m) / math.Max(1, math.Max(math.Abs(m), scale))
		rep.Errors[k] = e
		if exact = exact && e <= MomentTolerance; exact {
			rep.Degree = k
		}
	}
	return
}
