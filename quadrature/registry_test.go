package quadrature

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	fams := Families()
	require.Len(t, fams, 24)
	names := make([]string, len(fams))
	for i, f := range fams {
		names[i] = f.Name
		assert.NotNil(t, f.Degree, f.Name)
		assert.NotNil(t, f.Moment, f.Name)
		assert.True(t, f.Compute != nil || f.table != nil, f.Name)
	}
	assert.True(t, sort.StringsAreSorted(names))

	f, err := Lookup("Legendre")
	require.NoError(t, err)
	assert.Equal(t, "legendre", f.Name)
	assert.Equal(t, [2]float64{-1, 1}, f.Interval)
	assert.True(t, f.Tabulated(129))
	assert.False(t, f.Tabulated(34))
	assert.Equal(t, "1-33, 63-65, 127-129", f.Legal())

	_, err = Lookup("simpson")
	assert.True(t, errors.Is(err, ErrUnknownFamily))
	_, err = Generate("simpson", 3, Params{}, Options{})
	assert.True(t, errors.Is(err, ErrUnknownFamily))

	f, _ = Lookup("jacobi")
	assert.Equal(t, "", f.Legal())

	f, _ = Lookup("laguerre")
	assert.True(t, math.IsInf(f.Interval[1], 1))
	m, err := f.Measure(Params{})
	require.NoError(t, err)
	assert.Equal(t, 1., m)
}

func TestGenerate(t *testing.T) {
	t.Run("auto prefers the table", func(t *testing.T) {
		r, err := Generate("legendre", 5, Params{}, Options{})
		require.NoError(t, err)
		rt, _ := LegendreSet(5)
		assert.Equal(t, rt, r)
		// 40 is not tabulated
		r, err = Generate("legendre", 40, Params{}, Options{})
		require.NoError(t, err)
		rc, _ := LegendreEKCompute(40)
		assert.Equal(t, rc, r)
	})
	t.Run("sources", func(t *testing.T) {
		var err error
		_, err = Generate("kronrod", 15, Params{}, Options{Source: SourceCompute})
		assert.True(t, errors.Is(err, ErrInvalidOrder))
		_, err = Generate("kronrod", 17, Params{}, Options{})
		assert.True(t, errors.Is(err, ErrInvalidOrder))
		_, err = Generate("jacobi", 4, Params{Alpha: 1, Beta: 1}, Options{Source: SourceTable})
		assert.True(t, errors.Is(err, ErrInvalidOrder))
		r, err := Generate("kronrod", 15, Params{}, Options{})
		require.NoError(t, err)
		assert.Equal(t, 15, r.Order())
		r, err = Generate("hermite", 12, Params{}, Options{Source: SourceCompute, Solver: SolverEigenSym})
		require.NoError(t, err)
		rt, _ := HermiteSet(12)
		assert.InDeltaSlice(t, rt.X, r.X, 1.e-13)
	})
	t.Run("parameters are validated", func(t *testing.T) {
		var (
			pe  *ParameterError
			err error
		)
		_, err = Generate("gegenbauer", 4, Params{Alpha: -2}, Options{})
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "alpha", pe.Name)
		_, err = Generate("jacobi", 4, Params{Alpha: 0, Beta: -1}, Options{})
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "beta", pe.Name)
		// Families without shape parameters ignore Params
		_, err = Generate("legendre", 4, Params{Alpha: -2}, Options{})
		assert.NoError(t, err)
	})
	t.Run("idempotence", func(t *testing.T) {
		for _, f := range Families() {
			p := Params{Alpha: 0.5, Beta: 0.25}
			n := 7
			r1, err := f.Generate(n, p, Options{})
			if err != nil {
				// kronrod has no 7 point rule
				n = f.Orders()[0]
				r1, err = f.Generate(n, p, Options{})
			}
			require.NoError(t, err, f.Name)
			r2, err := f.Generate(n, p, Options{})
			require.NoError(t, err)
			assert.Equal(t, r1, r2, f.Name)
		}
	})
}

func TestCheck(t *testing.T) {
	f, _ := Lookup("legendre")
	r, _ := LegendreSet(4)
	rep, err := Check(f, r, Params{})
	require.NoError(t, err)
	fmt.Printf("%+v\n", rep)
	assert.Equal(t, 7, rep.Expected)
	assert.Equal(t, 7, rep.Degree)
	assert.Len(t, rep.Errors, 9)
	assert.True(t, rep.Symmetric)
	assert.InDelta(t, 2., rep.Sum, 1.e-15)

	// A Gauss-Legendre rule checked against the Chebyshev weight fails at once
	f, _ = Lookup("chebyshev1")
	rep, err = Check(f, r, Params{})
	require.NoError(t, err)
	assert.Equal(t, -1, rep.Degree)

	// An asymmetric rule for a symmetric family is flagged
	f, _ = Lookup("ncc")
	rep, err = Check(f, Rule{X: []float64{-1, 0.1, 1}, W: []float64{0.5, 1, 0.5}}, Params{})
	require.NoError(t, err)
	assert.False(t, rep.Symmetric)

	f, _ = Lookup("gen-laguerre")
	_, err = Check(f, r, Params{Alpha: -1})
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func TestSourceNames(t *testing.T) {
	for _, s := range []Source{SourceAuto, SourceCompute, SourceTable} {
		p, err := ParseSource(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}
	_, err := ParseSource("disk")
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
