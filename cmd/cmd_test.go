package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/notargets/quadrule/InputParameters"
	"github.com/notargets/quadrule/quadrature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (out string, err error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return buf.String(), err
}

func TestCommands(t *testing.T) {
	t.Run("rule json", func(t *testing.T) {
		out, err := run("rule", "legendre", "-n", "3", "--format", "json")
		require.NoError(t, err)
		var ro RuleOutput
		require.NoError(t, json.Unmarshal([]byte(out), &ro))
		assert.Equal(t, "legendre", ro.Family)
		assert.Equal(t, 3, ro.N)
		assert.Equal(t, [2]string{"-1", "1"}, ro.Interval)
		assert.InDeltaSlice(t, []float64{-math.Sqrt(0.6), 0, math.Sqrt(0.6)}, ro.X, 1.e-15)
		assert.InDeltaSlice(t, []float64{5. / 9, 8. / 9, 5. / 9}, ro.W, 1.e-15)
	})
	t.Run("rule table", func(t *testing.T) {
		out, err := run("rule", "ncc", "-n", "3", "--interval", "0,2", "--format", "table")
		require.NoError(t, err)
		fmt.Printf("%s", out)
		assert.Contains(t, out, "ncc n = 3 on [0,2]")
	})
	t.Run("bad format", func(t *testing.T) {
		_, err := run("rule", "legendre", "-n", "3", "--format", "xml")
		assert.Error(t, err)
	})
	t.Run("unknown family", func(t *testing.T) {
		_, err := run("rule", "simpson", "-n", "3", "--format", "table")
		assert.True(t, errors.Is(err, quadrature.ErrUnknownFamily))
	})
	t.Run("illegal order", func(t *testing.T) {
		_, err := run("rule", "legendre", "-n", "0", "--format", "table")
		assert.True(t, errors.Is(err, quadrature.ErrInvalidOrder))
	})
	t.Run("list", func(t *testing.T) {
		out, err := run("list", "--format", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "gen-laguerre")
		assert.Contains(t, out, "1-33, 63-65, 127-129")
	})
	t.Run("check", func(t *testing.T) {
		out, err := run("check", "legendre", "-n", "4", "--format", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "observed degree 7, expected 7")
	})
	t.Run("jacobi", func(t *testing.T) {
		out, err := run("jacobi", "legendre", "-n", "4", "--format", "table")
		require.NoError(t, err)
		fmt.Printf("%s", out)
		assert.Contains(t, out, "zero-th moment 2\n")
		assert.Contains(t, out, "P_n(lambda)")
		_, err = run("jacobi", "ncc", "-n", "3", "--format", "table")
		assert.Error(t, err)
	})
	t.Run("batch without file", func(t *testing.T) {
		out, err := run("batch", "--format", "table")
		assert.Error(t, err)
		assert.Contains(t, out, "Example File:")
	})
}

func TestBuildRule(t *testing.T) {
	f, err := quadrature.Lookup("ncc")
	require.NoError(t, err)
	out, err := buildRule(f, 3, quadrature.Params{}, []float64{0, 2}, quadrature.Options{})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, 2}, out.X, 1.e-15)
	assert.InDeltaSlice(t, []float64{1. / 3, 4. / 3, 1. / 3}, out.W, 1.e-15)
	assert.Equal(t, [2]string{"0", "2"}, out.Interval)

	f, _ = quadrature.Lookup("hermite")
	_, err = buildRule(f, 3, quadrature.Params{}, []float64{0, 1}, quadrature.Options{})
	assert.Error(t, err)
	out, err = buildRule(f, 3, quadrature.Params{}, nil, quadrature.Options{})
	require.NoError(t, err)
	assert.Equal(t, [2]string{"-Inf", "+Inf"}, out.Interval)

	for _, format := range []string{"json", "yaml", "table"} {
		var buf bytes.Buffer
		require.NoError(t, writeRule(&buf, out, Settings{Format: format, Precision: 6}))
		assert.NotEmpty(t, buf.String(), format)
	}
	data, err := yaml.Marshal(out)
	require.NoError(t, err)
	var back RuleOutput
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, out.Interval, back.Interval)
	assert.Equal(t, out.X, back.X)
}

func TestParseInterval(t *testing.T) {
	iv, err := parseInterval("")
	assert.NoError(t, err)
	assert.Nil(t, iv)
	iv, err = parseInterval(" 0, 2.5 ")
	assert.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5}, iv)
	for _, s := range []string{"1", "1,2,3", "a,b"} {
		_, err = parseInterval(s)
		assert.Error(t, err, s)
	}
	assert.Equal(t, "1.2346e+00", formatFloat(1.23456, 5))
}

func TestRunBatch(t *testing.T) {
	ip := &InputParameters.InputParameters{
		Title:  "two rules",
		Solver: "eigensym",
		Requests: []InputParameters.Request{
			{Family: "legendre", Orders: []int{3}, Check: true},
			{Family: "jacobi", Orders: []int{2, 5}, Alpha: 0.5, Beta: 1.5, Interval: []float64{0, 1}},
			{Family: "simpson", Orders: []int{3}},
			{Family: "lobatto", Orders: []int{1}},
		},
	}
	var buf bytes.Buffer
	err := runBatch(&buf, ip, Settings{Format: "table", Precision: 12})
	fmt.Printf("%s", buf.String())
	require.Error(t, err)
	assert.Equal(t, "2 of the requested rules failed", err.Error())
	out := buf.String()
	assert.Contains(t, out, "# two rules")
	assert.Contains(t, out, "observed degree 5, expected 5")
	assert.Contains(t, out, "jacobi n = 5 on [0,1]")

	ip = &InputParameters.InputParameters{Solver: "qr"}
	assert.Error(t, runBatch(&buf, ip, Settings{Format: "table", Precision: 12}))
}
