/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"text/tabwriter"

	"github.com/notargets/quadrule/quadrature"
	"github.com/notargets/quadrule/tridiag"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

// JacobiCmd represents the jacobi command
var JacobiCmd = &cobra.Command{
	Use:   "jacobi FAMILY",
	Short: "Print the Jacobi matrix of a Gauss family and its eigenpairs",
	Long: `
Prints the symmetric tridiagonal Jacobi matrix whose eigenvalues are the Gauss
abscissas of the family, then each eigenvalue with its weight and the residual
|J v - lambda v| of its eigenvector

quadrule jacobi hermite -n 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			s Settings
			f *quadrature.Family
			n int
			p quadrature.Params
		)
		if s, err = loadSettings(); err != nil {
			return
		}
		if f, n, p, err = familyArgs(cmd, args); err != nil {
			return
		}
		if f.Matrix == nil {
			return fmt.Errorf("%s: not built from a Jacobi matrix", f.Name)
		}
		// Generate validates the order and parameters
		if _, err = f.Generate(n, p, quadrature.Options{Source: quadrature.SourceCompute}); err != nil {
			return
		}
		slog.Debug("jacobi", "family", f.Name, "n", n, "alpha", p.Alpha, "beta", p.Beta)
		J, zemu := f.Matrix(n, p)
		return writeJacobi(cmd.OutOrStdout(), f, J, zemu, p, s.Precision)
	},
}

func init() {
	rootCmd.AddCommand(JacobiCmd)
	addFamilyFlags(JacobiCmd)
}

func writeJacobi(w io.Writer, f *quadrature.Family, J tridiag.Matrix, zemu float64,
	p quadrature.Params, prec int) (err error) {
	n := J.Order()
	fmt.Fprintf(w, "J = \n%v\n", mat.Formatted(J.Dense(), mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(w, "zero-th moment %.16g\n", zemu)

	var eig mat.EigenSym
	if ok := eig.Factorize(J.Dense(), true); !ok {
		return fmt.Errorf("%s: %w: symmetric eigendecomposition failed", f.Name, quadrature.ErrNoConvergence)
	}
	lam := eig.Values(nil)
	var V mat.Dense
	eig.VectorsTo(&V)

	// The orthonormal Jacobi polynomial of degree n vanishes at the Gauss-Jacobi abscissas
	var pn []float64
	switch f.Name {
	case "legendre":
		pn = quadrature.JacobiP(lam, 0, 0, n)
	case "jacobi":
		pn = quadrature.JacobiP(lam, p.Alpha, p.Beta, n)
	case "gegenbauer":
		pn = quadrature.JacobiP(lam, p.Alpha, p.Alpha, n)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "i\tlambda\tweight\tresidual\t")
	if pn != nil {
		fmt.Fprintf(tw, "P_n(lambda)\t")
	}
	fmt.Fprintf(tw, "\n")
	for i := 0; i < n; i++ {
		v := mat.Col(nil, i, &V)
		res := J.Residual(lam[i], v)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%.3e\t", i, formatFloat(lam[i], prec), formatFloat(zemu*v[0]*v[0], prec), res)
		if pn != nil {
			fmt.Fprintf(tw, "%.3e\t", math.Abs(pn[i]))
		}
		fmt.Fprintf(tw, "\n")
	}
	return tw.Flush()
}
