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
	"text/tabwriter"

	"github.com/notargets/quadrule/quadrature"
	"github.com/spf13/cobra"
)

// CheckCmd represents the check command
var CheckCmd = &cobra.Command{
	Use:   "check FAMILY",
	Short: "Compare the moments of a rule against the exact moments",
	Long: `
Applies the n point rule of a family to x^k for k up to one past the degree the
family guarantees, prints the scaled moment errors and fails when the observed
exactness falls short

quadrule check gen-laguerre -n 8 --alpha 1.5`,
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
		slog.Debug("check", "family", f.Name, "n", n, "alpha", p.Alpha, "beta", p.Beta,
			"source", s.Options.Source, "solver", s.Options.Solver)
		return checkRule(cmd.OutOrStdout(), f, n, p, s)
	},
}

func init() {
	rootCmd.AddCommand(CheckCmd)
	addFamilyFlags(CheckCmd)
}

func checkRule(w io.Writer, f *quadrature.Family, n int, p quadrature.Params, s Settings) (err error) {
	var (
		r   quadrature.Rule
		rep quadrature.Report
	)
	if r, err = f.Generate(n, p, s.Options); err != nil {
		return
	}
	if rep, err = quadrature.Check(f, r, p); err != nil {
		return
	}
	writeReport(w, rep)
	if rep.Degree < rep.Expected {
		return fmt.Errorf("%s n = %d: exact to degree %d, expected %d", rep.Family, rep.N, rep.Degree, rep.Expected)
	}
	if !rep.Symmetric {
		return fmt.Errorf("%s n = %d: rule is not symmetric", rep.Family, rep.N)
	}
	return
}

func writeReport(w io.Writer, rep quadrature.Report) {
	fmt.Fprintf(w, "%s n = %d: sum of weights %.16g, symmetric %t\n", rep.Family, rep.N, rep.Sum, rep.Symmetric)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "k\terror\texact\t\n")
	for k, e := range rep.Errors {
		fmt.Fprintf(tw, "%d\t%.3e\t%t\t\n", k, e, e <= quadrature.MomentTolerance)
	}
	tw.Flush()
	fmt.Fprintf(w, "observed degree %d, expected %d\n", rep.Degree, rep.Expected)
}
