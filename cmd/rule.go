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
	"log/slog"

	"github.com/notargets/quadrule/quadrature"
	"github.com/spf13/cobra"
)

// RuleCmd represents the rule command
var RuleCmd = &cobra.Command{
	Use:   "rule FAMILY",
	Short: "Print the abscissas and weights of a rule",
	Long: `
Prints the n point rule of a family, optionally mapped onto [c,d]

quadrule rule jacobi -n 6 --alpha 0.5 --beta -0.5
quadrule rule ncc -n 5 --interval 0,1 --format yaml`,
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
		ivs, _ := cmd.Flags().GetString("interval")
		var iv []float64
		if iv, err = parseInterval(ivs); err != nil {
			return
		}
		slog.Debug("rule", "family", f.Name, "n", n, "alpha", p.Alpha, "beta", p.Beta,
			"interval", iv, "source", s.Options.Source, "solver", s.Options.Solver)
		var out RuleOutput
		if out, err = buildRule(f, n, p, iv, s.Options); err != nil {
			return
		}
		return writeRule(cmd.OutOrStdout(), out, s)
	},
}

func init() {
	rootCmd.AddCommand(RuleCmd)
	addFamilyFlags(RuleCmd)
	RuleCmd.Flags().String("interval", "", "map the rule onto c,d (finite families only)")
}

func addFamilyFlags(c *cobra.Command) {
	c.Flags().IntP("n", "n", 3, "order of the rule")
	c.Flags().Float64("alpha", 0, "first shape parameter")
	c.Flags().Float64("beta", 0, "second shape parameter")
}

func familyArgs(cmd *cobra.Command, args []string) (f *quadrature.Family, n int, p quadrature.Params, err error) {
	if f, err = quadrature.Lookup(args[0]); err != nil {
		return
	}
	n, _ = cmd.Flags().GetInt("n")
	p.Alpha, _ = cmd.Flags().GetFloat64("alpha")
	p.Beta, _ = cmd.Flags().GetFloat64("beta")
	return
}
