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
	"os"

	"github.com/notargets/quadrule/InputParameters"
	"github.com/notargets/quadrule/quadrature"
	"github.com/spf13/cobra"
)

const exampleBatchFile = `
########################################
Title: "Gauss rules"
Source: auto     # auto, compute or table
Solver: imtqlx   # imtqlx or eigensym
Precision: 16
Requests:
  - Family: legendre
    Orders: [3, 5, 7]
    Interval: [0, 1]
  - Family: gen-laguerre
    Orders: [4]
    Alpha: 0.5
    Check: true
########################################
`

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate the rules listed in a YAML request file",
	Long: `
Reads a YAML file of rule requests and prints every rule, checking the
moments of those requests marked Check

quadrule batch -I requests.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			s    Settings
			data []byte
		)
		if s, err = loadSettings(); err != nil {
			return
		}
		file, _ := cmd.Flags().GetString("inputConditionsFile")
		if len(file) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Example File:%s\n", exampleBatchFile)
			return fmt.Errorf("must supply a request file (-I, --inputConditionsFile)")
		}
		if data, err = os.ReadFile(file); err != nil {
			return
		}
		ip := &InputParameters.InputParameters{}
		if err = ip.Parse(data); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			ip.Print()
		}
		return runBatch(cmd.OutOrStdout(), ip, s)
	},
}

func init() {
	rootCmd.AddCommand(BatchCmd)
	BatchCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file of rule requests")
	BatchCmd.Flags().BoolP("verbose", "v", false, "print the parsed request file")
}

// runBatch works through every request, the file settings override s. A
// failing request is logged and the remaining ones still run.
func runBatch(w io.Writer, ip *InputParameters.InputParameters, s Settings) (err error) {
	if ip.Source != "" {
		if s.Options.Source, err = quadrature.ParseSource(ip.Source); err != nil {
			return
		}
	}
	if ip.Solver != "" {
		if s.Options.Solver, err = quadrature.ParseSolver(ip.Solver); err != nil {
			return
		}
	}
	if ip.Precision != 0 {
		s.Precision = ip.Precision
	}
	if ip.Title != "" && s.Format == "table" {
		fmt.Fprintf(w, "# %s\n", ip.Title)
	}
	var failed int
	for _, req := range ip.Requests {
		f, lerr := quadrature.Lookup(req.Family)
		if lerr != nil {
			slog.Error("batch", "family", req.Family, "err", lerr)
			failed += len(req.Orders)
			continue
		}
		p := quadrature.Params{Alpha: req.Alpha, Beta: req.Beta}
		for _, n := range req.Orders {
			slog.Debug("batch", "family", f.Name, "n", n)
			if rerr := batchRequest(w, f, n, p, req, s); rerr != nil {
				slog.Error("batch", "family", f.Name, "n", n, "err", rerr)
				failed++
			}
		}
	}
	if failed != 0 {
		err = fmt.Errorf("%d of the requested rules failed", failed)
	}
	return
}

func batchRequest(w io.Writer, f *quadrature.Family, n int, p quadrature.Params,
	req InputParameters.Request, s Settings) (err error) {
	var out RuleOutput
	if out, err = buildRule(f, n, p, req.Interval, s.Options); err != nil {
		return
	}
	if err = writeRule(w, out, s); err != nil {
		return
	}
	if req.Check {
		err = checkRule(w, f, n, p, s)
	}
	return
}
