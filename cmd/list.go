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
	"text/tabwriter"

	"github.com/notargets/quadrule/quadrature"
	"github.com/spf13/cobra"
)

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the rule families",
	Long: `
Lists every rule family with its weight function, interval, shape parameters
and tabulated orders

quadrule list`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "NAME\tWEIGHT\tINTERVAL\tPARAMS\tMIN N\tDEGREE(5)\tTABLES\n")
		for _, f := range quadrature.Families() {
			legal := f.Legal()
			if legal == "" {
				legal = "-"
			}
			fmt.Fprintf(tw, "%s\t%s\t[%g,%g]\t%d\t%d\t%d\t%s\n",
				f.Name, f.Weight, f.Interval[0], f.Interval[1], f.NParams, f.MinOrder, f.Degree(5), legal)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(ListCmd)
}
