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
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ghodss/yaml"
	"github.com/notargets/quadrule/quadrature"
)

// RuleOutput is the serialized form of a rule.
type RuleOutput struct {
	Family   string    `json:"family"`
	N        int       `json:"n"`
	Alpha    float64   `json:"alpha,omitempty"`
	Beta     float64   `json:"beta,omitempty"`
	Interval [2]string `json:"interval"` // text, infinite ends are not JSON numbers
	X        []float64 `json:"x"`
	W        []float64 `json:"w"`
}

// buildRule generates the n point rule of f and maps it onto interval when
// one is given.
func buildRule(f *quadrature.Family, n int, p quadrature.Params, interval []float64,
	opt quadrature.Options) (out RuleOutput, err error) {
	var r quadrature.Rule
	if r, err = f.Generate(n, p, opt); err != nil {
		return
	}
	out = RuleOutput{Family: f.Name, N: r.Order(), Alpha: p.Alpha, Beta: p.Beta,
		Interval: endpoints(f.Interval[0], f.Interval[1])}
	if len(interval) == 2 {
		a, b := f.Interval[0], f.Interval[1]
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			err = fmt.Errorf("%s: the interval %v is infinite and can not be rescaled", f.Name, f.Interval)
			return
		}
		if r, err = r.Rescale(a, b, interval[0], interval[1]); err != nil {
			return
		}
		out.Interval = endpoints(interval[0], interval[1])
	}
	out.X, out.W = r.X, r.W
	return
}

func writeRule(w io.Writer, out RuleOutput, s Settings) (err error) {
	var data []byte
	switch s.Format {
	case "json":
		if data, err = json.MarshalIndent(out, "", "  "); err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
	case "yaml":
		if data, err = yaml.Marshal(out); err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "---\n%s", data)
	default:
		fmt.Fprintf(w, "%s n = %d on [%s,%s]\n", out.Family, out.N, out.Interval[0], out.Interval[1])
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(tw, "i\tx\tw\t\n")
		for i := range out.X {
			fmt.Fprintf(tw, "%d\t%s\t%s\t\n", i, formatFloat(out.X[i], s.Precision), formatFloat(out.W[i], s.Precision))
		}
		err = tw.Flush()
	}
	return
}

func endpoints(a, b float64) [2]string {
	return [2]string{strconv.FormatFloat(a, 'g', -1, 64), strconv.FormatFloat(b, 'g', -1, 64)}
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'e', prec-1, 64)
}

// parseInterval reads "c,d" into a two element slice, empty input gives nil.
func parseInterval(s string) (iv []float64, err error) {
	if s = strings.TrimSpace(s); s == "" {
		return
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		err = fmt.Errorf("interval %q: want c,d", s)
		return
	}
	iv = make([]float64, 2)
	for i, p := range parts {
		if iv[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			err = fmt.Errorf("interval %q: %w", s, err)
			return
		}
	}
	return
}
