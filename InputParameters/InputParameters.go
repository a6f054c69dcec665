package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML batch file
type InputParameters struct {
	Title     string    `yaml:"Title"`
	Source    string    `yaml:"Source"`    // auto, compute or table
	Solver    string    `yaml:"Solver"`    // imtqlx or eigensym
	Precision int       `yaml:"Precision"` // significant digits printed
	Requests  []Request `yaml:"Requests"`
}

// Request names one family and the orders wanted from it
type Request struct {
	Family   string    `yaml:"Family"`
	Orders   []int     `yaml:"Orders"`
	Alpha    float64   `yaml:"Alpha"`
	Beta     float64   `yaml:"Beta"`
	Interval []float64 `yaml:"Interval"` // optional [c,d] target for finite families
	Check    bool      `yaml:"Check"`
}

func (ip *InputParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	for i, r := range ip.Requests {
		if len(r.Family) == 0 {
			return fmt.Errorf("request %d: missing Family", i)
		}
		if len(r.Orders) == 0 {
			return fmt.Errorf("request %d (%s): missing Orders", i, r.Family)
		}
		if len(r.Interval) != 0 && len(r.Interval) != 2 {
			return fmt.Errorf("request %d (%s): Interval needs two values, got %v", i, r.Family, r.Interval)
		}
	}
	return
}

// Families returns the distinct family names requested, sorted.
func (ip *InputParameters) Families() (names []string) {
	seen := make(map[string]bool)
	for _, r := range ip.Requests {
		if !seen[r.Family] {
			seen[r.Family] = true
			names = append(names, r.Family)
		}
	}
	sort.Strings(names)
	return
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Source\n", ip.Source)
	fmt.Printf("[%s]\t\t\t= Solver\n", ip.Solver)
	fmt.Printf("[%d]\t\t\t\t= Precision\n", ip.Precision)
	for i, r := range ip.Requests {
		fmt.Printf("Requests[%d] = %s n=%v alpha=%g beta=%g interval=%v check=%t\n",
			i, r.Family, r.Orders, r.Alpha, r.Beta, r.Interval, r.Check)
	}
}
