package quadrature

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrInvalidOrder is wrapped by every OrderError.
	ErrInvalidOrder = errors.New("quadrature: invalid order")
	// ErrInvalidParameter is wrapped by every ParameterError.
	ErrInvalidParameter = errors.New("quadrature: invalid parameter")
	// ErrNoConvergence reports an iteration that exhausted its bound.
	ErrNoConvergence = errors.New("quadrature: iteration did not converge")
	// ErrUnknownFamily reports a registry name with no family behind it.
	ErrUnknownFamily = errors.New("quadrature: unknown rule family")
)

// OrderError names the function that rejected n and the orders it accepts.
type OrderError struct {
	Func  string
	N     int
	Legal string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s: illegal order n = %d, legal values are %s", e.Func, e.N, e.Legal)
}

func (e *OrderError) Unwrap() error { return ErrInvalidOrder }

// ParameterError reports a shape parameter outside its admissible range.
type ParameterError struct {
	Func       string
	Name       string
	Value      float64
	Constraint string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: illegal %s = %g, require %s", e.Func, e.Name, e.Value, e.Constraint)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func checkOrder(fn string, n, min int) error {
	if n < min {
		return &OrderError{Func: fn, N: n, Legal: "n >= " + strconv.Itoa(min)}
	}
	return nil
}

// checkShape rejects NaN and values at or below -1.
func checkShape(fn, name string, v float64) error {
	if !(v > -1) {
		return &ParameterError{Func: fn, Name: name, Value: v, Constraint: name + " > -1"}
	}
	return nil
}

// formatOrders renders a set of orders as ascending ranges, "1-10, 12, 14-16".
func formatOrders(orders []int) string {
	o := append([]int(nil), orders...)
	sort.Ints(o)
	var parts []string
	for i := 0; i < len(o); {
		j := i
		for j+1 < len(o) && o[j+1] == o[j]+1 {
			j++
		}
		switch {
		case j == i:
			parts = append(parts, strconv.Itoa(o[i]))
		case j == i+1:
			parts = append(parts, strconv.Itoa(o[i]), strconv.Itoa(o[j]))
		default:
			parts = append(parts, strconv.Itoa(o[i])+"-"+strconv.Itoa(o[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}
