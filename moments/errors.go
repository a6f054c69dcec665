package moments

import "errors"

var (
	// ErrDomain reports an argument at a pole or outside the supported range.
	ErrDomain = errors.New("moments: argument outside domain")
	// ErrNoConvergence reports a series that failed to settle.
	ErrNoConvergence = errors.New("moments: series did not converge")
)
