package utils

const (
	// NODETOL is the tolerance used when comparing abscissas for symmetry.
	NODETOL = 1.e-12
)
