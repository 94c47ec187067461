package report

import "errors"

var (
	// ErrInvalidTemporalInput marks impossible timestamps (check-out before
	// check-in, month outside 1..12). Fatal to the computation.
	ErrInvalidTemporalInput = errors.New("invalid temporal input")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMissingProfile   = errors.New("employee profile is missing")

	// ErrInconsistentSnapshot marks per-record anomalies (leave with
	// from > to, shift with no working time). Logged and skipped; never
	// aborts the computation.
	ErrInconsistentSnapshot = errors.New("inconsistent snapshot record")

	ErrInvalidScope = errors.New("scope must be admin or organization")
)
