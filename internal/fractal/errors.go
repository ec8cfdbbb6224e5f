package fractal

import "errors"

var (
	// ErrZeroIterations indicates an escape budget of zero.
	ErrZeroIterations = errors.New("fractal: max iterations must be at least 1")

	// ErrBailout indicates a bailout that is not a finite positive number.
	ErrBailout = errors.New("fractal: bailout must be finite and positive")
)
