package palette

import "errors"

var (
	// ErrMalformedGradient indicates a stop table that is too short, unordered
	// or does not span [0, 1].
	ErrMalformedGradient = errors.New("palette: malformed gradient")

	// ErrBadColor indicates a stop color that is not a #rrggbb string.
	ErrBadColor = errors.New("palette: invalid color")

	ErrUnknownPalette = errors.New("palette: unknown palette")
)
