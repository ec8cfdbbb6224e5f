package render

import "errors"

// ErrPresent wraps a failure reported by the display surface.
var ErrPresent = errors.New("render: present failed")

// ErrBadDimension indicates a non-positive render dimension.
var ErrBadDimension = errors.New("render: dimension must be positive")
