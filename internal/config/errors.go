package config

import "errors"

var (
	// ErrInvalid indicates a configuration value outside its valid range.
	ErrInvalid = errors.New("config: invalid configuration")

	ErrUnknownPreset = errors.New("config: unknown preset")
)
