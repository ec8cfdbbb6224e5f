package palette

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop maps a normalized escape fraction to a color.
type Stop struct {
	Fraction float32
	R, G, B  uint8
}

// Gradient is an immutable, ordered table of stops spanning [0, 1].
type Gradient struct {
	stops []Stop
}

// NewGradient validates the stops and returns the table.
// Fractions must lie in [0, 1], start at 0, end at 1 and be strictly increasing.
func NewGradient(stops ...Stop) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stops, got %d", ErrMalformedGradient, len(stops))
	}
	// NaN compares false against everything, so the ordering check alone lets it through.
	for i, s := range stops {
		if f := float64(s.Fraction); math.IsNaN(f) || f < 0 || f > 1 {
			return nil, fmt.Errorf("%w: stop %d at %g is outside [0, 1]", ErrMalformedGradient, i, s.Fraction)
		}
	}
	if stops[0].Fraction != 0 {
		return nil, fmt.Errorf("%w: first stop at %g, want 0", ErrMalformedGradient, stops[0].Fraction)
	}
	if last := stops[len(stops)-1].Fraction; last != 1 {
		return nil, fmt.Errorf("%w: last stop at %g, want 1", ErrMalformedGradient, last)
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].Fraction <= stops[i-1].Fraction {
			return nil, fmt.Errorf("%w: stop %d at %g does not follow %g",
				ErrMalformedGradient, i, stops[i].Fraction, stops[i-1].Fraction)
		}
	}

	owned := make([]Stop, len(stops))
	copy(owned, stops)
	return &Gradient{stops: owned}, nil
}

// MustGradient is like NewGradient but panics on a malformed table.
func MustGradient(stops ...Stop) *Gradient {
	g, err := NewGradient(stops...)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseStop builds a stop from a "#rrggbb" color.
func ParseStop(fraction float32, hex string) (Stop, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Stop{}, fmt.Errorf("%w: %q: %v", ErrBadColor, hex, err)
	}
	r, g, b := c.RGB255()
	return Stop{Fraction: fraction, R: r, G: g, B: b}, nil
}

// Len returns the number of stops.
func (g *Gradient) Len() int { return len(g.stops) }

// Stops returns a copy of the table.
func (g *Gradient) Stops() []Stop {
	out := make([]Stop, len(g.stops))
	copy(out, g.stops)
	return out
}

// Default is the blue/white/orange/green cycle the explorer starts with.
func Default() *Gradient {
	return MustGradient(
		Stop{Fraction: 0.0, R: 0, G: 7, B: 100},
		Stop{Fraction: 0.16, R: 32, G: 107, B: 203},
		Stop{Fraction: 0.42, R: 237, G: 255, B: 255},
		Stop{Fraction: 0.6425, R: 255, G: 170, B: 0},
		Stop{Fraction: 0.8575, R: 0, G: 70, B: 0},
		Stop{Fraction: 1.0, R: 0, G: 7, B: 100},
	)
}

// Grayscale runs from black to white.
func Grayscale() *Gradient {
	return MustGradient(
		Stop{Fraction: 0.0},
		Stop{Fraction: 1.0, R: 255, G: 255, B: 255},
	)
}

// Named returns a built-in gradient by name.
func Named(name string) (*Gradient, error) {
	switch name {
	case "", "default":
		return Default(), nil
	case "gray", "grey":
		return Grayscale(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: default, gray)", ErrUnknownPalette, name)
	}
}
