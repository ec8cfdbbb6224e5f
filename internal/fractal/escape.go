package fractal

import (
	"fmt"
	"math"
)

// Params bounds the per-pixel work of the evaluator.
type Params struct {
	MaxIterations uint32
	Bailout       float64
}

func (p Params) Validate() error {
	if p.MaxIterations == 0 {
		return ErrZeroIterations
	}
	if math.IsNaN(p.Bailout) || math.IsInf(p.Bailout, 0) || p.Bailout <= 0 {
		return fmt.Errorf("%w: %v", ErrBailout, p.Bailout)
	}
	return nil
}

// EscapeCount iterates z = z² + c for c = x+iy starting from z = c and
// returns the iteration at which re(z)+im(z) exceeded bailout, or maxIter if
// it never did. The result is always in [1, max(1, maxIter)].
//
// The bailout compares the sum of the parts, not |z|². This shapes the escape
// boundaries of the rendered image and must stay as is.
func EscapeCount(x, y float64, maxIter uint32, bailout float64) uint32 {
	n := uint32(1)
	re, im := x, y
	for n < maxIter {
		t := re
		re = re*re - im*im + x
		im = 2*t*im + y
		if re+im > bailout {
			break
		}
		n++
	}
	return n
}

// Outcome classifies a point: it either escaped at some iteration or stayed
// bounded for the whole budget.
type Outcome struct {
	at      uint32
	escaped bool
}

// Escaped returns the outcome of a point that escaped at iteration n.
func Escaped(n uint32) Outcome { return Outcome{at: n, escaped: true} }

// DidNotEscape is the outcome of a point treated as inside the set.
var DidNotEscape = Outcome{}

// Inside reports whether the point never escaped.
func (o Outcome) Inside() bool { return !o.escaped }

// Iteration returns the escape iteration and true, or 0 and false when the
// point did not escape.
func (o Outcome) Iteration() (uint32, bool) { return o.at, o.escaped }

// Count collapses the outcome back to an iteration count, mapping
// DidNotEscape to maxIter.
func (o Outcome) Count(maxIter uint32) uint32 {
	if !o.escaped {
		return maxIter
	}
	return o.at
}

func (o Outcome) String() string {
	if !o.escaped {
		return "inside"
	}
	return fmt.Sprintf("escaped@%d", o.at)
}

// Evaluate runs EscapeCount and classifies the result.
func Evaluate(x, y float64, p Params) Outcome {
	n := EscapeCount(x, y, p.MaxIterations, p.Bailout)
	if n >= p.MaxIterations {
		return DidNotEscape
	}
	return Escaped(n)
}
