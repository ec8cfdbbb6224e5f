// Package viewport tracks which square of the complex plane is on screen.
//
// Zoom is a log2 exponent: the visible half width is 8 * 2^-(zoom+1). Pan
// steps are scaled by the same factor so navigation moves at a constant rate
// in screen space at any magnification.
package viewport

import "math"

// Axis selects the plane axis a pan moves along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction is the sign of a pan or zoom step.
type Direction int8

const (
	Negative Direction = -1
	Positive Direction = 1
)

// Settings are fixed for the lifetime of a Viewport.
type Settings struct {
	Dim       int
	PanSpeed  float64
	ZoomSpeed float64
}

// State is the mutable part of the view.
type State struct {
	CenterX float64
	CenterY float64
	Zoom    float64
}

// Rect is the visible region sampled at pixel resolution.
type Rect struct {
	MinX, MinY float64
	Interval   float64
}

// Point returns the plane coordinate of pixel (i, j).
func (r Rect) Point(i, j int) (x, y float64) {
	return r.MinX + float64(i)*r.Interval, r.MinY + float64(j)*r.Interval
}

// Viewport is not safe for concurrent use; one owner mutates it per frame.
type Viewport struct {
	settings Settings
	initial  State
	state    State
}

func New(s Settings, initial State) *Viewport {
	return &Viewport{settings: s, initial: initial, state: initial}
}

func (v *Viewport) Settings() Settings { return v.settings }

func (v *Viewport) State() State { return v.state }

func (v *Viewport) scale() float64 {
	return math.Pow(2, -(v.state.Zoom + 1))
}

// Pan moves the center by Dim * 2^-(zoom+1) * PanSpeed along axis.
func (v *Viewport) Pan(dir Direction, axis Axis) {
	step := float64(v.settings.Dim) * v.scale() * v.settings.PanSpeed * float64(dir)
	switch axis {
	case Horizontal:
		v.state.CenterX += step
	case Vertical:
		v.state.CenterY += step
	}
}

// ZoomBy adds ZoomSpeed*dir to the zoom exponent. Zoom is unbounded; very
// deep zoom runs out of float64 precision long before it overflows.
func (v *Viewport) ZoomBy(dir Direction) {
	v.state.Zoom += v.settings.ZoomSpeed * float64(dir)
}

// Reset restores the state the viewport was created with.
func (v *Viewport) Reset() {
	v.state = v.initial
}

// HalfWidth is the distance from the center to each edge of the view.
func (v *Viewport) HalfWidth() float64 {
	return 8 * v.scale()
}

func (v *Viewport) VisibleRectangle() Rect {
	gap := v.HalfWidth()
	return Rect{
		MinX:     v.state.CenterX - gap,
		MinY:     v.state.CenterY - gap,
		Interval: 2 * gap / float64(v.settings.Dim),
	}
}

// ZoomForHalfWidth returns the zoom exponent whose view has the given half width.
func ZoomForHalfWidth(gap float64) float64 {
	return math.Log2(8/gap) - 1
}
