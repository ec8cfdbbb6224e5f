package render

import (
	"fmt"
	"time"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

// Stats counts what the renderer has done so far.
type Stats struct {
	Frames     int
	Renders    int
	Skipped    int
	LastRender time.Duration
}

// Renderer owns the viewport, the output buffer and the dirty flag. It starts
// dirty so the first tick always renders. Not safe for concurrent use.
type Renderer struct {
	view     *viewport.Viewport
	gradient *palette.Gradient
	params   fractal.Params
	dim      int
	buf      []uint32
	dirty    bool
	stats    Stats
}

func New(view *viewport.Viewport, gradient *palette.Gradient, params fractal.Params) (*Renderer, error) {
	dim := view.Settings().Dim
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadDimension, dim)
	}
	if gradient == nil {
		return nil, fmt.Errorf("render: nil gradient: %w", palette.ErrMalformedGradient)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		view:     view,
		gradient: gradient,
		params:   params,
		dim:      dim,
		buf:      make([]uint32, dim*dim),
		dirty:    true,
	}, nil
}

func (r *Renderer) Viewport() *viewport.Viewport { return r.view }
func (r *Renderer) Dim() int                     { return r.dim }
func (r *Renderer) Dirty() bool                  { return r.dirty }
func (r *Renderer) Stats() Stats                 { return r.stats }
func (r *Renderer) Params() fractal.Params       { return r.params }

// Buffer returns the output buffer. It is overwritten in full on every render.
func (r *Renderer) Buffer() []uint32 { return r.buf }

// Poll applies this frame's navigation input. Every action that mutates the
// viewport marks the renderer dirty. It reports whether Quit was pressed, in
// which case nothing else is applied.
//
// Quit is always the first query of a frame and is made exactly once per
// Poll. Inputs that step per frame, such as Script, advance on that query.
func (r *Renderer) Poll(in Input) (quit bool) {
	if in.Pressed(Quit) {
		return true
	}
	if in.Pressed(MoveUp) {
		r.view.Pan(viewport.Negative, viewport.Vertical)
		r.dirty = true
	}
	if in.Pressed(MoveDown) {
		r.view.Pan(viewport.Positive, viewport.Vertical)
		r.dirty = true
	}
	if in.Pressed(MoveLeft) {
		r.view.Pan(viewport.Negative, viewport.Horizontal)
		r.dirty = true
	}
	if in.Pressed(MoveRight) {
		r.view.Pan(viewport.Positive, viewport.Horizontal)
		r.dirty = true
	}
	if in.Pressed(ZoomIn) {
		r.view.ZoomBy(viewport.Positive)
		r.dirty = true
	}
	if in.Pressed(ZoomOut) {
		r.view.ZoomBy(viewport.Negative)
		r.dirty = true
	}
	if in.Pressed(Reset) {
		r.view.Reset()
		r.dirty = true
	}
	return false
}

// Render recomputes every pixel if the view changed since the last render and
// reports whether it did.
func (r *Renderer) Render() bool {
	if !r.dirty {
		return false
	}
	start := time.Now()

	rect := r.view.VisibleRectangle()
	maxIter, bailout := r.params.MaxIterations, r.params.Bailout
	for j := 0; j < r.dim; j++ {
		row := r.buf[j*r.dim : (j+1)*r.dim]
		for i := range row {
			x, y := rect.Point(i, j)
			n := fractal.EscapeCount(x, y, maxIter, bailout)
			row[i] = palette.MapColor(n, maxIter, r.gradient)
		}
	}

	r.dirty = false
	r.stats.Renders++
	r.stats.LastRender = time.Since(start)

	s := r.view.State()
	Logger().Debug("rendered",
		"center_x", s.CenterX, "center_y", s.CenterY, "zoom", s.Zoom,
		"elapsed", r.stats.LastRender)
	return true
}

// Tick runs one frame: poll input, render if dirty, present the buffer.
// The buffer is presented whether or not it was recomputed.
func (r *Renderer) Tick(in Input, out Surface) (quit bool, err error) {
	if r.Poll(in) {
		return true, nil
	}
	r.stats.Frames++
	if !r.Render() {
		r.stats.Skipped++
	}
	if err := out.Present(r.buf, r.dim, r.dim); err != nil {
		return false, fmt.Errorf("%w: %w", ErrPresent, err)
	}
	return false, nil
}
