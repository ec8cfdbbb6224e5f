// Package render runs the frame loop of the explorer.
//
// Each tick polls an [Input], applies navigation to the viewport, recomputes
// the whole pixel buffer if the view changed and presents the buffer to a
// [Surface]. A render pass always works from one viewport snapshot: input is
// applied before the pass starts and never during it.
//
//	r, _ := render.New(view, palette.Default(), fractal.Params{MaxIterations: 100, Bailout: 16})
//	err := render.NewLoop(r, window, window).Run(ctx)
//
// # Thread Safety
//
// Renderer and Loop are NOT thread-safe. One goroutine owns input polling,
// state mutation, rendering and presentation.
package render
