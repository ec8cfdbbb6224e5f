package render

import (
	"context"
	"time"

	"github.com/san-kum/mandelview/internal/viewport"
)

// FrameInfo describes one completed tick.
type FrameInfo struct {
	Frame    int
	Rendered bool
	Elapsed  time.Duration
	View     viewport.State
}

// Observer is notified after every presented frame.
type Observer interface {
	OnFrame(f FrameInfo)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(FrameInfo)

func (f ObserverFunc) OnFrame(fi FrameInfo) { f(fi) }

// Loop drives a Renderer from an Input to a Surface on a single goroutine.
// Frame pacing belongs to the surface.
type Loop struct {
	renderer  *Renderer
	input     Input
	surface   Surface
	observers []Observer
}

func NewLoop(r *Renderer, in Input, out Surface) *Loop {
	return &Loop{
		renderer:  r,
		input:     in,
		surface:   out,
		observers: make([]Observer, 0),
	}
}

func (l *Loop) AddObserver(o Observer) { l.observers = append(l.observers, o) }

func (l *Loop) Renderer() *Renderer { return l.renderer }

// Run ticks until the input reports Quit, ctx is done or the surface fails.
// A quit request returns nil.
func (l *Loop) Run(ctx context.Context) error {
	log := Logger()
	log.Info("render loop started", "dim", l.renderer.Dim())

	for {
		select {
		case <-ctx.Done():
			log.Info("render loop canceled", "frames", l.renderer.Stats().Frames)
			return ctx.Err()
		default:
		}

		renders := l.renderer.Stats().Renders
		quit, err := l.renderer.Tick(l.input, l.surface)
		if err != nil {
			log.Error("render loop failed", "err", err)
			return err
		}
		if quit {
			log.Info("render loop stopped", "frames", l.renderer.Stats().Frames)
			return nil
		}

		stats := l.renderer.Stats()
		info := FrameInfo{
			Frame:    stats.Frames,
			Rendered: stats.Renders > renders,
			View:     l.renderer.Viewport().State(),
		}
		if info.Rendered {
			info.Elapsed = stats.LastRender
		}
		for _, o := range l.observers {
			o.OnFrame(info)
		}
	}
}
