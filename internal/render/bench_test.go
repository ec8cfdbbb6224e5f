package render

import (
	"testing"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

func BenchmarkRenderDefaultView(b *testing.B) {
	view := viewport.New(
		viewport.Settings{Dim: 320, PanSpeed: 7e-4, ZoomSpeed: 6e-2},
		viewport.State{CenterX: -1, Zoom: 1},
	)
	r, err := New(view, palette.Default(), fractal.Params{MaxIterations: 100, Bailout: 16})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.dirty = true
		r.Render()
	}
}

func TestScript(t *testing.T) {
	s := NewScript([]Action{ZoomIn}, nil)

	if s.Pressed(ZoomIn) {
		t.Error("no frame started yet")
	}
	if s.Pressed(Quit) {
		t.Fatal("quit on first frame")
	}
	if !s.Pressed(ZoomIn) || s.Pressed(ZoomOut) {
		t.Error("frame 1: expected only zoom-in")
	}
	if s.Pressed(Quit) {
		t.Fatal("quit on second frame")
	}
	if s.Pressed(ZoomIn) {
		t.Error("frame 2: expected nothing pressed")
	}
	if !s.Pressed(Quit) {
		t.Error("expected quit after the last frame")
	}
}

// queryLog records every Pressed call made by the renderer.
type queryLog struct {
	asked []Action
}

func (q *queryLog) Pressed(a Action) bool {
	q.asked = append(q.asked, a)
	return false
}

func TestPollAsksQuitFirstOncePerFrame(t *testing.T) {
	r, err := New(viewport.New(viewport.Settings{Dim: 4, PanSpeed: 1, ZoomSpeed: 1}, viewport.State{}),
		palette.Default(), fractal.Params{MaxIterations: 10, Bailout: 16})
	if err != nil {
		t.Fatal(err)
	}

	for frame := 0; frame < 3; frame++ {
		in := &queryLog{}
		r.Poll(in)
		if len(in.asked) == 0 || in.asked[0] != Quit {
			t.Fatalf("frame %d: expected Quit first, got %v", frame, in.asked)
		}
		quits := 0
		for _, a := range in.asked {
			if a == Quit {
				quits++
			}
		}
		if quits != 1 {
			t.Errorf("frame %d: Quit asked %d times", frame, quits)
		}
	}
}

func TestScriptDrivesPollFrameByFrame(t *testing.T) {
	r, err := New(viewport.New(viewport.Settings{Dim: 4, PanSpeed: 1, ZoomSpeed: 1}, viewport.State{}),
		palette.Default(), fractal.Params{MaxIterations: 10, Bailout: 16})
	if err != nil {
		t.Fatal(err)
	}
	s := NewScript([]Action{ZoomIn}, []Action{ZoomIn, MoveRight}, nil)

	want := []float64{1, 2, 2}
	for i, zoom := range want {
		if r.Poll(s) {
			t.Fatalf("frame %d: unexpected quit", i)
		}
		if got := r.Viewport().State().Zoom; got != zoom {
			t.Errorf("frame %d: expected zoom %v, got %v", i, zoom, got)
		}
	}
	if r.Viewport().State().CenterX <= 0 {
		t.Error("expected the second frame to pan right")
	}
	if !r.Poll(s) {
		t.Error("expected quit once the script is exhausted")
	}
}

func TestPressedSetClear(t *testing.T) {
	s := PressedSet{MoveUp: true, ZoomIn: true}
	s.Clear()
	if len(s) != 0 || s.Pressed(MoveUp) {
		t.Error("expected empty set")
	}
}

func TestActionString(t *testing.T) {
	if ZoomOut.String() != "zoom-out" || Action(99).String() != "unknown" {
		t.Error("unexpected action names")
	}
}
