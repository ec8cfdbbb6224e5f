package render_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/render"
	"github.com/san-kum/mandelview/internal/viewport"
)

type recordingSurface struct {
	frames [][]uint32
	w, h   int
}

func (s *recordingSurface) Present(buf []uint32, w, h int) error {
	cp := make([]uint32, len(buf))
	copy(cp, buf)
	s.frames = append(s.frames, cp)
	s.w, s.h = w, h
	return nil
}

type failingSurface struct{}

func (failingSurface) Present([]uint32, int, int) error { return errors.New("surface lost") }

var params = fractal.Params{MaxIterations: 100, Bailout: 16}

func newView(dim int) *viewport.Viewport {
	return viewport.New(
		viewport.Settings{Dim: dim, PanSpeed: 7e-4, ZoomSpeed: 6e-2},
		viewport.State{CenterX: -1, CenterY: 0, Zoom: 1},
	)
}

var _ = Describe("Renderer", func() {
	var (
		r       *render.Renderer
		surface *recordingSurface
		idle    render.PressedSet
	)

	BeforeEach(func() {
		var err error
		r, err = render.New(newView(320), palette.Default(), params)
		Expect(err).NotTo(HaveOccurred())
		surface = &recordingSurface{}
		idle = render.PressedSet{}
	})

	It("starts dirty and renders on the first tick", func() {
		Expect(r.Dirty()).To(BeTrue())

		quit, err := r.Tick(idle, surface)
		Expect(err).NotTo(HaveOccurred())
		Expect(quit).To(BeFalse())
		Expect(r.Dirty()).To(BeFalse())
		Expect(r.Stats().Renders).To(Equal(1))
		Expect(surface.frames).To(HaveLen(1))
		Expect(surface.frames[0]).To(HaveLen(320 * 320))
		Expect(surface.w).To(Equal(320))
		Expect(surface.h).To(Equal(320))
	})

	It("colors every pixel from its plane coordinate", func() {
		r.Render()
		rect := r.Viewport().VisibleRectangle()
		buf := r.Buffer()

		for _, p := range [][2]int{{0, 0}, {319, 0}, {17, 203}, {160, 160}, {319, 319}} {
			x, y := rect.Point(p[0], p[1])
			n := fractal.EscapeCount(x, y, params.MaxIterations, params.Bailout)
			Expect(buf[p[1]*320+p[0]]).To(Equal(palette.MapColor(n, params.MaxIterations, palette.Default())))
		}
	})

	It("paints the center of the default view as inside the set", func() {
		r.Render()
		Expect(r.Buffer()[160*320+160]).To(Equal(uint32(0x000764)))
	})

	It("presents a bit-identical buffer on clean frames", func() {
		for i := 0; i < 3; i++ {
			_, err := r.Tick(idle, surface)
			Expect(err).NotTo(HaveOccurred())
		}

		Expect(surface.frames).To(HaveLen(3))
		Expect(surface.frames[1]).To(Equal(surface.frames[0]))
		Expect(surface.frames[2]).To(Equal(surface.frames[1]))
		Expect(r.Stats().Renders).To(Equal(1))
		Expect(r.Stats().Skipped).To(Equal(2))
	})

	DescribeTable("navigation marks the view dirty",
		func(a render.Action) {
			r.Render()
			Expect(r.Dirty()).To(BeFalse())
			before := r.Viewport().State()

			Expect(r.Poll(render.PressedSet{a: true})).To(BeFalse())
			Expect(r.Dirty()).To(BeTrue())
			Expect(r.Viewport().State()).NotTo(Equal(before))
		},
		Entry("move up", render.MoveUp),
		Entry("move down", render.MoveDown),
		Entry("move left", render.MoveLeft),
		Entry("move right", render.MoveRight),
		Entry("zoom in", render.ZoomIn),
		Entry("zoom out", render.ZoomOut),
	)

	It("moves up by decreasing the center y", func() {
		r.Poll(render.PressedSet{render.MoveUp: true})
		Expect(r.Viewport().State().CenterY).To(BeNumerically("<", 0))
		r.Poll(render.PressedSet{render.MoveDown: true})
		Expect(r.Viewport().State().CenterY).To(BeNumerically("~", 0, 1e-12))
	})

	It("re-renders a different image after a pan", func() {
		_, _ = r.Tick(idle, surface)
		_, _ = r.Tick(render.PressedSet{render.MoveRight: true}, surface)

		Expect(r.Stats().Renders).To(Equal(2))
		Expect(surface.frames[1]).NotTo(Equal(surface.frames[0]))
	})

	It("marks dirty on reset even without a prior change", func() {
		r.Render()
		r.Poll(render.PressedSet{render.Reset: true})
		Expect(r.Dirty()).To(BeTrue())
	})

	It("stops on quit without touching the view or the surface", func() {
		before := r.Viewport().State()
		quit, err := r.Tick(render.PressedSet{render.Quit: true, render.ZoomIn: true}, surface)
		Expect(err).NotTo(HaveOccurred())
		Expect(quit).To(BeTrue())
		Expect(surface.frames).To(BeEmpty())
		Expect(r.Viewport().State()).To(Equal(before))
	})

	It("wraps present failures", func() {
		_, err := r.Tick(idle, failingSurface{})
		Expect(err).To(MatchError(render.ErrPresent))
	})

	It("rejects invalid construction", func() {
		_, err := render.New(newView(0), palette.Default(), params)
		Expect(err).To(MatchError(render.ErrBadDimension))

		_, err = render.New(newView(8), palette.Default(), fractal.Params{Bailout: 16})
		Expect(err).To(MatchError(fractal.ErrZeroIterations))

		_, err = render.New(newView(8), nil, params)
		Expect(err).To(MatchError(palette.ErrMalformedGradient))
	})
})

var _ = Describe("Loop", func() {
	var r *render.Renderer

	BeforeEach(func() {
		var err error
		r, err = render.New(newView(32), palette.Default(), params)
		Expect(err).NotTo(HaveOccurred())
	})

	It("runs until the script is exhausted", func() {
		surface := &recordingSurface{}
		script := render.NewScript(
			nil,
			[]render.Action{render.ZoomIn},
			nil,
			[]render.Action{render.MoveLeft, render.MoveUp},
		)

		var infos []render.FrameInfo
		loop := render.NewLoop(r, script, surface)
		loop.AddObserver(render.ObserverFunc(func(fi render.FrameInfo) {
			infos = append(infos, fi)
		}))

		Expect(loop.Run(context.Background())).To(Succeed())
		Expect(surface.frames).To(HaveLen(4))
		Expect(infos).To(HaveLen(4))

		rendered := make([]bool, len(infos))
		for i, fi := range infos {
			rendered[i] = fi.Rendered
			Expect(fi.Frame).To(Equal(i + 1))
		}
		Expect(rendered).To(Equal([]bool{true, true, false, true}))
		Expect(infos[1].View.Zoom).To(BeNumerically("~", 1.06, 1e-12))
	})

	It("returns the context error when canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := render.NewLoop(r, render.PressedSet{}, &recordingSurface{}).Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("stops on a broken surface", func() {
		err := render.NewLoop(r, render.Repeat(5), failingSurface{}).Run(context.Background())
		Expect(errors.Is(err, render.ErrPresent)).To(BeTrue())
	})
})
