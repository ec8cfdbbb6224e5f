package gui

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/mandelview/internal/config"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/render"
	"github.com/san-kum/mandelview/internal/viewport"
)

var (
	ErrWindow     = errors.New("gui: could not open window")
	ErrWindowLost = errors.New("gui: window is no longer available")
)

var (
	ColBg   = rl.NewColor(10, 10, 10, 255)
	ColText = rl.NewColor(220, 220, 220, 255)
	ColBar  = rl.NewColor(0, 0, 0, 160)
)

// KeyHelp is printed when the window opens.
const KeyHelp = "Use WASD to move around, LShift to zoom in, LCtrl to zoom out, R to reset, Esc to quit."

var keyBindings = map[render.Action][]int32{
	render.MoveUp:    {rl.KeyW},
	render.MoveDown:  {rl.KeyS},
	render.MoveLeft:  {rl.KeyA},
	render.MoveRight: {rl.KeyD},
	render.ZoomIn:    {rl.KeyLeftShift},
	render.ZoomOut:   {rl.KeyLeftControl},
	render.Reset:     {rl.KeyR},
	render.Quit:      {rl.KeyEscape},
}

// raylib entry points used by Open, replaced in tests that run without a display.
var (
	initWindow  = rl.InitWindow
	windowReady = rl.IsWindowReady
	closeWindow = rl.CloseWindow
)

// Window is a raylib window acting as both the Input and the Surface of the
// render loop. The target FPS set on open is the frame limiter.
type Window struct {
	dim    int
	scale  float32
	hud    bool
	tex    rl.Texture2D
	pixels []color.RGBA
	view   *viewport.Viewport
}

// Open creates the window. A missing display is a fatal startup error.
func Open(cfg *config.Config) (*Window, error) {
	size := int32(cfg.Dimension * cfg.Window.Scale)

	rl.SetTraceLogLevel(rl.LogWarning)
	initWindow(size, size, cfg.Window.Title)
	if !windowReady() {
		closeWindow()
		return nil, fmt.Errorf("%w: %dx%d", ErrWindow, size, size)
	}
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)

	img := rl.GenImageColor(cfg.Dimension, cfg.Dimension, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterPoint)

	render.Logger().Info("window opened", "size", size, "fps", cfg.Window.FPS)

	return &Window{
		dim:    cfg.Dimension,
		scale:  float32(cfg.Window.Scale),
		hud:    cfg.Window.HUD,
		tex:    tex,
		pixels: make([]color.RGBA, cfg.Dimension*cfg.Dimension),
	}, nil
}

// Show attaches the viewport whose state the HUD displays.
func (w *Window) Show(v *viewport.Viewport) { w.view = v }

// Pressed reports whether any key bound to a is held. Closing the window
// counts as Quit.
func (w *Window) Pressed(a render.Action) bool {
	if a == render.Quit && rl.WindowShouldClose() {
		return true
	}
	for _, k := range keyBindings[a] {
		if rl.IsKeyDown(k) {
			return true
		}
	}
	return false
}

// Present uploads the buffer to the window texture and draws it scaled.
// EndDrawing waits out the rest of the frame.
func (w *Window) Present(buf []uint32, width, height int) error {
	if !rl.IsWindowReady() {
		return ErrWindowLost
	}
	if width != w.dim || height != w.dim {
		return fmt.Errorf("gui: buffer is %dx%d, window texture is %dx%d", width, height, w.dim, w.dim)
	}
	for i, c := range buf {
		w.pixels[i] = palette.RGBA(c)
	}
	rl.UpdateTexture(w.tex, w.pixels)

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	rl.DrawTextureEx(w.tex, rl.NewVector2(0, 0), 0, w.scale, rl.White)
	if w.hud && w.view != nil {
		w.drawHUD()
	}
	rl.EndDrawing()
	return nil
}

func (w *Window) drawHUD() {
	s := w.view.State()
	text := fmt.Sprintf("x %.6f  y %.6f  zoom %.2f  fps %d", s.CenterX, s.CenterY, s.Zoom, rl.GetFPS())
	width := int32(float32(w.dim) * w.scale)
	rl.DrawRectangle(0, 0, width, 18, ColBar)
	rl.DrawText(text, 6, 4, 10, ColText)
}

func (w *Window) Close() {
	rl.UnloadTexture(w.tex)
	rl.CloseWindow()
}

// Run opens a window for cfg and drives the explorer until Escape, window
// close or ctx cancellation.
func Run(ctx context.Context, cfg *config.Config) error {
	gradient, err := cfg.BuildGradient()
	if err != nil {
		return err
	}
	view := cfg.NewViewport()
	r, err := render.New(view, gradient, cfg.Params())
	if err != nil {
		return err
	}

	w, err := Open(cfg)
	if err != nil {
		return err
	}
	defer w.Close()
	w.Show(view)

	fmt.Println(KeyHelp)
	return render.NewLoop(r, w, w).Run(ctx)
}
