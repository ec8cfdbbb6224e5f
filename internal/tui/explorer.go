package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/mandelview/internal/config"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/render"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	keyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true)
)

const halfBlock = "▀"

var keyActions = map[string]render.Action{
	"w": render.MoveUp, "up": render.MoveUp,
	"s": render.MoveDown, "down": render.MoveDown,
	"a": render.MoveLeft, "left": render.MoveLeft,
	"d": render.MoveRight, "right": render.MoveRight,
	"+": render.ZoomIn, "=": render.ZoomIn,
	"-": render.ZoomOut, "_": render.ZoomOut,
	"r": render.Reset,
	"q": render.Quit, "esc": render.Quit, "ctrl+c": render.Quit,
}

type tickMsg time.Time

// screen is the Surface the render loop presents to. It keeps a reference to
// the last buffer; View reads it on the same goroutine.
type screen struct {
	buf       []uint32
	w, h      int
	presented int
}

func (s *screen) Present(buf []uint32, w, h int) error {
	s.buf, s.w, s.h = buf, w, h
	s.presented++
	return nil
}

// Model is a bubbletea model that runs one render tick per timer tick. Keys
// that arrive between ticks form the pressed set of the next frame.
type Model struct {
	renderer      *render.Renderer
	pressed       render.PressedSet
	screen        *screen
	interval      time.Duration
	width, height int
	err           error
	quitting      bool
}

func NewModel(r *render.Renderer, fps int) Model {
	if fps < 1 {
		fps = 1
	}
	return Model{
		renderer: r,
		pressed:  render.PressedSet{},
		screen:   &screen{},
		interval: time.Second / time.Duration(fps),
		width:    80,
		height:   24,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a, ok := keyActions[msg.String()]; ok {
			m.pressed[a] = true
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tickMsg:
		quit, err := m.renderer.Tick(m.pressed, m.screen)
		m.pressed.Clear()
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error { return m.err }

// side is the edge of the square pixel grid shown: each terminal cell holds
// two pixel rows.
func (m Model) side() int {
	side := m.width
	if rows := 2 * (m.height - 1); rows < side {
		side = rows
	}
	if side < 2 {
		side = 2
	}
	return side &^ 1
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return red.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}
	if m.screen.buf == nil {
		return dim.Render("rendering...")
	}

	var b strings.Builder
	side := m.side()
	for cy := 0; cy < side/2; cy++ {
		for cx := 0; cx < side; cx++ {
			top := m.sample(cx, 2*cy, side)
			bottom := m.sample(cx, 2*cy+1, side)
			b.WriteString(cell(top, bottom))
		}
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

// sample picks the nearest buffer pixel for grid position (x, y).
func (m Model) sample(x, y, side int) uint32 {
	px := x * m.screen.w / side
	py := y * m.screen.h / side
	return m.screen.buf[py*m.screen.w+px]
}

func cell(top, bottom uint32) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(hex(top))).
		Background(lipgloss.Color(hex(bottom))).
		Render(halfBlock)
}

func hex(c uint32) string {
	r, g, b := palette.Unpack(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func (m Model) status() string {
	s := m.renderer.Viewport().State()
	stats := m.renderer.Stats()
	return cyan.Render("mandelview") + "  " +
		white.Render(fmt.Sprintf("x %.6f y %.6f", s.CenterX, s.CenterY)) + "  " +
		dim.Render(fmt.Sprintf("zoom %.2f  iter %d  renders %d", s.Zoom, m.renderer.Params().MaxIterations, stats.Renders)) + "  " +
		keyHint.Render("wasd move  +/- zoom  r reset  q quit")
}

// Run starts the terminal explorer for cfg and blocks until it quits.
func Run(ctx context.Context, cfg *config.Config) error {
	gradient, err := cfg.BuildGradient()
	if err != nil {
		return err
	}
	r, err := render.New(cfg.NewViewport(), gradient, cfg.Params())
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(r, cfg.Window.FPS), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Err()
	}
	return nil
}
