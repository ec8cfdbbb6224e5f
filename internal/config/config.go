package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/mandelview/internal/fractal"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDimension     = 320
	DefaultMaxIterations = 100
	DefaultBailout       = 16.0
	DefaultPanSpeed      = 7e-4
	DefaultZoomSpeed     = 6e-2
	DefaultCenterX       = -1.0
	DefaultCenterY       = 0.0
	DefaultZoom          = 1.0
	DefaultScale         = 2
	DefaultFPS           = 24
	DefaultTitle         = "Mandelbrot Explorer"
)

type Config struct {
	Dimension     int          `yaml:"dimension"`
	MaxIterations uint32       `yaml:"max_iterations"`
	Bailout       float64      `yaml:"bailout"`
	PanSpeed      float64      `yaml:"pan_speed"`
	ZoomSpeed     float64      `yaml:"zoom_speed"`
	View          ViewConfig   `yaml:"view"`
	Window        WindowConfig `yaml:"window"`
	Palette       string       `yaml:"palette,omitempty"`
	Gradient      []StopConfig `yaml:"gradient,omitempty"`
}

type ViewConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Zoom    float64 `yaml:"zoom"`
}

type WindowConfig struct {
	Scale int    `yaml:"scale"`
	FPS   int    `yaml:"fps"`
	Title string `yaml:"title"`
	HUD   bool   `yaml:"hud"`
}

// StopConfig is one gradient stop, e.g. {at: 0.42, color: "#edffff"}.
type StopConfig struct {
	At    float32 `yaml:"at"`
	Color string  `yaml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Dimension:     DefaultDimension,
		MaxIterations: DefaultMaxIterations,
		Bailout:       DefaultBailout,
		PanSpeed:      DefaultPanSpeed,
		ZoomSpeed:     DefaultZoomSpeed,
		View: ViewConfig{
			CenterX: DefaultCenterX,
			CenterY: DefaultCenterY,
			Zoom:    DefaultZoom,
		},
		Window: WindowConfig{
			Scale: DefaultScale,
			FPS:   DefaultFPS,
			Title: DefaultTitle,
			HUD:   true,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Dimension <= 0 {
		return fmt.Errorf("%w: dimension must be positive, got %d", ErrInvalid, c.Dimension)
	}
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if !finitePositive(c.PanSpeed) {
		return fmt.Errorf("%w: pan_speed must be finite and positive, got %v", ErrInvalid, c.PanSpeed)
	}
	if !finitePositive(c.ZoomSpeed) {
		return fmt.Errorf("%w: zoom_speed must be finite and positive, got %v", ErrInvalid, c.ZoomSpeed)
	}
	for _, v := range []float64{c.View.CenterX, c.View.CenterY, c.View.Zoom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: view must be finite", ErrInvalid)
		}
	}
	if c.Window.Scale < 1 {
		return fmt.Errorf("%w: window scale must be at least 1, got %d", ErrInvalid, c.Window.Scale)
	}
	if c.Window.FPS < 1 {
		return fmt.Errorf("%w: window fps must be at least 1, got %d", ErrInvalid, c.Window.FPS)
	}
	if _, err := c.BuildGradient(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func (c *Config) Params() fractal.Params {
	return fractal.Params{MaxIterations: c.MaxIterations, Bailout: c.Bailout}
}

func (c *Config) ViewportSettings() viewport.Settings {
	return viewport.Settings{Dim: c.Dimension, PanSpeed: c.PanSpeed, ZoomSpeed: c.ZoomSpeed}
}

func (c *Config) InitialState() viewport.State {
	return viewport.State{CenterX: c.View.CenterX, CenterY: c.View.CenterY, Zoom: c.View.Zoom}
}

// NewViewport builds the viewport described by the config.
func (c *Config) NewViewport() *viewport.Viewport {
	return viewport.New(c.ViewportSettings(), c.InitialState())
}

// BuildGradient returns the custom gradient when stops are given, otherwise
// the named palette.
func (c *Config) BuildGradient() (*palette.Gradient, error) {
	if len(c.Gradient) == 0 {
		return palette.Named(c.Palette)
	}
	stops := make([]palette.Stop, 0, len(c.Gradient))
	for _, s := range c.Gradient {
		stop, err := palette.ParseStop(s.At, s.Color)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
	return palette.NewGradient(stops...)
}
