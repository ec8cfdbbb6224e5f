package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/mandelview/internal/viewport"
)

// Preset is a named starting view: a center and the half width around it.
type Preset struct {
	Name        string
	Description string
	CenterX     float64
	CenterY     float64
	HalfWidth   float64
}

// Zoom is the zoom exponent that shows HalfWidth around the center.
func (p *Preset) Zoom() float64 {
	return viewport.ZoomForHalfWidth(p.HalfWidth)
}

var presets = map[string]*Preset{
	"default": {
		Description: "whole set",
		CenterX:     -1.0, CenterY: 0.0, HalfWidth: 2.0,
	},
	"seahorse": {
		Description: "seahorse valley, repeating curls",
		CenterX:     -0.75, CenterY: 0.10, HalfWidth: 0.05,
	},
	"elephant": {
		Description: "elephant valley, trunk-like tendrils",
		CenterX:     -1.80, CenterY: -0.06, HalfWidth: 0.05,
	},
	"spiral": {
		Description: "spiral minibrot",
		CenterX:     -0.74275, CenterY: 0.13175, HalfWidth: 0.00075,
	},
	"triple_spiral": {
		Description: "threefold spiral",
		CenterX:     -0.7465, CenterY: 0.0965, HalfWidth: 0.0015,
	},
	"dragon": {
		Description: "valley of the dragon",
		CenterX:     -0.7375, CenterY: 0.1825, HalfWidth: 0.0025,
	},
	"minibrot": {
		Description: "minibrot in a mini spiral",
		CenterX:     -1.73825, CenterY: -0.02275, HalfWidth: 0.00075,
	},
}

func init() {
	for name, p := range presets {
		p.Name = name
	}
}

// GetPreset returns a copy of the named preset, or nil if there is none.
func GetPreset(name string) *Preset {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the configured view with the preset's.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.View = ViewConfig{CenterX: p.CenterX, CenterY: p.CenterY, Zoom: p.Zoom()}
	return nil
}
