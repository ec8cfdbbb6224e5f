package palette

import "image/color"

// MapColor turns an iteration count into a packed 0x00RRGGBB color.
//
// The fraction n/maxIter is located by a linear scan for the first stop at or
// above it and the channels are interpolated against the previous stop, then
// truncated. A fraction equal to a stop's lands exactly on that stop's color.
// A fraction past the last stop yields black.
func MapColor(n, maxIter uint32, g *Gradient) uint32 {
	frac := float32(n) / float32(maxIter)
	stops := g.stops
	for i := 1; i < len(stops); i++ {
		if stops[i].Fraction < frac {
			continue
		}
		prev, next := stops[i-1], stops[i]
		t := (frac - prev.Fraction) / (next.Fraction - prev.Fraction)
		return Pack(lerp(prev.R, next.R, t), lerp(prev.G, next.G, t), lerp(prev.B, next.B, t))
	}
	return Pack(0, 0, 0)
}

func lerp(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + float32(int32(b)-int32(a))*t)
}

// Pack packs channels as 0x00RRGGBB.
func Pack(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Unpack splits a 0x00RRGGBB value.
func Unpack(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA converts a packed color to an opaque color.RGBA.
func RGBA(c uint32) color.RGBA {
	r, g, b := Unpack(c)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
