// Package color implements the terminal color model described by the
// engine: a 24-bit RGB triple plus a distinguished "default" sentinel,
// the fixed xterm 256-color palette, and the blending/downsampling
// helpers SGR rendering needs (dim, reverse, profile-limited output).
package color

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Kind discriminates how a Color's value should be interpreted.
type Kind uint8

const (
	// Default is the palette-default sentinel, distinct from any RGB
	// value. SGR reset (CSI 0 m) restores foreground/background to
	// Default, never to an explicit RGB triple.
	Default Kind = iota
	Indexed
	RGB
)

// Color is a terminal color: either the palette default, a 0-255
// palette index, or an explicit RGB triple.
type Color struct {
	Kind    Kind
	Index   uint8
	R, G, B uint8
}

// DefaultFg returns the default-foreground sentinel.
func DefaultFg() Color { return Color{Kind: Default} }

// DefaultBg returns the default-background sentinel.
func DefaultBg() Color { return Color{Kind: Default} }

// FromIndex builds an indexed (0-255) color.
func FromIndex(i uint8) Color { return Color{Kind: Indexed, Index: i} }

// FromRGB builds a truecolor RGB color.
func FromRGB(r, g, b uint8) Color { return Color{Kind: RGB, R: r, G: g, B: b} }

// IsDefault reports whether c is the default sentinel.
func (c Color) IsDefault() bool { return c.Kind == Default }

// Resolve returns the concrete RGB triple for c, using fallback as the
// effective color when c is the Default sentinel (the caller supplies
// the palette default for foreground or background).
func (c Color) Resolve(fallback Color) (r, g, b uint8) {
	switch c.Kind {
	case RGB:
		return c.R, c.G, c.B
	case Indexed:
		return Palette256[c.Index][0], Palette256[c.Index][1], Palette256[c.Index][2]
	default:
		if fallback.Kind == Default {
			return 0, 0, 0
		}
		return fallback.Resolve(Color{})
	}
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// BlendDim returns fg blended 50% toward black, the treatment applied
// for the "dim" SGR style bit (§3 Cell style bits), using go-colorful's
// linear RGB blend (so each channel is halved).
func BlendDim(r, g, b uint8) (uint8, uint8, uint8) {
	black := colorful.Color{R: 0, G: 0, B: 0}
	blended := toColorful(r, g, b).BlendRgb(black, 0.5)
	return clamp8(blended.R), clamp8(blended.G), clamp8(blended.B)
}

// BlendReverse swaps fg/bg for the "reverse" style bit; kept as a
// named helper (rather than an inline swap at every call site) so the
// reverse-video convention lives in one place alongside BlendDim.
func BlendReverse(fgR, fgG, fgB, bgR, bgG, bgB uint8) (r, g, b, br, bg, bb uint8) {
	return bgR, bgG, bgB, fgR, fgG, fgB
}

func clamp8(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
