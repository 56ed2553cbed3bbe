package color

import "github.com/muesli/termenv"

// Profile names the color capability of a downstream renderer, for
// hosts whose fallback raster path (CPU compositing instead of the
// GPU path the window layer normally uses) cannot reproduce the full
// truecolor range the screen model tracks internally.
type Profile int

const (
	ProfileTrueColor Profile = iota
	ProfileANSI256
	ProfileANSI16
	ProfileAscii
)

func toTermenvProfile(p Profile) termenv.Profile {
	switch p {
	case ProfileANSI256:
		return termenv.ANSI256
	case ProfileANSI16:
		return termenv.ANSI
	case ProfileAscii:
		return termenv.Ascii
	default:
		return termenv.TrueColor
	}
}

// Downsample converts an RGB triple to whatever the given profile can
// represent, returning the RGB of the nearest representable color.
// Explicit-default colors should be resolved to a concrete RGB by the
// caller (via Color.Resolve) before calling this.
func Downsample(r, g, b uint8, profile Profile) (uint8, uint8, uint8) {
	if profile == ProfileTrueColor {
		return r, g, b
	}
	hex := termenv.RGBColor(rgbToHex(r, g, b))
	converted := toTermenvProfile(profile).Convert(hex)
	rgb := termenv.ConvertToRGB(converted)
	return clamp8(rgb.R), clamp8(rgb.G), clamp8(rgb.B)
}

func rgbToHex(r, g, b uint8) string {
	const hexDigits = "0123456789abcdef"
	buf := [7]byte{'#'}
	buf[1] = hexDigits[r>>4]
	buf[2] = hexDigits[r&0xf]
	buf[3] = hexDigits[g>>4]
	buf[4] = hexDigits[g&0xf]
	buf[5] = hexDigits[b>>4]
	buf[6] = hexDigits[b&0xf]
	return string(buf[:])
}
