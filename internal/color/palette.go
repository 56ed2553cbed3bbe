package color

// Palette256 is the fixed xterm 256-color table, built once at package
// init time per spec §4.2: the standard 16 basic colors, a 6x6x6 color
// cube (indices 16-231, 16+36r+6g+b), and a 24-step grayscale ramp
// (indices 232-255, 8+10n).
var Palette256 [256][3]uint8

// standard16 holds the documented xterm defaults for the 16 basic
// ANSI colors (30-37/90-97 foreground, 40-47/100-107 background).
var standard16 = [16][3]uint8{
	{0x00, 0x00, 0x00}, // black
	{0xcd, 0x00, 0x00}, // red
	{0x00, 0xcd, 0x00}, // green
	{0xcd, 0xcd, 0x00}, // yellow
	{0x00, 0x00, 0xee}, // blue
	{0xcd, 0x00, 0xcd}, // magenta
	{0x00, 0xcd, 0xcd}, // cyan
	{0xe5, 0xe5, 0xe5}, // white
	{0x7f, 0x7f, 0x7f}, // bright black
	{0xff, 0x00, 0x00}, // bright red
	{0x00, 0xff, 0x00}, // bright green
	{0xff, 0xff, 0x00}, // bright yellow
	{0x5c, 0x5c, 0xff}, // bright blue
	{0xff, 0x00, 0xff}, // bright magenta
	{0x00, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// cubeSteps is the intensity ramp each of the 6 levels in the 6x6x6
// color cube maps to, matching xterm's documented table.
var cubeSteps = [6]uint8{0x00, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

func init() {
	copy(Palette256[0:16], standard16[:])

	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				Palette256[idx] = [3]uint8{cubeSteps[r], cubeSteps[g], cubeSteps[b]}
				idx++
			}
		}
	}

	for n := 0; n < 24; n++ {
		v := uint8(8 + 10*n)
		Palette256[232+n] = [3]uint8{v, v, v}
	}
}

// CubeIndex converts 0-5 r/g/b levels to a palette index in [16, 231],
// per the 16+36r+6g+b formula in §4.2.
func CubeIndex(r, g, b int) uint8 {
	return uint8(16 + 36*r + 6*g + b)
}

// GrayIndex converts a 0-23 grayscale step to a palette index in
// [232, 255], per the 8+10n formula in §4.2.
func GrayIndex(n int) uint8 {
	return uint8(232 + n)
}
