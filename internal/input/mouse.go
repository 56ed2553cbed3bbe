package input

import "strconv"

// MouseButton identifies which button an event concerns (spec §6
// Input contract "MouseButton{button, press|release, (x,y)}").
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
	ButtonNone // motion with no button held (any-event mode)
)

// ScrollDir is a wheel scroll direction, reported as mouse buttons 4/5
// in X10/SGR encoding, matching xterm's convention.
type ScrollDir int

const (
	ScrollUp ScrollDir = iota
	ScrollDown
)

// EncodeMouseButton implements spec §4.7's X10/SGR button-event
// encoding. press is false for a release. Returns nil only if mouse
// reporting is off; a ButtonNone event is encoded with button code 3.
// Drag/hover reports go through EncodeMouseMotion.
func (e *Encoder) EncodeMouseButton(btn MouseButton, press bool, x, y int, m Modifiers) []byte {
	if e.MouseMode == MouseOff {
		return nil
	}
	code := buttonCode(btn, m, false)
	return e.encodeMouseReport(code, press, x, y)
}

// EncodeScroll implements wheel scroll reporting as buttons 4 (up) /
// 5 (down), the xterm convention reused by both X10 and SGR encoding.
func (e *Encoder) EncodeScroll(dir ScrollDir, x, y int, m Modifiers) []byte {
	if e.MouseMode == MouseOff {
		return nil
	}
	base := 64 // xterm wheel base offset
	if dir == ScrollDown {
		base = 65
	}
	code := base | modifierBits(m)
	return e.encodeMouseReport(code, true, x, y)
}

// EncodeMouseMotion implements drag/hover reporting: only emitted in
// MouseButtonEvent mode while a button is held, or MouseAnyEvent mode
// unconditionally (spec §4.7: "Motion is reported only in
// button-event (on drag) or any-event modes").
func (e *Encoder) EncodeMouseMotion(held MouseButton, x, y int, m Modifiers) []byte {
	switch e.MouseMode {
	case MouseButtonEvent:
		if held == ButtonNone {
			return nil
		}
	case MouseAnyEvent:
		// always reported
	default:
		return nil
	}
	code := buttonCode(held, m, true)
	return e.encodeMouseReport(code, true, x, y)
}

func buttonCode(btn MouseButton, m Modifiers, motion bool) int {
	var code int
	switch btn {
	case ButtonLeft:
		code = 0
	case ButtonMiddle:
		code = 1
	case ButtonRight:
		code = 2
	case ButtonNone:
		code = 3
	}
	code |= modifierBits(m)
	if motion {
		code |= 32
	}
	return code
}

func modifierBits(m Modifiers) int {
	bits := 0
	if m.Shift {
		bits |= 4
	}
	if m.Alt {
		bits |= 8
	}
	if m.Ctrl {
		bits |= 16
	}
	return bits
}

// encodeMouseReport formats a single mouse report in the encoder's
// active MouseEncoding: X10 (`ESC [ M b cx cy`, release always
// reported as button-code 3) or SGR (`ESC [ < b ; x ; y M/m`, release
// distinguished by trailing M vs m), per spec §4.7.
func (e *Encoder) encodeMouseReport(code int, press bool, x, y int) []byte {
	switch e.MouseEncoding {
	case MouseEncodingSGR:
		final := byte('M')
		if !press {
			final = 'm'
		}
		return []byte("\x1b[<" + strconv.Itoa(code) + ";" + strconv.Itoa(x+1) + ";" + strconv.Itoa(y+1) + string(final))
	default: // X10
		b := code
		if !press {
			b = 3 | modifierBitsFromCode(code)
		}
		cx, cy := clampCoord(x+1), clampCoord(y+1)
		return []byte{0x1b, '[', 'M', byte(32 + b), byte(32 + cx), byte(32 + cy)}
	}
}

func modifierBitsFromCode(code int) int { return code &^ 3 }

// clampCoord keeps X10's single-byte coordinate encoding
// (32+coord must fit in a byte) from overflowing on very large grids.
func clampCoord(c int) int {
	if c > 223 {
		return 223
	}
	if c < 0 {
		return 0
	}
	return c
}

