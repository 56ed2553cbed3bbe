package screen

import "github.com/itsserbin/ferrum/internal/vtparser"

// noteLastPrinted records the most recently Print-ed rune in lastRune
// for REP (CSI b), which repeats it. Kept on Screen rather than threaded through Print's
// signature since it is consulted only here.
func (s *Screen) noteLastPrinted(r rune) { s.lastRune = r }

// CsiDispatch implements vtparser.Dispatcher.CsiDispatch: the full
// CSI sequence table of spec §4.4.
func (s *Screen) CsiDispatch(params vtparser.Params, intermediates []byte, private byte, final byte) {
	if private == '?' {
		s.csiPrivateDispatch(params, final)
		return
	}
	if len(intermediates) > 0 {
		s.csiIntermediateDispatch(params, intermediates, final)
		return
	}

	switch final {
	case 'A': // CUU
		s.moveCursor(0, -params.Get(0, 1))
	case 'B': // CUD
		s.moveCursor(0, params.Get(0, 1))
	case 'C': // CUF
		s.moveCursor(params.Get(0, 1), 0)
	case 'D': // CUB
		s.moveCursor(-params.Get(0, 1), 0)
	case 'E': // CNL: down n, col 0
		s.moveCursor(0, params.Get(0, 1))
		s.carriageReturn()
	case 'F': // CPL: up n, col 0
		s.moveCursor(0, -params.Get(0, 1))
		s.carriageReturn()
	case 'G', '`': // CHA / HPA
		s.setCursor(s.cursorRow, params.Get(0, 1)-1)
	case 'd': // VPA
		s.setCursor(params.Get(0, 1)-1, s.cursorCol)
	case 'H', 'f': // CUP / HVP
		s.setCursor(params.Get(0, 1)-1, params.Get(1, 1)-1)
	case 'I': // CHT: n tabs forward
		for i := 0; i < params.Get(0, 1); i++ {
			s.tab()
		}
	case 'Z': // CBT: n tabs backward
		n := params.Get(0, 1)
		b := s.active()
		for ; n > 0; n-- {
			moved := false
			for c := s.cursorCol - 1; c >= 0; c-- {
				if b.tabStops[c] {
					s.cursorCol = c
					moved = true
					break
				}
			}
			if !moved {
				s.cursorCol = 0
				break
			}
		}
	case 'J': // ED
		s.eraseInDisplay(params.Get(0, 0))
	case 'K': // EL
		s.eraseInLine(params.Get(0, 0))
	case 'L': // IL
		s.insertLines(params.Get(0, 1))
	case 'M': // DL
		s.deleteLines(params.Get(0, 1))
	case 'P': // DCH
		s.deleteChars(params.Get(0, 1))
	case '@': // ICH
		s.insertChars(params.Get(0, 1))
	case 'X': // ECH
		s.eraseChars(params.Get(0, 1))
	case 'S': // SU
		s.scrollUp(params.Get(0, 1))
	case 'T': // SD
		s.scrollDown(params.Get(0, 1))
	case 'b': // REP
		n := params.Get(0, 1)
		for i := 0; i < n; i++ {
			s.Print(s.lastRune)
		}
	case 'r': // DECSTBM
		s.setScrollRegion(params.Get(0, 1), params.Get(1, s.rows))
	case 'm': // SGR
		s.applySGR(params)
	case 'n': // DSR
		s.deviceStatusReport(params.Get(0, 0))
	case 'c': // DA
		if private == 0 {
			s.respond([]byte("\x1b[?6c"))
		}
	case 's': // SCOSC (ANSI.SYS save cursor; no private prefix form)
		s.saveCursor()
	case 'u': // SCORC
		s.restoreCursor()
	case 't': // window ops: no window-system surface in this engine; ignored.
	default:
		s.logRecoverable("unhandled CSI final=%q params=%d", final, params.Len())
	}
}

// csiIntermediateDispatch handles the rare CSI sequences carrying an
// intermediate byte (e.g. space-final for cursor-style `CSI Ps SP q`).
// None are in the core spec's table; sequences are consumed and
// ignored per §4.8.
func (s *Screen) csiIntermediateDispatch(_ vtparser.Params, _ []byte, _ byte) {}

// csiPrivateDispatch handles `CSI ? ... final` private-mode sequences:
// SM/RM (DECSET/DECRST). Any other private final is logged and ignored.
func (s *Screen) csiPrivateDispatch(params vtparser.Params, final byte) {
	switch final {
	case 'h':
		s.setPrivateModes(params, true)
	case 'l':
		s.setPrivateModes(params, false)
	default:
		s.logRecoverable("unhandled private CSI final=%q", final)
	}
}

func (s *Screen) setPrivateModes(params vtparser.Params, on bool) {
	for i := 0; i < params.Len(); i++ {
		switch params.Get(i, 0) {
		case 1:
			s.modes.set(ModeDECCKM, on)
		case 6:
			// DECOM (origin mode): not separately tracked; cursor
			// addressing always treats the scroll region as absolute,
			// matching a terminal with DECOM permanently off.
		case 7:
			s.modes.set(ModeDECAWM, on)
		case 12:
			// Cursor blink: no renderer surface here; accepted and
			// ignored.
		case 25:
			s.modes.set(ModeDECTCEM, on)
		case 47, 1047:
			s.setAltScreen(on, false)
		case 1000:
			s.setMouseMode(on, MouseNormal)
		case 1002:
			s.setMouseMode(on, MouseButtonEvent)
		case 1003:
			s.setMouseMode(on, MouseAnyEvent)
		case 1006:
			if on {
				s.mouseEncoding = MouseEncodingSGR
			} else {
				s.mouseEncoding = MouseEncodingX10
			}
		case 1049:
			s.setAltScreen(on, true)
		case 2004:
			s.modes.set(ModeBracketedPaste, on)
		default:
			s.logRecoverable("unhandled private mode %d", params.Get(i, 0))
		}
	}
}

func (s *Screen) setMouseMode(on bool, m MouseMode) {
	if on {
		s.mouseMode = m
	} else if s.mouseMode == m {
		s.mouseMode = MouseOff
	}
}

// deviceStatusReport implements DSR (spec §4.4): 5 = device OK, 6 =
// report cursor position.
func (s *Screen) deviceStatusReport(kind int) {
	switch kind {
	case 5:
		s.respond([]byte("\x1b[0n"))
	case 6:
		row, col := s.CursorPosition()
		if col >= s.cols {
			col = s.cols - 1
		}
		s.respond([]byte(csiCursorReport(row+1, col+1)))
	}
}
