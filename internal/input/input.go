// Package input implements the key/mouse/paste-to-PTY-byte encoder of
// spec §4.7, grounded on the teacher's keybindings.TranslateKey/
// TranslateChar (keybindings/keybindings.go) generalized from a GLFW
// key event to the abstract Key/Modifiers types named in spec §6's
// Input contract, since window-system integration (GLFW) is an
// explicit non-goal of §1.
package input

// Modifiers is the set of held modifier keys accompanying an event.
type Modifiers struct {
	Shift, Ctrl, Alt bool
}

// NamedKey enumerates keys that carry no printable scalar of their
// own (arrows, function keys, navigation cluster), mirroring the
// teacher's glfw.Key switch but trimmed to the named-key table §4.7
// actually specifies.
type NamedKey int

const (
	KeyNone NamedKey = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyTab
	KeyEnter
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Key is a single keyboard event: either a printable scalar (Rune !=
// 0) or a NamedKey, never both.
type Key struct {
	Rune     rune
	Named    NamedKey
	Modifier Modifiers
}

// Encoder translates input events into VT byte sequences, consulting
// the mode flags named in spec §4.2/§4.7 (DECCKM, mouse mode/encoding,
// bracketed paste). It holds no PTY handle itself; the caller (session
// .Session) writes the returned bytes.
type Encoder struct {
	// AppCursorKeys reports DECCKM: arrow keys transmit SS3 instead of
	// CSI when true.
	AppCursorKeys bool
	// LNM reports the line-feed/new-line mode: Enter sends CR LF
	// instead of bare CR. Off by default per spec §4.7 ("rarely used;
	// document as off by default").
	LNM bool
	// BracketedPaste gates the ESC[200~/201~ wrap of EncodePaste.
	BracketedPaste bool
	// MouseMode/MouseEncoding gate EncodeMouse*.
	MouseMode     MouseMode
	MouseEncoding MouseEncoding
}

// MouseMode mirrors screen.MouseMode without importing package screen
// (input has no business depending on the screen model; the caller
// copies the two enums across at the boundary, per Design Note
// "Screen mutation via action dispatcher, not inheritance" applied
// symmetrically to the input direction).
type MouseMode int

const (
	MouseOff MouseMode = iota
	MouseNormal
	MouseButtonEvent
	MouseAnyEvent
)

// MouseEncoding selects the wire format for mouse reports.
type MouseEncoding int

const (
	MouseEncodingX10 MouseEncoding = iota
	MouseEncodingSGR
)

// EncodeKey implements spec §4.7's printable/named key rules.
func (e *Encoder) EncodeKey(k Key) []byte {
	if k.Named != KeyNone {
		return e.encodeNamed(k.Named, k.Modifier)
	}
	return e.encodeRune(k.Rune, k.Modifier)
}

func (e *Encoder) encodeRune(r rune, m Modifiers) []byte {
	if m.Ctrl && r >= 'a' && r <= 'z' {
		return []byte{byte(r-'a') + 1}
	}
	if m.Ctrl && r >= 'A' && r <= 'Z' {
		return []byte{byte(r-'A') + 1}
	}
	if m.Ctrl && r == ' ' {
		return []byte{0}
	}

	out := []byte(string(r))
	if m.Alt {
		out = append([]byte{0x1b}, out...)
	}
	return out
}

func (e *Encoder) encodeNamed(k NamedKey, m Modifiers) []byte {
	switch k {
	case KeyUp:
		return e.cursorSeq('A')
	case KeyDown:
		return e.cursorSeq('B')
	case KeyRight:
		return e.cursorSeq('C')
	case KeyLeft:
		return e.cursorSeq('D')
	case KeyHome:
		return []byte("\x1b[H")
	case KeyEnd:
		return []byte("\x1b[F")
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	case KeyInsert:
		return []byte("\x1b[2~")
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyBackspace:
		return []byte{0x7f}
	case KeyTab:
		if m.Shift {
			return []byte("\x1b[Z")
		}
		return []byte{0x09}
	case KeyEnter:
		if e.LNM {
			return []byte("\r\n")
		}
		return []byte{'\r'}
	case KeyEscape:
		return []byte{0x1b}
	case KeyF1:
		return []byte("\x1bOP")
	case KeyF2:
		return []byte("\x1bOQ")
	case KeyF3:
		return []byte("\x1bOR")
	case KeyF4:
		return []byte("\x1bOS")
	case KeyF5:
		return []byte("\x1b[15~")
	case KeyF6:
		return []byte("\x1b[17~")
	case KeyF7:
		return []byte("\x1b[18~")
	case KeyF8:
		return []byte("\x1b[19~")
	case KeyF9:
		return []byte("\x1b[20~")
	case KeyF10:
		return []byte("\x1b[21~")
	case KeyF11:
		return []byte("\x1b[23~")
	case KeyF12:
		return []byte("\x1b[24~")
	default:
		return nil
	}
}

// cursorSeq picks between CSI and SS3 framing for an arrow key final
// byte, per spec §4.7: "off -> CSI A/B/C/D, on -> SS3 A/B/C/D".
func (e *Encoder) cursorSeq(final byte) []byte {
	if e.AppCursorKeys {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}

// EncodePaste wraps bytes in bracketed-paste markers when enabled,
// filtering any embedded end-marker out of the payload first to
// prevent a malicious paste from injecting a premature "paste end"
// (spec §4.7: "filter out ESC [ 201 ~ sequences inside payload to
// prevent injection").
func (e *Encoder) EncodePaste(data []byte) []byte {
	if !e.BracketedPaste {
		return data
	}
	const endMarker = "\x1b[201~"
	filtered := filterSequence(data, []byte(endMarker))

	out := make([]byte, 0, len(filtered)+12)
	out = append(out, "\x1b[200~"...)
	out = append(out, filtered...)
	out = append(out, endMarker...)
	return out
}

func filterSequence(data, seq []byte) []byte {
	if len(seq) == 0 {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if i+len(seq) <= len(data) && string(data[i:i+len(seq)]) == string(seq) {
			i += len(seq)
			continue
		}
		out = append(out, data[i])
		i++
	}
	return out
}
