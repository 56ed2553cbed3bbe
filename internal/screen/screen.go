// Package screen implements the terminal screen model of spec §3/§4:
// primary and alternate grids, cursor, SGR attributes, per-buffer
// scroll regions, saved-cursor (DECSC/DECRC), scrollback, modes, and
// selection. It implements vtparser.Dispatcher so a Parser can drive
// it directly; per Design Note "Screen mutation via action dispatcher,
// not inheritance" the two packages otherwise know nothing of each
// other.
package screen

import (
	"log"

	"github.com/itsserbin/ferrum/internal/color"
	"github.com/itsserbin/ferrum/internal/grid"
	"github.com/itsserbin/ferrum/internal/vtparser"
)

// ResponseWriter is called with bytes the screen model needs to send
// back to the PTY (DSR replies, OSC 10/11/52 query responses).
type ResponseWriter func([]byte)

// ClipboardPolicy decides whether an OSC 52 clipboard operation
// ("read" or "write") is permitted (spec §4.4: "OSC ... 52 clipboard
// (optional, gated by policy)"). A nil policy denies everything.
type ClipboardPolicy func(op string) bool

// Screen is the mutable screen state described by spec §3. All of its
// mutator methods (the vtparser.Dispatcher methods, and Resize, which
// drives package reflow) are expected to be called with the caller
// already holding whatever lock session.Session provides — Screen
// itself performs no locking, consistent with Design Note "Single
// mutex, not lock-free" living at the session boundary, not here.
type Screen struct {
	cols, rows int

	primary *buffer
	alt     *buffer // nil until first 47/1047/1049 entry
	onAlt   bool

	cursorRow, cursorCol int
	pendingWrap          bool
	lastRune             rune // most recently Print-ed rune, for REP (CSI b)

	fg, bg color.Color
	style  grid.StyleFlags

	modes         Mode
	mouseMode     MouseMode
	mouseEncoding MouseEncoding

	scrollback *grid.Scrollback

	selection *Selection

	title          string
	lastWorkingDir string
	clipboardContent string

	responseWriter  ResponseWriter
	clipboardPolicy ClipboardPolicy

	scrollbackCap int
}

// New creates a Screen with the given dimensions and scrollback cap.
func New(cols, rows, scrollbackCap int) *Screen {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s := &Screen{
		cols:          cols,
		rows:          rows,
		primary:       newBuffer(cols, rows),
		modes:         defaultModes,
		scrollback:    grid.NewScrollback(scrollbackCap),
		scrollbackCap: scrollbackCap,
		fg:            color.DefaultFg(),
		bg:            color.DefaultBg(),
		selection:     &Selection{},
	}
	return s
}

// SetResponseWriter installs the callback used for DSR/OSC query
// replies (grounded on the teacher's Terminal.SetResponseWriter).
func (s *Screen) SetResponseWriter(w ResponseWriter) { s.responseWriter = w }

// SetClipboardPolicy installs the OSC 52 gate.
func (s *Screen) SetClipboardPolicy(p ClipboardPolicy) { s.clipboardPolicy = p }

func (s *Screen) respond(b []byte) {
	if s.responseWriter != nil {
		s.responseWriter(b)
	}
}

// Dimensions returns the current (cols, rows).
func (s *Screen) Dimensions() (cols, rows int) { return s.cols, s.rows }

// active returns the buffer currently receiving output.
func (s *Screen) active() *buffer {
	if s.onAlt {
		return s.alt
	}
	return s.primary
}

// Title returns the last OSC 0/2 window title set.
func (s *Screen) Title() string { return s.title }

// WorkingDir returns the last OSC 7 reported working directory.
func (s *Screen) WorkingDir() string { return s.lastWorkingDir }

// OnAltScreen reports whether the alternate screen buffer is active.
func (s *Screen) OnAltScreen() bool { return s.onAlt }

// CursorVisible reports DECTCEM.
func (s *Screen) CursorVisible() bool { return s.modes.has(ModeDECTCEM) }

// AppCursorKeys reports DECCKM.
func (s *Screen) AppCursorKeys() bool { return s.modes.has(ModeDECCKM) }

// BracketedPaste reports whether bracketed-paste mode is enabled.
func (s *Screen) BracketedPaste() bool { return s.modes.has(ModeBracketedPaste) }

// MouseReporting returns the active mouse mode/encoding.
func (s *Screen) MouseReporting() (MouseMode, MouseEncoding) { return s.mouseMode, s.mouseEncoding }

// CursorPosition returns the 0-based cursor row/col. Col may equal
// cols (pending-wrap sentinel, spec I1).
func (s *Screen) CursorPosition() (row, col int) {
	if s.pendingWrap {
		return s.cursorRow, s.cols
	}
	return s.cursorRow, s.cursorCol
}

func (s *Screen) logRecoverable(format string, args ...any) {
	log.Printf("vtparser: recoverable: "+format, args...)
}

var _ vtparser.Dispatcher = (*Screen)(nil)
