// Package session implements the concurrency boundary of spec §5: a
// single mutex guarding Screen+Parser state, a PTY-reader goroutine
// feeding the parser, and resize/input entry points that take the
// same lock before mutating. Grounded on the teacher's tab.Tab
// (readLoop goroutine, readerMu around Terminal.Process, Resize taking
// the same lock) and parser.Terminal's own internal mutex, generalized
// here into an explicit single-session type since tab/window
// management is out of scope (spec §1 "Tab/window management...
// explicitly out of scope").
package session

import (
	"errors"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/itsserbin/ferrum/internal/input"
	"github.com/itsserbin/ferrum/internal/ptyio"
	"github.com/itsserbin/ferrum/internal/screen"
	"github.com/itsserbin/ferrum/internal/vtparser"
)

// readBufSize is the fixed PTY read buffer of spec §5 ("PTY reads use
// a fixed-size buffer (4 KiB)").
const readBufSize = 4096

// EndedFunc is called exactly once, when the session terminates (spec
// §7: "Session-terminating errors surface to the host via a single
// 'session ended' event carrying an optional cause string"). cause is
// nil for a clean EOF.
type EndedFunc func(cause error)

// Session wires a PTY, a vtparser.Parser, and a screen.Screen behind
// one mutex, matching spec §5's "exactly two producer contexts
// mutating screen state": the PTY-reader goroutine started by Start,
// and whatever goroutine calls Resize/SendKey/SendMouseButton/
// SendMouseMotion/SendScroll/SendPaste.
type Session struct {
	ID uuid.UUID

	mu     sync.Mutex
	screen *screen.Screen
	parser *vtparser.Parser
	pty    ptyio.PTY
	enc    input.Encoder

	onEnded EndedFunc
	ended   bool
}

// New creates a Session around an already-spawned PTY and an initial
// grid size. Call Start to begin the reader goroutine.
func New(p ptyio.PTY, cols, rows, scrollbackCap int) *Session {
	scr := screen.New(cols, rows, scrollbackCap)
	s := &Session{
		ID:     uuid.New(),
		screen: scr,
		pty:    p,
	}
	s.parser = vtparser.New(scr)
	scr.SetResponseWriter(func(b []byte) {
		if err := s.writePTY(b); err != nil {
			log.Printf("session %s: response write failed: %v", s.ID, err)
		}
	})
	return s
}

// SetClipboardPolicy installs the OSC 52 gate (spec §4.4).
func (s *Session) SetClipboardPolicy(p screen.ClipboardPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetClipboardPolicy(p)
}

// OnEnded registers the session-end callback (spec §7).
func (s *Session) OnEnded(f EndedFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onEnded = f
}

// Start launches the PTY-reader goroutine (spec §5 "a dedicated
// PTY-reader thread feeding parsed bytes through the action
// dispatcher"). Each read locks, dispatches the whole buffer as one
// atomic action group, unlocks, and loops, per §5 "Suspension points".
func (s *Session) Start() {
	go s.readLoop()
}

func (s *Session) readLoop() {
	buf := make([]byte, readBufSize)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.parser.Feed(buf[:n])
			s.syncEncoderLocked()
			s.mu.Unlock()
		}
		if err != nil {
			cause := err
			if errors.Is(err, io.EOF) {
				cause = nil
			}
			s.finish(cause)
			return
		}
		if n == 0 {
			s.finish(nil)
			return
		}
	}
}

// finish ends the session after a zero-byte read, EOF or read error:
// it marks the session ended and invokes the OnEnded callback, at most
// once. It does not flush a partially decoded sequence held by the
// parser, and it does not block later writes: SendKey, WriteRaw and
// the other senders still pass their bytes to the PTY.
func (s *Session) finish(cause error) {
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	cb := s.onEnded
	s.mu.Unlock()
	if cb != nil {
		cb(cause)
	}
}

// Resize applies spec §4.6 under the lock, then propagates the new
// size to the PTY (spec §6: "The core calls set_window_size
// immediately after every successful resize").
func (s *Session) Resize(cols, rows int) error {
	s.mu.Lock()
	s.screen.Resize(cols, rows)
	actualCols, actualRows := s.screen.Dimensions()
	s.mu.Unlock()
	return s.pty.SetWindowSize(uint16(actualCols), uint16(actualRows))
}

// SendKey encodes and writes a key event (spec §4.7).
func (s *Session) SendKey(k input.Key) error {
	s.mu.Lock()
	s.syncEncoderLocked()
	data := s.enc.EncodeKey(k)
	s.mu.Unlock()
	if len(data) == 0 {
		return nil
	}
	return s.writePTY(data)
}

// SendMouseButton encodes and writes a mouse press/release (spec
// §4.7).
func (s *Session) SendMouseButton(btn input.MouseButton, press bool, x, y int, m input.Modifiers) error {
	s.mu.Lock()
	s.syncEncoderLocked()
	data := s.enc.EncodeMouseButton(btn, press, x, y, m)
	s.mu.Unlock()
	if len(data) == 0 {
		return nil
	}
	return s.writePTY(data)
}

// SendMouseMotion encodes and writes a drag/hover event (spec §4.7).
func (s *Session) SendMouseMotion(held input.MouseButton, x, y int, m input.Modifiers) error {
	s.mu.Lock()
	s.syncEncoderLocked()
	data := s.enc.EncodeMouseMotion(held, x, y, m)
	s.mu.Unlock()
	if len(data) == 0 {
		return nil
	}
	return s.writePTY(data)
}

// SendScroll encodes and writes a wheel scroll event (spec §4.7).
func (s *Session) SendScroll(dir input.ScrollDir, x, y int, m input.Modifiers) error {
	s.mu.Lock()
	s.syncEncoderLocked()
	data := s.enc.EncodeScroll(dir, x, y, m)
	s.mu.Unlock()
	if len(data) == 0 {
		return nil
	}
	return s.writePTY(data)
}

// SendPaste encodes (bracketing if enabled) and writes pasted bytes
// (spec §4.7).
func (s *Session) SendPaste(data []byte) error {
	s.mu.Lock()
	s.syncEncoderLocked()
	out := s.enc.EncodePaste(data)
	s.mu.Unlock()
	return s.writePTY(out)
}

// WriteRaw writes already-encoded VT bytes straight to the PTY,
// bypassing the key/mouse/paste encoder. For a host whose input
// already arrives as terminal bytes (e.g. this module's own
// controlling terminal in raw mode) rather than discrete key/mouse
// events.
func (s *Session) WriteRaw(data []byte) error {
	return s.writePTY(data)
}

// syncEncoderLocked refreshes the encoder's mode snapshot from the
// screen model. Must be called with s.mu held.
func (s *Session) syncEncoderLocked() {
	s.enc.AppCursorKeys = s.screen.AppCursorKeys()
	s.enc.BracketedPaste = s.screen.BracketedPaste()
	mode, enc := s.screen.MouseReporting()
	s.enc.MouseMode = input.MouseMode(mode)
	s.enc.MouseEncoding = input.MouseEncoding(enc)
}

// writePTY retries short writes until the whole sequence is committed
// (spec §4.7).
func (s *Session) writePTY(data []byte) error {
	for len(data) > 0 {
		n, err := s.pty.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// Snapshot returns a read-only renderer view (spec §6), taking the
// lock only long enough to copy it (spec §5: "Holding the mutex across
// rendering is forbidden").
func (s *Session) Snapshot() screen.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Snapshot()
}

// StartSelection/ExtendSelection/ClearSelection/SelectedText expose
// the selection model under the lock, for a host driving selection
// from mouse events.
func (s *Session) StartSelection(row, col int, mode screen.SelectionMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.StartSelection(row, col, mode)
}

func (s *Session) ExtendSelection(row, col int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ExtendSelection(row, col)
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.ClearSelection()
}

func (s *Session) SelectedText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.SelectedText()
}

// Close tears down the underlying PTY. It does not itself stop the
// reader goroutine; the goroutine observes the resulting read error
// and calls finish on its own, matching spec §5's "Cancellation is
// coarse-grained at session end only."
func (s *Session) Close() error {
	return s.pty.Close()
}
