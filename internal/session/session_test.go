package session

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/itsserbin/ferrum/internal/input"
)

// fakePTY is an in-memory PTY double: Write appends to an internal
// buffer a test can inspect, Read serves bytes pushed via feed, and
// closing unblocks any pending Read with io.EOF.
type fakePTY struct {
	mu       sync.Mutex
	toRead   []byte
	written  bytes.Buffer
	resized  []sizeCall
	closed   bool
	readCond chan struct{}
}

type sizeCall struct{ cols, rows uint16 }

func newFakePTY() *fakePTY {
	return &fakePTY{readCond: make(chan struct{}, 1)}
}

func (f *fakePTY) feed(data []byte) {
	f.mu.Lock()
	f.toRead = append(f.toRead, data...)
	f.mu.Unlock()
	select {
	case f.readCond <- struct{}{}:
	default:
	}
}

func (f *fakePTY) Read(buf []byte) (int, error) {
	for {
		f.mu.Lock()
		if f.closed {
			f.mu.Unlock()
			return 0, io.EOF
		}
		if len(f.toRead) > 0 {
			n := copy(buf, f.toRead)
			f.toRead = f.toRead[n:]
			f.mu.Unlock()
			return n, nil
		}
		f.mu.Unlock()
		<-f.readCond
	}
}

func (f *fakePTY) Write(data []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.written.Write(data)
}

func (f *fakePTY) SetWindowSize(cols, rows uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resized = append(f.resized, sizeCall{cols, rows})
	return nil
}

func (f *fakePTY) HasExited() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakePTY) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	select {
	case f.readCond <- struct{}{}:
	default:
	}
	return nil
}

func TestSessionFeedsPTYOutputIntoScreen(t *testing.T) {
	pty := newFakePTY()
	sess := New(pty, 10, 5, 100)
	sess.Start()

	pty.feed([]byte("hi"))
	waitFor(t, func() bool {
		return sess.Snapshot().VisibleRows()[0].Text() == "hi"
	})
}

func TestSessionSendKeyWritesToPTY(t *testing.T) {
	pty := newFakePTY()
	sess := New(pty, 10, 5, 100)
	sess.Start()
	defer sess.Close()

	if err := sess.SendKey(input.Key{Rune: 'a'}); err != nil {
		t.Fatalf("SendKey: %v", err)
	}
	waitFor(t, func() bool {
		pty.mu.Lock()
		defer pty.mu.Unlock()
		return pty.written.String() == "a"
	})
}

func TestSessionWriteRawBypassesEncoder(t *testing.T) {
	pty := newFakePTY()
	sess := New(pty, 10, 5, 100)
	sess.Start()
	defer sess.Close()

	if err := sess.WriteRaw([]byte("\x1b[A")); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	waitFor(t, func() bool {
		pty.mu.Lock()
		defer pty.mu.Unlock()
		return pty.written.String() == "\x1b[A"
	})
}

func TestSessionResizePropagatesToPTY(t *testing.T) {
	pty := newFakePTY()
	sess := New(pty, 10, 5, 100)
	sess.Start()
	defer sess.Close()

	if err := sess.Resize(20, 8); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	pty.mu.Lock()
	defer pty.mu.Unlock()
	if len(pty.resized) != 1 || pty.resized[0] != (sizeCall{20, 8}) {
		t.Errorf("resize calls = %v, want one call to (20,8)", pty.resized)
	}
}

func TestSessionEndedCallbackFiresOnEOF(t *testing.T) {
	pty := newFakePTY()
	sess := New(pty, 10, 5, 100)

	endedCh := make(chan error, 1)
	sess.OnEnded(func(cause error) { endedCh <- cause })
	sess.Start()

	pty.Close()

	select {
	case cause := <-endedCh:
		if cause != nil {
			t.Errorf("ended cause = %v, want nil (clean EOF)", cause)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("OnEnded callback never fired after PTY close")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}
