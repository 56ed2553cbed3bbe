// Package ptyio implements the PTY external-collaborator contract of
// spec §6 plus a creack/pty-backed implementation, grounded on the
// teacher's shell.PtySession (shell/pty.go): shell discovery via
// /etc/passwd, Read/Write/Resize/Close/HasExited. Trimmed of
// RavenTerminal-specific environment (RAVEN_TERMINAL, init-script
// sourcing) since those are GUI-app concerns, not terminal-core.
package ptyio

import (
	"os"
	"os/exec"
	"os/user"
	"strings"
	"sync"
	"syscall"

	"github.com/creack/pty"
)

// PTY is the bidirectional byte-stream contract spec §6 requires:
// read/write/set_window_size, plus the lifecycle operations a session
// needs (Close, HasExited).
type PTY interface {
	Read(buf []byte) (int, error)
	Write(data []byte) (int, error)
	SetWindowSize(cols, rows uint16) error
	HasExited() bool
	Close() error
}

// Session is a creack/pty-backed child shell process, the only PTY
// implementation this module ships (window-system/process-supervision
// policy beyond spawning the shell is out of scope per §1).
type Session struct {
	cmd  *exec.Cmd
	pty  *os.File
	mu   sync.Mutex

	exitedMu sync.Mutex
	exited   bool
}

// Options configures shell discovery and the child's environment.
type Options struct {
	// ShellPath overrides shell discovery (empty: use $SHELL /
	// /etc/passwd / common fallbacks, per findShell below).
	ShellPath string
	// Env is appended to the child's environment after the fixed
	// baseline (PATH, TERM, HOME, ...).
	Env []string
	// Dir sets the child's working directory; empty uses the user's
	// home directory.
	Dir string
}

// Spawn starts a shell under a new PTY of the given size, grounded on
// the teacher's NewPtySession.
func Spawn(cols, rows uint16, opts Options) (*Session, error) {
	shellPath := opts.ShellPath
	if shellPath == "" {
		shellPath = findShell()
	}

	currentUser, err := user.Current()
	if err != nil {
		return nil, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = currentUser.HomeDir
	}

	cmd := exec.Command(shellPath, "-i")
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}

	env := []string{
		"PATH=" + envOr("PATH", "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
		"HOME=" + currentUser.HomeDir,
		"USER=" + currentUser.Username,
		"SHELL=" + shellPath,
		"LANG=" + envOr("LANG", "en_US.UTF-8"),
	}
	env = append(env, opts.Env...)
	cmd.Env = env
	cmd.Dir = dir

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		return nil, err
	}

	s := &Session{cmd: cmd, pty: ptmx}
	go func() {
		cmd.Wait()
		s.exitedMu.Lock()
		s.exited = true
		s.exitedMu.Unlock()
	}()
	return s, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// findShell mirrors the teacher's findShell/getUserShell: $SHELL, then
// /etc/passwd, then a fixed fallback list.
func findShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		if _, err := os.Stat(sh); err == nil {
			return sh
		}
	}
	if currentUser, err := user.Current(); err == nil {
		if sh := shellFromPasswd(currentUser.Username); sh != "" {
			if _, err := os.Stat(sh); err == nil {
				return sh
			}
		}
	}
	for _, sh := range []string{"/bin/bash", "/usr/bin/bash", "/bin/zsh", "/usr/bin/zsh", "/bin/sh"} {
		if _, err := os.Stat(sh); err == nil {
			return sh
		}
	}
	return "/bin/sh"
}

func shellFromPasswd(username string) string {
	data, err := os.ReadFile("/etc/passwd")
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Split(line, ":")
		if len(fields) >= 7 && fields[0] == username {
			return fields[6]
		}
	}
	return ""
}

// Read implements PTY.
func (s *Session) Read(buf []byte) (int, error) { return s.pty.Read(buf) }

// Write implements PTY. Short writes are retried by the caller
// (spec §4.7: "short writes must be retried until the whole sequence
// is committed"); WriteAll below does that for callers that want it
// handled here instead.
func (s *Session) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pty.Write(data)
}

// WriteAll retries short writes until all of data is committed or an
// error occurs, satisfying spec §4.7's write-retry requirement at the
// PTY boundary.
func (s *Session) WriteAll(data []byte) error {
	for len(data) > 0 {
		n, err := s.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// SetWindowSize implements PTY (spec §6: "set_window_size(rows,
// cols)"); the kernel delivers SIGWINCH to the child on POSIX.
func (s *Session) SetWindowSize(cols, rows uint16) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pty.Setsize(s.pty, &pty.Winsize{Cols: cols, Rows: rows})
}

// HasExited implements PTY.
func (s *Session) HasExited() bool {
	s.exitedMu.Lock()
	defer s.exitedMu.Unlock()
	return s.exited
}

// Close implements PTY.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	return s.pty.Close()
}

var _ PTY = (*Session)(nil)
