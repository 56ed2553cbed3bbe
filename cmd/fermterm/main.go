// Command fermterm is a headless integration harness wiring ptyio,
// vtparser, screen, input, and session together end to end. It drives
// the host's own controlling terminal in raw mode rather than opening
// a GUI window: GLFW/GL rendering is a non-goal of this module, so
// where the teacher's main.go wired window.NewWindow/render.NewRenderer
// this wires golang.org/x/term raw mode plus a plain-text frame dump
// instead.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/itsserbin/ferrum/internal/config"
	"github.com/itsserbin/ferrum/internal/ptyio"
	"github.com/itsserbin/ferrum/internal/screen"
	"github.com/itsserbin/ferrum/internal/session"
	"github.com/itsserbin/ferrum/internal/vtparser"
)

func main() {
	var shellFlag string
	var scrollbackFlag int
	var clipboardFlag string

	root := &cobra.Command{
		Use:   "fermterm",
		Short: "fermterm runs a shell under the ferrum terminal core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(shellFlag, scrollbackFlag, clipboardFlag)
		},
	}
	root.Flags().StringVar(&shellFlag, "shell", "", "shell to run (default: auto-detect)")
	root.Flags().IntVar(&scrollbackFlag, "scrollback", 0, "scrollback line cap (default: from config)")
	root.Flags().StringVar(&clipboardFlag, "clipboard", "", "clipboard policy: ask|allow|deny (default: from config)")

	root.AddCommand(dumpCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// dumpCmd feeds a byte stream (stdin or a file) through the parser
// and screen model without a PTY, printing the resulting visible grid
// as plain text. Useful for scripting and for eyeballing the effect of
// a captured escape sequence without a live shell.
func dumpCmd() *cobra.Command {
	var cols, rows int
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "render a byte stream through the terminal model and print the resulting grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := os.Stdin
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			scr := screen.New(cols, rows, 1000)
			p := vtparser.New(scr)
			buf := make([]byte, 4096)
			for {
				n, err := r.Read(buf)
				if n > 0 {
					p.Feed(buf[:n])
				}
				if err != nil {
					break
				}
			}
			printSnapshot(scr.Snapshot())
			return nil
		},
	}
	cmd.Flags().IntVar(&cols, "cols", 80, "grid width")
	cmd.Flags().IntVar(&rows, "rows", 24, "grid height")
	return cmd
}

func printSnapshot(snap screen.Snapshot) {
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, row := range snap.VisibleRows() {
		fmt.Fprintln(w, row.Text())
	}
	fmt.Fprintf(w, "cursor: %d,%d\n", snap.CursorRow, snap.CursorCol)
}

// runInteractive spawns a shell under a PTY, wires it through a
// session.Session, and bridges it to the controlling terminal: raw
// stdin bytes go straight to the PTY (the controlling terminal already
// encodes key presses as VT bytes, the same job input.Encoder does for
// a host with its own key-event model), SIGWINCH drives Resize, and a
// fixed-rate ticker redraws the visible grid until the session ends.
func runInteractive(shellOverride string, scrollbackOverride int, clipboardOverride string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if shellOverride != "" {
		cfg.Shell = shellOverride
	}
	if scrollbackOverride > 0 {
		cfg.ScrollbackLines = scrollbackOverride
	}
	if clipboardOverride != "" {
		cfg.Clipboard = config.ClipboardPolicy(clipboardOverride)
	}

	cols, rows := 80, 24
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			cols, rows = w, h
		}
	}

	pty, err := ptyio.Spawn(uint16(cols), uint16(rows), ptyio.Options{ShellPath: cfg.Shell})
	if err != nil {
		return fmt.Errorf("spawn shell: %w", err)
	}

	sess := session.New(pty, cols, rows, cfg.ScrollbackLines)
	sess.SetClipboardPolicy(translatePolicy(cfg.Clipboard))

	ended := make(chan error, 1)
	sess.OnEnded(func(cause error) { ended <- cause })
	sess.Start()

	if isatty.IsTerminal(os.Stdin.Fd()) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			log.Printf("fermterm: raw mode unavailable: %v", err)
		} else {
			defer term.Restore(int(os.Stdin.Fd()), oldState)
		}
	}

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				sess.Resize(w, h)
			}
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go pumpStdinToPTY(sess, done)
	go pumpSnapshotToStdout(sess, done)

	cause := <-ended
	pty.Close()
	if cause != nil {
		return fmt.Errorf("session ended: %w", cause)
	}
	return nil
}

// pumpStdinToPTY forwards raw controlling-terminal bytes straight to
// the PTY via WriteRaw, not SendPaste: the controlling terminal has
// already encoded each keystroke as VT bytes, so bracketing it as a
// paste would corrupt ordinary typing. A host with its own
// discrete key-event model calls Session.SendKey/SendMouseButton/
// SendPaste per event instead; this harness has no event source but
// the terminal's own byte stream.
func pumpStdinToPTY(sess *session.Session, done <-chan struct{}) {
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			sess.WriteRaw(buf[:n])
		}
		if err != nil {
			return
		}
		select {
		case <-done:
			return
		default:
		}
	}
}

// pumpSnapshotToStdout redraws the visible grid on a fixed tick. A
// real host renders on its own frame clock (spec §6); this harness
// has none, so it polls.
func pumpSnapshotToStdout(sess *session.Session, done <-chan struct{}) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			fmt.Print("\x1b[H\x1b[2J")
			printSnapshot(sess.Snapshot())
		}
	}
}

// translatePolicy turns the configured policy into the op-gating
// closure screen.Screen.SetClipboardPolicy expects. "ask" has no
// interactive prompt surface in this headless harness, so it denies
// by default rather than blocking on input that never arrives.
func translatePolicy(p config.ClipboardPolicy) screen.ClipboardPolicy {
	return func(op string) bool {
		return p == config.ClipboardAllow
	}
}
