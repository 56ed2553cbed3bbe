package screen

import (
	"encoding/base64"
	"testing"

	"github.com/itsserbin/ferrum/internal/vtparser"
)

func captureResponses(scr *Screen) *[][]byte {
	var got [][]byte
	scr.SetResponseWriter(func(b []byte) {
		got = append(got, append([]byte(nil), b...))
	})
	return &got
}

func TestOSCWindowTitle(t *testing.T) {
	scr := New(10, 5, 100)
	p := vtparser.New(scr)
	p.Feed([]byte("\x1b]0;hello\x07"))
	if scr.Title() != "hello" {
		t.Errorf("Title() = %q, want %q", scr.Title(), "hello")
	}
}

func TestOSC7WorkingDirFileURI(t *testing.T) {
	scr := New(10, 5, 100)
	p := vtparser.New(scr)
	p.Feed([]byte("\x1b]7;file://host/home/user/src\x07"))
	if scr.WorkingDir() != "/home/user/src" {
		t.Errorf("WorkingDir() = %q, want %q", scr.WorkingDir(), "/home/user/src")
	}
}

func TestOSC52ClipboardWriteThenReadGatedByPolicy(t *testing.T) {
	scr := New(10, 5, 100)
	scr.SetClipboardPolicy(func(op string) bool { return true })
	resp := captureResponses(scr)
	p := vtparser.New(scr)

	payload := base64.StdEncoding.EncodeToString([]byte("copied text"))
	p.Feed([]byte("\x1b]52;c;" + payload + "\x07"))

	p.Feed([]byte("\x1b]52;c;?\x07"))
	if len(*resp) != 1 {
		t.Fatalf("responses = %d, want 1 read reply", len(*resp))
	}
}

func TestOSC52ClipboardDeniedByPolicy(t *testing.T) {
	scr := New(10, 5, 100)
	scr.SetClipboardPolicy(func(op string) bool { return false })
	resp := captureResponses(scr)
	p := vtparser.New(scr)

	payload := base64.StdEncoding.EncodeToString([]byte("copied text"))
	p.Feed([]byte("\x1b]52;c;" + payload + "\x07"))
	p.Feed([]byte("\x1b]52;c;?\x07"))

	if len(*resp) != 0 {
		t.Errorf("responses = %d, want 0 when policy denies", len(*resp))
	}
}

func TestOSC52ClipboardNilPolicyDenies(t *testing.T) {
	scr := New(10, 5, 100)
	resp := captureResponses(scr)
	p := vtparser.New(scr)

	p.Feed([]byte("\x1b]52;c;?\x07"))
	if len(*resp) != 0 {
		t.Errorf("responses = %d, want 0 with no policy set", len(*resp))
	}
}

func TestDSRCursorPositionReport(t *testing.T) {
	scr := New(10, 5, 100)
	resp := captureResponses(scr)
	p := vtparser.New(scr)

	p.Feed([]byte("abc\x1b[6n"))
	if len(*resp) != 1 {
		t.Fatalf("responses = %d, want 1 CPR reply", len(*resp))
	}
	want := "\x1b[1;4R"
	if string((*resp)[0]) != want {
		t.Errorf("CPR reply = %q, want %q", (*resp)[0], want)
	}
}

func TestDSRDeviceOK(t *testing.T) {
	scr := New(10, 5, 100)
	resp := captureResponses(scr)
	p := vtparser.New(scr)

	p.Feed([]byte("\x1b[5n"))
	if len(*resp) != 1 || string((*resp)[0]) != "\x1b[0n" {
		t.Errorf("device status reply = %v, want [0n]", *resp)
	}
}

func TestFullResetClearsStateAndScrollback(t *testing.T) {
	scr := New(10, 5, 3)
	p := vtparser.New(scr)
	p.Feed([]byte("one\r\ntwo\r\nthree\r\nfour\r\nfive\r\n"))
	p.Feed([]byte("\x1b]0;title\x07"))

	p.Feed([]byte("\x1bc"))

	if scr.Title() != "" {
		t.Errorf("Title() after RIS = %q, want empty", scr.Title())
	}
	row, col := scr.CursorPosition()
	if row != 0 || col != 0 {
		t.Errorf("cursor after RIS = (%d,%d), want (0,0)", row, col)
	}
}
