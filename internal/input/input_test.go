package input

import (
	"bytes"
	"testing"
)

func TestScenarioArrowUpDECCKM(t *testing.T) {
	e := &Encoder{}
	got := e.EncodeKey(Key{Named: KeyUp})
	want := []byte("\x1b[A")
	if !bytes.Equal(got, want) {
		t.Errorf("DECCKM off: arrow-up = %q, want %q", got, want)
	}

	e.AppCursorKeys = true
	got = e.EncodeKey(Key{Named: KeyUp})
	want = []byte("\x1bOA")
	if !bytes.Equal(got, want) {
		t.Errorf("DECCKM on: arrow-up = %q, want %q", got, want)
	}
}

func TestEncodeRuneCtrlMasking(t *testing.T) {
	e := &Encoder{}
	tests := []struct {
		name string
		key  Key
		want []byte
	}{
		{"ctrl-a", Key{Rune: 'a', Modifier: Modifiers{Ctrl: true}}, []byte{1}},
		{"ctrl-shift-a", Key{Rune: 'A', Modifier: Modifiers{Ctrl: true}}, []byte{1}},
		{"ctrl-space", Key{Rune: ' ', Modifier: Modifiers{Ctrl: true}}, []byte{0}},
		{"alt-x", Key{Rune: 'x', Modifier: Modifiers{Alt: true}}, []byte{0x1b, 'x'}},
		{"plain-x", Key{Rune: 'x'}, []byte{'x'}},
	}
	for _, tt := range tests {
		got := e.EncodeKey(tt.key)
		if !bytes.Equal(got, tt.want) {
			t.Errorf("%s: EncodeKey = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEncodePasteBracketingAndInjectionFilter(t *testing.T) {
	e := &Encoder{BracketedPaste: true}
	got := e.EncodePaste([]byte("hi\x1b[201~there"))
	want := []byte("\x1b[200~hithere\x1b[201~")
	if !bytes.Equal(got, want) {
		t.Errorf("EncodePaste = %q, want %q (embedded end-marker must be filtered)", got, want)
	}

	e2 := &Encoder{BracketedPaste: false}
	got2 := e2.EncodePaste([]byte("plain"))
	if !bytes.Equal(got2, []byte("plain")) {
		t.Errorf("EncodePaste with bracketing off = %q, want unmodified passthrough", got2)
	}
}

func TestEncodeMouseButtonSGR(t *testing.T) {
	e := &Encoder{MouseMode: MouseNormal, MouseEncoding: MouseEncodingSGR}
	press := e.EncodeMouseButton(ButtonLeft, true, 4, 9, Modifiers{})
	if !bytes.Equal(press, []byte("\x1b[<0;5;10M")) {
		t.Errorf("SGR press = %q, want %q", press, "\x1b[<0;5;10M")
	}
	release := e.EncodeMouseButton(ButtonLeft, false, 4, 9, Modifiers{})
	if !bytes.Equal(release, []byte("\x1b[<0;5;10m")) {
		t.Errorf("SGR release = %q, want %q", release, "\x1b[<0;5;10m")
	}
}

func TestEncodeMouseOffWhenReportingDisabled(t *testing.T) {
	e := &Encoder{MouseMode: MouseOff}
	got := e.EncodeMouseButton(ButtonLeft, true, 0, 0, Modifiers{})
	if got != nil {
		t.Errorf("EncodeMouseButton with MouseOff = %v, want nil", got)
	}
}
