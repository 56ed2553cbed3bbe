package vtparser

// Dispatcher receives the actions emitted by Parser.Feed. A byte
// emits zero or one action, except a byte that breaks off a malformed
// UTF-8 sequence (U+FFFD is printed, then the byte is processed on its
// own) or an ESC that ends an OSC/DCS string without a proper ST (the
// string is dispatched or unhooked, then the ESC sequence is
// processed); no batching happens inside the parser itself. An
// implementation (e.g. screen.Screen) mutates screen state; the parser
// itself never does.
type Dispatcher interface {
	// Print handles a single decoded printable scalar (spec §4.3).
	Print(r rune)
	// Execute handles a C0/C1 control byte (BEL, BS, HT, LF, ...).
	Execute(b byte)
	// CsiDispatch handles a completed CSI sequence. private is the
	// leading private-mode indicator byte ('?', '>', etc.) or 0.
	CsiDispatch(params Params, intermediates []byte, private byte, final byte)
	// EscDispatch handles a completed non-CSI ESC sequence.
	EscDispatch(intermediates []byte, final byte)
	// OscDispatch handles a completed OSC string, split on ';' into
	// parameter byte-strings.
	OscDispatch(params [][]byte, bellTerminated bool)
	// Hook/Put/Unhook bracket a DCS sequence: Hook on entry (with the
	// CSI-like header), Put for each passthrough data byte, Unhook at
	// ST/cancel.
	Hook(params Params, intermediates []byte, private byte, final byte)
	Put(b byte)
	Unhook()
}
