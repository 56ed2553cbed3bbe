package screen

// Execute implements vtparser.Dispatcher.Execute for the C0/C1
// controls named in spec §4.1/§4.3.
func (s *Screen) Execute(b byte) {
	switch b {
	case 0x07: // BEL
		// No bell sink in the core; the host renderer decides how to
		// surface it. Nothing to do here.
	case 0x08: // BS
		s.backspace()
	case 0x09: // HT
		s.tab()
	case 0x0a, 0x0b, 0x0c: // LF, VT, FF
		s.lineFeed()
		if s.modes.has(ModeLNM) {
			s.carriageReturn()
		}
	case 0x0d: // CR
		s.carriageReturn()
	case 0x0e, 0x0f: // SO, SI (charset shift) — no alternate charset support; no-op.
	default:
		// Other C0/C1 controls are silently ignored per spec §4.8.
	}
}
