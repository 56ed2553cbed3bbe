package vtparser

// MaxParams caps the number of parameter groups a single CSI/DCS
// sequence may accumulate, per spec §4.1 ("suggested: 32 params").
const MaxParams = 32

// MaxStringLen caps OSC/DCS/SOS/PM/APC string accumulation, per spec
// §4.1 ("4096-byte OSC buffer").
const MaxStringLen = 4096

// Params holds the parsed parameter groups of a CSI or DCS sequence.
// Each group is a sequence of 16-bit sub-parameters (colon-separated
// in the raw text); 0 means "default" (spec §4.1).
type Params struct {
	groups [][]uint16
}

// Len returns the number of parameter groups.
func (p *Params) Len() int { return len(p.groups) }

// Group returns the sub-parameters of group i, or nil if out of
// range.
func (p *Params) Group(i int) []uint16 {
	if i < 0 || i >= len(p.groups) {
		return nil
	}
	return p.groups[i]
}

// Get returns the first sub-parameter of group i, or def if the group
// is missing or its value is 0 ("0 meaning default", spec §4.1).
func (p *Params) Get(i int, def int) int {
	g := p.Group(i)
	if len(g) == 0 || g[0] == 0 {
		return def
	}
	return int(g[0])
}

// GetRaw returns the first sub-parameter of group i verbatim (no
// default substitution), and whether the group exists at all, for a
// caller that must distinguish "absent" from "present but zero".
func (p *Params) GetRaw(i int) (int, bool) {
	g := p.Group(i)
	if len(g) == 0 {
		return 0, false
	}
	return int(g[0]), true
}

// Sub returns sub-parameter j of group i, or def if absent.
func (p *Params) Sub(i, j int, def int) int {
	g := p.Group(i)
	if j < 0 || j >= len(g) {
		return def
	}
	return int(g[j])
}

// paramBuilder accumulates raw parameter bytes during CsiEntry/
// CsiParam/DcsEntry/DcsParam and produces a Params value at the
// sequence's final byte.
type paramBuilder struct {
	groups  [][]uint16
	current []uint16
	digits  uint32
	hasDig  bool
	private byte // '?', '>', '=', '<', or 0
}

func (b *paramBuilder) reset() {
	b.groups = nil
	b.current = nil
	b.digits = 0
	b.hasDig = false
	b.private = 0
}

func (b *paramBuilder) markPrivate(c byte) {
	if b.private == 0 {
		b.private = c
	}
}

func (b *paramBuilder) feedDigit(d byte) {
	b.hasDig = true
	b.digits = b.digits*10 + uint32(d-'0')
	if b.digits > 0xffff {
		b.digits = 0xffff
	}
}

// subSeparator (':') ends the current sub-parameter and starts a new
// one within the same group.
func (b *paramBuilder) subSeparator() {
	b.flushSub()
}

// separator (';') ends the current group.
func (b *paramBuilder) separator() {
	b.flushSub()
	if len(b.groups) < MaxParams {
		b.groups = append(b.groups, b.current)
	}
	b.current = nil
}

func (b *paramBuilder) flushSub() {
	if len(b.current) < MaxParams {
		b.current = append(b.current, uint16(b.digits))
	}
	b.digits = 0
	b.hasDig = false
}

func (b *paramBuilder) finish() Params {
	b.flushSub()
	if len(b.groups) < MaxParams {
		b.groups = append(b.groups, b.current)
	}
	return Params{groups: b.groups}
}
