package screen

import (
	"github.com/itsserbin/ferrum/internal/color"
	"github.com/itsserbin/ferrum/internal/grid"
	"github.com/itsserbin/ferrum/internal/vtparser"
)

// applySGR implements spec §4.2 SGR: style/color changes from a CSI
// "m" sequence. Empty params means a single implicit 0 (full reset).
func (s *Screen) applySGR(params vtparser.Params) {
	n := params.Len()
	if n == 0 {
		s.resetSGR()
		return
	}

	for i := 0; i < n; i++ {
		p := params.Get(i, 0)
		switch {
		case p == 0:
			s.resetSGR()
		case p == 1:
			s.style |= grid.StyleBold
		case p == 2:
			s.style |= grid.StyleDim
		case p == 3:
			s.style |= grid.StyleItalic
		case p == 4:
			s.style |= grid.StyleUnderline
		case p == 5 || p == 6:
			s.style |= grid.StyleBlink
		case p == 7:
			s.style |= grid.StyleReverse
		case p == 9:
			s.style |= grid.StyleStrikethrough
		case p == 21:
			s.style &^= grid.StyleBold
		case p == 22:
			s.style &^= grid.StyleBold | grid.StyleDim
		case p == 23:
			s.style &^= grid.StyleItalic
		case p == 24:
			s.style &^= grid.StyleUnderline
		case p == 25:
			s.style &^= grid.StyleBlink
		case p == 27:
			s.style &^= grid.StyleReverse
		case p == 29:
			s.style &^= grid.StyleStrikethrough
		case p >= 30 && p <= 37:
			s.fg = color.FromIndex(uint8(p - 30))
		case p == 38:
			consumed := s.parseExtendedColor(params, i, true)
			i += consumed
		case p == 39:
			s.fg = color.DefaultFg()
		case p >= 40 && p <= 47:
			s.bg = color.FromIndex(uint8(p - 40))
		case p == 48:
			consumed := s.parseExtendedColor(params, i, false)
			i += consumed
		case p == 49:
			s.bg = color.DefaultBg()
		case p >= 90 && p <= 97:
			s.fg = color.FromIndex(uint8(p - 90 + 8))
		case p >= 100 && p <= 107:
			s.bg = color.FromIndex(uint8(p - 100 + 8))
		}
	}
}

// parseExtendedColor handles `38;5;n` / `38;2;r;g;b` (and `48;...`
// for background), including the colon-separated sub-parameter form
// (`38:2::r:g:b`) per spec §4.1's parameter-group model. Returns how
// many additional top-level groups were consumed so the caller's loop
// index can skip them.
func (s *Screen) parseExtendedColor(params vtparser.Params, i int, fg bool) int {
	// A second sub-parameter inside group i means the colon form
	// (`38:2::r:g:b` / `38:5:n`): mode and components all live in the
	// same group, so nothing is consumed from later top-level groups.
	if mode := params.Sub(i, 1, -1); mode >= 0 {
		switch mode {
		case 5:
			idx := params.Sub(i, 2, 0)
			s.setExtended(fg, color.FromIndex(uint8(idx)))
		case 2:
			// Colon form may carry an optional colorspace id before
			// r/g/b (`38:2:<cs>:r:g:b`); xterm also accepts it
			// omitted (`38:2::r:g:b` or `38:2:r:g:b`). Disambiguate
			// by the number of remaining sub-parameters.
			r, g, b := params.Sub(i, 2, 0), params.Sub(i, 3, 0), params.Sub(i, 4, 0)
			if params.Sub(i, 5, -1) >= 0 {
				r, g, b = params.Sub(i, 3, 0), params.Sub(i, 4, 0), params.Sub(i, 5, 0)
			}
			s.setExtended(fg, color.FromRGB(uint8(r), uint8(g), uint8(b)))
		}
		return 0
	}

	// Semicolon form (`38;5;n` / `38;2;r;g;b`): mode and components
	// are separate top-level groups following group i.
	switch params.Get(i+1, 0) {
	case 5:
		idx := params.Get(i+2, 0)
		s.setExtended(fg, color.FromIndex(uint8(idx)))
		return 2
	case 2:
		r := params.Get(i+2, 0)
		g := params.Get(i+3, 0)
		b := params.Get(i+4, 0)
		s.setExtended(fg, color.FromRGB(uint8(r), uint8(g), uint8(b)))
		return 4
	}
	return 1
}

func (s *Screen) setExtended(fg bool, c color.Color) {
	if fg {
		s.fg = c
	} else {
		s.bg = c
	}
}

func (s *Screen) resetSGR() {
	s.fg = color.DefaultFg()
	s.bg = color.DefaultBg()
	s.style = 0
}
