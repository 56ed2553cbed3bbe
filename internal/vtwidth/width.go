// Package vtwidth classifies the display width of Unicode scalars for
// the printable-character handling rules in spec §4.3: 0 for
// zero-width (combining marks, the NUL cell filler), 1 for normal
// characters, 2 for wide (CJK/emoji-class) characters.
package vtwidth

import (
	"unicode"

	"golang.org/x/text/width"
)

// Of returns the display width of r: 0, 1, or 2 columns.
func Of(r rune) int {
	if r == 0 {
		return 0
	}
	if !unicode.IsPrint(r) {
		return 0
	}
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) || unicode.Is(unicode.Mc, r) {
		return 0
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// OfString returns the total display width of s.
func OfString(s string) int {
	total := 0
	for _, r := range s {
		total += Of(r)
	}
	return total
}
