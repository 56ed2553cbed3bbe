package vtwidth

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'A', 1},
		{' ', 1},
		{0, 0},
		{'漢', 2},
		{'字', 2},
		{'가', 2},
	}
	for _, tt := range tests {
		if got := Of(tt.r); got != tt.want {
			t.Errorf("Of(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestOfString(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"abc", 3},
		{"漢字", 4},
		{"", 0},
	}
	for _, tt := range tests {
		if got := OfString(tt.s); got != tt.want {
			t.Errorf("OfString(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}
