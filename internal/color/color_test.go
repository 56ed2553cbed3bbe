package color

import "testing"

func TestPalette256CubeAndGrayscale(t *testing.T) {
	idx := CubeIndex(5, 0, 0)
	if idx != 196 {
		t.Fatalf("CubeIndex(5,0,0) = %d, want 196", idx)
	}
	rgb := Palette256[idx]
	if rgb != [3]uint8{0xff, 0x00, 0x00} {
		t.Errorf("Palette256[196] = %v, want pure red cube corner", rgb)
	}

	grayIdx := GrayIndex(0)
	if grayIdx != 232 {
		t.Fatalf("GrayIndex(0) = %d, want 232", grayIdx)
	}
	if Palette256[grayIdx] != [3]uint8{8, 8, 8} {
		t.Errorf("Palette256[232] = %v, want {8,8,8}", Palette256[grayIdx])
	}
}

func TestResolveDefaultFallsBackToCallerDefault(t *testing.T) {
	c := DefaultFg()
	r, g, b := c.Resolve(FromRGB(10, 20, 30))
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("Resolve(default) with fallback = (%d,%d,%d), want (10,20,30)", r, g, b)
	}
}

func TestResolveIndexedUsesPalette(t *testing.T) {
	c := FromIndex(1)
	r, g, b := c.Resolve(DefaultFg())
	want := Palette256[1]
	if r != want[0] || g != want[1] || b != want[2] {
		t.Errorf("Resolve(indexed 1) = (%d,%d,%d), want %v", r, g, b, want)
	}
}

func TestIsDefault(t *testing.T) {
	if !DefaultFg().IsDefault() {
		t.Error("DefaultFg().IsDefault() = false, want true")
	}
	if FromIndex(3).IsDefault() {
		t.Error("FromIndex(3).IsDefault() = true, want false")
	}
}

func TestBlendDimTowardBlack(t *testing.T) {
	r, g, b := BlendDim(255, 255, 255)
	if r == 255 || g == 255 || b == 255 {
		t.Errorf("BlendDim(255,255,255) = (%d,%d,%d), want darker than full white", r, g, b)
	}
}
