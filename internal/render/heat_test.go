package render

import (
	"image/color"
	"testing"
)

func luminance(c color.RGBA) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

func TestHeatColorEndpoints(t *testing.T) {
	cold := HeatColor(0)
	if cold != (color.RGBA{R: 0x1d, G: 0x3b, B: 0x5a, A: 255}) {
		t.Fatalf("unexpected cold color %+v", cold)
	}
	hot := HeatColor(1)
	if hot != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("unexpected hot color %+v", hot)
	}
	if HeatColor(-3) != cold || HeatColor(7) != hot {
		t.Fatal("out of range fractions must clamp")
	}
}

func TestHeatColorWarmsUp(t *testing.T) {
	if luminance(HeatColor(0.5)) <= luminance(HeatColor(0)) {
		t.Fatal("mid ramp should be brighter than cold")
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	if got := Blend(a, b, 0); got != a {
		t.Fatalf("t=0 should return a, got %+v", got)
	}
	if got := Blend(a, b, 1); got != b {
		t.Fatalf("t=1 should return b, got %+v", got)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 5, G: 6, B: 7, A: 8}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 9}, palette)
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 5, 6, 7, 8}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, buf[i], want[i])
		}
	}
	fillPaletteRGBA(buf, []uint8{0, 1, 2}, nil)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("byte %d not cleared", i)
		}
	}
}
