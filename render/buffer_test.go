package render

import (
	"testing"
)

func TestBlendOps(t *testing.T) {
	tests := []struct {
		name  string
		dst   RGB
		src   RGB
		mode  BlendMode
		alpha float64
		want  RGB
	}{
		{"Replace", RGB{10, 10, 10}, RGB{200, 100, 50}, BlendReplace, 0, RGB{200, 100, 50}},
		{"Alpha half", RGB{0, 0, 0}, RGB{200, 100, 50}, BlendAlpha, 0.5, RGB{100, 50, 25}},
		{"Alpha zero keeps dst", RGB{7, 8, 9}, RGB{200, 100, 50}, BlendAlpha, 0, RGB{7, 8, 9}},
		{"Alpha one is src", RGB{7, 8, 9}, RGB{200, 100, 50}, BlendAlpha, 1, RGB{200, 100, 50}},
		{"Add clamps", RGB{200, 200, 200}, RGB{100, 10, 55}, BlendAdd, 0, RGB{255, 210, 255}},
		{"Max per channel", RGB{10, 200, 30}, RGB{100, 20, 30}, BlendMax, 0, RGB{100, 200, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(2, 2)
			b.SetBg(1, 1, tt.dst, BlendReplace, 0)
			b.SetBg(1, 1, tt.src, tt.mode, tt.alpha)
			if got := b.At(1, 1).Bg; got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBufferBounds(t *testing.T) {
	b := NewBuffer(4, 3)
	// out-of-bounds writes are silently dropped
	b.SetBg(-1, 0, RGBWhite, BlendReplace, 0)
	b.SetBg(4, 0, RGBWhite, BlendReplace, 0)
	b.SetBg(0, 3, RGBWhite, BlendReplace, 0)
	b.SetRune(99, 99, 'x', RGBWhite)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if c := b.At(x, y); c.Bg != RGBBlack || c.Rune != 0 {
				t.Fatalf("cell (%d,%d) modified by out-of-bounds write: %+v", x, y, c)
			}
		}
	}
}

func TestClear(t *testing.T) {
	b := NewBuffer(5, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b.SetBg(x, y, RGB{uint8(x * 20), uint8(y * 20), 99}, BlendReplace, 0)
			b.SetRune(x, y, '#', RGBWhite)
		}
	}

	bg := RGB{1, 2, 3}
	b.Clear(bg)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := b.At(x, y)
			if c.Bg != bg || c.Rune != 0 {
				t.Fatalf("cell (%d,%d) not cleared: %+v", x, y, c)
			}
		}
	}
}

func TestResize(t *testing.T) {
	b := NewBuffer(10, 10)
	b.SetBg(9, 9, RGBWhite, BlendReplace, 0)

	b.Resize(3, 2)
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("size = %dx%d", b.Width(), b.Height())
	}
	// shrink then grow reuses capacity and yields cleared cells
	b.Resize(10, 10)
	if c := b.At(9, 9); c.Bg == RGBWhite {
		t.Error("resize leaked stale cell content")
	}

	b.Resize(-1, 5)
	if b.Width() != 0 {
		t.Errorf("negative width clamped to %d", b.Width())
	}
}

func TestLerp(t *testing.T) {
	a := RGBA{RGB: RGB{0, 0, 0}, A: 0}
	c := RGBA{RGB: RGB{200, 100, 50}, A: 1}

	if got := Lerp(a, c, 0); got != a {
		t.Errorf("Lerp t=0 = %+v", got)
	}
	if got := Lerp(a, c, 1); got != c {
		t.Errorf("Lerp t=1 = %+v", got)
	}
	mid := Lerp(a, c, 0.5)
	if mid.A != 0.5 || mid.RGB != (RGB{100, 50, 25}) {
		t.Errorf("Lerp t=0.5 = %+v", mid)
	}
}

func TestRampEndpoints(t *testing.T) {
	from := RGB{224, 160, 48}
	to := RGB{60, 60, 76}
	if got := Ramp(from, to, 0); got != from {
		t.Errorf("Ramp t=0 = %+v", got)
	}
	if got := Ramp(from, to, 1); got != to {
		t.Errorf("Ramp t=1 = %+v", got)
	}
	// interior values stay inside the RGB cube after Luv blending
	for _, tt := range []float64{0.25, 0.5, 0.75} {
		_ = Ramp(from, to, tt)
	}
}
