package raster

import "testing"

// fullMask returns a mask with every pixel set
func fullMask(width, height int) *Mask {
	m := NewMask(width, height)
	for i := range m.Bits {
		m.Bits[i] = true
	}
	return m
}

func TestErodeRect_AllSet(t *testing.T) {
	m := fullMask(40, 50)

	out := ErodeRect(m, 30, 10)

	if out.Count() != 40*50 {
		t.Errorf("border should not erode: got %d set pixels, want %d", out.Count(), 40*50)
	}
}

func TestErodeRect_SinglePixelGrows(t *testing.T) {
	m := fullMask(60, 80)
	m.Set(30, 40, false)

	out := ErodeRect(m, 30, 10)

	// The unset pixel spreads over the reflected element: rows 40-15..40+14,
	// columns 30-5..30+4.
	unset := 60*80 - out.Count()
	if unset != 30*10 {
		t.Fatalf("unset pixels: got %d, want %d", unset, 30*10)
	}
	if out.At(25, 25) || out.At(34, 54) {
		t.Error("corners of the grown region should be unset")
	}
	if !out.At(24, 40) || !out.At(35, 40) || !out.At(30, 24) || !out.At(30, 55) {
		t.Error("pixels just outside the grown region should stay set")
	}
}

func TestErodeRect_Anchor(t *testing.T) {
	tests := []struct {
		name           string
		height, width  int
		wantLo, wantHi int
	}{
		{"even element", 30, 1, 5, 34},
		{"odd element", 5, 1, 18, 22},
		{"single row", 1, 1, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fullMask(1, 60)
			m.Set(0, 20, false)

			out := ErodeRect(m, tt.height, tt.width)

			for y := 0; y < 60; y++ {
				want := y < tt.wantLo || y > tt.wantHi
				if out.At(0, y) != want {
					t.Errorf("row %d: got %v, want %v", y, out.At(0, y), want)
				}
			}
		})
	}
}

func TestErodeRect_SmallHoleVanishes(t *testing.T) {
	// Set region with a short background band: rows 10..20 are set, everything else unset.
	m := NewMask(30, 40)
	for y := 10; y <= 20; y++ {
		for x := 0; x < 30; x++ {
			m.Set(x, y, true)
		}
	}

	out := ErodeRect(m, 30, 10)

	if out.Count() != 0 {
		t.Errorf("an 11-row band cannot hold a 30-row element, got %d set pixels", out.Count())
	}
}

func TestErodeRect_ZeroElement(t *testing.T) {
	m := NewMask(5, 5)
	m.Set(2, 2, true)

	out := ErodeRect(m, 0, 0)

	if out.Count() != 1 || !out.At(2, 2) {
		t.Error("empty element should copy the mask")
	}
}

func TestErodeInner(t *testing.T) {
	m := fullMask(5, 5)

	out := erodeInner(m)

	if out.Count() != 9 {
		t.Errorf("got %d set pixels, want 9 (3x3 interior)", out.Count())
	}
	if out.At(0, 2) || out.At(4, 4) {
		t.Error("border pixels should be cleared")
	}
}
