package signature

import (
	"image"
	"math/rand"
	"testing"

	"github.com/ironsheep/sigfind/internal/contour"
)

func TestBoundingBox_Truncates(t *testing.T) {
	c := contour.Contour{
		{Row: 1.9, Col: 2.7},
		{Row: 5.2, Col: 0.4},
		{Row: 3.0, Col: 1.0},
	}

	got := BoundingBox(c)

	want := Box{MinX: 0, MinY: 1, MaxX: 2, MaxY: 5}
	if got != want {
		t.Errorf("BoundingBox: got %+v, want %+v", got, want)
	}
	if got.Width() != 2 || got.Height() != 4 {
		t.Errorf("size: got %dx%d, want 2x4", got.Width(), got.Height())
	}
}

func TestBoundingBoxes_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	contours := make([]contour.Contour, 25)
	for i := range contours {
		n := 1 + rng.Intn(300)
		c := make(contour.Contour, n)
		for j := range c {
			c[j] = contour.Point{Row: rng.Float64() * 500, Col: rng.Float64() * 800}
		}
		contours[i] = c
	}

	boxes := BoundingBoxes(contours)

	if len(boxes) != len(contours) {
		t.Fatalf("got %d boxes for %d contours", len(boxes), len(contours))
	}
	for i, b := range boxes {
		if b.MinX > b.MaxX || b.MinY > b.MaxY {
			t.Errorf("box %d violates min <= max: %+v", i, b)
		}
		for _, p := range contours[i] {
			if !b.Contains(p) {
				t.Errorf("box %d %+v does not contain point %+v", i, b, p)
				break
			}
		}
	}
}

func TestBoundingBoxes_Empty(t *testing.T) {
	if got := BoundingBoxes(nil); len(got) != 0 {
		t.Errorf("got %d boxes, want 0", len(got))
	}
}

func TestBoxMask(t *testing.T) {
	b := Box{MinX: 2, MinY: 3, MaxX: 5, MaxY: 7}

	m := b.Mask(10, 10)

	if m.Count() != 12 {
		t.Errorf("Count: got %d, want 12", m.Count())
	}
	if !m.At(2, 3) || !m.At(4, 6) {
		t.Error("mask should include rows [3,7) and columns [2,5)")
	}
	if m.At(5, 3) || m.At(2, 7) {
		t.Error("mask should exclude MaxX and MaxY")
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{MinX: 2, MinY: 3, MaxX: 5, MaxY: 7}

	tests := []struct {
		p    contour.Point
		want bool
	}{
		{contour.Point{Row: 3, Col: 2}, true},
		{contour.Point{Row: 7.9, Col: 5.9}, true},
		{contour.Point{Row: 8, Col: 4}, false},
		{contour.Point{Row: 4, Col: 1.99}, false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%+v): got %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestBoxRegion(t *testing.T) {
	b := Box{MinX: 2, MinY: 3, MaxX: 5, MaxY: 7}

	r := b.Region()

	if r.Dx() != 4 || r.Dy() != 5 {
		t.Errorf("Region size: got %dx%d, want 4x5", r.Dx(), r.Dy())
	}
	if !image.Pt(5, 7).In(r) || image.Pt(6, 7).In(r) {
		t.Errorf("Region %v should cover the box's extreme pixels only", r)
	}
}
