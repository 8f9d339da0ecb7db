package raster

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// Grid is a width × height image of float64 intensities stored row by row.
type Grid struct {
	Width  int
	Height int
	Pix    []float64
}

// NewGrid returns a zero-filled grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]float64, width*height),
	}
}

// At returns the intensity at column x, row y.
func (g *Grid) At(x, y int) float64 {
	return g.Pix[y*g.Width+x]
}

// Set stores v at column x, row y.
func (g *Grid) Set(x, y int, v float64) {
	g.Pix[y*g.Width+x] = v
}

// FromImage converts an image to a grayscale grid with intensities in [0,1].
//
// Color images are reduced to luminance with bild's weighted grayscale conversion,
// which returns RGBA with equal channels; the red channel is scaled from 8-bit to
// the unit interval. The grid origin is the image's Bounds().Min.
func FromImage(img image.Image) *Grid {
	gray := effect.Grayscale(img)
	b := gray.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Pix[y*g.Width+x] = float64(gray.RGBAAt(b.Min.X+x, b.Min.Y+y).R) / 255.0
		}
	}
	return g
}

// Mask is a width × height boolean image stored row by row.
type Mask struct {
	Width  int
	Height int
	Bits   []bool
}

// NewMask returns an all-false mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Bits:   make([]bool, width*height),
	}
}

// At reports whether the pixel at column x, row y is set.
func (m *Mask) At(x, y int) bool {
	return m.Bits[y*m.Width+x]
}

// Set assigns the pixel at column x, row y.
func (m *Mask) Set(x, y int, v bool) {
	m.Bits[y*m.Width+x] = v
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.Bits {
		if b {
			n++
		}
	}
	return n
}

// Grid converts the mask to a grid holding 1 for set pixels and 0 elsewhere.
func (m *Mask) Grid() *Grid {
	g := NewGrid(m.Width, m.Height)
	for i, b := range m.Bits {
		if b {
			g.Pix[i] = 1
		}
	}
	return g
}

// Threshold marks every pixel whose intensity is strictly greater than level.
func Threshold(g *Grid, level float64) *Mask {
	m := NewMask(g.Width, g.Height)
	for i, v := range g.Pix {
		m.Bits[i] = v > level
	}
	return m
}

// RectMask returns a mask that is set exactly inside r, clipped to the mask size.
// r follows image.Rectangle semantics: Min inclusive, Max exclusive.
func RectMask(width, height int, r image.Rectangle) *Mask {
	m := NewMask(width, height)
	r = r.Intersect(image.Rect(0, 0, width, height))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Bits[y*width+x] = true
		}
	}
	return m
}
