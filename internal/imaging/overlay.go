package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Mark is one annotated shape on an overlay: a polyline, its box and a label.
// Coordinates are in the source page's space.
type Mark struct {
	Points []image.Point
	Box    image.Rectangle
	Label  string
}

// labelHeight is the ascent of basicfont.Face7x13 in pixels.
const labelHeight = 11

// RenderOverlay draws marks over a grayscale copy of page. Every mark gets its own
// palette colour; the result always starts at (0,0).
func RenderOverlay(page image.Image, marks []Mark) *image.NRGBA {
	dst := imaging.Grayscale(page)
	offset := page.Bounds().Min

	palette := colorful.FastHappyPalette(len(marks))
	for i, m := range marks {
		c := toNRGBA(palette[i])

		for j := 1; j < len(m.Points); j++ {
			drawLine(dst, m.Points[j-1].Sub(offset), m.Points[j].Sub(offset), c)
		}
		if len(m.Points) == 1 {
			setSafe(dst, m.Points[0].Sub(offset), c)
		}

		box := m.Box.Sub(offset)
		if !box.Empty() {
			drawRect(dst, box, c)
		}
		if m.Label != "" {
			drawLabel(dst, box.Min, m.Label, c)
		}
	}
	return dst
}

// SaveOverlay writes img to path as PNG.
func SaveOverlay(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save overlay %s: %w", path, err)
	}
	return nil
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func setSafe(img *image.NRGBA, p image.Point, c color.NRGBA) {
	if p.In(img.Bounds()) {
		img.SetNRGBA(p.X, p.Y, c)
	}
}

// drawLine plots a Bresenham line between a and b inclusive.
func drawLine(img *image.NRGBA, a, b image.Point, c color.NRGBA) {
	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	err := dx + dy
	for {
		setSafe(img, a, c)
		if a == b {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			a.X += sx
		}
		if e2 <= dx {
			err += dx
			a.Y += sy
		}
	}
}

// drawRect outlines r. Max is treated as inclusive so the outline sits on the
// box's last row and column.
func drawRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	tl := r.Min
	tr := image.Pt(r.Max.X, r.Min.Y)
	br := r.Max
	bl := image.Pt(r.Min.X, r.Max.Y)
	drawLine(img, tl, tr, c)
	drawLine(img, tr, br, c)
	drawLine(img, br, bl, c)
	drawLine(img, bl, tl, c)
}

// drawLabel writes text just above at, or just inside when there is no room.
func drawLabel(img *image.NRGBA, at image.Point, text string, c color.NRGBA) {
	y := at.Y - 2
	if y < labelHeight {
		y = at.Y + labelHeight + 2
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(at.X + 2), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
