package signature

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/sigfind/internal/contour"
	"github.com/ironsheep/sigfind/internal/raster"
)

// createPage creates a white grayscale page
func createPage(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	return img
}

// fillInk paints black ink on rows [r0,r1] and columns [c0,c1] inclusive
func fillInk(img *image.Gray, r0, c0, r1, c1 int) {
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			img.SetGray(x, y, color.Gray{Y: 0})
		}
	}
}

// clearInk paints paper back on rows [r0,r1] and columns [c0,c1] inclusive
func clearInk(img *image.Gray, r0, c0, r1, c1 int) {
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
}

// createSyntheticDocument lays out a page with:
//   - a solid ink block at rows 50..109, columns 50..109 (the signature)
//   - a hollow ink block at rows 50..109, columns 250..369 with a 28×80 hole
//   - two thin text-like strips at rows 200..203
//
// After grouping, the two tall blocks outrank the strips on gradient profile; the
// hollow block then has four edge contours against the solid block's two, so only
// the solid block survives and its outer edge contour is the single result.
func createSyntheticDocument() *image.Gray {
	img := createPage(420, 300)
	fillInk(img, 50, 50, 109, 109)
	fillInk(img, 50, 250, 109, 369)
	clearInk(img, 66, 270, 93, 349)
	fillInk(img, 200, 50, 203, 149)
	fillInk(img, 200, 250, 203, 349)
	return img
}

// newTestDetector returns a detector with default config
func newTestDetector(t *testing.T) *Detector {
	t.Helper()
	d, err := NewDetector(DefaultConfig())
	if err != nil {
		t.Fatalf("NewDetector failed: %v", err)
	}
	return d
}

// rectContour builds a closed rectangular contour walking the border of rows
// [r0,r1] and columns [c0,c1] one unit at a time
func rectContour(r0, c0, r1, c1 float64) contour.Contour {
	var c contour.Contour
	for x := c0; x < c1; x++ {
		c = append(c, contour.Point{Row: r0, Col: x})
	}
	for y := r0; y < r1; y++ {
		c = append(c, contour.Point{Row: y, Col: c1})
	}
	for x := c1; x > c0; x-- {
		c = append(c, contour.Point{Row: r1, Col: x})
	}
	for y := r1; y > r0; y-- {
		c = append(c, contour.Point{Row: y, Col: c0})
	}
	return append(c, c[0])
}

// binaryGrid converts an ink page into the binarized grid used by block analysis
func binaryGrid(img *image.Gray) *raster.Grid {
	return raster.Threshold(raster.FromImage(img), DefaultBinarizeThreshold).Grid()
}
