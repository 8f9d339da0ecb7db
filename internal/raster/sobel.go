package raster

import "math"

// Sobel kernels scaled so that a unit step produces a response of 1.
var (
	sobelH = [3][3]float64{
		{0.25, 0.5, 0.25},
		{0, 0, 0},
		{-0.25, -0.5, -0.25},
	}
	sobelV = [3][3]float64{
		{0.25, 0, -0.25},
		{0.5, 0, -0.5},
		{0.25, 0, -0.25},
	}
)

// Sobel returns the edge magnitude of g restricted to mask.
//
// The magnitude is sqrt(H² + V²) / sqrt(2), where H and V are the horizontal- and
// vertical-edge responses of the quarter-weighted Sobel kernels. Pixels beyond the
// image edge are replicated, which for a 3×3 kernel matches reflection.
//
// When mask is non-nil it is first shrunk by one pixel (3×3 erosion, image border
// counted as outside) and every pixel outside the shrunk mask is zero, so the mask
// boundary itself never produces an edge. A nil mask zeroes only the image border.
func Sobel(g *Grid, mask *Mask) *Grid {
	w, h := g.Width, g.Height
	out := NewGrid(w, h)

	var inner *Mask
	if mask != nil {
		inner = erodeInner(mask)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if inner != nil {
				if !inner.Bits[y*w+x] {
					continue
				}
			} else if x == 0 || y == 0 || x == w-1 || y == h-1 {
				continue
			}

			var gh, gv float64
			for ky := -1; ky <= 1; ky++ {
				py := clamp(y+ky, 0, h-1)
				for kx := -1; kx <= 1; kx++ {
					px := clamp(x+kx, 0, w-1)
					v := g.Pix[py*w+px]
					gh += v * sobelH[ky+1][kx+1]
					gv += v * sobelV[ky+1][kx+1]
				}
			}
			out.Pix[y*w+x] = math.Sqrt(gh*gh+gv*gv) / math.Sqrt2
		}
	}
	return out
}

// clamp constrains an integer value to the range [lo, hi].
// Used for boundary handling in convolution operations.
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
