package raster

// ErodeRect performs binary erosion of m with an all-ones structuring element of
// height rows and width columns.
//
// A pixel stays set only if every pixel under the element is set. The element is
// anchored like a centered convolution: height/2 rows below the pixel and
// height-1-height/2 above, so an even element reaches one row further down.
// Columns follow the same rule. Pixels outside the image count as set, so
// foreground touching the image border is not eroded by the border itself.
//
// The window test uses an integral image of unset pixels, so the cost does not
// depend on the element size.
func ErodeRect(m *Mask, height, width int) *Mask {
	w, h := m.Width, m.Height
	out := NewMask(w, h)
	if height <= 0 || width <= 0 {
		copy(out.Bits, m.Bits)
		return out
	}

	// holes[(y+1)*(w+1)+(x+1)] counts unset pixels in rows [0,y] and columns [0,x].
	stride := w + 1
	holes := make([]int, stride*(h+1))
	for y := 0; y < h; y++ {
		run := 0
		for x := 0; x < w; x++ {
			if !m.Bits[y*w+x] {
				run++
			}
			holes[(y+1)*stride+x+1] = holes[y*stride+x+1] + run
		}
	}

	down, right := height/2, width/2
	up, left := height-1-down, width-1-right

	for y := 0; y < h; y++ {
		y0 := max(y-up, 0)
		y1 := min(y+down, h-1) + 1
		for x := 0; x < w; x++ {
			if !m.Bits[y*w+x] {
				continue
			}
			x0 := max(x-left, 0)
			x1 := min(x+right, w-1) + 1
			n := holes[y1*stride+x1] - holes[y0*stride+x1] - holes[y1*stride+x0] + holes[y0*stride+x0]
			out.Bits[y*w+x] = n == 0
		}
	}
	return out
}

// erodeInner shrinks m by one pixel with a 3×3 element, treating everything
// outside the image as unset. Pixels on the image border are always cleared.
func erodeInner(m *Mask) *Mask {
	w, h := m.Width, m.Height
	out := NewMask(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			keep := true
			for ky := -1; ky <= 1 && keep; ky++ {
				for kx := -1; kx <= 1 && keep; kx++ {
					keep = m.Bits[(y+ky)*w+x+kx]
				}
			}
			out.Bits[y*w+x] = keep
		}
	}
	return out
}
