package signature

import (
	"image"
	"math"

	"github.com/ironsheep/sigfind/internal/contour"
	"github.com/ironsheep/sigfind/internal/raster"
)

// Box is an axis-aligned bounding box in pixel units. X is the column and Y the
// row. MinX <= MaxX and MinY <= MaxY for any box built from a non-empty contour.
type Box struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// BoundingBox returns the box of c's extreme coordinates, truncated to integers.
func BoundingBox(c contour.Contour) Box {
	lo, hi := c.Extent()
	return Box{
		MinX: int(lo.Col),
		MinY: int(lo.Row),
		MaxX: int(hi.Col),
		MaxY: int(hi.Row),
	}
}

// BoundingBoxes returns one box per contour, in the same order.
func BoundingBoxes(cs []contour.Contour) []Box {
	boxes := make([]Box, len(cs))
	for i, c := range cs {
		boxes[i] = BoundingBox(c)
	}
	return boxes
}

// Width is MaxX - MinX.
func (b Box) Width() int { return b.MaxX - b.MinX }

// Height is MaxY - MinY.
func (b Box) Height() int { return b.MaxY - b.MinY }

// Rect converts the box to a half-open image.Rectangle, Min inclusive and Max
// exclusive. The result is not canonicalized.
func (b Box) Rect() image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(b.MinX, b.MinY),
		Max: image.Pt(b.MaxX, b.MaxY),
	}
}

// Region is the half-open rectangle covering every pixel of the box, including
// row MaxY and column MaxX.
func (b Box) Region() image.Rectangle {
	return image.Rect(b.MinX, b.MinY, b.MaxX+1, b.MaxY+1)
}

// Mask returns a width × height mask set on rows [MinY, MaxY) and columns
// [MinX, MaxX).
func (b Box) Mask(width, height int) *raster.Mask {
	return raster.RectMask(width, height, b.Rect())
}

// Contains reports whether the pixel holding p lies within the box, bounds
// inclusive.
func (b Box) Contains(p contour.Point) bool {
	x := int(math.Floor(p.Col))
	y := int(math.Floor(p.Row))
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}
