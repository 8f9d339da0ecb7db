package contour

import (
	"image"
	"math"
)

// Point is a contour vertex in (row, column) pixel coordinates.
type Point struct {
	Row float64 `json:"row"`
	Col float64 `json:"col"`
}

// Contour is an ordered sequence of points tracing one iso-level boundary.
type Contour []Point

// Len returns the number of points, counting the repeated end point of a closed contour.
func (c Contour) Len() int {
	return len(c)
}

// Closed reports whether the contour ends where it starts.
func (c Contour) Closed() bool {
	return len(c) > 1 && c[0] == c[len(c)-1]
}

// Rows returns the row coordinate of every point.
func (c Contour) Rows() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Row
	}
	return out
}

// Cols returns the column coordinate of every point.
func (c Contour) Cols() []float64 {
	out := make([]float64, len(c))
	for i, p := range c {
		out[i] = p.Col
	}
	return out
}

// Extent returns the minimum and maximum corners of the contour as (row, col)
// points. An empty contour returns two zero points.
func (c Contour) Extent() (lo, hi Point) {
	if len(c) == 0 {
		return Point{}, Point{}
	}
	lo = Point{Row: math.Inf(1), Col: math.Inf(1)}
	hi = Point{Row: math.Inf(-1), Col: math.Inf(-1)}
	for _, p := range c {
		lo.Row = math.Min(lo.Row, p.Row)
		lo.Col = math.Min(lo.Col, p.Col)
		hi.Row = math.Max(hi.Row, p.Row)
		hi.Col = math.Max(hi.Col, p.Col)
	}
	return lo, hi
}

// ImagePoints rounds every point down to the pixel that contains it, as
// image.Point values (X = column, Y = row). Used for drawing.
func (c Contour) ImagePoints() []image.Point {
	out := make([]image.Point, len(c))
	for i, p := range c {
		out[i] = image.Pt(int(math.Floor(p.Col)), int(math.Floor(p.Row)))
	}
	return out
}
