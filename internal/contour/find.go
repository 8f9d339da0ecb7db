package contour

import "github.com/ironsheep/sigfind/internal/raster"

// segment is one directed piece of a contour inside a single cell.
type segment struct {
	from, to Point
}

// Find returns all contours of g at the given level.
func Find(g *raster.Grid, level float64) []Contour {
	return assemble(squares(g, level))
}

// squares runs marching squares over every 2×2 cell and returns the segments in
// scan order. Segment direction keeps high values on a consistent side, which is
// what lets assemble chain them head to tail.
func squares(g *raster.Grid, level float64) []segment {
	var segs []segment
	w := g.Width
	for r0 := 0; r0 < g.Height-1; r0++ {
		r1 := r0 + 1
		for c0 := 0; c0 < w-1; c0++ {
			c1 := c0 + 1
			ul := g.Pix[r0*w+c0]
			ur := g.Pix[r0*w+c1]
			ll := g.Pix[r1*w+c0]
			lr := g.Pix[r1*w+c1]

			cell := 0
			if ul > level {
				cell |= 1
			}
			if ur > level {
				cell |= 2
			}
			if ll > level {
				cell |= 4
			}
			if lr > level {
				cell |= 8
			}
			if cell == 0 || cell == 15 {
				continue
			}

			r0f, r1f := float64(r0), float64(r1)
			c0f, c1f := float64(c0), float64(c1)
			top := Point{Row: r0f, Col: c0f + fraction(ul, ur, level)}
			bottom := Point{Row: r1f, Col: c0f + fraction(ll, lr, level)}
			left := Point{Row: r0f + fraction(ul, ll, level), Col: c0f}
			right := Point{Row: r0f + fraction(ur, lr, level), Col: c1f}

			switch cell {
			case 1:
				segs = append(segs, segment{top, left})
			case 2:
				segs = append(segs, segment{right, top})
			case 3:
				segs = append(segs, segment{right, left})
			case 4:
				segs = append(segs, segment{left, bottom})
			case 5:
				segs = append(segs, segment{top, bottom})
			case 6:
				segs = append(segs, segment{right, top}, segment{left, bottom})
			case 7:
				segs = append(segs, segment{right, bottom})
			case 8:
				segs = append(segs, segment{bottom, right})
			case 9:
				segs = append(segs, segment{top, left}, segment{bottom, right})
			case 10:
				segs = append(segs, segment{bottom, top})
			case 11:
				segs = append(segs, segment{bottom, left})
			case 12:
				segs = append(segs, segment{left, right})
			case 13:
				segs = append(segs, segment{top, right})
			case 14:
				segs = append(segs, segment{left, top})
			}
		}
	}
	return segs
}

// fraction is the position of level between from and to, as a share of the
// distance from the from vertex.
func fraction(from, to, level float64) float64 {
	if to == from {
		return 0
	}
	return (level - from) / (to - from)
}

// chain is a contour under construction. id orders contours by creation.
type chain struct {
	id     int
	points []Point
}

// assemble joins segments sharing end points into contours. Adjacent cells compute
// shared edge points from the same two pixel values, so exact equality is a safe
// join key. When two chains meet, the one created later is merged into the earlier
// one so the output keeps creation order.
func assemble(segs []segment) []Contour {
	starts := make(map[Point]*chain)
	ends := make(map[Point]*chain)
	var chains []*chain
	live := make(map[int]bool)

	for _, s := range segs {
		if s.from == s.to {
			continue
		}

		tail, hasTail := starts[s.to]
		if hasTail {
			delete(starts, s.to)
		}
		head, hasHead := ends[s.from]
		if hasHead {
			delete(ends, s.from)
		}

		switch {
		case hasTail && hasHead:
			if tail == head {
				// closes the loop
				head.points = append(head.points, s.to)
				continue
			}
			if tail.id > head.id {
				head.points = append(head.points, tail.points...)
				live[tail.id] = false
				starts[head.points[0]] = head
				ends[head.points[len(head.points)-1]] = head
			} else {
				joined := make([]Point, 0, len(head.points)+len(tail.points))
				joined = append(joined, head.points...)
				joined = append(joined, tail.points...)
				if starts[head.points[0]] == head {
					delete(starts, head.points[0])
				}
				tail.points = joined
				live[head.id] = false
				starts[tail.points[0]] = tail
				ends[tail.points[len(tail.points)-1]] = tail
			}

		case !hasTail && !hasHead:
			c := &chain{id: len(chains), points: []Point{s.from, s.to}}
			chains = append(chains, c)
			live[c.id] = true
			starts[s.from] = c
			ends[s.to] = c

		case hasTail:
			tail.points = append([]Point{s.from}, tail.points...)
			starts[s.from] = tail

		default:
			head.points = append(head.points, s.to)
			ends[s.to] = head
		}
	}

	out := make([]Contour, 0, len(chains))
	for _, c := range chains {
		if live[c.id] {
			out = append(out, Contour(c.points))
		}
	}
	return out
}
