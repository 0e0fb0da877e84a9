package guistate

import (
	"math"
	"slices"
)

// SortClockwise orders the corners of a simple quadrilateral clockwise as
// seen on screen.
//
// Each point is ranked by atan2 of its offset from the centroid, largest
// angle first. With Y pointing down this is clockwise. Co-angular points
// (duplicates) keep their input order. Any input that is not exactly four
// points is returned as is.
//
// The input slice is never modified.
func SortClockwise(points []Point) []Point {
	if len(points) != 4 {
		return points
	}

	var c Point
	for _, p := range points {
		c = c.Add(p)
	}
	c = c.Mul(1 / float64(len(points)))

	type ranked struct {
		p     Point
		angle float64
	}
	rs := make([]ranked, len(points))
	for i, p := range points {
		d := p.Sub(c)
		rs[i] = ranked{p: p, angle: math.Atan2(d.Y, d.X)}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int {
		switch {
		case a.angle > b.angle:
			return -1
		case a.angle < b.angle:
			return 1
		default:
			return 0
		}
	})

	out := make([]Point, len(rs))
	for i, r := range rs {
		out[i] = r.p
	}
	return out
}
