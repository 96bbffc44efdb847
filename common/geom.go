package common

import "github.com/jakecoffman/cp"

// Rectangles are cp.BB values in screen space: L/B is the top-left corner and
// R/T the bottom-right, so B < T even though y grows downward.

// RectBB builds a bounding box from a top-left corner and a size.
func RectBB(x, y, w, h float64) cp.BB {
	return cp.BB{L: x, B: y, R: x + w, T: y + h}
}

// Direction returns the unit vector from 'from' toward 'to' and the distance
// between them. ok is false when the two points coincide.
func Direction(from, to cp.Vector) (dir cp.Vector, dist float64, ok bool) {
	d := to.Sub(from)
	dist = d.Length()
	if dist <= 1e-9 {
		return cp.Vector{}, 0, false
	}
	return d.Mult(1 / dist), dist, true
}

// CircleIntersectsBB reports whether the circle overlaps the box, using the
// nearest point of the box to the circle center.
func CircleIntersectsBB(center cp.Vector, radius float64, bb cp.BB) bool {
	nx := Clamp(center.X, bb.L, bb.R)
	ny := Clamp(center.Y, bb.B, bb.T)
	dx := center.X - nx
	dy := center.Y - ny
	return dx*dx+dy*dy < radius*radius
}

// CirclesOverlap reports whether two circles' centers are closer than the sum
// of their radii.
func CirclesOverlap(a cp.Vector, ra float64, b cp.Vector, rb float64) bool {
	return a.Distance(b) < ra+rb
}

// OutsideBounds reports whether p lies more than margin beyond any edge of a
// width x height playfield anchored at the origin.
func OutsideBounds(p cp.Vector, width, height, margin float64) bool {
	return p.X < -margin || p.X > width+margin || p.Y < -margin || p.Y > height+margin
}
