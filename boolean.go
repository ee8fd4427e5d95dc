package pathkit

import (
	"fmt"
	"sort"
	"time"
)

// Boolean engine: union, subtraction, and intersection of two closed
// paths via polygon clipping.
//
// Intersection uses Sutherland-Hodgman clipping, which is exact when
// the clip polygon is convex. Subtraction clips against the reversed
// clip polygon and shares the same convex-clip caveat. Union is the
// convex hull of the combined vertex set, a documented approximation:
// concave or disjoint inputs do not produce a true union.

// BoolOp selects the boolean operation.
type BoolOp int

const (
	// OpUnion combines both shapes (convex-hull approximation).
	OpUnion BoolOp = iota

	// OpSubtract removes b from a (exact for convex b).
	OpSubtract

	// OpIntersect keeps the overlap of a and b (exact for convex b).
	OpIntersect
)

// String returns the operation name used in derived ids.
func (op BoolOp) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpSubtract:
		return "subtract"
	case OpIntersect:
		return "intersect"
	}
	return "unknown"
}

// closeEps is the endpoint gap below which a polygon counts as closed.
const closeEps = 0.001

// BooleanOp combines the closed shapes a and b. Both inputs are baked
// if necessary, auto-closed, and normalized to counter-clockwise
// winding before clipping. The result inherits a's rendering attributes
// under a fresh derived id. ok is false when the result degenerates to
// fewer than 3 vertices.
func BooleanOp(a, b PathData, op BoolOp) (result PathData, ok bool) {
	pa := normalizedPolygon(a)
	pb := normalizedPolygon(b)
	if len(pa) < 3 || len(pb) < 3 {
		return PathData{}, false
	}

	var merged []Point
	switch op {
	case OpIntersect:
		merged = sutherlandHodgman(pa, pb)
	case OpSubtract:
		merged = sutherlandHodgman(pa, reversePoints(pb))
	case OpUnion:
		merged = convexHull(append(append([]Point{}, pa...), pb...))
	default:
		return PathData{}, false
	}
	if len(merged) < 3 {
		return PathData{}, false
	}

	out := a.cloneWithID(fmt.Sprintf("%s-%s-%s-%d", a.ID, op, b.ID, time.Now().UnixMilli()))
	out.Points = closePolygon(merged)
	out.Smoothing = 0
	return out, true
}

// normalizedPolygon bakes, closes, and CCW-orients the path's points.
// The returned ring does not repeat the first point.
func normalizedPolygon(pd PathData) []Point {
	baked := Bake(pd)
	pts := baked.Points
	if len(pts) < 3 {
		return nil
	}
	// Drop an explicit closing point.
	if pts[0].Distance(pts[len(pts)-1]) <= closeEps {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 3 {
		return nil
	}
	out := make([]Point, len(pts))
	copy(out, pts)
	if signedArea(out) < 0 {
		out = reversePoints(out)
	}
	return out
}

// closePolygon appends the first point when the ring is open by more
// than closeEps.
func closePolygon(pts []Point) []Point {
	if len(pts) == 0 {
		return pts
	}
	if pts[0].Distance(pts[len(pts)-1]) > closeEps {
		pts = append(pts, pts[0])
	}
	return pts
}

// reversePoints returns the ring in opposite winding.
func reversePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// sutherlandHodgman clips the subject polygon against each directed
// edge of the clip polygon, retaining vertices on the left of the edge
// and inserting edge intersections at entry and exit.
func sutherlandHodgman(subject, clip []Point) []Point {
	output := subject
	n := len(clip)
	for i := 0; i < n && len(output) > 0; i++ {
		a := clip[i]
		b := clip[(i+1)%n]
		input := output
		output = nil
		for j := 0; j < len(input); j++ {
			cur := input[j]
			prev := input[(j+len(input)-1)%len(input)]
			curIn := leftOfEdge(a, b, cur)
			prevIn := leftOfEdge(a, b, prev)
			switch {
			case curIn && prevIn:
				output = append(output, cur)
			case curIn && !prevIn:
				output = append(output, lineIntersection(prev, cur, a, b), cur)
			case !curIn && prevIn:
				output = append(output, lineIntersection(prev, cur, a, b))
			}
		}
	}
	return output
}

// leftOfEdge reports whether p lies on the left of (or on) the directed
// edge a->b. For a CCW polygon the interior is on the left.
func leftOfEdge(a, b, p Point) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= 0
}

// lineIntersection returns the intersection of lines p1p2 and p3p4.
// Callers only invoke it when the segments straddle, so the
// denominator is nonzero up to rounding; a parallel fallback returns
// the segment midpoint.
func lineIntersection(p1, p2, p3, p4 Point) Point {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.Cross(d2)
	if denom == 0 {
		return p1.Midpoint(p2)
	}
	t := p3.Sub(p1).Cross(d2) / denom
	return p1.Add(d1.Mul(t))
}

// convexHull returns the convex hull of the point set via Graham scan:
// pivot at the lowest point, sort the rest by polar angle, then build
// the hull with a monotone stack.
func convexHull(pts []Point) []Point {
	if len(pts) < 3 {
		return pts
	}
	// Lowest point (leftmost on ties) as pivot.
	pivot := 0
	for i, p := range pts {
		if p.Y < pts[pivot].Y || (p.Y == pts[pivot].Y && p.X < pts[pivot].X) {
			pivot = i
		}
	}
	pts[0], pts[pivot] = pts[pivot], pts[0]
	p0 := pts[0]

	rest := pts[1:]
	sort.Slice(rest, func(i, j int) bool {
		cross := rest[i].Sub(p0).Cross(rest[j].Sub(p0))
		if cross != 0 {
			return cross > 0
		}
		return rest[i].DistanceSquared(p0) < rest[j].DistanceSquared(p0)
	})

	hull := []Point{p0}
	for _, p := range rest {
		for len(hull) > 1 && hull[len(hull)-1].Sub(hull[len(hull)-2]).Cross(p.Sub(hull[len(hull)-1])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}
