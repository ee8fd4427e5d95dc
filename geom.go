package pathkit

import "math"

// Scalar geometry queries over raw point sequences: hit-testing
// distance, polygon containment, and segment projection.

// DistanceToPath returns the minimum Euclidean distance from p to any
// segment of the open polyline. Polylines with fewer than 2 points have
// no geometry and return +Inf.
func DistanceToPath(p Point, polyline []Point) float64 {
	if len(polyline) < 2 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	for i := 0; i < len(polyline)-1; i++ {
		d := pointSegmentDistance(p, polyline[i], polyline[i+1])
		if d < best {
			best = d
		}
	}
	return best
}

// pointSegmentDistance returns the distance from p to the segment ab.
func pointSegmentDistance(p, a, b Point) float64 {
	return p.Distance(projectOnSegment(p, a, b))
}

// projectOnSegment returns the point on segment ab closest to p.
func projectOnSegment(p, a, b Point) Point {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Mul(t))
}

// PointInPolygon reports whether p lies inside the polygon using the
// standard ray-casting parity test. The polygon is implicitly closed.
// Points exactly on an edge follow the half-open edge rule: consistent,
// but whether they count as inside is not specified.
func PointInPolygon(p Point, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}
	inside := false
	j := len(polygon) - 1
	for i := 0; i < len(polygon); i++ {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			xCross := (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y) + pi.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// signedArea returns twice the signed area of the polygon via the
// shoelace formula. Positive means counter-clockwise in a y-up frame.
func signedArea(polygon []Point) float64 {
	var sum float64
	n := len(polygon)
	for i := 0; i < n; i++ {
		p := polygon[i]
		q := polygon[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// translatePoints returns a copy of points shifted by v.
func translatePoints(points []Point, v Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Add(v)
	}
	return out
}
