package pathkit

import "sort"

// Arc-length parameterization of curve descriptions. The kernel asks a
// rendering collaborator for total length and point-at-length queries;
// the collaborator is abstracted as [Measurer] so that baking and SVG
// import can run against the built-in [FlattenMeasure], a synthetic
// sampler in tests, or a host rendering surface.

// PathMeasure answers arc-length queries over a single curve
// description: its total length and the point at any distance along it.
type PathMeasure interface {
	// Length returns the total arc length of the curve.
	Length() float64

	// PointAtLength returns the point at the given arc-length distance.
	// Distances are clamped to [0, Length].
	PointAtLength(dist float64) Point
}

// Measurer produces a PathMeasure for a curve description. This is the
// injected rendering-collaborator contract: implementations may measure
// analytically, by flattening, or by querying a real render surface.
type Measurer interface {
	Measure(p *Path) PathMeasure
}

// FlattenMeasure is the default Measurer. It flattens curves into line
// segments by adaptive subdivision and builds a cumulative-length
// table, answering PointAtLength with binary search plus linear
// interpolation.
type FlattenMeasure struct {
	// Tolerance is the maximum distance from the true curve allowed
	// during flattening. Zero means the default of 0.1.
	Tolerance float64
}

// Measure implements the Measurer interface.
func (fm FlattenMeasure) Measure(p *Path) PathMeasure {
	tol := fm.Tolerance
	if tol <= 0 {
		tol = 0.1
	}
	pts := flattenPath(p, tol)
	return newPolylineMeasure(pts)
}

// polylineMeasure is a PathMeasure over a concrete polyline.
type polylineMeasure struct {
	points []Point
	cumLen []float64 // cumLen[i] is the arc length up to points[i]
}

// newPolylineMeasure builds the cumulative-length table for a polyline.
func newPolylineMeasure(points []Point) *polylineMeasure {
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + points[i-1].Distance(points[i])
	}
	return &polylineMeasure{points: points, cumLen: cum}
}

func (m *polylineMeasure) Length() float64 {
	if len(m.cumLen) == 0 {
		return 0
	}
	return m.cumLen[len(m.cumLen)-1]
}

func (m *polylineMeasure) PointAtLength(dist float64) Point {
	if len(m.points) == 0 {
		return Point{}
	}
	if len(m.points) == 1 || dist <= 0 {
		return m.points[0]
	}
	total := m.Length()
	if dist >= total {
		return m.points[len(m.points)-1]
	}
	// First index with cumLen >= dist; i >= 1 since dist > 0.
	i := sort.SearchFloat64s(m.cumLen, dist)
	segLen := m.cumLen[i] - m.cumLen[i-1]
	if segLen == 0 {
		return m.points[i]
	}
	t := (dist - m.cumLen[i-1]) / segLen
	return m.points[i-1].Lerp(m.points[i], t)
}

// flattenPath converts all curves to line segments within the given
// tolerance (maximum distance from the curve).
func flattenPath(p *Path, tolerance float64) []Point {
	if p == nil || len(p.elements) == 0 {
		return nil
	}
	points := make([]Point, 0, len(p.elements)*4)
	emit := func(pt Point) { points = append(points, pt) }

	var current, start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			emit(e.Point)
			start = e.Point
			current = e.Point
		case LineTo:
			emit(e.Point)
			current = e.Point
		case QuadTo:
			flattenQuad(NewQuadBez(current, e.Control, e.Point), tolerance*tolerance, emit)
			current = e.Point
		case CubicTo:
			flattenCubic(NewCubicBez(current, e.Control1, e.Control2, e.Point), tolerance*tolerance, emit)
			current = e.Point
		case Close:
			if current != start {
				emit(start)
			}
			current = start
		}
	}
	return points
}

// flattenQuad recursively subdivides the quadratic until the control
// point is within tolerance of the chord midpoint.
func flattenQuad(q QuadBez, toleranceSq float64, emit func(Point)) {
	mid := q.P0.Lerp(q.P2, 0.5)
	if q.P1.Sub(mid).LengthSquared() <= toleranceSq {
		emit(q.P2)
		return
	}
	q1, q2 := q.Subdivide()
	flattenQuad(q1, toleranceSq, emit)
	flattenQuad(q2, toleranceSq, emit)
}

// flattenCubic recursively subdivides the cubic using the standard
// control-polygon flatness metric.
func flattenCubic(c CubicBez, toleranceSq float64, emit func(Point)) {
	if cubicFlatness(c) <= toleranceSq*16 {
		emit(c.P3)
		return
	}
	c1, c2 := c.Subdivide()
	flattenCubic(c1, toleranceSq, emit)
	flattenCubic(c2, toleranceSq, emit)
}

// cubicFlatness returns the squared max deviation of the control points
// from the chord, scaled per the standard flatness test.
func cubicFlatness(c CubicBez) float64 {
	u := c.P1.Mul(3).Sub(c.P0.Mul(2)).Sub(c.P3)
	v := c.P2.Mul(3).Sub(c.P3.Mul(2)).Sub(c.P0)
	ux := max(u.X*u.X, v.X*v.X)
	uy := max(u.Y*u.Y, v.Y*v.Y)
	return ux + uy
}
