package pathkit

// Eraser engine: subtracts a circular region from a path, producing
// zero or more surviving polylines.

// Erase removes the part of pd covered by the circle at center with the
// given radius. It returns:
//
//   - 0 paths if the circle swallows the path entirely,
//   - 1 path if the path is touched but not split,
//   - more if the circle bisects the path.
//
// Text paths and paths whose padded bounding box misses the circle are
// returned unchanged. Unbaked paths are baked before erasing. When the
// eraser touches nothing, the original PathData is returned as-is so
// callers can detect no-ops by identity.
func Erase(pd PathData, center Point, radius float64) []PathData {
	if pd.Kind == KindText || len(pd.Points) < 2 || radius <= 0 {
		return []PathData{pd}
	}

	// Fast rejection on the stroke's padded bounds.
	bounds := BoundingBox(pd.Points).Expand(pd.StrokeWidth)
	if !bounds.IntersectsCircle(center, radius) {
		return []PathData{pd}
	}

	baked := Bake(pd)
	pts := baked.Points
	rSq := radius * radius

	inside := make([]bool, len(pts))
	for i, p := range pts {
		inside[i] = p.DistanceSquared(center) < rSq
	}

	var out []PathData
	var cur []Point
	flush := func() {
		if len(cur) >= 2 {
			piece := baked.cloneWithID(derivedID(pd.ID))
			piece.Points = cur
			piece.Smoothing = 0
			out = append(out, piece)
		}
		cur = nil
	}

	if !inside[0] {
		cur = append(cur, pts[0])
	}
	outside := !inside[0]

	for i := 0; i < len(pts)-1; i++ {
		p1, p2 := pts[i], pts[i+1]
		d := p2.Sub(p1)
		if d.LengthSquared() == 0 {
			// Zero-length segment: nothing to intersect, and the
			// quadratic below would degenerate.
			continue
		}
		for _, t := range circleSegmentIntersections(p1, p2, center, radius) {
			cross := p1.Lerp(p2, t)
			if outside {
				// Entering the circle terminates the surviving run.
				cur = append(cur, cross)
				flush()
			} else {
				// Leaving the circle starts a new surviving run.
				cur = append(cur, cross)
			}
			outside = !outside
		}
		if !inside[i+1] {
			cur = append(cur, p2)
			outside = true
		} else {
			outside = false
		}
	}
	flush()

	// Identity: a single survivor with the full point count means the
	// eraser changed nothing.
	if len(out) == 1 && len(out[0].Points) == len(pts) {
		return []PathData{pd}
	}
	return out
}

// circleSegmentIntersections returns the parameters t of the crossings
// between segment p1->p2 and the circle, strictly inside (0, 1), in
// ascending order.
func circleSegmentIntersections(p1, p2, center Point, radius float64) []float64 {
	d := p2.Sub(p1)
	f := p1.Sub(center)
	a := d.LengthSquared()
	b := 2 * d.Dot(f)
	c := f.LengthSquared() - radius*radius

	const eps = 1e-9
	var ts []float64
	for _, t := range SolveQuadratic(a, b, c) {
		if t > eps && t < 1-eps {
			ts = append(ts, t)
		}
	}
	return ts
}
