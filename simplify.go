package pathkit

// Simplify reduces a polyline with the Ramer-Douglas-Peucker algorithm:
// the point of maximum deviation from the chord splits the sequence
// recursively; points deviating less than tolerance are dropped.
// The result always keeps the first and last point and never has more
// points than the input.
func Simplify(points []Point, tolerance float64) []Point {
	if len(points) < 3 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}
	tolSq := tolerance * tolerance
	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	rdpMark(points, 0, len(points)-1, tolSq, keep)

	out := make([]Point, 0, len(points))
	for i, k := range keep {
		if k {
			out = append(out, points[i])
		}
	}
	return out
}

// rdpMark marks the points of maximum deviation to keep in [first, last].
func rdpMark(points []Point, first, last int, tolSq float64, keep []bool) {
	if last <= first+1 {
		return
	}
	a, b := points[first], points[last]
	maxDistSq := 0.0
	maxIndex := first
	for i := first + 1; i < last; i++ {
		d := points[i].DistanceSquared(projectOnSegment(points[i], a, b))
		if d > maxDistSq {
			maxDistSq = d
			maxIndex = i
		}
	}
	if maxDistSq > tolSq {
		keep[maxIndex] = true
		rdpMark(points, first, maxIndex, tolSq, keep)
		rdpMark(points, maxIndex, last, tolSq, keep)
	}
}
