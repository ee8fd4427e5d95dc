package pathkit

// Anchor editor: exposes individual vertices of a path for interactive
// add/remove/move. Anchors are a derived view; the synthesized tangent
// handles (25% interpolation toward each neighbor) are not the authored
// handles, so a round-trip through anchors loses original curve intent.

// AnchorKind classifies how an anchor's handles relate.
type AnchorKind int

const (
	// AnchorCorner has independent handles (or none).
	AnchorCorner AnchorKind = iota

	// AnchorSmooth has collinear handles of independent length.
	AnchorSmooth

	// AnchorSymmetric has collinear handles of equal length.
	AnchorSymmetric
)

// AnchorPoint is a view over one vertex of a path.
type AnchorPoint struct {
	Index     int
	Point     Point
	HandleIn  Point
	HandleOut Point
	Kind      AnchorKind
}

// handleLerp is the interpolation fraction toward each neighbor used to
// synthesize handles.
const handleLerp = 0.25

// Anchors derives the editable anchor views of a path. Endpoints keep
// the vertex itself as the handle on their missing side.
func Anchors(pd PathData) []AnchorPoint {
	pts := pd.Points
	anchors := make([]AnchorPoint, 0, len(pts))
	for i, p := range pts {
		a := AnchorPoint{Index: i, Point: p, HandleIn: p, HandleOut: p, Kind: AnchorSmooth}
		if i > 0 {
			a.HandleIn = p.Lerp(pts[i-1], handleLerp)
		}
		if i < len(pts)-1 {
			a.HandleOut = p.Lerp(pts[i+1], handleLerp)
		}
		if i == 0 || i == len(pts)-1 {
			a.Kind = AnchorCorner
		}
		anchors = append(anchors, a)
	}
	return anchors
}

// UpdateAnchor moves the vertex at index to pos. With smoothNeighbors,
// the immediate neighbors are nudged by 10% of the same delta to keep
// the local curve continuous. The result is always baked
// (Smoothing == 0). Out-of-range indices are a no-op.
func UpdateAnchor(pd PathData, index int, pos Point, smoothNeighbors bool) PathData {
	if index < 0 || index >= len(pd.Points) {
		return pd
	}
	out := pd.Clone()
	delta := pos.Sub(out.Points[index])
	out.Points[index] = pos
	if smoothNeighbors {
		const nudge = 0.1
		if index > 0 {
			out.Points[index-1] = out.Points[index-1].Add(delta.Mul(nudge))
		}
		if index < len(out.Points)-1 {
			out.Points[index+1] = out.Points[index+1].Add(delta.Mul(nudge))
		}
	}
	out.Smoothing = 0
	return out
}

// AddAnchor inserts a new vertex into segment segmentIndex at parameter
// t (linear interpolation), placed after the segment's start vertex.
// Out-of-range segment indices are a no-op.
func AddAnchor(pd PathData, segmentIndex int, t float64) PathData {
	if segmentIndex < 0 || segmentIndex >= len(pd.Points)-1 {
		return pd
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	out := pd.Clone()
	np := out.Points[segmentIndex].Lerp(out.Points[segmentIndex+1], t)
	out.Points = append(out.Points[:segmentIndex+1],
		append([]Point{np}, out.Points[segmentIndex+1:]...)...)
	out.Smoothing = 0
	return out
}

// RemoveAnchor deletes the vertex at index. Paths of 2 or fewer points
// and out-of-range indices are a no-op.
func RemoveAnchor(pd PathData, index int) PathData {
	if len(pd.Points) <= 2 || index < 0 || index >= len(pd.Points) {
		return pd
	}
	out := pd.Clone()
	out.Points = append(out.Points[:index], out.Points[index+1:]...)
	out.Smoothing = 0
	return out
}

// ClosestAnchor returns the index of the vertex nearest to pos within
// maxDistance. ok is false when no vertex is in range.
func ClosestAnchor(pd PathData, pos Point, maxDistance float64) (index int, ok bool) {
	bestSq := maxDistance * maxDistance
	index = -1
	for i, p := range pd.Points {
		if d := p.DistanceSquared(pos); d <= bestSq {
			bestSq = d
			index = i
			ok = true
		}
	}
	return index, ok
}

// ClosestSegment returns the segment nearest to pos within maxDistance,
// together with the projection parameter t along that segment. ok is
// false when no segment is in range.
func ClosestSegment(pd PathData, pos Point, maxDistance float64) (segmentIndex int, t float64, ok bool) {
	best := maxDistance
	segmentIndex = -1
	for i := 0; i < len(pd.Points)-1; i++ {
		a, b := pd.Points[i], pd.Points[i+1]
		proj := projectOnSegment(pos, a, b)
		if d := proj.Distance(pos); d <= best {
			best = d
			segmentIndex = i
			if lenSq := b.Sub(a).LengthSquared(); lenSq > 0 {
				t = proj.Sub(a).Dot(b.Sub(a)) / lenSq
			} else {
				t = 0
			}
			ok = true
		}
	}
	return segmentIndex, t, ok
}
