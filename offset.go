package pathkit

import "math"

// Offset engine: expands or contracts a closed path by a signed
// distance using averaged edge normals with a clamped miter.

// OffsetPath pushes every vertex of pd along the average of its two
// adjacent edge normals. The push length is the miter length
//
//	distance / sqrt((1+dot)/2 + eps)
//
// where dot is the cosine between the adjacent normals, so straight
// runs move by exactly distance and corners move further to keep the
// offset edges parallel. The miter is clamped to 2*distance to bound
// spikes at sharp reflex angles. Positive distances expand the shape,
// negative distances contract it. Paths with fewer than 3 points are
// returned unchanged.
func OffsetPath(pd PathData, distance float64) PathData {
	if pd.Kind == KindText || len(pd.Points) < 3 || distance == 0 {
		return pd
	}

	baked := Bake(pd)
	ring := baked.Points
	if ring[0].Distance(ring[len(ring)-1]) <= closeEps {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return pd
	}
	// Orient the ring so that the (-dy, dx) edge normals point outward,
	// making positive distances expand and negative ones contract
	// independent of the input winding.
	reversed := false
	if signedArea(ring) > 0 {
		ring = reversePoints(ring)
		reversed = true
	}

	const eps = 0.001
	maxMiter := 2 * math.Abs(distance)
	n := len(ring)
	out := make([]Point, 0, n+1)
	for i := 0; i < n; i++ {
		prev := ring[(i+n-1)%n]
		cur := ring[i]
		next := ring[(i+1)%n]

		n1 := edgeNormal(prev, cur)
		n2 := edgeNormal(cur, next)
		avg := n1.Add(n2).Normalize()
		if avg.LengthSquared() == 0 {
			// Degenerate 180-degree turn: fall back to one edge normal.
			avg = n2
		}

		dot := n1.Dot(n2)
		miter := distance / math.Sqrt((1+dot)/2+eps)
		if math.Abs(miter) > maxMiter {
			miter = math.Copysign(maxMiter, miter)
		}
		out = append(out, cur.Add(avg.Mul(miter)))
	}
	if reversed {
		// Restore the caller's original draw order.
		out = reversePoints(out)
	}
	out = closePolygon(out)

	result := pd.cloneWithID(derivedID(pd.ID))
	result.Points = out
	result.Smoothing = 0
	return result
}

// edgeNormal returns the unit normal (-dy, dx)/|edge| of segment ab.
// Zero-length edges yield a zero normal, handled by the caller.
func edgeNormal(a, b Point) Point {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: -d.Y / length, Y: d.X / length}
}
