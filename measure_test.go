package pathkit

import (
	"math"
	"testing"
)

func TestPolylineMeasure(t *testing.T) {
	m := newPolylineMeasure([]Point{{0, 0}, {10, 0}, {10, 10}})

	if got := m.Length(); got != 20 {
		t.Fatalf("Length = %v, want 20", got)
	}

	tests := []struct {
		dist float64
		want Point
	}{
		{0, Pt(0, 0)},
		{5, Pt(5, 0)},
		{10, Pt(10, 0)},
		{15, Pt(10, 5)},
		{20, Pt(10, 10)},
		{-3, Pt(0, 0)},    // clamps low
		{100, Pt(10, 10)}, // clamps high
	}
	for _, tt := range tests {
		if got := m.PointAtLength(tt.dist); !pointsApproxEqual(got, tt.want) {
			t.Errorf("PointAtLength(%v) = %v, want %v", tt.dist, got, tt.want)
		}
	}
}

func TestPolylineMeasure_Degenerate(t *testing.T) {
	empty := newPolylineMeasure(nil)
	if got := empty.Length(); got != 0 {
		t.Errorf("empty Length = %v", got)
	}
	if got := empty.PointAtLength(5); got != (Point{}) {
		t.Errorf("empty PointAtLength = %v", got)
	}
	single := newPolylineMeasure([]Point{{3, 3}})
	if got := single.PointAtLength(5); got != Pt(3, 3) {
		t.Errorf("single PointAtLength = %v", got)
	}
}

func TestPolylineMeasure_ZeroLengthSegment(t *testing.T) {
	m := newPolylineMeasure([]Point{{0, 0}, {0, 0}, {10, 0}})
	if got := m.Length(); got != 10 {
		t.Fatalf("Length = %v, want 10", got)
	}
	if got := m.PointAtLength(5); !pointsApproxEqual(got, Pt(5, 0)) {
		t.Errorf("PointAtLength(5) = %v, want (5, 0)", got)
	}
}

func TestFlattenMeasure_Line(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(30, 40)
	m := FlattenMeasure{}.Measure(p)
	if got := m.Length(); !approxEqual(got, 50) {
		t.Errorf("Length = %v, want 50", got)
	}
	if got := m.PointAtLength(25); !pointsApproxEqual(got, Pt(15, 20)) {
		t.Errorf("PointAtLength(25) = %v, want (15, 20)", got)
	}
}

func TestFlattenMeasure_QuadWithinTolerance(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.QuadraticTo(50, 100, 100, 0)
	m := FlattenMeasure{Tolerance: 0.01}.Measure(p)

	q := NewQuadBez(Pt(0, 0), Pt(50, 100), Pt(100, 0))
	// Every sampled point must lie near the true curve.
	total := m.Length()
	for dist := 0.0; dist <= total; dist += total / 20 {
		pt := m.PointAtLength(dist)
		best := math.Inf(1)
		for t := 0.0; t <= 1.0; t += 0.001 {
			best = math.Min(best, q.Eval(t).Distance(pt))
		}
		if best > 0.1 {
			t.Errorf("sample at %v deviates %v from curve", dist, best)
		}
	}
}

func TestFlattenMeasure_ClosedPathIncludesClosingEdge(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.Close()
	m := FlattenMeasure{}.Measure(p)
	// Perimeter includes the closing edge back to (0, 0).
	want := 10 + 10 + math.Hypot(10, 10)
	if got := m.Length(); !approxEqual(got, want) {
		t.Errorf("Length = %v, want %v", got, want)
	}
}

func TestFlattenMeasure_CubicEndpoints(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.CubicTo(0, 50, 100, 50, 100, 0)
	m := FlattenMeasure{}.Measure(p)
	if got := m.PointAtLength(0); got != Pt(0, 0) {
		t.Errorf("start = %v", got)
	}
	if got := m.PointAtLength(m.Length()); !pointsApproxEqual(got, Pt(100, 0)) {
		t.Errorf("end = %v", got)
	}
}
