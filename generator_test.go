package pathkit

import "testing"

func TestLinedPath(t *testing.T) {
	tests := []struct {
		name      string
		points    []Point
		wantElems int
		wantSVG   string
	}{
		{"empty", nil, 0, ""},
		{"single point", []Point{{1, 1}}, 0, ""},
		{"two points", []Point{{0, 0}, {10, 0}}, 2, "M 0 0 L 10 0"},
		{"three points", []Point{{0, 0}, {10, 0}, {10, 10}}, 3, "M 0 0 L 10 0 L 10 10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := LinedPath(tt.points)
			if got := len(p.Elements()); got != tt.wantElems {
				t.Errorf("element count = %d, want %d", got, tt.wantElems)
			}
			if got := p.SVGString(); got != tt.wantSVG {
				t.Errorf("SVGString = %q, want %q", got, tt.wantSVG)
			}
		})
	}
}

// One move plus one line per remaining point, for any usable input.
func TestLinedPath_CommandCount(t *testing.T) {
	points := make([]Point, 0, 50)
	for i := 0; i < 50; i++ {
		points = append(points, Pt(float64(i), float64(i%7)))
	}
	for n := 2; n <= len(points); n += 7 {
		p := LinedPath(points[:n])
		if len(p.Elements()) != n {
			t.Errorf("n=%d: got %d commands, want %d", n, len(p.Elements()), n)
		}
	}
}

func TestSmoothedPath_ZeroSmoothingKeepsCorners(t *testing.T) {
	rect := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	p := SmoothedPath(rect, 0)
	want := LinedPath(rect).SVGString()
	if got := p.SVGString(); got != want {
		t.Errorf("smoothing 0 should delegate to LinedPath\ngot  %q\nwant %q", got, want)
	}
}

func TestSmoothedPath_ProducesQuads(t *testing.T) {
	zigzag := []Point{{0, 0}, {10, 8}, {20, -3}, {30, 9}, {40, 0}, {50, 7}, {60, -2}}
	p := SmoothedPath(zigzag, 2)
	if p.IsEmpty() {
		t.Fatal("smoothed path is empty")
	}
	var quads, moves int
	for _, e := range p.Elements() {
		switch e.(type) {
		case QuadTo:
			quads++
		case MoveTo:
			moves++
		}
	}
	if moves != 1 {
		t.Errorf("moves = %d, want 1", moves)
	}
	if quads == 0 {
		t.Error("expected quadratic spans in smoothed output")
	}
	// Ends with a straight line to the exact final input point.
	last := p.Elements()[len(p.Elements())-1]
	lt, ok := last.(LineTo)
	if !ok {
		t.Fatalf("last element = %T, want LineTo", last)
	}
	if lt.Point != Pt(60, -2) {
		t.Errorf("final point = %v, want (60, -2)", lt.Point)
	}
}

func TestSmoothedPath_FewPointsFallsBack(t *testing.T) {
	two := []Point{{0, 0}, {5, 5}}
	if got := SmoothedPath(two, 3).SVGString(); got != LinedPath(two).SVGString() {
		t.Errorf("2-point smoothing should fall back to lines, got %q", got)
	}
}

func TestMovingAverage_HoldsEndpoints(t *testing.T) {
	points := []Point{{0, 0}, {10, 10}, {20, 0}, {30, 10}, {40, 0}}
	out := movingAverage(points, 3)
	if out[0] != points[0] || out[len(out)-1] != points[len(points)-1] {
		t.Errorf("endpoints moved: %v .. %v", out[0], out[len(out)-1])
	}
	// Interior points move toward their neighbors.
	if out[1] == points[1] {
		t.Error("interior point unchanged after smoothing")
	}
}

func TestBezierSegments_CatmullRom(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {20, 10}}
	segs := BezierSegments(points, 0.5)
	if len(segs) != 2 {
		t.Fatalf("segments = %d, want 2", len(segs))
	}

	// First segment: p0 clamps to points[0].
	// cp1 = p1 + (p2-p0)*tension/3 with p0=p1=(0,0), p2=(10,0).
	want := Pt(10.0/6, 0)
	if !pointsApproxEqual(segs[0].CP1, want) {
		t.Errorf("segs[0].CP1 = %v, want %v", segs[0].CP1, want)
	}
	if segs[0].Start != points[0] || segs[0].End != points[1] {
		t.Errorf("segment endpoints wrong: %+v", segs[0])
	}
	if segs[1].Start != points[1] || segs[1].End != points[2] {
		t.Errorf("segment endpoints wrong: %+v", segs[1])
	}
}

func TestBezierSegments_Degenerate(t *testing.T) {
	if segs := BezierSegments([]Point{{1, 1}}, 0.5); segs != nil {
		t.Errorf("single point: got %v, want nil", segs)
	}
}

func TestCubicPath_FallsBackBelowThreePoints(t *testing.T) {
	two := []Point{{0, 0}, {8, 4}}
	if got := CubicPath(two, 0.5).SVGString(); got != LinedPath(two).SVGString() {
		t.Errorf("got %q, want lined fallback", got)
	}
}

func TestCubicPath_InterpolatesInputPoints(t *testing.T) {
	points := []Point{{0, 0}, {10, 5}, {20, 0}, {30, 5}}
	p := CubicPath(points, 0.5)
	var cubics int
	for _, e := range p.Elements() {
		if _, ok := e.(CubicTo); ok {
			cubics++
		}
	}
	if cubics != len(points)-1 {
		t.Errorf("cubics = %d, want %d", cubics, len(points)-1)
	}
}

func TestEvaluateCubicBezier(t *testing.T) {
	seg := BezierSegment{
		Start: Pt(0, 0),
		CP1:   Pt(0, 10),
		CP2:   Pt(10, 10),
		End:   Pt(10, 0),
	}
	if got := EvaluateCubicBezier(seg, 0); got != seg.Start {
		t.Errorf("t=0: got %v, want start", got)
	}
	if got := EvaluateCubicBezier(seg, 1); got != seg.End {
		t.Errorf("t=1: got %v, want end", got)
	}
	mid := EvaluateCubicBezier(seg, 0.5)
	if !pointsApproxEqual(mid, Pt(5, 7.5)) {
		t.Errorf("t=0.5: got %v, want (5, 7.5)", mid)
	}
	// Out-of-range parameters clamp.
	if got := EvaluateCubicBezier(seg, -3); got != seg.Start {
		t.Errorf("t<0: got %v, want start", got)
	}
	if got := EvaluateCubicBezier(seg, 7); got != seg.End {
		t.Errorf("t>1: got %v, want end", got)
	}
}
