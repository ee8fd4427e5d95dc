package pathkit

import (
	"math"
	"testing"
)

const testEps = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= testEps
}

func pointsApproxEqual(a, b Point) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y)
}

func rectApproxEqual(a, b Rect) bool {
	return approxEqual(a.X, b.X) && approxEqual(a.Y, b.Y) &&
		approxEqual(a.W, b.W) && approxEqual(a.H, b.H)
}

func TestPoint_VectorOps(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, -2)

	if got := p.Add(q); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := p.Sub(q); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := p.Dot(q); got != -5 {
		t.Errorf("Dot = %v, want -5", got)
	}
	if got := p.Cross(q); got != -10 {
		t.Errorf("Cross = %v, want -10", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.Distance(Pt(0, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPoint_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{"unit x", Pt(5, 0), Pt(1, 0)},
		{"diagonal", Pt(3, 4), Pt(0.6, 0.8)},
		{"zero stays zero", Pt(0, 0), Pt(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); !pointsApproxEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPoint_Lerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 20)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp t=0 = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp t=1 = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != Pt(5, 10) {
		t.Errorf("Lerp t=0.5 = %v, want (5, 10)", got)
	}
	if got := a.Midpoint(b); got != Pt(5, 10) {
		t.Errorf("Midpoint = %v, want (5, 10)", got)
	}
}

func TestRotatePoint(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		origin Point
		angle  float64
		want   Point
	}{
		{"quarter turn about origin", Pt(1, 0), Pt(0, 0), math.Pi / 2, Pt(0, 1)},
		{"half turn about center", Pt(2, 1), Pt(1, 1), math.Pi, Pt(0, 1)},
		{"no turn", Pt(3, 4), Pt(1, 1), 0, Pt(3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotatePoint(tt.p, tt.origin, tt.angle); !pointsApproxEqual(got, tt.want) {
				t.Errorf("RotatePoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScalePoint(t *testing.T) {
	got := ScalePoint(Pt(2, 3), Pt(1, 1), 2, 3)
	want := Pt(3, 7)
	if !pointsApproxEqual(got, want) {
		t.Errorf("ScalePoint = %v, want %v", got, want)
	}
	// Scaling about the point itself is a no-op.
	if got := ScalePoint(Pt(5, 5), Pt(5, 5), 10, 10); got != Pt(5, 5) {
		t.Errorf("ScalePoint about self = %v, want (5, 5)", got)
	}
}
