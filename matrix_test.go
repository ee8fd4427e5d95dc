package pathkit

import (
	"math"
	"testing"
)

func TestMatrix_Identity(t *testing.T) {
	p := Pt(3, 4)
	if got := Identity().TransformPoint(p); got != p {
		t.Errorf("identity moved point: %v", got)
	}
	if !Identity().IsIdentity() {
		t.Error("IsIdentity() = false for Identity()")
	}
}

func TestMatrix_Transforms(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(4, 5), Pt(8, 15)},
		{"rotate quarter", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !pointsApproxEqual(got, tt.want) {
				t.Errorf("TransformPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrix_MultiplyOrder(t *testing.T) {
	// Translate then scale is not scale then translate.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	if !pointsApproxEqual(got, Pt(12, 2)) {
		t.Errorf("translate*scale = %v, want (12, 2)", got)
	}
	m = Scale(2, 2).Multiply(Translate(10, 0))
	got = m.TransformPoint(Pt(1, 1))
	if !pointsApproxEqual(got, Pt(22, 2)) {
		t.Errorf("scale*translate = %v, want (22, 2)", got)
	}
}
