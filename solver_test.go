package pathkit

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		want    []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, -4, []float64{2}},
		{"negative pair", 1, 0, -4, []float64{-2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveQuadratic(tt.a, tt.b, tt.c)
			if len(got) != len(tt.want) {
				t.Fatalf("roots = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !approxEqual(got[i], tt.want[i]) {
					t.Errorf("root[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSolveQuadratic_Sorted(t *testing.T) {
	roots := SolveQuadratic(2, -1, -6)
	if len(roots) != 2 || roots[0] > roots[1] {
		t.Errorf("roots not ascending: %v", roots)
	}
}

func TestSolveQuadratic_ResidualIsSmall(t *testing.T) {
	a, b, c := 3.0, -7.0, 1.5
	roots := SolveQuadratic(a, b, c)
	if len(roots) != 2 {
		t.Fatalf("roots = %v, want 2", roots)
	}
	for _, r := range roots {
		residual := a*r*r + b*r + c
		if math.Abs(residual) > 1e-9 {
			t.Errorf("root %v: residual %v", r, residual)
		}
	}
}
