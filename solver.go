package pathkit

import "math"

// Quadratic root solver used for circle/segment intersection.
//
// Based on algorithms from kurbo (https://github.com/linebender/kurbo)
// with adaptations for Go idioms.

// SolveQuadratic finds real roots of the quadratic equation ax^2 + bx + c = 0.
// Returns roots sorted in ascending order.
//
// The function is numerically robust:
//   - If a is zero or nearly zero, treats as linear equation
//   - Handles overflow in the discriminant gracefully
func SolveQuadratic(a, b, c float64) []float64 {
	// Scale coefficients to avoid overflow in discriminant calculation
	sc0 := c / a
	sc1 := b / a

	if !isFinite(sc0) || !isFinite(sc1) {
		return solveQuadraticLinear(b, c)
	}

	arg := sc1*sc1 - 4.0*sc0
	if !isFinite(arg) {
		// Overflow in discriminant: one root at -sc1, other from Vieta
		return sortedPair(-sc1, sc0/(-sc1))
	}
	if arg < 0.0 {
		return nil
	}
	if arg == 0.0 {
		return []float64{-0.5 * sc1}
	}

	// Numerically stable formula avoiding cancellation.
	// See: https://math.stackexchange.com/questions/866331
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	return sortedPair(root1, root2)
}

// solveQuadraticLinear handles the degenerate case where the quadratic
// coefficient vanished: bx + c = 0.
func solveQuadraticLinear(b, c float64) []float64 {
	root := -c / b
	if isFinite(root) {
		return []float64{root}
	}
	return nil
}

// sortedPair returns the two roots in ascending order, dropping a
// non-finite second root.
func sortedPair(r1, r2 float64) []float64 {
	if !isFinite(r2) {
		return []float64{r1}
	}
	if r1 > r2 {
		return []float64{r2, r1}
	}
	return []float64{r1, r2}
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
