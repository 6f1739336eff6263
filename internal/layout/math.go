package layout

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance used when comparing accumulated fractions.
// A row whose fractions sum to at most 1+Epsilon fits.
const Epsilon = 1e-9

// isFinite returns true if v is neither NaN nor infinite.
func isFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// approxEqual returns true if a and b differ by at most eps.
func approxEqual[T constraints.Float](a, b, eps T) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
