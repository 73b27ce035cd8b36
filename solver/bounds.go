package solver

import (
	"fmt"
	"math"
)

// resolveBounds builds the per-variable bounds for n variables.
//
// Explicit bounds win outright. Otherwise every variable starts at [0, +∞), or
// (-∞, +∞) with non-negativity disabled, and the for-all scalars overwrite the
// lower and upper columns uniformly.
func resolveBounds(n int, cfg *solveConfig) ([]Bound, error) {
	if cfg.bounds != nil {
		if len(cfg.bounds) != n {
			return nil, newErrorMsg("Normalize", ErrInvalidBounds,
				fmt.Sprintf("objective has %d coefficients, but %d bounds were given", n, len(cfg.bounds)))
		}
		bounds := append([]Bound(nil), cfg.bounds...)
		return bounds, checkBounds(bounds)
	}

	lower := filledSlice(n, 0)
	if !cfg.nonNegative {
		lower = filledSlice(n, NegInf())
	}
	if cfg.minimum != nil {
		lower = filledSlice(n, *cfg.minimum)
	}
	upper := filledSlice(n, Inf())
	if cfg.maximum != nil {
		upper = filledSlice(n, *cfg.maximum)
	}

	bounds := make([]Bound, n)
	for i := range bounds {
		bounds[i] = Bound{Lower: lower[i], Upper: upper[i]}
	}
	return bounds, checkBounds(bounds)
}

func checkBounds(bounds []Bound) error {
	for i, b := range bounds {
		if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) {
			return newErrorMsg("Normalize", ErrInvalidBounds, fmt.Sprintf("bound %d is NaN", i))
		}
		if b.Lower > b.Upper {
			return newErrorMsg("Normalize", ErrInvalidBounds,
				fmt.Sprintf("bound %d has lower %g above upper %g", i, b.Lower, b.Upper))
		}
		if math.IsInf(b.Lower, 1) || math.IsInf(b.Upper, -1) {
			return newErrorMsg("Normalize", ErrInvalidBounds,
				fmt.Sprintf("bound %d leaves no feasible value", i))
		}
	}
	return nil
}
