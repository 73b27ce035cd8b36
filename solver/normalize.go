package solver

import "gonum.org/v1/gonum/floats"

// CanonicalProblem is a problem in the form consumed by an Engine:
//
//	Minimize:    Objective · x
//	Subject to:  UpperLeft · x <= UpperRight
//	             EqualLeft · x  = EqualRight
//	             Bounds[i].Lower <= x[i] <= Bounds[i].Upper
//
// EqualLeft and EqualRight are nil when the problem has no equality rows.
type CanonicalProblem struct {
	Objective  []float64
	UpperLeft  [][]float64
	UpperRight []float64
	EqualLeft  [][]float64
	EqualRight []float64
	Bounds     []Bound
}

// HasEqualities reports whether the problem carries equality rows.
func (c *CanonicalProblem) HasEqualities() bool {
	return c.EqualLeft != nil
}

// Normalize converts p into canonical minimization form using the bound options in
// opts. Engine, method and logger options are accepted and ignored.
func Normalize(p *Problem, opts ...SolveOption) (*CanonicalProblem, error) {
	return normalize(p, newSolveConfig(opts))
}

func normalize(p *Problem, cfg *solveConfig) (*CanonicalProblem, error) {
	if p == nil {
		return nil, newErrorMsg("Normalize", ErrShapeMismatch, "problem is nil")
	}
	if err := p.validate("Normalize"); err != nil {
		return nil, err
	}

	bounds, err := resolveBounds(len(p.objective), cfg)
	if err != nil {
		return nil, err
	}

	obj := copyVector(p.objective)
	switch p.sense {
	case Maximize:
		floats.Scale(-1, obj)
	case Minimize:
	}

	cp := &CanonicalProblem{
		Objective:  obj,
		UpperLeft:  make([][]float64, 0, len(p.left)),
		UpperRight: make([]float64, 0, len(p.right)),
		Bounds:     bounds,
	}
	for i, sign := range p.signs {
		row := copyVector(p.left[i])
		rhs := p.right[i]
		switch sign {
		case LessOrEqual:
			cp.UpperLeft = append(cp.UpperLeft, row)
			cp.UpperRight = append(cp.UpperRight, rhs)
		case GreaterOrEqual:
			floats.Scale(-1, row)
			cp.UpperLeft = append(cp.UpperLeft, row)
			cp.UpperRight = append(cp.UpperRight, -rhs)
		case Equal:
			cp.EqualLeft = append(cp.EqualLeft, row)
			cp.EqualRight = append(cp.EqualRight, rhs)
		}
	}
	return cp, nil
}
