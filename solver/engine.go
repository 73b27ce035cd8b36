package solver

import "context"

// Raw status codes reported by an Engine. They follow the convention of scipy's
// linprog so that engines wrapping other libraries can report their outcome directly.
const (
	RawSuccess        = 0
	RawIterationLimit = 1
	RawInfeasible     = 2
	RawUnbounded      = 3
	RawNumerical      = 4
)

// RawResult is the untranslated output of an Engine. Objective is the optimum of the
// canonical minimization problem.
type RawResult struct {
	Status    int
	Objective float64
	X         []float64
	Message   string
}

// Engine solves a linear program in canonical minimization form.
//
// method is passed through from WithMethod unchanged; which names are recognised is up
// to the engine. An engine returns an error for failures it cannot express as a status.
type Engine interface {
	Solve(ctx context.Context, cp *CanonicalProblem, method string) (*RawResult, error)
}

// EngineFunc adapts an ordinary function to the Engine interface.
type EngineFunc func(ctx context.Context, cp *CanonicalProblem, method string) (*RawResult, error)

// Solve calls f(ctx, cp, method).
func (f EngineFunc) Solve(ctx context.Context, cp *CanonicalProblem, method string) (*RawResult, error) {
	return f(ctx, cp, method)
}
