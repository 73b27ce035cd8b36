package solver

import "math"

// Solution contains the result of solving a Problem, in the problem's original sense.
type Solution struct {
	// Status indicates the outcome of the solve.
	Status Status

	// Objective is the value of the original objective at Values. For a maximization it
	// is the maximum, not the minimum of the negated objective the engine solved.
	Objective float64

	// Values contains one value per decision variable, in the problem's column order.
	// Empty when the engine produced no point.
	Values []float64

	// Message is the engine's diagnostic message, kept verbatim.
	Message string

	// Sense is the optimization direction of the solved problem.
	Sense Sense

	// Coefficients are the original objective coefficients, for display.
	Coefficients []float64
}

// IsOptimal returns true if the solution is optimal.
func (s *Solution) IsOptimal() bool {
	return s.Status == StatusOptimal
}

// IsInfeasible returns true if the problem is infeasible.
func (s *Solution) IsInfeasible() bool {
	return s.Status == StatusInfeasible
}

// IsUnbounded returns true if the problem is unbounded.
func (s *Solution) IsUnbounded() bool {
	return s.Status == StatusUnbounded
}

// HasSolution returns true if the solution contains valid values.
func (s *Solution) HasSolution() bool {
	return s.Status.HasSolution() && len(s.Values) > 0
}

// Value returns the solution value for a variable by index.
// Returns 0 if the index is out of range.
func (s *Solution) Value(index int) float64 {
	if index < 0 || index >= len(s.Values) {
		return 0
	}
	return s.Values[index]
}

// Adapt maps a raw engine result onto a Solution for a problem of the given sense.
//
// Unknown raw status codes become StatusSolverError; the raw message is kept either way.
func Adapt(raw *RawResult, sense Sense) *Solution {
	if raw == nil {
		return &Solution{Status: StatusSolverError, Objective: math.NaN(), Message: "engine returned no result"}
	}

	sol := &Solution{
		Status:    statusFromRaw(raw.Status),
		Objective: raw.Objective,
		Values:    copyVector(raw.X),
		Message:   raw.Message,
	}
	switch sense {
	case Maximize:
		sol.Objective = -sol.Objective
	case Minimize:
	}
	return sol
}

// adaptError reports an engine failure as a solver-error solution.
func adaptError(err error) *Solution {
	return &Solution{
		Status:    StatusSolverError,
		Objective: math.NaN(),
		Message:   err.Error(),
	}
}

func statusFromRaw(code int) Status {
	switch code {
	case RawSuccess:
		return StatusOptimal
	case RawIterationLimit:
		return StatusIterationLimit
	case RawInfeasible:
		return StatusInfeasible
	case RawUnbounded:
		return StatusUnbounded
	default:
		return StatusSolverError
	}
}
