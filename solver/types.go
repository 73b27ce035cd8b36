// Package solver provides a spreadsheet-solver style front end to linear programming.
//
// A problem is described the way it would be typed into a spreadsheet: an objective
// row, a matrix of constraint rows each carrying its own comparison operator (<=, =, >=),
// a right-hand side column and an optimization direction. The package normalizes that
// description into the canonical minimization form
//
//	Minimize:    c·x
//	Subject to:  A_ub·x <= b_ub
//	             A_eq·x  = b_eq
//	             lower <= x <= upper
//
// hands it to a linear programming Engine and reports the result back in the
// problem's original sense.
//
// # Example
//
//	p, err := solver.NewProblem(
//		[]float64{16, 20.5, 14},
//		[][]float64{
//			{4, 6, 2},
//			{3, 8, 6},
//			{9, 6, 4},
//			{30, 40, 25},
//		},
//		[]float64{2000, 2000, 1440, 9600},
//		[]solver.Sign{solver.LessOrEqual, solver.LessOrEqual, solver.LessOrEqual, solver.LessOrEqual},
//		solver.Maximize,
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	solution, err := solver.Solve(p, solver.WithMethod("highs"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(solver.Display(solution))
//
// The numerical algorithm is pluggable through the Engine interface. The default
// engine delegates to gonum's simplex implementation.
package solver

import (
	"errors"
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// Types
// ----------------------------------------------------------------------------

// Sense is the optimization direction of a problem.
type Sense int

const (
	// Minimize asks for the smallest objective value.
	Minimize Sense = iota + 1
	// Maximize asks for the largest objective value.
	Maximize
)

// String returns a human-readable representation of the sense.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "min"
	case Maximize:
		return "max"
	default:
		return "unknown"
	}
}

// ParseSense converts "max" or "min" (any case, long forms accepted) into a Sense.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	default:
		return 0, &Error{Op: "ParseSense", Err: ErrInvalidSense,
			Msg: fmt.Sprintf("please choose 'max' or 'min' for the problem type, got %q", s)}
	}
}

func (s Sense) valid() bool {
	return s == Minimize || s == Maximize
}

// Sign is the comparison operator of a single constraint row.
//
// The zero value is not a valid sign. The numeric values carry no meaning.
type Sign int

const (
	// LessOrEqual marks a row of the form a·x <= b.
	LessOrEqual Sign = iota + 1
	// Equal marks a row of the form a·x = b.
	Equal
	// GreaterOrEqual marks a row of the form a·x >= b.
	GreaterOrEqual
)

// String returns the operator as it is written in a constraint.
func (s Sign) String() string {
	switch s {
	case LessOrEqual:
		return "<="
	case Equal:
		return "="
	case GreaterOrEqual:
		return ">="
	default:
		return "?"
	}
}

// ParseSign converts a written operator into a Sign. Strict "<" and ">" are rejected.
func ParseSign(s string) (Sign, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤", "=<":
		return LessOrEqual, nil
	case "=", "==":
		return Equal, nil
	case ">=", "≥", "=>":
		return GreaterOrEqual, nil
	case "<", ">":
		return 0, &Error{Op: "ParseSign", Err: ErrInvalidSign,
			Msg: "use of '<' and '>' prohibited, use '<=' or '>=' instead"}
	default:
		return 0, &Error{Op: "ParseSign", Err: ErrInvalidSign, Msg: fmt.Sprintf("unknown sign %q", s)}
	}
}

func (s Sign) valid() bool {
	switch s {
	case LessOrEqual, Equal, GreaterOrEqual:
		return true
	default:
		return false
	}
}

// Status is the outcome of a solve, in the problem's terms.
type Status int

const (
	// StatusOptimal indicates an optimal solution was found.
	StatusOptimal Status = iota
	// StatusInfeasible indicates no point satisfies the constraints.
	StatusInfeasible
	// StatusUnbounded indicates the objective has no finite optimum.
	StatusUnbounded
	// StatusIterationLimit indicates the engine stopped before converging.
	StatusIterationLimit
	// StatusSolverError indicates the engine failed outside the modeled outcomes.
	StatusSolverError
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	names := []string{"optimal", "infeasible", "unbounded", "iteration-limit", "solver-error"}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// HasSolution returns true if the status carries usable variable values.
func (s Status) HasSolution() bool {
	return s == StatusOptimal || s == StatusIterationLimit
}

// Bound is the permitted range of a single variable.
// Use NegInf() or Inf() for a side with no limit.
type Bound struct {
	Lower float64
	Upper float64
}

// ----------------------------------------------------------------------------
// Errors
// ----------------------------------------------------------------------------

var (
	// ErrShapeMismatch is matched by every *ShapeError.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidSense is returned for a sense other than Minimize or Maximize.
	ErrInvalidSense = errors.New("invalid sense")
	// ErrInvalidSign is returned for a constraint sign outside {<=, =, >=}.
	ErrInvalidSign = errors.New("invalid constraint sign")
	// ErrInvalidBounds is returned for bounds of the wrong length, NaN or lower > upper.
	ErrInvalidBounds = errors.New("invalid bounds")
	// ErrUnknownMethod is returned by an engine that does not recognise the method.
	ErrUnknownMethod = errors.New("unknown method")
)

// Error represents a solver error with context about which operation failed.
type Error struct {
	Op  string // Operation that failed (e.g., "NewProblem", "Normalize")
	Err error  // Sentinel describing the class of failure
	Msg string // Additional context
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("solver: %s failed: %s", e.Op, e.Msg)
	}
	return fmt.Sprintf("solver: %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ShapeError reports two arguments whose lengths disagree.
type ShapeError struct {
	Op         string
	First      string // e.g. "objective"
	Second     string // e.g. "constraints_left row 2"
	FirstLen   int
	SecondLen  int
	FirstUnit  string
	SecondUnit string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("solver: %s failed: %s has %d %s, but %s has %d %s",
		e.Op, e.First, e.FirstLen, e.FirstUnit, e.Second, e.SecondLen, e.SecondUnit)
}

// Is makes errors.Is(err, ErrShapeMismatch) hold for every ShapeError.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// newErrorMsg creates a new Error with an additional message.
func newErrorMsg(op string, err error, msg string) error {
	return &Error{Op: op, Err: err, Msg: msg}
}
