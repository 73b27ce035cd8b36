package solver

import "strconv"

// Problem is a linear program described in spreadsheet terms.
//
// Each constraint row carries its own comparison operator, so a single problem can mix
// <=, = and >= rows. A Problem copies its inputs on construction and is never modified
// afterwards; it can be solved any number of times with different options, including
// from several goroutines at once.
type Problem struct {
	objective []float64
	left      [][]float64
	right     []float64
	signs     []Sign
	sense     Sense
}

// NewProblem validates and copies a problem description.
//
// objective holds one coefficient per variable (N), constraintsLeft is an M×N matrix,
// constraintsRight and constraintSigns hold one entry per row. M may be zero.
// A shape mismatch is returned as a *ShapeError naming both lengths.
func NewProblem(
	objective []float64,
	constraintsLeft [][]float64,
	constraintsRight []float64,
	constraintSigns []Sign,
	sense Sense,
) (*Problem, error) {
	p := &Problem{
		objective: copyVector(objective),
		left:      copyMatrix(constraintsLeft),
		right:     copyVector(constraintsRight),
		signs:     append([]Sign(nil), constraintSigns...),
		sense:     sense,
	}
	if err := p.validate("NewProblem"); err != nil {
		return nil, err
	}
	return p, nil
}

// validate checks the shape invariants shared by construction and normalization.
func (p *Problem) validate(op string) error {
	if len(p.objective) == 0 {
		return newErrorMsg(op, ErrShapeMismatch, "objective must have at least one coefficient")
	}
	for i, row := range p.left {
		if len(row) != len(p.objective) {
			return &ShapeError{
				Op:         op,
				First:      "objective",
				FirstLen:   len(p.objective),
				FirstUnit:  "coefficients",
				Second:     "constraints_left row " + strconv.Itoa(i),
				SecondLen:  len(row),
				SecondUnit: "coefficients",
			}
		}
	}
	if len(p.left) != len(p.right) {
		return &ShapeError{
			Op:         op,
			First:      "constraints_left",
			FirstLen:   len(p.left),
			FirstUnit:  "rows",
			Second:     "constraints_right",
			SecondLen:  len(p.right),
			SecondUnit: "values",
		}
	}
	if len(p.left) != len(p.signs) {
		return &ShapeError{
			Op:         op,
			First:      "constraints_left",
			FirstLen:   len(p.left),
			FirstUnit:  "rows",
			Second:     "constraint_signs",
			SecondLen:  len(p.signs),
			SecondUnit: "signs",
		}
	}
	for i, s := range p.signs {
		if !s.valid() {
			return newErrorMsg(op, ErrInvalidSign, "constraint_signs["+strconv.Itoa(i)+"] is not one of <=, =, >=")
		}
	}
	if !p.sense.valid() {
		return newErrorMsg(op, ErrInvalidSense, "please choose Maximize or Minimize for the problem type")
	}
	return nil
}

// NumVars returns the number of decision variables.
func (p *Problem) NumVars() int {
	return len(p.objective)
}

// NumConstraints returns the number of constraint rows.
func (p *Problem) NumConstraints() int {
	return len(p.left)
}

// Sense returns the optimization direction.
func (p *Problem) Sense() Sense {
	return p.sense
}

// Objective returns a copy of the objective coefficients.
func (p *Problem) Objective() []float64 {
	return copyVector(p.objective)
}

// Left returns a copy of the constraint matrix.
func (p *Problem) Left() [][]float64 {
	return copyMatrix(p.left)
}

// Right returns a copy of the right-hand side values.
func (p *Problem) Right() []float64 {
	return copyVector(p.right)
}

// Signs returns a copy of the constraint signs.
func (p *Problem) Signs() []Sign {
	return append([]Sign(nil), p.signs...)
}
