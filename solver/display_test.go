package solver

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayOptimal(t *testing.T) {
	sol := &Solution{
		Status:       StatusOptimal,
		Objective:    4960.000000001,
		Values:       []float64{1e-12, 160, 119.999999999},
		Message:      "Optimization terminated successfully.",
		Sense:        Maximize,
		Coefficients: []float64{16, 20.5, 14},
	}

	want := `------------------------------------------------------
MAXIMIZE: z = 16a + 20.5b + 14c
------------------------------------------------------
OPTIMAL VALUE:  4960
------------------------------------------------------
QUANTITIES:
a:  0
b:  160
c:  120
------------------------------------------------------
Optimization terminated successfully.
`
	assert.Equal(t, want, Display(sol))
}

func TestDisplayNegativeCoefficients(t *testing.T) {
	sol := &Solution{
		Status:       StatusOptimal,
		Objective:    8.040811,
		Values:       []float64{0.44415274, 0.1},
		Sense:        Minimize,
		Coefficients: []float64{-16, -20.456},
	}

	out := Display(sol)
	assert.Contains(t, out, "MINIMIZE: z = -16a - 20.46b\n")
	assert.Contains(t, out, "OPTIMAL VALUE:  8.04\n")
	assert.Contains(t, out, "a:  0.44415\n")
	assert.Contains(t, out, "b:  0.1\n")
}

func TestDisplayWithoutSolution(t *testing.T) {
	sol := &Solution{
		Status:       StatusInfeasible,
		Objective:    math.NaN(),
		Message:      "The problem is infeasible.",
		Sense:        Minimize,
		Coefficients: []float64{1},
	}

	out := Display(sol)
	assert.Contains(t, out, "STATUS: infeasible\n")
	assert.NotContains(t, out, "OPTIMAL VALUE")
	assert.Contains(t, out, "The problem is infeasible.\n")
}

func TestDisplayOptions(t *testing.T) {
	sol := &Solution{
		Status:       StatusOptimal,
		Objective:    1.23456,
		Values:       []float64{2.718281828},
		Sense:        Minimize,
		Coefficients: []float64{1.23456},
	}

	out := Display(sol, WithObjectiveDigits(3), WithValueDigits(1))
	assert.Contains(t, out, "MINIMIZE: z = 1.235a\n")
	assert.Contains(t, out, "OPTIMAL VALUE:  1.235\n")
	assert.Contains(t, out, "a:  2.7\n")

	out = Display(&Solution{Status: StatusOptimal, Objective: 1234567, Values: []float64{1}, Sense: Minimize,
		Coefficients: []float64{1}}, WithSignificantDigits(3))
	assert.Contains(t, out, "OPTIMAL VALUE:  1.23e+06\n")
}

func TestDisplayManyVariables(t *testing.T) {
	coeffs := make([]float64, 28)
	values := make([]float64, 28)
	for i := range coeffs {
		coeffs[i] = 1
		values[i] = float64(i)
	}
	sol := &Solution{Status: StatusOptimal, Values: values, Sense: Maximize, Coefficients: coeffs}

	out := Display(sol)
	assert.Contains(t, out, " + 1z + 1aa + 1ab\n")
	assert.Contains(t, out, "ab:  27\n")
}

func TestDisplayDoesNotMutate(t *testing.T) {
	sol := &Solution{
		Status:       StatusOptimal,
		Objective:    1.23456789,
		Values:       []float64{3.14159265},
		Sense:        Maximize,
		Coefficients: []float64{2.71828},
	}
	before := *sol
	before.Values = append([]float64(nil), sol.Values...)
	before.Coefficients = append([]float64(nil), sol.Coefficients...)

	_ = Display(sol)
	assert.Equal(t, before, *sol)
}

func TestWriteDisplay(t *testing.T) {
	sol := &Solution{Status: StatusOptimal, Objective: 2, Values: []float64{1}, Sense: Minimize,
		Coefficients: []float64{2}, Message: "done"}

	var buf bytes.Buffer
	require.NoError(t, WriteDisplay(&buf, sol))
	assert.Equal(t, Display(sol), buf.String())
}

func TestDisplaySolvedProblem(t *testing.T) {
	p := mustProblem(t,
		[]float64{10, 15, 25},
		[][]float64{{1, 1, 1}, {1, -2, 0}, {0, 0, 1}},
		[]float64{1000, 0, 340},
		[]Sign{GreaterOrEqual, GreaterOrEqual, GreaterOrEqual},
		Minimize,
	)
	sol, err := Solve(p)
	require.NoError(t, err)

	out := Display(sol)
	assert.Contains(t, out, "MINIMIZE: z = 10a + 15b + 25c\n")
	assert.Contains(t, out, "OPTIMAL VALUE:  15100\n")
	assert.Contains(t, out, "a:  660\nb:  0\nc:  340\n")
}

func TestDisplayIterationLimit(t *testing.T) {
	sol := &Solution{
		Status:       StatusIterationLimit,
		Objective:    12.5,
		Values:       []float64{2.5, 0},
		Message:      "Iteration limit reached.",
		Sense:        Maximize,
		Coefficients: []float64{5, 1},
	}

	want := `------------------------------------------------------
MAXIMIZE: z = 5a + 1b
------------------------------------------------------
STATUS: iteration-limit
OBJECTIVE VALUE:  12.5
------------------------------------------------------
QUANTITIES:
a:  2.5
b:  0
------------------------------------------------------
Iteration limit reached.
`
	out := Display(sol)
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "OPTIMAL VALUE")
}

func TestDisplayNil(t *testing.T) {
	var out string
	require.NotPanics(t, func() { out = Display(nil) })
	assert.Contains(t, out, "STATUS: solver-error\n")
	assert.Contains(t, out, "no solution\n")

	var buf bytes.Buffer
	require.NoError(t, WriteDisplay(&buf, nil))
	assert.Equal(t, out, buf.String())
}
