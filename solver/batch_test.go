package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSolveAll(t *testing.T) {
	left := [][]float64{{4, 6, 2}, {3, 8, 6}, {9, 6, 4}, {30, 40, 25}}
	right := []float64{2000, 2000, 1440, 9600}
	signs := []Sign{LessOrEqual, LessOrEqual, LessOrEqual, LessOrEqual}

	var problems []*Problem
	for i := 0; i < 8; i++ {
		sense := Maximize
		obj := []float64{16, 20.5, 14}
		if i%2 == 1 {
			sense = Minimize
			obj = []float64{-16, -20.5, -14}
		}
		problems = append(problems, mustProblem(t, obj, left, right, signs, sense))
	}

	solutions, err := SolveAll(context.Background(), problems)
	require.NoError(t, err)
	require.Len(t, solutions, len(problems))
	for i, sol := range solutions {
		require.True(t, sol.IsOptimal(), "problem %d: %s", i, sol.Message)
		assert.InDeltaSlice(t, []float64{0, 160, 120}, sol.Values, tol)
		if i%2 == 0 {
			assert.InDelta(t, 4960.0, sol.Objective, tol)
		} else {
			assert.InDelta(t, -4960.0, sol.Objective, tol)
		}
	}
}

func TestSolveAllConfigurationError(t *testing.T) {
	good := mustProblem(t, []float64{1}, nil, nil, nil, Minimize)
	bad := mustProblem(t, []float64{1, 2}, nil, nil, nil, Minimize)

	_, err := SolveAll(context.Background(), []*Problem{good, bad}, WithBounds([]Bound{{0, 1}}))
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

func TestSolveAllEmpty(t *testing.T) {
	solutions, err := SolveAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, solutions)
}
