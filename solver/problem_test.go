package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProblemShapeMismatch(t *testing.T) {
	tests := []struct {
		name      string
		objective []float64
		left      [][]float64
		right     []float64
		signs     []Sign
		contains  []string
	}{
		{
			name:      "objective vs columns",
			objective: []float64{1, 2, 3},
			left:      [][]float64{{1, 1}},
			right:     []float64{1},
			signs:     []Sign{LessOrEqual},
			contains:  []string{"objective has 3", "constraints_left row 0 has 2"},
		},
		{
			name:      "ragged row",
			objective: []float64{1, 2},
			left:      [][]float64{{1, 1}, {1, 1, 1}},
			right:     []float64{1, 2},
			signs:     []Sign{LessOrEqual, Equal},
			contains:  []string{"objective has 2", "constraints_left row 1 has 3"},
		},
		{
			name:      "left vs right",
			objective: []float64{1, 2},
			left:      [][]float64{{1, 1}, {2, 2}},
			right:     []float64{1},
			signs:     []Sign{LessOrEqual, LessOrEqual},
			contains:  []string{"constraints_left has 2 rows", "constraints_right has 1"},
		},
		{
			name:      "left vs signs",
			objective: []float64{1, 2},
			left:      [][]float64{{1, 1}},
			right:     []float64{1},
			signs:     []Sign{LessOrEqual, GreaterOrEqual, Equal},
			contains:  []string{"constraints_left has 1 rows", "constraint_signs has 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProblem(tt.objective, tt.left, tt.right, tt.signs, Minimize)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrShapeMismatch)

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestNewProblemEmptyObjective(t *testing.T) {
	_, err := NewProblem(nil, nil, nil, nil, Minimize)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNewProblemNoConstraints(t *testing.T) {
	p, err := NewProblem([]float64{1, 2}, nil, nil, nil, Maximize)
	require.NoError(t, err)
	assert.Equal(t, 2, p.NumVars())
	assert.Equal(t, 0, p.NumConstraints())
}

func TestNewProblemInvalidSignAndSense(t *testing.T) {
	_, err := NewProblem([]float64{1}, [][]float64{{1}}, []float64{1}, []Sign{0}, Minimize)
	assert.ErrorIs(t, err, ErrInvalidSign)

	_, err = NewProblem([]float64{1}, [][]float64{{1}}, []float64{1}, []Sign{Equal}, Sense(42))
	assert.ErrorIs(t, err, ErrInvalidSense)
}

func TestNewProblemCopiesInputs(t *testing.T) {
	obj := []float64{1, 2}
	left := [][]float64{{3, 4}}
	right := []float64{5}
	signs := []Sign{GreaterOrEqual}

	p, err := NewProblem(obj, left, right, signs, Minimize)
	require.NoError(t, err)

	obj[0] = 100
	left[0][0] = 100
	right[0] = 100
	signs[0] = Equal

	assert.Equal(t, []float64{1, 2}, p.Objective())
	assert.Equal(t, [][]float64{{3, 4}}, p.Left())
	assert.Equal(t, []float64{5}, p.Right())
	assert.Equal(t, []Sign{GreaterOrEqual}, p.Signs())

	got := p.Left()
	got[0][1] = -1
	assert.Equal(t, [][]float64{{3, 4}}, p.Left())
}

func TestParseSign(t *testing.T) {
	for in, want := range map[string]Sign{
		"<=": LessOrEqual, "≤": LessOrEqual, " = ": Equal, "==": Equal, ">=": GreaterOrEqual, "≥": GreaterOrEqual,
	} {
		got, err := ParseSign(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSign("<")
	require.ErrorIs(t, err, ErrInvalidSign)
	assert.Contains(t, err.Error(), "use '<=' or '>=' instead")

	_, err = ParseSign("!=")
	assert.ErrorIs(t, err, ErrInvalidSign)
}

func TestParseSense(t *testing.T) {
	s, err := ParseSense("MAX")
	require.NoError(t, err)
	assert.Equal(t, Maximize, s)

	s, err = ParseSense("min")
	require.NoError(t, err)
	assert.Equal(t, Minimize, s)

	_, err = ParseSense("biggest")
	assert.ErrorIs(t, err, ErrInvalidSense)
}

func TestVariableLabel(t *testing.T) {
	assert.Equal(t, "a", VariableLabel(0))
	assert.Equal(t, "c", VariableLabel(2))
	assert.Equal(t, "z", VariableLabel(25))
	assert.Equal(t, "aa", VariableLabel(26))
	assert.Equal(t, "az", VariableLabel(51))
	assert.Equal(t, "ba", VariableLabel(52))
}
