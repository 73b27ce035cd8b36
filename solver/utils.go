package solver

import "math"

// Inf returns positive infinity, suitable for an upper bound with no limit.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for a lower bound with no limit.
func NegInf() float64 {
	return math.Inf(-1)
}

// filledSlice returns a slice of length n with every element set to fillValue.
func filledSlice(n int, fillValue float64) []float64 {
	result := make([]float64, n)
	for i := range result {
		result[i] = fillValue
	}
	return result
}

func copyVector(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

func copyMatrix(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = copyVector(row)
	}
	return out
}

// VariableLabel returns the display name of the variable at index i:
// "a" through "z", then "aa", "ab", ... in spreadsheet column order.
func VariableLabel(i int) string {
	if i < 0 {
		return "?"
	}
	var letters []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		letters = append([]byte{byte('a' + (n-1)%26)}, letters...)
	}
	return string(letters)
}
