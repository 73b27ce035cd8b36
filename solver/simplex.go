package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// DefaultTolerance is the reduced-cost tolerance handed to gonum's simplex.
	DefaultTolerance = 1e-10

	zeroRowTol = 1e-12
	rankTol    = 1e-11
	feasRelTol = 1e-9
)

// Messages reported by SimplexEngine.
const (
	MessageSuccess    = "Optimization terminated successfully."
	MessageInfeasible = "The problem is infeasible."
	MessageUnbounded  = "The problem is unbounded."
)

// simplexMethods are the method names SimplexEngine answers to.
// They all select the same primal simplex.
var simplexMethods = map[string]bool{
	"":                true,
	"highs":           true,
	"highs-ds":        true,
	"simplex":         true,
	"revised simplex": true,
}

// SimplexEngine solves canonical problems with gonum's simplex implementation
// (gonum.org/v1/gonum/optimize/convex/lp).
//
// gonum solves problems in standard form, min c·y s.t. A·y = b, y >= 0. The engine
// converts variable bounds and inequality rows into that form and maps the answer back.
type SimplexEngine struct {
	// Tolerance is the reduced-cost tolerance at which a vertex counts as optimal.
	Tolerance float64
}

// NewSimplexEngine returns a SimplexEngine with DefaultTolerance.
func NewSimplexEngine() *SimplexEngine {
	return &SimplexEngine{Tolerance: DefaultTolerance}
}

// Solve implements Engine.
func (e *SimplexEngine) Solve(ctx context.Context, cp *CanonicalProblem, method string) (*RawResult, error) {
	if !simplexMethods[strings.ToLower(strings.TrimSpace(method))] {
		return nil, newErrorMsg("SimplexEngine.Solve", ErrUnknownMethod,
			fmt.Sprintf("method %q is not one of highs, highs-ds, simplex, revised simplex", method))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(cp.Bounds) != len(cp.Objective) {
		return nil, newErrorMsg("SimplexEngine.Solve", ErrInvalidBounds,
			fmt.Sprintf("objective has %d coefficients, but %d bounds were given", len(cp.Objective), len(cp.Bounds)))
	}

	sf := newStandardForm(cp)
	return sf.solve(e.Tolerance), nil
}

// column records how an original variable is expressed in standard-form variables:
// x = shift + scale*y[pos] - y[neg], where the y[neg] term only exists for free variables.
type column struct {
	shift float64
	scale float64
	pos   int
	neg   int
}

type stdRow struct {
	coeffs []float64 // over structural variables
	rhs    float64
	slack  bool
}

type standardForm struct {
	objective []float64
	cols      []column
	nStruct   int
	c         []float64
	rows      []stdRow
}

func newStandardForm(cp *CanonicalProblem) *standardForm {
	sf := &standardForm{
		objective: cp.Objective,
		cols:      make([]column, len(cp.Objective)),
	}

	for j, b := range cp.Bounds {
		switch {
		case !math.IsInf(b.Lower, -1):
			sf.cols[j] = column{shift: b.Lower, scale: 1, pos: sf.nStruct, neg: -1}
			sf.nStruct++
		case !math.IsInf(b.Upper, 1):
			sf.cols[j] = column{shift: b.Upper, scale: -1, pos: sf.nStruct, neg: -1}
			sf.nStruct++
		default:
			sf.cols[j] = column{scale: 1, pos: sf.nStruct, neg: sf.nStruct + 1}
			sf.nStruct += 2
		}
	}

	sf.c = make([]float64, sf.nStruct)
	for j, col := range sf.cols {
		sf.c[col.pos] += col.scale * cp.Objective[j]
		if col.neg >= 0 {
			sf.c[col.neg] -= cp.Objective[j]
		}
	}

	for i, row := range cp.UpperLeft {
		sf.addRow(row, cp.UpperRight[i], true)
	}
	for i, row := range cp.EqualLeft {
		sf.addRow(row, cp.EqualRight[i], false)
	}

	// Variables with both sides finite were shifted by their lower bound,
	// so the upper bound becomes y <= upper - lower.
	for j, b := range cp.Bounds {
		if math.IsInf(b.Lower, -1) || math.IsInf(b.Upper, 1) {
			continue
		}
		coeffs := make([]float64, sf.nStruct)
		coeffs[sf.cols[j].pos] = 1
		sf.rows = append(sf.rows, stdRow{coeffs: coeffs, rhs: b.Upper - b.Lower, slack: true})
	}
	return sf
}

func (sf *standardForm) addRow(a []float64, rhs float64, slack bool) {
	coeffs := make([]float64, sf.nStruct)
	for j, v := range a {
		if v == 0 {
			continue
		}
		col := sf.cols[j]
		rhs -= v * col.shift
		coeffs[col.pos] += col.scale * v
		if col.neg >= 0 {
			coeffs[col.neg] -= v
		}
	}
	sf.rows = append(sf.rows, stdRow{coeffs: coeffs, rhs: rhs, slack: slack})
}

// solve presolves the rows gonum refuses, runs the simplex and maps the
// standard-form answer back onto the original variables.
func (sf *standardForm) solve(tol float64) *RawResult {
	rows, ok := presolveEqualities(sf.rows)
	if !ok {
		return infeasibleResult()
	}

	var kept []stdRow
	for _, r := range rows {
		if !allZero(r.coeffs) {
			kept = append(kept, r)
			continue
		}
		switch {
		case r.slack && r.rhs >= -zeroRowTol:
		case !r.slack && math.Abs(r.rhs) <= zeroRowTol:
		default:
			return infeasibleResult()
		}
	}

	active := make([]int, 0, sf.nStruct)
	for j := 0; j < sf.nStruct; j++ {
		used := false
		for _, r := range kept {
			if r.coeffs[j] != 0 {
				used = true
				break
			}
		}
		if used {
			active = append(active, j)
			continue
		}
		if sf.c[j] < 0 {
			return unboundedResult()
		}
	}

	y := make([]float64, sf.nStruct)
	if len(kept) > 0 {
		nSlack := 0
		for _, r := range kept {
			if r.slack {
				nSlack++
			}
		}
		m, n := len(kept), len(active)+nSlack
		if m > n {
			return &RawResult{Status: RawNumerical, Objective: math.NaN(),
				Message: fmt.Sprintf("more equality constraints (%d) than variables (%d)", m, n)}
		}

		a := mat.NewDense(m, n, nil)
		b := make([]float64, m)
		c := make([]float64, n)
		for k, j := range active {
			c[k] = sf.c[j]
		}
		slackCol := len(active)
		for i, r := range kept {
			sign := 1.0
			if r.rhs < 0 {
				sign = -1
			}
			for k, j := range active {
				a.Set(i, k, sign*r.coeffs[j])
			}
			if r.slack {
				a.Set(i, slackCol, sign)
				slackCol++
			}
			b[i] = sign * r.rhs
		}

		opt, err := solveStandard(c, a, b, tol)
		switch {
		case err == nil:
		case errors.Is(err, lp.ErrInfeasible):
			return infeasibleResult()
		case errors.Is(err, lp.ErrUnbounded):
			return unboundedResult()
		default:
			return &RawResult{Status: RawNumerical, Objective: math.NaN(), Message: err.Error()}
		}
		for k, j := range active {
			y[j] = opt[k]
		}
	}

	x := make([]float64, len(sf.cols))
	for j, col := range sf.cols {
		x[j] = col.shift + col.scale*y[col.pos]
		if col.neg >= 0 {
			x[j] -= y[col.neg]
		}
	}
	return &RawResult{
		Status:    RawSuccess,
		Objective: floats.Dot(sf.objective, x),
		X:         x,
		Message:   MessageSuccess,
	}
}

func infeasibleResult() *RawResult {
	return &RawResult{Status: RawInfeasible, Objective: math.NaN(), Message: MessageInfeasible}
}

func unboundedResult() *RawResult {
	return &RawResult{Status: RawUnbounded, Objective: math.Inf(-1), Message: MessageUnbounded}
}

// presolveEqualities drops equality rows that are linear combinations of the rows
// kept before them. It reports false when such a row contradicts those rows.
// Inequality rows own a slack column each and are never dependent.
func presolveEqualities(rows []stdRow) ([]stdRow, bool) {
	out := make([]stdRow, 0, len(rows))
	var basis, augmented [][]float64
	for _, r := range rows {
		if r.slack {
			out = append(out, r)
			continue
		}
		aug := append(append([]float64(nil), r.coeffs...), r.rhs)
		if matrixRank(append(basis, r.coeffs)) > len(basis) {
			basis = append(basis, r.coeffs)
			augmented = append(augmented, aug)
			out = append(out, r)
			continue
		}
		if matrixRank(append(augmented, aug)) > len(basis) {
			return nil, false
		}
	}
	return out, true
}

// matrixRank returns the numerical rank of the matrix with the given rows.
func matrixRank(rows [][]float64) int {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0
	}
	r, c := len(rows), len(rows[0])
	a := mat.NewDense(r, c, nil)
	for i, row := range rows {
		a.SetRow(i, row)
	}
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDNone) {
		return 0
	}
	s := svd.Values(nil)
	if len(s) == 0 {
		return 0
	}
	cut := math.Max(rankTol*s[0]*float64(max(r, c)), zeroRowTol)
	rank := 0
	for _, v := range s {
		if v > cut {
			rank++
		}
	}
	return rank
}

// solveStandard solves min c·y s.t. A·y = b, y >= 0 for b >= 0 and A of full row rank.
//
// gonum decides feasibility of square systems and of its own phase I with near-zero
// tolerances, so a vertex that lies exactly on a bound can come back infeasible from
// roundoff. Those answers are checked again with feasTol before they are believed.
func solveStandard(c []float64, a *mat.Dense, b []float64, tol float64) ([]float64, error) {
	m, n := a.Dims()
	if m == n {
		return solveSquare(a, b)
	}
	_, y, err := runSimplex(c, a, b, tol, nil)
	if err == nil || errors.Is(err, lp.ErrUnbounded) {
		return y, err
	}
	basis, bb, err := feasibleBasis(a, b, tol)
	if err != nil {
		return nil, err
	}
	_, y, err = runSimplex(c, a, bb, tol, basis)
	return y, err
}

// solveSquare handles a system with as many rows as columns, which has a single point.
func solveSquare(a *mat.Dense, b []float64) ([]float64, error) {
	m, _ := a.Dims()
	var v mat.VecDense
	if err := v.SolveVec(a, mat.NewVecDense(m, b)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, lp.ErrSingular
		}
	}
	limit := feasTol(b)
	y := make([]float64, m)
	for i := range y {
		x := v.AtVec(i)
		if x < -limit {
			return nil, lp.ErrInfeasible
		}
		y[i] = math.Max(x, 0)
	}
	return y, nil
}

// feasibleBasis runs a phase I with one artificial column per row, starting from the
// artificial basis, and returns m independent columns of A that form a feasible vertex.
// The right-hand side is returned projected onto that vertex so gonum accepts it.
func feasibleBasis(a *mat.Dense, b []float64, tol float64) ([]int, []float64, error) {
	m, n := a.Dims()
	aug := mat.NewDense(m, n+m, nil)
	cost := make([]float64, n+m)
	start := make([]int, m)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			aug.Set(i, j, a.At(i, j))
		}
		aug.Set(i, n+i, 1)
		cost[n+i] = 1
		start[i] = n + i
	}
	violation, y, err := runSimplex(cost, aug, b, tol, start)
	if err != nil {
		return nil, nil, err
	}
	limit := feasTol(b)
	if violation > limit {
		return nil, nil, lp.ErrInfeasible
	}

	var basis []int
	var cols [][]float64
	take := func(j int) {
		col := mat.Col(nil, j, a)
		if matrixRank(append(cols, col)) > len(cols) {
			basis = append(basis, j)
			cols = append(cols, col)
		}
	}
	for j := 0; j < n && len(basis) < m; j++ {
		if y[j] > limit {
			take(j)
		}
	}
	for j := 0; j < n && len(basis) < m; j++ {
		if y[j] <= limit {
			take(j)
		}
	}
	if len(basis) < m {
		return nil, nil, lp.ErrSingular
	}

	ab := mat.NewDense(m, m, nil)
	for k := range basis {
		ab.SetCol(k, cols[k])
	}
	var xb mat.VecDense
	if err := xb.SolveVec(ab, mat.NewVecDense(m, b)); err != nil {
		return nil, nil, lp.ErrSingular
	}
	for i := 0; i < m; i++ {
		if xb.AtVec(i) < -limit {
			return nil, nil, lp.ErrInfeasible
		}
		xb.SetVec(i, math.Max(xb.AtVec(i), 0))
	}
	var projected mat.VecDense
	projected.MulVec(ab, &xb)
	return basis, projected.RawVector().Data, nil
}

func feasTol(b []float64) float64 {
	return feasRelTol * (1 + floats.Norm(b, math.Inf(1)))
}

// runSimplex calls lp.Simplex, turning its shape panics into errors.
func runSimplex(c []float64, a mat.Matrix, b []float64, tol float64, initialBasic []int) (optF float64, optX []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lp: simplex panicked: %v", r)
		}
	}()
	return lp.Simplex(c, a, b, tol, initialBasic)
}

func allZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}
