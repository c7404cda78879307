package lpmodel

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/conflictmip/model"
)

// standardForm is the Ax = b, x >= 0, minimize c^T x shape gonum's simplex
// expects, built from the Model's (possibly two-sided, possibly
// non-origin-anchored) variable and row bounds. Grounded on the
// other_examples jjhbw-GoMILP reference's convertToEqualities/
// combineInequalities shape: inequalities first, then slack columns
// appended to turn each into an equality — rebuilt here against
// model.Constraint's sparse coefficient maps instead of pre-assembled
// *mat.Dense G/h pairs, since there is no G/h pair to start from.
type standardForm struct {
	c     []float64
	A     *mat.Dense
	b     []float64
	shift []float64 // shift[i] == Vars[i].Lower; x_i = x'_i + shift[i]
	nVar  int        // number of original (non-slack) columns
}

// buildStandardForm shifts every variable to start at 0 (x' = x - lower),
// expresses each two-sided row bound and each finite variable upper bound
// as a <= inequality in the shifted space, then introduces one slack
// column per inequality so the whole system becomes Ax' = b, x' >= 0.
func (m *Model) buildStandardForm() (*standardForm, error) {
	n := len(m.Vars)
	shift := make([]float64, n)
	width := make([]float64, n)
	for i, v := range m.Vars {
		if math.IsInf(v.Lower, -1) {
			return nil, ErrUnboundedBelow
		}
		shift[i] = v.Lower
		width[i] = v.Upper - v.Lower
	}

	var rows [][]float64
	var h []float64

	appendRow := func(coeffs map[int]float64, sign float64, rhs float64) {
		row := make([]float64, n)
		adj := 0.0
		for idx, coeff := range coeffs {
			row[idx] = sign * coeff
			adj += coeff * shift[idx]
		}
		rows = append(rows, row)
		h = append(h, sign*(rhs-adj))
	}

	for _, c := range m.Constraints {
		if len(c.Coeffs) == 0 {
			continue
		}
		if !math.IsInf(c.Upper, 1) {
			appendRow(c.Coeffs, 1, c.Upper)
		}
		if !math.IsInf(c.Lower, -1) {
			appendRow(c.Coeffs, -1, c.Lower)
		}
	}

	for i := 0; i < n; i++ {
		if !math.IsInf(width[i], 1) {
			rows = append(rows, unitRow(n, i))
			h = append(h, width[i])
		}
	}

	nIneq := len(rows)
	if nIneq == 0 {
		return nil, ErrDegenerateModel
	}

	nNewVar := n + nIneq
	A := mat.NewDense(nIneq, nNewVar, nil)
	for r, row := range rows {
		for col, val := range row {
			if val != 0 {
				A.Set(r, col, val)
			}
		}
		A.Set(r, n+r, 1)
	}

	c := make([]float64, nNewVar)
	for idx, coeff := range m.Objective {
		if m.Sense == Maximize {
			c[idx] = -coeff
		} else {
			c[idx] = coeff
		}
	}

	return &standardForm{c: c, A: A, b: h, shift: shift, nVar: n}, nil
}

func unitRow(n, i int) []float64 {
	row := make([]float64, n)
	row[i] = 1
	return row
}

// objectiveConstant returns c^T·shift — the constant term that must be
// added back (or, for Maximize, the sign-adjusted equivalent) once the
// shifted problem has been solved, since the solver only ever sees x'.
func (m *Model) objectiveConstant() float64 {
	var total float64
	for idx, coeff := range m.Objective {
		total += coeff * m.Vars[idx].Lower
	}
	return total
}

// runSimplex builds the standard form, invokes gonum's simplex solver, and
// translates the result (or failure) back into a model.Solution. Only a
// structural build failure (ErrUnboundedBelow, ErrDegenerateModel) is
// returned as an error; every solver-reported failure is folded into the
// Solution's Status per the conservative SolverBackendError policy —
// anything that isn't a clean Optimal or a clean Infeasible/Unbounded is
// treated as infeasible for pruning purposes.
func (m *Model) runSimplex() (model.Solution, error) {
	sf, err := m.buildStandardForm()
	if err != nil {
		return model.Solution{}, err
	}

	minVal, x, solveErr := lp.Simplex(sf.c, sf.A, sf.b, 0, nil)
	if solveErr != nil {
		// lp.ErrInfeasible is a clean "no feasible point" report; anything
		// else (lp.ErrSingular and any other solver-internal failure) is
		// the conservative SolverBackendError case from spec §7 — treated
		// as Infeasible for pruning purposes rather than aborting the run.
		return model.Solution{Status: model.StatusInfeasible}, nil
	}

	assignment := make(map[int]float64, sf.nVar)
	for i := 0; i < sf.nVar; i++ {
		assignment[i] = x[i] + sf.shift[i]
	}

	objective := minVal + m.objectiveConstant()
	if m.Sense == Maximize {
		objective = -minVal + m.objectiveConstant()
	}

	return model.Solution{
		Objective:  &objective,
		Assignment: assignment,
		Status:     model.StatusOptimal,
	}, nil
}
