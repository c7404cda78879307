package lpmodel

import "errors"

// Sentinel errors for the lpmodel package. Callers branch with errors.Is.
var (
	// ErrUnboundedBelow indicates a Variable has Lower == -Inf, which the
	// standard-form conversion cannot shift to the solver's required x>=0
	// space. Give every Variable a finite lower bound (0, if otherwise
	// unconstrained) before solving.
	ErrUnboundedBelow = errors.New("lpmodel: variable has no finite lower bound")

	// ErrDegenerateModel indicates a Model with no rows at all (no
	// Constraints and no variable carries a finite upper bound) — there is
	// nothing to hand the simplex solver. Snapshot also returns it for a
	// Model with no Constraints or no Variables.
	ErrDegenerateModel = errors.New("lpmodel: model has no constraint or bound rows")

	// ErrUnknownVariable indicates a cut or bound change referenced a
	// variable index outside the Model.
	ErrUnknownVariable = errors.New("lpmodel: unknown variable index")

	// ErrEmptyRow indicates ParseProblem encountered a ROW line whose
	// coefficient terms are all zero. A ROW line with no coefficient terms
	// at all is reported as ErrMalformedProblem.
	ErrEmptyRow = errors.New("lpmodel: row has no coefficients")

	// ErrMalformedProblem indicates ParseProblem could not make sense of
	// the input text.
	ErrMalformedProblem = errors.New("lpmodel: malformed problem input")
)
