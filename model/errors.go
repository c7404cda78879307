package model

import "errors"

// Sentinel errors for the model package. Callers branch with errors.Is,
// never string comparison, per the convention used throughout this repo.
var (
	// ErrEmptyCoeffs indicates a Constraint has no nonzero coefficients.
	ErrEmptyCoeffs = errors.New("model: constraint has no coefficients")

	// ErrUnknownVariable indicates a coefficient or assignment referenced a
	// variable index that does not exist in the owning Model.
	ErrUnknownVariable = errors.New("model: unknown variable index")

	// ErrInvalidBound indicates a Bound with Lower > Upper was constructed
	// where an invariant required Lower <= Upper.
	ErrInvalidBound = errors.New("model: invalid bound (lower > upper)")
)
