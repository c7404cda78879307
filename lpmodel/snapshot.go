package lpmodel

import "github.com/katalvlaran/conflictmip/matrix"

// Snapshot renders the Model's current constraint coefficients as a dense
// matrix (rows are Constraints, columns are Vars), for cut validation
// debugging and tests — a coarser-grained analogue of reading a solver's
// internal constraint matrix back out.
func (m *Model) Snapshot() (*matrix.Dense, error) {
	rows := len(m.Constraints)
	cols := len(m.Vars)
	if rows == 0 || cols == 0 {
		return nil, ErrDegenerateModel
	}

	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for r, c := range m.Constraints {
		for idx, coeff := range c.Coeffs {
			if err := d.Set(r, idx, coeff); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
