// Package matrix provides the dense, row-major Matrix implementation used to
// snapshot solver state: lpmodel.Model.Snapshot reads its constraint
// coefficients back into a *Dense. The simplex call itself builds gonum
// matrices directly and does not go through this package.
//
// Dense trades sparsity for O(1) At/Set and a single flat backing slice,
// which suits the small-to-medium coefficient matrices this package holds.
package matrix
