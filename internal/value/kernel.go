package value

// Kernel is the seam for the dense-matrix operations spec.md §6 scopes out
// of this implementation: dot products, matrix inversion, and elementwise
// transcendentals. No concrete Kernel ships here and nothing in the tree
// calls one yet — dot/inverse/exp stay unimplemented, same as the rest of
// the out-of-scope BLAS-style kernel set. The interface exists so a future
// binding (e.g. gonum/mat, or a cgo BLAS wrapper) has a seam to implement
// against without the arithmetic dispatch in arithmetic.go needing to know
// about it: that dispatch only ever calls plain Go loops, never a Kernel.
type Kernel interface {
	// Dot computes the matrix/vector product of a and b.
	Dot(a, b NodeData) (NodeData, error)

	// Inverse computes the inverse of a square matrix.
	Inverse(a NodeData) (NodeData, error)

	// Exp applies the elementwise exponential function to a.
	Exp(a NodeData) (NodeData, error)
}
