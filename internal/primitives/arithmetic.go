package primitives

import (
	"context"

	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// binaryOpPrimitive implements one operator token of an infix chain.
// Operands promote to float64 for the operation (spec.md simplification:
// dtype-preserving dispatch is out of scope; the rank-pair/stretch-direction
// dispatch itself, spec.md §4.6's "testable surface area," is in scope and
// implemented by elementwise below).
type binaryOpPrimitive struct {
	codename string
	op       string
}

func (p binaryOpPrimitive) Apply(_ context.Context, args []value.Value) (value.Value, error) {
	l, r := args[0], args[1]

	if p.op == "&&" || p.op == "||" {
		lt, err := l.IsTruthy()
		if err != nil {
			return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0, "%v", err)
		}
		rt, err := r.IsTruthy()
		if err != nil {
			return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0, "%v", err)
		}
		if p.op == "&&" {
			return value.Bool(lt && rt), nil
		}
		return value.Bool(lt || rt), nil
	}

	if !l.IsArray() || !r.IsArray() {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"operator %q requires numeric operands, got %s and %s", p.op, l.Kind, r.Kind)
	}
	if l.Node.Rank() != 0 || r.Node.Rank() != 0 {
		return elementwise(p.codename, p.op, l, r)
	}
	a, b := l.Node.AtFlat(0), r.Node.AtFlat(0)
	switch p.op {
	case "+":
		return value.FromScalarF64(a + b), nil
	case "-":
		return value.FromScalarF64(a - b), nil
	case "*":
		return value.FromScalarF64(a * b), nil
	case "/":
		return value.FromScalarF64(a / b), nil
	case "<":
		return value.Bool(a < b), nil
	case "<=":
		return value.Bool(a <= b), nil
	case ">":
		return value.Bool(a > b), nil
	case ">=":
		return value.Bool(a >= b), nil
	case "==":
		return value.Bool(a == b), nil
	case "!=":
		return value.Bool(a != b), nil
	default:
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"unknown operator %q", p.op)
	}
}

// elementwise dispatches `+ - * /` over non-scalar operands by rank pair,
// spec.md §4.6's nine-way (0d,1d,2d)² dispatch table. Comparisons remain
// scalar-only (see the switch above): spec.md scopes the rank-pair dispatch
// to arithmetic, not relational, operators. Shape-compatible pairs are
// computed with a plain Go loop; only the dense BLAS-style kernels
// (dot/inverse/factorizations) are the out-of-scope part, per spec.md §6.
func elementwise(codename, op string, l, r value.Value) (value.Value, error) {
	switch op {
	case "+", "-", "*", "/":
	default:
		return value.Value{}, diagnostics.New(diagnostics.KindType, codename, 0, 0,
			"operator %q on array operands is not supported; apply it elementwise via for_each/fold_left", op)
	}

	lr, rr := l.Node.Rank(), r.Node.Rank()
	switch {
	case lr == 0 && (rr == 1 || rr == 2):
		return scalarBroadcast(codename, op, l.Node.AtFlat(0), r, false)
	case rr == 0 && (lr == 1 || lr == 2):
		return scalarBroadcast(codename, op, r.Node.AtFlat(0), l, true)
	case lr == 1 && rr == 1:
		return vectorVector(codename, op, l, r)
	case lr == 2 && rr == 2:
		return matrixMatrix(codename, op, l, r)
	case lr == 1 && rr == 2:
		return rowBroadcast(codename, op, l, r, true)
	case lr == 2 && rr == 1:
		return rowBroadcast(codename, op, r, l, false)
	default:
		return value.Value{}, diagnostics.New(diagnostics.KindType, codename, 0, 0,
			"operator %q does not support operand ranks %d and %d", op, lr, rr)
	}
}

// applyArith evaluates one `+ - * /` token on two float64 operands.
func applyArith(op string, a, b float64) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	default:
		return a / b
	}
}

// vectorVector applies op elementwise across two equal-length vectors.
func vectorVector(codename, op string, l, r value.Value) (value.Value, error) {
	if l.Node.Len() != r.Node.Len() {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, codename, 0, 0,
			"operator %q requires equal-length vectors, got %d and %d", op, l.Node.Len(), r.Node.Len())
	}
	out := make([]float64, l.Node.Len())
	for i := range out {
		out[i] = applyArith(op, l.Node.AtFlat(i), r.Node.AtFlat(i))
	}
	return value.FromVectorF64(out), nil
}

// matrixMatrix applies op elementwise across two equal-shape matrices.
func matrixMatrix(codename, op string, l, r value.Value) (value.Value, error) {
	ls, rs := l.Node.Shape(), r.Node.Shape()
	if ls[0] != rs[0] || ls[1] != rs[1] {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, codename, 0, 0,
			"operator %q requires equal-shape matrices, got %dx%d and %dx%d", op, ls[0], ls[1], rs[0], rs[1])
	}
	n := ls[0] * ls[1]
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = applyArith(op, l.Node.AtFlat(i), r.Node.AtFlat(i))
	}
	return value.FromMatrixF64(out, ls[0], ls[1]), nil
}

// scalarBroadcast applies op between a scalar and every element of arr
// (a vector or matrix), preserving arr's shape. scalarOnRight reports
// whether the scalar was the right-hand operand of op.
func scalarBroadcast(codename, op string, scalar float64, arr value.Value, scalarOnRight bool) (value.Value, error) {
	n := arr.Node.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		a, b := scalar, arr.Node.AtFlat(i)
		if scalarOnRight {
			a, b = arr.Node.AtFlat(i), scalar
		}
		out[i] = applyArith(op, a, b)
	}
	if arr.Node.Rank() == 1 {
		return value.FromVectorF64(out), nil
	}
	shape := arr.Node.Shape()
	return value.FromMatrixF64(out, shape[0], shape[1]), nil
}

// rowBroadcast applies op between a vector and a matrix whose column count
// matches the vector's length, stretching the vector across every row
// (div_operation.hpp's div1d2d/div2d1d kernels). vecOnLeft reports whether
// the vector was the left-hand operand of op.
func rowBroadcast(codename, op string, vec, mat value.Value, vecOnLeft bool) (value.Value, error) {
	shape := mat.Node.Shape()
	rows, cols := shape[0], shape[1]
	if vec.Node.Len() != cols {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, codename, 0, 0,
			"operator %q requires vector length to match matrix column count, got %d and %d columns",
			op, vec.Node.Len(), cols)
	}
	out := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			vv, mv := vec.Node.AtFlat(c), mat.Node.AtFlat(r*cols+c)
			a, b := mv, vv
			if vecOnLeft {
				a, b = vv, mv
			}
			out[r*cols+c] = applyArith(op, a, b)
		}
	}
	return value.FromMatrixF64(out, rows, cols), nil
}

// NewBinaryOp builds the primitive for infix operator token op.
func NewBinaryOp(op string) func(operands []*graph.Node) graph.Primitive {
	return func(operands []*graph.Node) graph.Primitive {
		return binaryOpPrimitive{codename: "operator" + op, op: op}
	}
}

// unaryNegPrimitive implements prefix `-x`.
type unaryNegPrimitive struct{ codename string }

func (p unaryNegPrimitive) Apply(_ context.Context, args []value.Value) (value.Value, error) {
	v := args[0]
	if !v.IsArray() || v.Node.Rank() != 0 {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"unary - requires a scalar operand, got %s", v.Kind)
	}
	return value.FromScalarF64(-v.Node.AtFlat(0)), nil
}

// NewUnaryNeg builds the prefix `-` primitive.
func NewUnaryNeg(operands []*graph.Node) graph.Primitive {
	return unaryNegPrimitive{codename: "operator-unary"}
}

// unaryNotPrimitive implements prefix `!x`.
type unaryNotPrimitive struct{ codename string }

func (p unaryNotPrimitive) Apply(_ context.Context, args []value.Value) (value.Value, error) {
	truthy, err := args[0].IsTruthy()
	if err != nil {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0, "%v", err)
	}
	return value.Bool(!truthy), nil
}

// NewUnaryNot builds the prefix `!` primitive.
func NewUnaryNot(operands []*graph.Node) graph.Primitive {
	return unaryNotPrimitive{codename: "operator!"}
}
