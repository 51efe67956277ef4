package compiler

import (
	"context"

	"github.com/phylanx-go/phylanx/internal/ast"
	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/env"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/slicing"
	"github.com/phylanx-go/phylanx/internal/value"
)

// compileSlice implements spec.md §4.2.3: when the target is a bare
// variable reference, the read and the slice fuse into a single
// access-variable node that slices on read, instead of materializing the
// full variable and then slicing it. Any other target falls through to
// general handling: compile the target expression, then slice its value.
func (c *Compiler) compileSlice(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	if len(expr.Args) < 2 || len(expr.Args) > 3 {
		return nil, c.errf(diagnostics.KindArity, expr.Pos, "slice() takes a target and one or two index arguments")
	}
	targetExpr := expr.Args[0]
	idxExprs := expr.Args[1:]

	if ast.IsIdentifier(targetExpr) {
		if b, ok := e.Find(targetExpr.Ident); ok && b.Kind == env.KindVariable {
			axisNodes, err := c.compileAll(e, idxExprs)
			if err != nil {
				return nil, err
			}
			name := c.nextName("slice-variable", targetExpr.Ident, expr.Pos)
			prim := sliceVariablePrimitive{cell: b.Cell, codename: name, id: expr.Pos.ID, col: expr.Pos.Col}
			return graph.New(name, prim, axisNodes), nil
		}
	}

	targetNode, err := c.Compile(e, targetExpr)
	if err != nil {
		return nil, err
	}
	axisNodes, err := c.compileAll(e, idxExprs)
	if err != nil {
		return nil, err
	}
	name := c.nextName("slice", "", expr.Pos)
	prim := sliceGeneralPrimitive{codename: name, id: expr.Pos.ID, col: expr.Pos.Col}
	operands := append([]*graph.Node{targetNode}, axisNodes...)
	return graph.New(name, prim, operands), nil
}

func (c *Compiler) compileAll(e *env.Environment, exprs []ast.Expr) ([]*graph.Node, error) {
	out := make([]*graph.Node, len(exprs))
	for i, x := range exprs {
		node, err := c.Compile(e, x)
		if err != nil {
			return nil, err
		}
		out[i] = node
	}
	return out, nil
}

// sliceVariablePrimitive reads a variable cell and slices it in the same
// step, avoiding materializing the unsliced value first.
type sliceVariablePrimitive struct {
	cell     *env.Cell
	codename string
	id, col  int
}

func (p sliceVariablePrimitive) Apply(ctx context.Context, axes []value.Value) (value.Value, error) {
	target, err := p.cell.Read(ctx)
	if err != nil {
		return value.Value{}, diagnostics.Wrap(p.codename, p.id, p.col, err)
	}
	return slicing.Extract(target, axes, p.codename, p.id, p.col)
}

// sliceGeneralPrimitive slices an already-evaluated target value; operands
// are [target, axis...].
type sliceGeneralPrimitive struct {
	codename string
	id, col  int
}

func (p sliceGeneralPrimitive) Apply(_ context.Context, vals []value.Value) (value.Value, error) {
	return slicing.Extract(vals[0], vals[1:], p.codename, p.id, p.col)
}

// compileStore implements the `store(target, value)` primitive: writing
// through a plain variable, or, when target is a slice(...) expression,
// a slice_assign into the variable it names.
func (c *Compiler) compileStore(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	if len(expr.Args) != 2 {
		return nil, c.errf(diagnostics.KindArity, expr.Pos, "store() takes exactly a target and a value")
	}
	targetExpr, valueExpr := expr.Args[0], expr.Args[1]

	valueNode, err := c.Compile(e, valueExpr)
	if err != nil {
		return nil, err
	}

	if targetExpr.Kind == ast.KindFunctionCall && targetExpr.Ident == "slice" {
		sliceArgs := targetExpr.Args
		if len(sliceArgs) < 2 {
			return nil, c.errf(diagnostics.KindArity, expr.Pos, "store()'s slice target needs at least one index argument")
		}
		varExpr := sliceArgs[0]
		if !ast.IsIdentifier(varExpr) {
			return nil, c.errf(diagnostics.KindBinding, expr.Pos, "store()'s sliced target must be a plain variable")
		}
		b, ok := e.Find(varExpr.Ident)
		if !ok || b.Kind != env.KindVariable {
			return nil, c.errf(diagnostics.KindBinding, expr.Pos, "undefined variable %q", varExpr.Ident)
		}
		axisNodes, err := c.compileAll(e, sliceArgs[1:])
		if err != nil {
			return nil, err
		}
		name := c.nextName("store-slice", varExpr.Ident, expr.Pos)
		prim := storeSlicePrimitive{cell: b.Cell, codename: name, id: expr.Pos.ID, col: expr.Pos.Col}
		operands := append(axisNodes, valueNode)
		return graph.New(name, prim, operands), nil
	}

	if ast.IsIdentifier(targetExpr) {
		b, ok := e.Find(targetExpr.Ident)
		if !ok || b.Kind != env.KindVariable {
			return nil, c.errf(diagnostics.KindBinding, expr.Pos, "undefined variable %q", targetExpr.Ident)
		}
		name := c.nextName("store", targetExpr.Ident, expr.Pos)
		prim := storeVariablePrimitive{cell: b.Cell}
		return graph.New(name, prim, []*graph.Node{valueNode}), nil
	}

	return nil, c.errf(diagnostics.KindBinding, expr.Pos, "store()'s target must be a variable or a slice(...) expression")
}

type storeVariablePrimitive struct{ cell *env.Cell }

func (p storeVariablePrimitive) Apply(_ context.Context, vals []value.Value) (value.Value, error) {
	p.cell.Write(vals[0])
	return vals[0], nil
}

// storeSlicePrimitive writes through a copy-on-write slice_assign into the
// variable's storage; operands are [axis..., newValue].
type storeSlicePrimitive struct {
	cell     *env.Cell
	codename string
	id, col  int
}

func (p storeSlicePrimitive) Apply(ctx context.Context, vals []value.Value) (value.Value, error) {
	n := len(vals)
	axes, newValue := vals[:n-1], vals[n-1]
	current, err := p.cell.Read(ctx)
	if err != nil {
		return value.Value{}, diagnostics.Wrap(p.codename, p.id, p.col, err)
	}
	updated, err := slicing.Assign(current, axes, newValue, p.codename, p.id, p.col)
	if err != nil {
		return value.Value{}, err
	}
	p.cell.Write(updated)
	return updated, nil
}
