// Package graph implements the primitive-node dataflow graph spec.md §5
// describes: every compiled expression becomes a tree of Nodes, each
// wrapping a primitive implementation behind an Eval that runs
// synchronously on the calling goroutine and returns a value, not a future.
package graph

import (
	"context"

	"github.com/phylanx-go/phylanx/internal/value"
)

// Primitive is the implementation a Node dispatches to. Operands have
// already been evaluated to Values by the time Apply runs; a primitive that
// wants lazy/short-circuiting operand evaluation (if, while, for, ...)
// instead implements LazyPrimitive.
type Primitive interface {
	Apply(ctx context.Context, operands []value.Value) (value.Value, error)
}

// LazyPrimitive is implemented by control-flow primitives that must
// evaluate their own operand Nodes (rather than have the executor
// eagerly evaluate all of them up front), e.g. "if" never evaluating its
// untaken branch.
type LazyPrimitive interface {
	ApplyLazy(ctx context.Context, operands []*Node) (value.Value, error)
}

// Node is one vertex of the compiled primitive graph: a named primitive
// instance plus its operand sub-graphs.
type Node struct {
	name     string
	prim     Primitive
	operands []*Node
}

// New builds a Node for prim, named name (the canonical composed name from
// internal/names), with the given operand sub-graphs.
func New(name string, prim Primitive, operands []*Node) *Node {
	return &Node{name: name, prim: prim, operands: operands}
}

// Name returns the node's canonical primitive name, satisfying
// value.Handle so a Node can be carried inside a primitive_argument
// (variant 6) without value importing graph.
func (n *Node) Name() string { return n.name }

// Operands returns the node's operand sub-graphs, exposed for primitives
// that need ApplyLazy.
func (n *Node) Operands() []*Node { return n.operands }

// Eval evaluates the node: operands first (direct-execution fast path,
// spec.md §5), then the primitive itself. Satisfies value.Handle.
func (n *Node) Eval(ctx context.Context, _ []value.Value) (value.Value, error) {
	if lazy, ok := n.prim.(LazyPrimitive); ok {
		return lazy.ApplyLazy(ctx, n.operands)
	}

	args := make([]value.Value, len(n.operands))
	for i, op := range n.operands {
		v, err := op.Eval(ctx, nil)
		if err != nil {
			return value.Value{}, err
		}
		args[i] = v
	}
	return n.prim.Apply(ctx, args)
}
