// Package primitives implements the builtin primitive factories spec.md
// §4.4/§8 and SPEC_FULL.md §5 describe: control flow, list/dict
// construction, dict_keys, and argmax. Each builtin registers one or more
// pattern.Entry shapes so the compiler's general call dispatch can find it.
package primitives

import (
	"context"
	"fmt"

	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/executor"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// blockPrimitive evaluates every operand in order and returns the last
// one's value (or nil for an empty block), grounded on
// `.../plugins/controls/block_operation.cpp`.
type blockPrimitive struct{ codename string }

// Apply is never invoked: graph.Node.Eval type-asserts LazyPrimitive first
// and dispatches to ApplyLazy instead. It exists only so blockPrimitive
// satisfies graph.Primitive, the type graph.New's prim parameter requires.
func (p blockPrimitive) Apply(ctx context.Context, _ []value.Value) (value.Value, error) {
	return value.Value{}, fmt.Errorf("block: Apply called directly, want ApplyLazy")
}

func (p blockPrimitive) ApplyLazy(ctx context.Context, operands []*graph.Node) (value.Value, error) {
	if len(operands) == 0 {
		return value.Nil, nil
	}
	var last value.Value
	for _, op := range operands {
		v, err := op.Eval(ctx, nil)
		if err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
		last = v
	}
	return last, nil
}

// NewBlock builds the `block` primitive.
func NewBlock(operands []*graph.Node) graph.Primitive {
	return blockPrimitive{codename: "block"}
}

// parallelBlockPrimitive evaluates every operand concurrently via
// executor.Dataflow and returns the value of the last operand (by source
// order, not completion order), grounded on
// `.../plugins/controls/parallel_block_operation.cpp`'s wait-all join.
//
// threshold mirrors the original execution_tree's direct-execution
// optimization: a block with few enough operands runs synchronously rather
// than paying goroutine/errgroup setup cost. workerLimit caps how many
// operands run concurrently when the threshold is exceeded (0 = unbounded).
// Both default to the always-concurrent, unbounded behavior unless a
// Config set them otherwise (see RegisterWithOptions).
type parallelBlockPrimitive struct {
	codename    string
	threshold   int
	workerLimit int
}

func (p parallelBlockPrimitive) Apply(ctx context.Context, _ []value.Value) (value.Value, error) {
	return value.Value{}, fmt.Errorf("parallel_block: Apply called directly, want ApplyLazy")
}

func (p parallelBlockPrimitive) ApplyLazy(ctx context.Context, operands []*graph.Node) (value.Value, error) {
	if len(operands) == 0 {
		return value.Nil, nil
	}
	if p.threshold > 0 && len(operands) <= p.threshold {
		results, err := executor.MapOperands(ctx, operands)
		if err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
		return results[len(results)-1], nil
	}
	results, err := executor.Dataflow(ctx, operands, p.workerLimit)
	if err != nil {
		return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
	}
	return results[len(results)-1], nil
}

// NewParallelBlock builds the `parallel_block` primitive with the default
// always-concurrent, unbounded-worker behavior.
func NewParallelBlock(operands []*graph.Node) graph.Primitive {
	return parallelBlockPrimitive{codename: "parallel_block"}
}

// NewParallelBlockWithOptions builds a `parallel_block` factory honoring a
// direct-execution threshold and worker pool limit, as loaded from
// internal/config's runtime tuning.
func NewParallelBlockWithOptions(threshold, workerLimit int) func(operands []*graph.Node) graph.Primitive {
	return func(operands []*graph.Node) graph.Primitive {
		return parallelBlockPrimitive{codename: "parallel_block", threshold: threshold, workerLimit: workerLimit}
	}
}

// ifPrimitive implements `if(cond, then[, else])`, never evaluating the
// untaken branch.
type ifPrimitive struct{ codename string }

func (p ifPrimitive) Apply(ctx context.Context, _ []value.Value) (value.Value, error) {
	return value.Value{}, fmt.Errorf("if: Apply called directly, want ApplyLazy")
}

func (p ifPrimitive) ApplyLazy(ctx context.Context, operands []*graph.Node) (value.Value, error) {
	cond, err := operands[0].Eval(ctx, nil)
	if err != nil {
		return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
	}
	truthy, err := cond.IsTruthy()
	if err != nil {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0, "%v", err)
	}
	if truthy {
		return operands[1].Eval(ctx, nil)
	}
	if len(operands) > 2 {
		return operands[2].Eval(ctx, nil)
	}
	return value.Nil, nil
}

// NewIf builds the `if` primitive.
func NewIf(operands []*graph.Node) graph.Primitive {
	return ifPrimitive{codename: "if"}
}

// whilePrimitive implements `while(cond, body)`, returning the last body
// value evaluated (nil if the loop never runs).
type whilePrimitive struct{ codename string }

func (p whilePrimitive) Apply(ctx context.Context, _ []value.Value) (value.Value, error) {
	return value.Value{}, fmt.Errorf("while: Apply called directly, want ApplyLazy")
}

func (p whilePrimitive) ApplyLazy(ctx context.Context, operands []*graph.Node) (value.Value, error) {
	last := value.Nil
	for {
		cond, err := operands[0].Eval(ctx, nil)
		if err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
		truthy, err := cond.IsTruthy()
		if err != nil {
			return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0, "%v", err)
		}
		if !truthy {
			return last, nil
		}
		last, err = operands[1].Eval(ctx, nil)
		if err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
	}
}

// NewWhile builds the `while` primitive.
func NewWhile(operands []*graph.Node) graph.Primitive {
	return whilePrimitive{codename: "while"}
}
