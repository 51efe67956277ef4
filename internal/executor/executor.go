// Package executor provides the dataflow combinators the primitive graph's
// control-flow primitives use to evaluate operand sub-graphs: a direct,
// synchronous fast path for the common case, and a bounded-concurrency
// path for parallel_block (spec.md §5).
package executor

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// MapOperands evaluates every operand in order, on the calling goroutine.
// This is the direct-execution fast path: most primitives have few, cheap
// operands, and spinning up goroutines for each would cost more than it
// saves.
func MapOperands(ctx context.Context, operands []*graph.Node) ([]value.Value, error) {
	out := make([]value.Value, len(operands))
	for i, op := range operands {
		v, err := op.Eval(ctx, nil)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Dataflow evaluates every operand concurrently, bounded by limit
// (0 means unbounded), preserving operand order in the result. It is used
// by parallel_block: the first operand error cancels the remaining
// in-flight evaluations and is returned.
func Dataflow(ctx context.Context, operands []*graph.Node, limit int) ([]value.Value, error) {
	out := make([]value.Value, len(operands))
	group, groupCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		group.SetLimit(limit)
	}
	for i, op := range operands {
		i, op := i, op
		group.Go(func() error {
			v, err := op.Eval(groupCtx, nil)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Future represents an in-flight primitive evaluation, letting a caller
// fan a node's Eval out onto its own goroutine and collect the result
// later rather than blocking immediately.
type Future struct {
	done chan struct{}
	val  value.Value
	err  error
}

// Async starts evaluating node on a new goroutine and returns a Future for
// its result.
func Async(ctx context.Context, node *graph.Node) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = node.Eval(ctx, nil)
	}()
	return f
}

// Get blocks until the future resolves, or ctx is cancelled first. A ctx
// that is already done when Get is called wins even if the future has
// also resolved.
func (f *Future) Get(ctx context.Context) (value.Value, error) {
	if err := ctx.Err(); err != nil {
		return value.Value{}, err
	}
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return value.Value{}, ctx.Err()
	}
}
