package primitives

import (
	"context"
	"fmt"

	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/executor"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// forPrimitive implements `for(init, cond, reinit, body)`. init runs once,
// direct and synchronous; cond/body/reinit then alternate each iteration,
// matching `for_operation.cpp`'s chained-continuation loop rather than a
// single recursive eval.
type forPrimitive struct{ codename string }

func (p forPrimitive) Apply(ctx context.Context, _ []value.Value) (value.Value, error) {
	return value.Value{}, fmt.Errorf("for: Apply called directly, want ApplyLazy")
}

func (p forPrimitive) ApplyLazy(ctx context.Context, operands []*graph.Node) (value.Value, error) {
	init, cond, reinit, body := operands[0], operands[1], operands[2], operands[3]

	if _, err := init.Eval(ctx, nil); err != nil {
		return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
	}

	last := value.Nil
	for {
		c, err := cond.Eval(ctx, nil)
		if err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
		truthy, err := c.IsTruthy()
		if err != nil {
			return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0, "%v", err)
		}
		if !truthy {
			return last, nil
		}
		last, err = body.Eval(ctx, nil)
		if err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
		if _, err := reinit.Eval(ctx, nil); err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
	}
}

// NewFor builds the `for` primitive.
func NewFor(operands []*graph.Node) graph.Primitive {
	return forPrimitive{codename: "for"}
}

// forEachPrimitive implements `for_each(function, list)`: invokes function
// with each list element in turn (direct execution, in order), discarding
// the individual results, and returns nil.
type forEachPrimitive struct{ codename string }

func (p forEachPrimitive) Apply(ctx context.Context, args []value.Value) (value.Value, error) {
	fn, list := args[0], args[1]
	if fn.Kind != value.KindPrimitive || fn.Prim == nil {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"for_each's first argument must be a function")
	}
	elems, err := sequenceOf(list)
	if err != nil {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0, "%v", err)
	}
	for _, e := range elems {
		if _, err := fn.Prim.Eval(ctx, []value.Value{e}); err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
	}
	return value.Nil, nil
}

// NewForEach builds the `for_each` primitive.
func NewForEach(operands []*graph.Node) graph.Primitive {
	return forEachPrimitive{codename: "for_each"}
}

// sequenceOf returns the elements of a list Value, or the elements of a
// rank-1 array Value, so for_each/fold_left work over either.
func sequenceOf(v value.Value) ([]value.Value, error) {
	switch v.Kind {
	case value.KindList:
		return v.List, nil
	case value.KindArray1Owned, value.KindArray1Ref:
		n := v.Node.Len()
		out := make([]value.Value, n)
		for i := 0; i < n; i++ {
			out[i] = value.FromScalarF64(v.Node.AtFlat(i))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list or vector, got %s", v.Kind)
	}
}
