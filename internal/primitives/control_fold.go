package primitives

import (
	"context"

	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// foldLeftPrimitive implements `fold_left(function, init, list)`: left
// associative reduction, returning init unchanged for an empty sequence.
type foldLeftPrimitive struct{ codename string }

func (p foldLeftPrimitive) Apply(ctx context.Context, args []value.Value) (value.Value, error) {
	fn, acc, list := args[0], args[1], args[2]
	if fn.Kind != value.KindPrimitive || fn.Prim == nil {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"fold_left's first argument must be a function")
	}
	elems, err := sequenceOf(list)
	if err != nil {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0, "%v", err)
	}
	for _, e := range elems {
		acc, err = fn.Prim.Eval(ctx, []value.Value{acc, e})
		if err != nil {
			return value.Value{}, diagnostics.Wrap(p.codename, 0, 0, err)
		}
	}
	return acc, nil
}

// NewFoldLeft builds the `fold_left` primitive.
func NewFoldLeft(operands []*graph.Node) graph.Primitive {
	return foldLeftPrimitive{codename: "fold_left"}
}
