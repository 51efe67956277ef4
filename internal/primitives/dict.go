package primitives

import (
	"context"

	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// dictKeysPrimitive implements `dict_keys(dict)`: returns the dictionary's
// keys as a list, in insertion order (value.Dict already preserves that
// order, so this is a direct projection).
type dictKeysPrimitive struct{ codename string }

func (p dictKeysPrimitive) Apply(_ context.Context, args []value.Value) (value.Value, error) {
	return dictKeysOperation(args[0], p.codename)
}

// dictKeysOperation is the shared implementation, factored out so it can be
// unit tested without building a graph.Node around it.
func dictKeysOperation(d value.Value, codename string) (value.Value, error) {
	if d.Kind != value.KindDict {
		return value.Value{}, diagnostics.New(diagnostics.KindType, codename, 0, 0,
			"dict_keys expects a dictionary, got %s", d.Kind)
	}
	keys := make([]value.Value, len(d.Dict))
	for i, entry := range d.Dict {
		keys[i] = entry.Key
	}
	return value.List(keys), nil
}

// NewDictKeys builds the `dict_keys` primitive.
func NewDictKeys(operands []*graph.Node) graph.Primitive {
	return dictKeysPrimitive{codename: "dict_keys"}
}

// listPrimitive implements the `list(...)` constructor: wraps its evaluated
// operands as a list Value, in argument order.
type listPrimitive struct{ codename string }

func (p listPrimitive) Apply(_ context.Context, args []value.Value) (value.Value, error) {
	return value.List(append([]value.Value(nil), args...)), nil
}

// NewList builds the `list` primitive.
func NewList(operands []*graph.Node) graph.Primitive {
	return listPrimitive{codename: "list"}
}

// dictPrimitive implements the `dict(...)` constructor: alternating
// key/value operand pairs become dictionary entries, in argument order.
type dictPrimitive struct{ codename string }

func (p dictPrimitive) Apply(_ context.Context, args []value.Value) (value.Value, error) {
	if len(args)%2 != 0 {
		return value.Value{}, diagnostics.New(diagnostics.KindArity, p.codename, 0, 0,
			"dict() expects an even number of key/value arguments, got %d", len(args))
	}
	entries := make([]value.DictEntry, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		entries = append(entries, value.DictEntry{Key: args[i], Value: args[i+1]})
	}
	return value.Dict(entries), nil
}

// NewDict builds the `dict` primitive.
func NewDict(operands []*graph.Node) graph.Primitive {
	return dictPrimitive{codename: "dict"}
}
