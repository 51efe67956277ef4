package primitives

import (
	"context"

	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// constantBuiltin implements `constant(value, count)`: a vector of count
// copies of value, the standard way to materialize a fresh owned array for
// subsequent slice-assignment into.
type constantBuiltin struct{ codename string }

func (p constantBuiltin) Apply(_ context.Context, args []value.Value) (value.Value, error) {
	fill, count := args[0], args[1]
	if fill.Kind != value.KindScalar {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"constant()'s first argument must be a scalar")
	}
	if count.Kind != value.KindScalar {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"constant()'s second argument must be a scalar")
	}
	n := int(count.Node.AtFlat(0))
	if n < 0 {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, p.codename, 0, 0,
			"constant()'s count must not be negative, got %d", n)
	}
	v := fill.Node.AtFlat(0)
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return value.FromVectorF64(out), nil
}

// NewConstant builds the `constant` primitive.
func NewConstant(operands []*graph.Node) graph.Primitive {
	return constantBuiltin{codename: "constant"}
}
