package primitives

import (
	"context"

	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// argmaxPrimitive implements `argmax(data[, axis])`: with no axis, the
// index of the maximum element in row-major flattened order; with an axis
// (0 or 1, rank-2 only), one index per remaining row/column. Ties resolve
// to the first (lowest-index) occurrence.
type argmaxPrimitive struct {
	codename string
	hasAxis  bool
}

func (p argmaxPrimitive) Apply(_ context.Context, args []value.Value) (value.Value, error) {
	data := args[0]
	if !data.IsArray() {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"argmax expects an array, got %s", data.Kind)
	}

	if !p.hasAxis {
		return value.FromScalarI64(int64(value.ArgMaxFlat(data.Node))), nil
	}

	axisV := args[1]
	if axisV.Kind != value.KindScalar {
		return value.Value{}, diagnostics.New(diagnostics.KindType, p.codename, 0, 0,
			"argmax's axis argument must be a scalar")
	}
	axis := int(axisV.Node.AtFlat(0))
	if data.Node.Rank() != 2 {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, p.codename, 0, 0,
			"argmax's axis argument requires a rank-2 array, got rank %d", data.Node.Rank())
	}
	if axis != 0 && axis != 1 {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, p.codename, 0, 0,
			"argmax's axis argument must be 0 or 1, got %d", axis)
	}

	indices := value.ArgMaxAxis(data.Node, axis)
	out := make([]int64, len(indices))
	for i, idx := range indices {
		out[i] = int64(idx)
	}
	return value.FromVectorI64(out), nil
}

// NewArgMax builds the one-argument `argmax(data)` primitive.
func NewArgMax(operands []*graph.Node) graph.Primitive {
	return argmaxPrimitive{codename: "argmax"}
}

// NewArgMaxAxis builds the two-argument `argmax(data, axis)` primitive.
func NewArgMaxAxis(operands []*graph.Node) graph.Primitive {
	return argmaxPrimitive{codename: "argmax", hasAxis: true}
}
