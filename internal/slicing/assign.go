package slicing

import (
	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/value"
)

// Assign implements spec.md §4.5's slice_assign: it copy-on-writes target
// (via NodeData.EnsureOwned) and overwrites the elements axes selects with
// newValue, which is either a single scalar broadcast across every selected
// position or an array whose element count matches the selection exactly.
func Assign(target value.Value, axes []value.Value, newValue value.Value, codename string, id, col int) (value.Value, error) {
	if !target.IsArray() {
		return value.Value{}, diagnostics.New(diagnostics.KindType, codename, id, col,
			"cannot assign into a value of kind %s", target.Kind)
	}

	switch target.Node.Rank() {
	case 0:
		return assign0D(target, axes, newValue, codename, id, col)
	case 1:
		return assign1D(target, axes, newValue, codename, id, col)
	default:
		return assign2D(target, axes, newValue, codename, id, col)
	}
}

func assign0D(target value.Value, axes []value.Value, newValue value.Value, codename string, id, col int) (value.Value, error) {
	if len(axes) != 1 {
		return value.Value{}, diagnostics.New(diagnostics.KindArity, codename, id, col,
			"assigning into a scalar requires exactly one index argument")
	}
	axis, err := ParseAxis(axes[0], 1, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	if axis.Kind != AxisBasic || axis.Basic.Start != 0 || axis.Basic.Count() != 1 {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, codename, id, col,
			"cannot assign anything but the first element of a scalar")
	}
	raw, err := resolveAssignedValues(newValue, 1, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	return value.FromNodeData(scalarNodeDataFrom(target.Node, raw[0])), nil
}

func assign1D(target value.Value, axes []value.Value, newValue value.Value, codename string, id, col int) (value.Value, error) {
	if len(axes) != 1 {
		return value.Value{}, diagnostics.New(diagnostics.KindArity, codename, id, col,
			"assigning into a vector requires exactly one index argument")
	}
	size := int64(target.Node.Len())
	axis, err := ParseAxis(axes[0], size, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	indices, _, err := resolveAxisIndices(axis, size, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	raw, err := resolveAssignedValues(newValue, len(indices), codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	owned := target.Node.EnsureOwned()
	writeVector1D(owned, indices, raw)
	return value.FromNodeData(owned), nil
}

func assign2D(target value.Value, axes []value.Value, newValue value.Value, codename string, id, col int) (value.Value, error) {
	shape := target.Node.Shape()
	rows, cols := int64(shape[0]), int64(shape[1])

	var rowExpr, colExpr value.Value
	switch len(axes) {
	case 1:
		rowExpr, colExpr = axes[0], value.Nil
	case 2:
		rowExpr, colExpr = axes[0], axes[1]
	default:
		return value.Value{}, diagnostics.New(diagnostics.KindArity, codename, id, col,
			"assigning into a matrix requires one or two index arguments")
	}

	rowAxis, err := ParseAxis(rowExpr, rows, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	colAxis, err := ParseAxis(colExpr, cols, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}

	rowIdx, _, err := resolveAxisIndices(rowAxis, rows, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	colIdx, _, err := resolveAxisIndices(colAxis, cols, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}

	raw, err := resolveAssignedValues(newValue, len(rowIdx)*len(colIdx), codename, id, col)
	if err != nil {
		return value.Value{}, err
	}

	owned := target.Node.EnsureOwned()
	writeMatrix2D(owned, rowIdx, colIdx, raw)
	return value.FromNodeData(owned), nil
}

// resolveAssignedValues turns newValue into exactly n row-major float64
// values: a scalar broadcasts to every position, an array must match n
// exactly, anything else is a type error.
func resolveAssignedValues(newValue value.Value, n int, codename string, id, col int) ([]float64, error) {
	switch {
	case newValue.Kind == value.KindScalar:
		v := newValue.Node.AtFlat(0)
		out := make([]float64, n)
		for i := range out {
			out[i] = v
		}
		return out, nil
	case newValue.IsArray():
		flat := newValue.Node.ToFloat64()
		if len(flat) != n {
			return nil, diagnostics.New(diagnostics.KindDomain, codename, id, col,
				"cannot assign %d value(s) into a selection of %d element(s)", len(flat), n)
		}
		return flat, nil
	default:
		return nil, diagnostics.New(diagnostics.KindType, codename, id, col,
			"cannot assign a value of kind %s into an array", newValue.Kind)
	}
}

func scalarNodeDataFrom(target value.NodeData, raw float64) value.NodeData {
	switch target.Dtype {
	case value.I64:
		return value.NewI64(value.Scalar(int64(raw)))
	case value.U8, value.Bool:
		return value.NodeData{Dtype: target.Dtype, U8: value.Scalar(uint8(raw))}
	default:
		return value.NewF64(value.Scalar(raw))
	}
}

func writeVector1D(n value.NodeData, indices []int64, raw []float64) {
	switch n.Dtype {
	case value.I64:
		for i, idx := range indices {
			n.I64.Set1(int(idx), int64(raw[i]))
		}
	case value.U8, value.Bool:
		for i, idx := range indices {
			n.U8.Set1(int(idx), uint8(raw[i]))
		}
	default:
		for i, idx := range indices {
			n.F64.Set1(int(idx), raw[i])
		}
	}
}

func writeMatrix2D(n value.NodeData, rows, cols []int64, raw []float64) {
	nc := len(cols)
	switch n.Dtype {
	case value.I64:
		for i, r := range rows {
			for j, c := range cols {
				n.I64.Set2(int(r), int(c), int64(raw[i*nc+j]))
			}
		}
	case value.U8, value.Bool:
		for i, r := range rows {
			for j, c := range cols {
				n.U8.Set2(int(r), int(c), uint8(raw[i*nc+j]))
			}
		}
	default:
		for i, r := range rows {
			for j, c := range cols {
				n.F64.Set2(int(r), int(c), raw[i*nc+j])
			}
		}
	}
}
