package slicing

import (
	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/value"
)

// Extract implements spec.md §4.5's extraction dispatch: it slices target
// (rank 0, 1, or 2) according to axes (one axis.Value per dimension, or a
// single axis for a 2-D target meaning "these rows, every column").
func Extract(target value.Value, axes []value.Value, codename string, id, col int) (value.Value, error) {
	if !target.IsArray() {
		return value.Value{}, diagnostics.New(diagnostics.KindType, codename, id, col,
			"cannot slice a value of kind %s", target.Kind)
	}

	switch target.Node.Rank() {
	case 0:
		return extract0D(target, axes, codename, id, col)
	case 1:
		return extract1D(target, axes, codename, id, col)
	default:
		return extract2D(target, axes, codename, id, col)
	}
}

func extract0D(target value.Value, axes []value.Value, codename string, id, col int) (value.Value, error) {
	if len(axes) != 1 {
		return value.Value{}, diagnostics.New(diagnostics.KindArity, codename, id, col,
			"slicing a scalar requires exactly one index argument")
	}
	axis, err := ParseAxis(axes[0], 1, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	if axis.Kind != AxisBasic || axis.Basic.Start != 0 || axis.Basic.Step != 1 || axis.Basic.Count() != 1 {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, codename, id, col,
			"cannot extract anything but the first element from a scalar")
	}
	return target, nil
}

func extract1D(target value.Value, axes []value.Value, codename string, id, col int) (value.Value, error) {
	if len(axes) != 1 {
		return value.Value{}, diagnostics.New(diagnostics.KindArity, codename, id, col,
			"slicing a vector requires exactly one index argument")
	}
	size := int64(target.Node.Len())
	axis, err := ParseAxis(axes[0], size, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}

	switch axis.Kind {
	case AxisBasic:
		return value.FromNodeData(basicNodeData1D(target.Node, axis.Basic)), nil
	case AxisAdvancedInt:
		return gatherByIntIndex1D(target.Node, axis.IntIdx, size, codename, id, col)
	default: // AxisAdvancedBool
		return gatherByBoolMask1D(target.Node, axis.BoolIdx, size, codename, id, col)
	}
}

func extract2D(target value.Value, axes []value.Value, codename string, id, col int) (value.Value, error) {
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
			"slicing a matrix requires one or two index arguments")
	}

	rowAxis, err := ParseAxis(rowExpr, rows, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	colAxis, err := ParseAxis(colExpr, cols, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}

	if rowAxis.Kind == AxisBasic && colAxis.Kind == AxisBasic {
		return value.FromNodeData(basicNodeData2D(target.Node, rowAxis.Basic, colAxis.Basic)), nil
	}

	rowIdx, rowCollapse, err := resolveAxisIndices(rowAxis, rows, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	colIdx, colCollapse, err := resolveAxisIndices(colAxis, cols, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	return gather2D(target.Node, rowIdx, rowCollapse, colIdx, colCollapse), nil
}

// --- basic (strided-view) extraction ---------------------------------------

func basicNodeData1D(n value.NodeData, b Basic) value.NodeData {
	switch n.Dtype {
	case value.I64:
		return value.NewI64(basic1D(n.I64, b))
	case value.U8, value.Bool:
		return value.NodeData{Dtype: n.Dtype, U8: basic1D(n.U8, b)}
	default:
		return value.NewF64(basic1D(n.F64, b))
	}
}

func basic1D[T value.Element](a value.Array[T], b Basic) value.Array[T] {
	if b.Single {
		return value.Scalar(a.At1(int(b.Start)))
	}
	n := int(b.Count())
	if n == 0 {
		return value.Array[T]{Shape: []int{0}, Strides: []int{1}, Owned: true}
	}
	return a.View1(int(b.Start), n, int(b.Step))
}

func basicNodeData2D(n value.NodeData, rowB, colB Basic) value.NodeData {
	switch n.Dtype {
	case value.I64:
		return value.NewI64(basic2D(n.I64, rowB, colB))
	case value.U8, value.Bool:
		return value.NodeData{Dtype: n.Dtype, U8: basic2D(n.U8, rowB, colB)}
	default:
		return value.NewF64(basic2D(n.F64, rowB, colB))
	}
}

// basic2D slices a matrix along both axes as a single strided view,
// collapsing any axis whose index was a bare scalar (Single) down to a
// vector or scalar result.
func basic2D[T value.Element](a value.Array[T], rowB, colB Basic) value.Array[T] {
	rowStride := a.Strides[0] * int(rowB.Step)
	colStride := a.Strides[1] * int(colB.Step)
	offset := a.Offset + int(rowB.Start)*a.Strides[0] + int(colB.Start)*a.Strides[1]
	nr, nc := int(rowB.Count()), int(colB.Count())

	switch {
	case rowB.Single && colB.Single:
		return value.Array[T]{Shape: nil, Strides: nil, Offset: offset, Data: a.Data, Owned: false}
	case rowB.Single:
		return value.Array[T]{Shape: []int{nc}, Strides: []int{colStride}, Offset: offset, Data: a.Data, Owned: false}
	case colB.Single:
		return value.Array[T]{Shape: []int{nr}, Strides: []int{rowStride}, Offset: offset, Data: a.Data, Owned: false}
	default:
		return value.Array[T]{
			Shape:   []int{nr, nc},
			Strides: []int{rowStride, colStride},
			Offset:  offset,
			Data:    a.Data,
			Owned:   false,
		}
	}
}

// --- advanced (gather) extraction ------------------------------------------

func gatherByIntIndex1D(n value.NodeData, idx value.NodeData, size int64, codename string, id, col int) (value.Value, error) {
	indices, err := normalizeIndexList(idx.ToFloat64(), size, codename, id, col)
	if err != nil {
		return value.Value{}, err
	}
	switch idx.Rank() {
	case 0:
		return value.FromNodeData(gatherFlat(n, indices)), nil
	case 1:
		return value.FromNodeData(gatherVector(n, indices)), nil
	default:
		shape := idx.Shape()
		return value.FromNodeData(gatherMatrixFromVector(n, indices, shape[0], shape[1])), nil
	}
}

func gatherByBoolMask1D(n value.NodeData, mask value.NodeData, size int64, codename string, id, col int) (value.Value, error) {
	if int64(mask.Len()) != size {
		return value.Value{}, diagnostics.New(diagnostics.KindDomain, codename, id, col,
			"boolean mask length %d does not match target length %d", mask.Len(), size)
	}
	var indices []int64
	for i := 0; i < mask.Len(); i++ {
		if mask.AtFlat(i) != 0 {
			indices = append(indices, int64(i))
		}
	}
	return value.FromNodeData(gatherVector(n, indices)), nil
}

func normalizeIndexList(raw []float64, size int64, codename string, id, col int) ([]int64, error) {
	out := make([]int64, len(raw))
	for i, f := range raw {
		idx := int64(f)
		if idx < 0 {
			idx += size
		}
		if idx < 0 || idx >= size {
			return nil, diagnostics.IndexOutOfRange(codename, id, col, int64(f), size)
		}
		out[i] = idx
	}
	return out, nil
}

func gatherFlat(n value.NodeData, indices []int64) value.NodeData {
	switch n.Dtype {
	case value.I64:
		return value.NewI64(value.Scalar(n.I64.At1(int(indices[0]))))
	case value.U8, value.Bool:
		return value.NodeData{Dtype: n.Dtype, U8: value.Scalar(n.U8.At1(int(indices[0])))}
	default:
		return value.NewF64(value.Scalar(n.F64.At1(int(indices[0]))))
	}
}

func gatherVector(n value.NodeData, indices []int64) value.NodeData {
	switch n.Dtype {
	case value.I64:
		out := make([]int64, len(indices))
		for i, ix := range indices {
			out[i] = n.I64.At1(int(ix))
		}
		return value.NewI64(value.FromVector(out))
	case value.U8, value.Bool:
		out := make([]uint8, len(indices))
		for i, ix := range indices {
			out[i] = n.U8.At1(int(ix))
		}
		return value.NodeData{Dtype: n.Dtype, U8: value.FromVector(out)}
	default:
		out := make([]float64, len(indices))
		for i, ix := range indices {
			out[i] = n.F64.At1(int(ix))
		}
		return value.NewF64(value.FromVector(out))
	}
}

func gatherMatrixFromVector(n value.NodeData, indices []int64, rows, cols int) value.NodeData {
	switch n.Dtype {
	case value.I64:
		out := make([]int64, len(indices))
		for i, ix := range indices {
			out[i] = n.I64.At1(int(ix))
		}
		return value.NewI64(value.FromMatrix(out, rows, cols))
	case value.U8, value.Bool:
		out := make([]uint8, len(indices))
		for i, ix := range indices {
			out[i] = n.U8.At1(int(ix))
		}
		return value.NodeData{Dtype: n.Dtype, U8: value.FromMatrix(out, rows, cols)}
	default:
		out := make([]float64, len(indices))
		for i, ix := range indices {
			out[i] = n.F64.At1(int(ix))
		}
		return value.NewF64(value.FromMatrix(out, rows, cols))
	}
}

// resolveAxisIndices flattens any axis kind into a concrete, bounds-checked
// list of indices along one dimension, plus whether that dimension should
// collapse out of the result shape (true for a bare-scalar basic index).
func resolveAxisIndices(axis Axis, size int64, codename string, id, col int) ([]int64, bool, error) {
	switch axis.Kind {
	case AxisBasic:
		b := axis.Basic
		n := int(b.Count())
		out := make([]int64, n)
		for i := 0; i < n; i++ {
			out[i] = b.Start + int64(i)*b.Step
		}
		return out, b.Single, nil
	case AxisAdvancedInt:
		idx, err := normalizeIndexList(axis.IntIdx.ToFloat64(), size, codename, id, col)
		if err != nil {
			return nil, false, err
		}
		return idx, axis.IntIdx.Rank() == 0, nil
	default: // AxisAdvancedBool
		if int64(axis.BoolIdx.Len()) != size {
			return nil, false, diagnostics.New(diagnostics.KindDomain, codename, id, col,
				"boolean mask length %d does not match axis length %d", axis.BoolIdx.Len(), size)
		}
		var out []int64
		for i := 0; i < axis.BoolIdx.Len(); i++ {
			if axis.BoolIdx.AtFlat(i) != 0 {
				out = append(out, int64(i))
			}
		}
		return out, false, nil
	}
}

func gather2D(n value.NodeData, rowIdx []int64, rowCollapse bool, colIdx []int64, colCollapse bool) value.Value {
	switch {
	case rowCollapse && colCollapse:
		return value.FromNodeData(gatherFlat2D(n, rowIdx[0], colIdx[0]))
	case rowCollapse:
		return value.FromNodeData(gatherRowVector(n, rowIdx[0], colIdx))
	case colCollapse:
		return value.FromNodeData(gatherColVector(n, rowIdx, colIdx[0]))
	default:
		return value.FromNodeData(gatherMatrix2D(n, rowIdx, colIdx))
	}
}

func gatherFlat2D(n value.NodeData, r, c int64) value.NodeData {
	switch n.Dtype {
	case value.I64:
		return value.NewI64(value.Scalar(n.I64.At2(int(r), int(c))))
	case value.U8, value.Bool:
		return value.NodeData{Dtype: n.Dtype, U8: value.Scalar(n.U8.At2(int(r), int(c)))}
	default:
		return value.NewF64(value.Scalar(n.F64.At2(int(r), int(c))))
	}
}

func gatherRowVector(n value.NodeData, r int64, cols []int64) value.NodeData {
	switch n.Dtype {
	case value.I64:
		out := make([]int64, len(cols))
		for i, c := range cols {
			out[i] = n.I64.At2(int(r), int(c))
		}
		return value.NewI64(value.FromVector(out))
	case value.U8, value.Bool:
		out := make([]uint8, len(cols))
		for i, c := range cols {
			out[i] = n.U8.At2(int(r), int(c))
		}
		return value.NodeData{Dtype: n.Dtype, U8: value.FromVector(out)}
	default:
		out := make([]float64, len(cols))
		for i, c := range cols {
			out[i] = n.F64.At2(int(r), int(c))
		}
		return value.NewF64(value.FromVector(out))
	}
}

func gatherColVector(n value.NodeData, rows []int64, c int64) value.NodeData {
	switch n.Dtype {
	case value.I64:
		out := make([]int64, len(rows))
		for i, r := range rows {
			out[i] = n.I64.At2(int(r), int(c))
		}
		return value.NewI64(value.FromVector(out))
	case value.U8, value.Bool:
		out := make([]uint8, len(rows))
		for i, r := range rows {
			out[i] = n.U8.At2(int(r), int(c))
		}
		return value.NodeData{Dtype: n.Dtype, U8: value.FromVector(out)}
	default:
		out := make([]float64, len(rows))
		for i, r := range rows {
			out[i] = n.F64.At2(int(r), int(c))
		}
		return value.NewF64(value.FromVector(out))
	}
}

func gatherMatrix2D(n value.NodeData, rows, cols []int64) value.NodeData {
	nr, nc := len(rows), len(cols)
	switch n.Dtype {
	case value.I64:
		out := make([]int64, nr*nc)
		for i, r := range rows {
			for j, c := range cols {
				out[i*nc+j] = n.I64.At2(int(r), int(c))
			}
		}
		return value.NewI64(value.FromMatrix(out, nr, nc))
	case value.U8, value.Bool:
		out := make([]uint8, nr*nc)
		for i, r := range rows {
			for j, c := range cols {
				out[i*nc+j] = n.U8.At2(int(r), int(c))
			}
		}
		return value.NodeData{Dtype: n.Dtype, U8: value.FromMatrix(out, nr, nc)}
	default:
		out := make([]float64, nr*nc)
		for i, r := range rows {
			for j, c := range cols {
				out[i*nc+j] = n.F64.At2(int(r), int(c))
			}
		}
		return value.NewF64(value.FromMatrix(out, nr, nc))
	}
}
