// Package slicing implements the extraction/assignment engine of spec.md
// §4.5: basic slices, advanced integer-array indexing, and advanced
// boolean-mask indexing, over 0/1/2-D value.Value targets.
package slicing

import (
	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/value"
)

// Basic is a normalized (start, stop, step) triple for one axis. Single is
// true when the original index was a bare scalar (as opposed to a
// list-form range), meaning the extraction collapses that axis rather than
// keeping it as a length-1 dimension.
type Basic struct {
	Start, Stop, Step int64
	Single            bool
}

// AxisKind distinguishes the three index forms accepted in any slice
// position (spec.md §4.5).
type AxisKind int

const (
	AxisBasic AxisKind = iota
	AxisAdvancedInt
	AxisAdvancedBool
)

// Axis is one parsed slice argument, covering exactly one dimension of the
// target.
type Axis struct {
	Kind    AxisKind
	Basic   Basic
	IntIdx  value.NodeData // Dtype == I64, rank 0, 1 or 2
	BoolIdx value.NodeData // Dtype == Bool, rank 1 or 2
}

// ParseAxis interprets v as a slice argument against an axis of the given
// size, normalizing negative indices and rejecting out-of-range/zero-step
// requests per spec.md §4.5's "Normalization" rules.
func ParseAxis(v value.Value, size int64, codename string, id, col int) (Axis, error) {
	switch v.Kind {
	case value.KindNil:
		return Axis{Kind: AxisBasic, Basic: Basic{Start: 0, Stop: size, Step: 1}}, nil

	case value.KindScalar:
		idx, err := normalizeChecked(scalarToInt64(v), size, codename, id, col)
		if err != nil {
			return Axis{}, err
		}
		return Axis{Kind: AxisBasic, Basic: Basic{Start: idx, Stop: idx + 1, Step: 1, Single: true}}, nil

	case value.KindList:
		if len(v.List) == 1 && v.List[0].IsArray() && v.List[0].Node.Rank() >= 1 {
			nd := v.List[0].Node
			if nd.Dtype == value.Bool {
				return Axis{Kind: AxisAdvancedBool, BoolIdx: nd}, nil
			}
			return Axis{Kind: AxisAdvancedInt, IntIdx: toInt64NodeData(nd)}, nil
		}
		return parseBasicList(v.List, size, codename, id, col)

	default:
		return Axis{}, diagnostics.New(diagnostics.KindType, codename, id, col,
			"unsupported indexing type %s", v.Kind)
	}
}

func parseBasicList(elems []value.Value, size int64, codename string, id, col int) (Axis, error) {
	start, stop, step := int64(0), size, int64(1)
	if len(elems) >= 1 && elems[0].Kind != value.KindNil {
		start = scalarToInt64(elems[0])
	}
	if len(elems) >= 2 && elems[1].Kind != value.KindNil {
		stop = scalarToInt64(elems[1])
	}
	if len(elems) >= 3 && elems[2].Kind != value.KindNil {
		step = scalarToInt64(elems[2])
	}

	if start < 0 {
		start += size
	}
	if stop < 0 {
		stop += size
	}

	if step == 0 {
		return Axis{}, diagnostics.New(diagnostics.KindDomain, codename, id, col,
			"step can not be zero")
	}
	if start < 0 || start > size {
		return Axis{}, diagnostics.IndexOutOfRange(codename, id, col, start, size)
	}
	if stop < 0 || stop > size {
		return Axis{}, diagnostics.IndexOutOfRange(codename, id, col, stop, size)
	}
	if start >= size && start != stop && step > 0 {
		return Axis{}, diagnostics.IndexOutOfRange(codename, id, col, start, size)
	}

	return Axis{Kind: AxisBasic, Basic: Basic{Start: start, Stop: stop, Step: step}}, nil
}

// Count returns the number of elements the range [Start, Stop) with the
// given Step selects.
func (b Basic) Count() int64 {
	if b.Single {
		return 1
	}
	if b.Step > 0 {
		if b.Stop <= b.Start {
			return 0
		}
		return (b.Stop - b.Start + b.Step - 1) / b.Step
	}
	if b.Stop >= b.Start {
		return 0
	}
	return (b.Start - b.Stop - b.Step - 1) / (-b.Step)
}

func normalizeChecked(idx, size int64, codename string, id, col int) (int64, error) {
	if idx < 0 {
		idx += size
	}
	if idx < 0 || idx >= size {
		return 0, diagnostics.IndexOutOfRange(codename, id, col, idx, size)
	}
	return idx, nil
}

func scalarToInt64(v value.Value) int64 {
	if !v.IsArray() {
		return 0
	}
	return int64(v.Node.AtFlat(0))
}

func toInt64NodeData(n value.NodeData) value.NodeData {
	if n.Dtype == value.I64 {
		return n
	}
	flat := n.ToFloat64()
	data := make([]int64, len(flat))
	for i, f := range flat {
		data[i] = int64(f)
	}
	switch n.Rank() {
	case 0:
		return value.NewI64(value.Scalar(data[0]))
	case 1:
		return value.NewI64(value.FromVector(data))
	default:
		shape := n.Shape()
		return value.NewI64(value.FromMatrix(data, shape[0], shape[1]))
	}
}
