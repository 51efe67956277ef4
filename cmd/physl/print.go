package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phylanx-go/phylanx/internal/value"
)

// formatValue renders a primitive_argument the way a REPL/script runner
// prints its final result: compact, NumPy-ish for arrays, bare for scalars.
func formatValue(v value.Value) string {
	switch v.Kind {
	case value.KindNil:
		return "nil"
	case value.KindBool:
		return strconv.FormatBool(v.B)
	case value.KindString:
		return strconv.Quote(v.Str)
	case value.KindScalar:
		return formatNumber(v.Node.AtFlat(0))
	case value.KindArray1Owned, value.KindArray1Ref:
		return formatVector(v)
	case value.KindArray2Owned, value.KindArray2Ref:
		return formatMatrix(v)
	case value.KindList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = formatValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case value.KindDict:
		parts := make([]string, len(v.Dict))
		for i, e := range v.Dict {
			parts[i] = formatValue(e.Key) + ": " + formatValue(e.Value)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case value.KindPrimitive:
		if v.Prim == nil {
			return "<primitive>"
		}
		return fmt.Sprintf("<primitive %s>", v.Prim.Name())
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}

func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatVector(v value.Value) string {
	n := v.Node.Len()
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = formatNumber(v.Node.AtFlat(i))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatMatrix(v value.Value) string {
	shape := v.Node.Shape()
	rows, cols := shape[0], shape[1]
	rowStrs := make([]string, rows)
	for r := 0; r < rows; r++ {
		cells := make([]string, cols)
		for c := 0; c < cols; c++ {
			cells[c] = formatNumber(v.Node.AtFlat(r*cols + c))
		}
		rowStrs[r] = "[" + strings.Join(cells, ", ") + "]"
	}
	return "[" + strings.Join(rowStrs, ", ") + "]"
}
