package slicing

import (
	"testing"

	"github.com/phylanx-go/phylanx/internal/value"
)

func TestParseAxisNilIsFullRange(t *testing.T) {
	axis, err := ParseAxis(value.Nil, 5, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis.Kind != AxisBasic || axis.Basic.Start != 0 || axis.Basic.Stop != 5 || axis.Basic.Step != 1 {
		t.Errorf("got %+v", axis)
	}
	if axis.Basic.Count() != 5 {
		t.Errorf("Count() = %d, want 5", axis.Basic.Count())
	}
}

func TestParseAxisScalarSingle(t *testing.T) {
	axis, err := ParseAxis(value.FromScalarI64(-1), 5, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !axis.Basic.Single || axis.Basic.Start != 4 {
		t.Errorf("got %+v, want Single at index 4", axis.Basic)
	}
}

func TestParseAxisScalarOutOfRange(t *testing.T) {
	if _, err := ParseAxis(value.FromScalarI64(10), 5, "slice", 1, 1); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestParseAxisBasicListDefaults(t *testing.T) {
	elems := []value.Value{value.Nil, value.Nil, value.Nil}
	axis, err := ParseAxis(value.List(elems), 7, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis.Basic.Start != 0 || axis.Basic.Stop != 7 || axis.Basic.Step != 1 {
		t.Errorf("got %+v", axis.Basic)
	}
}

func TestParseAxisBasicListNegativeNormalization(t *testing.T) {
	elems := []value.Value{value.FromScalarI64(-3), value.FromScalarI64(-1), value.Nil}
	axis, err := ParseAxis(value.List(elems), 10, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis.Basic.Start != 7 || axis.Basic.Stop != 9 {
		t.Errorf("got start=%d stop=%d, want 7, 9", axis.Basic.Start, axis.Basic.Stop)
	}
	if axis.Basic.Count() != 2 {
		t.Errorf("Count() = %d, want 2", axis.Basic.Count())
	}
}

func TestParseAxisBasicListZeroStepIsDomainError(t *testing.T) {
	elems := []value.Value{value.Nil, value.Nil, value.FromScalarI64(0)}
	if _, err := ParseAxis(value.List(elems), 10, "slice", 1, 1); err == nil {
		t.Error("expected domain error for step == 0")
	}
}

func TestParseAxisBasicListStartBeyondSizeIsDomainError(t *testing.T) {
	elems := []value.Value{value.FromScalarI64(10), value.Nil, value.Nil}
	if _, err := ParseAxis(value.List(elems), 5, "slice", 1, 1); err == nil {
		t.Error("expected domain error for start >= size with non-single span")
	}
}

func TestParseAxisBasicListStartEqualsStopIsAllowed(t *testing.T) {
	elems := []value.Value{value.FromScalarI64(5), value.FromScalarI64(5), value.Nil}
	axis, err := ParseAxis(value.List(elems), 5, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis.Basic.Count() != 0 {
		t.Errorf("Count() = %d, want 0 for an empty span", axis.Basic.Count())
	}
}

func TestParseAxisAdvancedIntIndex(t *testing.T) {
	idx := value.List([]value.Value{value.FromVectorF64([]float64{2, 0, 1})})
	axis, err := ParseAxis(idx, 5, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis.Kind != AxisAdvancedInt {
		t.Fatalf("Kind = %v, want AxisAdvancedInt", axis.Kind)
	}
	if axis.IntIdx.Rank() != 1 || axis.IntIdx.Len() != 3 {
		t.Errorf("IntIdx = %+v", axis.IntIdx)
	}
}

func TestParseAxisAdvancedBoolIndex(t *testing.T) {
	mask := value.List([]value.Value{
		value.Value{Kind: value.KindArray1Owned, Node: value.NewBoolMask(value.FromVector([]uint8{1, 0, 1}))},
	})
	axis, err := ParseAxis(mask, 3, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if axis.Kind != AxisAdvancedBool {
		t.Fatalf("Kind = %v, want AxisAdvancedBool", axis.Kind)
	}
	if axis.BoolIdx.Len() != 3 {
		t.Errorf("BoolIdx.Len() = %d, want 3", axis.BoolIdx.Len())
	}
}

func TestBasicCountNegativeStep(t *testing.T) {
	b := Basic{Start: 5, Stop: 1, Step: -2}
	if got := b.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestParseAxisRejectsUnsupportedKind(t *testing.T) {
	if _, err := ParseAxis(value.String("nope"), 5, "slice", 1, 1); err == nil {
		t.Error("expected type error for a string index")
	}
}
