package slicing

import (
	"testing"

	"github.com/phylanx-go/phylanx/internal/value"
)

func idxList(v value.Value) []value.Value { return []value.Value{v} }

func TestExtract0DTrivialSlice(t *testing.T) {
	target := value.FromScalarF64(42)
	got, err := Extract(target, idxList(value.FromScalarI64(0)), "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Node.AtFlat(0) != 42 {
		t.Errorf("got %v, want 42", got.Node.AtFlat(0))
	}
}

func TestExtract1DSingleIndex(t *testing.T) {
	target := value.FromVectorF64([]float64{10, 20, 30, 40})
	got, err := Extract(target, idxList(value.FromScalarI64(2)), "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindScalar {
		t.Errorf("Kind = %v, want KindScalar", got.Kind)
	}
	if got.Node.AtFlat(0) != 30 {
		t.Errorf("got %v, want 30", got.Node.AtFlat(0))
	}
}

func TestExtract1DBasicRangeIsView(t *testing.T) {
	target := value.FromVectorF64([]float64{10, 20, 30, 40, 50})
	rng := value.List([]value.Value{value.FromScalarI64(1), value.FromScalarI64(4), value.Nil})
	got, err := Extract(target, idxList(rng), "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindArray1Ref {
		t.Errorf("Kind = %v, want KindArray1Ref", got.Kind)
	}
	want := []float64{20, 30, 40}
	for i, w := range want {
		if got.Node.AtFlat(i) != w {
			t.Errorf("element %d = %v, want %v", i, got.Node.AtFlat(i), w)
		}
	}
}

func TestExtract1DNegativeStep(t *testing.T) {
	target := value.FromVectorF64([]float64{10, 20, 30, 40, 50})
	rng := value.List([]value.Value{value.FromScalarI64(4), value.FromScalarI64(0), value.FromScalarI64(-2)})
	got, err := Extract(target, idxList(rng), "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{50, 30}
	if got.Node.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Node.Len(), len(want))
	}
	for i, w := range want {
		if got.Node.AtFlat(i) != w {
			t.Errorf("element %d = %v, want %v", i, got.Node.AtFlat(i), w)
		}
	}
}

func TestExtract1DAdvancedIntGather(t *testing.T) {
	target := value.FromVectorF64([]float64{10, 20, 30, 40})
	idx := value.List([]value.Value{value.FromVectorF64([]float64{3, 0, -1})})
	got, err := Extract(target, idxList(idx), "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{40, 10, 40}
	if got.Node.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Node.Len(), len(want))
	}
	for i, w := range want {
		if got.Node.AtFlat(i) != w {
			t.Errorf("element %d = %v, want %v", i, got.Node.AtFlat(i), w)
		}
	}
}

func TestExtract1DAdvancedBoolMask(t *testing.T) {
	target := value.FromVectorF64([]float64{10, 20, 30, 40})
	mask := value.Value{Kind: value.KindArray1Owned, Node: value.NewBoolMask(value.FromVector([]uint8{1, 0, 1, 0}))}
	idx := value.List([]value.Value{mask})
	got, err := Extract(target, idxList(idx), "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{10, 30}
	if got.Node.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Node.Len(), len(want))
	}
	for i, w := range want {
		if got.Node.AtFlat(i) != w {
			t.Errorf("element %d = %v, want %v", i, got.Node.AtFlat(i), w)
		}
	}
}

func TestExtract1DBoolMaskLengthMismatchIsDomainError(t *testing.T) {
	target := value.FromVectorF64([]float64{10, 20, 30})
	mask := value.Value{Kind: value.KindArray1Owned, Node: value.NewBoolMask(value.FromVector([]uint8{1, 0}))}
	idx := value.List([]value.Value{mask})
	if _, err := Extract(target, idxList(idx), "slice", 1, 1); err == nil {
		t.Error("expected domain error for mismatched mask length")
	}
}

func matrix() value.Value {
	return value.FromMatrixF64([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 3, 4)
}

func TestExtract2DBothScalarIsScalar(t *testing.T) {
	got, err := Extract(matrix(), []value.Value{value.FromScalarI64(1), value.FromScalarI64(2)}, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindScalar {
		t.Errorf("Kind = %v, want KindScalar", got.Kind)
	}
	if got.Node.AtFlat(0) != 7 {
		t.Errorf("got %v, want 7", got.Node.AtFlat(0))
	}
}

func TestExtract2DSingleRowIsVector(t *testing.T) {
	got, err := Extract(matrix(), []value.Value{value.FromScalarI64(1), value.Nil}, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindArray1Ref {
		t.Errorf("Kind = %v, want KindArray1Ref", got.Kind)
	}
	want := []float64{5, 6, 7, 8}
	for i, w := range want {
		if got.Node.AtFlat(i) != w {
			t.Errorf("element %d = %v, want %v", i, got.Node.AtFlat(i), w)
		}
	}
}

func TestExtract2DOneAxisArgSelectsRows(t *testing.T) {
	rng := value.List([]value.Value{value.FromScalarI64(0), value.FromScalarI64(2), value.Nil})
	got, err := Extract(matrix(), []value.Value{rng}, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindArray2Ref {
		t.Errorf("Kind = %v, want KindArray2Ref", got.Kind)
	}
	if got.Node.Len() != 8 {
		t.Errorf("Len() = %d, want 8", got.Node.Len())
	}
}

func TestExtract2DBasicSubmatrixIsView(t *testing.T) {
	rowRng := value.List([]value.Value{value.FromScalarI64(0), value.FromScalarI64(2), value.Nil})
	colRng := value.List([]value.Value{value.FromScalarI64(1), value.FromScalarI64(3), value.Nil})
	got, err := Extract(matrix(), []value.Value{rowRng, colRng}, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindArray2Ref {
		t.Errorf("Kind = %v, want KindArray2Ref", got.Kind)
	}
	want := []float64{2, 3, 6, 7}
	if got.Node.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Node.Len(), len(want))
	}
	for i, w := range want {
		if got.Node.AtFlat(i) != w {
			t.Errorf("element %d = %v, want %v", i, got.Node.AtFlat(i), w)
		}
	}
}

func TestExtract2DAdvancedIntRowGather(t *testing.T) {
	rows := value.List([]value.Value{value.FromVectorF64([]float64{2, 0})})
	got, err := Extract(matrix(), []value.Value{rows, value.Nil}, "slice", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != value.KindArray2Owned {
		t.Errorf("Kind = %v, want KindArray2Owned", got.Kind)
	}
	want := []float64{9, 10, 11, 12, 1, 2, 3, 4}
	if got.Node.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", got.Node.Len(), len(want))
	}
	for i, w := range want {
		if got.Node.AtFlat(i) != w {
			t.Errorf("element %d = %v, want %v", i, got.Node.AtFlat(i), w)
		}
	}
}

func TestExtractArityErrors(t *testing.T) {
	if _, err := Extract(value.FromScalarF64(1), nil, "slice", 1, 1); err == nil {
		t.Error("expected arity error for scalar with zero axes")
	}
	if _, err := Extract(value.FromVectorF64([]float64{1, 2}), nil, "slice", 1, 1); err == nil {
		t.Error("expected arity error for vector with zero axes")
	}
	if _, err := Extract(matrix(), []value.Value{value.Nil, value.Nil, value.Nil}, "slice", 1, 1); err == nil {
		t.Error("expected arity error for matrix with three axes")
	}
}

func TestExtractRejectsNonArrayTarget(t *testing.T) {
	if _, err := Extract(value.String("x"), idxList(value.Nil), "slice", 1, 1); err == nil {
		t.Error("expected type error slicing a string")
	}
}
