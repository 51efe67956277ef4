package primitives

import (
	"context"
	"testing"

	"github.com/phylanx-go/phylanx/internal/value"
)

func TestDictKeysOperationPreservesInsertionOrder(t *testing.T) {
	d := value.Dict([]value.DictEntry{
		{Key: value.String("b"), Value: value.FromScalarF64(2)},
		{Key: value.String("a"), Value: value.FromScalarF64(1)},
	})

	got, err := dictKeysOperation(d, "dict_keys")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.List) != 2 || got.List[0].Str != "b" || got.List[1].Str != "a" {
		t.Errorf("got %+v, want keys in insertion order [b a]", got.List)
	}
}

func TestDictKeysOperationRejectsNonDict(t *testing.T) {
	if _, err := dictKeysOperation(value.FromScalarF64(1), "dict_keys"); err == nil {
		t.Error("expected a type error for a non-dict argument")
	}
}

func TestListPrimitiveWrapsOperandsInOrder(t *testing.T) {
	p := NewList(nil)
	got, err := p.Apply(context.Background(), []value.Value{value.FromScalarF64(1), value.FromScalarF64(2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.List) != 2 || got.List[0].Node.AtFlat(0) != 1 || got.List[1].Node.AtFlat(0) != 2 {
		t.Errorf("got %+v", got.List)
	}
}

func TestDictPrimitiveBuildsEntriesFromPairs(t *testing.T) {
	p := NewDict(nil)
	got, err := p.Apply(context.Background(), []value.Value{
		value.String("x"), value.FromScalarF64(1),
		value.String("y"), value.FromScalarF64(2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Dict) != 2 || got.Dict[0].Key.Str != "x" || got.Dict[1].Key.Str != "y" {
		t.Errorf("got %+v", got.Dict)
	}
}

func TestDictPrimitiveRejectsOddArgumentCount(t *testing.T) {
	p := NewDict(nil)
	if _, err := p.Apply(context.Background(), []value.Value{value.String("x")}); err == nil {
		t.Error("expected an arity error for an odd number of arguments")
	}
}
