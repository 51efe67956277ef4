package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/phylanx-go/phylanx/internal/value"
)

type constPrim struct{ v value.Value }

func (c constPrim) Apply(_ context.Context, _ []value.Value) (value.Value, error) {
	return c.v, nil
}

type sumPrim struct{}

func (sumPrim) Apply(_ context.Context, operands []value.Value) (value.Value, error) {
	total := 0.0
	for _, o := range operands {
		total += o.Node.AtFlat(0)
	}
	return value.FromScalarF64(total), nil
}

type failingPrim struct{}

func (failingPrim) Apply(_ context.Context, _ []value.Value) (value.Value, error) {
	return value.Value{}, errors.New("boom")
}

func TestNodeEvalLeaf(t *testing.T) {
	n := New("const$0/0#1$1@loc:0", constPrim{v: value.FromScalarF64(7)}, nil)
	got, err := n.Eval(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Node.AtFlat(0) != 7 {
		t.Errorf("got %v, want 7", got.Node.AtFlat(0))
	}
}

func TestNodeEvalEvaluatesOperandsFirst(t *testing.T) {
	a := New("const", constPrim{v: value.FromScalarF64(2)}, nil)
	b := New("const", constPrim{v: value.FromScalarF64(3)}, nil)
	sum := New("add", sumPrim{}, []*Node{a, b})

	got, err := sum.Eval(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Node.AtFlat(0) != 5 {
		t.Errorf("got %v, want 5", got.Node.AtFlat(0))
	}
}

func TestNodeEvalPropagatesOperandError(t *testing.T) {
	bad := New("fail", failingPrim{}, nil)
	sum := New("add", sumPrim{}, []*Node{bad})

	if _, err := sum.Eval(context.Background(), nil); err == nil {
		t.Error("expected error to propagate from failing operand")
	}
}

func TestNodeSatisfiesValueHandle(t *testing.T) {
	n := New("const", constPrim{v: value.FromScalarF64(1)}, nil)
	var h value.Handle = n
	if h.Name() != "const" {
		t.Errorf("Name() = %q, want %q", h.Name(), "const")
	}
}
