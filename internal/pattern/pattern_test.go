package pattern

import (
	"context"
	"testing"

	"github.com/phylanx-go/phylanx/internal/ast"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

type noop struct{}

func (noop) Apply(context.Context, []value.Value) (value.Value, error) { return value.Nil, nil }

func TestRegisterPreservesOrderAndLookup(t *testing.T) {
	r := NewRegistry()
	pos := ast.Tagged{ID: 1, Col: 1}

	r.Register("foo", ast.Call(pos, "foo", ast.Identifier(pos, "_1")), func([]*graph.Node) graph.Primitive {
		return noop{}
	}, "unary foo")
	r.Register("foo", ast.Call(pos, "foo", ast.Identifier(pos, "_1"), ast.Identifier(pos, "_2")), func([]*graph.Node) graph.Primitive {
		return noop{}
	}, "binary foo")
	r.Register("bar", ast.Call(pos, "bar"), func([]*graph.Node) graph.Primitive {
		return noop{}
	}, "bar")

	entries := r.Lookup("foo")
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Doc != "unary foo" || entries[1].Doc != "binary foo" {
		t.Errorf("entries out of order: %+v", entries)
	}

	if names := r.Names(); len(names) != 2 || names[0] != "foo" || names[1] != "bar" {
		t.Errorf("Names() = %v", names)
	}
}

func TestLookupUnknownNameReturnsNil(t *testing.T) {
	r := NewRegistry()
	if entries := r.Lookup("nope"); entries != nil {
		t.Errorf("expected nil, got %+v", entries)
	}
}
