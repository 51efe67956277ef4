package plugin

import (
	"context"
	"testing"

	"github.com/phylanx-go/phylanx/internal/ast"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/pattern"
	"github.com/phylanx-go/phylanx/internal/value"
)

type echoPrimitive struct{}

func (echoPrimitive) Apply(context.Context, []value.Value) (value.Value, error) {
	return value.String("echo"), nil
}

func echoFactory(_ []*graph.Node) graph.Primitive { return echoPrimitive{} }

func testManifest(name string) Manifest {
	pos := ast.Tagged{}
	return Manifest{
		Name: name,
		Patterns: []Pattern{{
			Name:    "echo_thing",
			Shape:   ast.Call(pos, "echo_thing"),
			Factory: echoFactory,
			Doc:     "returns the string \"echo\"",
		}},
	}
}

func TestInstallAndLookup(t *testing.T) {
	name := "test-install-and-lookup"
	if err := Install(testManifest(name)); err != nil {
		t.Fatalf("Install: %v", err)
	}
	m, ok := Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%q) found nothing", name)
	}
	if len(m.Patterns) != 1 || m.Patterns[0].Name != "echo_thing" {
		t.Errorf("looked-up manifest = %+v, want one echo_thing pattern", m)
	}
}

func TestInstallRejectsDuplicateName(t *testing.T) {
	name := "test-install-rejects-duplicate"
	if err := Install(testManifest(name)); err != nil {
		t.Fatalf("first Install: %v", err)
	}
	if err := Install(testManifest(name)); err == nil {
		t.Fatal("expected an error installing a second manifest under the same name")
	}
}

func TestApplyMergesPatternsIntoRegistry(t *testing.T) {
	reg := pattern.NewRegistry()
	testManifest("unused-name-for-apply-test").Apply(reg)

	entries := reg.Lookup("echo_thing")
	if len(entries) != 1 {
		t.Fatalf("expected 1 registered entry for echo_thing, got %d", len(entries))
	}
	prim := entries[0].Factory(nil)
	v, err := prim.Apply(context.Background(), nil)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if v.Kind != value.KindString || v.Str != "echo" {
		t.Errorf("echo_thing() = %+v, want string \"echo\"", v)
	}
}

func TestApplyNamedUnknownManifest(t *testing.T) {
	reg := pattern.NewRegistry()
	if err := ApplyNamed(reg, []string{"does-not-exist"}); err == nil {
		t.Fatal("expected an error for an unknown plugin name")
	}
}

func TestApplyNamedKnownManifest(t *testing.T) {
	name := "test-apply-named-known"
	if err := Install(testManifest(name)); err != nil {
		t.Fatalf("Install: %v", err)
	}
	reg := pattern.NewRegistry()
	if err := ApplyNamed(reg, []string{name}); err != nil {
		t.Fatalf("ApplyNamed: %v", err)
	}
	if len(reg.Lookup("echo_thing")) != 1 {
		t.Error("expected echo_thing to be registered via ApplyNamed")
	}
}
