package names

import (
	"testing"

	"github.com/phylanx-go/phylanx/pkg/locality"
)

func TestComposeParseRoundTrip(t *testing.T) {
	p := Parts{
		Primitive: "variable",
		Sequence:  3,
		Instance:  "x",
		ID:        12,
		Col:       4,
		Compile:   locality.NewGenerator(locality.New()).Next(),
	}
	name := Compose(p)
	got, ok := Parse(name)
	if !ok {
		t.Fatalf("Parse(%q) failed", name)
	}
	if Compose(got) != name {
		t.Errorf("compose(parse(name)) = %q, want %q", Compose(got), name)
	}
	if got.Primitive != p.Primitive || got.Sequence != p.Sequence ||
		got.Instance != p.Instance || got.ID != p.ID || got.Col != p.Col {
		t.Errorf("round-tripped parts differ: got %+v, want %+v", got, p)
	}
}

func TestComposeParseAnonymousInstance(t *testing.T) {
	p := Parts{
		Primitive: "add",
		Sequence:  0,
		Instance:  "",
		ID:        0,
		Col:       0,
		Compile:   locality.NewGenerator(locality.New()).Next(),
	}
	name := Compose(p)
	got, ok := Parse(name)
	if !ok {
		t.Fatalf("Parse(%q) failed", name)
	}
	if got.Instance != "" {
		t.Errorf("Instance = %q, want empty", got.Instance)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, ok := Parse("not-a-canonical-name"); ok {
		t.Error("Parse accepted malformed input")
	}
}
