// Package pattern implements the ordered pattern registry spec.md §4.2
// describes: every primitive name maps to one or more candidate shapes,
// tried in registration order until one structurally matches (grounded on
// the original compiler's patterns_.lower_bound/equal_range iteration,
// which preserves insertion order within a name group).
package pattern

import (
	"github.com/phylanx-go/phylanx/internal/ast"
	"github.com/phylanx-go/phylanx/internal/graph"
)

// Factory builds the primitive implementation for one matched call site,
// given its already-compiled operand sub-graphs.
type Factory func(operands []*graph.Node) graph.Primitive

// Entry is one registered candidate shape for a primitive name.
type Entry struct {
	Name    string
	Pattern ast.Expr
	Factory Factory
	Doc     string
}

// Registry is the ordered name -> []Entry multimap. The zero value is
// ready to use.
type Registry struct {
	order  []string
	byName map[string][]Entry
}

// NewRegistry returns an empty, ready-to-use Registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string][]Entry{}}
}

// Register appends entry shapes under name, preserving registration order.
// patternSrc is an already-parsed pattern expression (the canonical source
// string representation is kept only in Doc for diagnostics/introspection).
func (r *Registry) Register(name string, patternSrc ast.Expr, factory Factory, doc string) {
	if _, seen := r.byName[name]; !seen {
		r.order = append(r.order, name)
	}
	r.byName[name] = append(r.byName[name], Entry{
		Name:    name,
		Pattern: patternSrc,
		Factory: factory,
		Doc:     doc,
	})
}

// Lookup returns the registered entries for name, in registration order, or
// nil if no pattern was ever registered under that name.
func (r *Registry) Lookup(name string) []Entry {
	return r.byName[name]
}

// Names returns every registered primitive name, in first-registration
// order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
