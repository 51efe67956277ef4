// Package plugin is the public pattern-registration surface an external
// collaborator uses to extend the primitive registry beyond
// internal/primitives' builtins, the Go-native stand-in for spec.md §1's
// "the plugin registration mechanism is an external collaborator" note: a
// real Phylanx loads compiled plugin shared objects at runtime, but without
// a dynamic-loading story in scope, a plugin here is just a named, ahead-
// of-time-built table of pattern.Entry shapes a host binary links in and
// looks up by name (internal/config's `plugins:` list), rather than
// something loaded from disk at startup.
package plugin

import (
	"fmt"

	"github.com/phylanx-go/phylanx/internal/ast"
	"github.com/phylanx-go/phylanx/internal/pattern"
)

// Pattern is one external primitive shape a Manifest contributes.
type Pattern struct {
	// Name is the primitive's call-site name, e.g. "my_plugin_op".
	Name string
	// Shape is the pattern this primitive matches against, built the same
	// way internal/primitives/register.go builds its own shapes (ast.Call
	// with placeholder/ellipsis identifier arguments).
	Shape ast.Expr
	// Factory builds the primitive implementation for a matched call site.
	Factory pattern.Factory
	// Doc is a one-line description, surfaced the same way
	// pattern.Entry.Doc is.
	Doc string
}

// Manifest is a named, fixed table of Patterns a host binary registers
// ahead of time, so internal/config's `plugins:` list can reference it by
// name without Phylanx needing to dynamically load or compile anything.
type Manifest struct {
	Name     string
	Patterns []Pattern
}

// registry is the process-wide table of known manifests, populated by
// Install (typically from a host binary's init or main, before compiling
// any PhySL source).
var registry = map[string]Manifest{}

// Install registers m under its own name, so a later Lookup(m.Name) or
// ApplyNamed(reg, []string{m.Name}) (which is how internal/config's
// `plugins:` list is applied) can find it. Installing two manifests under the same name is a configuration
// error, reported immediately rather than silently shadowing the first.
func Install(m Manifest) error {
	if m.Name == "" {
		return fmt.Errorf("plugin: manifest must have a name")
	}
	if _, exists := registry[m.Name]; exists {
		return fmt.Errorf("plugin: manifest %q already installed", m.Name)
	}
	registry[m.Name] = m
	return nil
}

// Lookup returns the manifest installed under name, or false if none was.
func Lookup(name string) (Manifest, bool) {
	m, ok := registry[name]
	return m, ok
}

// Apply merges every Pattern in m into reg, in declaration order.
func (m Manifest) Apply(reg *pattern.Registry) {
	for _, p := range m.Patterns {
		reg.Register(p.Name, p.Shape, p.Factory, p.Doc)
	}
}

// ApplyNamed looks up each manifest listed in names (internal/config's
// Plugins field) and applies it to reg, in list order. An unknown name is
// a configuration error.
func ApplyNamed(reg *pattern.Registry, names []string) error {
	for _, name := range names {
		m, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("plugin: no manifest installed under name %q", name)
		}
		m.Apply(reg)
	}
	return nil
}
