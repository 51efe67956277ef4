// Package locality gives a concrete, local-only shape to the
// "default_locality" concept threaded through the original Phylanx
// compiler (hpx::id_type). Distribution itself is out of scope (spec.md
// §1); what survives is the need for a process/compiler-invocation
// identity that primitive names can be tagged with so they stay globally
// unique even across repeated compilations of the same source.
package locality

import "github.com/google/uuid"

// Locality identifies the place a primitive component is bound to. In a
// distributed Phylanx this would route to a remote agent; here it is an
// opaque, comparable identity.
type Locality struct {
	id uuid.UUID
}

// Local is the single-process locality used when no other is specified.
var Local = New()

// New returns a fresh, unique Locality.
func New() Locality {
	return Locality{id: uuid.New()}
}

// Parse reconstructs a Locality from its canonical String() form.
func Parse(s string) (Locality, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Locality{}, err
	}
	return Locality{id: id}, nil
}

// String renders the locality as its canonical UUID form.
func (l Locality) String() string {
	return l.id.String()
}

// IsZero reports whether l is the zero value (never returned by New).
func (l Locality) IsZero() bool {
	return l.id == uuid.Nil
}

// Equal reports whether two localities refer to the same place.
func (l Locality) Equal(other Locality) bool {
	return l.id == other.id
}

// CompileID is a monotonically-tagged identity for one compiler
// invocation; it is combined with a Locality and a per-kind sequence
// number to keep primitive names unique across repeated compilations in
// the same process (see internal/names).
type CompileID struct {
	Locality Locality
	Ordinal  uint64
}

// Generator hands out increasing CompileIDs for a single Locality, mirroring
// snippets_.compile_id_ in the original compiler.
type Generator struct {
	locality Locality
	next     uint64
}

// NewGenerator creates a CompileID generator bound to loc.
func NewGenerator(loc Locality) *Generator {
	return &Generator{locality: loc}
}

// Next returns the next CompileID and advances the generator.
func (g *Generator) Next() CompileID {
	g.next++
	return CompileID{Locality: g.locality, Ordinal: g.next}
}
