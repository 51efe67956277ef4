// Package names composes and parses the canonical primitive name strings
// described in spec.md §3 ("Name parts") and §6 ("Primitive name format").
//
// A canonical name round-trips: Parse(Compose(p)) == p for every Parts
// value produced by this package.
package names

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/phylanx-go/phylanx/pkg/locality"
)

// Parts is the full set of name components a compiled primitive carries.
//
//   - Primitive: the kind, e.g. "variable", "function", "lambda", "add".
//   - Sequence: monotone per-kind counter within one compile unit.
//   - Instance: the user-visible name, e.g. the variable's source name
//     (empty for anonymous primitives such as arithmetic operators).
//   - ID, Col: the source position the primitive was compiled from.
//   - Compile: which compiler invocation produced this primitive.
type Parts struct {
	Primitive string
	Sequence  uint64
	Instance  string
	ID        int
	Col       int
	Compile   locality.CompileID
}

// canonical format:
//
//	<primitive>$<sequence>/<instance>#<id>$<col>@<locality>:<ordinal>
//
// instance may be empty (nothing between '/' and '#').
var canonicalPattern = regexp.MustCompile(
	`^(?P<primitive>[^$]*)\$(?P<sequence>\d+)/(?P<instance>[^#]*)#(?P<id>-?\d+)\$(?P<col>-?\d+)@(?P<locality>[0-9a-fA-F-]+):(?P<ordinal>\d+)$`)

// Compose renders p as its canonical string form.
func Compose(p Parts) string {
	return fmt.Sprintf("%s$%d/%s#%d$%d@%s:%d",
		p.Primitive, p.Sequence, p.Instance, p.ID, p.Col,
		p.Compile.Locality.String(), p.Compile.Ordinal)
}

// Parse recovers a Parts value from a canonical name string previously
// produced by Compose. It reports false if name is not well-formed.
func Parse(name string) (Parts, bool) {
	m := canonicalPattern.FindStringSubmatch(name)
	if m == nil {
		return Parts{}, false
	}
	groups := make(map[string]string, len(m))
	for i, g := range canonicalPattern.SubexpNames() {
		if i == 0 || g == "" {
			continue
		}
		groups[g] = m[i]
	}

	seq, err := strconv.ParseUint(groups["sequence"], 10, 64)
	if err != nil {
		return Parts{}, false
	}
	id, err := strconv.Atoi(groups["id"])
	if err != nil {
		return Parts{}, false
	}
	col, err := strconv.Atoi(groups["col"])
	if err != nil {
		return Parts{}, false
	}
	ordinal, err := strconv.ParseUint(groups["ordinal"], 10, 64)
	if err != nil {
		return Parts{}, false
	}
	loc, err := locality.Parse(groups["locality"])
	if err != nil {
		return Parts{}, false
	}

	return Parts{
		Primitive: groups["primitive"],
		Sequence:  seq,
		Instance:  groups["instance"],
		ID:        id,
		Col:       col,
		Compile: locality.CompileID{
			Locality: loc,
			Ordinal:  ordinal,
		},
	}, true
}

// LocalityString extracts just the locality portion of a canonical name,
// for callers that only need to compare/display it without reconstructing
// a full Parts value.
func LocalityString(name string) (string, bool) {
	m := canonicalPattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	for i, g := range canonicalPattern.SubexpNames() {
		if g == "locality" {
			return m[i], true
		}
	}
	return "", false
}
