// Package value implements primitive_argument, the tagged value type every
// primitive consumes and produces (spec.md §3), and node_data, the
// element-typed n-dimensional array it wraps.
package value

import (
	"context"
	"fmt"
)

// Kind enumerates the primitive_argument variants. The numeric values 0-8
// are fixed by spec.md §3 ("variant index numbers fixed (used by slicing
// dispatch)"); Bool and Nil are additional variants layered on top, exactly
// as the spec describes them ("plus boolean and nil").
type Kind int

const (
	KindScalar      Kind = 0 // rank-0 NodeData
	KindArray1Owned Kind = 1 // owned rank-1 NodeData
	KindArray2Owned Kind = 2 // owned rank-2 NodeData
	KindArray1Ref   Kind = 3 // borrowed rank-1 NodeData view
	KindArray2Ref   Kind = 4 // borrowed rank-2 NodeData view
	KindString      Kind = 5
	KindPrimitive   Kind = 6
	KindList        Kind = 7
	KindDict        Kind = 8
	KindBool        Kind = 9
	KindNil         Kind = 10
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray1Owned:
		return "vector"
	case KindArray2Owned:
		return "matrix"
	case KindArray1Ref:
		return "vector-view"
	case KindArray2Ref:
		return "matrix-view"
	case KindString:
		return "string"
	case KindPrimitive:
		return "primitive"
	case KindList:
		return "list"
	case KindDict:
		return "dictionary"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	default:
		return "unknown"
	}
}

// Handle is the minimal surface a graph primitive node exposes to the
// value layer so a primitive_argument can carry a first-class reference to
// one (variant 6). internal/graph.Node implements this interface; value
// itself never imports internal/graph, avoiding an import cycle.
type Handle interface {
	Eval(ctx context.Context, args []Value) (Value, error)
	Name() string
}

// DictEntry is one key/value pair of a Dict value. Dict preserves
// insertion order so dict_keys() returns keys in a stable, predictable
// sequence (spec.md §9 supplement).
type DictEntry struct {
	Key   Value
	Value Value
}

// Value is the primitive_argument tagged union.
type Value struct {
	Kind Kind

	Node NodeData // KindScalar, KindArray1Owned/Ref, KindArray2Owned/Ref

	Str string // KindString
	B   bool   // KindBool

	Prim Handle // KindPrimitive

	List []Value // KindList

	Dict []DictEntry // KindDict
}

// Nil is the sole Nil value.
var Nil = Value{Kind: KindNil}

// True and False are the two Bool values.
var (
	True  = Value{Kind: KindBool, B: true}
	False = Value{Kind: KindBool, B: false}
)

// Bool wraps a bool as a Value.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// String wraps a string as a Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Primitive wraps a graph handle as a Value.
func Primitive(h Handle) Value { return Value{Kind: KindPrimitive, Prim: h} }

// List wraps a slice of Values as a list Value.
func List(elems []Value) Value { return Value{Kind: KindList, List: elems} }

// Dict wraps ordered key/value pairs as a dictionary Value.
func Dict(entries []DictEntry) Value { return Value{Kind: KindDict, Dict: entries} }

// FromScalarF64 wraps a float64 scalar as a Value.
func FromScalarF64(v float64) Value {
	return Value{Kind: KindScalar, Node: NewF64(Scalar(v))}
}

// FromScalarI64 wraps an int64 scalar as a Value.
func FromScalarI64(v int64) Value {
	return Value{Kind: KindScalar, Node: NewI64(Scalar(v))}
}

// FromVectorF64 wraps an owned float64 vector as a Value.
func FromVectorF64(data []float64) Value {
	return Value{Kind: KindArray1Owned, Node: NewF64(FromVector(data))}
}

// FromVectorI64 wraps an owned int64 vector as a Value.
func FromVectorI64(data []int64) Value {
	return Value{Kind: KindArray1Owned, Node: NewI64(FromVector(data))}
}

// FromMatrixF64 wraps an owned row-major float64 matrix as a Value.
func FromMatrixF64(data []float64, rows, cols int) Value {
	return Value{Kind: KindArray2Owned, Node: NewF64(FromMatrix(data, rows, cols))}
}

// FromNodeData wraps a NodeData, choosing the owned/ref variant tag from
// its rank and Owned() flag.
func FromNodeData(n NodeData) Value {
	switch n.Rank() {
	case 0:
		return Value{Kind: KindScalar, Node: n}
	case 1:
		if n.Owned() {
			return Value{Kind: KindArray1Owned, Node: n}
		}
		return Value{Kind: KindArray1Ref, Node: n}
	default:
		if n.Owned() {
			return Value{Kind: KindArray2Owned, Node: n}
		}
		return Value{Kind: KindArray2Ref, Node: n}
	}
}

// IsArray reports whether v wraps a NodeData (scalar or array, owned or
// reference).
func (v Value) IsArray() bool {
	switch v.Kind {
	case KindScalar, KindArray1Owned, KindArray2Owned, KindArray1Ref, KindArray2Ref:
		return true
	default:
		return false
	}
}

// IsTruthy implements the boolean coercion used by if/while/for conditions.
// Non-boolean conditions are a type error per spec.md §7 kind 4, except
// nil, which is falsy by convention (mirrors phylanx treating nil as false
// in boolean context), and numeric scalars, which follow the common C-like
// "nonzero is true" convention used throughout the plugin set.
func (v Value) IsTruthy() (bool, error) {
	switch v.Kind {
	case KindBool:
		return v.B, nil
	case KindNil:
		return false, nil
	case KindScalar:
		return v.Node.AtFlat(0) != 0, nil
	default:
		return false, fmt.Errorf("value of kind %s is not a boolean condition", v.Kind)
	}
}

// Equal reports deep structural equality, used by tests and by dictionary
// key comparison.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNil:
		return true
	case KindBool:
		return a.B == b.B
	case KindString:
		return a.Str == b.Str
	case KindScalar, KindArray1Owned, KindArray1Ref, KindArray2Owned, KindArray2Ref:
		return nodeDataEqual(a.Node, b.Node)
	case KindList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(a.Dict) != len(b.Dict) {
			return false
		}
		for i := range a.Dict {
			if !Equal(a.Dict[i].Key, b.Dict[i].Key) || !Equal(a.Dict[i].Value, b.Dict[i].Value) {
				return false
			}
		}
		return true
	case KindPrimitive:
		return a.Prim != nil && b.Prim != nil && a.Prim.Name() == b.Prim.Name()
	default:
		return false
	}
}

func nodeDataEqual(a, b NodeData) bool {
	if a.Rank() != b.Rank() || a.Len() != b.Len() {
		return false
	}
	af, bf := a.ToFloat64(), b.ToFloat64()
	for i := range af {
		if af[i] != bf[i] {
			return false
		}
	}
	return true
}
