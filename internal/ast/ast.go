// Package ast defines the expression tree produced by the (external)
// PhySL surface parser and consumed by internal/compiler and
// internal/matcher.
//
// Every node is tagged with its source position so the compiler can
// attach a stable {id, col} pair to the primitive it emits for that node.
package ast

import "fmt"

// Tagged is the source-position pair carried by every expression node.
// ID is a byte offset into the source text, Col a 1-based column.
type Tagged struct {
	ID  int
	Col int
}

func (t Tagged) String() string {
	return fmt.Sprintf("%d, %d", t.ID, t.Col)
}

// Kind identifies which variant of the tagged sum an Expr holds.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindIdentifier
	KindFunctionCall
	KindList
	KindPrefixOp
	KindInfixChain
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindIdentifier:
		return "identifier"
	case KindFunctionCall:
		return "function-call"
	case KindList:
		return "list"
	case KindPrefixOp:
		return "prefix-op"
	case KindInfixChain:
		return "infix-chain"
	default:
		return "unknown"
	}
}

// Expr is a single node in the expression tree. It is a closed tagged
// union: exactly one of the typed fields below is meaningful for a given
// Kind. This mirrors phylanx::ast::expression's variant in spirit while
// staying a plain, comparable-by-inspection Go struct rather than an
// interface hierarchy — the matcher needs to look at "what kind of node is
// this" far more often than it needs virtual dispatch.
type Expr struct {
	Pos  Tagged
	Kind Kind

	Bool   bool
	Int    int64
	Float  float64
	Str    string
	Ident  string
	Prefix string // operator token for KindPrefixOp

	// Call: Ident is the callee name, Args the argument list.
	Args []Expr

	// InfixChain: operators[i] sits between operands[i] and operands[i+1].
	Operands  []Expr
	Operators []string
}

// Nil creates a nil literal node.
func Nil(pos Tagged) Expr { return Expr{Pos: pos, Kind: KindNil} }

// Bool creates a boolean literal node.
func Bool(pos Tagged, v bool) Expr { return Expr{Pos: pos, Kind: KindBool, Bool: v} }

// Int creates an integer literal node.
func Int(pos Tagged, v int64) Expr { return Expr{Pos: pos, Kind: KindInt, Int: v} }

// Float creates a floating point literal node.
func Float(pos Tagged, v float64) Expr { return Expr{Pos: pos, Kind: KindFloat, Float: v} }

// String creates a string literal node.
func String(pos Tagged, v string) Expr { return Expr{Pos: pos, Kind: KindString, Str: v} }

// Identifier creates an identifier node.
func Identifier(pos Tagged, name string) Expr {
	return Expr{Pos: pos, Kind: KindIdentifier, Ident: name}
}

// Call creates a function-call node `name(args...)`.
func Call(pos Tagged, name string, args ...Expr) Expr {
	return Expr{Pos: pos, Kind: KindFunctionCall, Ident: name, Args: args}
}

// List creates a list-of-expression node.
func List(pos Tagged, elems ...Expr) Expr {
	return Expr{Pos: pos, Kind: KindList, Args: elems}
}

// Prefix creates a prefix-operator node, e.g. `-x`.
func Prefix(pos Tagged, op string, operand Expr) Expr {
	return Expr{Pos: pos, Kind: KindPrefixOp, Prefix: op, Operands: []Expr{operand}}
}

// Infix creates a chained infix-operator node, e.g. `a + b - c`.
func Infix(pos Tagged, operands []Expr, operators []string) Expr {
	return Expr{Pos: pos, Kind: KindInfixChain, Operands: operands, Operators: operators}
}

// IsIdentifier reports whether expr is a bare identifier.
func IsIdentifier(expr Expr) bool { return expr.Kind == KindIdentifier }

// IsFunctionCall reports whether expr is a function-call node.
func IsFunctionCall(expr Expr) bool { return expr.Kind == KindFunctionCall }

// IsLiteralValue reports whether expr is a literal (nil/bool/int/float/string).
func IsLiteralValue(expr Expr) bool {
	switch expr.Kind {
	case KindNil, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// IdentifierName returns the name of an identifier node; panics if expr is
// not an identifier (callers must check IsIdentifier first, matching the
// original source's HPX_ASSERT discipline at these call sites).
func IdentifierName(expr Expr) string {
	if expr.Kind != KindIdentifier {
		panic("ast: IdentifierName called on non-identifier expression")
	}
	return expr.Ident
}

// FunctionName returns the callee name of a function-call node.
func FunctionName(expr Expr) string {
	if expr.Kind != KindFunctionCall {
		panic("ast: FunctionName called on non-call expression")
	}
	return expr.Ident
}

// FunctionArguments returns the argument list of a function-call node.
func FunctionArguments(expr Expr) []Expr {
	if expr.Kind != KindFunctionCall {
		panic("ast: FunctionArguments called on non-call expression")
	}
	return expr.Args
}

// IsPlaceholder reports whether expr is an identifier whose name marks it
// as a pattern placeholder (leading underscore).
func IsPlaceholder(expr Expr) bool {
	return expr.Kind == KindIdentifier && len(expr.Ident) > 0 && expr.Ident[0] == '_'
}

// IsPlaceholderEllipsis reports whether expr is a variadic placeholder
// (leading double underscore, e.g. "__1").
func IsPlaceholderEllipsis(expr Expr) bool {
	return expr.Kind == KindIdentifier && len(expr.Ident) > 1 &&
		expr.Ident[0] == '_' && expr.Ident[1] == '_'
}

// ToString renders expr back into PhySL surface syntax, used only for
// diagnostics (error messages quoting the offending expression).
func ToString(expr Expr) string {
	switch expr.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if expr.Bool {
			return "true"
		}
		return "false"
	case KindInt:
		return fmt.Sprintf("%d", expr.Int)
	case KindFloat:
		return fmt.Sprintf("%g", expr.Float)
	case KindString:
		return fmt.Sprintf("%q", expr.Str)
	case KindIdentifier:
		return expr.Ident
	case KindFunctionCall:
		out := expr.Ident + "("
		for i, a := range expr.Args {
			if i > 0 {
				out += ", "
			}
			out += ToString(a)
		}
		return out + ")"
	case KindList:
		out := "list("
		for i, a := range expr.Args {
			if i > 0 {
				out += ", "
			}
			out += ToString(a)
		}
		return out + ")"
	case KindPrefixOp:
		return expr.Prefix + ToString(expr.Operands[0])
	case KindInfixChain:
		out := ToString(expr.Operands[0])
		for i, op := range expr.Operators {
			out += " " + op + " " + ToString(expr.Operands[i+1])
		}
		return out
	default:
		return "<?>"
	}
}
