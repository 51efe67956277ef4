// Package matcher implements structural matching of a PhySL expression
// against a pattern expression (spec.md §4.2, grounded on the original
// compiler's ast::match_ast call sites): a pattern built from the same
// internal/ast.Expr type, whose identifiers beginning with "_" are single
// placeholders and identifiers beginning with "__" are variadic
// placeholders that capture every remaining call argument.
package matcher

import "github.com/phylanx-go/phylanx/internal/ast"

// Bindings maps a placeholder name to the expression(s) it captured: one
// element for a "_k" placeholder, zero or more for a "__k" ellipsis
// placeholder.
type Bindings map[string][]ast.Expr

// Match attempts to match expr against pattern, returning the captured
// placeholder bindings on success.
func Match(expr, pattern ast.Expr) (Bindings, bool) {
	b := Bindings{}
	if match(expr, pattern, b) {
		return b, true
	}
	return nil, false
}

func match(expr, pattern ast.Expr, b Bindings) bool {
	if ast.IsPlaceholder(pattern) {
		b[pattern.Ident] = append(b[pattern.Ident], expr)
		return true
	}

	if pattern.Kind != expr.Kind {
		return false
	}

	switch pattern.Kind {
	case ast.KindNil:
		return true
	case ast.KindBool:
		return expr.Bool == pattern.Bool
	case ast.KindInt:
		return expr.Int == pattern.Int
	case ast.KindFloat:
		return expr.Float == pattern.Float
	case ast.KindString:
		return expr.Str == pattern.Str
	case ast.KindIdentifier:
		return expr.Ident == pattern.Ident
	case ast.KindFunctionCall:
		return expr.Ident == pattern.Ident && matchArgs(expr.Args, pattern.Args, b)
	case ast.KindList:
		return matchArgs(expr.Args, pattern.Args, b)
	case ast.KindPrefixOp:
		return expr.Prefix == pattern.Prefix && match(expr.Operands[0], pattern.Operands[0], b)
	case ast.KindInfixChain:
		if len(expr.Operators) != len(pattern.Operators) || len(expr.Operands) != len(pattern.Operands) {
			return false
		}
		for i, op := range pattern.Operators {
			if op != expr.Operators[i] {
				return false
			}
		}
		for i := range pattern.Operands {
			if !match(expr.Operands[i], pattern.Operands[i], b) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// matchArgs matches a call/list argument list against a pattern argument
// list. A "__k" ellipsis placeholder must be the final pattern argument;
// it captures every expr argument from its position onward (possibly
// zero).
func matchArgs(exprArgs, patternArgs []ast.Expr, b Bindings) bool {
	i := 0
	for pi, p := range patternArgs {
		if ast.IsPlaceholderEllipsis(p) {
			if pi != len(patternArgs)-1 {
				return false
			}
			b[p.Ident] = append(b[p.Ident], exprArgs[i:]...)
			i = len(exprArgs)
			continue
		}
		if i >= len(exprArgs) {
			return false
		}
		if !match(exprArgs[i], p, b) {
			return false
		}
		i++
	}
	return i == len(exprArgs)
}
