package main

// readProgram turns PhySL surface text into an internal/ast.Expr tree. It is
// deliberately small: spec.md's Non-goals put the concrete surface parser
// out of scope, but cmd/physl still needs something to turn a .physl file
// into the ast.Expr the compiler consumes. This reader covers the call/
// literal/infix surface every worked example in SPEC_FULL.md uses — it is
// not a general PhySL grammar (no operator precedence beyond left-to-right
// chaining, no user-defined operators, no string escapes beyond \" and \\).

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phylanx-go/phylanx/internal/ast"
)

type reader struct {
	src  string
	pos  int
	line int
	col  int
}

func newReader(src string) *reader {
	return &reader{src: src, line: 1, col: 1}
}

// readProgram parses the whole input as a single top-level expression,
// erroring if anything but trailing whitespace/comments follows it.
func readProgram(src string) (ast.Expr, error) {
	r := newReader(src)
	r.skipSpace()
	if r.atEnd() {
		return ast.Expr{}, fmt.Errorf("empty source")
	}
	expr, err := r.expr()
	if err != nil {
		return ast.Expr{}, err
	}
	r.skipSpace()
	if !r.atEnd() {
		return ast.Expr{}, r.errf("unexpected trailing input %q", r.src[r.pos:])
	}
	return expr, nil
}

func (r *reader) errf(format string, args ...any) error {
	return fmt.Errorf("physl:%d:%d: %s", r.line, r.col, fmt.Sprintf(format, args...))
}

func (r *reader) pos_() ast.Tagged { return ast.Tagged{ID: r.pos, Col: r.col} }

func (r *reader) atEnd() bool { return r.pos >= len(r.src) }

func (r *reader) peek() byte {
	if r.atEnd() {
		return 0
	}
	return r.src[r.pos]
}

func (r *reader) advance() byte {
	c := r.src[r.pos]
	r.pos++
	if c == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return c
}

func (r *reader) skipSpace() {
	for !r.atEnd() {
		c := r.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			r.advance()
		case c == '#':
			for !r.atEnd() && r.peek() != '\n' {
				r.advance()
			}
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

var binaryOps = []string{"==", "!=", "<=", ">=", "<", ">", "+", "-", "*", "/"}

// expr parses a left-to-right chain of primaries joined by binary operators,
// matching internal/compiler's flat left-fold over ast.Infix (spec.md §4.6):
// there is no precedence distinction between operators at this layer.
func (r *reader) expr() (ast.Expr, error) {
	pos := r.pos_()
	first, err := r.primary()
	if err != nil {
		return ast.Expr{}, err
	}

	operands := []ast.Expr{first}
	var operators []string
	for {
		r.skipSpace()
		op := r.matchBinaryOp()
		if op == "" {
			break
		}
		r.skipSpace()
		rhs, err := r.primary()
		if err != nil {
			return ast.Expr{}, err
		}
		operators = append(operators, op)
		operands = append(operands, rhs)
	}

	if len(operators) == 0 {
		return first, nil
	}
	return ast.Infix(pos, operands, operators), nil
}

func (r *reader) matchBinaryOp() string {
	for _, op := range binaryOps {
		if strings.HasPrefix(r.src[r.pos:], op) {
			for range op {
				r.advance()
			}
			return op
		}
	}
	return ""
}

func (r *reader) primary() (ast.Expr, error) {
	r.skipSpace()
	if r.atEnd() {
		return ast.Expr{}, r.errf("unexpected end of input")
	}

	pos := r.pos_()
	c := r.peek()

	switch {
	case c == '-' && r.pos+1 < len(r.src) && isDigit(r.src[r.pos+1]):
		return r.number()
	case c == '-':
		r.advance()
		operand, err := r.primary()
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.Prefix(pos, "-", operand), nil
	case isDigit(c):
		return r.number()
	case c == '"':
		return r.stringLit()
	case c == '(':
		r.advance()
		inner, err := r.expr()
		if err != nil {
			return ast.Expr{}, err
		}
		r.skipSpace()
		if r.peek() != ')' {
			return ast.Expr{}, r.errf("expected ')'")
		}
		r.advance()
		return inner, nil
	case isIdentStart(c):
		return r.identOrCall()
	default:
		return ast.Expr{}, r.errf("unexpected character %q", c)
	}
}

func (r *reader) number() (ast.Expr, error) {
	pos := r.pos_()
	start := r.pos
	if r.peek() == '-' {
		r.advance()
	}
	isFloat := false
	for !r.atEnd() && (isDigit(r.peek()) || r.peek() == '.') {
		if r.peek() == '.' {
			isFloat = true
		}
		r.advance()
	}
	text := r.src[start:r.pos]
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return ast.Expr{}, r.errf("invalid float literal %q: %v", text, err)
		}
		return ast.Float(pos, v), nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return ast.Expr{}, r.errf("invalid integer literal %q: %v", text, err)
	}
	return ast.Int(pos, v), nil
}

func (r *reader) stringLit() (ast.Expr, error) {
	pos := r.pos_()
	r.advance() // opening quote
	var sb strings.Builder
	for {
		if r.atEnd() {
			return ast.Expr{}, r.errf("unterminated string literal")
		}
		c := r.advance()
		if c == '"' {
			break
		}
		if c == '\\' && !r.atEnd() {
			sb.WriteByte(r.advance())
			continue
		}
		sb.WriteByte(c)
	}
	return ast.String(pos, sb.String()), nil
}

func (r *reader) identOrCall() (ast.Expr, error) {
	pos := r.pos_()
	start := r.pos
	for !r.atEnd() && isIdentCont(r.peek()) {
		r.advance()
	}
	name := r.src[start:r.pos]

	switch name {
	case "nil":
		return ast.Nil(pos), nil
	case "true":
		return ast.Bool(pos, true), nil
	case "false":
		return ast.Bool(pos, false), nil
	}

	r.skipSpace()
	if r.peek() != '(' {
		return ast.Identifier(pos, name), nil
	}
	r.advance() // '('

	var args []ast.Expr
	r.skipSpace()
	if r.peek() != ')' {
		for {
			arg, err := r.expr()
			if err != nil {
				return ast.Expr{}, err
			}
			args = append(args, arg)
			r.skipSpace()
			if r.peek() == ',' {
				r.advance()
				r.skipSpace()
				continue
			}
			break
		}
	}
	r.skipSpace()
	if r.peek() != ')' {
		return ast.Expr{}, r.errf("expected ')' to close call to %s()", name)
	}
	r.advance()

	return ast.Call(pos, name, args...), nil
}
