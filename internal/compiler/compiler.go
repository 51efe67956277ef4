// Package compiler turns a PhySL expression tree into a compiled primitive
// graph (spec.md §4.2), grounded nearly 1:1 on
// original_source/src/execution_tree/compiler/compiler.cpp's
// handle_define/handle_lambda/handle_slice/handle_sliced_variable_reference/
// handle_variable_reference/handle_function_call/handle_placeholders and
// the top-level compiler::operator().
package compiler

import (
	"context"
	"sync"

	"github.com/phylanx-go/phylanx/internal/ast"
	"github.com/phylanx-go/phylanx/internal/diagnostics"
	"github.com/phylanx-go/phylanx/internal/env"
	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/matcher"
	"github.com/phylanx-go/phylanx/internal/names"
	"github.com/phylanx-go/phylanx/internal/pattern"
	"github.com/phylanx-go/phylanx/internal/primitives"
	"github.com/phylanx-go/phylanx/pkg/locality"
	"github.com/phylanx-go/phylanx/internal/value"
)

// Compiler holds the state threaded through one compilation: the pattern
// registry, the name-sequencing counters, and the compile-unit identity
// used to keep composed primitive names globally unique.
type Compiler struct {
	codename  string
	registry  *pattern.Registry
	compileID locality.CompileID

	mu  sync.Mutex
	seq map[string]uint64
}

// New builds a Compiler for one compile unit, named codename for
// diagnostics, dispatching named calls through reg, tagged with compileID.
func New(codename string, reg *pattern.Registry, compileID locality.CompileID) *Compiler {
	return &Compiler{codename: codename, registry: reg, compileID: compileID, seq: map[string]uint64{}}
}

func (c *Compiler) nextName(kind, instance string, pos ast.Tagged) string {
	c.mu.Lock()
	c.seq[kind]++
	n := c.seq[kind]
	c.mu.Unlock()
	return names.Compose(names.Parts{
		Primitive: kind, Sequence: n, Instance: instance,
		ID: pos.ID, Col: pos.Col, Compile: c.compileID,
	})
}

func (c *Compiler) errf(kind diagnostics.Kind, pos ast.Tagged, format string, args ...any) error {
	return diagnostics.New(kind, c.codename, pos.ID, pos.Col, format, args...)
}

// Compile implements the dispatch order of spec.md §4.2: special-form
// calls (define/lambda/slice/store), then registered-pattern calls, then
// user-defined function calls, literals, identifiers, and finally
// operator chains.
func (c *Compiler) Compile(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	switch expr.Kind {
	case ast.KindFunctionCall:
		return c.compileCall(e, expr)
	case ast.KindNil, ast.KindBool, ast.KindInt, ast.KindFloat, ast.KindString:
		return c.compileLiteral(expr), nil
	case ast.KindIdentifier:
		return c.compileIdentifier(e, expr)
	case ast.KindList:
		return c.compileList(e, expr)
	case ast.KindInfixChain:
		return c.compileInfix(e, expr)
	case ast.KindPrefixOp:
		return c.compilePrefix(e, expr)
	default:
		return nil, c.errf(diagnostics.KindMatchFailure, expr.Pos, "don't know how to compile this expression")
	}
}

func (c *Compiler) compileCall(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	switch expr.Ident {
	case "define":
		return c.compileDefine(e, expr)
	case "lambda":
		node, _, err := c.compileLambdaLeaf(e, expr)
		if err != nil {
			return nil, err
		}
		return node, nil
	case "slice":
		return c.compileSlice(e, expr)
	case "store":
		return c.compileStore(e, expr)
	}

	if entries := c.registry.Lookup(expr.Ident); entries != nil {
		for _, entry := range entries {
			if _, ok := matcher.Match(expr, entry.Pattern); ok {
				return c.handlePlaceholders(e, expr, entry)
			}
		}
		return nil, c.errf(diagnostics.KindMatchFailure, expr.Pos,
			"no registered pattern for %s() matches this call shape", expr.Ident)
	}

	return c.compileFunctionCall(e, expr)
}

// handlePlaceholders compiles a matched call's arguments, in source order,
// into operand sub-graphs and hands them to the matched pattern's factory
// (spec.md §4.2.4).
func (c *Compiler) handlePlaceholders(e *env.Environment, expr ast.Expr, entry pattern.Entry) (*graph.Node, error) {
	operands := make([]*graph.Node, len(expr.Args))
	for i, a := range expr.Args {
		node, err := c.Compile(e, a)
		if err != nil {
			return nil, err
		}
		operands[i] = node
	}
	name := c.nextName(expr.Ident, "", expr.Pos)
	return graph.New(name, entry.Factory(operands), operands), nil
}

// compileFunctionCall implements the call-function wrapper: a call to a
// user-defined (env-bound) function. A zero-argument call is represented
// internally as a call carrying one synthetic literal-nil argument, so
// "f()" compiles differently from a bare reference to "f".
func (c *Compiler) compileFunctionCall(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	b, ok := e.Find(expr.Ident)
	if !ok {
		return nil, c.errf(diagnostics.KindBinding, expr.Pos, "undefined function %q", expr.Ident)
	}
	if b.Kind != env.KindFunction {
		return nil, c.errf(diagnostics.KindBinding, expr.Pos, "%q is not a function", expr.Ident)
	}

	argExprs := expr.Args
	if len(argExprs) == 0 {
		argExprs = []ast.Expr{ast.Nil(expr.Pos)}
	}
	if len(argExprs) != b.Arity && !(b.Arity == 0 && len(argExprs) == 1) {
		return nil, c.errf(diagnostics.KindArity, expr.Pos,
			"%q expects %d argument(s), got %d", expr.Ident, b.Arity, len(expr.Args))
	}

	operands := make([]*graph.Node, len(argExprs))
	for i, a := range argExprs {
		node, err := c.Compile(e, a)
		if err != nil {
			return nil, err
		}
		operands[i] = node
	}
	name := c.nextName("call-function", expr.Ident, expr.Pos)
	return env.NewCallNode(name, b.Body, b.Arity, operands), nil
}

// compileDefine implements spec.md §4.2.1.
func (c *Compiler) compileDefine(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	if len(expr.Args) < 2 {
		return nil, c.errf(diagnostics.KindBinding, expr.Pos, "define() requires a name and a body")
	}
	nameExpr := expr.Args[0]
	if !ast.IsIdentifier(nameExpr) {
		return nil, diagnostics.OrdinalArity(c.codename, expr.Pos.ID, expr.Pos.Col, 1, "define", "must be an identifier")
	}

	defArgs := expr.Args[1 : len(expr.Args)-1]
	bodyExpr := expr.Args[len(expr.Args)-1]

	if len(defArgs) > 0 {
		child := env.New(e)
		for i, a := range defArgs {
			if !ast.IsIdentifier(a) {
				return nil, diagnostics.OrdinalArity(c.codename, expr.Pos.ID, expr.Pos.Col, i+2, "define", "must be an identifier")
			}
			child.Define(a.Ident, env.Binding{Kind: env.KindArgument, ArgIndex: i})
		}
		bodyNode, err := c.Compile(child, bodyExpr)
		if err != nil {
			return nil, err
		}
		return c.bindFunction(e, nameExpr.Ident, bodyNode, len(defArgs), expr.Pos), nil
	}

	if bodyExpr.Kind == ast.KindFunctionCall && bodyExpr.Ident == "lambda" {
		closure, err := c.compileLambda(e, bodyExpr)
		if err != nil {
			return nil, err
		}
		return c.bindFunction(e, nameExpr.Ident, closure.Body(), closure.Arity(), expr.Pos), nil
	}

	bodyNode, err := c.Compile(e, bodyExpr)
	if err != nil {
		return nil, err
	}
	cell := env.NewCell(bodyNode)
	e.Define(nameExpr.Ident, env.Binding{Kind: env.KindVariable, Cell: cell})
	defName := c.nextName("define-variable", nameExpr.Ident, expr.Pos)
	return graph.New(defName, primitives.NewDefineVariable(cell.Read), nil), nil
}

func (c *Compiler) bindFunction(e *env.Environment, name string, body *graph.Node, arity int, pos ast.Tagged) *graph.Node {
	e.Define(name, env.Binding{Kind: env.KindFunction, Body: body, Arity: arity})
	closure := env.NewClosure(name, body, arity)
	defName := c.nextName("define-variable", name, pos)
	return graph.New(defName, primitives.NewDefineVariable(func(context.Context) (value.Value, error) {
		return value.Primitive(closure), nil
	}), nil)
}

// compileLambda implements spec.md §4.2.2's allocation/compilation step,
// returning the closure (compiled body + arity) without wrapping it in a
// leaf node — used both by compileLambdaLeaf (a bare lambda(...)
// expression) and by compileDefine's function-promotion path, which needs
// the closure's body/arity directly rather than a value-producing node.
func (c *Compiler) compileLambda(e *env.Environment, expr ast.Expr) (env.Closure, error) {
	if len(expr.Args) < 1 {
		return env.Closure{}, c.errf(diagnostics.KindBinding, expr.Pos, "lambda() requires a body")
	}
	argNames := expr.Args[:len(expr.Args)-1]
	bodyExpr := expr.Args[len(expr.Args)-1]

	child := env.New(e)
	for i, a := range argNames {
		if !ast.IsIdentifier(a) {
			return env.Closure{}, diagnostics.OrdinalArity(c.codename, expr.Pos.ID, expr.Pos.Col, i+1, "lambda", "must be an identifier")
		}
		child.Define(a.Ident, env.Binding{Kind: env.KindArgument, ArgIndex: i})
	}

	bodyNode, err := c.Compile(child, bodyExpr)
	if err != nil {
		return env.Closure{}, err
	}

	arity := len(argNames)
	name := c.nextName("lambda", "", expr.Pos)
	return env.NewClosure(name, bodyNode, arity), nil
}

// compileLambdaLeaf compiles a bare lambda(...) expression appearing as a
// value-producing expression (not immediately define()'d), into a leaf
// node evaluating to the closure as a value. The body is NOT an operand of
// this node: it must not be evaluated until the closure is actually
// invoked with bound arguments.
func (c *Compiler) compileLambdaLeaf(e *env.Environment, expr ast.Expr) (*graph.Node, env.Closure, error) {
	closure, err := c.compileLambda(e, expr)
	if err != nil {
		return nil, env.Closure{}, err
	}
	leaf := graph.New(closure.Name(), lambdaValuePrimitive{closure: closure}, nil)
	return leaf, closure, nil
}

// lambdaValuePrimitive evaluates a bare lambda(...) expression to its
// callable value without touching the body.
type lambdaValuePrimitive struct{ closure env.Closure }

func (p lambdaValuePrimitive) Apply(context.Context, []value.Value) (value.Value, error) {
	return value.Primitive(p.closure), nil
}

// compileLiteral builds a constant-value leaf node for a literal AST node.
func (c *Compiler) compileLiteral(expr ast.Expr) *graph.Node {
	v := literalValue(expr)
	name := c.nextName("literal", "", expr.Pos)
	return graph.New(name, constantPrimitive{v: v}, nil)
}

func literalValue(expr ast.Expr) value.Value {
	switch expr.Kind {
	case ast.KindNil:
		return value.Nil
	case ast.KindBool:
		return value.Bool(expr.Bool)
	case ast.KindInt:
		return value.FromScalarI64(expr.Int)
	case ast.KindFloat:
		return value.FromScalarF64(expr.Float)
	case ast.KindString:
		return value.String(expr.Str)
	default:
		return value.Nil
	}
}

type constantPrimitive struct{ v value.Value }

func (p constantPrimitive) Apply(context.Context, []value.Value) (value.Value, error) { return p.v, nil }

// compileIdentifier implements spec.md §4.2 step 3: the reserved constants
// nil/true/false, or an environment lookup producing an access node.
func (c *Compiler) compileIdentifier(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	switch expr.Ident {
	case "nil":
		return c.compileLiteral(ast.Nil(expr.Pos)), nil
	case "true":
		return c.compileLiteral(ast.Bool(expr.Pos, true)), nil
	case "false":
		return c.compileLiteral(ast.Bool(expr.Pos, false)), nil
	}

	b, ok := e.Find(expr.Ident)
	if !ok {
		return nil, c.errf(diagnostics.KindBinding, expr.Pos, "undefined identifier %q", expr.Ident)
	}
	switch b.Kind {
	case env.KindVariable:
		return env.NewVariableNode(c.nextName("access-variable", expr.Ident, expr.Pos), b.Cell), nil
	case env.KindArgument:
		return env.NewArgumentNode(c.nextName("access-argument", expr.Ident, expr.Pos), b.ArgIndex), nil
	case env.KindFunction:
		closure := env.NewClosure(expr.Ident, b.Body, b.Arity)
		name := c.nextName("access-function", expr.Ident, expr.Pos)
		return graph.New(name, constantPrimitive{v: value.Primitive(closure)}, nil), nil
	default:
		return nil, c.errf(diagnostics.KindBinding, expr.Pos, "unknown binding kind for %q", expr.Ident)
	}
}

// compileList builds a list(...) construction node for a bare `'(...)`
// list-literal AST node.
func (c *Compiler) compileList(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	operands := make([]*graph.Node, len(expr.Args))
	for i, a := range expr.Args {
		node, err := c.Compile(e, a)
		if err != nil {
			return nil, err
		}
		operands[i] = node
	}
	name := c.nextName("list", "", expr.Pos)
	return graph.New(name, primitives.NewList(operands), operands), nil
}

// compileInfix left-folds a chained infix expression into nested binary
// operator nodes (spec.md §4.6).
func (c *Compiler) compileInfix(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	node, err := c.Compile(e, expr.Operands[0])
	if err != nil {
		return nil, err
	}
	for i, op := range expr.Operators {
		rhs, err := c.Compile(e, expr.Operands[i+1])
		if err != nil {
			return nil, err
		}
		name := c.nextName("operator", op, expr.Pos)
		node = graph.New(name, primitives.NewBinaryOp(op)(nil), []*graph.Node{node, rhs})
	}
	return node, nil
}

// compilePrefix compiles a prefix-operator expression (spec.md §4.6).
func (c *Compiler) compilePrefix(e *env.Environment, expr ast.Expr) (*graph.Node, error) {
	operand, err := c.Compile(e, expr.Operands[0])
	if err != nil {
		return nil, err
	}
	var prim graph.Primitive
	switch expr.Prefix {
	case "-":
		prim = primitives.NewUnaryNeg(nil)
	case "!":
		prim = primitives.NewUnaryNot(nil)
	default:
		return nil, c.errf(diagnostics.KindMatchFailure, expr.Pos, "unknown prefix operator %q", expr.Prefix)
	}
	name := c.nextName("operator", expr.Prefix, expr.Pos)
	return graph.New(name, prim, []*graph.Node{operand}), nil
}
