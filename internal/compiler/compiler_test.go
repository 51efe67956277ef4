package compiler

import (
	"context"
	"testing"

	"github.com/phylanx-go/phylanx/internal/ast"
	"github.com/phylanx-go/phylanx/internal/env"
	"github.com/phylanx-go/phylanx/internal/pattern"
	"github.com/phylanx-go/phylanx/internal/primitives"
	"github.com/phylanx-go/phylanx/internal/value"
	"github.com/phylanx-go/phylanx/pkg/locality"
)

func newCompiler(t *testing.T) (*Compiler, *env.Environment) {
	t.Helper()
	reg := pattern.NewRegistry()
	primitives.Register(reg)
	gen := locality.NewGenerator(locality.New())
	return New("test", reg, gen.Next()), env.New(nil)
}

func mustEval(t *testing.T, c *Compiler, e *env.Environment, expr ast.Expr) value.Value {
	t.Helper()
	node, err := c.Compile(e, expr)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := node.Eval(context.Background(), nil)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	return v
}

func pos() ast.Tagged { return ast.Tagged{} }

func ident(name string) ast.Expr { return ast.Identifier(pos(), name) }
func num(v float64) ast.Expr     { return ast.Float(pos(), v) }

func call(name string, args ...ast.Expr) ast.Expr { return ast.Call(pos(), name, args...) }

// fold_left(lambda(x, y, x + y), 0, list(1, 2, 3, 4)) -> 10
func TestFoldLeftOverLambdaSum(t *testing.T) {
	c, e := newCompiler(t)

	lambda := call("lambda", ident("x"), ident("y"),
		ast.Infix(pos(), []ast.Expr{ident("x"), ident("y")}, []string{"+"}))

	expr := call("fold_left", lambda, num(0),
		call("list", num(1), num(2), num(3), num(4)))

	got := mustEval(t, c, e, expr)
	if got.Kind != value.KindScalar || got.Node.AtFlat(0) != 10 {
		t.Fatalf("fold_left sum = %+v, want scalar 10", got)
	}
}

// block(define(x, constant(0.0, 4)), store(slice(x, 1), 5.0), x) -> [0, 5, 0, 0]
func TestConstantSliceStoreRoundtrip(t *testing.T) {
	c, e := newCompiler(t)

	expr := call("block",
		call("define", ident("x"), call("constant", num(0), num(4))),
		call("store", call("slice", ident("x"), num(1)), num(5)),
		ident("x"),
	)

	got := mustEval(t, c, e, expr)
	if got.Kind != value.KindArray1Owned {
		t.Fatalf("result kind = %s, want vector", got.Kind)
	}
	want := []float64{0, 5, 0, 0}
	for i, w := range want {
		if got.Node.AtFlat(i) != w {
			t.Fatalf("result[%d] = %v, want %v (full %v)", i, got.Node.AtFlat(i), w, got.Node.ToFloat64())
		}
	}
}

// block(define(f, x, y, x + y), f(2, 3)) -> 5
func TestDefineFunctionAndCall(t *testing.T) {
	c, e := newCompiler(t)

	expr := call("block",
		call("define", ident("f"), ident("x"), ident("y"),
			ast.Infix(pos(), []ast.Expr{ident("x"), ident("y")}, []string{"+"})),
		call("f", num(2), num(3)),
	)

	got := mustEval(t, c, e, expr)
	if got.Kind != value.KindScalar || got.Node.AtFlat(0) != 5 {
		t.Fatalf("f(2,3) = %+v, want scalar 5", got)
	}
}

// block(define(g, lambda(x, x * 2)), g(21)) -> 42, exercising the
// define-promotes-a-bare-lambda-to-a-function path (no explicit defArgs).
func TestDefineLambdaPromotion(t *testing.T) {
	c, e := newCompiler(t)

	lambda := call("lambda", ident("x"),
		ast.Infix(pos(), []ast.Expr{ident("x"), num(2)}, []string{"*"}))

	expr := call("block",
		call("define", ident("g"), lambda),
		call("g", num(21)),
	)

	got := mustEval(t, c, e, expr)
	if got.Kind != value.KindScalar || got.Node.AtFlat(0) != 42 {
		t.Fatalf("g(21) = %+v, want scalar 42", got)
	}
}

// for(define(i, 0), i < 3, nil, store(i, i + 1)) -> 3, the last body value.
// The increment lives in the body (not reinit) so the loop's final returned
// value is the post-increment i, matching for_operation.cpp's
// cond/body/reinit chaining order (body runs, then reinit, each pass).
func TestForLoopCounts(t *testing.T) {
	c, e := newCompiler(t)

	expr := call("for",
		call("define", ident("i"), num(0)),
		ast.Infix(pos(), []ast.Expr{ident("i"), num(3)}, []string{"<"}),
		ast.Nil(pos()),
		call("store", ident("i"), ast.Infix(pos(), []ast.Expr{ident("i"), num(1)}, []string{"+"})),
	)

	got := mustEval(t, c, e, expr)
	if got.Kind != value.KindScalar || got.Node.AtFlat(0) != 3 {
		t.Fatalf("for-loop result = %+v, want scalar 3", got)
	}
}

// if's untaken branch must never be evaluated: each case puts
// dict_keys(1), which compiles but fails with a type error when evaluated,
// in the branch the condition does not select, so mustEval would fail if
// that branch ran.
func TestIfShortCircuitsBranches(t *testing.T) {
	c, e := newCompiler(t)

	expr := call("if", ast.Bool(pos(), true), num(1), call("dict_keys", num(1)))
	got := mustEval(t, c, e, expr)
	if got.Node.AtFlat(0) != 1 {
		t.Fatalf("if(true, 1, dict_keys(1)) = %v, want 1", got.Node.AtFlat(0))
	}

	expr = call("if", ast.Bool(pos(), false), call("dict_keys", num(1)), num(2))
	got = mustEval(t, c, e, expr)
	if got.Node.AtFlat(0) != 2 {
		t.Fatalf("if(false, dict_keys(1), 2) = %v, want 2", got.Node.AtFlat(0))
	}
}

// A variable read before any store() just evaluates its initializer fresh
// each time; referential transparency holds until store() runs.
func TestVariableReadIsReferentiallyTransparentBeforeStore(t *testing.T) {
	c, e := newCompiler(t)

	expr := call("block",
		call("define", ident("x"), num(7)),
		ident("x"),
	)
	got := mustEval(t, c, e, expr)
	if got.Node.AtFlat(0) != 7 {
		t.Fatalf("x = %v, want 7", got.Node.AtFlat(0))
	}
}

// slice(v, -1) selects the last element of a vector.
func TestSliceNegativeIndex(t *testing.T) {
	c, e := newCompiler(t)

	expr := call("block",
		call("define", ident("v"), call("constant", num(0), num(3))),
		call("store", call("slice", ident("v"), num(0)), num(10)),
		call("store", call("slice", ident("v"), num(1)), num(20)),
		call("store", call("slice", ident("v"), num(2)), num(30)),
		call("slice", ident("v"), num(-1)),
	)

	got := mustEval(t, c, e, expr)
	if got.Node.AtFlat(0) != 30 {
		t.Fatalf("slice(v, -1) = %v, want 30", got.Node.AtFlat(0))
	}
}

// for_each invokes its function once per list element, left to right.
func TestForEachVisitsEveryElement(t *testing.T) {
	c, e := newCompiler(t)

	expr := call("block",
		call("define", ident("total"), num(0)),
		call("for_each",
			call("lambda", ident("x"),
				call("store", ident("total"),
					ast.Infix(pos(), []ast.Expr{ident("total"), ident("x")}, []string{"+"}))),
			call("list", num(1), num(2), num(3))),
		ident("total"),
	)

	got := mustEval(t, c, e, expr)
	if got.Node.AtFlat(0) != 6 {
		t.Fatalf("for_each accumulated total = %v, want 6", got.Node.AtFlat(0))
	}
}
