package primitives

import (
	"github.com/phylanx-go/phylanx/internal/ast"
	"github.com/phylanx-go/phylanx/internal/pattern"
)

// placeholder builds the n-th positional single-expression placeholder
// identifier ("_1", "_2", ...) used in a registered pattern shape.
func placeholder(pos ast.Tagged, n int) ast.Expr {
	names := []string{"_1", "_2", "_3", "_4", "_5"}
	return ast.Identifier(pos, names[n-1])
}

// Options carries the runtime tuning internal/config loads from
// phylanx.yaml, translated into the primitive-factory parameters this
// package actually needs. Kept local to primitives (rather than importing
// internal/config) so this package stays a leaf the config layer can sit on
// top of, not the other way around.
type Options struct {
	// WorkerPoolSize bounds parallel_block's concurrent operand evaluation
	// (0 = unbounded).
	WorkerPoolSize int
	// DirectExecutionThreshold: a parallel_block with this many operands or
	// fewer runs synchronously instead of paying goroutine setup cost
	// (0 = always concurrent).
	DirectExecutionThreshold int
}

// Register installs every builtin this package implements into reg, using
// default options (parallel_block always runs concurrently, unbounded).
// See RegisterWithOptions to apply internal/config's runtime tuning.
func Register(reg *pattern.Registry) {
	RegisterWithOptions(reg, Options{})
}

// RegisterWithOptions installs every builtin this package implements into
// reg, in the order the compiler's general call dispatch should try them.
// block/parallel_block/if/while/for/for_each/fold_left/list/dict/dict_keys/
// argmax are dispatched this way; define/lambda/slice/store are compiler
// special forms and arithmetic/comparison operators are compiled directly
// from infix/prefix AST nodes (internal/compiler), so neither appears here.
func RegisterWithOptions(reg *pattern.Registry, opts Options) {
	pos := ast.Tagged{}
	ell := func(n int) ast.Expr { return ast.Identifier(pos, "__"+string(rune('0'+n))) }

	reg.Register("block", ast.Call(pos, "block", ell(1)), NewBlock,
		"evaluate operands in order, return the last")
	reg.Register("parallel_block", ast.Call(pos, "parallel_block", ell(1)),
		NewParallelBlockWithOptions(opts.DirectExecutionThreshold, opts.WorkerPoolSize),
		"evaluate operands concurrently, return the last by source order")

	reg.Register("if", ast.Call(pos, "if", placeholder(pos, 1), placeholder(pos, 2)), NewIf,
		"if(cond, then)")
	reg.Register("if", ast.Call(pos, "if", placeholder(pos, 1), placeholder(pos, 2), placeholder(pos, 3)), NewIf,
		"if(cond, then, else)")

	reg.Register("while", ast.Call(pos, "while", placeholder(pos, 1), placeholder(pos, 2)), NewWhile,
		"while(cond, body)")

	reg.Register("for", ast.Call(pos, "for",
		placeholder(pos, 1), placeholder(pos, 2), placeholder(pos, 3), placeholder(pos, 4)), NewFor,
		"for(init, cond, reinit, body)")

	reg.Register("for_each", ast.Call(pos, "for_each", placeholder(pos, 1), placeholder(pos, 2)), NewForEach,
		"for_each(function, list)")

	reg.Register("fold_left", ast.Call(pos, "fold_left",
		placeholder(pos, 1), placeholder(pos, 2), placeholder(pos, 3)), NewFoldLeft,
		"fold_left(function, init, list)")

	reg.Register("list", ast.Call(pos, "list", ell(1)), NewList, "construct a list")
	reg.Register("dict", ast.Call(pos, "dict", ell(1)), NewDict, "construct a dictionary from key/value pairs")
	reg.Register("dict_keys", ast.Call(pos, "dict_keys", placeholder(pos, 1)), NewDictKeys,
		"dict_keys(dict) -> list of keys, insertion order")

	reg.Register("argmax", ast.Call(pos, "argmax", placeholder(pos, 1)), NewArgMax,
		"argmax(data) -> flat index of the max element")
	reg.Register("argmax", ast.Call(pos, "argmax", placeholder(pos, 1), placeholder(pos, 2)), NewArgMaxAxis,
		"argmax(data, axis) -> per-row/column index of the max element")

	reg.Register("constant", ast.Call(pos, "constant", placeholder(pos, 1), placeholder(pos, 2)), NewConstant,
		"constant(value, count) -> a vector of count copies of value")
}
