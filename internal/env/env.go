// Package env implements the lexical environment spec.md §4.3 describes:
// chained scopes from identifier name to one of three compiled-function
// builders — access-variable, access-function, access-argument. Literals
// need no binding, and builtins live in the pattern registry instead of the
// lexical environment, since builtins are looked up by call-site shape, not
// by name alone.
//
// Grounded on the original compiler.cpp's `environment`/`compiled_function`
// pair (`env_.define`, `env_.find`, `access_target`, `access_argument`).
package env

import (
	"context"
	"fmt"
	"sync"

	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// Kind identifies which of the three builder shapes a Binding carries.
type Kind int

const (
	KindVariable Kind = iota
	KindFunction
	KindArgument
)

// Binding is what a name resolves to inside an Environment.
type Binding struct {
	Kind Kind

	Cell *Cell // KindVariable

	Body  *graph.Node // KindFunction
	Arity int         // KindFunction

	ArgIndex int // KindArgument
}

// Environment is one lexical scope, chained to its parent.
type Environment struct {
	parent *Environment
	names  map[string]Binding
}

// New creates a child scope of parent (nil for the root/global scope).
func New(parent *Environment) *Environment {
	return &Environment{parent: parent, names: map[string]Binding{}}
}

// Define binds name to b in this scope, shadowing any outer binding.
func (e *Environment) Define(name string, b Binding) {
	e.names[name] = b
}

// Find walks the scope chain outward looking for name.
func (e *Environment) Find(name string) (Binding, bool) {
	for s := e; s != nil; s = s.parent {
		if b, ok := s.names[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// Cell is a mutable variable cell: its value is either computed lazily
// (and freshly, every read) from a compiled initializer body, or has been
// overridden by a prior store() — spec.md §4.6's "store(value, slice-args)"
// for variable-like primitives.
type Cell struct {
	mu    sync.Mutex
	body  *graph.Node
	has   bool
	value value.Value
}

// NewCell wraps a compiled initializer body as a fresh, not-yet-stored-to
// cell.
func NewCell(body *graph.Node) *Cell {
	return &Cell{body: body}
}

// Read returns the cell's current value: the last stored value if store()
// has run at least once, otherwise the initializer body evaluated fresh.
func (c *Cell) Read(ctx context.Context) (value.Value, error) {
	c.mu.Lock()
	if c.has {
		v := c.value
		c.mu.Unlock()
		return v, nil
	}
	body := c.body
	c.mu.Unlock()
	return body.Eval(ctx, nil)
}

// Write overrides the cell's value, as store() does.
func (c *Cell) Write(v value.Value) {
	c.mu.Lock()
	c.has = true
	c.value = v
	c.mu.Unlock()
}

// variableReadPrimitive implements access-variable: reading the current
// value of a Cell.
type variableReadPrimitive struct{ cell *Cell }

func (p variableReadPrimitive) Apply(ctx context.Context, _ []value.Value) (value.Value, error) {
	return p.cell.Read(ctx)
}

// NewVariableNode builds the access-variable node for a Cell binding.
func NewVariableNode(name string, cell *Cell) *graph.Node {
	return graph.New(name, variableReadPrimitive{cell: cell}, nil)
}

// argumentFrameKey is the context key under which the currently executing
// call's evaluated arguments are stashed, read back by access-argument
// nodes (argumentPrimitive below).
type argumentFrameKey struct{}

// WithArguments returns a context carrying args as the active call frame,
// used when invoking a compiled function body.
func WithArguments(ctx context.Context, args []value.Value) context.Context {
	return context.WithValue(ctx, argumentFrameKey{}, args)
}

// ArgumentsFrom returns the active call frame, or nil if none is set.
func ArgumentsFrom(ctx context.Context) []value.Value {
	args, _ := ctx.Value(argumentFrameKey{}).([]value.Value)
	return args
}

type argumentPrimitive struct{ index int }

func (p argumentPrimitive) Apply(ctx context.Context, _ []value.Value) (value.Value, error) {
	args := ArgumentsFrom(ctx)
	if p.index < 0 || p.index >= len(args) {
		return value.Value{}, fmt.Errorf("argument %d not available in the current call frame", p.index)
	}
	return args[p.index], nil
}

// NewArgumentNode builds the access-argument node for the index-th
// positional parameter of the innermost enclosing lambda.
func NewArgumentNode(name string, index int) *graph.Node {
	return graph.New(name, argumentPrimitive{index: index}, nil)
}

// recursionKey stashes the active call-depth counter and its configured
// limit in the context, so every function invocation (call node or
// Closure) can check it without threading it through every signature.
type recursionKey struct{}

type recursionState struct {
	depth, limit int
}

// WithRecursionGuard returns a context that fails function calls once they
// nest deeper than limit (0 means unlimited), per internal/config's
// recursion_guard tuning.
func WithRecursionGuard(ctx context.Context, limit int) context.Context {
	return context.WithValue(ctx, recursionKey{}, &recursionState{limit: limit})
}

// enterCall increments the active call depth, returning an error instead of
// a deeper context once the configured limit is exceeded. A context with no
// guard installed (the common case in tests and in library use without
// internal/config) never fails.
func enterCall(ctx context.Context) (context.Context, error) {
	st, _ := ctx.Value(recursionKey{}).(*recursionState)
	if st == nil {
		return ctx, nil
	}
	next := st.depth + 1
	if st.limit > 0 && next > st.limit {
		return ctx, fmt.Errorf("recursion limit of %d exceeded", st.limit)
	}
	return context.WithValue(ctx, recursionKey{}, &recursionState{depth: next, limit: st.limit}), nil
}

// funcCallPrimitive implements access-function invocation: evaluate the
// call's already-compiled argument operands, bind them as the callee's
// argument frame, and evaluate its body.
type funcCallPrimitive struct {
	body  *graph.Node
	arity int
}

func (p funcCallPrimitive) Apply(ctx context.Context, args []value.Value) (value.Value, error) {
	// A 0-arity call site carries one synthetic nil argument (the
	// call-function wrapper's way of telling "f()" apart from a bare
	// reference to f); tolerate and discard it here.
	if p.arity == 0 && len(args) == 1 {
		args = nil
	}
	if len(args) != p.arity {
		return value.Value{}, fmt.Errorf("function expects %d argument(s), got %d", p.arity, len(args))
	}
	ctx, err := enterCall(ctx)
	if err != nil {
		return value.Value{}, err
	}
	return p.body.Eval(WithArguments(ctx, args), nil)
}

// NewCallNode builds a call node that invokes a KindFunction binding's body
// with operands as its argument frame.
func NewCallNode(name string, body *graph.Node, arity int, operands []*graph.Node) *graph.Node {
	return graph.New(name, funcCallPrimitive{body: body, arity: arity}, operands)
}

// Closure is a value.Handle wrapping a compiled lambda body so it can be
// carried as a first-class primitive_argument (variant 6) and invoked later
// with runtime-computed argument values, e.g. by for_each/fold_left's
// function operand. Distinct from a call node (NewCallNode): a call node's
// arguments are themselves compiled sub-graphs evaluated as part of the
// tree, while a Closure is handed values directly.
type Closure struct {
	name  string
	body  *graph.Node
	arity int
}

// NewClosure wraps a compiled lambda body as an invocable value.Handle.
func NewClosure(name string, body *graph.Node, arity int) Closure {
	return Closure{name: name, body: body, arity: arity}
}

func (c Closure) Name() string { return c.name }

// Eval binds args as the call frame and evaluates the closure body.
func (c Closure) Eval(ctx context.Context, args []value.Value) (value.Value, error) {
	if c.arity == 0 && len(args) == 1 {
		args = nil
	}
	if len(args) != c.arity {
		return value.Value{}, fmt.Errorf("function expects %d argument(s), got %d", c.arity, len(args))
	}
	ctx, err := enterCall(ctx)
	if err != nil {
		return value.Value{}, err
	}
	return c.body.Eval(WithArguments(ctx, args), nil)
}

// Arity returns the number of formal parameters the closure expects.
func (c Closure) Arity() int { return c.arity }

// Body returns the closure's compiled body node.
func (c Closure) Body() *graph.Node { return c.body }
