package primitives

import (
	"context"

	"github.com/phylanx-go/phylanx/internal/graph"
	"github.com/phylanx-go/phylanx/internal/value"
)

// defineVariable implements the `define-variable` wrapper SPEC_FULL's
// supplemented-features section describes: define(...) doesn't just
// install a binding, it also emits a primitive whose own eval returns the
// value that binding now holds, so `block(define(x, 1), x)` both defines x
// and yields a value for the defining expression itself.
type defineVariable struct {
	read func(ctx context.Context) (value.Value, error)
}

func (p defineVariable) Apply(ctx context.Context, _ []value.Value) (value.Value, error) {
	return p.read(ctx)
}

// NewDefineVariable builds the define-variable primitive around read, the
// freshly-installed binding's value accessor (a Cell.Read for a variable
// binding, or a constant Closure-wrapping thunk for a function binding).
func NewDefineVariable(read func(ctx context.Context) (value.Value, error)) graph.Primitive {
	return defineVariable{read: read}
}
