// Package diagnostics defines the error taxonomy shared by the compiler,
// the executor and the slicing engine (spec.md §7).
package diagnostics

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Kind classifies a Phylanx failure.
type Kind int

const (
	// KindMatchFailure: an expression matched no registered pattern.
	KindMatchFailure Kind = iota
	// KindBinding: undefined identifier, bad define/lambda arity, non-identifier
	// where a name is required.
	KindBinding
	// KindArity: a primitive was invoked with the wrong operand count.
	KindArity
	// KindType: a type mismatch, e.g. scalar assigned to matrix, non-boolean
	// condition.
	KindType
	// KindDomain: slice index out of range, zero step, shape mismatch.
	KindDomain
	// KindEvaluation: a failure propagated up from an operand.
	KindEvaluation
)

func (k Kind) String() string {
	switch k {
	case KindMatchFailure:
		return "match-failure"
	case KindBinding:
		return "binding"
	case KindArity:
		return "arity"
	case KindType:
		return "type"
	case KindDomain:
		return "domain"
	case KindEvaluation:
		return "evaluation"
	default:
		return "unknown"
	}
}

// Error is the single error type raised anywhere in the compiler and
// runtime. It always carries the codename(id, col) triple described in
// spec.md §6/§7.
type Error struct {
	Kind     Kind
	Codename string
	ID       int
	Col      int
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s(%d, %d): %s", e.Codename, e.ID, e.Col, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a diagnostics.Error with the given kind and codename/position.
func New(kind Kind, codename string, id, col int, format string, args ...any) *Error {
	return &Error{
		Kind:     kind,
		Codename: codename,
		ID:       id,
		Col:      col,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Wrap attaches a codename/position pair to an evaluation failure
// propagated from a child operand (KindEvaluation).
func Wrap(codename string, id, col int, cause error) *Error {
	return &Error{
		Kind:     KindEvaluation,
		Codename: codename,
		ID:       id,
		Col:      col,
		Message:  cause.Error(),
		Cause:    cause,
	}
}

// IndexOutOfRange builds a KindDomain error describing an out-of-range
// slice index, rendering both numbers with humanize.Comma so large shapes
// stay readable.
func IndexOutOfRange(codename string, id, col int, index, size int64) *Error {
	return New(KindDomain, codename, id, col,
		"index %s out of range for size %s", humanize.Comma(index), humanize.Comma(size))
}

// OrdinalArity builds a KindBinding error naming which positional argument
// was malformed, e.g. "the 2nd argument to define() must be an identifier".
func OrdinalArity(codename string, id, col int, position int, operation, requirement string) *Error {
	return New(KindBinding, codename, id, col,
		"the %s argument to %s() %s", humanize.Ordinal(position), operation, requirement)
}
