package errors

import (
	"fmt"
	"strings"
)

// TypalError is the interface implemented by all errors produced by this module.
type TypalError interface {
	error // Embed the standard error interface
	// Kind names the error category, e.g. "Arity", "UnresolvedReference".
	Kind() string
	// Message returns the specific error message without the kind prefix.
	// This might be useful if the caller wants to format the error differently.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// ArityError reports a construction with the wrong number of type arguments:
// an empty tuple, or a generic instantiated with an argument count that does
// not match its descriptor. Always a caller bug; never retried.
type ArityError struct {
	Op   string // The operation that failed, e.g. "Tuple" or the generic's owner
	Want int    // Expected argument count (minimum, for tuples)
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("Arity Error in %s: want %d type argument(s), got %d", e.Op, e.Want, e.Got)
}
func (e *ArityError) Kind() string { return "Arity" }
func (e *ArityError) Message() string {
	return fmt.Sprintf("%s: want %d type argument(s), got %d", e.Op, e.Want, e.Got)
}
func (e *ArityError) Unwrap() error { return nil }

// DuplicateDeclarationError reports a re-declaration of a type variable or
// generic descriptor for an already-registered (name, scope) pair or owner.
// The registries never silently merge; callers that want idempotent
// re-registration may ignore this error themselves.
type DuplicateDeclarationError struct {
	Entity string // "TypeVar" or "Generic"
	Name   string
	Scope  string // Declaring scope; empty for scope-less entities
}

func (e *DuplicateDeclarationError) Error() string {
	return fmt.Sprintf("Duplicate Declaration Error: %s %s", e.Entity, e.Message())
}
func (e *DuplicateDeclarationError) Kind() string { return "DuplicateDeclaration" }
func (e *DuplicateDeclarationError) Message() string {
	if e.Scope != "" {
		return fmt.Sprintf("%q already declared in scope %q", e.Name, e.Scope)
	}
	return fmt.Sprintf("%q already declared", e.Name)
}
func (e *DuplicateDeclarationError) Unwrap() error { return nil }

// UnresolvedReferenceError reports a forward reference whose literal was not
// found in the supplied namespace. Recoverable: the caller may retry with a
// richer namespace, and failures are never cached.
type UnresolvedReferenceError struct {
	Literal string
	Cause   error // Underlying cause, if any
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("Unresolved Reference Error: %s", e.Message())
}
func (e *UnresolvedReferenceError) Kind() string { return "UnresolvedReference" }
func (e *UnresolvedReferenceError) Message() string {
	return fmt.Sprintf("forward reference %q not found in namespace", e.Literal)
}
func (e *UnresolvedReferenceError) Unwrap() error { return e.Cause }
func (e *UnresolvedReferenceError) CausedBy(cause error) *UnresolvedReferenceError {
	e.Cause = cause
	return e
}

// CyclicReferenceError reports a forward reference that resolves, directly or
// transitively, back to itself. Fatal for that literal; not retried.
type CyclicReferenceError struct {
	Literal string
	Chain   []string // Resolution path that closed the cycle, in order
}

func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("Cyclic Reference Error: %s", e.Message())
}
func (e *CyclicReferenceError) Kind() string { return "CyclicReference" }
func (e *CyclicReferenceError) Message() string {
	if len(e.Chain) > 0 {
		return fmt.Sprintf("forward reference %q resolves to itself (%s)",
			e.Literal, strings.Join(e.Chain, " -> "))
	}
	return fmt.Sprintf("forward reference %q resolves to itself", e.Literal)
}
func (e *CyclicReferenceError) Unwrap() error { return nil }

// UninitializedValueError reports operand use of an Undefined sentinel. The
// sentinel may be passed around freely; any structural use (arithmetic,
// indexing, attribute access, non-identity comparison) produces this error.
type UninitializedValueError struct {
	Op       string // The attempted operation, e.g. "+", "index", "attr length"
	Declared string // String form of the sentinel's declared type
}

func (e *UninitializedValueError) Error() string {
	return fmt.Sprintf("Uninitialized Value Error: %s", e.Message())
}
func (e *UninitializedValueError) Kind() string { return "UninitializedValue" }
func (e *UninitializedValueError) Message() string {
	return fmt.Sprintf("value of declared type %s used in %s before initialization", e.Declared, e.Op)
}
func (e *UninitializedValueError) Unwrap() error { return nil }
