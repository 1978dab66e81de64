// Package runtime provides the two zero-effect value utilities of the
// model: Cast, an annotation-level assertion with no runtime behavior, and
// the Undefined sentinel, a placeholder declaring a variable's type before
// its first real assignment. The sentinel may be passed around freely;
// using it as an operand is a protocol violation surfaced as an
// UninitializedValueError through the guard functions, which an embedding
// host calls from its operand-dispatch sites.
package runtime

import (
	"fmt"

	"typal/pkg/errors"
	"typal/pkg/types"
)

// Cast asserts that value has type t for the benefit of external checkers.
// It returns value unchanged, always: no inspection, no coercion, no error.
func Cast(t types.Type, value any) any {
	return value
}

// UndefinedValue is the sentinel produced by Undefined. It carries the
// declared type of the not-yet-initialized variable and nothing else.
type UndefinedValue struct {
	declared types.Type
}

// Undefined creates a sentinel declaring a variable of the given type whose
// real value has not been assigned yet.
func Undefined(declared types.Type) *UndefinedValue {
	return &UndefinedValue{declared: declared}
}

// DeclaredType returns the type the sentinel was declared with.
func (u *UndefinedValue) DeclaredType() types.Type { return u.declared }

// String identifies the sentinel for diagnostics. Printing is not operand
// use and never faults.
func (u *UndefinedValue) String() string {
	return fmt.Sprintf("Undefined(%s)", u.declared)
}

// IsUndefined reports whether v is an Undefined sentinel. Identity checks
// like this are always permitted.
func IsUndefined(v any) bool {
	_, ok := v.(*UndefinedValue)
	return ok
}

func fault(op string, operands ...any) error {
	for _, v := range operands {
		if u, ok := v.(*UndefinedValue); ok {
			return &errors.UninitializedValueError{Op: op, Declared: u.declared.String()}
		}
	}
	return nil
}

// GuardBinary faults when either operand of a binary operation (arithmetic,
// concatenation, ordering) is an Undefined sentinel. Hosts call it before
// applying the operation; assignment and argument passing do not route
// through guards and therefore never fault.
func GuardBinary(op string, left, right any) error {
	return fault(op, left, right)
}

// GuardIndex faults when the indexed value or the key is an Undefined
// sentinel.
func GuardIndex(value, key any) error {
	return fault("index", value, key)
}

// GuardAttr faults when the value of an attribute access is an Undefined
// sentinel.
func GuardAttr(value any, name string) error {
	return fault("attr "+name, value)
}

// GuardCompare faults when either side of a non-identity comparison is an
// Undefined sentinel. Identity comparison (IsUndefined, pointer equality)
// needs no guard.
func GuardCompare(left, right any) error {
	return fault("compare", left, right)
}
