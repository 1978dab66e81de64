package types

import "strings"

// FunctionType represents the type of a function: positional parameter types
// and a result type. Variadic and keyword-only parameters are not modeled
// (documented limitation; producers fall back to Any for such signatures).
type FunctionType struct {
	Params []Type
	Result Type
}

// NewFunctionType creates a function type from positional parameter types
// and a result type.
func NewFunctionType(params []Type, result Type) *FunctionType {
	ps := make([]Type, len(params))
	copy(ps, params)
	return &FunctionType{Params: ps, Result: result}
}

func (ft *FunctionType) String() string {
	var b strings.Builder
	b.WriteString("Callable[[")
	for i, p := range ft.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString("], ")
	if ft.Result != nil {
		b.WriteString(ft.Result.String())
	} else {
		b.WriteString("None")
	}
	b.WriteString("]")
	return b.String()
}

func (ft *FunctionType) typeNode() {}

func (ft *FunctionType) Equals(other Type) bool {
	otherFt, ok := Effective(other).(*FunctionType)
	if !ok {
		return false // Not a FunctionType
	}
	if ft == nil || otherFt == nil {
		return ft == otherFt // Both must be nil or non-nil
	}
	if len(ft.Params) != len(otherFt.Params) {
		return false // Different number of parameters
	}
	for i, p := range ft.Params {
		if !Equals(p, otherFt.Params[i]) {
			return false // Parameter types differ
		}
	}
	return Equals(ft.Result, otherFt.Result)
}
