package types

// Substitute returns a copy of t in which every type-variable reference
// bound in bindings is replaced by its bound expression, applied recursively
// through tuples, unions, function types, generic instances, and aliases.
// One bindings map is applied uniformly over the whole tree, so every
// occurrence of the same type variable substitutes to the same expression —
// the lockstep guarantee holds structurally. Unbound variables are left
// as-is.
func Substitute(t Type, bindings map[*TypeVar]Type) Type {
	if t == nil {
		return nil
	}

	switch t := t.(type) {
	case *TypeVarType:
		if replacement, ok := bindings[t.Var]; ok {
			return replacement
		}
		return t // Not bound, leave the reference in place

	case *TupleType:
		elems := make([]Type, len(t.Elements))
		for i, elem := range t.Elements {
			elems[i] = Substitute(elem, bindings)
		}
		return &TupleType{Elements: elems}

	case *FunctionType:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = Substitute(p, bindings)
		}
		return &FunctionType{Params: params, Result: Substitute(t.Result, bindings)}

	case *UnionType:
		members := make([]Type, len(t.Members))
		for i, m := range t.Members {
			members[i] = Substitute(m, bindings)
		}
		// Rebuild so the union invariants hold for the substituted members.
		return newUnion(members)

	case *GenericInstance:
		args := make([]Type, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Substitute(arg, bindings)
		}
		return &GenericInstance{Desc: t.Desc, Args: args}

	case *AliasType:
		return &AliasType{Name: t.Name, Target: Substitute(t.Target, bindings)}

	// Singletons, concrete types, and unresolved forward references carry
	// no type variables.
	default:
		return t
	}
}
