package types

// Assignable implements the structural assignability table (spec
// §4.3): whether a value of type source may be used where target is
// expected.
func Assignable(source, target *Type) bool {
	if source == nil || target == nil {
		return true
	}
	if source.Kind == KAny || target.Kind == KAny {
		return true
	}
	if target.Kind == KUnknown {
		return true
	}
	if source.Kind == KNever {
		return true
	}
	if source.Kind == KNull || source.Kind == KUndefined {
		return source.Kind == target.Kind || target.Kind == KUnknown
	}

	if source.Kind == KUnion {
		for _, arm := range source.Parts {
			if !Assignable(arm, target) {
				return false
			}
		}
		return true
	}
	if target.Kind == KUnion {
		for _, arm := range target.Parts {
			if Assignable(source, arm) {
				return true
			}
		}
		// string relaxed into a union of string literals (spec §4.3, §9.3).
		if source.Kind == KString && allStringLiterals(target.Parts) {
			return true
		}
		return false
	}

	if source.Kind == KLiteral {
		// A literal is assignable to an identical literal (reflexivity)
		// before ever widening; union-of-literals targets fall out of
		// this via the target-union loop above recursing back in here
		// per arm.
		if target.Kind == KLiteral && source.LitKind == target.LitKind && source.LitVal == target.LitVal {
			return true
		}
		return Assignable(WidenLiteral(source), target)
	}

	if target.Kind == KIntersection {
		for _, part := range target.Parts {
			if !Assignable(source, part) {
				return false
			}
		}
		return true
	}

	// Interfaces and classes are both checked structurally against the
	// target's instance-member mapping, so a class instance satisfies
	// an interface (and vice versa) without requiring the same Kind.
	if isObjectLike(source) && isObjectLike(target) {
		for _, name := range target.Order {
			tm := target.Members[name]
			sm, ok := source.Members[name]
			if !ok || !Assignable(sm, tm) {
				return false
			}
		}
		return true
	}

	if source.Kind != target.Kind {
		return false
	}

	switch source.Kind {
	case KNumber, KString, KBoolean, KVoid, KSymbol, KBigint, KObjectPrimitive:
		return true
	case KArray:
		return Assignable(source.Elem, target.Elem)
	case KTuple:
		if len(source.Elems) != len(target.Elems) {
			return false
		}
		for i := range source.Elems {
			if !Assignable(source.Elems[i], target.Elems[i]) {
				return false
			}
		}
		return true
	case KFunction:
		if !Assignable(source.ReturnType, target.ReturnType) {
			return false
		}
		if len(source.Params) < len(target.Params) {
			return false
		}
		for i, tp := range target.Params {
			sp := source.Params[i]
			// parameters are contravariant: the target's parameter type
			// must be assignable INTO the source's parameter type.
			if !Assignable(tp.Type, sp.Type) {
				return false
			}
		}
		return true
	case KEnum:
		return source.Name == target.Name
	case KIntersection:
		for _, part := range target.Parts {
			if !Assignable(source, part) {
				return false
			}
		}
		return true
	}
	return false
}

func isObjectLike(t *Type) bool {
	return t.Kind == KInterface || t.Kind == KClass
}

func allStringLiterals(parts []*Type) bool {
	if len(parts) == 0 {
		return false
	}
	for _, p := range parts {
		if p.Kind != KLiteral || p.LitKind != LitString {
			return false
		}
	}
	return true
}
