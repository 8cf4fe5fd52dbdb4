package checker

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/internal/types"
)

// resolveType converts a syntax-level type expression into the
// checker's structural Type value, looking up named references
// against aliases, interfaces, classes, and enums collected in pass
// 1-4.
func (c *Checker) resolveType(t ast.TypeExpr) *types.Type {
	if t == nil {
		return types.Any
	}
	switch n := t.(type) {
	case *ast.TypeReference:
		return c.resolveTypeReference(n)
	case *ast.ArrayTypeExpr:
		return types.NewArray(c.resolveType(n.Element))
	case *ast.TupleTypeExpr:
		var elems []*types.Type
		for _, e := range n.Elements {
			elems = append(elems, c.resolveType(e))
		}
		return types.NewTuple(elems)
	case *ast.UnionTypeExpr:
		var parts []*types.Type
		for _, e := range n.Types {
			parts = append(parts, c.resolveType(e))
		}
		return types.NewUnion(parts)
	case *ast.IntersectionTypeExpr:
		var parts []*types.Type
		for _, e := range n.Types {
			parts = append(parts, c.resolveType(e))
		}
		return types.NewIntersection(parts)
	case *ast.FunctionTypeExpr:
		return types.NewFunction(c.resolveParams(n.Params), c.resolveType(n.ReturnType))
	case *ast.ObjectTypeExpr:
		return c.resolveObjectType(n)
	case *ast.LiteralTypeExpr:
		return types.NewLiteral(types.LiteralKind(n.Kind), n.Value)
	case *ast.ParenthesizedTypeExpr:
		return c.resolveType(n.Inner)
	case *ast.OptionalTypeExpr:
		return types.NewUnion([]*types.Type{c.resolveType(n.Inner), types.Undefined})
	case *ast.RestTypeExpr:
		return types.NewArray(c.resolveType(n.Inner))
	case *ast.IndexedAccessTypeExpr:
		// Member types are not tracked per-key in this core; indexed
		// access degrades to the object's element type for arrays and
		// to any otherwise.
		obj := c.resolveType(n.Object)
		if obj.Kind == types.KArray {
			return obj.Elem
		}
		return types.Any
	case *ast.ConditionalTypeExpr:
		// Conditional types are parsed but not evaluated: resolving
		// picks the true-arm, which is sound for the one open case this
		// core exercises (erasure-oriented checking, not a full
		// structural conditional-type evaluator).
		return c.resolveType(n.True)
	case *ast.TypeQueryExpr:
		if sym, ok := c.global.Resolve(n.ExprName); ok {
			return sym.Type
		}
		return types.Any
	case *ast.KeyofTypeExpr:
		return types.String
	case *ast.InferTypeExpr:
		return types.Any
	case *ast.MappedTypeExpr:
		return types.Object
	}
	return types.Any
}

func (c *Checker) resolveParams(params []*ast.Param) []types.Param {
	var out []types.Param
	for _, p := range params {
		out = append(out, types.Param{Name: p.Name, Type: c.resolveType(p.Type), Optional: p.Optional || p.Default != nil, Rest: p.Rest})
	}
	return out
}

func (c *Checker) resolveObjectType(n *ast.ObjectTypeExpr) *types.Type {
	members := map[string]*types.Type{}
	var order []string
	for _, m := range n.Members {
		var mt *types.Type
		if m.IsMethod {
			mt = types.NewFunction(c.resolveParams(m.Params), c.resolveType(m.ReturnType))
		} else {
			mt = c.resolveType(m.Type)
		}
		if m.Optional {
			mt = types.NewUnion([]*types.Type{mt, types.Undefined})
		}
		members[m.Name] = mt
		order = append(order, m.Name)
	}
	return types.NewInterface("", order, members)
}

func (c *Checker) resolveTypeReference(n *ast.TypeReference) *types.Type {
	switch n.Name {
	case "number":
		return types.Number
	case "string":
		return types.String
	case "boolean":
		return types.Boolean
	case "void":
		return types.Void
	case "null":
		return types.Null
	case "undefined":
		return types.Undefined
	case "any":
		return types.Any
	case "unknown":
		return types.Unknown
	case "never":
		return types.Never
	case "object":
		return types.Object
	case "symbol":
		return types.Symbol
	case "bigint":
		return types.Bigint
	case "Array":
		if len(n.TypeArgs) == 1 {
			return types.NewArray(c.resolveType(n.TypeArgs[0]))
		}
		return types.NewArray(types.Any)
	}
	if t, ok := c.typeAliases[n.Name]; ok {
		return t
	}
	if t, ok := c.interfaces[n.Name]; ok {
		return t
	}
	if t, ok := c.classes[n.Name]; ok {
		// A class used in a type position (an annotation, an extends
		// clause) names its instance shape, not the class value itself
		// — the class value (which carries the static members) is only
		// reachable through the identifier's inferred expression type.
		return types.NewInterface(t.Name, t.Order, t.Members)
	}
	if t, ok := c.enums[n.Name]; ok {
		return t
	}
	return types.Any
}
