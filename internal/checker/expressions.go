package checker

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/internal/types"
	"github.com/cwbudde/tsjs/pkg/token"
)

var arrayMethods = map[string]bool{
	"push": true, "pop": true, "map": true, "filter": true, "forEach": true,
	"reduce": true, "slice": true, "splice": true, "join": true, "concat": true,
	"indexOf": true, "includes": true, "find": true, "findIndex": true, "sort": true, "reverse": true,
}

var stringMethods = map[string]bool{
	"slice": true, "substring": true, "split": true, "indexOf": true, "includes": true,
	"toUpperCase": true, "toLowerCase": true, "trim": true, "replace": true,
	"charAt": true, "concat": true, "startsWith": true, "endsWith": true, "padStart": true, "padEnd": true,
}

// inferExpression computes an expression's checked type, reporting any
// diagnostic it finds along the way.
func (c *Checker) inferExpression(expr ast.Expression, env *Environment) *types.Type {
	if expr == nil {
		return types.Any
	}
	switch n := expr.(type) {
	case *ast.NumericLiteral:
		return types.NewLiteral(types.LitNumber, n.Value)
	case *ast.StringLiteral:
		return types.NewLiteral(types.LitString, n.Value)
	case *ast.BooleanLiteral:
		val := "false"
		if n.Value {
			val = "true"
		}
		return types.NewLiteral(types.LitBoolean, val)
	case *ast.NullLiteral:
		return types.Null
	case *ast.UndefinedLiteral:
		return types.Undefined
	case *ast.ThisExpr:
		if sym, ok := env.Resolve("this"); ok {
			return sym.Type
		}
		return types.Any
	case *ast.SuperExpr:
		return types.Any
	case *ast.Identifier:
		if sym, ok := env.Resolve(n.Name); ok {
			return sym.Type
		}
		c.report(n.Line(), "Cannot find name %q", n.Name)
		return types.Any
	case *ast.ParenthesizedExpr:
		return c.inferExpression(n.Inner, env)
	case *ast.BinaryExpr:
		return c.inferBinary(n, env)
	case *ast.LogicalExpr:
		return c.inferLogical(n, env)
	case *ast.UnaryExpr:
		return c.inferUnary(n, env)
	case *ast.UpdateExpr:
		operand := c.inferExpression(n.Operand, env)
		if operand.Kind != types.KNumber && operand.Kind != types.KAny {
			c.report(n.Line(), "Operand of %s must be of type number", n.Op.String())
		}
		return types.Number
	case *ast.ConditionalExpr:
		c.inferExpression(n.Test, env)
		cons := c.inferExpression(n.Consequent, env)
		alt := c.inferExpression(n.Alternate, env)
		return types.NewUnion([]*types.Type{cons, alt})
	case *ast.AssignmentExpr:
		return c.inferAssignment(n, env)
	case *ast.CallExpr:
		return c.inferCall(n, env)
	case *ast.NewExpr:
		return c.inferNew(n, env)
	case *ast.MemberExpr:
		return c.inferMember(n, env)
	case *ast.ComputedMemberExpr:
		return c.inferComputedMember(n, env)
	case *ast.ObjectLiteral:
		return c.inferObjectLiteral(n, env)
	case *ast.ArrayLiteral:
		return c.inferArrayLiteral(n, env)
	case *ast.ArrowFunctionExpr:
		return c.inferArrowFunction(n, env)
	case *ast.FunctionExpr:
		return c.inferFunctionExpr(n, env)
	case *ast.SpreadExpr:
		return c.inferExpression(n.Argument, env)
	case *ast.AwaitExpr:
		return c.inferExpression(n.Argument, env)
	case *ast.YieldExpr:
		if n.Argument != nil {
			c.inferExpression(n.Argument, env)
		}
		return types.Any
	case *ast.TemplateLiteralExpr:
		for _, e := range n.Expressions {
			c.inferExpression(e, env)
		}
		return types.String
	case *ast.TaggedTemplateExpr:
		c.inferExpression(n.Tag, env)
		return c.inferExpression(n.Quasi, env)
	case *ast.TypeAssertionExpr:
		c.inferExpression(n.Expr, env)
		return c.resolveType(n.Type)
	case *ast.AsExpr:
		c.inferExpression(n.Expr, env)
		return c.resolveType(n.Type)
	case *ast.NonNullExpr:
		t := c.inferExpression(n.Expr, env)
		return stripNullish(t)
	case *ast.ClassExpr:
		return types.Any
	}
	return types.Any
}

func stripNullish(t *types.Type) *types.Type {
	if t.Kind != types.KUnion {
		return t
	}
	var parts []*types.Type
	for _, p := range t.Parts {
		if p.Kind != types.KNull && p.Kind != types.KUndefined {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return types.Any
	}
	return types.NewUnion(parts)
}

func (c *Checker) inferBinary(n *ast.BinaryExpr, env *Environment) *types.Type {
	left := c.inferExpression(n.Left, env)
	right := c.inferExpression(n.Right, env)
	switch n.Op {
	case token.PLUS:
		if left.Kind == types.KString || right.Kind == types.KString {
			return types.String
		}
		if !isNumberish(left) || !isNumberish(right) {
			c.report(n.Line(), "Operands of + must both be number, or at least one must be string")
		}
		return types.Number
	case token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.STAR_STAR:
		if !isNumberish(left) || !isNumberish(right) {
			c.report(n.Line(), "Operands of arithmetic operator must be of type number")
		}
		return types.Number
	case token.LSHIFT, token.RSHIFT, token.URSHIFT, token.AMP, token.PIPE, token.CARET:
		return types.Number
	case token.EQ, token.NOT_EQ, token.STRICT_EQ, token.STRICT_NOT_EQ,
		token.LESS, token.GREATER, token.LESS_EQ, token.GREATER_EQ,
		token.INSTANCEOF, token.IN:
		return types.Boolean
	}
	return types.Any
}

func isNumberish(t *types.Type) bool {
	return t.Kind == types.KNumber || t.Kind == types.KAny
}

func (c *Checker) inferLogical(n *ast.LogicalExpr, env *Environment) *types.Type {
	left := c.inferExpression(n.Left, env)
	right := c.inferExpression(n.Right, env)
	if n.Op == token.QUESTION_QUESTION {
		return types.NewUnion([]*types.Type{stripNullish(left), right})
	}
	// && and || return a union of both operand types: either side may
	// be the short-circuited result.
	return types.NewUnion([]*types.Type{left, right})
}

func (c *Checker) inferUnary(n *ast.UnaryExpr, env *Environment) *types.Type {
	operand := c.inferExpression(n.Operand, env)
	switch n.Op {
	case token.BANG:
		return types.Boolean
	case token.MINUS, token.PLUS, token.TILDE:
		if !isNumberish(operand) {
			c.report(n.Line(), "Operand must be of type number")
		}
		return types.Number
	case token.TYPEOF:
		return types.String
	case token.DELETE:
		return types.Boolean
	}
	return types.Any
}

func (c *Checker) inferAssignment(n *ast.AssignmentExpr, env *Environment) *types.Type {
	valueType := c.inferExpression(n.Value, env)
	targetType := c.inferExpression(n.Target, env)
	if ident, ok := n.Target.(*ast.Identifier); ok {
		if sym, ok := env.Resolve(ident.Name); ok && sym.ReadOnly {
			c.report(n.Line(), "Cannot assign to %q because it is a constant", ident.Name)
		}
	}
	if n.Op == token.ASSIGN && targetType.Kind != types.KAny && !types.Assignable(valueType, targetType) {
		c.report(n.Line(), "Type %q is not assignable to type %q", types.Stringify(valueType), types.Stringify(targetType))
	}
	return targetType
}

func (c *Checker) inferCall(n *ast.CallExpr, env *Environment) *types.Type {
	calleeType := c.inferExpression(n.Callee, env)
	args := make([]*types.Type, len(n.Args))
	for i, a := range n.Args {
		args[i] = c.inferExpression(a, env)
	}
	if calleeType.Kind != types.KFunction {
		return types.Any
	}
	c.checkCallArity(n.Line(), calleeType, n.Args, args)
	return calleeType.ReturnType
}

// checkCallArity implements the call-site arity and pairwise
// assignability checks (spec §4.3 "Call-site checks").
func (c *Checker) checkCallArity(line int, fn *types.Type, argExprs []ast.Expression, args []*types.Type) {
	required := 0
	hasRest := false
	for _, p := range fn.Params {
		if p.Rest {
			hasRest = true
			continue
		}
		if !p.Optional {
			required++
		}
	}
	k := len(args)
	n := len(fn.Params)
	if k < required {
		c.report(line, "Expected at least %d arguments, but got %d", required, k)
		return
	}
	if !hasRest && k > n {
		c.report(line, "Expected at most %d arguments, but got %d", n, k)
		return
	}
	limit := k
	if !hasRest && n < limit {
		limit = n
	}
	for i := 0; i < limit && i < n; i++ {
		p := fn.Params[i]
		if p.Rest {
			break
		}
		if _, ok := argExprs[i].(*ast.SpreadExpr); ok {
			continue
		}
		if !types.Assignable(args[i], p.Type) {
			c.report(line, "Argument of type %q is not assignable to parameter of type %q", types.Stringify(args[i]), types.Stringify(p.Type))
		}
	}
}

func (c *Checker) inferNew(n *ast.NewExpr, env *Environment) *types.Type {
	callee := c.inferExpression(n.Callee, env)
	for _, a := range n.Args {
		c.inferExpression(a, env)
	}
	if callee.Kind == types.KClass {
		return types.NewInterface(callee.Name, callee.Order, callee.Members)
	}
	if callee.Kind == types.KInterface {
		return callee
	}
	return types.Any
}

func (c *Checker) inferMember(n *ast.MemberExpr, env *Environment) *types.Type {
	obj := c.inferExpression(n.Object, env)
	if n.Optional {
		obj = stripNullish(obj)
	}
	return c.memberType(obj, n.Property, n.Line())
}

func (c *Checker) memberType(obj *types.Type, name string, line int) *types.Type {
	switch obj.Kind {
	case types.KAny, types.KUnknown:
		return types.Any
	case types.KArray:
		if name == "length" {
			return types.Number
		}
		if arrayMethods[name] {
			return types.Any
		}
	case types.KString:
		if name == "length" {
			return types.Number
		}
		if stringMethods[name] {
			return types.Any
		}
	case types.KInterface, types.KEnum:
		if mt, ok := obj.Members[name]; ok {
			return mt
		}
		c.report(line, "Property %q does not exist on type %q", name, types.Stringify(obj))
		return types.Any
	case types.KClass:
		// A bare class reference (not a `new`-constructed instance)
		// only exposes its static members; instance members live on
		// the type returned by inferNew.
		if mt, ok := obj.StaticMembers[name]; ok {
			return mt
		}
		c.report(line, "Property %q does not exist on type %q", name, types.Stringify(obj))
		return types.Any
	}
	return types.Any
}

func (c *Checker) inferComputedMember(n *ast.ComputedMemberExpr, env *Environment) *types.Type {
	obj := c.inferExpression(n.Object, env)
	c.inferExpression(n.Property, env)
	if n.Optional {
		obj = stripNullish(obj)
	}
	if obj.Kind == types.KArray {
		return obj.Elem
	}
	if obj.Kind == types.KTuple {
		return types.Any
	}
	return types.Any
}

func (c *Checker) inferObjectLiteral(n *ast.ObjectLiteral, env *Environment) *types.Type {
	members := map[string]*types.Type{}
	var order []string
	for _, p := range n.Properties {
		if p.Spread {
			c.inferExpression(p.Value, env)
			continue
		}
		if p.Computed {
			c.inferExpression(p.KeyExpr, env)
			c.inferExpression(p.Value, env)
			continue
		}
		mt := c.inferExpression(p.Value, env)
		if _, exists := members[p.Key]; !exists {
			order = append(order, p.Key)
		}
		members[p.Key] = mt
	}
	return types.NewInterface("", order, members)
}

func (c *Checker) inferArrayLiteral(n *ast.ArrayLiteral, env *Environment) *types.Type {
	if len(n.Elements) == 0 {
		return types.NewArray(types.Any)
	}
	var elemTypes []*types.Type
	for _, e := range n.Elements {
		if spread, ok := e.(*ast.SpreadExpr); ok {
			inner := c.inferExpression(spread.Argument, env)
			if inner.Kind == types.KArray {
				elemTypes = append(elemTypes, inner.Elem)
			} else {
				elemTypes = append(elemTypes, types.Any)
			}
			continue
		}
		elemTypes = append(elemTypes, types.WidenLiteral(c.inferExpression(e, env)))
	}
	return types.NewArray(types.NewUnion(elemTypes))
}

func (c *Checker) inferArrowFunction(n *ast.ArrowFunctionExpr, env *Environment) *types.Type {
	params := c.resolveParams(n.Params)
	var ret *types.Type
	switch body := n.Body.(type) {
	case *ast.BlockStatement:
		declared := c.resolveType(n.ReturnType)
		if n.ReturnType == nil {
			declared = types.Void
		}
		c.checkFunctionLike(n.Params, declared, body, c.global)
		ret = declared
	case ast.Expression:
		inner := NewEnclosedEnvironment(c.global)
		for i, p := range n.Params {
			inner.DefineLocal(p.Name, params[i].Type, false)
		}
		ret = c.inferExpression(body, inner)
		if n.ReturnType != nil {
			ret = c.resolveType(n.ReturnType)
		}
	}
	return types.NewFunction(params, ret)
}

func (c *Checker) inferFunctionExpr(n *ast.FunctionExpr, env *Environment) *types.Type {
	params := c.resolveParams(n.Params)
	declared := c.resolveType(n.ReturnType)
	if n.ReturnType == nil {
		declared = types.Void
	}
	inner := NewEnclosedEnvironment(c.global)
	if n.Name != "" {
		inner.DefineLocal(n.Name, types.NewFunction(params, declared), false)
	}
	c.checkFunctionLike(n.Params, declared, n.Body, c.global)
	return types.NewFunction(params, declared)
}
