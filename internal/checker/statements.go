package checker

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/internal/types"
)

func (c *Checker) checkStatement(stmt ast.Statement, env *Environment) {
	switch n := stmt.(type) {
	case *ast.VarStatement:
		c.checkVarStatement(n, env)
	case *ast.FunctionDecl:
		c.checkFunctionBody(n, env)
	case *ast.ClassDecl:
		c.checkClassBody(n, env)
	case *ast.InterfaceDecl, *ast.TypeAliasDecl:
		// erased at emission; nothing further to check structurally.
	case *ast.EnumDecl:
		c.checkEnumDecl(n, env)
	case *ast.ReturnStatement:
		c.checkReturnStatement(n, env)
	case *ast.ExpressionStatement:
		c.inferExpression(n.Expr, env)
	case *ast.BlockStatement:
		inner := NewEnclosedEnvironment(env)
		for _, s := range n.Statements {
			c.checkStatement(s, inner)
		}
	case *ast.IfStatement:
		c.inferExpression(n.Cond, env)
		c.checkStatement(n.Then, env)
		if n.Else != nil {
			c.checkStatement(n.Else, env)
		}
	case *ast.WhileStatement:
		c.inferExpression(n.Cond, env)
		c.inLoop++
		c.checkStatement(n.Body, env)
		c.inLoop--
	case *ast.DoWhileStatement:
		c.inLoop++
		c.checkStatement(n.Body, env)
		c.inLoop--
		c.inferExpression(n.Cond, env)
	case *ast.ForStatement:
		inner := NewEnclosedEnvironment(env)
		if n.Init != nil {
			c.checkStatement(n.Init, inner)
		}
		if n.Cond != nil {
			c.inferExpression(n.Cond, inner)
		}
		if n.Update != nil {
			c.inferExpression(n.Update, inner)
		}
		c.inLoop++
		c.checkStatement(n.Body, inner)
		c.inLoop--
	case *ast.ForOfStatement:
		inner := NewEnclosedEnvironment(env)
		iterable := c.inferExpression(n.Iterable, inner)
		elemType := types.Any
		if iterable != nil && iterable.Kind == types.KArray {
			elemType = iterable.Elem
		}
		inner.DefineLocal(n.VarName, elemType, n.Kind == ast.VarConst)
		c.inLoop++
		c.checkStatement(n.Body, inner)
		c.inLoop--
	case *ast.ForInStatement:
		inner := NewEnclosedEnvironment(env)
		c.inferExpression(n.Object, inner)
		inner.DefineLocal(n.VarName, types.String, n.Kind == ast.VarConst)
		c.inLoop++
		c.checkStatement(n.Body, inner)
		c.inLoop--
	case *ast.BreakStatement, *ast.ContinueStatement:
		// loop-depth validation is left to the parser/runtime boundary;
		// nothing to type-check.
	case *ast.ThrowStatement:
		c.inferExpression(n.Value, env)
	case *ast.TryStatement:
		c.checkStatement(n.Block, env)
		if n.CatchBlock != nil {
			inner := NewEnclosedEnvironment(env)
			if n.CatchParam != "" {
				inner.DefineLocal(n.CatchParam, types.Any, false)
			}
			for _, s := range n.CatchBlock.Statements {
				c.checkStatement(s, inner)
			}
		}
		if n.FinallyBlock != nil {
			c.checkStatement(n.FinallyBlock, env)
		}
	case *ast.SwitchStatement:
		c.inferExpression(n.Discriminant, env)
		inner := NewEnclosedEnvironment(env)
		for _, kase := range n.Cases {
			if kase.Test != nil {
				c.inferExpression(kase.Test, inner)
			}
			for _, s := range kase.Body {
				c.checkStatement(s, inner)
			}
		}
	case *ast.ImportStatement, *ast.ExportStatement:
		c.checkExportOrImport(stmt, env)
	case *ast.EmptyStatement:
	}
}

func (c *Checker) checkExportOrImport(stmt ast.Statement, env *Environment) {
	if exp, ok := stmt.(*ast.ExportStatement); ok {
		if exp.Decl != nil {
			c.checkStatement(exp.Decl, env)
		}
		if exp.DefaultExpr != nil {
			c.inferExpression(exp.DefaultExpr, env)
		}
	}
	// Import bindings are not resolved across files (spec §1 Non-goals);
	// names they introduce are treated as `any` wherever referenced.
	if imp, ok := stmt.(*ast.ImportStatement); ok {
		for _, name := range []string{imp.Default, imp.Namespace} {
			if name != "" {
				env.DefineLocal(name, types.Any, false)
			}
		}
		for _, s := range imp.Specifiers {
			name := s.Name
			if s.Alias != "" {
				name = s.Alias
			}
			env.DefineLocal(name, types.Any, false)
		}
	}
}

func (c *Checker) checkVarStatement(n *ast.VarStatement, env *Environment) {
	for _, decl := range n.Declarators {
		var declType *types.Type
		var initType *types.Type
		if decl.Init != nil {
			initType = c.inferExpression(decl.Init, env)
		}
		switch {
		case decl.Type != nil && decl.Init != nil:
			declType = c.resolveType(decl.Type)
			if !types.Assignable(initType, declType) {
				c.report(decl.Line, "Type %q is not assignable to type %q", types.Stringify(initType), types.Stringify(declType))
			}
		case decl.Type != nil:
			declType = c.resolveType(decl.Type)
		case decl.Init != nil:
			declType = types.WidenLiteral(initType)
		default:
			declType = types.Any
		}
		if !env.DefineLocal(decl.Name, declType, n.Kind == ast.VarConst) {
			c.report(decl.Line, "%q is already declared", decl.Name)
		}
	}
}

func (c *Checker) checkFunctionBody(n *ast.FunctionDecl, env *Environment) {
	if env == c.global {
		if _, ok := env.Resolve(n.Name); !ok {
			ft := types.NewFunction(c.resolveParams(n.Params), c.resolveType(n.ReturnType))
			env.DefineLocal(n.Name, ft, false)
		}
	}
	ret := c.resolveType(n.ReturnType)
	if n.ReturnType == nil {
		ret = types.Void
	}
	c.checkFunctionLike(n.Params, ret, n.Body, c.global)
}

// checkFunctionLike type-checks a function/method/arrow body. Per
// spec §9 open question 1, the body's environment is parented to the
// global scope, not the lexical scope at the declaration site.
func (c *Checker) checkFunctionLike(params []*ast.Param, declaredReturn *types.Type, body *ast.BlockStatement, parent *Environment) {
	inner := NewEnclosedEnvironment(parent)
	for _, p := range params {
		pt := c.resolveType(p.Type)
		if p.Optional || p.Default != nil {
			pt = types.NewUnion([]*types.Type{pt, types.Undefined})
		}
		if p.Rest {
			pt = types.NewArray(pt)
		}
		inner.DefineLocal(p.Name, pt, false)
	}
	savedReturn := c.currentFunction
	c.currentFunction = declaredReturn
	for _, s := range body.Statements {
		c.checkStatement(s, inner)
	}
	c.currentFunction = savedReturn
}

func (c *Checker) checkReturnStatement(n *ast.ReturnStatement, env *Environment) {
	if c.currentFunction == nil {
		c.report(n.Line(), "Return statement outside of a function")
		return
	}
	var actual *types.Type
	if n.Value != nil {
		actual = c.inferExpression(n.Value, env)
	} else {
		actual = types.Void
	}
	if c.currentFunction.Kind != types.KAny && !types.Assignable(actual, c.currentFunction) {
		c.report(n.Line(), "Type %q is not assignable to return type %q", types.Stringify(actual), types.Stringify(c.currentFunction))
	}
}

func (c *Checker) checkClassBody(n *ast.ClassDecl, env *Environment) {
	classType := c.classes[n.Name]
	if classType == nil {
		// A class declared inside a nested scope (function/block body)
		// never passes through the top-level collectClasses pass, so
		// build it here, in place, the first time its body is checked.
		classType = c.buildLocalClassType(n)
		c.classes[n.Name] = classType
	}
	if env == c.global {
		if _, ok := env.Resolve(n.Name); !ok {
			env.DefineLocal(n.Name, classType, false)
		}
	}
	instanceType := types.NewInterface(classType.Name, classType.Order, classType.Members)
	staticType := types.NewInterface(classType.Name, classType.StaticOrder, classType.StaticMembers)
	classEnv := NewEnclosedEnvironment(c.global)
	classEnv.DefineLocal("this", instanceType, false)
	staticEnv := NewEnclosedEnvironment(c.global)
	staticEnv.DefineLocal("this", staticType, false)
	for _, m := range n.Members {
		memberEnv := classEnv
		if m.IsStatic {
			memberEnv = staticEnv
		}
		if m.Body != nil {
			c.checkFunctionLike(m.Params, c.resolveType(m.ReturnType), m.Body, memberEnv)
		}
		if m.Init != nil {
			initType := c.inferExpression(m.Init, memberEnv)
			if m.FieldType != nil {
				declared := c.resolveType(m.FieldType)
				if !types.Assignable(initType, declared) {
					c.report(m.Line, "Type %q is not assignable to type %q", types.Stringify(initType), types.Stringify(declared))
				}
			}
		}
	}
}

// buildLocalClassType builds a class's instance/static member maps in
// a single pass, without forward-reference resolution — adequate for
// a class declared in a nested scope, where the superclass (if any)
// must already be a resolved, in-scope name.
func (c *Checker) buildLocalClassType(n *ast.ClassDecl) *types.Type {
	members := map[string]*types.Type{}
	staticMembers := map[string]*types.Type{}
	var order, staticOrder []string
	var super *types.Type
	if n.SuperClass != nil {
		if base := c.rawSuperClass(n.SuperClass); base != nil {
			super = base
			for _, name := range base.Order {
				members[name] = base.Members[name]
				order = append(order, name)
			}
			for _, name := range base.StaticOrder {
				staticMembers[name] = base.StaticMembers[name]
				staticOrder = append(staticOrder, name)
			}
		}
	}
	for _, m := range n.Members {
		if m.Name == "constructor" {
			continue
		}
		var mt *types.Type
		if m.IsMethod {
			ret := c.resolveType(m.ReturnType)
			if m.IsGetter {
				mt = ret
			} else {
				mt = types.NewFunction(c.resolveParams(m.Params), ret)
			}
		} else {
			mt = c.resolveType(m.FieldType)
		}
		target, targetOrder := members, &order
		if m.IsStatic {
			target, targetOrder = staticMembers, &staticOrder
		}
		if _, exists := target[m.Name]; !exists {
			*targetOrder = append(*targetOrder, m.Name)
		}
		target[m.Name] = mt
	}
	return types.NewClass(n.Name, order, members, staticOrder, staticMembers, super)
}

func (c *Checker) checkEnumDecl(n *ast.EnumDecl, env *Environment) {
	enumType := c.enums[n.Name]
	if enumType == nil {
		enumType = c.buildEnumType(n)
		c.enums[n.Name] = enumType
	}
	if !env.DefineLocal(n.Name, enumType, true) {
		c.report(n.Line(), "%q is already declared", n.Name)
	}
	for _, m := range n.Members {
		if m.Init != nil {
			c.inferExpression(m.Init, env)
		}
	}
}
