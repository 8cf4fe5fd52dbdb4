package checker

import (
	"fmt"

	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/internal/types"
)

// Checker holds the cross-pass state built up by Check: the collected
// declaration namespaces (pass 1-4) plus the global environment and
// accumulated diagnostics (pass 5).
type Checker struct {
	global *Environment

	typeAliases map[string]*types.Type
	enums       map[string]*types.Type
	interfaces  map[string]*types.Type
	classes     map[string]*types.Type

	// currentFunction holds the declared return type while walking a
	// function/method/arrow body, used to check return statements.
	currentFunction *types.Type
	inLoop          int

	diagnostics []*Diagnostic
}

// Check runs the five-pass analysis (spec §4.3) and returns every
// diagnostic found, in source order. It never panics on well-formed
// input; malformed trees (which cannot occur from a successful parse)
// are out of scope.
func Check(program *ast.Program) []*Diagnostic {
	c := &Checker{
		global:      NewEnvironment(),
		typeAliases: map[string]*types.Type{},
		enums:       map[string]*types.Type{},
		interfaces:  map[string]*types.Type{},
		classes:     map[string]*types.Type{},
	}
	c.collectAliasesAndEnums(program)
	c.collectInterfaces(program)
	c.collectClasses(program)
	c.collectFunctionSignatures(program)
	for _, stmt := range program.Statements {
		c.checkStatement(stmt, c.global)
	}
	return c.diagnostics
}

func (c *Checker) report(line int, format string, args ...any) {
	c.diagnostics = append(c.diagnostics, &Diagnostic{Message: fmt.Sprintf(format, args...), Line: line})
}

// unwrapExport returns the inner declaration of an export wrapper, or
// stmt itself if it isn't one — so the four collection passes don't
// need to special-case "export" at every declaration kind.
func unwrapExport(stmt ast.Statement) ast.Statement {
	if exp, ok := stmt.(*ast.ExportStatement); ok && exp.Decl != nil {
		return unwrapExport(exp.Decl)
	}
	return stmt
}

func (c *Checker) collectAliasesAndEnums(program *ast.Program) {
	for _, raw := range program.Statements {
		switch n := unwrapExport(raw).(type) {
		case *ast.TypeAliasDecl:
			c.typeAliases[n.Name] = c.resolveType(n.Type)
		case *ast.EnumDecl:
			c.enums[n.Name] = c.buildEnumType(n)
		}
	}
}

// buildEnumType gives every enum member the enum's own type, so
// "Color.Red" resolves through the member map like an interface
// property (spec §4.3, §4.4).
func (c *Checker) buildEnumType(n *ast.EnumDecl) *types.Type {
	enumType := types.NewEnum(n.Name)
	members := map[string]*types.Type{}
	var order []string
	for _, m := range n.Members {
		members[m.Name] = enumType
		order = append(order, m.Name)
	}
	enumType.Members = members
	enumType.Order = order
	return enumType
}

// collectInterfaces registers every interface name (with an empty
// member map) before resolving any extends clause, so a forward
// reference to an interface declared later in the file still finds
// it. Members (own plus inherited) are then filled in by
// resolveInterface, which recurses into not-yet-resolved bases first —
// resolution order follows the extends graph, not source order (spec
// §4.3 "Interface extension").
func (c *Checker) collectInterfaces(program *ast.Program) {
	decls := map[string]*ast.InterfaceDecl{}
	var names []string
	for _, raw := range program.Statements {
		if n, ok := unwrapExport(raw).(*ast.InterfaceDecl); ok {
			decls[n.Name] = n
			names = append(names, n.Name)
			c.interfaces[n.Name] = types.NewInterface(n.Name, nil, map[string]*types.Type{})
		}
	}
	resolved := map[string]bool{}
	for _, name := range names {
		c.resolveInterface(name, decls, resolved, map[string]bool{})
	}
}

// resolveInterface fully populates the named interface's member map.
// visiting guards against an extends cycle; resolved marks interfaces
// already filled in, so each is computed exactly once regardless of
// how many subtypes reach it first.
func (c *Checker) resolveInterface(name string, decls map[string]*ast.InterfaceDecl, resolved, visiting map[string]bool) {
	if resolved[name] || visiting[name] {
		return
	}
	n, ok := decls[name]
	if !ok {
		return
	}
	visiting[name] = true
	for _, ext := range n.Extends {
		if ref, ok := ext.(*ast.TypeReference); ok {
			c.resolveInterface(ref.Name, decls, resolved, visiting)
		}
	}
	delete(visiting, name)

	target := c.interfaces[name]
	members := target.Members
	var order []string
	for _, m := range n.Members {
		var mt *types.Type
		if m.IsMethod {
			mt = types.NewFunction(c.resolveParams(m.Params), c.resolveType(m.ReturnType))
		} else {
			mt = c.resolveType(m.Type)
		}
		members[m.Name] = mt
		order = append(order, m.Name)
	}
	for _, ext := range n.Extends {
		base := c.resolveType(ext)
		if base.Kind == types.KInterface {
			for _, bn := range base.Order {
				if _, exists := members[bn]; !exists {
					members[bn] = base.Members[bn]
					order = append(order, bn)
				}
			}
		}
	}
	target.Order = order
	resolved[name] = true
}

// collectClasses mirrors collectInterfaces: every class name is
// registered first (empty instance/static maps), then resolveClass
// fills each one in, recursing into an unresolved superclass before
// using it, so a subclass declared before its superclass in the file
// still inherits correctly.
func (c *Checker) collectClasses(program *ast.Program) {
	decls := map[string]*ast.ClassDecl{}
	var names []string
	for _, raw := range program.Statements {
		if n, ok := unwrapExport(raw).(*ast.ClassDecl); ok {
			decls[n.Name] = n
			names = append(names, n.Name)
			c.classes[n.Name] = types.NewClass(n.Name, nil, map[string]*types.Type{}, nil, map[string]*types.Type{}, nil)
		}
	}
	resolved := map[string]bool{}
	for _, name := range names {
		c.resolveClass(name, decls, resolved, map[string]bool{})
	}
}

// resolveClass fills in the named class's instance- and static-member
// mappings (spec data model: instance members, static members, and an
// optional super), recursing into an unresolved superclass first so
// inheritance works regardless of declaration order.
func (c *Checker) resolveClass(name string, decls map[string]*ast.ClassDecl, resolved, visiting map[string]bool) {
	if resolved[name] || visiting[name] {
		return
	}
	n, ok := decls[name]
	if !ok {
		return
	}
	visiting[name] = true
	if ref, ok := n.SuperClass.(*ast.TypeReference); ok {
		c.resolveClass(ref.Name, decls, resolved, visiting)
	}
	delete(visiting, name)

	target := c.classes[name]
	members := target.Members
	staticMembers := target.StaticMembers
	var order, staticOrder []string

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
		if m.IsStatic {
			staticMembers[m.Name] = mt
			staticOrder = append(staticOrder, m.Name)
		} else {
			members[m.Name] = mt
			order = append(order, m.Name)
		}
	}

	var super *types.Type
	if n.SuperClass != nil {
		if base := c.rawSuperClass(n.SuperClass); base != nil {
			super = base
			for _, bn := range base.Order {
				if _, exists := members[bn]; !exists {
					members[bn] = base.Members[bn]
					order = append(order, bn)
				}
			}
			for _, bn := range base.StaticOrder {
				if _, exists := staticMembers[bn]; !exists {
					staticMembers[bn] = base.StaticMembers[bn]
					staticOrder = append(staticOrder, bn)
				}
			}
		}
	}

	target.Order = order
	target.StaticOrder = staticOrder
	target.Super = super
	resolved[name] = true
}

// rawSuperClass looks up a superclass reference directly in
// c.classes, bypassing resolveType's instance-only view so the
// static-member mapping and super chain remain visible to the
// resolving subclass.
func (c *Checker) rawSuperClass(t ast.TypeExpr) *types.Type {
	ref, ok := t.(*ast.TypeReference)
	if !ok {
		return nil
	}
	base, ok := c.classes[ref.Name]
	if !ok {
		return nil
	}
	return base
}

func (c *Checker) collectFunctionSignatures(program *ast.Program) {
	for _, raw := range program.Statements {
		if n, ok := unwrapExport(raw).(*ast.FunctionDecl); ok {
			ft := types.NewFunction(c.resolveParams(n.Params), c.resolveType(n.ReturnType))
			if !c.global.DefineLocal(n.Name, ft, false) {
				c.report(n.Line(), "%q is already declared", n.Name)
			}
		}
	}
}
