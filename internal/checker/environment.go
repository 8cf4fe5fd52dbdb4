// Package checker implements the type-checking stage: a five-pass
// analyzer (four declaration-collection passes, then a statement walk) over the
// internal/ast tree, producing a Diagnostic list per spec §4.3.
//
// Unlike the teacher's symbol table, lookups here are case-sensitive —
// this dialect's identifiers are case-sensitive, unlike DWScript's.
package checker

import "github.com/cwbudde/tsjs/internal/types"

// Symbol is one bound name in an Environment.
type Symbol struct {
	Name     string
	Type     *types.Type
	ReadOnly bool
}

// Environment is a single lexical scope: a symbol map and a
// non-owning pointer to its parent. Function, method, and arrow
// bodies reparent to the global environment rather than their lexical
// enclosing scope — a deliberate fidelity choice (spec §9 open
// question 1), not a bug: it matches the source system's observed
// behavior, so outer-local capture is never validated here.
type Environment struct {
	symbols map[string]*Symbol
	parent  *Environment
}

func NewEnvironment() *Environment {
	return &Environment{symbols: make(map[string]*Symbol)}
}

func NewEnclosedEnvironment(parent *Environment) *Environment {
	return &Environment{symbols: make(map[string]*Symbol), parent: parent}
}

// DefineLocal declares name directly in this environment, returning
// false if it is already declared here (redeclaration is a diagnostic
// at the call site, not inside Environment).
func (e *Environment) DefineLocal(name string, typ *types.Type, readOnly bool) bool {
	if _, exists := e.symbols[name]; exists {
		return false
	}
	e.symbols[name] = &Symbol{Name: name, Type: typ, ReadOnly: readOnly}
	return true
}

// DeclaredLocally reports whether name is bound in this environment
// specifically, ignoring parents.
func (e *Environment) DeclaredLocally(name string) bool {
	_, ok := e.symbols[name]
	return ok
}

// Resolve walks outward through parent environments looking for name.
func (e *Environment) Resolve(name string) (*Symbol, bool) {
	if sym, ok := e.symbols[name]; ok {
		return sym, true
	}
	if e.parent != nil {
		return e.parent.Resolve(name)
	}
	return nil, false
}
