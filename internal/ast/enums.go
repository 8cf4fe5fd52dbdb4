package ast

// EnumMember is one entry of an enum declaration. Init is nil when the
// member has no explicit initializer (numeric members then
// auto-increment from the previous numeric value, starting at 0).
type EnumMember struct {
	Name string
	Init Expression
	Line int
}

// EnumDecl is "enum E { ... }" or "const enum E { ... }". IsConst
// enums are lowered to a single removal comment by the emitter (spec
// §4.4, §9 open question 2): their members are never substituted at
// use sites in this core.
type EnumDecl struct {
	base
	Name    string
	IsConst bool
	Members []*EnumMember
}

func (*EnumDecl) statementNode() {}
