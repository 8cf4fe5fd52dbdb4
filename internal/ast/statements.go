package ast

// VarKind distinguishes var/let/const declarations; the checker treats
// all three the same for typing purposes but the emitter preserves the
// original keyword.
type VarKind int

const (
	VarVar VarKind = iota
	VarLet
	VarConst
)

// VarDeclarator is one "name: Type = init" entry; a single statement
// may declare several separated by commas.
type VarDeclarator struct {
	Name string
	Type TypeExpr
	Init Expression
	Line int
}

type VarStatement struct {
	base
	Kind        VarKind
	Declarators []*VarDeclarator
}

func (*VarStatement) statementNode() {}

type ReturnStatement struct {
	base
	Value Expression // nil for a bare "return;"
}

func (*ReturnStatement) statementNode() {}

type ExpressionStatement struct {
	base
	Expr Expression
}

func (*ExpressionStatement) statementNode() {}

type BlockStatement struct {
	base
	Statements []Statement
}

func (*BlockStatement) statementNode() {}

type EmptyStatement struct{ base }

func (*EmptyStatement) statementNode() {}

// ImportSpecifier is one named import binding, "{ Foo as Bar }"; Alias
// is empty when there is no "as" clause.
type ImportSpecifier struct {
	Name  string
	Alias string
}

// ImportStatement is reproduced by the emitter in its original form
// (spec §4.4); the checker does not resolve cross-file module bindings
// (spec §1 Non-goals).
type ImportStatement struct {
	base
	Default     string
	Namespace   string
	Specifiers  []*ImportSpecifier
	Source      string
}

func (*ImportStatement) statementNode() {}

// ExportStatement wraps a declaration statement (function, class,
// variable, interface, type alias, enum) being exported, or stands
// alone for "export { a, b }" and "export default expr" forms.
type ExportStatement struct {
	base
	Decl        Statement // nil for a bare specifier-list export
	Specifiers  []*ImportSpecifier
	Source      string // re-export source, e.g. "export { a } from './m'"
	IsDefault   bool
	DefaultExpr Expression // set instead of Decl for "export default <expr>"
}

func (*ExportStatement) statementNode() {}
