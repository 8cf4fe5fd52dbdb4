package parser

import (
	"testing"

	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, err := ParseSource(source)
	require.NoError(t, err)
	return prog
}

func TestParseVarStatement(t *testing.T) {
	prog := mustParse(t, "let x: number = 1;")
	require.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ast.VarStatement)
	require.True(t, ok)
	assert.Equal(t, ast.VarLet, stmt.Kind)
	require.Len(t, stmt.Declarators, 1)
	assert.Equal(t, "x", stmt.Declarators[0].Name)
	assert.IsType(t, &ast.TypeReference{}, stmt.Declarators[0].Type)
	assert.IsType(t, &ast.NumericLiteral{}, stmt.Declarators[0].Init)
}

func TestParseFunctionDecl(t *testing.T) {
	prog := mustParse(t, "function add(a: number, b: number): number { return a + b; }")
	fn, ok := prog.Statements[0].(*ast.FunctionDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	require.Len(t, fn.Body.Statements, 1)
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	assert.IsType(t, &ast.BinaryExpr{}, ret.Value)
}

func TestParseArrowFunctionSingleParam(t *testing.T) {
	prog := mustParse(t, "let f = x => x + 1;")
	stmt := prog.Statements[0].(*ast.VarStatement)
	arrow, ok := stmt.Declarators[0].Init.(*ast.ArrowFunctionExpr)
	require.True(t, ok)
	require.Len(t, arrow.Params, 1)
	assert.Equal(t, "x", arrow.Params[0].Name)
	assert.IsType(t, &ast.BinaryExpr{}, arrow.Body)
}

func TestParseArrowFunctionParenParams(t *testing.T) {
	prog := mustParse(t, "let f = (a: number, b: number): number => a + b;")
	stmt := prog.Statements[0].(*ast.VarStatement)
	arrow, ok := stmt.Declarators[0].Init.(*ast.ArrowFunctionExpr)
	require.True(t, ok)
	require.Len(t, arrow.Params, 2)
	assert.NotNil(t, arrow.ReturnType)
}

func TestParenthesizedExpressionNotArrow(t *testing.T) {
	prog := mustParse(t, "let x = (1 + 2) * 3;")
	stmt := prog.Statements[0].(*ast.VarStatement)
	bin, ok := stmt.Declarators[0].Init.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.IsType(t, &ast.ParenthesizedExpr{}, bin.Left)
}

func TestParseGenericCallVsLessThan(t *testing.T) {
	prog := mustParse(t, "let a = f<number>(1); let b = x < y;")
	stmt := prog.Statements[0].(*ast.VarStatement)
	call, ok := stmt.Declarators[0].Init.(*ast.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.TypeArgs, 1)

	stmt2 := prog.Statements[1].(*ast.VarStatement)
	assert.IsType(t, &ast.BinaryExpr{}, stmt2.Declarators[0].Init)
}

func TestParseConditionalType(t *testing.T) {
	prog := mustParse(t, "type A = T extends U ? X : Y;")
	alias, ok := prog.Statements[0].(*ast.TypeAliasDecl)
	require.True(t, ok)
	assert.IsType(t, &ast.ConditionalTypeExpr{}, alias.Type)
}

func TestParseUnionIntersectionFlattening(t *testing.T) {
	prog := mustParse(t, "type A = X | Y | Z;")
	alias := prog.Statements[0].(*ast.TypeAliasDecl)
	union, ok := alias.Type.(*ast.UnionTypeExpr)
	require.True(t, ok)
	assert.Len(t, union.Types, 3)
}

func TestParseClassDecl(t *testing.T) {
	src := `class Animal {
		private name: string;
		constructor(name: string) { this.name = name; }
		speak(): string { return this.name; }
	}`
	prog := mustParse(t, src)
	cls, ok := prog.Statements[0].(*ast.ClassDecl)
	require.True(t, ok)
	assert.Equal(t, "Animal", cls.Name)
	require.Len(t, cls.Members, 3)
	assert.Equal(t, "name", cls.Members[0].Name)
	assert.Equal(t, ast.Private, cls.Members[0].Access)
	assert.Equal(t, "constructor", cls.Members[1].Name)
	assert.True(t, cls.Members[1].IsMethod)
}

func TestParseClassExtendsImplements(t *testing.T) {
	src := "class Dog extends Animal implements Barkable { bark(): void {} }"
	prog := mustParse(t, src)
	cls := prog.Statements[0].(*ast.ClassDecl)
	assert.IsType(t, &ast.TypeReference{}, cls.SuperClass)
	require.Len(t, cls.Implements, 1)
}

func TestParseInterfaceDecl(t *testing.T) {
	src := `interface Point { x: number; y: number; move(dx: number): void; }`
	prog := mustParse(t, src)
	iface, ok := prog.Statements[0].(*ast.InterfaceDecl)
	require.True(t, ok)
	require.Len(t, iface.Members, 3)
	assert.True(t, iface.Members[2].IsMethod)
}

func TestParseEnumDecl(t *testing.T) {
	prog := mustParse(t, "enum Color { Red, Green, Blue }")
	en, ok := prog.Statements[0].(*ast.EnumDecl)
	require.True(t, ok)
	assert.False(t, en.IsConst)
	require.Len(t, en.Members, 3)
}

func TestParseConstEnumDecl(t *testing.T) {
	prog := mustParse(t, "const enum Color { Red = 1, Green = 2 }")
	en := prog.Statements[0].(*ast.EnumDecl)
	assert.True(t, en.IsConst)
}

func TestParseForOfForIn(t *testing.T) {
	prog := mustParse(t, "for (const x of xs) { y(); } for (const k in obj) { z(); }")
	_, ok := prog.Statements[0].(*ast.ForOfStatement)
	assert.True(t, ok)
	_, ok = prog.Statements[1].(*ast.ForInStatement)
	assert.True(t, ok)
}

func TestParseTryCatchFinally(t *testing.T) {
	prog := mustParse(t, "try { a(); } catch (e) { b(); } finally { c(); }")
	stmt, ok := prog.Statements[0].(*ast.TryStatement)
	require.True(t, ok)
	assert.Equal(t, "e", stmt.CatchParam)
	assert.NotNil(t, stmt.FinallyBlock)
}

func TestParseOptionalChaining(t *testing.T) {
	prog := mustParse(t, "let x = a?.b?.();")
	stmt := prog.Statements[0].(*ast.VarStatement)
	call, ok := stmt.Declarators[0].Init.(*ast.CallExpr)
	require.True(t, ok)
	assert.True(t, call.Optional)
	member, ok := call.Callee.(*ast.MemberExpr)
	require.True(t, ok)
	assert.True(t, member.Optional)
}

func TestParseTemplateLiteralExpression(t *testing.T) {
	prog := mustParse(t, "let x = `hello ${name}!`;")
	stmt := prog.Statements[0].(*ast.VarStatement)
	tmpl, ok := stmt.Declarators[0].Init.(*ast.TemplateLiteralExpr)
	require.True(t, ok)
	require.Len(t, tmpl.Expressions, 1)
	assert.Len(t, tmpl.Quasis, 2)
}

func TestParseObjectLiteralComputedKey(t *testing.T) {
	prog := mustParse(t, "let x = { [key]: 1, ...rest, shorthand };")
	stmt := prog.Statements[0].(*ast.VarStatement)
	obj, ok := stmt.Declarators[0].Init.(*ast.ObjectLiteral)
	require.True(t, ok)
	require.Len(t, obj.Properties, 3)
	assert.True(t, obj.Properties[0].Computed)
	assert.NotNil(t, obj.Properties[0].KeyExpr)
	assert.True(t, obj.Properties[1].Spread)
	assert.True(t, obj.Properties[2].Shorthand)
}

func TestParsePrefixTypeAssertion(t *testing.T) {
	prog := mustParse(t, "let x = <number>y;")
	stmt := prog.Statements[0].(*ast.VarStatement)
	assert.IsType(t, &ast.TypeAssertionExpr{}, stmt.Declarators[0].Init)
}

func TestParseAsExpression(t *testing.T) {
	prog := mustParse(t, "let x = y as number;")
	stmt := prog.Statements[0].(*ast.VarStatement)
	assert.IsType(t, &ast.AsExpr{}, stmt.Declarators[0].Init)
}

func TestSyntaxErrorReportsLine(t *testing.T) {
	_, err := ParseSource("let x = ;\n")
	require.Error(t, err)
	perr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 1, perr.Line)
}
