// Package ast defines the syntax tree vocabulary produced by the parser
// and consumed by the checker and emitter. Every node kind is its own
// struct; Node, Statement, Expression, and TypeExpr are the tagged-sum
// interfaces a visitor switches over.
package ast

// Node is implemented by every tree node. Line reports the 1-indexed
// source line the node started on.
type Node interface {
	Line() int
}

// Statement is implemented by top-level and block-level statement
// nodes.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression node.
type Expression interface {
	Node
	expressionNode()
}

// TypeExpr is implemented by every type-expression node.
type TypeExpr interface {
	Node
	typeExprNode()
}

// base carries the line number common to every node. Embed it to get
// Line() for free.
type base struct {
	LineNo int
}

func (b base) Line() int { return b.LineNo }

// SetLine backfills the line number on a node built via a struct
// literal, where base.LineNo cannot be set directly from outside the
// package (base is unexported, though its fields are promoted).
// Construction sites in the parser call this immediately after
// building a node: `n := &ast.Foo{...}; n.SetLine(line); return n`.
func (b *base) SetLine(line int) { b.LineNo = line }

// Program is the root node: an ordered sequence of top-level
// statements.
type Program struct {
	base
	Statements []Statement
}

func NewProgram(line int, statements []Statement) *Program {
	return &Program{base: base{LineNo: line}, Statements: statements}
}
