package parser

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/pkg/token"
)

func (p *Parser) parseIfStatement() ast.Statement {
	line := p.advance().Line
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	then := p.parseStatement()
	var elseStmt ast.Statement
	if p.match(token.ELSE) {
		if p.check(token.IF) {
			elseStmt = p.parseIfStatement()
		} else {
			elseStmt = p.parseStatement()
		}
	}
	n := &ast.IfStatement{Cond: cond, Then: then, Else: elseStmt}
	n.SetLine(line)
	return n
}

func (p *Parser) parseWhileStatement() ast.Statement {
	line := p.advance().Line
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	body := p.parseStatement()
	n := &ast.WhileStatement{Cond: cond, Body: body}
	n.SetLine(line)
	return n
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	line := p.advance().Line
	body := p.parseStatement()
	p.expect(token.WHILE, "'while'")
	p.expect(token.LPAREN, "'('")
	cond := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	p.match(token.SEMICOLON)
	n := &ast.DoWhileStatement{Body: body, Cond: cond}
	n.SetLine(line)
	return n
}

// parseForStatement resolves the three for-forms by looking one token
// past a declared loop variable's name: "of" starts a for-of, "in"
// starts a for-in, otherwise it is the classic three-clause form.
func (p *Parser) parseForStatement() ast.Statement {
	line := p.advance().Line
	p.expect(token.LPAREN, "'('")

	kind := ast.VarLet
	hasDecl := false
	switch p.cur().Kind {
	case token.VAR:
		kind, hasDecl = ast.VarVar, true
		p.advance()
	case token.LET:
		kind, hasDecl = ast.VarLet, true
		p.advance()
	case token.CONST:
		kind, hasDecl = ast.VarConst, true
		p.advance()
	}

	if hasDecl && p.check(token.IDENT) && (p.peek().Kind == token.OF || p.peek().Kind == token.IN) {
		name := p.advance().Lexeme
		isOf := p.cur().Kind == token.OF
		p.advance()
		source := p.parseExpression()
		p.expect(token.RPAREN, "')'")
		body := p.parseStatement()
		if isOf {
			n := &ast.ForOfStatement{Kind: kind, VarName: name, Iterable: source, Body: body}
			n.SetLine(line)
			return n
		}
		n := &ast.ForInStatement{Kind: kind, VarName: name, Object: source, Body: body}
		n.SetLine(line)
		return n
	}

	var init ast.Statement
	if hasDecl {
		var decls []*ast.VarDeclarator
		for {
			decls = append(decls, p.parseVarDeclarator())
			if !p.match(token.COMMA) {
				break
			}
		}
		vs := &ast.VarStatement{Kind: kind, Declarators: decls}
		vs.SetLine(line)
		init = vs
	} else if !p.check(token.SEMICOLON) {
		exprLine := p.cur().Line
		expr := p.parseExpression()
		es := &ast.ExpressionStatement{Expr: expr}
		es.SetLine(exprLine)
		init = es
	}
	p.expect(token.SEMICOLON, "';'")

	var cond ast.Expression
	if !p.check(token.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.expect(token.SEMICOLON, "';'")

	var update ast.Expression
	if !p.check(token.RPAREN) {
		update = p.parseExpression()
	}
	p.expect(token.RPAREN, "')'")

	body := p.parseStatement()
	n := &ast.ForStatement{Init: init, Cond: cond, Update: update, Body: body}
	n.SetLine(line)
	return n
}
