package parser

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/pkg/token"
)

// parseStatement dispatches on the current token's kind. A leading '@'
// begins a decorator sequence, legal only before a class or class
// member (spec §4.2); any other leading token that matches no
// statement production falls through to an expression statement.
func (p *Parser) parseStatement() ast.Statement {
	if p.check(token.AT) {
		decorators := p.parseDecorators()
		return p.parseDecoratedDeclaration(decorators)
	}

	switch p.cur().Kind {
	case token.CONST:
		if p.peek().Kind == token.ENUM {
			p.advance()
			return p.parseEnumDecl(true)
		}
		return p.parseVarStatement()
	case token.VAR, token.LET:
		return p.parseVarStatement()
	case token.FUNCTION:
		return p.parseFunctionDecl(nil)
	case token.ASYNC:
		if p.peek().Kind == token.FUNCTION {
			return p.parseFunctionDecl(nil)
		}
	case token.INTERFACE:
		return p.parseInterfaceDecl()
	case token.TYPE:
		return p.parseTypeAliasDecl()
	case token.CLASS:
		return p.parseClassDecl(nil)
	case token.ABSTRACT:
		if p.peek().Kind == token.CLASS {
			p.advance()
			decl := p.parseClassDecl(nil)
			decl.IsAbstract = true
			return decl
		}
	case token.ENUM:
		return p.parseEnumDecl(false)
	case token.RETURN:
		return p.parseReturnStatement()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.DO:
		return p.parseDoWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.SWITCH:
		return p.parseSwitchStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.TRY:
		return p.parseTryStatement()
	case token.LBRACE:
		return p.parseBlockStatement()
	case token.IMPORT:
		return p.parseImportStatement()
	case token.EXPORT:
		return p.parseExportStatement()
	case token.SEMICOLON:
		line := p.advance().Line
		n := &ast.EmptyStatement{}
		n.SetLine(line)
		return n
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseDecorators() []ast.Expression {
	var decorators []ast.Expression
	for p.check(token.AT) {
		p.advance()
		decorators = append(decorators, p.parseLeftHandSideExpression())
	}
	return decorators
}

// parseDecoratedDeclaration enforces that decorators only precede a
// class declaration (including an exported one) — anything else is a
// syntax error (spec §4.2).
func (p *Parser) parseDecoratedDeclaration(decorators []ast.Expression) ast.Statement {
	switch p.cur().Kind {
	case token.CLASS:
		return p.parseClassDecl(decorators)
	case token.ABSTRACT:
		p.advance()
		decl := p.parseClassDecl(decorators)
		decl.IsAbstract = true
		return decl
	case token.EXPORT:
		line := p.advance().Line
		isDefault := p.match(token.DEFAULT)
		inner := p.parseDecoratedDeclaration(decorators)
		n := &ast.ExportStatement{Decl: inner, IsDefault: isDefault}
		n.SetLine(line)
		return n
	}
	p.fail("a class declaration after decorator")
	return nil
}

func (p *Parser) parseVarStatement() ast.Statement {
	line := p.cur().Line
	kind := ast.VarVar
	switch p.advance().Kind {
	case token.LET:
		kind = ast.VarLet
	case token.CONST:
		kind = ast.VarConst
	}

	var decls []*ast.VarDeclarator
	for {
		decls = append(decls, p.parseVarDeclarator())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.match(token.SEMICOLON)
	n := &ast.VarStatement{Kind: kind, Declarators: decls}
	n.SetLine(line)
	return n
}

func (p *Parser) parseVarDeclarator() *ast.VarDeclarator {
	line := p.cur().Line
	name := p.expect(token.IDENT, "an identifier").Lexeme
	var typ ast.TypeExpr
	if p.match(token.COLON) {
		typ = p.parseTypeExpression()
	}
	var init ast.Expression
	if p.match(token.ASSIGN) {
		init = p.parseAssignmentExpression()
	}
	return &ast.VarDeclarator{Name: name, Type: typ, Init: init, Line: line}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	line := p.advance().Line
	var value ast.Expression
	if !p.check(token.SEMICOLON) && !p.check(token.RBRACE) && p.cur().Line == line {
		value = p.parseExpression()
	}
	p.match(token.SEMICOLON)
	n := &ast.ReturnStatement{Value: value}
	n.SetLine(line)
	return n
}

func (p *Parser) parseBreakStatement() ast.Statement {
	line := p.advance().Line
	label := ""
	if p.check(token.IDENT) && p.cur().Line == line {
		label = p.advance().Lexeme
	}
	p.match(token.SEMICOLON)
	n := &ast.BreakStatement{Label: label}
	n.SetLine(line)
	return n
}

func (p *Parser) parseContinueStatement() ast.Statement {
	line := p.advance().Line
	label := ""
	if p.check(token.IDENT) && p.cur().Line == line {
		label = p.advance().Lexeme
	}
	p.match(token.SEMICOLON)
	n := &ast.ContinueStatement{Label: label}
	n.SetLine(line)
	return n
}

func (p *Parser) parseThrowStatement() ast.Statement {
	line := p.advance().Line
	value := p.parseExpression()
	p.match(token.SEMICOLON)
	n := &ast.ThrowStatement{Value: value}
	n.SetLine(line)
	return n
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	line := p.expect(token.LBRACE, "'{'").Line
	var statements []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		statements = append(statements, p.parseStatement())
	}
	p.expect(token.RBRACE, "'}'")
	n := &ast.BlockStatement{Statements: statements}
	n.SetLine(line)
	return n
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	line := p.cur().Line
	expr := p.parseExpression()
	p.expect(token.SEMICOLON, "';'")
	n := &ast.ExpressionStatement{Expr: expr}
	n.SetLine(line)
	return n
}

func (p *Parser) parseTryStatement() ast.Statement {
	line := p.advance().Line
	block := p.parseBlockStatement()
	var catchParam string
	var catchBlock, finallyBlock *ast.BlockStatement
	if p.match(token.CATCH) {
		if p.match(token.LPAREN) {
			catchParam = p.expect(token.IDENT, "a catch binding").Lexeme
			p.expect(token.RPAREN, "')'")
		}
		catchBlock = p.parseBlockStatement()
	}
	if p.match(token.FINALLY) {
		finallyBlock = p.parseBlockStatement()
	}
	n := &ast.TryStatement{Block: block, CatchParam: catchParam, CatchBlock: catchBlock, FinallyBlock: finallyBlock}
	n.SetLine(line)
	return n
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	line := p.advance().Line
	p.expect(token.LPAREN, "'('")
	disc := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	p.expect(token.LBRACE, "'{'")

	var cases []*ast.SwitchCase
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		caseLine := p.cur().Line
		var test ast.Expression
		if p.match(token.CASE) {
			test = p.parseExpression()
		} else {
			p.expect(token.DEFAULT, "'case' or 'default'")
		}
		p.expect(token.COLON, "':'")
		var body []ast.Statement
		for !p.check(token.CASE) && !p.check(token.DEFAULT) && !p.check(token.RBRACE) && !p.check(token.EOF) {
			body = append(body, p.parseStatement())
		}
		cases = append(cases, &ast.SwitchCase{Test: test, Body: body, Line: caseLine})
	}
	p.expect(token.RBRACE, "'}'")
	n := &ast.SwitchStatement{Discriminant: disc, Cases: cases}
	n.SetLine(line)
	return n
}

func (p *Parser) parseImportStatement() ast.Statement {
	line := p.advance().Line
	stmt := &ast.ImportStatement{}
	if p.check(token.STRING) {
		stmt.Source = p.advance().Lexeme
		p.match(token.SEMICOLON)
		stmt.SetLine(line)
		return stmt
	}
	if p.check(token.IDENT) {
		stmt.Default = p.advance().Lexeme
		p.match(token.COMMA)
	}
	if p.match(token.LBRACE) {
		for !p.check(token.RBRACE) {
			name := p.expect(token.IDENT, "an import name").Lexeme
			alias := ""
			if p.match(token.AS) {
				alias = p.expect(token.IDENT, "an import alias").Lexeme
			}
			stmt.Specifiers = append(stmt.Specifiers, &ast.ImportSpecifier{Name: name, Alias: alias})
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RBRACE, "'}'")
	}
	p.expect(token.FROM, "'from'")
	stmt.Source = p.expect(token.STRING, "a module path").Lexeme
	p.match(token.SEMICOLON)
	stmt.SetLine(line)
	return stmt
}

func (p *Parser) parseExportStatement() ast.Statement {
	line := p.advance().Line
	if p.match(token.DEFAULT) {
		if startsDeclaration(p.cur().Kind) {
			decl := p.parseStatement()
			n := &ast.ExportStatement{Decl: decl, IsDefault: true}
			n.SetLine(line)
			return n
		}
		expr := p.parseAssignmentExpression()
		p.match(token.SEMICOLON)
		n := &ast.ExportStatement{DefaultExpr: expr, IsDefault: true}
		n.SetLine(line)
		return n
	}
	if p.match(token.LBRACE) {
		var specs []*ast.ImportSpecifier
		for !p.check(token.RBRACE) {
			name := p.expect(token.IDENT, "an export name").Lexeme
			alias := ""
			if p.match(token.AS) {
				alias = p.expect(token.IDENT, "an export alias").Lexeme
			}
			specs = append(specs, &ast.ImportSpecifier{Name: name, Alias: alias})
			if !p.match(token.COMMA) {
				break
			}
		}
		p.expect(token.RBRACE, "'}'")
		source := ""
		if p.match(token.FROM) {
			source = p.expect(token.STRING, "a module path").Lexeme
		}
		p.match(token.SEMICOLON)
		n := &ast.ExportStatement{Specifiers: specs, Source: source}
		n.SetLine(line)
		return n
	}
	decl := p.parseStatement()
	n := &ast.ExportStatement{Decl: decl}
	n.SetLine(line)
	return n
}

func startsDeclaration(k token.Kind) bool {
	switch k {
	case token.FUNCTION, token.CLASS, token.ABSTRACT, token.ASYNC, token.INTERFACE, token.TYPE, token.ENUM:
		return true
	}
	return false
}
