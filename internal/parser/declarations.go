package parser

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/pkg/token"
)

// parseParamList parses a parenthesized parameter list shared by
// function declarations, function expressions, arrow functions,
// methods, and function types.
func (p *Parser) parseParamList() []*ast.Param {
	p.expect(token.LPAREN, "'('")
	var params []*ast.Param
	for !p.check(token.RPAREN) {
		line := p.cur().Line
		rest := p.match(token.ELLIPSIS)
		// constructor property shorthand: accepted and erased, never retained on Param
		p.match(token.PUBLIC_KW)
		p.match(token.PRIVATE_KW)
		p.match(token.PROTECTED_KW)
		p.match(token.READONLY)
		name := p.expect(token.IDENT, "a parameter name").Lexeme
		optional := p.match(token.QUESTION)
		var typ ast.TypeExpr
		if p.match(token.COLON) {
			typ = p.parseTypeExpression()
		}
		var def ast.Expression
		if p.match(token.ASSIGN) {
			def = p.parseAssignmentExpression()
		}
		params = append(params, &ast.Param{Name: name, Type: typ, Optional: optional, Rest: rest, Default: def, Line: line})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN, "')'")
	return params
}

func (p *Parser) parseFunctionDecl(decorators []ast.Expression) *ast.FunctionDecl {
	line := p.cur().Line
	isAsync := p.match(token.ASYNC)
	p.expect(token.FUNCTION, "'function'")
	name := p.expect(token.IDENT, "a function name").Lexeme
	p.skipTypeParams()
	params := p.parseParamList()
	var ret ast.TypeExpr
	if p.match(token.COLON) {
		ret = p.parseTypeExpression()
	}
	body := p.parseBlockStatement()
	n := &ast.FunctionDecl{Name: name, Params: params, ReturnType: ret, Body: body, IsAsync: isAsync, Decorators: decorators}
	n.SetLine(line)
	return n
}

func (p *Parser) parseInterfaceDecl() ast.Statement {
	line := p.advance().Line
	name := p.expect(token.IDENT, "an interface name").Lexeme
	p.skipTypeParams()
	var extends []ast.TypeExpr
	if p.match(token.EXTENDS) {
		for {
			extends = append(extends, p.parsePostfixType())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	body := p.parseObjectType().(*ast.ObjectTypeExpr)
	n := &ast.InterfaceDecl{Name: name, Extends: extends, Members: body.Members, IndexSignatures: body.IndexSignatures}
	n.SetLine(line)
	return n
}

func (p *Parser) parseTypeAliasDecl() ast.Statement {
	line := p.advance().Line
	name := p.expect(token.IDENT, "a type name").Lexeme
	p.skipTypeParams()
	p.expect(token.ASSIGN, "'='")
	typ := p.parseTypeExpression()
	p.match(token.SEMICOLON)
	n := &ast.TypeAliasDecl{Name: name, Type: typ}
	n.SetLine(line)
	return n
}

func (p *Parser) parseEnumDecl(isConst bool) ast.Statement {
	line := p.advance().Line
	name := p.expect(token.IDENT, "an enum name").Lexeme
	p.expect(token.LBRACE, "'{'")
	var members []*ast.EnumMember
	for !p.check(token.RBRACE) {
		memberLine := p.cur().Line
		memberName := p.parsePropertyName()
		var init ast.Expression
		if p.match(token.ASSIGN) {
			init = p.parseAssignmentExpression()
		}
		members = append(members, &ast.EnumMember{Name: memberName, Init: init, Line: memberLine})
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE, "'}'")
	n := &ast.EnumDecl{Name: name, IsConst: isConst, Members: members}
	n.SetLine(line)
	return n
}

// parseClassDecl parses a class declaration or expression body;
// decorators is nil for undecorated classes.
func (p *Parser) parseClassDecl(decorators []ast.Expression) *ast.ClassDecl {
	line := p.advance().Line // 'class'
	name := ""
	if p.check(token.IDENT) {
		name = p.advance().Lexeme
	}
	p.skipTypeParams()
	var super ast.TypeExpr
	if p.match(token.EXTENDS) {
		super = p.parsePostfixType()
	}
	var impls []ast.TypeExpr
	if p.match(token.IMPLEMENTS_KW) {
		for {
			impls = append(impls, p.parsePostfixType())
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	members := p.parseClassBody()
	n := &ast.ClassDecl{Name: name, SuperClass: super, Implements: impls, Members: members, Decorators: decorators}
	n.SetLine(line)
	return n
}

func (p *Parser) parseClassBody() []*ast.ClassMember {
	p.expect(token.LBRACE, "'{'")
	var members []*ast.ClassMember
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if p.match(token.SEMICOLON) {
			continue
		}
		members = append(members, p.parseClassMember())
	}
	p.expect(token.RBRACE, "'}'")
	return members
}

func (p *Parser) parseClassMember() *ast.ClassMember {
	line := p.cur().Line
	var decorators []ast.Expression
	for p.check(token.AT) {
		p.advance()
		decorators = append(decorators, p.parseLeftHandSideExpression())
	}

	member := &ast.ClassMember{Decorators: decorators, Line: line}

	for {
		switch p.cur().Kind {
		case token.STATIC:
			member.IsStatic = true
			p.advance()
			continue
		case token.READONLY:
			member.IsReadonly = true
			p.advance()
			continue
		case token.ABSTRACT:
			member.IsAbstract = true
			p.advance()
			continue
		case token.PUBLIC_KW:
			member.Access = ast.Public
			p.advance()
			continue
		case token.PRIVATE_KW:
			member.Access = ast.Private
			p.advance()
			continue
		case token.PROTECTED_KW:
			member.Access = ast.Protected
			p.advance()
			continue
		}
		break
	}

	if p.check(token.GET) && p.peek().Kind != token.LPAREN {
		p.advance()
		member.IsGetter = true
		member.IsMethod = true
	} else if p.check(token.SET) && p.peek().Kind != token.LPAREN {
		p.advance()
		member.IsSetter = true
		member.IsMethod = true
	}

	if p.check(token.ASYNC) && p.peek().Kind != token.LPAREN {
		p.advance()
	}
	p.match(token.STAR) // generator marker

	member.Name = p.parsePropertyName()
	p.match(token.QUESTION)

	if p.check(token.LPAREN) {
		member.IsMethod = true
		p.skipTypeParams()
		member.Params = p.parseParamList()
		if p.match(token.COLON) {
			member.ReturnType = p.parseTypeExpression()
		}
		if p.check(token.LBRACE) {
			member.Body = p.parseBlockStatement()
		} else {
			p.match(token.SEMICOLON) // abstract/interface-like method: no body
		}
		return member
	}

	if p.match(token.COLON) {
		member.FieldType = p.parseTypeExpression()
	}
	if p.match(token.ASSIGN) {
		member.Init = p.parseAssignmentExpression()
	}
	p.match(token.SEMICOLON)
	return member
}
