package parser

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/pkg/token"
)

func (p *Parser) parsePrimary() ast.Expression {
	t := p.cur()
	switch t.Kind {
	case token.NUMBER:
		p.advance()
		n := &ast.NumericLiteral{Value: t.Lexeme}
		n.SetLine(t.Line)
		return n
	case token.STRING:
		p.advance()
		n := &ast.StringLiteral{Value: t.Lexeme}
		n.SetLine(t.Line)
		return n
	case token.TRUE, token.FALSE:
		p.advance()
		n := &ast.BooleanLiteral{Value: t.Kind == token.TRUE}
		n.SetLine(t.Line)
		return n
	case token.NULL:
		p.advance()
		n := &ast.NullLiteral{}
		n.SetLine(t.Line)
		return n
	case token.UNDEFINED:
		p.advance()
		n := &ast.UndefinedLiteral{}
		n.SetLine(t.Line)
		return n
	case token.THIS:
		p.advance()
		n := &ast.ThisExpr{}
		n.SetLine(t.Line)
		return n
	case token.SUPER:
		p.advance()
		n := &ast.SuperExpr{}
		n.SetLine(t.Line)
		return n
	case token.IDENT:
		p.advance()
		n := &ast.Identifier{Name: t.Lexeme}
		n.SetLine(t.Line)
		return n
	case token.ASYNC:
		if p.peek().Kind == token.FUNCTION {
			return p.parseFunctionExpression()
		}
		p.advance()
		n := &ast.Identifier{Name: t.Lexeme}
		n.SetLine(t.Line)
		return n
	case token.FUNCTION:
		return p.parseFunctionExpression()
	case token.CLASS:
		return p.parseClassExpression()
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.LBRACE:
		return p.parseObjectLiteral()
	case token.LPAREN:
		return p.parseParenthesizedExpression()
	case token.TEMPLATE_LITERAL, token.TEMPLATE_HEAD:
		return p.parseTemplateLiteral()
	}
	p.fail("an expression")
	return nil
}

func (p *Parser) parseParenthesizedExpression() ast.Expression {
	line := p.advance().Line // '('
	inner := p.parseExpression()
	p.expect(token.RPAREN, "')'")
	n := &ast.ParenthesizedExpr{Inner: inner}
	n.SetLine(line)
	return n
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	line := p.expect(token.LBRACKET, "'['").Line
	var elems []ast.Expression
	for !p.check(token.RBRACKET) {
		if p.check(token.ELLIPSIS) {
			spreadLine := p.advance().Line
			e := p.parseAssignmentExpression()
			n := &ast.SpreadExpr{Argument: e}
			n.SetLine(spreadLine)
			elems = append(elems, n)
		} else {
			elems = append(elems, p.parseAssignmentExpression())
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACKET, "']'")
	n := &ast.ArrayLiteral{Elements: elems}
	n.SetLine(line)
	return n
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	line := p.expect(token.LBRACE, "'{'").Line
	var props []*ast.ObjectProperty
	for !p.check(token.RBRACE) {
		propLine := p.cur().Line
		if p.check(token.ELLIPSIS) {
			p.advance()
			v := p.parseAssignmentExpression()
			props = append(props, &ast.ObjectProperty{Spread: true, Value: v, Line: propLine})
		} else if p.check(token.LBRACKET) {
			p.advance()
			keyExpr := p.parseAssignmentExpression()
			p.expect(token.RBRACKET, "']'")
			p.expect(token.COLON, "':'")
			val := p.parseAssignmentExpression()
			props = append(props, &ast.ObjectProperty{Computed: true, KeyExpr: keyExpr, Value: val, Line: propLine})
		} else {
			key := p.parsePropertyKey()
			if p.check(token.LPAREN) {
				// method shorthand: { foo() { ... } }
				params := p.parseParamList()
				body := p.parseBlockStatement()
				fn := &ast.FunctionExpr{Params: params, Body: body}
				fn.SetLine(propLine)
				props = append(props, &ast.ObjectProperty{Key: key, Value: fn, Line: propLine})
			} else if p.match(token.COLON) {
				val := p.parseAssignmentExpression()
				props = append(props, &ast.ObjectProperty{Key: key, Value: val, Line: propLine})
			} else {
				id := &ast.Identifier{Name: key}
				id.SetLine(propLine)
				props = append(props, &ast.ObjectProperty{Key: key, Value: id, Shorthand: true, Line: propLine})
			}
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE, "'}'")
	n := &ast.ObjectLiteral{Properties: props}
	n.SetLine(line)
	return n
}

func (p *Parser) parsePropertyKey() string {
	t := p.cur()
	if t.Kind == token.STRING || t.Kind == token.NUMBER {
		p.advance()
		return t.Lexeme
	}
	return p.parsePropertyName()
}

func (p *Parser) parseTemplateLiteral() ast.Expression {
	line := p.cur().Line
	head := p.advance()
	quasis := []string{head.Lexeme}
	var exprs []ast.Expression
	if head.Kind == token.TEMPLATE_LITERAL {
		n := &ast.TemplateLiteralExpr{Quasis: quasis}
		n.SetLine(line)
		return n
	}
	for {
		exprs = append(exprs, p.parseExpression())
		t := p.cur()
		if t.Kind != token.TEMPLATE_MIDDLE && t.Kind != token.TEMPLATE_TAIL {
			p.fail("a template continuation")
		}
		p.advance()
		quasis = append(quasis, t.Lexeme)
		if t.Kind == token.TEMPLATE_TAIL {
			break
		}
	}
	n := &ast.TemplateLiteralExpr{Quasis: quasis, Expressions: exprs}
	n.SetLine(line)
	return n
}

func (p *Parser) parseFunctionExpression() ast.Expression {
	line := p.cur().Line
	isAsync := p.match(token.ASYNC)
	p.expect(token.FUNCTION, "'function'")
	name := ""
	if p.check(token.IDENT) {
		name = p.advance().Lexeme
	}
	p.skipTypeParams()
	params := p.parseParamList()
	var ret ast.TypeExpr
	if p.match(token.COLON) {
		ret = p.parseTypeExpression()
	}
	body := p.parseBlockStatement()
	n := &ast.FunctionExpr{Name: name, Params: params, ReturnType: ret, Body: body, IsAsync: isAsync}
	n.SetLine(line)
	return n
}

func (p *Parser) parseClassExpression() ast.Expression {
	decl := p.parseClassDecl(nil)
	n := &ast.ClassExpr{
		Name: decl.Name, TypeParams: decl.TypeParams, SuperClass: decl.SuperClass,
		Implements: decl.Implements, Members: decl.Members,
	}
	n.SetLine(decl.Line())
	return n
}
