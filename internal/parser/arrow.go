package parser

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/pkg/token"
)

// tryParseArrowFunction resolves speculation point 1 (spec §4.2): at
// the start of an assignment expression, a leading identifier or "("
// might begin an arrow function rather than a parenthesized/primary
// expression. It speculatively parses a parameter list and bails out
// (restoring the cursor) unless that parse is immediately followed by
// "=>", so on failure the caller falls through to ordinary expression
// parsing.
func (p *Parser) tryParseArrowFunction() (ast.Expression, bool) {
	if !p.check(token.IDENT) && !p.check(token.LPAREN) && !p.check(token.ASYNC) {
		return nil, false
	}

	m := p.save()
	line := p.cur().Line
	isAsync := false
	if p.check(token.ASYNC) && (p.peek().Kind == token.LPAREN || p.peek().Kind == token.IDENT) && p.peek().Line == line {
		isAsync = true
		p.advance()
	}

	var params []*ast.Param
	var retType ast.TypeExpr
	ok := true
	func() {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		if p.check(token.IDENT) {
			name := p.advance().Lexeme
			params = []*ast.Param{{Name: name, Line: line}}
			return
		}
		p.skipTypeParams()
		params = p.parseParamList()
		if p.match(token.COLON) {
			retType = p.parseTypeExpression()
		}
	}()

	if !ok || !p.check(token.ARROW) {
		p.restore(m)
		return nil, false
	}
	p.advance() // '=>'

	var body ast.Node
	if p.check(token.LBRACE) {
		body = p.parseBlockStatement()
	} else {
		body = p.parseAssignmentExpression()
	}

	n := &ast.ArrowFunctionExpr{Params: params, ReturnType: retType, Body: body, IsAsync: isAsync}
	n.SetLine(line)
	return n, true
}
