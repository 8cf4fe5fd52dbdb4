package parser

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/pkg/token"
)

// parseTypeExpression implements the type-expression ladder (spec
// §4.2), lowest to highest: union (|) → intersection (&) → postfix
// array/indexed-access (T[] / T[K]) → primary.
func (p *Parser) parseTypeExpression() ast.TypeExpr {
	return p.parseUnionType()
}

func (p *Parser) parseUnionType() ast.TypeExpr {
	line := p.cur().Line
	p.match(token.PIPE) // tolerate a leading "|" before the first arm
	first := p.parseIntersectionType()
	if !p.check(token.PIPE) {
		return first
	}
	types := flattenUnion(first)
	for p.match(token.PIPE) {
		types = append(types, flattenUnion(p.parseIntersectionType())...)
	}
	n := &ast.UnionTypeExpr{Types: types}
	n.SetLine(line)
	return n
}

func flattenUnion(t ast.TypeExpr) []ast.TypeExpr {
	if u, ok := t.(*ast.UnionTypeExpr); ok {
		return u.Types
	}
	return []ast.TypeExpr{t}
}

func flattenIntersection(t ast.TypeExpr) []ast.TypeExpr {
	if u, ok := t.(*ast.IntersectionTypeExpr); ok {
		return u.Types
	}
	return []ast.TypeExpr{t}
}

func (p *Parser) parseIntersectionType() ast.TypeExpr {
	line := p.cur().Line
	p.match(token.AMP)
	first := p.parsePostfixType()
	if !p.check(token.AMP) {
		return first
	}
	types := flattenIntersection(first)
	for p.match(token.AMP) {
		types = append(types, flattenIntersection(p.parsePostfixType())...)
	}
	n := &ast.IntersectionTypeExpr{Types: types}
	n.SetLine(line)
	return n
}

func (p *Parser) parsePostfixType() ast.TypeExpr {
	typ := p.parsePrimaryType()
	for {
		line := p.cur().Line
		if p.check(token.LBRACKET) {
			if p.peek().Kind == token.RBRACKET {
				p.advance()
				p.advance()
				n := &ast.ArrayTypeExpr{Element: typ}
				n.SetLine(line)
				typ = n
				continue
			}
			p.advance()
			index := p.parseTypeExpression()
			p.expect(token.RBRACKET, "']'")
			n := &ast.IndexedAccessTypeExpr{Object: typ, Index: index}
			n.SetLine(line)
			typ = n
			continue
		}
		if p.check(token.EXTENDS) {
			// conditional type: T extends U ? A : B — resolved here
			// because "extends" may only follow a primary/postfix type
			// in type position (spec §4.2 speculation point 3).
			p.advance()
			extendsType := p.parseTypeExpression()
			p.expect(token.QUESTION, "'?'")
			trueType := p.parseTypeExpression()
			p.expect(token.COLON, "':'")
			falseType := p.parseTypeExpression()
			n := &ast.ConditionalTypeExpr{Check: typ, Extends: extendsType, True: trueType, False: falseType}
			n.SetLine(line)
			typ = n
			continue
		}
		return typ
	}
}

func (p *Parser) parsePrimaryType() ast.TypeExpr {
	t := p.cur()
	switch {
	case t.Kind == token.LPAREN:
		return p.parseParenOrFunctionType()
	case t.Kind == token.LBRACKET:
		return p.parseTupleType()
	case t.Kind == token.LBRACE:
		return p.parseObjectType()
	case t.Kind == token.STRING:
		p.advance()
		n := &ast.LiteralTypeExpr{Kind: ast.LiteralString, Value: t.Lexeme}
		n.SetLine(t.Line)
		return n
	case t.Kind == token.NUMBER:
		p.advance()
		n := &ast.LiteralTypeExpr{Kind: ast.LiteralNumber, Value: t.Lexeme}
		n.SetLine(t.Line)
		return n
	case t.Kind == token.TRUE || t.Kind == token.FALSE:
		p.advance()
		n := &ast.LiteralTypeExpr{Kind: ast.LiteralBoolean, Value: t.Lexeme}
		n.SetLine(t.Line)
		return n
	case t.Kind == token.TYPEOF:
		p.advance()
		name := p.expect(token.IDENT, "an identifier").Lexeme
		for p.match(token.DOT) {
			name += "." + p.parsePropertyName()
		}
		n := &ast.TypeQueryExpr{ExprName: name}
		n.SetLine(t.Line)
		return n
	case t.Kind == token.KEYOF:
		p.advance()
		operand := p.parsePostfixType()
		n := &ast.KeyofTypeExpr{Operand: operand}
		n.SetLine(t.Line)
		return n
	case t.Kind == token.INFER:
		p.advance()
		name := p.expect(token.IDENT, "an identifier").Lexeme
		n := &ast.InferTypeExpr{Name: name}
		n.SetLine(t.Line)
		return n
	case t.Kind == token.ELLIPSIS:
		p.advance()
		inner := p.parseTypeExpression()
		n := &ast.RestTypeExpr{Inner: inner}
		n.SetLine(t.Line)
		return n
	case t.Kind == token.IDENT || token.IsTypeKeyword(t.Kind) || t.Kind == token.VOID_KW ||
		t.Kind == token.NULL || t.Kind == token.UNDEFINED:
		p.advance()
		n := &ast.TypeReference{Name: t.Lexeme}
		n.SetLine(t.Line)
		if args, ok := p.tryParseTypeArguments(); ok {
			n.TypeArgs = args
		}
		var result ast.TypeExpr = n
		// "T?" is an optional tuple element only when the element ends
		// right after it; otherwise "?" opens a conditional type's arms.
		if p.check(token.QUESTION) && (p.peek().Kind == token.COMMA || p.peek().Kind == token.RBRACKET) {
			p.advance()
			opt := &ast.OptionalTypeExpr{Inner: result}
			opt.SetLine(t.Line)
			result = opt
		}
		return result
	}
	p.fail("a type")
	return nil
}

// parseParenOrFunctionType resolves "(" in type position: a function
// type "(a: T, b: U) => R" or a parenthesized type "(A | B)".
func (p *Parser) parseParenOrFunctionType() ast.TypeExpr {
	line := p.cur().Line
	m := p.save()
	if params, ok := p.tryParseFunctionTypeParams(); ok {
		if p.match(token.ARROW) {
			ret := p.parseTypeExpression()
			n := &ast.FunctionTypeExpr{Params: params, ReturnType: ret}
			n.SetLine(line)
			return n
		}
		p.restore(m)
	}
	p.advance() // '('
	inner := p.parseTypeExpression()
	p.expect(token.RPAREN, "')'")
	n := &ast.ParenthesizedTypeExpr{Inner: inner}
	n.SetLine(line)
	return n
}

func (p *Parser) tryParseFunctionTypeParams() (params []*ast.Param, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	params = p.parseParamList()
	return params, true
}

func (p *Parser) parseTupleType() ast.TypeExpr {
	line := p.expect(token.LBRACKET, "'['").Line
	var elems []ast.TypeExpr
	for !p.check(token.RBRACKET) {
		elems = append(elems, p.parseTypeExpression())
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACKET, "']'")
	n := &ast.TupleTypeExpr{Elements: elems}
	n.SetLine(line)
	return n
}

func (p *Parser) parseObjectType() ast.TypeExpr {
	line := p.expect(token.LBRACE, "'{'").Line
	var members []*ast.ObjectTypeMember
	var indexSigs []*ast.IndexSignature
	for !p.check(token.RBRACE) {
		memberLine := p.cur().Line
		if p.check(token.LBRACKET) && isIndexSignature(p) {
			p.advance()
			keyName := p.expect(token.IDENT, "an index key").Lexeme
			p.expect(token.COLON, "':'")
			keyType := p.parseTypeExpression()
			p.expect(token.RBRACKET, "']'")
			p.expect(token.COLON, "':'")
			valType := p.parseTypeExpression()
			indexSigs = append(indexSigs, &ast.IndexSignature{KeyName: keyName, KeyType: keyType, Value: valType})
			p.matchMemberSeparator()
			continue
		}
		readonly := p.match(token.READONLY)
		name := p.parsePropertyName()
		optional := p.match(token.QUESTION)
		if p.check(token.LPAREN) {
			params := p.parseParamList()
			var ret ast.TypeExpr
			if p.match(token.COLON) {
				ret = p.parseTypeExpression()
			}
			members = append(members, &ast.ObjectTypeMember{
				Name: name, Optional: optional, IsMethod: true, Params: params, ReturnType: ret, Line: memberLine,
			})
		} else {
			p.expect(token.COLON, "':'")
			typ := p.parseTypeExpression()
			members = append(members, &ast.ObjectTypeMember{
				Name: name, Type: typ, Optional: optional, Readonly: readonly, Line: memberLine,
			})
		}
		p.matchMemberSeparator()
	}
	p.expect(token.RBRACE, "'}'")
	n := &ast.ObjectTypeExpr{Members: members, IndexSignatures: indexSigs}
	n.SetLine(line)
	return n
}

func (p *Parser) matchMemberSeparator() {
	if !p.match(token.SEMICOLON) {
		p.match(token.COMMA)
	}
}

// isIndexSignature looks ahead past "[ident" to see ":"  confirming an
// index signature rather than a computed member, without consuming
// input.
func isIndexSignature(p *Parser) bool {
	return p.peek().Kind == token.IDENT && p.peekAt(2).Kind == token.COLON
}

// skipTypeParams consumes an optional "<T, U extends V>" generic
// parameter list without retaining it: generics are parsed but erased
// without substitution (spec §1 Non-goals).
func (p *Parser) skipTypeParams() {
	if !p.check(token.LESS) {
		return
	}
	p.advance()
	depth := 1
	for depth > 0 && !p.check(token.EOF) {
		switch p.cur().Kind {
		case token.LESS:
			depth++
		case token.GREATER:
			depth--
		}
		p.advance()
	}
}
