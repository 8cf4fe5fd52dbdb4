package parser

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/pkg/token"
)

// parseExpression is the entry point for the full ladder (spec §4.2):
// assignment (right-assoc) → conditional (right-assoc) →
// nullish/logical-or → ... → left-hand-side.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignmentExpression()
}

func (p *Parser) parseAssignmentExpression() ast.Expression {
	if arrow, ok := p.tryParseArrowFunction(); ok {
		return arrow
	}

	line := p.cur().Line
	left := p.parseConditionalExpression()
	if assignOps[p.cur().Kind] {
		op := p.advance().Kind
		value := p.parseAssignmentExpression() // right-assoc
		n := &ast.AssignmentExpr{Op: op, Target: left, Value: value}
		n.SetLine(line)
		return n
	}
	return left
}

func (p *Parser) parseConditionalExpression() ast.Expression {
	line := p.cur().Line
	test := p.parseBinary(precNullish)
	if p.match(token.QUESTION) {
		consequent := p.parseAssignmentExpression()
		p.expect(token.COLON, "':'")
		alternate := p.parseAssignmentExpression() // right-assoc
		n := &ast.ConditionalExpr{Test: test, Consequent: consequent, Alternate: alternate}
		n.SetLine(line)
		return n
	}
	return test
}

// parseBinary implements precedence climbing over binaryPrecedence.
// "**" is right-associative; every other operator in the table is
// left-associative.
func (p *Parser) parseBinary(minPrec int) ast.Expression {
	left := p.parseUnary()
	for {
		line := p.cur().Line
		prec, ok := binaryPrecedence[p.cur().Kind]
		if !ok || prec < minPrec {
			break
		}
		op := p.advance().Kind
		nextMin := prec + 1
		if op == token.STAR_STAR {
			nextMin = prec
		}
		right := p.parseBinary(nextMin)
		if logicalOps[op] {
			n := &ast.LogicalExpr{Op: op, Left: left, Right: right}
			n.SetLine(line)
			left = n
		} else {
			n := &ast.BinaryExpr{Op: op, Left: left, Right: right}
			n.SetLine(line)
			left = n
		}
	}
	return left
}

var prefixUnaryOps = map[token.Kind]bool{
	token.BANG: true, token.MINUS: true, token.PLUS: true, token.TILDE: true,
	token.TYPEOF: true, token.DELETE: true,
}

func (p *Parser) parseUnary() ast.Expression {
	line := p.cur().Line
	switch {
	case prefixUnaryOps[p.cur().Kind]:
		op := p.advance().Kind
		operand := p.parseUnary()
		n := &ast.UnaryExpr{Op: op, Operand: operand}
		n.SetLine(line)
		return n
	case p.check(token.AWAIT):
		p.advance()
		operand := p.parseUnary()
		n := &ast.AwaitExpr{Argument: operand}
		n.SetLine(line)
		return n
	case p.check(token.YIELD):
		p.advance()
		delegate := p.match(token.STAR)
		var arg ast.Expression
		if !p.check(token.SEMICOLON) && !p.check(token.RPAREN) && !p.check(token.RBRACE) && !p.check(token.COMMA) {
			arg = p.parseAssignmentExpression()
		}
		n := &ast.YieldExpr{Argument: arg, Delegate: delegate}
		n.SetLine(line)
		return n
	case p.check(token.PLUS_PLUS) || p.check(token.MINUS_MINUS):
		op := p.advance().Kind
		operand := p.parseUnary()
		n := &ast.UpdateExpr{Op: op, Operand: operand, Prefix: true}
		n.SetLine(line)
		return n
	case p.check(token.LESS):
		// prefix type assertion: <T>expr
		if typ, ok := p.tryParseTypeAssertion(); ok {
			return typ
		}
	}
	return p.parsePostfix()
}

// tryParseTypeAssertion speculatively parses the prefix "<T>expr" form.
// On any mismatch it restores the cursor so '<' can fall through to
// being the less-than operator instead (spec §4.2 speculation point 2,
// mirrored here for the prefix-assertion case).
func (p *Parser) tryParseTypeAssertion() (ast.Expression, bool) {
	m := p.save()
	line := p.advance().Line // consume '<'
	ok := true
	var typ ast.TypeExpr
	func() {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		typ = p.parseTypeExpression()
	}()
	if !ok || !p.check(token.GREATER) {
		p.restore(m)
		return nil, false
	}
	p.advance() // '>'
	operand := p.parseUnary()
	n := &ast.TypeAssertionExpr{Type: typ, Expr: operand}
	n.SetLine(line)
	return n, true
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseLeftHandSideExpression()
	for {
		line := p.cur().Line
		switch {
		case p.check(token.PLUS_PLUS) || p.check(token.MINUS_MINUS):
			op := p.advance().Kind
			n := &ast.UpdateExpr{Op: op, Operand: expr, Prefix: false}
			n.SetLine(line)
			expr = n
		case p.check(token.BANG):
			p.advance()
			n := &ast.NonNullExpr{Expr: expr}
			n.SetLine(line)
			expr = n
		case p.check(token.AS):
			p.advance()
			typ := p.parseTypeExpression()
			n := &ast.AsExpr{Expr: expr, Type: typ}
			n.SetLine(line)
			expr = n
		default:
			return expr
		}
	}
}

// parseLeftHandSideExpression handles calls, member access (dotted and
// computed), optional chaining, and "new" — the highest-precedence
// tier of the ladder.
func (p *Parser) parseLeftHandSideExpression() ast.Expression {
	var expr ast.Expression
	if p.check(token.NEW) {
		expr = p.parseNewExpression()
	} else {
		expr = p.parsePrimary()
	}
	return p.parseCallTail(expr)
}

func (p *Parser) parseNewExpression() ast.Expression {
	line := p.advance().Line
	callee := p.parseLeftHandSideExpressionNoCall()
	var typeArgs []ast.TypeExpr
	if ta, ok := p.tryParseTypeArguments(); ok {
		typeArgs = ta
	}
	var args []ast.Expression
	if p.check(token.LPAREN) {
		args = p.parseArguments()
	}
	n := &ast.NewExpr{Callee: callee, TypeArgs: typeArgs, Args: args}
	n.SetLine(line)
	return n
}

// parseLeftHandSideExpressionNoCall parses the callee of a "new"
// expression: member access is allowed, call syntax is not (so that
// "new a.b.C()" attaches the call to the whole "new", not to "C").
func (p *Parser) parseLeftHandSideExpressionNoCall() ast.Expression {
	var expr ast.Expression
	if p.check(token.NEW) {
		expr = p.parseNewExpression()
		return expr
	}
	expr = p.parsePrimary()
	for {
		line := p.cur().Line
		switch {
		case p.check(token.DOT):
			p.advance()
			name := p.parsePropertyName()
			n := &ast.MemberExpr{Object: expr, Property: name}
			n.SetLine(line)
			expr = n
		case p.check(token.LBRACKET):
			p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET, "']'")
			n := &ast.ComputedMemberExpr{Object: expr, Property: idx}
			n.SetLine(line)
			expr = n
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallTail(expr ast.Expression) ast.Expression {
	for {
		line := p.cur().Line
		switch {
		case p.check(token.DOT):
			p.advance()
			name := p.parsePropertyName()
			n := &ast.MemberExpr{Object: expr, Property: name}
			n.SetLine(line)
			expr = n
		case p.check(token.QUESTION_DOT):
			p.advance()
			if p.check(token.LPAREN) {
				args := p.parseArguments()
				n := &ast.CallExpr{Callee: expr, Args: args, Optional: true}
				n.SetLine(line)
				expr = n
				continue
			}
			if p.check(token.LBRACKET) {
				p.advance()
				idx := p.parseExpression()
				p.expect(token.RBRACKET, "']'")
				n := &ast.ComputedMemberExpr{Object: expr, Property: idx, Optional: true}
				n.SetLine(line)
				expr = n
				continue
			}
			name := p.parsePropertyName()
			n := &ast.MemberExpr{Object: expr, Property: name, Optional: true}
			n.SetLine(line)
			expr = n
		case p.check(token.LBRACKET):
			p.advance()
			idx := p.parseExpression()
			p.expect(token.RBRACKET, "']'")
			n := &ast.ComputedMemberExpr{Object: expr, Property: idx}
			n.SetLine(line)
			expr = n
		case p.check(token.LPAREN):
			args := p.parseArguments()
			n := &ast.CallExpr{Callee: expr, Args: args}
			n.SetLine(line)
			expr = n
		case p.check(token.LESS):
			if typeArgs, args, ok := p.tryParseCallWithTypeArguments(); ok {
				n := &ast.CallExpr{Callee: expr, TypeArgs: typeArgs, Args: args}
				n.SetLine(line)
				expr = n
				continue
			}
			return expr
		default:
			return expr
		}
	}
}

func (p *Parser) parsePropertyName() string {
	t := p.cur()
	if t.Kind == token.IDENT || token.IsTypeKeyword(t.Kind) || isContextualKeyword(t.Kind) {
		p.advance()
		return t.Lexeme
	}
	p.fail("a property name")
	return ""
}

func isContextualKeyword(k token.Kind) bool {
	switch k {
	case token.GET, token.SET, token.STATIC, token.ASYNC, token.FROM, token.AS,
		token.READONLY, token.DECLARE, token.NAMESPACE, token.TYPE, token.OF,
		token.ENUM, token.INTERFACE, token.ABSTRACT, token.CONST,
		token.PUBLIC_KW, token.PRIVATE_KW, token.PROTECTED_KW:
		return true
	}
	return false
}

func (p *Parser) parseArguments() []ast.Expression {
	p.expect(token.LPAREN, "'('")
	var args []ast.Expression
	for !p.check(token.RPAREN) {
		if p.check(token.ELLIPSIS) {
			line := p.advance().Line
			arg := p.parseAssignmentExpression()
			n := &ast.SpreadExpr{Argument: arg}
			n.SetLine(line)
			args = append(args, n)
		} else {
			args = append(args, p.parseAssignmentExpression())
		}
		if !p.match(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN, "')'")
	return args
}

// tryParseCallWithTypeArguments resolves speculation point 2 (spec
// §4.2): after a callable expression, '<' may begin a call-site
// type-argument list or be the less-than operator. It commits only if
// the speculative parse ends in '>' immediately followed by '('.
func (p *Parser) tryParseCallWithTypeArguments() ([]ast.TypeExpr, []ast.Expression, bool) {
	m := p.save()
	typeArgs, ok := p.tryParseTypeArguments()
	if !ok || !p.check(token.LPAREN) {
		p.restore(m)
		return nil, nil, false
	}
	args := p.parseArguments()
	return typeArgs, args, true
}

func (p *Parser) tryParseTypeArguments() ([]ast.TypeExpr, bool) {
	if !p.check(token.LESS) {
		return nil, false
	}
	m := p.save()
	ok := true
	var types []ast.TypeExpr
	func() {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()
		p.advance() // '<'
		for !p.check(token.GREATER) {
			types = append(types, p.parseTypeExpression())
			if !p.match(token.COMMA) {
				break
			}
		}
		if !p.check(token.GREATER) {
			panic(&Error{Message: "Expected '>'", Line: p.cur().Line, Lexeme: p.cur().Lexeme})
		}
		p.advance() // '>'
	}()
	if !ok {
		p.restore(m)
		return nil, false
	}
	return types, true
}
