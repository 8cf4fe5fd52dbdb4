package parser

import "github.com/cwbudde/tsjs/pkg/token"

// mark is a saved cursor position for the parser's bounded speculation
// points: arrow-vs-parenthesized, type-argument list vs. less-than
// (including the prefix type assertion), and parenthesized vs. function
// type. Conditional types are parsed without backtracking. The token
// slice itself is never mutated — only the integer offset into it.
type mark int

func (p *Parser) save() mark { return mark(p.pos) }

func (p *Parser) restore(m mark) { p.pos = int(m) }

func (p *Parser) cur() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	return p.peekAt(1)
}

func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[idx]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) check(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) match(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the current token if it has kind, otherwise aborts
// parsing with a SyntaxError naming what was expected.
func (p *Parser) expect(kind token.Kind, what string) token.Token {
	if !p.check(kind) {
		p.fail(what)
	}
	return p.advance()
}

// fail raises the single parse fault for this compilation; recovered
// by Parse.
func (p *Parser) fail(expected string) {
	t := p.cur()
	panic(&Error{Message: "Expected " + expected, Line: t.Line, Lexeme: t.Lexeme})
}
