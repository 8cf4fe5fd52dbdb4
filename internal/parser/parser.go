// Package parser implements a Pratt-style recursive-descent parser
// over the token stream produced by internal/lexer, building the tree
// vocabulary defined in internal/ast.
//
// Key patterns, carried over from the teacher compiler's parser:
//   - position tracking: every node records the line of its first token
//   - lookahead: peekAt(n) inspects tokens ahead of the cursor
//   - bounded speculation: save()/restore() snapshot an integer cursor
//     offset for the three genuinely ambiguous constructs (spec §4.2)
//   - no error recovery: the first mismatch panics a *Error, recovered
//     once at the top of Parse
package parser

import (
	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/internal/lexer"
	"github.com/cwbudde/tsjs/pkg/token"
)

// Precedence levels for the binary/logical expression ladder (spec
// §4.2), lowest to highest. Assignment, the conditional operator, and
// the postfix/call tiers are each handled by their own dedicated
// parse function rather than this table, since they have special
// associativity or aren't ordinary infix operators.
const (
	_ int = iota
	precNullish        // ?? ||
	precLogicalAnd     // &&
	precBitOr          // |
	precBitXor         // ^
	precBitAnd         // &
	precEquality       // == === != !==
	precRelational     // < > <= >= instanceof in
	precShift          // << >> >>>
	precAdditive       // + -
	precMultiplicative // * / %
	precExponent       // ** (right-assoc)
)

// binaryPrecedence covers only true infix binary/logical operators —
// the ones parseBinary's precedence-climbing loop iterates over.
var binaryPrecedence = map[token.Kind]int{
	token.QUESTION_QUESTION: precNullish, token.PIPE_PIPE: precNullish,
	token.AMP_AMP: precLogicalAnd,

	token.PIPE:  precBitOr,
	token.CARET: precBitXor,
	token.AMP:   precBitAnd,

	token.EQ: precEquality, token.NOT_EQ: precEquality,
	token.STRICT_EQ: precEquality, token.STRICT_NOT_EQ: precEquality,

	token.LESS: precRelational, token.GREATER: precRelational,
	token.LESS_EQ: precRelational, token.GREATER_EQ: precRelational,
	token.INSTANCEOF: precRelational, token.IN: precRelational,

	token.LSHIFT: precShift, token.RSHIFT: precShift, token.URSHIFT: precShift,

	token.PLUS: precAdditive, token.MINUS: precAdditive,

	token.STAR: precMultiplicative, token.SLASH: precMultiplicative, token.PERCENT: precMultiplicative,

	token.STAR_STAR: precExponent,
}

// logicalOps distinguishes the short-circuiting operators, which
// parseBinary builds as *ast.LogicalExpr instead of *ast.BinaryExpr.
var logicalOps = map[token.Kind]bool{
	token.AMP_AMP: true, token.PIPE_PIPE: true, token.QUESTION_QUESTION: true,
}

var assignOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.AMP_AMP_ASSIGN: true, token.PIPE_PIPE_ASSIGN: true, token.QUESTION_QUESTION_ASSIGN: true,
}

// Parser holds the token stream and a cursor into it. The token slice
// is owned and consumed once (spec §3 "Ownership"): after Parse
// returns, the parser is not reused.
type Parser struct {
	tokens []token.Token
	pos    int
}

func newParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes-then-parses is not this function's job: it consumes
// an already-lexed token stream and returns the program, or a *Error.
func Parse(tokens []token.Token) (prog *ast.Program, err error) {
	p := newParser(tokens)
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(*Error); ok {
				err = perr
				return
			}
			panic(r)
		}
	}()
	return p.parseProgram(), nil
}

// ParseSource is a convenience that lexes then parses source in one
// step; used by the façade and tests.
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

func (p *Parser) parseProgram() *ast.Program {
	line := p.cur().Line
	var statements []ast.Statement
	for !p.check(token.EOF) {
		statements = append(statements, p.parseStatement())
	}
	return ast.NewProgram(line, statements)
}
