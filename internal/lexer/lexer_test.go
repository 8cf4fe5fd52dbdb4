package lexer

import (
	"testing"

	"github.com/cwbudde/tsjs/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `let x: number = 5;
x = x + 10;`

	tests := []struct {
		expectedLexeme string
		expectedKind   token.Kind
	}{
		{"let", token.LET},
		{"x", token.IDENT},
		{":", token.COLON},
		{"number", token.NUMBER_TYPE},
		{"=", token.ASSIGN},
		{"5", token.NUMBER},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.NUMBER},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, tt := range tests {
		tok := tokens[i]
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v (lexeme=%q)", i, tt.expectedKind, tok.Kind, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestMultiCharOperators(t *testing.T) {
	input := `=== !== ** >>> ?. ?? => ... < <= >>`
	expected := []token.Kind{
		token.STRICT_EQ, token.STRICT_NOT_EQ, token.STAR_STAR, token.URSHIFT,
		token.QUESTION_DOT, token.QUESTION_QUESTION, token.ARROW, token.ELLIPSIS,
		token.LESS, token.LESS_EQ, token.RSHIFT, token.EOF,
	}
	tokens, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(expected), len(tokens), tokens)
	}
	for i, k := range expected {
		if tokens[i].Kind != k {
			t.Fatalf("token %d: expected %v got %v", i, k, tokens[i].Kind)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"a\nb\tcA\u{1F600}"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := tokens[0].Lexeme
	want := "a\nb\tcA😀"
	if got != want {
		t.Fatalf("expected %q got %q", want, got)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := Tokenize("\"abc")
	if err == nil {
		t.Fatalf("expected an unterminated string error")
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	_, err := Tokenize("/* comment")
	if err == nil {
		t.Fatalf("expected an unterminated block comment error")
	}
}

func TestTemplateLiteralNoInterpolation(t *testing.T) {
	tokens, err := Tokenize("`hello world`")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != token.TEMPLATE_LITERAL || tokens[0].Lexeme != "hello world" {
		t.Fatalf("unexpected token: %+v", tokens[0])
	}
}

func TestTemplateLiteralWithInterpolation(t *testing.T) {
	tokens, err := Tokenize("`a${x}b${y}c`")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	expected := []token.Kind{
		token.TEMPLATE_HEAD, token.IDENT, token.TEMPLATE_MIDDLE, token.IDENT, token.TEMPLATE_TAIL, token.EOF,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("expected %v got %v", expected, kinds)
	}
	for i, k := range expected {
		if kinds[i] != k {
			t.Fatalf("position %d: expected %v got %v", i, k, kinds[i])
		}
	}
}

func TestTemplateLiteralWithNestedObject(t *testing.T) {
	// the interpolation contains an object literal, which must not be
	// mistaken for the closing brace of the interpolation itself.
	tokens, err := Tokenize("`v=${ {a: 1}.a }`")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens[0].Kind != token.TEMPLATE_HEAD {
		t.Fatalf("expected TEMPLATE_HEAD, got %v", tokens[0].Kind)
	}
	last := tokens[len(tokens)-2]
	if last.Kind != token.TEMPLATE_TAIL {
		t.Fatalf("expected TEMPLATE_TAIL before EOF, got %v", last.Kind)
	}
}

func TestNumericBases(t *testing.T) {
	tests := []string{"0xFF", "0b1010", "0o17", "1.5e10", "42n", "3.14"}
	for _, src := range tests {
		tokens, err := Tokenize(src)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", src, err)
		}
		if tokens[0].Kind != token.NUMBER || tokens[0].Lexeme != src {
			t.Fatalf("%q: unexpected token %+v", src, tokens[0])
		}
	}
}

func TestStrayEllipsis(t *testing.T) {
	_, err := Tokenize("a..b")
	if err == nil {
		t.Fatalf("expected an error for a stray '..'")
	}
}

func TestUnknownCharacter(t *testing.T) {
	_, err := Tokenize("let x = #5;")
	if err == nil {
		t.Fatalf("expected an error for an unknown character")
	}
}

func TestTerminatesWithSingleEOF(t *testing.T) {
	tokens, err := Tokenize("let x = 1;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	eofCount := 0
	for i, tok := range tokens {
		if tok.Kind == token.EOF {
			eofCount++
			if i != len(tokens)-1 {
				t.Fatalf("EOF token must be last")
			}
		}
	}
	if eofCount != 1 {
		t.Fatalf("expected exactly one EOF token, got %d", eofCount)
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	tokens, err := Tokenize("let x = 1;\nlet y = 2;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// find the second "let"
	count := 0
	for _, tok := range tokens {
		if tok.Kind == token.LET {
			count++
			if count == 2 && tok.Line != 2 {
				t.Fatalf("expected second 'let' on line 2, got %d", tok.Line)
			}
		}
	}
}
