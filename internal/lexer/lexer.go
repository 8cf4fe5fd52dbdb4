// Package lexer turns source text into a token stream for the parser.
//
// # Unicode and Column Positions
//
// The lexer is UTF-8 aware. Column positions are rune counts from the
// start of the line, not byte offsets: a multi-byte identifier
// character (e.g. "Δ") counts as one column, matching how the rest of
// the toolchain reports positions.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"github.com/cwbudde/tsjs/pkg/token"
)

// identStartTable/identPartTable widen identifier classification past
// unicode.IsLetter to the Unicode ID_Start/ID_Continue properties the
// dialect's identifier grammar is meant to track (spec §4.1): letters
// plus the Other_ID_Start/Other_ID_Continue characters PropList.txt
// carries for scripts like Hebrew gershayim and some CJK marks.
var (
	identStartTable = rangetable.Merge(unicode.Letter, unicode.Nl, unicode.Other_ID_Start)
	identPartTable  = rangetable.Merge(identStartTable, unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue)
)

// Lexer scans a single source string into a flat token stream.
type Lexer struct {
	input        string
	position     int
	readPosition int
	line         int
	column       int
	ch           rune

	// templateDepths tracks, for each currently open template
	// interpolation, the brace-nesting depth reached inside it. A `{`
	// increments the top entry; a `}` either closes a nested object
	// (entry > 0) or resumes template scanning (entry == 0).
	templateDepths []int
}

// Error reports a lexical fault: an unterminated literal, an unknown
// character, or a stray ".." that never completes "...".
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string { return e.Message }

// New creates a Lexer over input, stripping a leading UTF-8 BOM if
// present.
func New(input string) *Lexer {
	if strings.HasPrefix(input, "﻿") {
		input = input[len("﻿"):]
	}
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize scans source completely and returns the token stream,
// terminated by exactly one EOF token. It returns the first lexical
// error encountered, if any, with no tokens.
func Tokenize(source string) ([]token.Token, error) {
	l := New(source)
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.position = l.readPosition
	l.readPosition += size
	l.ch = r
	l.column++
	if r == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) peekCharAt(offset int) rune {
	pos := l.readPosition
	var r rune
	for i := 0; i <= offset; i++ {
		if pos >= len(l.input) {
			return 0
		}
		var size int
		r, size = utf8.DecodeRuneInString(l.input[pos:])
		pos += size
	}
	return r
}

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || rangetable.In(ch, identStartTable)
}

func isIdentPart(ch rune) bool {
	return ch == '_' || ch == '$' || rangetable.In(ch, identPartTable)
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

// Next scans and returns the next token. Callers normally use Tokenize
// instead; Next is exported so the parser's speculative paths and
// template re-entry can drive the scanner directly if ever needed.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipTrivia(); err != nil {
		return token.Token{}, err
	}

	line, col := l.line, l.column

	if l.ch == 0 {
		return token.Token{Kind: token.EOF, Line: line, Column: col}, nil
	}

	switch {
	case isIdentStart(l.ch):
		lexeme := l.readIdentifier()
		return token.Token{Kind: token.LookupIdent(lexeme), Lexeme: lexeme, Line: line, Column: col}, nil
	case isDigit(l.ch):
		return l.readNumber(line, col)
	case l.ch == '"' || l.ch == '\'':
		return l.readString(line, col)
	case l.ch == '`':
		return l.readTemplateSegment(line, col, true)
	case l.ch == '}' && len(l.templateDepths) > 0 && l.templateDepths[len(l.templateDepths)-1] == 0:
		l.templateDepths = l.templateDepths[:len(l.templateDepths)-1]
		return l.readTemplateSegment(line, col, false)
	}

	return l.readOperator(line, col)
}

func (l *Lexer) skipTrivia() error {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			line, col := l.line, l.column
			l.readChar()
			l.readChar()
			for {
				if l.ch == 0 {
					return &Error{Message: "Unterminated block comment", Line: line, Column: col}
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					break
				}
				l.readChar()
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isIdentPart(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber(line, col int) (token.Token, error) {
	start := l.position
	if l.ch == '0' && (l.peekChar() == 'x' || l.peekChar() == 'X') {
		l.readChar()
		l.readChar()
		for isHexDigit(l.ch) {
			l.readChar()
		}
	} else if l.ch == '0' && (l.peekChar() == 'b' || l.peekChar() == 'B') {
		l.readChar()
		l.readChar()
		for l.ch == '0' || l.ch == '1' {
			l.readChar()
		}
	} else if l.ch == '0' && (l.peekChar() == 'o' || l.peekChar() == 'O') {
		l.readChar()
		l.readChar()
		for l.ch >= '0' && l.ch <= '7' {
			l.readChar()
		}
	} else {
		for isDigit(l.ch) {
			l.readChar()
		}
		if l.ch == '.' && isDigit(l.peekChar()) {
			l.readChar()
			for isDigit(l.ch) {
				l.readChar()
			}
		}
		if l.ch == 'e' || l.ch == 'E' {
			save := l.save()
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			if isDigit(l.ch) {
				for isDigit(l.ch) {
					l.readChar()
				}
			} else {
				l.restore(save)
			}
		}
	}
	if l.ch == 'n' {
		l.readChar()
	}
	return token.Token{Kind: token.NUMBER, Lexeme: l.input[start:l.position], Line: line, Column: col}, nil
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func (l *Lexer) readString(line, col int) (token.Token, error) {
	quote := l.ch
	l.readChar()
	var sb strings.Builder
	for {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{}, &Error{Message: "Unterminated string", Line: line, Column: col}
		}
		if l.ch == quote {
			l.readChar()
			break
		}
		if l.ch == '\\' {
			l.readChar()
			l.writeEscape(&sb)
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	return token.Token{Kind: token.STRING, Lexeme: sb.String(), Line: line, Column: col}, nil
}

// writeEscape decodes one backslash escape (cursor already past the
// backslash) and writes its value to sb.
func (l *Lexer) writeEscape(sb *strings.Builder) {
	switch l.ch {
	case 'n':
		sb.WriteByte('\n')
		l.readChar()
	case 't':
		sb.WriteByte('\t')
		l.readChar()
	case 'r':
		sb.WriteByte('\r')
		l.readChar()
	case '\\':
		sb.WriteByte('\\')
		l.readChar()
	case '"':
		sb.WriteByte('"')
		l.readChar()
	case '\'':
		sb.WriteByte('\'')
		l.readChar()
	case '`':
		sb.WriteByte('`')
		l.readChar()
	case '0':
		sb.WriteByte(0)
		l.readChar()
	case 'u':
		l.readChar()
		if l.ch == '{' {
			l.readChar()
			start := l.position
			for l.ch != '}' && l.ch != 0 {
				l.readChar()
			}
			hex := l.input[start:l.position]
			if l.ch == '}' {
				l.readChar()
			}
			writeHexRune(sb, hex)
		} else {
			start := l.position
			for i := 0; i < 4 && isHexDigit(l.ch); i++ {
				l.readChar()
			}
			writeHexRune(sb, l.input[start:l.position])
		}
	default:
		sb.WriteRune(l.ch)
		l.readChar()
	}
}

func writeHexRune(sb *strings.Builder, hex string) {
	var v int64
	for _, c := range hex {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v += int64(c - '0')
		case c >= 'a' && c <= 'f':
			v += int64(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v += int64(c-'A') + 10
		}
	}
	sb.WriteRune(rune(v))
}

// readTemplateSegment scans from a backtick (head == true) or from a
// resumed '}' (head == false) up to the next "${" or closing backtick.
func (l *Lexer) readTemplateSegment(line, col int, head bool) (token.Token, error) {
	l.readChar() // consume ` or }
	var sb strings.Builder
	for {
		if l.ch == 0 {
			return token.Token{}, &Error{Message: "Unterminated template literal", Line: line, Column: col}
		}
		if l.ch == '`' {
			l.readChar()
			kind := token.TEMPLATE_LITERAL
			if !head {
				kind = token.TEMPLATE_TAIL
			}
			return token.Token{Kind: kind, Lexeme: sb.String(), Line: line, Column: col}, nil
		}
		if l.ch == '$' && l.peekChar() == '{' {
			l.readChar()
			l.readChar()
			l.templateDepths = append(l.templateDepths, 0)
			kind := token.TEMPLATE_HEAD
			if !head {
				kind = token.TEMPLATE_MIDDLE
			}
			return token.Token{Kind: kind, Lexeme: sb.String(), Line: line, Column: col}, nil
		}
		if l.ch == '\\' {
			l.readChar()
			l.writeEscape(&sb)
			continue
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
}

type cursorState struct {
	position, readPosition, line, column int
	ch                                    rune
}

func (l *Lexer) save() cursorState {
	return cursorState{l.position, l.readPosition, l.line, l.column, l.ch}
}

func (l *Lexer) restore(s cursorState) {
	l.position, l.readPosition, l.line, l.column, l.ch = s.position, s.readPosition, s.line, s.column, s.ch
}

// readOperator performs maximal-munch matching of punctuation and
// operator lexemes, trying the longest sequences first.
func (l *Lexer) readOperator(line, col int) (token.Token, error) {
	ch := l.ch
	next := l.peekChar()
	next2 := l.peekCharAt(1)

	emit := func(n int, kind token.Kind) (token.Token, error) {
		start := l.position
		for i := 0; i < n; i++ {
			l.readChar()
		}
		return token.Token{Kind: kind, Lexeme: l.input[start:l.position], Line: line, Column: col}, nil
	}

	switch ch {
	case '(':
		return emit(1, token.LPAREN)
	case ')':
		return emit(1, token.RPAREN)
	case '{':
		if len(l.templateDepths) > 0 {
			l.templateDepths[len(l.templateDepths)-1]++
		}
		return emit(1, token.LBRACE)
	case '}':
		if len(l.templateDepths) > 0 {
			l.templateDepths[len(l.templateDepths)-1]--
		}
		return emit(1, token.RBRACE)
	case '[':
		return emit(1, token.LBRACKET)
	case ']':
		return emit(1, token.RBRACKET)
	case ';':
		return emit(1, token.SEMICOLON)
	case ',':
		return emit(1, token.COMMA)
	case ':':
		return emit(1, token.COLON)
	case '@':
		return emit(1, token.AT)
	case '~':
		return emit(1, token.TILDE)
	case '.':
		if next == '.' && next2 == '.' {
			return emit(3, token.ELLIPSIS)
		}
		if next == '.' {
			return token.Token{}, &Error{Message: "Unexpected '..'", Line: line, Column: col}
		}
		return emit(1, token.DOT)
	case '?':
		if next == '.' && !isDigit(next2) {
			return emit(2, token.QUESTION_DOT)
		}
		if next == '?' {
			if next2 == '=' {
				return emit(3, token.QUESTION_QUESTION_ASSIGN)
			}
			return emit(2, token.QUESTION_QUESTION)
		}
		return emit(1, token.QUESTION)
	case '=':
		if next == '=' && next2 == '=' {
			return emit(3, token.STRICT_EQ)
		}
		if next == '=' {
			return emit(2, token.EQ)
		}
		if next == '>' {
			return emit(2, token.ARROW)
		}
		return emit(1, token.ASSIGN)
	case '!':
		if next == '=' && next2 == '=' {
			return emit(3, token.STRICT_NOT_EQ)
		}
		if next == '=' {
			return emit(2, token.NOT_EQ)
		}
		return emit(1, token.BANG)
	case '+':
		if next == '+' {
			return emit(2, token.PLUS_PLUS)
		}
		if next == '=' {
			return emit(2, token.PLUS_ASSIGN)
		}
		return emit(1, token.PLUS)
	case '-':
		if next == '-' {
			return emit(2, token.MINUS_MINUS)
		}
		if next == '=' {
			return emit(2, token.MINUS_ASSIGN)
		}
		return emit(1, token.MINUS)
	case '*':
		if next == '*' {
			return emit(2, token.STAR_STAR)
		}
		if next == '=' {
			return emit(2, token.STAR_ASSIGN)
		}
		return emit(1, token.STAR)
	case '/':
		if next == '=' {
			return emit(2, token.SLASH_ASSIGN)
		}
		return emit(1, token.SLASH)
	case '%':
		if next == '=' {
			return emit(2, token.PERCENT_ASSIGN)
		}
		return emit(1, token.PERCENT)
	case '<':
		if next == '<' {
			return emit(2, token.LSHIFT)
		}
		if next == '=' {
			return emit(2, token.LESS_EQ)
		}
		return emit(1, token.LESS)
	case '>':
		if next == '>' && next2 == '>' {
			return emit(3, token.URSHIFT)
		}
		if next == '>' {
			return emit(2, token.RSHIFT)
		}
		if next == '=' {
			return emit(2, token.GREATER_EQ)
		}
		return emit(1, token.GREATER)
	case '&':
		if next == '&' {
			if next2 == '=' {
				return emit(3, token.AMP_AMP_ASSIGN)
			}
			return emit(2, token.AMP_AMP)
		}
		return emit(1, token.AMP)
	case '|':
		if next == '|' {
			if next2 == '=' {
				return emit(3, token.PIPE_PIPE_ASSIGN)
			}
			return emit(2, token.PIPE_PIPE)
		}
		return emit(1, token.PIPE)
	case '^':
		return emit(1, token.CARET)
	}

	return token.Token{}, &Error{Message: "Unexpected character '" + string(ch) + "'", Line: line, Column: col}
}
