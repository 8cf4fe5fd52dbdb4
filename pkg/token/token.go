// Package token defines the lexical token vocabulary shared by the
// lexer, parser, checker, and emitter.
package token

// Kind identifies the lexical category of a Token. The set is closed:
// every accepted character sequence maps to exactly one Kind.
type Kind int

const (
	ILLEGAL Kind = iota
	EOF

	// Identifiers and literals.
	IDENT
	NUMBER
	STRING
	TEMPLATE_LITERAL // no interpolation: `hello`
	TEMPLATE_HEAD    // `hello ${
	TEMPLATE_MIDDLE  // } world ${
	TEMPLATE_TAIL    // } bye`

	literalEnd

	// Keywords — scripting-language core.
	VAR
	LET
	CONST
	FUNCTION
	RETURN
	IF
	ELSE
	WHILE
	DO
	FOR
	BREAK
	CONTINUE
	SWITCH
	CASE
	DEFAULT
	THROW
	TRY
	CATCH
	FINALLY
	NEW
	DELETE
	TYPEOF
	INSTANCEOF
	IN
	OF
	THIS
	SUPER
	CLASS
	EXTENDS
	IMPLEMENTS_KW
	STATIC
	GET
	SET
	IMPORT
	EXPORT
	FROM
	AS
	AWAIT
	ASYNC
	YIELD
	TRUE
	FALSE
	NULL
	UNDEFINED
	VOID_KW

	// Keywords — type-system surface.
	INTERFACE
	TYPE
	ENUM
	NAMESPACE
	DECLARE
	READONLY
	ABSTRACT
	KEYOF
	INFER
	PUBLIC_KW
	PRIVATE_KW
	PROTECTED_KW

	// Keywords — type names.
	NUMBER_TYPE
	STRING_TYPE
	BOOLEAN_TYPE
	VOID_TYPE
	NULL_TYPE
	UNDEFINED_TYPE
	ANY_TYPE
	UNKNOWN_TYPE
	NEVER_TYPE
	OBJECT_TYPE
	SYMBOL_TYPE
	BIGINT_TYPE

	keywordEnd

	// Punctuation and operators.
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	SEMICOLON // ;
	COMMA     // ,
	COLON     // :
	QUESTION  // ?
	DOT       // .
	ELLIPSIS  // ...
	AT        // @

	ASSIGN       // =
	PLUS         // +
	MINUS        // -
	STAR         // *
	STAR_STAR    // **
	SLASH        // /
	PERCENT      // %
	BANG         // !
	TILDE        // ~
	AMP          // &
	PIPE         // |
	CARET        // ^
	LSHIFT       // <<
	RSHIFT       // >>
	URSHIFT      // >>>
	LESS         // <
	GREATER      // >
	LESS_EQ      // <=
	GREATER_EQ   // >=
	EQ           // ==
	NOT_EQ       // !=
	STRICT_EQ    // ===
	STRICT_NOT_EQ // !==
	AMP_AMP      // &&
	PIPE_PIPE    // ||
	QUESTION_QUESTION // ??
	QUESTION_DOT // ?.
	ARROW        // =>
	PLUS_PLUS    // ++
	MINUS_MINUS  // --

	PLUS_ASSIGN    // +=
	MINUS_ASSIGN   // -=
	STAR_ASSIGN    // *=
	SLASH_ASSIGN   // /=
	PERCENT_ASSIGN // %=
	AMP_AMP_ASSIGN // &&=
	PIPE_PIPE_ASSIGN // ||=
	QUESTION_QUESTION_ASSIGN // ??=

	BANG_DOT // non-null assertion operator, printed as "!"
)

// keywords maps reserved-word lexemes to their Kind. Written as a
// single map literal so the table reads as ordinary literal data
// rather than scattered assignments.
var keywords = map[string]Kind{
	"var": VAR, "let": LET, "const": CONST, "function": FUNCTION,
	"return": RETURN, "if": IF, "else": ELSE, "while": WHILE, "do": DO,
	"for": FOR, "break": BREAK, "continue": CONTINUE, "switch": SWITCH,
	"case": CASE, "default": DEFAULT, "throw": THROW, "try": TRY,
	"catch": CATCH, "finally": FINALLY, "new": NEW, "delete": DELETE,
	"typeof": TYPEOF, "instanceof": INSTANCEOF, "in": IN, "of": OF,
	"this": THIS, "super": SUPER, "class": CLASS, "extends": EXTENDS,
	"implements": IMPLEMENTS_KW, "static": STATIC, "get": GET, "set": SET,
	"import": IMPORT, "export": EXPORT, "from": FROM, "as": AS,
	"await": AWAIT, "async": ASYNC, "yield": YIELD, "true": TRUE,
	"false": FALSE, "null": NULL, "undefined": UNDEFINED, "void": VOID_KW,

	"interface": INTERFACE, "type": TYPE, "enum": ENUM,
	"namespace": NAMESPACE, "declare": DECLARE, "readonly": READONLY,
	"abstract": ABSTRACT, "keyof": KEYOF, "infer": INFER,
	"public": PUBLIC_KW, "private": PRIVATE_KW, "protected": PROTECTED_KW,

	"number": NUMBER_TYPE, "string": STRING_TYPE, "boolean": BOOLEAN_TYPE,
	"object": OBJECT_TYPE, "symbol": SYMBOL_TYPE, "bigint": BIGINT_TYPE,
	"any": ANY_TYPE, "unknown": UNKNOWN_TYPE, "never": NEVER_TYPE,
}

// LookupIdent classifies an identifier lexeme, returning its keyword
// Kind if reserved, otherwise IDENT.
func LookupIdent(lexeme string) Kind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	return IDENT
}

// IsTypeKeyword reports whether kind names a built-in primitive type.
func IsTypeKeyword(kind Kind) bool {
	switch kind {
	case NUMBER_TYPE, STRING_TYPE, BOOLEAN_TYPE, VOID_TYPE, NULL_TYPE,
		UNDEFINED_TYPE, ANY_TYPE, UNKNOWN_TYPE, NEVER_TYPE, OBJECT_TYPE,
		SYMBOL_TYPE, BIGINT_TYPE:
		return true
	}
	return false
}

// Position is a 1-indexed source location.
type Position struct {
	Line   int
	Column int
}

// Token is a single lexical unit: its kind, original lexeme, and the
// position where it starts.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
	Column int
}

func (t Token) Pos() Position { return Position{Line: t.Line, Column: t.Column} }

// names holds the human-readable spelling used in diagnostics.
var names = map[Kind]string{
	ILLEGAL: "illegal", EOF: "end of file", IDENT: "identifier",
	NUMBER: "number", STRING: "string",
	TEMPLATE_LITERAL: "template literal", TEMPLATE_HEAD: "template head",
	TEMPLATE_MIDDLE: "template middle", TEMPLATE_TAIL: "template tail",
	LPAREN: "'('", RPAREN: "')'", LBRACE: "'{'", RBRACE: "'}'",
	LBRACKET: "'['", RBRACKET: "']'", SEMICOLON: "';'", COMMA: "','",
	COLON: "':'", QUESTION: "'?'", DOT: "'.'", ELLIPSIS: "'...'", AT: "'@'",
	ASSIGN: "'='", ARROW: "'=>'",
}

// String returns a human-readable name for kind, used in diagnostics.
func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	for lit, kind := range keywords {
		if kind == k {
			return "'" + lit + "'"
		}
	}
	return "token"
}
