package parser

import "fmt"

// Error is the single fault the parser raises. Error recovery is
// deliberately absent (spec §4.2): the first mismatch between the
// expected construct and the current token aborts parsing so the
// driver can report one clean message per stage.
type Error struct {
	Message string
	Line    int
	Lexeme  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s, got %q at line %d", e.Message, e.Lexeme, e.Line)
}
