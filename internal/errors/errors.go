// Package errors renders compiler diagnostics into the CLI/façade's
// plain-text report format. It is a trimmed sibling of the teacher
// compiler's errors package: no ANSI color, no caret indicator, no
// multi-line context window, since the dialect's diagnostics carry
// only a line number, not a column.
package errors

import (
	"fmt"
	"strings"
)

// Diagnostic is the façade-level error shape shared by lex/parse
// faults (always line 1, per the propagation policy) and checker
// diagnostics (one per accumulated type error).
type Diagnostic struct {
	Line    int
	Message string
}

// FormatErrors renders each diagnostic as "Error (line N): <message>",
// followed by "  N | <source line N>" when source is supplied and the
// line is in range.
func FormatErrors(diags []Diagnostic, source string) string {
	var lines []string
	if source != "" {
		lines = strings.Split(source, "\n")
	}
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(fmt.Sprintf("Error (line %d): %s\n", d.Line, d.Message))
		if d.Line >= 1 && d.Line <= len(lines) {
			b.WriteString(fmt.Sprintf("  %d | %s\n", d.Line, lines[d.Line-1]))
		}
	}
	return b.String()
}
