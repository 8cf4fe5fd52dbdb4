package checker

import "fmt"

// Diagnostic is one checker-reported type error. Unlike a lexical or
// syntax fault, diagnostics accumulate — the checker keeps walking
// after reporting one (spec §7).
type Diagnostic struct {
	Message string
	Line    int
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}
