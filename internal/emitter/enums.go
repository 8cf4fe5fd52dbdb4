package emitter

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/tsjs/internal/ast"
)

// printEnumDecl lowers a regular enum to a declaration plus an IIFE
// that populates both directions of the value map; a const enum is
// lowered to a single removal comment (spec §4.4, §9 open question 2).
func (p *Printer) printEnumDecl(n *ast.EnumDecl) {
	if n.IsConst {
		p.line(fmt.Sprintf("// const enum %s - inlined", n.Name))
		return
	}
	p.line(fmt.Sprintf("var %s;", n.Name))
	p.writeIndent()
	p.buf.WriteString(fmt.Sprintf("(function (%s) {\n", n.Name))
	p.indent++
	next := 0
	for _, m := range n.Members {
		switch init := m.Init.(type) {
		case nil:
			p.line(fmt.Sprintf("%s[%s[%q] = %d] = %q;", n.Name, n.Name, m.Name, next, m.Name))
			next++
		case *ast.StringLiteral:
			p.line(fmt.Sprintf("%s[%q] = %s;", n.Name, m.Name, p.expr(init)))
		case *ast.NumericLiteral:
			p.line(fmt.Sprintf("%s[%s[%q] = %s] = %q;", n.Name, n.Name, m.Name, init.Value, m.Name))
			if v, err := strconv.Atoi(init.Value); err == nil {
				next = v + 1
			}
		default:
			// Non-literal initializer: emitted verbatim as the value,
			// still a two-way assignment since only string literals get
			// the one-way form (spec §4.4).
			p.line(fmt.Sprintf("%s[%s[%q] = %s] = %q;", n.Name, n.Name, m.Name, p.expr(init), m.Name))
		}
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteString(fmt.Sprintf("})(%s || (%s = {}));\n", n.Name, n.Name))
}
