package emitter

import (
	"fmt"
	"strings"

	"github.com/cwbudde/tsjs/internal/ast"
)

func (p *Printer) printStatement(stmt ast.Statement) {
	switch n := stmt.(type) {
	case *ast.VarStatement:
		p.printVarStatement(n)
	case *ast.FunctionDecl:
		p.printFunctionDecl(n)
	case *ast.ClassDecl:
		p.printClassDecl(n)
	case *ast.InterfaceDecl:
		p.line(fmt.Sprintf("// interface %s removed", n.Name))
	case *ast.TypeAliasDecl:
		p.line(fmt.Sprintf("// type %s removed", n.Name))
	case *ast.EnumDecl:
		p.printEnumDecl(n)
	case *ast.ReturnStatement:
		if n.Value == nil {
			p.line("return;")
		} else {
			p.line("return " + p.expr(n.Value) + ";")
		}
	case *ast.ExpressionStatement:
		p.line(p.expr(n.Expr) + ";")
	case *ast.BlockStatement:
		p.line("{")
		p.printBlockBody(n)
		p.line("}")
	case *ast.IfStatement:
		p.printIfStatement(n, true)
	case *ast.WhileStatement:
		p.writeIndent()
		p.buf.WriteString("while (" + p.expr(n.Cond) + ") {\n")
		p.printBodyAsBlock(n.Body)
		p.line("}")
	case *ast.DoWhileStatement:
		p.line("do {")
		p.printBodyAsBlock(n.Body)
		p.writeIndent()
		p.buf.WriteString("} while (" + p.expr(n.Cond) + ");\n")
	case *ast.ForStatement:
		p.printForStatement(n)
	case *ast.ForOfStatement:
		kw := varKeyword(n.Kind)
		p.writeIndent()
		p.buf.WriteString(fmt.Sprintf("for (%s %s of %s) {\n", kw, n.VarName, p.expr(n.Iterable)))
		p.printBodyAsBlock(n.Body)
		p.line("}")
	case *ast.ForInStatement:
		kw := varKeyword(n.Kind)
		p.writeIndent()
		p.buf.WriteString(fmt.Sprintf("for (%s %s in %s) {\n", kw, n.VarName, p.expr(n.Object)))
		p.printBodyAsBlock(n.Body)
		p.line("}")
	case *ast.BreakStatement:
		if n.Label != "" {
			p.line("break " + n.Label + ";")
		} else {
			p.line("break;")
		}
	case *ast.ContinueStatement:
		if n.Label != "" {
			p.line("continue " + n.Label + ";")
		} else {
			p.line("continue;")
		}
	case *ast.ThrowStatement:
		p.line("throw " + p.expr(n.Value) + ";")
	case *ast.TryStatement:
		p.printTryStatement(n)
	case *ast.SwitchStatement:
		p.printSwitchStatement(n)
	case *ast.ImportStatement:
		p.line(renderImport(n))
	case *ast.ExportStatement:
		p.printExportStatement(n)
	case *ast.EmptyStatement:
		// nothing to emit for an empty statement.
	}
}

// printBodyAsBlock renders a statement used as a loop/if body as a
// block's contents, whether or not it was written with braces in the
// source — a bare statement body is wrapped the same as a block one.
func (p *Printer) printBodyAsBlock(body ast.Statement) {
	if block, ok := body.(*ast.BlockStatement); ok {
		p.printBlockBody(block)
		return
	}
	p.indent++
	p.printStatement(body)
	p.indent--
}

func varKeyword(k ast.VarKind) string {
	switch k {
	case ast.VarConst:
		return "const"
	case ast.VarLet:
		return "let"
	}
	return "var"
}

func (p *Printer) printVarStatement(n *ast.VarStatement) {
	kw := varKeyword(n.Kind)
	parts := make([]string, len(n.Declarators))
	for i, d := range n.Declarators {
		if d.Init != nil {
			parts[i] = d.Name + " = " + p.expr(d.Init)
		} else {
			parts[i] = d.Name
		}
	}
	p.line(kw + " " + strings.Join(parts, ", ") + ";")
}

func (p *Printer) printParamList(params []*ast.Param) string {
	parts := make([]string, len(params))
	for i, param := range params {
		name := param.Name
		if param.Rest {
			name = "..." + name
		}
		if param.Default != nil {
			name += " = " + p.expr(param.Default)
		}
		parts[i] = name
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) printDecorators(decorators []ast.Expression) {
	for _, d := range decorators {
		p.line("@" + p.expr(d))
	}
}

func (p *Printer) printFunctionDecl(n *ast.FunctionDecl) {
	p.printDecorators(n.Decorators)
	async := ""
	if n.IsAsync {
		async = "async "
	}
	p.writeIndent()
	p.buf.WriteString(fmt.Sprintf("%sfunction %s(%s) {\n", async, n.Name, p.printParamList(n.Params)))
	p.printBlockBody(n.Body)
	p.line("}")
}

func (p *Printer) printClassDecl(n *ast.ClassDecl) {
	p.printDecorators(n.Decorators)
	header := "class " + n.Name
	if n.SuperClass != nil {
		header += " extends " + typeRefName(n.SuperClass)
	}
	// `implements` is type-only surface (spec §4.4) and is erased.
	p.writeIndent()
	p.buf.WriteString(header + " {\n")
	p.indent++
	for _, m := range n.Members {
		p.printClassMember(m)
	}
	p.indent--
	p.line("}")
}

func (p *Printer) printClassMember(m *ast.ClassMember) {
	p.printDecorators(m.Decorators)
	if m.IsAbstract || (m.IsMethod && m.Body == nil) {
		p.line(fmt.Sprintf("// abstract %s(%s)", m.Name, p.printParamList(m.Params)))
		return
	}
	prefix := ""
	if m.IsStatic {
		prefix += "static "
	}
	if m.IsMethod {
		if m.IsGetter {
			prefix += "get "
		} else if m.IsSetter {
			prefix += "set "
		}
		p.writeIndent()
		p.buf.WriteString(fmt.Sprintf("%s%s(%s) {\n", prefix, m.Name, p.printParamList(m.Params)))
		p.printBlockBody(m.Body)
		p.line("}")
		return
	}
	// readonly/access modifiers are type-only surface and are erased.
	if m.Init != nil {
		p.line(fmt.Sprintf("%s%s = %s;", prefix, m.Name, p.expr(m.Init)))
	} else {
		p.line(fmt.Sprintf("%s%s;", prefix, m.Name))
	}
}

// typeRefName extracts the bare name from a type expression used only
// in an erasure-surviving position (a class's extends clause, whose
// runtime value is the superclass constructor reference).
func typeRefName(t ast.TypeExpr) string {
	if ref, ok := t.(*ast.TypeReference); ok {
		return ref.Name
	}
	return ""
}

func (p *Printer) printIfStatement(n *ast.IfStatement, withIndent bool) {
	if withIndent {
		p.writeIndent()
	}
	p.buf.WriteString("if (" + p.expr(n.Cond) + ") {\n")
	p.printBodyAsBlock(n.Then)
	p.writeIndent()
	p.buf.WriteString("}")
	switch els := n.Else.(type) {
	case nil:
		p.buf.WriteString("\n")
	case *ast.IfStatement:
		// else-if chains are flattened: no nested block, just continue
		// the chain on the same line (spec §4.4).
		p.buf.WriteString(" else ")
		p.printIfStatement(els, false)
	default:
		p.buf.WriteString(" else {\n")
		p.printBodyAsBlock(n.Else)
		p.line("}")
	}
}

func (p *Printer) printForStatement(n *ast.ForStatement) {
	p.writeIndent()
	p.buf.WriteString("for (")
	if n.Init != nil {
		p.buf.WriteString(p.forClausePart(n.Init))
	}
	p.buf.WriteString("; ")
	if n.Cond != nil {
		p.buf.WriteString(p.expr(n.Cond))
	}
	p.buf.WriteString("; ")
	if n.Update != nil {
		p.buf.WriteString(p.expr(n.Update))
	}
	p.buf.WriteString(") {\n")
	p.printBodyAsBlock(n.Body)
	p.line("}")
}

// forClausePart renders a for-loop's init clause without its trailing
// semicolon or newline, unlike printStatement's usual whole-line form.
func (p *Printer) forClausePart(stmt ast.Statement) string {
	switch n := stmt.(type) {
	case *ast.VarStatement:
		kw := varKeyword(n.Kind)
		parts := make([]string, len(n.Declarators))
		for i, d := range n.Declarators {
			if d.Init != nil {
				parts[i] = d.Name + " = " + p.expr(d.Init)
			} else {
				parts[i] = d.Name
			}
		}
		return kw + " " + strings.Join(parts, ", ")
	case *ast.ExpressionStatement:
		return p.expr(n.Expr)
	}
	return ""
}

func (p *Printer) printTryStatement(n *ast.TryStatement) {
	p.line("try {")
	p.printBlockBody(n.Block)
	if n.CatchBlock != nil {
		p.writeIndent()
		if n.CatchParam != "" {
			p.buf.WriteString("} catch (" + n.CatchParam + ") {\n")
		} else {
			p.buf.WriteString("} catch {\n")
		}
		p.printBlockBody(n.CatchBlock)
	}
	if n.FinallyBlock != nil {
		p.writeIndent()
		p.buf.WriteString("} finally {\n")
		p.printBlockBody(n.FinallyBlock)
	}
	p.line("}")
}

func (p *Printer) printSwitchStatement(n *ast.SwitchStatement) {
	p.writeIndent()
	p.buf.WriteString("switch (" + p.expr(n.Discriminant) + ") {\n")
	p.indent++
	for _, kase := range n.Cases {
		p.writeIndent()
		if kase.Test != nil {
			p.buf.WriteString("case " + p.expr(kase.Test) + ":\n")
		} else {
			p.buf.WriteString("default:\n")
		}
		p.indent++
		for _, s := range kase.Body {
			p.printStatement(s)
		}
		p.indent--
	}
	p.indent--
	p.line("}")
}

func renderImport(n *ast.ImportStatement) string {
	var names []string
	if n.Default != "" {
		names = append(names, n.Default)
	}
	if n.Namespace != "" {
		names = append(names, "* as "+n.Namespace)
	}
	if len(n.Specifiers) > 0 {
		var specs []string
		for _, s := range n.Specifiers {
			if s.Alias != "" {
				specs = append(specs, s.Name+" as "+s.Alias)
			} else {
				specs = append(specs, s.Name)
			}
		}
		names = append(names, "{ "+strings.Join(specs, ", ")+" }")
	}
	if len(names) == 0 {
		return fmt.Sprintf("import %q;", n.Source)
	}
	return fmt.Sprintf("import %s from %q;", strings.Join(names, ", "), n.Source)
}

func (p *Printer) printExportStatement(n *ast.ExportStatement) {
	if n.DefaultExpr != nil {
		p.line("export default " + p.expr(n.DefaultExpr) + ";")
		return
	}
	if n.Decl != nil {
		p.writeIndent()
		p.buf.WriteString("export ")
		// printStatement writes its own indent; temporarily zero it so
		// the "export " prefix and the declaration share one line.
		saved := p.indent
		p.indent = 0
		p.printStatement(n.Decl)
		p.indent = saved
		return
	}
	var specs []string
	for _, s := range n.Specifiers {
		if s.Alias != "" {
			specs = append(specs, s.Name+" as "+s.Alias)
		} else {
			specs = append(specs, s.Name)
		}
	}
	if n.Source != "" {
		p.line(fmt.Sprintf("export { %s } from %q;", strings.Join(specs, ", "), n.Source))
	} else {
		p.line(fmt.Sprintf("export { %s };", strings.Join(specs, ", ")))
	}
}
