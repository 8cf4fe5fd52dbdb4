package emitter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/pkg/token"
)

// binaryLexeme maps an operator token back to its source spelling;
// token.Kind.String() is meant for diagnostics ("'+'") rather than
// printing, so the emitter keeps its own table.
var binaryLexeme = map[token.Kind]string{
	token.PLUS: "+", token.MINUS: "-", token.STAR: "*", token.STAR_STAR: "**",
	token.SLASH: "/", token.PERCENT: "%",
	token.AMP: "&", token.PIPE: "|", token.CARET: "^",
	token.LSHIFT: "<<", token.RSHIFT: ">>", token.URSHIFT: ">>>",
	token.LESS: "<", token.GREATER: ">", token.LESS_EQ: "<=", token.GREATER_EQ: ">=",
	token.EQ: "==", token.NOT_EQ: "!=", token.STRICT_EQ: "===", token.STRICT_NOT_EQ: "!==",
	token.AMP_AMP: "&&", token.PIPE_PIPE: "||", token.QUESTION_QUESTION: "??",
	token.INSTANCEOF: "instanceof", token.IN: "in",
}

var assignLexeme = map[token.Kind]string{
	token.ASSIGN: "=", token.PLUS_ASSIGN: "+=", token.MINUS_ASSIGN: "-=",
	token.STAR_ASSIGN: "*=", token.SLASH_ASSIGN: "/=", token.PERCENT_ASSIGN: "%=",
	token.AMP_AMP_ASSIGN: "&&=", token.PIPE_PIPE_ASSIGN: "||=",
	token.QUESTION_QUESTION_ASSIGN: "??=",
}

var unaryLexeme = map[token.Kind]string{
	token.BANG: "!", token.MINUS: "-", token.PLUS: "+", token.TILDE: "~",
	token.TYPEOF: "typeof ", token.DELETE: "delete ", token.AWAIT: "await ",
}

// expr renders a single expression; it never emits a trailing newline,
// unlike the statement printers.
func (p *Printer) expr(e ast.Expression) string {
	if e == nil {
		return ""
	}
	switch n := e.(type) {
	case *ast.NumericLiteral:
		return n.Value
	case *ast.StringLiteral:
		return strconv.Quote(n.Value)
	case *ast.BooleanLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *ast.NullLiteral:
		return "null"
	case *ast.UndefinedLiteral:
		return "undefined"
	case *ast.Identifier:
		return n.Name
	case *ast.ThisExpr:
		return "this"
	case *ast.SuperExpr:
		return "super"
	case *ast.BinaryExpr:
		return p.expr(n.Left) + " " + binaryLexeme[n.Op] + " " + p.expr(n.Right)
	case *ast.LogicalExpr:
		return p.expr(n.Left) + " " + binaryLexeme[n.Op] + " " + p.expr(n.Right)
	case *ast.UnaryExpr:
		return unaryLexeme[n.Op] + p.expr(n.Operand)
	case *ast.UpdateExpr:
		op := "++"
		if n.Op == token.MINUS_MINUS {
			op = "--"
		}
		if n.Prefix {
			return op + p.expr(n.Operand)
		}
		return p.expr(n.Operand) + op
	case *ast.ConditionalExpr:
		return p.expr(n.Test) + " ? " + p.expr(n.Consequent) + " : " + p.expr(n.Alternate)
	case *ast.AssignmentExpr:
		return p.expr(n.Target) + " " + assignLexeme[n.Op] + " " + p.expr(n.Value)
	case *ast.CallExpr:
		return p.printCallTail(n)
	case *ast.NewExpr:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = p.expr(a)
		}
		return "new " + p.expr(n.Callee) + "(" + strings.Join(args, ", ") + ")"
	case *ast.MemberExpr:
		dot := "."
		if n.Optional {
			dot = "?."
		}
		return p.expr(n.Object) + dot + n.Property
	case *ast.ComputedMemberExpr:
		bracket := "["
		if n.Optional {
			bracket = "?.["
		}
		return p.expr(n.Object) + bracket + p.expr(n.Property) + "]"
	case *ast.ObjectLiteral:
		return p.printObjectLiteral(n)
	case *ast.ArrayLiteral:
		elems := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			elems[i] = p.expr(el)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case *ast.ArrowFunctionExpr:
		return p.printArrowFunction(n)
	case *ast.FunctionExpr:
		return p.printFunctionExpr(n)
	case *ast.SpreadExpr:
		return "..." + p.expr(n.Argument)
	case *ast.AwaitExpr:
		return "await " + p.expr(n.Argument)
	case *ast.YieldExpr:
		if n.Delegate {
			if n.Argument != nil {
				return "yield* " + p.expr(n.Argument)
			}
			return "yield*"
		}
		if n.Argument != nil {
			return "yield " + p.expr(n.Argument)
		}
		return "yield"
	case *ast.TemplateLiteralExpr:
		return p.printTemplateLiteral(n)
	case *ast.TaggedTemplateExpr:
		return p.expr(n.Tag) + p.printTemplateLiteral(n.Quasi)
	case *ast.TypeAssertionExpr:
		// prefix "<T>expr": erases to the inner expression verbatim.
		return p.expr(n.Expr)
	case *ast.AsExpr:
		// "expr as T": erases to the inner expression verbatim.
		return p.expr(n.Expr)
	case *ast.NonNullExpr:
		return p.expr(n.Expr)
	case *ast.ClassExpr:
		return p.printClassExpr(n)
	case *ast.ParenthesizedExpr:
		return "(" + p.expr(n.Inner) + ")"
	}
	return ""
}

func (p *Printer) printCallTail(n *ast.CallExpr) string {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = p.expr(a)
	}
	call := "("
	if n.Optional {
		call = "?.("
	}
	return p.expr(n.Callee) + call + strings.Join(args, ", ") + ")"
}

func (p *Printer) printObjectLiteral(n *ast.ObjectLiteral) string {
	parts := make([]string, len(n.Properties))
	for i, prop := range n.Properties {
		switch {
		case prop.Spread:
			parts[i] = "..." + p.expr(prop.Value)
		case prop.Computed:
			parts[i] = "[" + p.expr(prop.KeyExpr) + "]: " + p.expr(prop.Value)
		case prop.Shorthand:
			parts[i] = prop.Key
		default:
			parts[i] = prop.Key + ": " + p.expr(prop.Value)
		}
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (p *Printer) printTemplateLiteral(n *ast.TemplateLiteralExpr) string {
	var b strings.Builder
	b.WriteByte('`')
	for i, q := range n.Quasis {
		b.WriteString(q)
		if i < len(n.Expressions) {
			b.WriteString("${" + p.expr(n.Expressions[i]) + "}")
		}
	}
	b.WriteByte('`')
	return b.String()
}

// subPrinter renders a nested block/class body into its own buffer at
// the same indent level, so an expression-position function/class
// literal can embed multi-line output without disturbing the
// enclosing statement's in-progress line.
func (p *Printer) subPrinter() *Printer {
	return &Printer{opts: p.opts, indent: p.indent}
}

func (p *Printer) printArrowFunction(n *ast.ArrowFunctionExpr) string {
	async := ""
	if n.IsAsync {
		async = "async "
	}
	head := fmt.Sprintf("%s(%s) => ", async, p.printParamList(n.Params))
	switch body := n.Body.(type) {
	case *ast.BlockStatement:
		sub := p.subPrinter()
		sub.printBlockBody(body)
		return head + "{\n" + sub.buf.String() + strings.Repeat(" ", p.indent*p.opts.IndentWidth) + "}"
	case ast.Expression:
		return head + p.expr(body)
	}
	return head + "{}"
}

func (p *Printer) printFunctionExpr(n *ast.FunctionExpr) string {
	async := ""
	if n.IsAsync {
		async = "async "
	}
	sub := p.subPrinter()
	sub.printBlockBody(n.Body)
	head := fmt.Sprintf("%sfunction %s(%s) {\n", async, n.Name, p.printParamList(n.Params))
	return head + sub.buf.String() + strings.Repeat(" ", p.indent*p.opts.IndentWidth) + "}"
}

func (p *Printer) printClassExpr(n *ast.ClassExpr) string {
	header := "class"
	if n.Name != "" {
		header += " " + n.Name
	}
	if n.SuperClass != nil {
		header += " extends " + typeRefName(n.SuperClass)
	}
	sub := p.subPrinter()
	sub.indent++
	for _, m := range n.Members {
		sub.printClassMember(m)
	}
	sub.indent--
	return header + " {\n" + sub.buf.String() + strings.Repeat(" ", p.indent*p.opts.IndentWidth) + "}"
}
