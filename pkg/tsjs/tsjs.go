// Package tsjs is the compiler's one exported entry point (spec §6):
// compile() never throws, returning a structured result instead, and
// formatErrors() renders diagnostics to text. Everything else in the
// module — lexer, parser, checker, emitter — is internal.
package tsjs

import (
	"encoding/json"

	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/tsjs/internal/ast"
	"github.com/cwbudde/tsjs/internal/checker"
	"github.com/cwbudde/tsjs/internal/emitter"
	cerrors "github.com/cwbudde/tsjs/internal/errors"
	"github.com/cwbudde/tsjs/internal/lexer"
	"github.com/cwbudde/tsjs/internal/parser"
	"github.com/cwbudde/tsjs/pkg/token"
)

// Diagnostic is the façade's public error shape, re-exported from
// internal/errors so callers never need to import an internal package.
type Diagnostic = cerrors.Diagnostic

// Options controls an individual Compile call (spec §6).
type Options struct {
	SkipTypeCheck bool
	IncludeAST    bool
	IncludeTokens bool
}

// Result is compile()'s return value: `output`/`ast`/`tokens` are
// present only when the corresponding condition/option holds, mirroring
// the optional-field JS object the spec describes.
type Result struct {
	Success bool
	Output  string
	Errors  []Diagnostic
	AST     string // JSON-encoded internal/ast.Program, when IncludeAST is set
	Tokens  string // JSON-encoded []token.Token, when IncludeTokens is set
}

// Compile lexes, parses, optionally type-checks, and emits source.
// It never panics out to the caller: a lex or parse fault is lowered
// to a single line-1 diagnostic (spec §7's known fidelity loss), and
// checker diagnostics are returned in the order the checker produced
// them.
func Compile(source string, opts Options) Result {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return Result{Errors: []Diagnostic{{Line: 1, Message: lexErr.Error()}}}
	}

	var tokensJSON string
	if opts.IncludeTokens {
		tokensJSON = encodeTokens(tokens)
	}

	program, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		return Result{
			Errors: []Diagnostic{{Line: 1, Message: parseErr.Error()}},
			Tokens: tokensJSON,
		}
	}

	var astJSON string
	if opts.IncludeAST {
		astJSON = encodeAST(program)
	}

	if !opts.SkipTypeCheck {
		if diags := checker.Check(program); len(diags) > 0 {
			return Result{
				Errors: convertDiagnostics(diags),
				AST:    astJSON,
				Tokens: tokensJSON,
			}
		}
	}

	output := emitter.New(emitter.Options{}).Emit(program)
	return Result{
		Success: true,
		Output:  output,
		AST:     astJSON,
		Tokens:  tokensJSON,
	}
}

// FormatErrors renders diagnostics the way the CLI prints them:
// "Error (line N): <message>", plus the offending source line when
// source is supplied.
func FormatErrors(diags []Diagnostic, source string) string {
	return cerrors.FormatErrors(diags, source)
}

func convertDiagnostics(diags []*checker.Diagnostic) []Diagnostic {
	out := make([]Diagnostic, len(diags))
	for i, d := range diags {
		out[i] = Diagnostic{Line: d.Line, Message: d.Message}
	}
	return out
}

func encodeTokens(tokens []token.Token) string {
	data, err := json.Marshal(tokens)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func encodeAST(program *ast.Program) string {
	data, err := json.Marshal(program)
	if err != nil {
		return "null"
	}
	return string(data)
}

// JSON renders the result as the JS-shaped object compile() returns:
// built incrementally with sjson.SetRaw rather than a single struct
// marshal, since `output`/`ast`/`tokens` are only set when populated.
func (r Result) JSON() (string, error) {
	doc := "{}"
	var err error

	doc, err = sjson.Set(doc, "success", r.Success)
	if err != nil {
		return "", err
	}
	if r.Output != "" {
		doc, err = sjson.Set(doc, "output", r.Output)
		if err != nil {
			return "", err
		}
	}
	errs := r.Errors
	if errs == nil {
		errs = []Diagnostic{}
	}
	errsJSON, err := json.Marshal(errs)
	if err != nil {
		return "", err
	}
	doc, err = sjson.SetRaw(doc, "errors", string(errsJSON))
	if err != nil {
		return "", err
	}
	if r.AST != "" {
		doc, err = sjson.SetRaw(doc, "ast", r.AST)
		if err != nil {
			return "", err
		}
	}
	if r.Tokens != "" {
		doc, err = sjson.SetRaw(doc, "tokens", r.Tokens)
		if err != nil {
			return "", err
		}
	}
	return string(pretty.Pretty([]byte(doc))), nil
}
