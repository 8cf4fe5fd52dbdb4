package tsjs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/cwbudde/tsjs/pkg/tsjs"
)

func TestCompileSimpleVarDeclarationSucceeds(t *testing.T) {
	result := tsjs.Compile("let x: number = 42;", tsjs.Options{})
	require.True(t, result.Success)
	assert.Equal(t, "let x = 42;\n", result.Output)
	assert.Empty(t, result.Errors)
}

func TestCompileTypeMismatchReturnsOneDiagnostic(t *testing.T) {
	result := tsjs.Compile(`let x: number = "hello";`, tsjs.Options{})
	require.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "not assignable")
}

func TestCompileParseErrorYieldsLineOneDiagnostic(t *testing.T) {
	result := tsjs.Compile("let x: = ;", tsjs.Options{})
	require.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Line)
}

func TestCompileSkipTypeCheckAlwaysSucceedsOnParsableSource(t *testing.T) {
	result := tsjs.Compile(`let x: number = "hello";`, tsjs.Options{SkipTypeCheck: true})
	assert.True(t, result.Success)
}

func TestCompileIncludeTokensAndAST(t *testing.T) {
	result := tsjs.Compile("let x = 1;", tsjs.Options{IncludeAST: true, IncludeTokens: true})
	require.True(t, result.Success)
	assert.NotEmpty(t, result.AST)
	assert.NotEmpty(t, result.Tokens)
}

func TestResultJSONRoundTripsViaGJSON(t *testing.T) {
	result := tsjs.Compile("let x = 1;", tsjs.Options{})
	doc, err := result.JSON()
	require.NoError(t, err)
	assert.True(t, gjson.Get(doc, "success").Bool())
	assert.Equal(t, "let x = 1;\n", gjson.Get(doc, "output").String())
	assert.True(t, gjson.Get(doc, "errors").IsArray())
}

func TestFormatErrorsMatchesSpecFormat(t *testing.T) {
	result := tsjs.Compile(`let x: number = "hello";`, tsjs.Options{})
	out := tsjs.FormatErrors(result.Errors, `let x: number = "hello";`)
	assert.Contains(t, out, "Error (line 1):")
	assert.Contains(t, out, "1 | let x: number = \"hello\";")
}
