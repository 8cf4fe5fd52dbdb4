package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/tsjs/internal/errors"
)

func TestFormatErrorsWithoutSource(t *testing.T) {
	out := errors.FormatErrors([]errors.Diagnostic{{Line: 3, Message: "boom"}}, "")
	assert.Equal(t, "Error (line 3): boom\n", out)
}

func TestFormatErrorsWithSource(t *testing.T) {
	out := errors.FormatErrors([]errors.Diagnostic{{Line: 2, Message: "bad"}}, "let x = 1;\nlet y: string = 2;\n")
	assert.Equal(t, "Error (line 2): bad\n  2 | let y: string = 2;\n", out)
}

func TestFormatErrorsMultipleInLineOrder(t *testing.T) {
	diags := []errors.Diagnostic{
		{Line: 1, Message: "first"},
		{Line: 4, Message: "second"},
	}
	out := errors.FormatErrors(diags, "")
	assert.Equal(t, "Error (line 1): first\nError (line 4): second\n", out)
}
