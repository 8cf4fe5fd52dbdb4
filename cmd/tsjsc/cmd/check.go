package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/tsjs/internal/checker"
	"github.com/cwbudde/tsjs/internal/parser"
	"github.com/cwbudde/tsjs/pkg/tsjs"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Type-check a source file without emitting output",
	Long: `Run the checker over a source file and print its diagnostics,
without lowering or writing any output file.

Exits 0 if no diagnostics were reported, 1 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	program, err := parser.ParseSource(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error (line 1): %s\n", err.Error())
		return fmt.Errorf("parsing failed")
	}

	diags := checker.Check(program)
	if len(diags) == 0 {
		fmt.Println("No errors.")
		return nil
	}

	facadeDiags := make([]tsjs.Diagnostic, len(diags))
	for i, d := range diags {
		facadeDiags[i] = tsjs.Diagnostic{Line: d.Line, Message: d.Message}
	}
	fmt.Fprint(os.Stderr, tsjs.FormatErrors(facadeDiags, source))
	return fmt.Errorf("type checking failed with %d error(s)", len(diags))
}
