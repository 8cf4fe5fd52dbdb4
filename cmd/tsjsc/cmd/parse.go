package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/cwbudde/tsjs/internal/parser"
)

var parseEval string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and print the AST as JSON",
	Long: `Parse source code and print its Abstract Syntax Tree as JSON.

If no file is given, reads from stdin. Use -e to parse an inline
expression-or-statement list instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEval, "eval", "e", "", "parse inline code instead of reading from a file")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string
	switch {
	case parseEval != "":
		input = parseEval
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		input = string(data)
	}

	program, err := parser.ParseSource(input)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	raw, err := json.Marshal(program)
	if err != nil {
		return fmt.Errorf("failed to render AST as JSON: %w", err)
	}
	fmt.Println(string(pretty.Pretty(raw)))
	return nil
}
