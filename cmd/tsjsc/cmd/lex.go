package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/tsjs/internal/lexer"
	"github.com/cwbudde/tsjs/pkg/token"
)

var (
	lexEval    string
	lexShowPos bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize a source file and print the resulting tokens, one per line.

This is useful for debugging the lexer and understanding how a program
is tokenized.

Examples:
  tsjsc lex script.ts
  tsjsc lex -e "let x: number = 42;"
  tsjsc lex --show-pos script.ts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEval, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show each token's line:column position")
}

func runLex(cmd *cobra.Command, args []string) error {
	var input string
	switch {
	case lexEval != "":
		input = lexEval
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return fmt.Errorf("lex failed: %w", err)
	}

	for _, tok := range tokens {
		printToken(tok)
	}
	return nil
}

func printToken(tok token.Token) {
	out := fmt.Sprintf("[%-12s]", tok.Kind.String())
	if tok.Lexeme != "" {
		out += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if lexShowPos {
		out += fmt.Sprintf(" @%d:%d", tok.Line, tok.Column)
	}
	fmt.Println(out)
}
