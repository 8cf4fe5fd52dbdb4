package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/tsjs/internal/config"
	"github.com/cwbudde/tsjs/pkg/tsjs"
)

// configFileName is the optional per-project config file consulted
// for defaults before CLI flags override them (spec's ambient
// configuration stack); a missing file is not an error.
const configFileName = ".tsjsrc.yaml"

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	outputFile    string
	skipTypeCheck bool
	jsonOutput    bool
)

var rootCmd = &cobra.Command{
	Use:   "tsjsc <input> [output]",
	Short: "Compile a statically-typed dialect to its dynamic target",
	Long: `tsjsc compiles a statically-typed, TypeScript-like source file into
its dynamically-typed, JavaScript-like output: type annotations, interfaces,
and type aliases are erased, and enum declarations are lowered to the
runtime object form the target dialect expects.`,
	Version: Version,
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runCompile,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: <input> with a trailing .ts replaced by .js)")
	rootCmd.Flags().BoolVarP(&skipTypeCheck, "skip-type-check", "s", false, "skip type checking (faster but less safe)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the compile() result as JSON instead of writing the output file")
}

func runCompile(cmd *cobra.Command, args []string) error {
	input := args[0]

	content, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", input, err)
	}
	source := string(content)

	cfg, err := config.Load(configFileName)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", configFileName, err)
	}
	if !cmd.Flags().Changed("skip-type-check") {
		skipTypeCheck = cfg.SkipTypeCheck
	}

	result := tsjs.Compile(source, tsjs.Options{
		SkipTypeCheck: skipTypeCheck,
		IncludeAST:    cfg.IncludeAST,
		IncludeTokens: cfg.IncludeTokens,
	})

	if jsonOutput {
		doc, err := result.JSON()
		if err != nil {
			return fmt.Errorf("failed to render JSON result: %w", err)
		}
		fmt.Println(doc)
		if !result.Success {
			return fmt.Errorf("compilation failed with %d error(s)", len(result.Errors))
		}
		return nil
	}

	if !result.Success {
		fmt.Fprint(os.Stderr, tsjs.FormatErrors(result.Errors, source))
		return fmt.Errorf("compilation failed with %d error(s)", len(result.Errors))
	}

	out := outputFile
	if out == "" {
		if len(args) == 2 {
			out = args[1]
		} else {
			out = defaultOutputPath(input, cfg.OutputSuffix)
		}
	}

	if err := os.WriteFile(out, []byte(result.Output), 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", out, err)
	}

	fmt.Printf("Compiled %s -> %s\n", input, out)
	return nil
}

// defaultOutputPath replaces a trailing ".ts" with suffix; any other
// extension just gets suffix appended (spec §6's default output rule).
// suffix comes from the loaded config's OutputSuffix, ".js" by default.
func defaultOutputPath(input, suffix string) string {
	if suffix == "" {
		suffix = ".js"
	}
	if strings.HasSuffix(input, ".ts") {
		return strings.TrimSuffix(input, ".ts") + suffix
	}
	return input + suffix
}
