package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRoot resets the package-level flag variables before each
// invocation: pflag only overwrites a flag's bound variable when that
// flag is present in the given args, so a value set by an earlier
// test would otherwise leak into a later one that omits the flag. The
// skip-type-check flag's Changed mark is cleared too, since runCompile
// consults it and pflag never resets it between parses.
func runRoot(t *testing.T, args ...string) error {
	t.Helper()
	outputFile = ""
	skipTypeCheck = false
	jsonOutput = false
	rootCmd.Flags().Lookup("skip-type-check").Changed = false
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestRunCompileWritesDefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "script.ts")
	require.NoError(t, os.WriteFile(input, []byte("let x: number = 42;"), 0o644))

	require.NoError(t, runRoot(t, input))

	output, err := os.ReadFile(filepath.Join(dir, "script.js"))
	require.NoError(t, err)
	assert.Equal(t, "let x = 42;\n", string(output))
}

func TestRunCompileWithExplicitOutputFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "script.ts")
	out := filepath.Join(dir, "out.js")
	require.NoError(t, os.WriteFile(input, []byte("let x: number = 1;"), 0o644))

	require.NoError(t, runRoot(t, input, "-o", out))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", string(content))
}

func TestRunCompileFailsOnTypeError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "script.ts")
	require.NoError(t, os.WriteFile(input, []byte(`let x: number = "hello";`), 0o644))

	err := runRoot(t, input)
	assert.Error(t, err)
}

func TestRunCompileSkipTypeCheckSucceedsDespiteTypeError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "script.ts")
	require.NoError(t, os.WriteFile(input, []byte(`let x: number = "hello";`), 0o644))

	require.NoError(t, runRoot(t, input, "--skip-type-check"))
}

func TestDefaultOutputPathReplacesTrailingTS(t *testing.T) {
	assert.Equal(t, "foo.js", defaultOutputPath("foo.ts", ""))
	assert.Equal(t, "foo.txt.js", defaultOutputPath("foo.txt", ""))
}

func TestDefaultOutputPathHonorsConfiguredSuffix(t *testing.T) {
	assert.Equal(t, "foo.mjs", defaultOutputPath("foo.ts", ".mjs"))
}

func TestRunCompileUsesConfigSkipTypeCheckWhenFlagNotSet(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "script.ts")
	require.NoError(t, os.WriteFile(input, []byte(`let x: number = "hello";`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("skipTypeCheck: true\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(wd)) }()

	require.NoError(t, runRoot(t, "script.ts"))
}
