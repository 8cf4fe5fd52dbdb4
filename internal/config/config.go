// Package config loads the compiler's optional on-disk configuration
// file. Nothing in the teacher compiler reads a config file; this
// package is new, but it follows the teacher's YAML dependency rather
// than reaching for encoding/json or a hand-rolled parser.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Options mirrors the compile() façade's Options (spec §6), plus the
// CLI-only default output suffix; a config file lets a project pin
// these without repeating flags on every invocation.
type Options struct {
	SkipTypeCheck bool   `yaml:"skipTypeCheck"`
	IncludeAST    bool   `yaml:"includeAST"`
	IncludeTokens bool   `yaml:"includeTokens"`
	OutputSuffix  string `yaml:"outputSuffix"`
}

// Default returns the zero-config behavior: type-check enabled, no
// AST/token dumps, ".js" as the output suffix (spec §6's default
// output-path rule).
func Default() Options {
	return Options{OutputSuffix: ".js"}
}

// Load reads a `.tsjsrc.yaml` file at path and overlays it onto
// Default(). A missing file is not an error — it just means the
// defaults apply.
func Load(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}
