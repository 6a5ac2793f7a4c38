// ==============================================================================================
// FILE: repl/config.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The `--rc` YAML preferences file, parsed with github.com/goccy/go-yaml: prompt
//          strings, color on/off, and a list of modules to preimport before the first prompt.
// ==============================================================================================

package repl

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds REPL preferences loadable from a YAML file via the `--rc` flag.
type Config struct {
	Prompt       string   `yaml:"prompt"`
	Continuation string   `yaml:"continuation"`
	Color        bool     `yaml:"color"`
	Preimport    []string `yaml:"preimport"`
}

// DefaultConfig is what an rc-less session gets: the usual prompts, color on.
func DefaultConfig() Config {
	return Config{Prompt: ">>> ", Continuation: "... ", Color: true}
}

// LoadConfig reads and parses a YAML rc file, applying its fields over DefaultConfig(). A blank
// path returns DefaultConfig() unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
