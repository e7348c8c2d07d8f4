// Package config loads freya's optional project configuration file,
// freya.toml: a typed struct decoded with github.com/BurntSushi/toml,
// with a missing file treated as "use the defaults" rather than an error.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is freya.toml's decoded shape. Every field has a zero-value
// default applied by Load when the file (or the field) is absent.
type Config struct {
	CLI CLIConfig `toml:"cli"`
}

// CLIConfig holds the handful of defaults cmd/freya falls back to when the
// corresponding flag isn't passed explicitly.
type CLIConfig struct {
	// Format is the default output format for tokenize: "text" or "json".
	Format string `toml:"format"`
	// Color selects whether diagnostics are colored by default: "auto",
	// "always", or "never". "auto" defers to golang.org/x/term.IsTerminal.
	Color string `toml:"color"`
	// SourceDir is decoded from source_dir, but no cmd/freya subcommand
	// reads it: tokenize and parse always take an explicit path argument.
	SourceDir string `toml:"source_dir"`
}

// Default returns the configuration cmd/freya uses when no freya.toml is
// found.
func Default() Config {
	return Config{
		CLI: CLIConfig{
			Format:    "text",
			Color:     "auto",
			SourceDir: ".",
		},
	}
}

// Load reads and decodes path, filling in Default()'s values for any table
// or key path.toml doesn't define. A missing file is not an error: it
// returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	// Decoding onto cfg (already populated by Default()) leaves any table or
	// key freya.toml doesn't mention at its default value; toml.Decode only
	// overwrites fields it actually finds.
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	return cfg, nil
}
