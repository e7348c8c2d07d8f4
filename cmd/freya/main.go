// Command freya is the tokenizer/parser/elaborator front end described by
// internal/lexer, internal/parser, internal/lower, internal/annotate, and
// internal/core, plus a small viewer over internal/inet's interaction-net
// substrate.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"freya/internal/config"
	"freya/internal/version"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "freya",
	Short: "Freya dependently-typed toy language front end",
	Long:  `Freya tokenizes, parses, and elaborates a small Calculus-of-Constructions-style language.`,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.PersistentPreRunE = loadProjectConfig

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(netCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")
	rootCmd.PersistentFlags().String("format", "", "override the default output format (text|json)")
	rootCmd.PersistentFlags().String("config", "freya.toml", "path to the project configuration file")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")
	rootCmd.PersistentFlags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadProjectConfig reads --config (freya.toml by default) and stashes it
// in the package-level cfg every subcommand reads its defaults from. A
// missing file is not an error; config.Load falls back to config.Default().
func loadProjectConfig(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err = config.Load(path)
	return err
}

func isTerminal(f *os.File) bool {
	return termIsTerminal(f)
}
