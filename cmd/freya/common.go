package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"freya/internal/diag"
	"freya/internal/source"
)

func termIsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor applies the --color flag (auto|on|off) against cfg.CLI.Color
// and the destination file's TTY-ness: an explicit flag wins, then the
// project config, then a TTY check.
func resolveColor(cmd *cobra.Command, dst *os.File) (bool, error) {
	flag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	mode := flag
	if !cmd.Root().PersistentFlags().Changed("color") && cfg.CLI.Color != "" {
		mode = cfg.CLI.Color
	}
	switch mode {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	default:
		return isTerminal(dst), nil
	}
}

// resolveFormat applies the subcommand's --format flag, falling back to
// cfg.CLI.Format when the flag was left at its unset default.
func resolveFormat(cmd *cobra.Command, flagDefault string) (string, error) {
	local, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", err
	}
	if cmd.Flags().Changed("format") {
		return local, nil
	}
	if global, _ := cmd.Root().PersistentFlags().GetString("format"); global != "" {
		return global, nil
	}
	if cfg.CLI.Format != "" {
		return cfg.CLI.Format, nil
	}
	return flagDefault, nil
}

// printDiagnostics renders a sorted, deduplicated bag to stderr using
// diag.FormatDiagnostics, coloring each line by its severity when useColor
// is set.
func printDiagnostics(bag *diag.Bag, fs *source.FileSet, useColor bool) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	bag.Dedup()
	rendered := diag.FormatDiagnostics(bag.Items(), fs, true)
	if rendered == "" {
		return
	}
	fmt.Fprintf(os.Stderr, "%s:\n", countSummary("diagnostics", bag.Len()))
	if !useColor {
		fmt.Fprintln(os.Stderr, rendered)
		return
	}
	errColor := color.New(color.FgRed, color.Bold)
	warnColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	for _, line := range splitLines(rendered) {
		switch {
		case hasPrefix(line, "error"):
			errColor.Fprintln(os.Stderr, line)
		case hasPrefix(line, "warning"):
			warnColor.Fprintln(os.Stderr, line)
		default:
			infoColor.Fprintln(os.Stderr, line)
		}
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
