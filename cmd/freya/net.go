package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Inspect the interaction-net substrate with a small demo net",
	Long: `net builds a small demo net of interaction combinators over
internal/inet (its rules: annihilate, erase, commute; the demo's own
redexes fire commute and erase only) and either dumps its full rewrite
history to a file, replays a dumped history, or steps through it
interactively.`,
}

var netDumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Run the demo net to normal form and write its rewrite history",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetDump,
}

var netReplayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Print a rewrite history previously written by 'net dump'",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetReplay,
}

var netViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Step through the demo net's rewrite history interactively",
	Args:  cobra.NoArgs,
	RunE:  runNetView,
}

func init() {
	netCmd.AddCommand(netDumpCmd)
	netCmd.AddCommand(netReplayCmd)
	netCmd.AddCommand(netViewCmd)
}

// demoHistory runs the demo net to normal form, capturing a labeled
// snapshot before every step and one final snapshot once no redex
// remains.
func demoHistory() []netSnapshot {
	net := buildDemoNet()
	history := []netSnapshot{capture(net.sig, net.outputs, 0, "initial")}
	step := 1
	for net.step() {
		history = append(history, capture(net.sig, net.outputs, step, fmt.Sprintf("after step %d", step)))
		step++
	}
	return history
}

func runNetDump(cmd *cobra.Command, args []string) error {
	history := demoHistory()
	data, err := msgpack.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode net history: %w", err)
	}
	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", countSummary("steps", len(history)), args[0])
	return nil
}

func runNetReplay(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	var history []netSnapshot
	if err := msgpack.Unmarshal(data, &history); err != nil {
		return fmt.Errorf("failed to decode %s: %w", args[0], err)
	}
	useColor, err := resolveColor(cmd, os.Stdout)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, snap := range history {
		fmt.Fprintln(out, renderSnapshot(snap, useColor))
	}
	return nil
}

func runNetView(cmd *cobra.Command, _ []string) error {
	return runNetViewer(cmd)
}
