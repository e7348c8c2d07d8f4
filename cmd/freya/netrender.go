package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	netHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	netNodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	netLinkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// renderSnapshot renders one netSnapshot as aligned, optionally colored
// text: a header line, one line per node, one line per link. Node names
// are padded to the widest name's display width (via go-runewidth, in case
// a future label set includes wide glyphs) so the link list lines up.
func renderSnapshot(snap netSnapshot, color bool) string {
	var b strings.Builder

	header := fmt.Sprintf("step %d: %s (%d nodes, %d links)", snap.Step, snap.Label, len(snap.Nodes), len(snap.Links))
	if color {
		header = netHeaderStyle.Render(header)
	}
	b.WriteString(header)
	b.WriteByte('\n')

	width := 0
	for _, n := range snap.Nodes {
		if w := runewidth.StringWidth(n.Name); w > width {
			width = w
		}
	}

	for _, n := range snap.Nodes {
		line := fmt.Sprintf("  %s  %s", padRight(n.Name, width), n.Label)
		if color {
			line = netNodeStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	for _, l := range snap.Links {
		line := fmt.Sprintf("  %s -- %s", l.From, l.To)
		if color {
			line = netLinkStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
