package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var netViewHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

var netViewKeys = struct {
	step key.Binding
	quit key.Binding
}{
	step: key.NewBinding(key.WithKeys(" ", "n", "enter"), key.WithHelp("space/n", "step")),
	quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// netViewModel steps a demoNet forward one interaction per keypress,
// rendering the snapshot taken after the most recent step (or the initial
// graph, before any step has fired).
type netViewModel struct {
	net      *demoNet
	snapshot netSnapshot
	step     int
	color    bool
	done     bool
	quitting bool
}

func newNetViewModel(color bool) netViewModel {
	net := buildDemoNet()
	return netViewModel{
		net:      net,
		snapshot: capture(net.sig, net.outputs, 0, "initial"),
		color:    color,
	}
}

func (m netViewModel) Init() tea.Cmd {
	return nil
}

func (m netViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, netViewKeys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, netViewKeys.step):
		if m.done {
			return m, nil
		}
		if m.net.step() {
			m.step++
			m.snapshot = capture(m.net.sig, m.net.outputs, m.step, fmt.Sprintf("after step %d", m.step))
		} else {
			m.done = true
		}
		return m, nil
	}
	return m, nil
}

func (m netViewModel) View() string {
	if m.quitting {
		return ""
	}
	body := renderSnapshot(m.snapshot, m.color)
	hint := fmt.Sprintf("%s: %s    %s: %s", netViewKeys.step.Help().Key, netViewKeys.step.Help().Desc,
		netViewKeys.quit.Help().Key, netViewKeys.quit.Help().Desc)
	if m.done {
		hint = fmt.Sprintf("normal form reached    %s: %s", netViewKeys.quit.Help().Key, netViewKeys.quit.Help().Desc)
	}
	if m.color {
		hint = netViewHintStyle.Render(hint)
	}
	return body + "\n\n" + hint + "\n"
}

// runNetViewer drives newNetViewModel as an interactive Bubble Tea program
// on the command's stdout, stepping the demo net one interaction at a time
// on keypress until it reaches normal form.
func runNetViewer(cmd *cobra.Command) error {
	useColor, err := resolveColor(cmd, os.Stdout)
	if err != nil {
		return err
	}
	program := tea.NewProgram(newNetViewModel(useColor))
	_, err = program.Run()
	return err
}
