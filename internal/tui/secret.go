package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// secretModel is a single masked input line. It quits on enter or on a
// cancel key.
type secretModel struct {
	label string
	input textinput.Model

	submitted bool
	cancelled bool
}

func newSecretModel(label string) secretModel {
	input := textinput.New()
	input.Prompt = promptMarker
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return secretModel{label: label, input: input}
}

// Init implements [tea.Model].
func (m secretModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m secretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.submit):
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		case key.Matches(keyMsg, keys.cancel):
			m.cancelled = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m secretModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.label)
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.submitted || m.cancelled {
		b.WriteString("\n")
	}
	return b.String()
}

// Value returns what was typed.
func (m secretModel) Value() string {
	return m.input.Value()
}

func readSecret(in *os.File, out io.Writer, label string) (string, error) {
	final, err := tea.NewProgram(
		newSecretModel(label),
		tea.WithInput(in),
		tea.WithOutput(out),
	).Run()
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}

	result, ok := final.(secretModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.cancelled {
		return "", ErrInputClosed
	}

	return result.Value(), nil
}
