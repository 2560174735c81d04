package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JacksonBernier523/eth-abi/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historySize = 10

type interactiveModel struct {
	err       error
	reg       *registry.Registry
	result    *description
	direction string
	history   []string
	input     textinput.Model
	selected  int
	state     modelState
	withWIT   bool
}

type modelState int

const (
	stateInput modelState = iota
	stateHistory
	stateShowResult
)

type resolvedMsg struct {
	err    error
	result *description
}

func newInteractiveModel(reg *registry.Registry, cfg config) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "uint256[2]"
	ti.Prompt = "type: "
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		reg:       reg,
		direction: cfg.Direction,
		withWIT:   cfg.WIT,
		input:     ti,
		state:     stateInput,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) resolve(typeStr string) tea.Cmd {
	direction, withWIT := m.direction, m.withWIT
	return func() tea.Msg {
		d, err := describe(m.reg, direction, typeStr, withWIT)
		return resolvedMsg{result: d, err: err}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInput {
				return m, tea.Quit
			}

		case "ctrl+d":
			if m.direction == "decoder" {
				m.direction = "encoder"
			} else {
				m.direction = "decoder"
			}
			return m, nil

		case "ctrl+w":
			m.withWIT = !m.withWIT
			return m, nil

		case "up", "down":
			if len(m.history) == 0 {
				break
			}
			if m.state == stateInput {
				m.state = stateHistory
				m.input.Blur()
				m.selected = len(m.history) - 1
				return m, nil
			}
			if m.state == stateHistory {
				if msg.String() == "up" && m.selected > 0 {
					m.selected--
				}
				if msg.String() == "down" && m.selected < len(m.history)-1 {
					m.selected++
				}
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateInput:
				typeStr := strings.TrimSpace(m.input.Value())
				if typeStr == "" {
					return m, nil
				}
				m.remember(typeStr)
				return m, m.resolve(typeStr)

			case stateHistory:
				return m, m.resolve(m.history[m.selected])

			case stateShowResult:
				m.reset()
				return m, nil
			}

		case "esc":
			if m.state != stateInput {
				m.reset()
				return m, nil
			}
		}

	case resolvedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) remember(typeStr string) {
	m.history = append(m.history, typeStr)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
}

func (m *interactiveModel) reset() {
	m.state = stateInput
	m.result = nil
	m.err = nil
	m.input.SetValue("")
	m.input.Focus()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ABI Types"))
	b.WriteString(" ")
	b.WriteString(typeStyle.Render(m.direction))
	if m.withWIT {
		b.WriteString(" +wit")
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateInput:
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter resolve • ↑ history • ctrl+d direction • ctrl+w wit • ctrl+c quit"))

	case stateHistory:
		b.WriteString("Recent types:\n\n")
		for i, typeStr := range m.history {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + typeStr))
			} else {
				b.WriteString("  " + typeStr)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter resolve • esc back • q quit"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(m.formatResult(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatResult(d *description) string {
	var b strings.Builder
	b.WriteString(typeStyle.Render(d.typeStr))
	b.WriteString(" → ")
	b.WriteString(classStyle.Render(d.class))
	if d.dynamic {
		b.WriteString(" (dynamic)")
	}
	b.WriteString("\n")
	for _, s := range d.settings {
		b.WriteString("  " + s + "\n")
	}
	switch {
	case d.witErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("  wit: %v", d.witErr)))
	case d.wit != "":
		b.WriteString(fmt.Sprintf("  wit: %s (size %d, align %d)",
			typeStyle.Render(d.wit), d.layout.Size, d.layout.Align))
	}
	return b.String()
}

func runInteractive(reg *registry.Registry, cfg config) error {
	p := tea.NewProgram(newInteractiveModel(reg, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
