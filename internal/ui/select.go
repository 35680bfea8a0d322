package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	quitTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Select shows an arrow-key picker and returns the chosen item. Used to pick
// an ALKS account/role when none was given on the command line.
func Select(title string, items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("nothing to select from")
	}

	m := selectModel{
		title: title,
		items: items,
	}

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	fm, ok := finalModel.(selectModel)
	if !ok || !fm.chosen {
		return "", fmt.Errorf("cancelled")
	}
	return fm.items[fm.cursor], nil
}

type selectModel struct {
	title    string
	items    []string
	cursor   int
	chosen   bool
	quitting bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.chosen = true
			return m, tea.Quit
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.chosen {
		return ""
	}
	if m.quitting {
		return quitTextStyle.Render("Cancelled.")
	}

	s := "\n" + titleStyle.Render(m.title) + "\n\n"
	for i, item := range m.items {
		if i == m.cursor {
			s += cursorStyle.Render("> ") + selectedStyle.Render(item) + "\n"
		} else {
			s += "  " + item + "\n"
		}
	}
	s += quitTextStyle.Render("\n↑/↓ move · enter select · esc cancel\n")
	return s
}
