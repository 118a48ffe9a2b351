// Package prompt provides the interactive terminal prompts used when docs
// root detection needs a human decision.
package prompt

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lexandro/docdex/detect"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// PickCandidate lets the user choose a docs root from the ranked candidates.
func PickCandidate(candidates []detect.Candidate) (string, error) {
	if len(candidates) == 0 {
		return "", errors.New("no candidates to pick from")
	}

	program := tea.NewProgram(pickerModel{candidates: candidates})
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("running picker: %w", err)
	}
	model := final.(pickerModel)
	if model.aborted {
		return "", ErrAborted
	}
	return model.candidates[model.cursor].Dir, nil
}

// pickerModel is the docs-root selection screen.
type pickerModel struct {
	candidates []detect.Candidate
	cursor     int
	aborted    bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
			}
		case "enter":
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	view := titleStyle.Render("Select the documentation directory:") + "\n\n"
	for i, candidate := range m.candidates {
		line := fmt.Sprintf("%s  %s", candidate.Dir,
			dimStyle.Render(fmt.Sprintf("(%d files)", candidate.Count)))
		if i == m.cursor {
			view += cursorStyle.Render("→ ") + selectedStyle.Render(line) + "\n"
		} else {
			view += "  " + line + "\n"
		}
	}
	view += "\n" + dimStyle.Render("↑/↓ move · enter select · q cancel") + "\n"
	return view
}

// Confirm asks a yes/no question. Enter accepts the default answer.
func Confirm(question string, defaultYes bool) (bool, error) {
	program := tea.NewProgram(confirmModel{question: question, answer: defaultYes})
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("running confirm prompt: %w", err)
	}
	model := final.(confirmModel)
	if model.aborted {
		return false, ErrAborted
	}
	return model.answer, nil
}

// confirmModel is a single-keystroke yes/no screen.
type confirmModel struct {
	question string
	answer   bool
	aborted  bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y":
			m.answer = true
			return m, tea.Quit
		case "n", "N":
			m.answer = false
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	hint := "[y/N]"
	if m.answer {
		hint = "[Y/n]"
	}
	return fmt.Sprintf("%s %s ", m.question, dimStyle.Render(hint))
}
