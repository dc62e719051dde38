package play

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"quizzable/pkg/quiz"
)

// Run plays qz in the terminal and reports correct and answered counts.
// Quitting early returns the score so far.
func Run(qz *quiz.Quiz, opts Options) (correct, answered int, err error) {
	program := tea.NewProgram(NewModel(qz, opts), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return 0, 0, fmt.Errorf("run player: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return 0, 0, nil
	}
	return m.state.Score(), len(m.state.Results), nil
}
