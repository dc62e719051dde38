// Package play implements an interactive terminal quiz player.
package play

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizzable/internal/fuzzy"
	"quizzable/pkg/quiz"
)

// Options configures the player.
type Options struct {
	// NoColor disables ANSI styling.
	NoColor bool
	// Strict requires exact free-response answers instead of fuzzy grading.
	Strict bool
}

// Model is the Bubble Tea model driving a quiz session.
type Model struct {
	state   State
	matcher *fuzzy.Matcher
	noColor bool

	cursor int             // highlighted entry for mcq, tf, and match lists
	input  textinput.Model // free-response line editor

	pairIdx  int               // match: index into Terms being paired
	pairing  map[string]string // match: picks made so far
	usedDefs map[int]bool      // match: definition indexes already taken

	width int
}

// NewModel builds a player for qz.
func NewModel(qz *quiz.Quiz, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "type your answer"
	ti.Focus()

	var matcher *fuzzy.Matcher
	if !opts.Strict {
		matcher = fuzzy.NewMatcher()
	}

	m := Model{
		state:   State{Quiz: qz},
		matcher: matcher,
		noColor: opts.NoColor,
		input:   ti,
	}
	return m.resetQuestion()
}

// Init starts the input cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles terminal events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}

	// Blink and other background messages belong to the line editor.
	if _, ok := m.state.Current().(*quiz.FRQQuestion); ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current question or the final summary.
func (m Model) View() string {
	if m.state.Quiz == nil || len(m.state.Quiz.Questions) == 0 {
		return "nothing to play\n"
	}
	if m.state.Done {
		return renderSummary(m.state, m.noColor) + "\n"
	}

	header := renderProgress(m.state, m.noColor)
	var body, hint string
	switch q := m.state.Current().(type) {
	case *quiz.FRQQuestion:
		body = renderPrompt(fitPrompt(q.Term, m.width), m.noColor) + "\n\n" + m.input.View()
		hint = "enter submit, esc quit"
	case *quiz.MCQQuestion:
		body = renderPrompt(fitPrompt(q.Term, m.width), m.noColor) + "\n\n" +
			renderOptions(q.Options, m.cursor, nil, m.noColor)
		hint = "up/down move, enter select, q quit"
	case *quiz.TrueFalseQuestion:
		body = renderPrompt(fitPrompt(q.Term+" means: "+q.Definition, m.width), m.noColor) + "\n\n" +
			renderOptions([]string{"True", "False"}, m.cursor, nil, m.noColor)
		hint = "up/down move, enter select, q quit"
	case *quiz.MatchQuestion:
		body = renderMatch(q, m.pairIdx, m.pairing, m.cursor, m.usedDefs, m.width, m.noColor)
		hint = "up/down move, enter pair, q quit"
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", renderFooter(hint, m.noColor)) + "\n"
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state.Done {
		switch key {
		case "q", "enter", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	switch q := m.state.Current().(type) {
	case *quiz.FRQQuestion:
		return m.handleInputKey(msg, q)
	case *quiz.MCQQuestion:
		return m.handleListKey(key, len(q.Options), func(choice int) Result {
			return gradeMCQ(q, choice)
		})
	case *quiz.TrueFalseQuestion:
		return m.handleListKey(key, 2, func(choice int) Result {
			return gradeTrueFalse(q, choice == 0)
		})
	case *quiz.MatchQuestion:
		return m.handleMatchKey(key, q)
	}
	return m, nil
}

// handleInputKey routes keys for free-response questions. Printable keys,
// including q, go to the line editor.
func (m Model) handleInputKey(msg tea.KeyMsg, q *quiz.FRQQuestion) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.answer(gradeFRQ(q, m.input.Value(), m.matcher)), nil
	case "esc":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleListKey routes keys for single-choice questions.
func (m Model) handleListKey(key string, n int, grade func(choice int) Result) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		m.cursor = moveCursor(m.cursor, -1, n)
	case "down", "j":
		m.cursor = moveCursor(m.cursor, 1, n)
	case "enter", " ":
		return m.answer(grade(m.cursor)), nil
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// handleMatchKey routes keys for matching questions. Each selection pairs
// the current term with the definition under the cursor; the last pair
// grades the question.
func (m Model) handleMatchKey(key string, q *quiz.MatchQuestion) (tea.Model, tea.Cmd) {
	n := len(q.Definitions)
	switch key {
	case "up", "k":
		m.cursor = moveSkipping(m.cursor, -1, n, m.usedDefs)
	case "down", "j":
		m.cursor = moveSkipping(m.cursor, 1, n, m.usedDefs)
	case "enter", " ":
		if m.usedDefs[m.cursor] {
			return m, nil
		}
		m.pairing[q.Terms[m.pairIdx]] = q.Definitions[m.cursor]
		m.usedDefs[m.cursor] = true
		m.pairIdx++
		if m.pairIdx >= len(q.Terms) {
			return m.answer(gradeMatch(q, m.pairing)), nil
		}
		m.cursor = firstUntaken(n, m.usedDefs)
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// answer records a result and prepares the next question.
func (m Model) answer(r Result) Model {
	m.state = m.state.record(r)
	return m.resetQuestion()
}

// resetQuestion clears per-question working state.
func (m Model) resetQuestion() Model {
	m.cursor = 0
	m.pairIdx = 0
	m.pairing = make(map[string]string)
	m.usedDefs = make(map[int]bool)
	m.input.SetValue("")
	return m
}
