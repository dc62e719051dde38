package play

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizzable/pkg/quiz"
)

// renderProgress renders the question counter line.
func renderProgress(s State, noColor bool) string {
	line := "Question " + strconv.Itoa(s.Index+1) + " of " + strconv.Itoa(len(s.Quiz.Questions))
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderPrompt renders the text the user must answer.
func renderPrompt(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// promptWidth caps prompt lines when the terminal width is unknown.
const promptWidth = 80

// fitPrompt collapses whitespace and truncates text to the display width.
func fitPrompt(text string, width int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if width <= 0 {
		width = promptWidth
	}
	runes := []rune(normalized)
	if width <= 3 || len(runes) <= width {
		return normalized
	}
	return string(runes[:width-3]) + "..."
}

// renderOptions renders a selectable list with a cursor marker. Indexes
// present in taken are shown muted and labeled as used.
func renderOptions(options []string, cursor int, taken map[int]bool, noColor bool) string {
	lines := make([]string, 0, len(options))
	for i, opt := range options {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		line := marker + opt
		switch {
		case taken != nil && taken[i]:
			line = stylize(line+" (used)", noColor, lipgloss.Color("240"))
		case i == cursor:
			line = stylize(line, noColor, lipgloss.Color("205"))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// renderMatch renders pairing progress: completed pairs, the term being
// paired, and the remaining definitions.
func renderMatch(q *quiz.MatchQuestion, pairIdx int, pairing map[string]string, cursor int, taken map[int]bool, width int, noColor bool) string {
	var b strings.Builder
	for i := 0; i < pairIdx; i++ {
		term := q.Terms[i]
		b.WriteString(stylize(term+" = "+pairing[term], noColor, lipgloss.Color("240")))
		b.WriteByte('\n')
	}
	b.WriteString(renderPrompt(fitPrompt("Match: "+q.Terms[pairIdx], width), noColor))
	b.WriteString("\n\n")
	b.WriteString(renderOptions(q.Definitions, cursor, taken, noColor))
	return b.String()
}

// renderSummary renders the final score and per-question verdicts.
func renderSummary(s State, noColor bool) string {
	score := "Quiz complete: " + strconv.Itoa(s.Score()) + "/" + strconv.Itoa(len(s.Results)) + " correct"
	lines := []string{stylize(score, noColor, lipgloss.Color("33")), ""}
	for i, r := range s.Results {
		mark := "+"
		color := lipgloss.Color("42")
		if !r.Correct {
			mark = "x"
			color = lipgloss.Color("196")
		}
		line := mark + " " + strconv.Itoa(i+1) + ". " + r.Prompt
		if !r.Correct {
			given := r.Given
			if given == "" {
				given = "(blank)"
			}
			line += " (expected: " + r.Expected + ", got: " + given + ")"
		}
		lines = append(lines, stylize(line, noColor, color))
	}
	lines = append(lines, "", renderFooter("press q to exit", noColor))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderFooter renders the key hint line.
func renderFooter(hint string, noColor bool) string {
	return stylize(hint, noColor, lipgloss.Color("242"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
