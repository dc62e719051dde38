package play

import (
	"strings"

	"quizzable/internal/fuzzy"
	"quizzable/pkg/quiz"
)

// gradeFRQ grades a typed response. With a matcher, close answers count;
// without one, only exact matches do.
func gradeFRQ(q *quiz.FRQQuestion, response string, matcher *fuzzy.Matcher) Result {
	correct := q.Check(response)
	if !correct && matcher != nil {
		correct = matcher.Match(response, q.Answer)
	}
	return Result{Prompt: q.Term, Expected: q.Answer, Given: response, Correct: correct}
}

// gradeMCQ grades the option at the chosen index.
func gradeMCQ(q *quiz.MCQQuestion, choice int) Result {
	given := ""
	if choice >= 0 && choice < len(q.Options) {
		given = q.Options[choice]
	}
	return Result{Prompt: q.Term, Expected: q.Answer, Given: given, Correct: q.Check(given)}
}

// gradeTrueFalse grades a verdict on the displayed claim.
func gradeTrueFalse(q *quiz.TrueFalseQuestion, verdict bool) Result {
	return Result{
		Prompt:   q.Term + " = " + q.Definition,
		Expected: verdictLabel(q.Answer),
		Given:    verdictLabel(verdict),
		Correct:  q.Check(verdict),
	}
}

// gradeMatch grades a completed pairing.
func gradeMatch(q *quiz.MatchQuestion, pairing map[string]string) Result {
	return Result{
		Prompt:   strings.Join(q.Terms, ", "),
		Expected: pairingLabel(q.Answer, q.Terms),
		Given:    pairingLabel(pairing, q.Terms),
		Correct:  q.Check(pairing),
	}
}

func verdictLabel(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

func pairingLabel(pairs map[string]string, order []string) string {
	parts := make([]string, 0, len(order))
	for _, term := range order {
		parts = append(parts, term+" = "+pairs[term])
	}
	return strings.Join(parts, ", ")
}

// moveCursor shifts cur by delta, wrapping within n entries.
func moveCursor(cur, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((cur+delta)%n + n) % n
}

// moveSkipping shifts like moveCursor but steps over taken indexes.
func moveSkipping(cur, delta, n int, taken map[int]bool) int {
	if n <= 0 {
		return 0
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	next := moveCursor(cur, delta, n)
	for i := 0; i < n && taken[next]; i++ {
		next = moveCursor(next, step, n)
	}
	return next
}

// firstUntaken returns the lowest index not yet taken.
func firstUntaken(n int, taken map[int]bool) int {
	for i := 0; i < n; i++ {
		if !taken[i] {
			return i
		}
	}
	return 0
}
