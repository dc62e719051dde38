package play

import "quizzable/pkg/quiz"

// Result records the outcome of one answered question.
type Result struct {
	Prompt   string // what the user was asked
	Expected string // display form of the correct answer
	Given    string // display form of the user's response
	Correct  bool
}

// State tracks progress through a quiz session.
type State struct {
	Quiz    *quiz.Quiz
	Index   int
	Results []Result
	Done    bool
}

// Current returns the question being played, or nil once the quiz is done.
func (s State) Current() quiz.Question {
	if s.Done || s.Quiz == nil || s.Index >= len(s.Quiz.Questions) {
		return nil
	}
	return s.Quiz.Questions[s.Index]
}

// Score counts correct results.
func (s State) Score() int {
	n := 0
	for _, r := range s.Results {
		if r.Correct {
			n++
		}
	}
	return n
}

// record appends a result and advances to the next question.
func (s State) record(r Result) State {
	s.Results = append(s.Results, r)
	s.Index++
	if s.Index >= len(s.Quiz.Questions) {
		s.Done = true
	}
	return s
}
