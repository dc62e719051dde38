// Package quiz generates quizzes from a mapping of terms to definitions.
//
// A TermBank seeds four question kinds: multiple choice, free response,
// true-or-false, and matching. A Generator assembles them into a Quiz,
// consuming bank terms without replacement so questions do not repeat, and
// every question serializes to a plain Record that survives JSON or YAML
// round trips.
package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Quiz is an ordered sequence of questions. It is immutable once built:
// nothing in this package modifies a quiz after its constructor returns.
type Quiz struct {
	ID        string
	Questions []Question
}

// QuizConfig controls quiz assembly.
type QuizConfig struct {
	// Types is the allow-list for random question selection. Empty means
	// DefaultTypes.
	Types []Type
	// Length is the number of questions to generate. Valid from 1 up to the
	// size of the source bank.
	Length int
	// AnswerWith orients the working bank before generation.
	AnswerWith Orientation
	// NumOptions is the option count for multiple-choice questions.
	NumOptions int
	// NumTerms is the pair count for matching questions.
	NumTerms int
}

// DefaultQuizConfig returns the stock assembly parameters: ten questions
// over DefaultTypes, answered with definitions, four options per multiple
// choice, five pairs per match.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		Types:      DefaultTypes(),
		Length:     10,
		AnswerWith: AnswerWithDef,
		NumOptions: 4,
		NumTerms:   5,
	}
}

// GenerateQuiz assembles a quiz of cfg.Length random questions from bank.
//
// The bank is copied and oriented per cfg.AnswerWith before the first draw;
// the caller's map is never touched. Each question consumes its drawn terms
// from the working copy, which keeps terms unique across the quiz. Whenever
// the copy holds fewer terms than the largest demand among the allowed
// types (NumOptions for mcq, NumTerms for match, two for tf, one for frq),
// it is re-derived from the original bank. Terms may repeat across
// questions after such a recycle; that is the price of quizzes longer than
// the pool supports.
//
// All parameters are validated before the first draw: ErrInvalidLength,
// ErrInvalidQuestion, ErrInvalidOptions, and ErrInvalidTerms for the
// corresponding fields, and ErrInsufficientTerms when the bank cannot cover
// one question of an allowed type.
func (g *Generator) GenerateQuiz(bank TermBank, cfg QuizConfig) (*Quiz, error) {
	if cfg.Length < 1 || cfg.Length > len(bank) {
		return nil, fmt.Errorf("%w: %d questions from %d terms", ErrInvalidLength, cfg.Length, len(bank))
	}

	types := cfg.Types
	if len(types) == 0 {
		types = DefaultTypes()
	}

	demand := 0
	for _, t := range types {
		need, err := termDemand(t, cfg, len(bank))
		if err != nil {
			return nil, err
		}
		if need > demand {
			demand = need
		}
	}
	if demand > len(bank) {
		return nil, fmt.Errorf("%w: allowed types need %d terms, bank has %d", ErrInsufficientTerms, demand, len(bank))
	}

	working := bank.Oriented(g.rng, cfg.AnswerWith)
	questions := make([]Question, 0, cfg.Length)
	for len(questions) < cfg.Length {
		if len(working) < demand {
			// Pool exhausted below the next draw's worst case; start over
			// from the original bank. Terms can repeat from here on.
			working = bank.Oriented(g.rng, cfg.AnswerWith)
		}

		q, err := g.GenerateRandom(working, types, cfg.NumOptions, cfg.NumTerms)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)

		for _, term := range q.consumed() {
			delete(working, term)
		}
	}

	return &Quiz{ID: uuid.NewString(), Questions: questions}, nil
}

// termDemand returns how many live terms one question of type t draws,
// validating the per-type count against the source bank size.
func termDemand(t Type, cfg QuizConfig, bankSize int) (int, error) {
	switch t {
	case TypeFRQ:
		return 1, nil
	case TypeTrueFalse:
		return 2, nil
	case TypeMCQ:
		if cfg.NumOptions < 1 || cfg.NumOptions > bankSize {
			return 0, fmt.Errorf("%w: %d options from %d terms", ErrInvalidOptions, cfg.NumOptions, bankSize)
		}
		return cfg.NumOptions, nil
	case TypeMatch:
		if cfg.NumTerms < 1 || cfg.NumTerms > bankSize {
			return 0, fmt.Errorf("%w: %d pairs from %d terms", ErrInvalidTerms, cfg.NumTerms, bankSize)
		}
		return cfg.NumTerms, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuestion, string(t))
	}
}
