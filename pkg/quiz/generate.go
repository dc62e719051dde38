package quiz

import (
	"fmt"
	"math/rand/v2"
)

// Generator builds questions and quizzes from term banks. All randomness
// flows through a single rng owned by the generator, so a seeded generator
// replays the exact same draw sequence for the same calls.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded from runtime entropy.
func NewGenerator() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededGenerator returns a deterministic generator. Two generators with
// equal seeds produce identical output for identical inputs.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, 0))}
}

// GenerateFRQ builds a free-response question from one sampled term.
func (g *Generator) GenerateFRQ(bank TermBank) (*FRQQuestion, error) {
	terms, err := bank.Sample(g.rng, 1)
	if err != nil {
		return nil, err
	}

	return &FRQQuestion{Term: terms[0], Answer: bank[terms[0]]}, nil
}

// GenerateMCQ builds a multiple-choice question with numOptions candidate
// definitions. All numOptions terms are drawn in a single no-replacement
// pass and the prompt is chosen among them, so a decoy option can never
// duplicate the correct answer. Options are shuffled before emitting.
// Fails with ErrInvalidOptions unless 1 <= numOptions <= len(bank).
func (g *Generator) GenerateMCQ(bank TermBank, numOptions int) (*MCQQuestion, error) {
	if numOptions < 1 || numOptions > len(bank) {
		return nil, fmt.Errorf("%w: %d options from %d terms", ErrInvalidOptions, numOptions, len(bank))
	}

	terms, err := bank.Sample(g.rng, numOptions)
	if err != nil {
		return nil, err
	}

	anchor := terms[g.rng.IntN(len(terms))]
	options := make([]string, 0, len(terms))
	for _, t := range terms {
		options = append(options, bank[t])
	}
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &MCQQuestion{Term: anchor, Options: options, Answer: bank[anchor]}, nil
}

// GenerateTrueFalse builds a claim about one term. Two distinct terms are
// drawn; with probability 0.5 the claim shows the first term's own
// definition, otherwise it shows the second term's definition as a decoy.
// Both drawn terms count as consumed during quiz assembly.
func (g *Generator) GenerateTrueFalse(bank TermBank) (*TrueFalseQuestion, error) {
	terms, err := bank.Sample(g.rng, 2)
	if err != nil {
		return nil, err
	}

	q := &TrueFalseQuestion{
		Term:       terms[0],
		Definition: bank[terms[0]],
		Answer:     true,
		sampled:    terms,
	}
	if g.rng.IntN(2) == 0 {
		q.Definition = bank[terms[1]]
		q.Answer = false
	}

	return q, nil
}

// GenerateMatch builds a matching question over numTerms distinct terms.
// The definitions column is an independent permutation of the terms' true
// definitions; Answer records the correct pairing regardless of display
// order. Fails with ErrInvalidTerms unless 1 <= numTerms <= len(bank).
func (g *Generator) GenerateMatch(bank TermBank, numTerms int) (*MatchQuestion, error) {
	if numTerms < 1 || numTerms > len(bank) {
		return nil, fmt.Errorf("%w: %d pairs from %d terms", ErrInvalidTerms, numTerms, len(bank))
	}

	terms, err := bank.Sample(g.rng, numTerms)
	if err != nil {
		return nil, err
	}

	defs := make([]string, 0, len(terms))
	answer := make(map[string]string, len(terms))
	for _, t := range terms {
		defs = append(defs, bank[t])
		answer[t] = bank[t]
	}
	g.rng.Shuffle(len(defs), func(i, j int) {
		defs[i], defs[j] = defs[j], defs[i]
	})

	return &MatchQuestion{Terms: terms, Definitions: defs, Answer: answer}, nil
}

// GenerateRandom picks a type uniformly from types and dispatches to its
// factory. A nil or empty allow-list means DefaultTypes. The whole list is
// validated before anything is drawn, so an unknown tag fails the call even
// on draws that would have picked a different tag.
func (g *Generator) GenerateRandom(bank TermBank, types []Type, numOptions, numTerms int) (Question, error) {
	if len(types) == 0 {
		types = DefaultTypes()
	}
	for _, t := range types {
		if _, err := ParseType(string(t)); err != nil {
			return nil, err
		}
	}

	picked := types[g.rng.IntN(len(types))]
	switch picked {
	case TypeMCQ:
		return g.GenerateMCQ(bank, numOptions)
	case TypeFRQ:
		return g.GenerateFRQ(bank)
	case TypeTrueFalse:
		return g.GenerateTrueFalse(bank)
	case TypeMatch:
		return g.GenerateMatch(bank, numTerms)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuestion, string(picked))
	}
}
