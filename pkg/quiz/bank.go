package quiz

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Orientation controls which side of an entry becomes the prompt when a
// working bank is derived for generation.
type Orientation string

const (
	// AnswerWithDef keeps entries as loaded: the term is the prompt and the
	// definition is the answer.
	AnswerWithDef Orientation = "def"
	// AnswerWithTerm flips every entry: the definition becomes the prompt
	// and the term becomes the answer.
	AnswerWithTerm Orientation = "term"
	// AnswerWithBoth flips each entry independently with probability 0.5.
	AnswerWithBoth Orientation = "both"
)

// TermBank maps prompts to the answers they expect. Generation always works
// on owned copies, so a bank handed to this package is never mutated and
// never aliased.
type TermBank map[string]string

// NewTermBank copies src into a fresh bank. The caller's map is not retained.
func NewTermBank(src map[string]string) TermBank {
	bank := make(TermBank, len(src))
	for term, def := range src {
		bank[term] = def
	}
	return bank
}

// Clone returns an independent copy of the bank.
func (b TermBank) Clone() TermBank {
	return NewTermBank(b)
}

// Oriented derives a new bank with prompt and answer roles assigned per o.
// AnswerWithTerm flips every entry so the result maps definition to term;
// AnswerWithBoth flips each entry independently with probability 0.5; any
// other value copies the bank unchanged. Flipped entries whose definitions
// collide collapse into one, so the result can be smaller than b.
func (b TermBank) Oriented(rng *rand.Rand, o Orientation) TermBank {
	out := make(TermBank, len(b))
	switch o {
	case AnswerWithTerm:
		for term, def := range b {
			out[def] = term
		}
	case AnswerWithBoth:
		// Iterate in sorted order: ranging over the map would feed entries
		// to the rng in a different order every run, breaking seeded replay.
		for _, term := range b.sortedKeys() {
			if rng.IntN(2) == 0 {
				out[b[term]] = term
			} else {
				out[term] = b[term]
			}
		}
	default:
		for term, def := range b {
			out[term] = def
		}
	}
	return out
}

// Sample draws n distinct keys uniformly at random, without replacement.
// Keys are drawn from sorted order so seeded runs reproduce. Returns
// ErrInsufficientTerms when n exceeds the number of live keys; the draw is
// never silently short.
func (b TermBank) Sample(rng *rand.Rand, n int) ([]string, error) {
	if n > len(b) {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrInsufficientTerms, n, len(b))
	}
	if n <= 0 {
		return nil, nil
	}

	keys := b.sortedKeys()

	// Partial Fisher-Yates: after i swaps, keys[:i] is a uniform unordered
	// draw of size i.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(keys)-i)
		keys[i], keys[j] = keys[j], keys[i]
	}

	return keys[:n], nil
}

func (b TermBank) sortedKeys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
