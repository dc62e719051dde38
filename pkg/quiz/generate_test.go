package quiz

import (
	"errors"
	"sort"
	"testing"
)

func animalBank() TermBank {
	return NewTermBank(map[string]string{
		"cat":  "gato",
		"dog":  "perro",
		"bird": "pájaro",
		"fish": "pez",
	})
}

// TestGenerateFRQ verifies the prompt comes from the bank and the answer is
// its definition.
func TestGenerateFRQ(t *testing.T) {
	bank := animalBank()
	g := NewSeededGenerator(1)

	q, err := g.GenerateFRQ(bank)
	if err != nil {
		t.Fatalf("GenerateFRQ returned error: %v", err)
	}
	def, ok := bank[q.Term]
	if !ok {
		t.Fatalf("term %q not in bank", q.Term)
	}
	if q.Answer != def {
		t.Errorf("expected answer %q, got %q", def, q.Answer)
	}
	if !q.Check(def) || q.Check("wrong") {
		t.Errorf("Check misjudged responses for %q", q.Term)
	}
}

// TestGenerateMCQ verifies option count, answer membership, and that decoys
// never duplicate the correct answer.
func TestGenerateMCQ(t *testing.T) {
	bank := animalBank()
	g := NewSeededGenerator(2)

	q, err := g.GenerateMCQ(bank, 3)
	if err != nil {
		t.Fatalf("GenerateMCQ returned error: %v", err)
	}
	if len(q.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(q.Options))
	}
	if q.Answer != bank[q.Term] {
		t.Errorf("expected answer %q for term %q, got %q", bank[q.Term], q.Term, q.Answer)
	}

	found := 0
	seen := make(map[string]bool)
	for _, opt := range q.Options {
		if opt == q.Answer {
			found++
		}
		if seen[opt] {
			t.Errorf("option %q appears twice", opt)
		}
		seen[opt] = true
	}
	if found != 1 {
		t.Errorf("expected answer to appear exactly once in options, got %d", found)
	}
}

// TestGenerateMCQBounds verifies the option count limits against the bank.
func TestGenerateMCQBounds(t *testing.T) {
	bank := animalBank()
	g := NewSeededGenerator(3)

	if _, err := g.GenerateMCQ(bank, 0); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("expected ErrInvalidOptions for 0 options, got %v", err)
	}
	if _, err := g.GenerateMCQ(bank, len(bank)+1); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("expected ErrInvalidOptions for oversized count, got %v", err)
	}
	if _, err := g.GenerateMCQ(bank, len(bank)); err != nil {
		t.Errorf("expected full-bank option count to work, got %v", err)
	}
}

// TestGenerateTrueFalse verifies claim construction on both answer paths and
// that both drawn terms count as consumed.
func TestGenerateTrueFalse(t *testing.T) {
	bank := animalBank()
	g := NewSeededGenerator(4)

	var sawTrue, sawFalse bool
	for i := 0; i < 64; i++ {
		q, err := g.GenerateTrueFalse(bank)
		if err != nil {
			t.Fatalf("GenerateTrueFalse returned error: %v", err)
		}

		if q.Answer {
			sawTrue = true
			if q.Definition != bank[q.Term] {
				t.Errorf("true claim shows %q, want %q", q.Definition, bank[q.Term])
			}
		} else {
			sawFalse = true
			if q.Definition == bank[q.Term] {
				t.Errorf("false claim shows the term's own definition %q", q.Definition)
			}
		}

		used := q.consumed()
		if len(used) != 2 || used[0] == used[1] {
			t.Fatalf("expected two distinct consumed terms, got %v", used)
		}
		if used[0] != q.Term {
			t.Errorf("expected prompt term first in %v", used)
		}
	}
	if !sawTrue || !sawFalse {
		t.Errorf("expected both answer paths over 64 draws, got true=%v false=%v", sawTrue, sawFalse)
	}
}

// TestGenerateMatch verifies column sizes, the answer mapping, and that the
// definitions column is a permutation of the answers.
func TestGenerateMatch(t *testing.T) {
	bank := animalBank()
	g := NewSeededGenerator(5)

	q, err := g.GenerateMatch(bank, 3)
	if err != nil {
		t.Fatalf("GenerateMatch returned error: %v", err)
	}
	if len(q.Terms) != 3 || len(q.Definitions) != 3 || len(q.Answer) != 3 {
		t.Fatalf("expected 3 terms, definitions, and answers, got %d/%d/%d",
			len(q.Terms), len(q.Definitions), len(q.Answer))
	}

	var want []string
	for _, term := range q.Terms {
		if q.Answer[term] != bank[term] {
			t.Errorf("expected %q to map to %q, got %q", term, bank[term], q.Answer[term])
		}
		want = append(want, bank[term])
	}

	got := append([]string(nil), q.Definitions...)
	sort.Strings(got)
	sort.Strings(want)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("definitions %v are not a permutation of answers %v", q.Definitions, want)
		}
	}

	if !q.Check(q.Answer) {
		t.Errorf("Check rejected the true pairing")
	}
	wrong := map[string]string{q.Terms[0]: "nope"}
	if q.Check(wrong) {
		t.Errorf("Check accepted a wrong pairing")
	}
}

// TestGenerateMatchBounds verifies the pair count limits against the bank.
func TestGenerateMatchBounds(t *testing.T) {
	bank := animalBank()
	g := NewSeededGenerator(6)

	if _, err := g.GenerateMatch(bank, 0); !errors.Is(err, ErrInvalidTerms) {
		t.Errorf("expected ErrInvalidTerms for 0 pairs, got %v", err)
	}
	if _, err := g.GenerateMatch(bank, len(bank)+1); !errors.Is(err, ErrInvalidTerms) {
		t.Errorf("expected ErrInvalidTerms for oversized count, got %v", err)
	}
}

// TestGenerateRandomDefaultTypes verifies the nil allow-list falls back to
// mcq, frq, and tf.
func TestGenerateRandomDefaultTypes(t *testing.T) {
	bank := animalBank()
	g := NewSeededGenerator(7)

	for i := 0; i < 32; i++ {
		q, err := g.GenerateRandom(bank, nil, 4, 5)
		if err != nil {
			t.Fatalf("GenerateRandom returned error: %v", err)
		}
		switch q.Type() {
		case TypeMCQ, TypeFRQ, TypeTrueFalse:
		default:
			t.Fatalf("unexpected type %q from default allow-list", q.Type())
		}
	}
}

// TestGenerateRandomUnknownType verifies the allow-list is validated before
// any draw happens.
func TestGenerateRandomUnknownType(t *testing.T) {
	bank := animalBank()
	g := NewSeededGenerator(8)

	_, err := g.GenerateRandom(bank, []Type{TypeFRQ, Type("essay")}, 4, 5)
	if !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion, got %v", err)
	}
}

// TestParseType verifies tag parsing over the closed set.
func TestParseType(t *testing.T) {
	for _, tag := range []string{"mcq", "frq", "tf", "match"} {
		got, err := ParseType(tag)
		if err != nil || string(got) != tag {
			t.Errorf("ParseType(%q) = %q, %v", tag, got, err)
		}
	}
	if _, err := ParseType("essay"); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("expected ErrInvalidQuestion for unknown tag, got %v", err)
	}
}
