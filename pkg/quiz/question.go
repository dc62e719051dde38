package quiz

import "fmt"

// Type tags a question variant.
type Type string

// The closed set of question type tags.
const (
	TypeMCQ       Type = "mcq"
	TypeFRQ       Type = "frq"
	TypeTrueFalse Type = "tf"
	TypeMatch     Type = "match"
)

// DefaultTypes returns the allow-list used when a caller does not pick one:
// multiple choice, free response, and true-or-false.
func DefaultTypes() []Type {
	return []Type{TypeMCQ, TypeFRQ, TypeTrueFalse}
}

// ParseType converts a raw tag into a Type.
// Unknown tags return ErrInvalidQuestion.
func ParseType(tag string) (Type, error) {
	switch t := Type(tag); t {
	case TypeMCQ, TypeFRQ, TypeTrueFalse, TypeMatch:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidQuestion, tag)
	}
}

// Question is one generated quiz question. The set of implementations is
// closed: FRQQuestion, MCQQuestion, TrueFalseQuestion, and MatchQuestion.
type Question interface {
	// Type reports the variant's type tag.
	Type() Type
	// Record returns the question's canonical field set for interchange.
	Record() Record
	// consumed lists the bank keys the question used up when generated.
	consumed() []string
}

// FRQQuestion prompts for a free-text response.
type FRQQuestion struct {
	Term   string // prompt shown to the user
	Answer string // expected response
}

func (q *FRQQuestion) Type() Type { return TypeFRQ }

func (q *FRQQuestion) Record() Record {
	return Record{
		fieldType:   string(TypeFRQ),
		fieldTerm:   q.Term,
		fieldAnswer: q.Answer,
	}
}

func (q *FRQQuestion) consumed() []string { return []string{q.Term} }

// Check reports whether response matches the answer exactly.
func (q *FRQQuestion) Check(response string) bool {
	return response == q.Answer
}

// MCQQuestion prompts with a term and a shuffled list of candidate
// definitions, one of which is the correct answer.
type MCQQuestion struct {
	Term    string   // prompt shown to the user
	Options []string // candidate definitions, shuffled
	Answer  string   // the correct entry of Options
}

func (q *MCQQuestion) Type() Type { return TypeMCQ }

func (q *MCQQuestion) Record() Record {
	return Record{
		fieldType:    string(TypeMCQ),
		fieldTerm:    q.Term,
		fieldOptions: append([]string(nil), q.Options...),
		fieldAnswer:  q.Answer,
	}
}

func (q *MCQQuestion) consumed() []string { return []string{q.Term} }

// Check reports whether the chosen option is the correct definition.
func (q *MCQQuestion) Check(option string) bool {
	return option == q.Answer
}

// TrueFalseQuestion presents Definition as a claim about Term. Answer is
// true when the claim shows the term's own definition, false when it shows
// another term's.
type TrueFalseQuestion struct {
	Term       string // prompt shown to the user
	Definition string // the claimed definition
	Answer     bool   // whether the claim is true

	// sampled holds every term drawn while generating the question. The
	// decoy source is drawn even when the claim ends up true, and it counts
	// against the working bank either way.
	sampled []string
}

func (q *TrueFalseQuestion) Type() Type { return TypeTrueFalse }

func (q *TrueFalseQuestion) Record() Record {
	return Record{
		fieldType:       string(TypeTrueFalse),
		fieldTerm:       q.Term,
		fieldDefinition: q.Definition,
		fieldAnswer:     q.Answer,
	}
}

func (q *TrueFalseQuestion) consumed() []string {
	if len(q.sampled) > 0 {
		return q.sampled
	}
	return []string{q.Term}
}

// Check reports whether verdict matches the truth of the claim.
func (q *TrueFalseQuestion) Check(verdict bool) bool {
	return verdict == q.Answer
}

// MatchQuestion prompts with a column of terms to pair against a shuffled
// column of definitions. Answer holds the true pairing regardless of the
// display order.
type MatchQuestion struct {
	Terms       []string          // prompts, in draw order
	Definitions []string          // the terms' definitions, shuffled
	Answer      map[string]string // term to its true definition
}

func (q *MatchQuestion) Type() Type { return TypeMatch }

func (q *MatchQuestion) Record() Record {
	answer := make(map[string]string, len(q.Answer))
	for term, def := range q.Answer {
		answer[term] = def
	}
	return Record{
		fieldType:        string(TypeMatch),
		fieldTerm:        append([]string(nil), q.Terms...),
		fieldDefinitions: append([]string(nil), q.Definitions...),
		fieldAnswer:      answer,
	}
}

func (q *MatchQuestion) consumed() []string { return q.Terms }

// Check reports whether pairing maps every term to its true definition.
func (q *MatchQuestion) Check(pairing map[string]string) bool {
	if len(pairing) != len(q.Answer) {
		return false
	}
	for term, def := range q.Answer {
		if pairing[term] != def {
			return false
		}
	}
	return true
}
