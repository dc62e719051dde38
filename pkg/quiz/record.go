package quiz

import (
	"fmt"

	"github.com/google/uuid"
)

// Record is the plain representation of one question, keyed by the stable
// interchange field names: "_type", "term", and "answer" on every record,
// plus "options" for mcq, "definition" for tf, and "definitions" for match.
// For match records "term" holds a list and "answer" holds a map; everywhere
// else both are scalars. Values survive JSON and YAML round trips.
type Record map[string]any

const (
	fieldType   = "_type"
	fieldTerm   = "term"
	fieldAnswer = "answer"

	fieldOptions     = "options"
	fieldDefinition  = "definition"
	fieldDefinitions = "definitions"
)

// Records returns one record per question, in quiz order.
func (qz *Quiz) Records() []Record {
	out := make([]Record, 0, len(qz.Questions))
	for _, q := range qz.Questions {
		out = append(out, q.Record())
	}
	return out
}

// FromRecords rebuilds a quiz from records, preserving order. The rebuilt
// quiz gets a fresh ID; identifiers are not part of the record contract.
// Rebuilt questions are field-for-field equal to the ones that produced the
// records.
func FromRecords(records []Record) (*Quiz, error) {
	questions := make([]Question, 0, len(records))
	for i, r := range records {
		q, err := QuestionFromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		questions = append(questions, q)
	}

	return &Quiz{ID: uuid.NewString(), Questions: questions}, nil
}

// QuestionFromRecord rebuilds one question from its record. Records decoded
// from JSON or YAML are accepted as they come: list fields may arrive as
// []any and map fields as map[string]any. Fails with ErrIncompleteData
// naming the first missing or unusable field, or ErrInvalidQuestion for an
// unknown type tag.
func QuestionFromRecord(r Record) (Question, error) {
	tag, err := stringField(r, fieldType)
	if err != nil {
		return nil, err
	}
	t, err := ParseType(tag)
	if err != nil {
		return nil, err
	}

	switch t {
	case TypeFRQ:
		term, err := stringField(r, fieldTerm)
		if err != nil {
			return nil, err
		}
		answer, err := stringField(r, fieldAnswer)
		if err != nil {
			return nil, err
		}
		return &FRQQuestion{Term: term, Answer: answer}, nil

	case TypeMCQ:
		term, err := stringField(r, fieldTerm)
		if err != nil {
			return nil, err
		}
		answer, err := stringField(r, fieldAnswer)
		if err != nil {
			return nil, err
		}
		options, err := stringSliceField(r, fieldOptions)
		if err != nil {
			return nil, err
		}
		return &MCQQuestion{Term: term, Options: options, Answer: answer}, nil

	case TypeTrueFalse:
		term, err := stringField(r, fieldTerm)
		if err != nil {
			return nil, err
		}
		answer, err := boolField(r, fieldAnswer)
		if err != nil {
			return nil, err
		}
		definition, err := stringField(r, fieldDefinition)
		if err != nil {
			return nil, err
		}
		return &TrueFalseQuestion{Term: term, Definition: definition, Answer: answer}, nil

	case TypeMatch:
		terms, err := stringSliceField(r, fieldTerm)
		if err != nil {
			return nil, err
		}
		answer, err := stringMapField(r, fieldAnswer)
		if err != nil {
			return nil, err
		}
		definitions, err := stringSliceField(r, fieldDefinitions)
		if err != nil {
			return nil, err
		}
		return &MatchQuestion{Terms: terms, Definitions: definitions, Answer: answer}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidQuestion, tag)
	}
}

func stringField(r Record, key string) (string, error) {
	v, ok := r[key]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrIncompleteData, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", ErrIncompleteData, key)
	}
	return s, nil
}

func boolField(r Record, key string) (bool, error) {
	v, ok := r[key]
	if !ok {
		return false, fmt.Errorf("%w: missing field %q", ErrIncompleteData, key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: field %q is not a bool", ErrIncompleteData, key)
	}
	return b, nil
}

func stringSliceField(r Record, key string) ([]string, error) {
	v, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrIncompleteData, key)
	}
	switch vv := v.(type) {
	case []string:
		return append([]string(nil), vv...), nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field %q holds a non-string entry", ErrIncompleteData, key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: field %q is not a list", ErrIncompleteData, key)
	}
}

func stringMapField(r Record, key string) (map[string]string, error) {
	v, ok := r[key]
	if !ok {
		return nil, fmt.Errorf("%w: missing field %q", ErrIncompleteData, key)
	}
	switch vv := v.(type) {
	case map[string]string:
		out := make(map[string]string, len(vv))
		for k, s := range vv {
			out[k] = s
		}
		return out, nil
	case map[string]any:
		out := make(map[string]string, len(vv))
		for k, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("%w: field %q holds a non-string entry", ErrIncompleteData, key)
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: field %q is not a map", ErrIncompleteData, key)
	}
}
