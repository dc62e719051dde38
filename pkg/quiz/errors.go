package quiz

import "errors"

// Validation errors surfaced by generation, assembly, and reconstruction.
// All of them abort the offending call; no partial question or quiz is ever
// returned alongside an error.
var (
	ErrInvalidLength     = errors.New("invalid quiz length")
	ErrInvalidOptions    = errors.New("invalid option count")
	ErrInvalidTerms      = errors.New("invalid matching term count")
	ErrInvalidQuestion   = errors.New("invalid question type")
	ErrIncompleteData    = errors.New("incomplete question data")
	ErrInsufficientTerms = errors.New("insufficient terms in bank")
)
