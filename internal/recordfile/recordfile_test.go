package recordfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quizzable/pkg/quiz"
)

// writeFile creates a file with the given name and content in a temp dir.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// TestLoadJSON verifies records load from a JSON array.
func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "records.json", `[
  {"_type": "frq", "term": "cat", "answer": "gato"},
  {"_type": "tf", "term": "dog", "definition": "gato", "answer": false}
]`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	qz, err := quiz.FromRecords(records)
	if err != nil {
		t.Fatalf("from records: %v", err)
	}
	if len(qz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qz.Questions))
	}
}

// TestLoadYAML verifies records load from a YAML sequence.
func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "records.yaml", `- _type: frq
  term: cat
  answer: gato
- _type: mcq
  term: dog
  options: [perro, gato]
  answer: perro
`)

	records, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	qz, err := quiz.FromRecords(records)
	if err != nil {
		t.Fatalf("from records: %v", err)
	}
	mcq, ok := qz.Questions[1].(*quiz.MCQQuestion)
	if !ok {
		t.Fatalf("expected mcq question, got %T", qz.Questions[1])
	}
	if len(mcq.Options) != 2 || mcq.Answer != "perro" {
		t.Fatalf("unexpected mcq fields: %+v", mcq)
	}
}

// TestLoadRejectsEmpty verifies empty files are refused.
func TestLoadRejectsEmpty(t *testing.T) {
	path := writeFile(t, "records.json", `[]`)
	if _, err := Load(path); !errors.Is(err, ErrNoRecords) {
		t.Fatalf("expected ErrNoRecords, got %v", err)
	}
}

// TestLoadRejectsTrailing verifies trailing documents are refused.
func TestLoadRejectsTrailing(t *testing.T) {
	path := writeFile(t, "records.json", `[{"_type": "frq", "term": "cat", "answer": "gato"}] {"extra": true}`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for trailing data")
	}
}

// TestLoadMissingFile verifies missing paths surface an error.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
