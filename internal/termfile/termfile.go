// Package termfile loads term-to-definition mappings from JSON or YAML files.
package termfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"quizzable/pkg/quiz"
)

var (
	ErrNoTerms   = errors.New("terms file has no terms")
	ErrEmptyTerm = errors.New("terms file has an empty term or definition")
)

// file is the on-disk shape: a single document holding a terms mapping.
type file struct {
	Terms map[string]string `json:"terms" yaml:"terms"`
}

// Load reads a terms file and returns its mapping as a bank. The format is
// chosen by extension: .json parses as JSON, anything else as YAML. Unknown
// top-level fields and trailing documents are rejected.
func Load(path string) (quiz.TermBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read terms file: %w", err)
	}

	f, err := parse(data, path)
	if err != nil {
		return nil, err
	}

	if len(f.Terms) == 0 {
		return nil, ErrNoTerms
	}
	for term, def := range f.Terms {
		if term == "" || def == "" {
			return nil, fmt.Errorf("%w: %q: %q", ErrEmptyTerm, term, def)
		}
	}

	return quiz.NewTermBank(f.Terms), nil
}

func parse(data []byte, path string) (file, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseJSON(data []byte) (file, error) {
	var f file
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return file{}, fmt.Errorf("parse json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return file{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return file{}, fmt.Errorf("parse json: %w", err)
	}
	return f, nil
}

func parseYAML(data []byte) (file, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return file{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return file{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return file{}, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}
