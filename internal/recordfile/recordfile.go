// Package recordfile loads serialized quiz records from JSON or YAML files.
package recordfile

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

var ErrNoRecords = errors.New("records file has no records")

// Load reads a list of question records from path. The format is chosen by
// extension: .json parses as JSON, anything else as YAML. Trailing documents
// are rejected.
func Load(path string) ([]quiz.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}

	records, err := parse(data, path)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func parse(data []byte, path string) ([]quiz.Record, error) {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return parseJSON(data)
	}
	return parseYAML(data)
}

func parseJSON(data []byte) ([]quiz.Record, error) {
	var records []quiz.Record
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return records, nil
}

func parseYAML(data []byte) ([]quiz.Record, error) {
	var records []quiz.Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return records, nil
}
