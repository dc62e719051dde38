package config

import (
	"errors"
	"testing"

	"quizzable/pkg/quiz"
)

// TestLoadDefaults verifies defaults apply without a config file.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("TERMS_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.Length != 10 {
		t.Fatalf("expected default length 10, got %d", cfg.Quiz.Length)
	}
	if cfg.Quiz.Options != 4 || cfg.Quiz.MatchTerms != 5 {
		t.Fatalf("unexpected defaults: %+v", cfg.Quiz)
	}
	if cfg.Quiz.AnswerWith != "def" {
		t.Fatalf("expected default orientation def, got %q", cfg.Quiz.AnswerWith)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("expected default format json, got %q", cfg.Output.Format)
	}
}

// TestLoadEnvOverrides verifies environment variables override defaults.
func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TERMS_PATH", "data/vocab.yaml")
	t.Setenv("QUIZ_LENGTH", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected env production, got %q", cfg.Env)
	}
	if cfg.TermsPath != "data/vocab.yaml" {
		t.Fatalf("expected terms path override, got %q", cfg.TermsPath)
	}
	if cfg.Quiz.Length != 25 {
		t.Fatalf("expected length override 25, got %d", cfg.Quiz.Length)
	}
}

// TestQuizConfigConversion verifies type tags convert and invalid tags fail.
func TestQuizConfigConversion(t *testing.T) {
	q := Quiz{
		Length:     5,
		Types:      []string{"mcq", "match"},
		AnswerWith: "both",
		Options:    3,
		MatchTerms: 4,
	}

	qcfg, err := q.QuizConfig()
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(qcfg.Types) != 2 || qcfg.Types[0] != quiz.TypeMCQ || qcfg.Types[1] != quiz.TypeMatch {
		t.Fatalf("unexpected types: %v", qcfg.Types)
	}
	if qcfg.AnswerWith != quiz.AnswerWithBoth {
		t.Fatalf("unexpected orientation: %q", qcfg.AnswerWith)
	}
	if qcfg.Length != 5 || qcfg.NumOptions != 3 || qcfg.NumTerms != 4 {
		t.Fatalf("unexpected parameters: %+v", qcfg)
	}

	q.Types = []string{"mcq", "essay"}
	if _, err := q.QuizConfig(); !errors.Is(err, quiz.ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion, got %v", err)
	}
}
