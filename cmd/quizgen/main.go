package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"quizzable/internal/config"
	"quizzable/internal/logger"
	"quizzable/internal/termfile"
	"quizzable/pkg/quiz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Flags default to the loaded configuration so either can drive a run.
	var (
		termsPath  = flag.String("terms", cfg.TermsPath, "Terms file (JSON or YAML)")
		length     = flag.Int("length", cfg.Quiz.Length, "Number of questions to generate")
		types      = flag.String("types", strings.Join(cfg.Quiz.Types, ","), "Comma separated question types (mcq, frq, tf, match)")
		answerWith = flag.String("answer-with", cfg.Quiz.AnswerWith, "Prompt orientation (def, term, both)")
		numOptions = flag.Int("options", cfg.Quiz.Options, "Options per multiple-choice question")
		matchTerms = flag.Int("match-terms", cfg.Quiz.MatchTerms, "Pairs per matching question")
		seed       = flag.Uint64("seed", 0, "Random seed (0 draws one from the system)")
		outputFile = flag.String("output", "", "Output file for quiz records (default: stdout)")
		format     = flag.String("format", cfg.Output.Format, "Record encoding (json or yaml)")
	)
	flag.Parse()

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	quizCfg, err := config.Quiz{
		Length:     *length,
		Types:      splitTypes(*types),
		AnswerWith: *answerWith,
		Options:    *numOptions,
		MatchTerms: *matchTerms,
	}.QuizConfig()
	if err != nil {
		zl.Fatal("invalid quiz parameters", zap.Error(err))
	}

	bank, err := termfile.Load(*termsPath)
	if err != nil {
		zl.Fatal("failed to load terms", zap.String("path", *termsPath), zap.Error(err))
	}
	zl.Info("terms loaded", zap.String("path", *termsPath), zap.Int("terms", len(bank)))

	gen := quiz.NewGenerator()
	if *seed != 0 {
		gen = quiz.NewSeededGenerator(*seed)
	}

	qz, err := gen.GenerateQuiz(bank, quizCfg)
	if err != nil {
		zl.Fatal("failed to generate quiz", zap.Error(err))
	}
	zl.Info("quiz generated",
		zap.String("quiz_id", qz.ID),
		zap.Int("questions", len(qz.Questions)),
	)

	out, err := encodeRecords(qz.Records(), *format)
	if err != nil {
		zl.Fatal("failed to encode records", zap.String("format", *format), zap.Error(err))
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, out, 0644); err != nil {
			zl.Fatal("failed to write output", zap.String("path", *outputFile), zap.Error(err))
		}
		zl.Info("quiz saved", zap.String("path", *outputFile))
		return
	}
	fmt.Println(string(out))
}

// encodeRecords serializes records in the requested format.
func encodeRecords(records []quiz.Record, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(records, "", "  ")
	case "yaml":
		return yaml.Marshal(records)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// splitTypes parses a comma separated list of question type tags.
func splitTypes(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
