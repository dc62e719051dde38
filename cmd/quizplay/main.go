package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"go.uber.org/zap"

	"quizzable/internal/config"
	"quizzable/internal/logger"
	"quizzable/internal/recordfile"
	"quizzable/internal/termfile"
	"quizzable/internal/ui/play"
	"quizzable/pkg/quiz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// A quiz comes from a records file when -records is set, otherwise one
	// is generated on the fly from the terms file.
	var (
		recordsPath = flag.String("records", "", "Play a saved quiz from a records file (JSON or YAML)")
		termsPath   = flag.String("terms", cfg.TermsPath, "Terms file to generate from when no records file is given")
		length      = flag.Int("length", cfg.Quiz.Length, "Number of questions to generate")
		types       = flag.String("types", strings.Join(cfg.Quiz.Types, ","), "Comma separated question types (mcq, frq, tf, match)")
		answerWith  = flag.String("answer-with", cfg.Quiz.AnswerWith, "Prompt orientation (def, term, both)")
		numOptions  = flag.Int("options", cfg.Quiz.Options, "Options per multiple-choice question")
		matchTerms  = flag.Int("match-terms", cfg.Quiz.MatchTerms, "Pairs per matching question")
		seed        = flag.Uint64("seed", 0, "Random seed (0 draws one from the system)")
		strict      = flag.Bool("strict", false, "Require exact free-response answers")
		noColor     = flag.Bool("no-color", false, "Disable ANSI styling")
	)
	flag.Parse()

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	qz, err := loadQuiz(*recordsPath, *termsPath, *length, *types, *answerWith, *numOptions, *matchTerms, *seed)
	if err != nil {
		zl.Fatal("failed to prepare quiz", zap.Error(err))
	}
	zl.Info("quiz ready",
		zap.String("quiz_id", qz.ID),
		zap.Int("questions", len(qz.Questions)),
	)

	correct, answered, err := play.Run(qz, play.Options{NoColor: *noColor, Strict: *strict})
	if err != nil {
		zl.Fatal("player failed", zap.Error(err))
	}

	fmt.Printf("Score: %d/%d\n", correct, answered)
	if answered < len(qz.Questions) {
		fmt.Printf("(%d of %d questions answered)\n", answered, len(qz.Questions))
	}
}

// loadQuiz reconstructs a quiz from saved records or generates a fresh one.
func loadQuiz(recordsPath, termsPath string, length int, types, answerWith string, numOptions, matchTerms int, seed uint64) (*quiz.Quiz, error) {
	if recordsPath != "" {
		records, err := recordfile.Load(recordsPath)
		if err != nil {
			return nil, err
		}
		return quiz.FromRecords(records)
	}

	quizCfg, err := config.Quiz{
		Length:     length,
		Types:      splitTypes(types),
		AnswerWith: answerWith,
		Options:    numOptions,
		MatchTerms: matchTerms,
	}.QuizConfig()
	if err != nil {
		return nil, err
	}

	bank, err := termfile.Load(termsPath)
	if err != nil {
		return nil, err
	}

	gen := quiz.NewGenerator()
	if seed != 0 {
		gen = quiz.NewSeededGenerator(seed)
	}
	return gen.GenerateQuiz(bank, quizCfg)
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
