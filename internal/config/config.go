package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"quizzable/pkg/quiz"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env       string `mapstructure:"env"`        // current application environment (local, dev, prod etc)
	TermsPath string `mapstructure:"terms_path"` // path to the terms file (JSON or YAML)
	Quiz      Quiz   `mapstructure:"quiz"`       // quiz generation defaults
	Output    Output `mapstructure:"output"`     // record output defaults
}

// Quiz contains default quiz generation parameters. Each field can be
// overridden per run with command line flags.
type Quiz struct {
	Length     int      `mapstructure:"length"`      // number of questions per quiz
	Types      []string `mapstructure:"types"`       // allowed question types (mcq, frq, tf, match)
	AnswerWith string   `mapstructure:"answer_with"` // prompt orientation: def, term, or both
	Options    int      `mapstructure:"options"`     // options per multiple-choice question
	MatchTerms int      `mapstructure:"match_terms"` // pairs per matching question
}

// Output contains record output parameters.
type Output struct {
	Format string `mapstructure:"format"` // record encoding: json or yaml
}

// QuizConfig converts the quiz section into assembly parameters, validating
// the type tags.
func (q Quiz) QuizConfig() (quiz.QuizConfig, error) {
	types := make([]quiz.Type, 0, len(q.Types))
	for _, tag := range q.Types {
		t, err := quiz.ParseType(tag)
		if err != nil {
			return quiz.QuizConfig{}, err
		}
		types = append(types, t)
	}

	return quiz.QuizConfig{
		Types:      types,
		Length:     q.Length,
		AnswerWith: quiz.Orientation(q.AnswerWith),
		NumOptions: q.Options,
		NumTerms:   q.MatchTerms,
	}, nil
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Load variables from a .env file if one exists.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("terms_path", "assets/terms.json")
	v.SetDefault("quiz.length", 10)
	v.SetDefault("quiz.types", []string{"mcq", "frq", "tf"})
	v.SetDefault("quiz.answer_with", "def")
	v.SetDefault("quiz.options", 4)
	v.SetDefault("quiz.match_terms", 5)
	v.SetDefault("output.format", "json")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("terms_path", "TERMS_PATH")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
