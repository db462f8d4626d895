// Package config loads the evaluation settings from a YAML file with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hickeroar/bayeseval/bayes"
	"github.com/hickeroar/bayeseval/bayes/tokenizer"
	"github.com/hickeroar/bayeseval/corpus"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the top-level configuration.
type Config struct {
	Dataset    DatasetConfig    `yaml:"dataset"`
	Tokenizer  TokenizerConfig  `yaml:"tokenizer"`
	Model      ModelConfig      `yaml:"model"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// DatasetConfig locates the class-per-directory dataset.
type DatasetConfig struct {
	Root          string   `yaml:"root"`
	Classes       []string `yaml:"classes"`
	Tagged        bool     `yaml:"tagged"`
	Shuffle       bool     `yaml:"shuffle"`
	Seed          uint64   `yaml:"seed"`
	StopWordsFile string   `yaml:"stopWordsFile"`
}

// TokenizerConfig controls text normalisation.
type TokenizerConfig struct {
	Lowercase        bool   `yaml:"lowercase"`
	StripPunctuation bool   `yaml:"stripPunctuation"`
	StemLanguage     string `yaml:"stemLanguage"`
	TaggedField      int    `yaml:"taggedField"`
}

// ModelConfig selects the training and scoring variants.
type ModelConfig struct {
	Smoothing string `yaml:"smoothing"`
	Scoring   string `yaml:"scoring"`
}

// EvaluationConfig controls how cross-validation folds are scheduled.
type EvaluationConfig struct {
	Parallelism int `yaml:"parallelism"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if provided) over the defaults and applies
// environment-variable overrides. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Root:          "./data",
			Classes:       []string{"positive", "negative"},
			StopWordsFile: corpus.DefaultStopWordsFile,
		},
		Tokenizer: TokenizerConfig{
			Lowercase:        true,
			StripPunctuation: true,
			TaggedField:      tokenizer.DefaultTaggedField,
		},
		Model: ModelConfig{
			Smoothing: bayes.SmoothingClassVocabulary.String(),
			Scoring:   bayes.ScoringLinear.String(),
		},
		Evaluation: EvaluationConfig{
			Parallelism: 1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides reads BAYESEVAL_* environment variables and overrides
// the corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BAYESEVAL_DATASET_ROOT"); v != "" {
		cfg.Dataset.Root = v
	}
	if v := os.Getenv("BAYESEVAL_DATASET_CLASSES"); v != "" {
		cfg.Dataset.Classes = splitList(v)
	}
	if v := os.Getenv("BAYESEVAL_DATASET_TAGGED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Dataset.Tagged = b
		}
	}
	if v := os.Getenv("BAYESEVAL_DATASET_SHUFFLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Dataset.Shuffle = b
		}
	}
	if v := os.Getenv("BAYESEVAL_DATASET_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Dataset.Seed = seed
		}
	}
	if v := os.Getenv("BAYESEVAL_DATASET_STOP_WORDS_FILE"); v != "" {
		cfg.Dataset.StopWordsFile = v
	}
	if v := os.Getenv("BAYESEVAL_TOKENIZER_LOWERCASE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tokenizer.Lowercase = b
		}
	}
	if v := os.Getenv("BAYESEVAL_TOKENIZER_STRIP_PUNCTUATION"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tokenizer.StripPunctuation = b
		}
	}
	if v := os.Getenv("BAYESEVAL_TOKENIZER_STEM_LANGUAGE"); v != "" {
		cfg.Tokenizer.StemLanguage = v
	}
	if v := os.Getenv("BAYESEVAL_TOKENIZER_TAGGED_FIELD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Tokenizer.TaggedField = n
		}
	}
	if v := os.Getenv("BAYESEVAL_MODEL_SMOOTHING"); v != "" {
		cfg.Model.Smoothing = v
	}
	if v := os.Getenv("BAYESEVAL_MODEL_SCORING"); v != "" {
		cfg.Model.Scoring = v
	}
	if v := os.Getenv("BAYESEVAL_EVALUATION_PARALLELISM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Evaluation.Parallelism = n
		}
	}
	if v := os.Getenv("BAYESEVAL_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("BAYESEVAL_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Dataset.Root == "" {
		return fmt.Errorf("%w: dataset.root is empty", ErrInvalidConfig)
	}
	if len(c.Dataset.Classes) == 0 {
		return fmt.Errorf("%w: dataset.classes is empty", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Dataset.Classes))
	for _, class := range c.Dataset.Classes {
		if class == "" || seen[class] {
			return fmt.Errorf("%w: dataset.classes has an empty or duplicate entry %q", ErrInvalidConfig, class)
		}
		seen[class] = true
	}
	if _, err := c.SmoothingPolicy(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.ScoringMode(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Evaluation.Parallelism < 1 {
		return fmt.Errorf("%w: evaluation.parallelism must be at least 1", ErrInvalidConfig)
	}
	if _, err := tokenizer.New(c.TokenizerOptions()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// TokenizerOptions converts the dataset and tokenizer sections.
func (c *Config) TokenizerOptions() tokenizer.Options {
	return tokenizer.Options{
		Tagged:           c.Dataset.Tagged,
		TaggedField:      c.Tokenizer.TaggedField,
		Lowercase:        c.Tokenizer.Lowercase,
		StripPunctuation: c.Tokenizer.StripPunctuation,
		StemLanguage:     c.Tokenizer.StemLanguage,
	}
}

// SmoothingPolicy parses model.smoothing.
func (c *Config) SmoothingPolicy() (bayes.Smoothing, error) {
	return bayes.ParseSmoothing(c.Model.Smoothing)
}

// ScoringMode parses model.scoring.
func (c *Config) ScoringMode() (bayes.Scoring, error) {
	return bayes.ParseScoring(c.Model.Scoring)
}

// TrainOptions returns the bayes options selected by the model section.
// Invalid values fall back to the defaults; call Validate first.
func (c *Config) TrainOptions() []bayes.Option {
	smoothing, _ := c.SmoothingPolicy()
	scoring, _ := c.ScoringMode()
	return []bayes.Option{bayes.WithSmoothing(smoothing), bayes.WithScoring(scoring)}
}
