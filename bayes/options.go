package bayes

import (
	"errors"
	"fmt"
	"strings"
)

// Smoothing selects the denominator used for add-one smoothing.
type Smoothing int

const (
	// SmoothingClassVocabulary counts only the words seen in a class. Words
	// absent from a class get no table entry and do not affect its likelihood.
	SmoothingClassVocabulary Smoothing = iota
	// SmoothingSharedVocabulary uses the vocabulary of the whole training
	// partition for every class, so words unseen in a class are smoothed
	// to 1/(tally + |vocabulary|) instead of being skipped.
	SmoothingSharedVocabulary
)

// Scoring selects how per-word probabilities are combined into a likelihood.
type Scoring int

const (
	// ScoringLinear multiplies probabilities. Long documents underflow to
	// zero, which turns the argmax into a tie.
	ScoringLinear Scoring = iota
	// ScoringLog sums log probabilities.
	ScoringLog
)

var errUnknownSetting = errors.New("unknown setting")

// String returns the configuration name of the smoothing policy.
func (s Smoothing) String() string {
	switch s {
	case SmoothingClassVocabulary:
		return "class"
	case SmoothingSharedVocabulary:
		return "shared"
	default:
		return fmt.Sprintf("Smoothing(%d)", int(s))
	}
}

// ParseSmoothing converts a configuration name into a Smoothing.
func ParseSmoothing(name string) (Smoothing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "class":
		return SmoothingClassVocabulary, nil
	case "shared":
		return SmoothingSharedVocabulary, nil
	default:
		return 0, fmt.Errorf("%w: smoothing %q", errUnknownSetting, name)
	}
}

// String returns the configuration name of the scoring mode.
func (s Scoring) String() string {
	switch s {
	case ScoringLinear:
		return "linear"
	case ScoringLog:
		return "log"
	default:
		return fmt.Sprintf("Scoring(%d)", int(s))
	}
}

// ParseScoring converts a configuration name into a Scoring.
func ParseScoring(name string) (Scoring, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return ScoringLinear, nil
	case "log":
		return ScoringLog, nil
	default:
		return 0, fmt.Errorf("%w: scoring %q", errUnknownSetting, name)
	}
}

type options struct {
	smoothing Smoothing
	scoring   Scoring
}

// Option customises Train.
type Option func(*options)

// WithSmoothing selects the smoothing policy.
func WithSmoothing(s Smoothing) Option {
	return func(o *options) { o.smoothing = s }
}

// WithScoring selects how the trained model combines probabilities.
func WithScoring(s Scoring) Option {
	return func(o *options) { o.scoring = s }
}
