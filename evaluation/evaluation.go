// Package evaluation measures classifier accuracy on a corpus with a
// holdout split or k-fold cross-validation.
package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/hickeroar/bayeseval/bayes"
	"github.com/hickeroar/bayeseval/corpus"
)

// TestFraction is the share of the corpus the accuracy denominator is
// computed from, for holdout and for every cross-validation fold.
const TestFraction = 0.2

// ErrEmptyCorpus is returned when the corpus holds no documents.
var ErrEmptyCorpus = errors.New("corpus is empty")

// Result is the outcome of one evaluation run.
//
// For a single split Accuracy is Correct / Denominator, capped at 1. For
// cross-validation Accuracy is the mean of the fold accuracies while
// Correct, Tested, Denominator and PerClass are sums over the folds, so
// Correct / Denominator is not Accuracy there; Folds holds each split.
type Result struct {
	Accuracy    float64        `json:"accuracy"`
	Correct     int            `json:"correct"`
	Tested      int            `json:"tested"`
	Denominator int            `json:"denominator"`
	PerClass    map[string]int `json:"perClass"`
	Folds       []Result       `json:"folds,omitempty"`
}

// Evaluator trains and tests models over corpus partitions.
type Evaluator struct {
	trainOptions []bayes.Option
	folds        int
	parallelism  int
	logger       *slog.Logger
}

// Option customises an Evaluator.
type Option func(*Evaluator)

// WithTrainOptions passes options to every bayes.Train call.
func WithTrainOptions(opts ...bayes.Option) Option {
	return func(e *Evaluator) { e.trainOptions = append(e.trainOptions, opts...) }
}

// WithParallelism sets how many cross-validation folds run at once.
func WithParallelism(n int) Option {
	return func(e *Evaluator) {
		if n > 0 {
			e.parallelism = n
		}
	}
}

// WithLogger sets the logger used for run summaries.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Evaluator running corpus.DefaultFolds folds sequentially.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		folds:       corpus.DefaultFolds,
		parallelism: 1,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Denominator returns ceil(TestFraction * total), the number accuracy is
// divided by. It is derived from the corpus size and can differ from the
// number of documents the split actually tests.
func Denominator(total int) int {
	return int(math.Ceil(TestFraction * float64(total)))
}

// Accuracy returns correct / Denominator(total), capped at 1.
func Accuracy(correct, total int) float64 {
	denominator := Denominator(total)
	if denominator == 0 {
		return 0
	}
	return math.Min(1, float64(correct)/float64(denominator))
}

// Holdout trains on the first 80% of every class and tests on the rest.
func (e *Evaluator) Holdout(ctx context.Context, c *corpus.Corpus) (Result, error) {
	total := c.Len()
	if total == 0 {
		return Result{}, ErrEmptyCorpus
	}

	train, test := c.Holdout()
	result, err := e.run(ctx, c.Classes(), train, test, total)
	if err != nil {
		return Result{}, fmt.Errorf("holdout: %w", err)
	}

	e.logger.Info("holdout evaluated",
		"accuracy", result.Accuracy,
		"correct", result.Correct,
		"tested", result.Tested,
		"denominator", result.Denominator,
	)
	return result, nil
}

// CrossValidation runs one holdout per fold and averages the fold
// accuracies with equal weight. Folds never share a model.
func (e *Evaluator) CrossValidation(ctx context.Context, c *corpus.Corpus) (Result, error) {
	total := c.Len()
	if total == 0 {
		return Result{}, ErrEmptyCorpus
	}

	classes := c.Classes()
	folds := make([]Result, e.folds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for i := 0; i < e.folds; i++ {
		g.Go(func() error {
			train, test, err := c.Fold(i, e.folds)
			if err != nil {
				return err
			}

			result, err := e.run(ctx, classes, train, test, total)
			if err != nil {
				return fmt.Errorf("fold %d: %w", i, err)
			}

			e.logger.Debug("fold evaluated", "fold", i, "accuracy", result.Accuracy, "correct", result.Correct)
			folds[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("cross-validation: %w", err)
	}

	combined := Result{
		PerClass: make(map[string]int, len(classes)),
		Folds:    folds,
	}
	for _, fold := range folds {
		combined.Accuracy += fold.Accuracy / float64(e.folds)
		combined.Correct += fold.Correct
		combined.Tested += fold.Tested
		combined.Denominator += fold.Denominator
		for class, n := range fold.PerClass {
			combined.PerClass[class] += n
		}
	}

	e.logger.Info("cross-validation evaluated",
		"accuracy", combined.Accuracy,
		"folds", e.folds,
		"correct", combined.Correct,
		"tested", combined.Tested,
	)
	return combined, nil
}

// run trains on train, classifies every test document and scores the
// correct predictions against the corpus-wide denominator.
func (e *Evaluator) run(ctx context.Context, classes []string, train, test corpus.Partition, total int) (Result, error) {
	model, err := bayes.Train(classes, train, e.trainOptions...)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		PerClass:    make(map[string]int, len(classes)),
		Denominator: Denominator(total),
	}
	for _, class := range classes {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		result.PerClass[class] = 0
		for _, doc := range test[class] {
			if model.Classify(doc).Category == class {
				result.PerClass[class]++
				result.Correct++
			}
			result.Tested++
		}
	}
	result.Accuracy = Accuracy(result.Correct, total)

	return result, nil
}
