package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hickeroar/bayeseval/bayes"
	"github.com/hickeroar/bayeseval/bayes/tokenizer"
	"github.com/hickeroar/bayeseval/config"
	"github.com/hickeroar/bayeseval/corpus"
	"github.com/hickeroar/bayeseval/evaluation"
	"github.com/hickeroar/bayeseval/logger"
)

var (
	notifyContext = signal.NotifyContext
	stdout        io.Writer = os.Stdout
	logFatal                = func(v ...interface{}) { log.Fatal(v...) }
	runMain                 = func() error {
		ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return run(ctx, os.Args[1:], stdout)
	}
)

// run loads the dataset named by args and the config, evaluates it with a
// holdout split and with cross-validation, and writes the report to out.
func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("bayeseval", flag.ContinueOnError)
	configPath := flags.String("config", "", "Path to a YAML config file.")
	dataDir := flags.String("data", "", "Dataset root directory, overrides dataset.root.")
	asJSON := flags.Bool("json", false, "Print one JSON report instead of text lines.")
	sample := flags.String("classify", "", "Also classify this text with a model trained on the whole dataset.")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *dataDir != "" {
		cfg.Dataset.Root = *dataDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	tok, err := tokenizer.New(cfg.TokenizerOptions())
	if err != nil {
		return err
	}

	c, err := corpus.Load(ctx, cfg.Dataset.Root, corpus.LoadOptions{
		Classes:       cfg.Dataset.Classes,
		Tokenizer:     tok,
		StopWordsFile: cfg.Dataset.StopWordsFile,
		Shuffle:       cfg.Dataset.Shuffle,
		Seed:          cfg.Dataset.Seed,
		Logger:        logger.WithComponent("corpus"),
	})
	if err != nil {
		return err
	}

	evaluator := evaluation.New(
		evaluation.WithTrainOptions(cfg.TrainOptions()...),
		evaluation.WithParallelism(cfg.Evaluation.Parallelism),
		evaluation.WithLogger(logger.WithComponent("evaluation")),
	)
	holdout, err := evaluator.Holdout(ctx, c)
	if err != nil {
		return err
	}
	crossValidation, err := evaluator.CrossValidation(ctx, c)
	if err != nil {
		return err
	}

	report := NewEvaluationReport(cfg.Dataset.Root, c, holdout, crossValidation)
	if *sample != "" {
		if report.Sample, err = classifySample(c, tok, cfg.TrainOptions(), *sample); err != nil {
			return err
		}
	}

	if *asJSON {
		return report.WriteJSON(out)
	}
	return report.WriteText(out)
}

// classifySample trains on every document of c. Sample words the model has
// no entry for are skipped, so stop words need no filtering here.
func classifySample(c *corpus.Corpus, tok *tokenizer.Tokenizer, opts []bayes.Option, sample string) (*SampleReport, error) {
	partition := make(corpus.Partition, len(c.Classes()))
	for _, class := range c.Classes() {
		partition[class] = c.Documents(class)
	}

	model, err := bayes.Train(c.Classes(), partition, opts...)
	if err != nil {
		return nil, fmt.Errorf("train on full dataset: %w", err)
	}

	classifier := bayes.NewClassifier(model, tok, tokenizer.NewStopWords())
	scores, err := classifier.Score(sample)
	if err != nil {
		return nil, err
	}
	result, err := classifier.Classify(sample)
	if err != nil {
		return nil, err
	}

	return &SampleReport{
		Text:     sample,
		Category: result.Category,
		Scores:   scores,
	}, nil
}

func main() {
	if err := runMain(); err != nil {
		logFatal(err)
	}
}
