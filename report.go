package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hickeroar/bayeseval/corpus"
	"github.com/hickeroar/bayeseval/evaluation"
)

// EvaluationReport is the outcome of one CLI run
type EvaluationReport struct {
	Dataset         string            `json:"dataset"`
	Classes         []string          `json:"classes"`
	Documents       map[string]int    `json:"documents"`
	Holdout         evaluation.Result `json:"holdout"`
	CrossValidation evaluation.Result `json:"crossValidation"`
	Sample          *SampleReport     `json:"sample,omitempty"`
}

// SampleReport is the classification of the text passed with -classify
type SampleReport struct {
	Text     string             `json:"text"`
	Category string             `json:"category"`
	Scores   map[string]float64 `json:"scores"`
}

// NewEvaluationReport Gets an assembled instance of EvaluationReport
func NewEvaluationReport(dataset string, c *corpus.Corpus, holdout, crossValidation evaluation.Result) *EvaluationReport {
	documents := make(map[string]int, len(c.Classes()))
	for _, class := range c.Classes() {
		documents[class] = c.Count(class)
	}
	return &EvaluationReport{
		Dataset:         dataset,
		Classes:         c.Classes(),
		Documents:       documents,
		Holdout:         holdout,
		CrossValidation: crossValidation,
	}
}

// WriteText prints one line per accuracy, plus the sample classification
// when present.
func (r *EvaluationReport) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "holdout accuracy: %.4f\n", r.Holdout.Accuracy); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "cross-validation accuracy: %.4f\n", r.CrossValidation.Accuracy); err != nil {
		return err
	}
	if r.Sample != nil {
		if _, err := fmt.Fprintf(w, "sample class: %s\n", r.Sample.Category); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints the report as a single indented JSON document.
func (r *EvaluationReport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
