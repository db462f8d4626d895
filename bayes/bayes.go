// Package bayes trains naive Bayes word probability tables from labeled
// documents and classifies unseen documents against them.
package bayes

import (
	"errors"
	"fmt"

	"github.com/hickeroar/bayeseval/bayes/document"
	"github.com/hickeroar/bayeseval/bayes/tokenizer"
)

var errNilModel = errors.New("model is nil")

// plainTokenizer splits on whitespace only. Options without a stemming
// language never fail validation.
var plainTokenizer, _ = tokenizer.New(tokenizer.Options{})

// Classifier is responsible for classifying raw text samples with a trained model
type Classifier struct {
	Model     *Model
	Tokenizer *tokenizer.Tokenizer
	StopWords tokenizer.StopWords
}

// NewClassifier returns a pointer to a instance of type Classifier
func NewClassifier(model *Model, tok *tokenizer.Tokenizer, stop tokenizer.StopWords) *Classifier {
	return &Classifier{
		Model:     model,
		Tokenizer: tok,
		StopWords: stop,
	}
}

func (c *Classifier) tokenizeText(sample string) (*document.Document, error) {
	tok := c.Tokenizer
	if tok == nil {
		tok = plainTokenizer
	}
	return document.FromText("", sample, tok, c.StopWords)
}

// Classify tokenizes sample and returns its most likely class.
func (c *Classifier) Classify(sample string) (Classification, error) {
	if c.Model == nil {
		return Classification{}, errNilModel
	}

	doc, err := c.tokenizeText(sample)
	if err != nil {
		return Classification{}, fmt.Errorf("classify: %w", err)
	}
	return c.Model.Classify(doc), nil
}

// Score tokenizes sample and returns the likelihood of every class.
func (c *Classifier) Score(sample string) (map[string]float64, error) {
	if c.Model == nil {
		return nil, errNilModel
	}

	doc, err := c.tokenizeText(sample)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}
	return c.Model.Score(doc), nil
}
