package bayes

import (
	"errors"
	"fmt"

	"github.com/hickeroar/bayeseval/bayes/category"
	"github.com/hickeroar/bayeseval/bayes/document"
)

var (
	// ErrNoClasses is returned when training is asked for no classes.
	ErrNoClasses = errors.New("no classes to train")
	// ErrEmptyClass is returned when a class has no training documents,
	// which leaves its smoothing denominator undefined.
	ErrEmptyClass = errors.New("class has no training documents")
)

// Train builds a Model from the training partition. Every class in classes
// must have at least one document. Documents stored under a class not
// listed in classes are ignored.
func Train(classes []string, partition map[string][]*document.Document, opts ...Option) (*Model, error) {
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cats, err := category.NewCategories(classes)
	if err != nil {
		return nil, fmt.Errorf("train: %w", err)
	}

	for _, name := range classes {
		docs := partition[name]
		if len(docs) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyClass, name)
		}

		cat, _ := cats.LookupCategory(name)
		for _, doc := range docs {
			cat.TrainDocument(doc)
		}
	}

	var vocabulary []string
	if o.smoothing == SmoothingSharedVocabulary {
		vocabulary = NewVocabulary(classes, partition).Words()
	}

	model := &Model{
		classes:       cats.Names(),
		probabilities: make(map[string]map[string]float64, cats.Len()),
		documents:     make(map[string]int, cats.Len()),
		smoothing:     o.smoothing,
		scoring:       o.scoring,
	}
	for _, name := range model.classes {
		cat, _ := cats.LookupCategory(name)
		model.probabilities[name] = cat.Probabilities(vocabulary)
		model.documents[name] = cat.GetDocumentCount()
	}

	return model, nil
}
