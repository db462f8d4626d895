package category

import (
	"errors"
	"fmt"

	"github.com/hickeroar/bayeseval/bayes/document"
)

var errInvalidCount = errors.New("token count must be positive")

// Category represents a single class and the word occurrences trained into it
type Category struct {
	name   string         // Name of this category
	tokens map[string]int // Map of tokens to their count
	order  []string       // Tokens in the order they were first trained
	tally  int            // Total tokens in this category
	docs   int            // Documents trained into this category
}

// NewCategory returns a pointer to a instance of type Category
func NewCategory(name string) *Category {
	return &Category{
		name:   name,
		tokens: make(map[string]int),
	}
}

// Name returns the category name
func (cat *Category) Name() string {
	return cat.name
}

// TrainToken trains a specific token on this category
func (cat *Category) TrainToken(word string, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: %d", errInvalidCount, count)
	}

	// Creating the token if it doesn't exist, otherwise incrementing it
	if _, ok := cat.tokens[word]; !ok {
		cat.order = append(cat.order, word)
	}
	cat.tokens[word] += count
	cat.tally += count

	return nil
}

// TrainDocument adds every word occurrence of doc to this category
func (cat *Category) TrainDocument(doc *document.Document) {
	doc.Each(func(word string, count int) {
		// Document counts are always positive.
		_ = cat.TrainToken(word, count)
	})
	cat.docs++
}

// GetTokenCount returns at tokens count from this category
func (cat *Category) GetTokenCount(word string) int {
	return cat.tokens[word]
}

// GetTally returns the total of all tokens for this category
func (cat *Category) GetTally() int {
	return cat.tally
}

// GetDistinct returns the number of distinct tokens in this category
func (cat *Category) GetDistinct() int {
	return len(cat.tokens)
}

// GetDocumentCount returns how many documents were trained into this category
func (cat *Category) GetDocumentCount() int {
	return cat.docs
}

// Tokens returns the trained tokens in first-trained order
func (cat *Category) Tokens() []string {
	return append([]string(nil), cat.order...)
}

// Probabilities returns the add-one smoothed probability of every word.
//
// With a nil vocabulary only words trained into this category get an entry
// and the denominator is tally + distinct tokens of this category. With a
// vocabulary every vocabulary word gets an entry and the denominator is
// tally + len(vocabulary).
func (cat *Category) Probabilities(vocabulary []string) map[string]float64 {
	words := cat.order
	if vocabulary != nil {
		words = vocabulary
	}

	factor := float64(cat.tally + len(words))
	probs := make(map[string]float64, len(words))
	for _, word := range words {
		probs[word] = float64(cat.tokens[word]+1) / factor
	}

	return probs
}
