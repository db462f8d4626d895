// Package document holds the labeled bag-of-words sample the classifier is
// trained on and evaluated against.
package document

import (
	"fmt"
	"slices"

	"github.com/hickeroar/bayeseval/bayes/tokenizer"
)

// Document is one text sample reduced to its word occurrences. It is
// immutable once constructed and safe to share between goroutines.
type Document struct {
	Label string // Class the document is known to belong to, empty when unknown

	tokens     []string
	words      []string // distinct tokens in first-occurrence order
	wordCounts map[string]int
}

// New builds a Document from already tokenized text. The token slice is copied.
func New(label string, tokens []string) *Document {
	doc := &Document{
		Label:      label,
		tokens:     slices.Clone(tokens),
		wordCounts: make(map[string]int),
	}

	for _, token := range doc.tokens {
		if _, ok := doc.wordCounts[token]; !ok {
			doc.words = append(doc.words, token)
		}
		doc.wordCounts[token]++
	}

	return doc
}

// FromText tokenizes text with tok, removing the given stop words, and
// builds a Document from the result.
func FromText(label, text string, tok *tokenizer.Tokenizer, stop tokenizer.StopWords) (*Document, error) {
	tokens, err := tok.Tokenize(text, stop)
	if err != nil {
		return nil, fmt.Errorf("tokenize document: %w", err)
	}
	return New(label, tokens), nil
}

// Tokens returns a copy of the counted tokens in their original order.
func (d *Document) Tokens() []string {
	return slices.Clone(d.tokens)
}

// Words returns a copy of the distinct words in first-occurrence order.
func (d *Document) Words() []string {
	return slices.Clone(d.words)
}

// Count returns how many times word occurs in the document.
func (d *Document) Count(word string) int {
	return d.wordCounts[word]
}

// WordCounts returns a copy of the word to occurrence count mapping.
func (d *Document) WordCounts() map[string]int {
	counts := make(map[string]int, len(d.wordCounts))
	for word, count := range d.wordCounts {
		counts[word] = count
	}
	return counts
}

// Len returns the number of counted tokens.
func (d *Document) Len() int {
	return len(d.tokens)
}

// Distinct returns the number of distinct words.
func (d *Document) Distinct() int {
	return len(d.words)
}

// Each calls fn for every distinct word and its count, in first-occurrence
// order, without copying.
func (d *Document) Each(fn func(word string, count int)) {
	for _, word := range d.words {
		fn(word, d.wordCounts[word])
	}
}
