package bayes

import (
	"math"

	"github.com/hickeroar/bayeseval/bayes/document"
)

// Classification is the result of classifying a document.
type Classification struct {
	Category string
	Score    float64
}

// Model is a trained per-class word probability table. It is immutable and
// safe for concurrent use.
type Model struct {
	classes       []string
	probabilities map[string]map[string]float64
	documents     map[string]int
	smoothing     Smoothing
	scoring       Scoring
}

// Classes returns the classes in declaration order.
func (m *Model) Classes() []string {
	return append([]string(nil), m.classes...)
}

// Smoothing returns the smoothing policy the model was trained with.
func (m *Model) Smoothing() Smoothing {
	return m.smoothing
}

// Scoring returns how the model combines probabilities.
func (m *Model) Scoring() Scoring {
	return m.scoring
}

// Probability returns p(word|class). The boolean is false when the class
// has no entry for the word.
func (m *Model) Probability(class, word string) (float64, bool) {
	p, ok := m.probabilities[class][word]
	return p, ok
}

// Words returns how many words have an entry for class.
func (m *Model) Words(class string) int {
	return len(m.probabilities[class])
}

// Documents returns how many training documents class was built from.
func (m *Model) Documents(class string) int {
	return m.documents[class]
}

// Likelihoods returns one score per class, in declaration order.
//
// Linear scoring multiplies p(word|class)^count over the document words
// that have an entry for the class; words without an entry contribute a
// factor of 1. Log scoring sums count*ln(p) over the same words.
//
// Factors are applied in the document's first-occurrence word order, so a
// given document and model always produce bit-identical scores. Another
// multiplication order may differ in the last ulp, which matters only for
// exact ties.
func (m *Model) Likelihoods(doc *document.Document) []float64 {
	scores := make([]float64, len(m.classes))
	for i, class := range m.classes {
		table := m.probabilities[class]
		score := 1.0
		if m.scoring == ScoringLog {
			score = 0
		}

		doc.Each(func(word string, count int) {
			p, ok := table[word]
			if !ok {
				return
			}
			if m.scoring == ScoringLog {
				score += float64(count) * math.Log(p)
			} else {
				score *= math.Pow(p, float64(count))
			}
		})

		scores[i] = score
	}
	return scores
}

// Score returns the likelihood of every class keyed by class name.
func (m *Model) Score(doc *document.Document) map[string]float64 {
	scores := make(map[string]float64, len(m.classes))
	for i, score := range m.Likelihoods(doc) {
		scores[m.classes[i]] = score
	}
	return scores
}

// Classify returns the class with the highest likelihood. Classes are
// scanned in declaration order and a later class only wins when its score
// is strictly greater, so ties go to the earliest declared class.
func (m *Model) Classify(doc *document.Document) Classification {
	if len(m.classes) == 0 {
		return Classification{}
	}

	scores := m.Likelihoods(doc)
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[best] < scores[i] {
			best = i
		}
	}

	return Classification{
		Category: m.classes[best],
		Score:    scores[best],
	}
}
