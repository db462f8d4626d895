package bayes

import "github.com/hickeroar/bayeseval/bayes/document"

// Vocabulary is the set of distinct words of a training partition across
// all classes. Test documents never contribute words, so shared smoothing
// does not see the held-out split.
type Vocabulary struct {
	words []string
	index map[string]struct{}
}

// NewVocabulary collects the distinct words of the partition, visiting
// classes in the given order so the word order is deterministic.
func NewVocabulary(classes []string, partition map[string][]*document.Document) *Vocabulary {
	v := &Vocabulary{index: make(map[string]struct{})}
	for _, class := range classes {
		for _, doc := range partition[class] {
			doc.Each(func(word string, _ int) {
				if _, ok := v.index[word]; ok {
					return
				}
				v.index[word] = struct{}{}
				v.words = append(v.words, word)
			})
		}
	}
	return v
}

// Contains reports whether word occurs anywhere in the training partition.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.index[word]
	return ok
}

// Size returns the number of distinct words.
func (v *Vocabulary) Size() int {
	return len(v.words)
}

// Words returns the words in first-seen order.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}
