// Package corpus groups labeled documents by class and partitions them into
// training and test sets.
package corpus

import (
	"errors"
	"fmt"
	"math"

	"github.com/hickeroar/bayeseval/bayes/document"
)

// DefaultFolds is the number of cross-validation folds.
const DefaultFolds = 5

var (
	// ErrNoClasses is returned when a corpus is created without classes.
	ErrNoClasses = errors.New("no classes declared")
	// ErrDuplicateClass is returned for empty or repeated class names.
	ErrDuplicateClass = errors.New("invalid or duplicate class")
	// ErrUnknownClass is returned when a document is labeled with an
	// undeclared class.
	ErrUnknownClass = errors.New("unknown class")
	// ErrInvalidFold is returned for a fold index or count out of range.
	ErrInvalidFold = errors.New("invalid fold")
)

// Partition maps each class to its documents.
type Partition map[string][]*document.Document

// Len returns the number of documents across all classes.
func (p Partition) Len() int {
	total := 0
	for _, docs := range p {
		total += len(docs)
	}
	return total
}

// Window is a half-open range [Start, End) of a class's document list.
type Window struct {
	Start int
	End   int
}

// Len returns the number of documents in the window.
func (w Window) Len() int {
	return w.End - w.Start
}

// Corpus holds the documents of a fixed, ordered set of classes.
type Corpus struct {
	classes []string
	docs    map[string][]*document.Document
}

// New returns an empty corpus for the declared classes.
func New(classes ...string) (*Corpus, error) {
	if len(classes) == 0 {
		return nil, ErrNoClasses
	}

	c := &Corpus{
		classes: make([]string, 0, len(classes)),
		docs:    make(map[string][]*document.Document, len(classes)),
	}
	for _, class := range classes {
		if class == "" {
			return nil, fmt.Errorf("%w: empty name", ErrDuplicateClass)
		}
		if _, ok := c.docs[class]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateClass, class)
		}
		c.classes = append(c.classes, class)
		c.docs[class] = nil
	}

	return c, nil
}

// Add appends documents to the class named by their label. Nothing is added
// when any document has an undeclared label.
func (c *Corpus) Add(docs ...*document.Document) error {
	for _, doc := range docs {
		if _, ok := c.docs[doc.Label]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownClass, doc.Label)
		}
	}
	for _, doc := range docs {
		c.docs[doc.Label] = append(c.docs[doc.Label], doc)
	}
	return nil
}

// Classes returns the class names in declaration order.
func (c *Corpus) Classes() []string {
	return append([]string(nil), c.classes...)
}

// Documents returns the documents of class in corpus order.
func (c *Corpus) Documents(class string) []*document.Document {
	return append([]*document.Document(nil), c.docs[class]...)
}

// Count returns the number of documents of class.
func (c *Corpus) Count(class string) int {
	return len(c.docs[class])
}

// Len returns the number of documents across all classes.
func (c *Corpus) Len() int {
	total := 0
	for _, docs := range c.docs {
		total += len(docs)
	}
	return total
}

// HoldoutTrainSize returns how many of n documents go to training in a
// holdout split: floor(0.8 * n).
func HoldoutTrainSize(n int) int {
	return n * 4 / 5
}

// Holdout splits every class independently: the first 80% of its documents
// (rounded down) are for training and the remainder for testing.
func (c *Corpus) Holdout() (train, test Partition) {
	train = make(Partition, len(c.classes))
	test = make(Partition, len(c.classes))
	for _, class := range c.classes {
		docs := c.docs[class]
		cut := HoldoutTrainSize(len(docs))
		train[class] = append([]*document.Document(nil), docs[:cut]...)
		test[class] = append([]*document.Document(nil), docs[cut:]...)
	}
	return train, test
}

// FoldWindow returns the test window of fold i out of k for a class of n
// documents: [round(i*n/k), round((i+1)*n/k)). Rounding is half to even.
func FoldWindow(n, i, k int) (Window, error) {
	if k < 2 {
		return Window{}, fmt.Errorf("%w: %d folds", ErrInvalidFold, k)
	}
	if i < 0 || i >= k {
		return Window{}, fmt.Errorf("%w: index %d of %d", ErrInvalidFold, i, k)
	}

	step := float64(n) / float64(k)
	w := Window{
		Start: int(math.RoundToEven(float64(i) * step)),
		End:   int(math.RoundToEven(float64(i+1) * step)),
	}
	if i == k-1 {
		w.End = n
	}
	return w, nil
}

// Windows returns the k test windows for a class of n documents.
func Windows(n, k int) ([]Window, error) {
	windows := make([]Window, 0, k)
	for i := 0; i < k; i++ {
		w, err := FoldWindow(n, i, k)
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// Fold returns the partitions of fold i out of k. Each class's test set is
// its fold window and its training set is everything before and after it.
func (c *Corpus) Fold(i, k int) (train, test Partition, err error) {
	train = make(Partition, len(c.classes))
	test = make(Partition, len(c.classes))
	for _, class := range c.classes {
		docs := c.docs[class]
		w, err := FoldWindow(len(docs), i, k)
		if err != nil {
			return nil, nil, err
		}

		rest := make([]*document.Document, 0, len(docs)-w.Len())
		rest = append(rest, docs[:w.Start]...)
		rest = append(rest, docs[w.End:]...)
		train[class] = rest
		test[class] = append([]*document.Document(nil), docs[w.Start:w.End]...)
	}
	return train, test, nil
}
