package bayes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hickeroar/bayeseval/bayes/document"
)

func FuzzTrainInvariants(f *testing.F) {
	f.Add("buy now buy now", "hello world", "buy hello")
	f.Add("a", "a", "a")
	f.Add("x y z", "", "q")

	f.Fuzz(func(t *testing.T, first, second, sample string) {
		partition := map[string][]*document.Document{
			"first":  {document.New("first", strings.Fields(first))},
			"second": {document.New("second", strings.Fields(second))},
		}

		for _, smoothing := range []Smoothing{SmoothingClassVocabulary, SmoothingSharedVocabulary} {
			model, err := Train([]string{"first", "second"}, partition, WithSmoothing(smoothing))
			require.NoError(t, err)

			for _, class := range model.Classes() {
				for _, word := range strings.Fields(first + " " + second) {
					p, ok := model.Probability(class, word)
					if !ok {
						continue
					}
					require.Greater(t, p, 0.0, "class %q p(%q)", class, word)
					require.LessOrEqual(t, p, 1.0, "class %q p(%q)", class, word)
				}
			}

			doc := document.New("", strings.Fields(sample))
			result := model.Classify(doc)
			require.Contains(t, []string{"first", "second"}, result.Category)
			require.Equal(t, result, model.Classify(doc), "classification not deterministic")
		}
	})
}
