package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hickeroar/bayeseval/bayes/document"
)

func TestTrainTokenCreatesAndIncrements(t *testing.T) {
	cat := NewCategory("spam")

	require.NoError(t, cat.TrainToken("buy", 2))
	require.NoError(t, cat.TrainToken("buy", 3))
	require.NoError(t, cat.TrainToken("now", 1))

	assert.Equal(t, 5, cat.GetTokenCount("buy"))
	assert.Equal(t, 1, cat.GetTokenCount("now"))
	assert.Equal(t, 6, cat.GetTally())
	assert.Equal(t, 2, cat.GetDistinct())
	assert.Equal(t, []string{"buy", "now"}, cat.Tokens())
}

func TestInvalidCountsReturnError(t *testing.T) {
	cat := NewCategory("ham")
	require.NoError(t, cat.TrainToken("hello", 2))

	assert.Error(t, cat.TrainToken("hello", 0))
	assert.Error(t, cat.TrainToken("hello", -3))

	assert.Equal(t, 2, cat.GetTokenCount("hello"), "count unchanged after invalid operations")
	assert.Equal(t, 2, cat.GetTally(), "tally unchanged after invalid operations")
}

func TestTrainDocumentAggregatesCounts(t *testing.T) {
	cat := NewCategory("positive")
	cat.TrainDocument(document.New("positive", []string{"good", "good", "fun"}))
	cat.TrainDocument(document.New("positive", []string{"good", "plot"}))

	assert.Equal(t, 3, cat.GetTokenCount("good"))
	assert.Equal(t, 5, cat.GetTally())
	assert.Equal(t, 2, cat.GetDocumentCount())
}

func TestProbabilitiesClassVocabulary(t *testing.T) {
	cat := NewCategory("positive")
	cat.TrainDocument(document.New("positive", []string{"good", "good", "fun"}))

	probs := cat.Probabilities(nil)

	// factor = tally(3) + distinct(2)
	assert.InDelta(t, 3.0/5.0, probs["good"], 1e-12)
	assert.InDelta(t, 2.0/5.0, probs["fun"], 1e-12)
	assert.NotContains(t, probs, "bad", "no entry for a word never trained into the category")
}

func TestProbabilitiesSharedVocabulary(t *testing.T) {
	cat := NewCategory("positive")
	cat.TrainDocument(document.New("positive", []string{"good", "good", "fun"}))

	probs := cat.Probabilities([]string{"good", "fun", "bad", "boring"})

	// factor = tally(3) + vocabulary(4)
	assert.InDelta(t, 3.0/7.0, probs["good"], 1e-12)
	assert.InDelta(t, 1.0/7.0, probs["bad"], 1e-12)
	assert.Len(t, probs, 4)
}

func TestProbabilitiesEmptyCategory(t *testing.T) {
	assert.Empty(t, NewCategory("empty").Probabilities(nil))
}
