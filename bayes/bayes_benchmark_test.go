package bayes

import (
	"strings"
	"testing"

	"github.com/hickeroar/bayeseval/bayes/document"
)

// buildBenchmarkPartition creates a partition preloaded for benchmarks.
func buildBenchmarkPartition() map[string][]*document.Document {
	return map[string][]*document.Document{
		"tech":    repeat("tech", strings.Repeat("kubernetes latency tracing retries ", 50), 20),
		"finance": repeat("finance", strings.Repeat("portfolio rebalancing volatility alpha beta ", 50), 20),
		"cooking": repeat("cooking", strings.Repeat("simmer saute reduction stock umami ", 50), 20),
	}
}

// BenchmarkTrain benchmarks train.
func BenchmarkTrain(b *testing.B) {
	partition := buildBenchmarkPartition()
	classes := []string{"tech", "finance", "cooking"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Train(classes, partition, WithSmoothing(SmoothingSharedVocabulary))
	}
}

// BenchmarkClassify benchmarks classify.
func BenchmarkClassify(b *testing.B) {
	model, err := Train([]string{"tech", "finance", "cooking"}, buildBenchmarkPartition(), WithScoring(ScoringLog))
	if err != nil {
		b.Fatalf("unexpected train error: %v", err)
	}
	doc := document.New("", strings.Fields("simmer stock reduction with balanced acidity and latency retries"))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = model.Classify(doc)
	}
}
