package extract_test

import (
	"testing"

	"github.com/pranavarora99/pagesum"
	"github.com/pranavarora99/pagesum/extract"
	"github.com/stretchr/testify/assert"
)

func TestCalculateMetrics(t *testing.T) {
	t.Parallel()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, pagesum.Metrics{}, extract.CalculateMetrics("  "))
	})

	t.Run("counts words and unique words", func(t *testing.T) {
		t.Parallel()

		m := extract.CalculateMetrics("The cat sat. The cat ran.")

		assert.Equal(t, 6, m.WordCount)
		assert.InDelta(t, 0.6667, m.SemanticDensity, 1e-9)
		assert.InDelta(t, 1.0, m.ReadabilityScore, 1e-9)
	})

	t.Run("dense vocabulary lowers readability", func(t *testing.T) {
		t.Parallel()

		simple := extract.CalculateMetrics("The cat sat. The dog ran. We had fun.")
		dense := extract.CalculateMetrics("Internationalization considerations notwithstanding, organizational responsibilities multiply exponentially throughout hierarchical institutions")

		assert.Less(t, dense.ReadabilityScore, simple.ReadabilityScore)
		assert.GreaterOrEqual(t, dense.ReadabilityScore, 0.0)
		assert.LessOrEqual(t, simple.ReadabilityScore, 1.0)
	})
}
