package rules

import (
	"testing"

	"github.com/quizkit/verdict/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNGramMatcher(t *testing.T) {
	m := &ngramMatcher{size: 2}

	t.Run("near-identical strings accept", func(t *testing.T) {
		th := config.TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.5, MinTokenOverlap: 0.5}
		out, ok := m.Match(testContext("mississipi", th, "mississippi"))
		require.True(t, ok)
		require.GreaterOrEqual(t, out.Confidence, 0.8)
		require.LessOrEqual(t, out.Confidence, 1.0)
	})

	t.Run("disjoint strings decline", func(t *testing.T) {
		th := config.TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.3, MinTokenOverlap: 0.5}
		_, ok := m.Match(testContext("banana", th, "mississippi"))
		require.False(t, ok)
	})

	t.Run("higher threshold rejects weaker overlap", func(t *testing.T) {
		permissive := config.TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.2, MinTokenOverlap: 0.5}
		strict := config.TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.99, MinTokenOverlap: 0.5}

		_, okPermissive := m.Match(testContext("missipi", permissive, "mississippi"))
		_, okStrict := m.Match(testContext("missipi", strict, "mississippi"))
		require.True(t, okPermissive)
		require.False(t, okStrict)
	})

	t.Run("identical strings score full confidence", func(t *testing.T) {
		th := config.TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.5, MinTokenOverlap: 0.5}
		out, ok := m.Match(testContext("mississippi", th, "mississippi"))
		require.True(t, ok)
		require.InDelta(t, 1.0, out.Confidence, 0.001)
	})

	t.Run("best reference wins", func(t *testing.T) {
		th := config.TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.3, MinTokenOverlap: 0.5}
		out, ok := m.Match(testContext("mississippi", th, "missouri", "mississippi"))
		require.True(t, ok)
		require.Equal(t, "mississippi", out.MatchedAgainst)
	})
}
