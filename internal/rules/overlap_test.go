package rules

import (
	"testing"

	"github.com/quizkit/verdict/internal/config"
	"github.com/stretchr/testify/require"
)

func TestOverlapMatcher(t *testing.T) {
	m := &overlapMatcher{}
	th := config.TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.75, MinTokenOverlap: 0.5}

	t.Run("extra token still accepts at half overlap", func(t *testing.T) {
		out, ok := m.Match(testContext("mississippi river", th, "mississippi"))
		require.True(t, ok)
		require.GreaterOrEqual(t, out.Confidence, 0.6)
		require.Equal(t, "mississippi", out.MatchedAgainst)
	})

	t.Run("reordering does not matter", func(t *testing.T) {
		_, ok := m.Match(testContext("river mississippi", th, "mississippi river"))
		require.True(t, ok)
	})

	t.Run("filler words are ignored", func(t *testing.T) {
		out, ok := m.Match(testContext("the mississippi", th, "mississippi"))
		require.True(t, ok)
		require.InDelta(t, 1.0, out.Confidence, 0.001)
	})

	t.Run("no shared tokens declines", func(t *testing.T) {
		_, ok := m.Match(testContext("amazon river", th, "mississippi"))
		require.False(t, ok)
	})

	t.Run("below threshold declines", func(t *testing.T) {
		strict := config.TypeThresholds{MaxEditDistance: 0.2, MinNGramSimilarity: 0.75, MinTokenOverlap: 0.99}
		_, ok := m.Match(testContext("mississippi river", strict, "mississippi"))
		require.False(t, ok)
	})

	t.Run("empty candidate declines", func(t *testing.T) {
		_, ok := m.Match(testContext("", th, "mississippi"))
		require.False(t, ok)
	})
}

func TestJaccard(t *testing.T) {
	a := tokenSet([]string{"mississippi", "river"})
	b := tokenSet([]string{"mississippi"})
	require.Equal(t, 0.5, jaccard(a, b))
	require.Equal(t, jaccard(a, b), jaccard(b, a))
	require.Equal(t, 0.0, jaccard(a, tokenSet(nil)))
}
