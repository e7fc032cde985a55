package policy

import (
	"testing"

	"github.com/quizkit/verdict/internal/match"
	"github.com/stretchr/testify/require"
)

func TestMaxTier(t *testing.T) {
	require.Equal(t, match.Tier1, MaxTier(match.StrictnessStrict))
	require.Equal(t, match.Tier1, MaxTier(match.StrictnessStandard))
	require.Equal(t, match.Tier3, MaxTier(match.StrictnessLenient))

	t.Run("unknown level falls back to tier 1", func(t *testing.T) {
		require.Equal(t, match.Tier1, MaxTier(match.Strictness("tournament")))
	})
}

func TestEffectiveCeiling(t *testing.T) {
	full := match.Capability{MaxSupportedTier: match.Tier3, HasEmbeddingModel: true, HasLLMModel: true}

	t.Run("capability cannot raise the policy ceiling", func(t *testing.T) {
		require.Equal(t, match.Tier1, EffectiveCeiling(match.StrictnessStrict, full))
		require.Equal(t, match.Tier1, EffectiveCeiling(match.StrictnessStandard, full))
	})

	t.Run("capability lowers the lenient ceiling", func(t *testing.T) {
		limited := match.Capability{MaxSupportedTier: match.Tier2, HasEmbeddingModel: true}
		require.Equal(t, match.Tier2, EffectiveCeiling(match.StrictnessLenient, limited))
	})

	t.Run("ceiling never drops below tier 1", func(t *testing.T) {
		none := match.Capability{MaxSupportedTier: match.Tier0}
		require.Equal(t, match.Tier1, EffectiveCeiling(match.StrictnessLenient, none))
	})
}
