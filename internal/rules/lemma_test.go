package rules

import (
	"testing"

	"github.com/quizkit/verdict/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLemmaMatcher(t *testing.T) {
	m := &lemmaMatcher{language: "english"}
	th := config.Default().ThresholdsFor("thing")

	t.Run("plural reduces to the same stem", func(t *testing.T) {
		out, ok := m.Match(testContext("volcanoes", th, "volcano"))
		require.True(t, ok)
		require.Equal(t, 0.85, out.Confidence)
		require.Equal(t, "volcano", out.MatchedAgainst)
	})

	t.Run("inflection reduces to the same stem", func(t *testing.T) {
		_, ok := m.Match(testContext("running", th, "run"))
		require.True(t, ok)
	})

	t.Run("multi-word phrases stem word by word", func(t *testing.T) {
		_, ok := m.Match(testContext("erupting volcanoes", th, "erupt volcano"))
		require.True(t, ok)
	})

	t.Run("different words decline", func(t *testing.T) {
		_, ok := m.Match(testContext("banana", th, "volcano"))
		require.False(t, ok)
	})

	t.Run("unsupported language passes words through", func(t *testing.T) {
		passthrough := &lemmaMatcher{language: "klingon"}
		_, ok := passthrough.Match(testContext("volcano", th, "volcano"))
		require.True(t, ok)
	})
}
