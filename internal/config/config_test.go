package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quizkit/verdict/internal/answer"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	t.Run("every answer type has thresholds", func(t *testing.T) {
		for _, typ := range answer.Types {
			_, ok := cfg.Thresholds[typ]
			require.True(t, ok, "missing thresholds for %s", typ)
		}
	})

	t.Run("numbers and dates are near zero tolerance", func(t *testing.T) {
		require.Equal(t, 0.0, cfg.Thresholds[answer.TypeNumber].MaxEditDistance)
		require.Equal(t, 0.0, cfg.Thresholds[answer.TypeDate].MaxEditDistance)
	})

	t.Run("titles tolerate more than numbers", func(t *testing.T) {
		require.Greater(t,
			cfg.Thresholds[answer.TypeTitle].MaxEditDistance,
			cfg.Thresholds[answer.TypeNumber].MaxEditDistance)
	})
}

func TestLoad(t *testing.T) {
	t.Run("overlay keeps defaults for unset fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
embedding:
  model: OpenAI/text-embedding-3-small
  threshold: 0.9
  timeout_ms: 50
`), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 0.9, cfg.Embedding.Threshold)
		require.Equal(t, 50, cfg.Embedding.TimeoutMS)
		// Judge section untouched by the overlay.
		require.Equal(t, 0.98, cfg.Judge.AcceptConfidence)
	})

	t.Run("out of range threshold is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "engine.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
embedding:
  model: OpenAI/text-embedding-3-small
  threshold: 1.5
  timeout_ms: 80
`), 0o644))

		_, err := Load(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "embedding.threshold")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("unknown answer type", func(t *testing.T) {
		cfg := Default()
		cfg.Thresholds[answer.Type("river")] = TypeThresholds{MaxEditDistance: 0.1, MinNGramSimilarity: 0.5, MinTokenOverlap: 0.5}
		require.Error(t, cfg.Validate())
	})

	t.Run("single-entry synonym group", func(t *testing.T) {
		cfg := Default()
		cfg.Synonyms = append(cfg.Synonyms, []string{"alone"})
		require.Error(t, cfg.Validate())
	})
}

func TestThresholdsFor(t *testing.T) {
	cfg := Default()
	th := cfg.ThresholdsFor(answer.Type("unconfigured"))
	require.Equal(t, cfg.Thresholds[answer.TypeThing], th)
}
