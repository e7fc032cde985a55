package capability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quizkit/verdict/internal/match"
)

func installAsset(t *testing.T, dir, sub, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, sub, name), []byte("weights"), 0o644))
}

func TestDetectNoAssets(t *testing.T) {
	d := NewDetector(t.TempDir(), WithHardware(8, 16<<30))

	got := d.Detect()
	require.Equal(t, match.Tier1, got.MaxSupportedTier)
	require.False(t, got.HasEmbeddingModel)
	require.False(t, got.HasLLMModel)
}

func TestDetectEmbeddingOnly(t *testing.T) {
	dir := t.TempDir()
	installAsset(t, dir, "embedding", "model.onnx")
	d := NewDetector(dir, WithHardware(8, 16<<30))

	got := d.Detect()
	require.Equal(t, match.Tier2, got.MaxSupportedTier)
	require.True(t, got.HasEmbeddingModel)
	require.False(t, got.HasLLMModel)
}

func TestDetectFullStack(t *testing.T) {
	dir := t.TempDir()
	installAsset(t, dir, "embedding", "model.onnx")
	installAsset(t, dir, "judge", "model.gguf")
	d := NewDetector(dir, WithHardware(8, 16<<30))

	got := d.Detect()
	require.Equal(t, match.Tier3, got.MaxSupportedTier)
	require.True(t, got.HasEmbeddingModel)
	require.True(t, got.HasLLMModel)
}

func TestDetectHardwareFloors(t *testing.T) {
	dir := t.TempDir()
	installAsset(t, dir, "embedding", "model.onnx")
	installAsset(t, dir, "judge", "model.gguf")

	t.Run("small device stays on rules", func(t *testing.T) {
		d := NewDetector(dir, WithHardware(1, 1<<30))
		require.Equal(t, match.Tier1, d.Detect().MaxSupportedTier)
	})

	t.Run("mid device reaches embedding but not judge", func(t *testing.T) {
		d := NewDetector(dir, WithHardware(2, 3<<30))
		got := d.Detect()
		require.Equal(t, match.Tier2, got.MaxSupportedTier)
		require.True(t, got.HasEmbeddingModel)
		require.False(t, got.HasLLMModel)
	})

	t.Run("unknown memory does not disqualify", func(t *testing.T) {
		d := NewDetector(dir, WithHardware(8, 0))
		require.Equal(t, match.Tier3, d.Detect().MaxSupportedTier)
	})
}

func TestDetectRemoteProviders(t *testing.T) {
	d := NewDetector(t.TempDir(),
		WithHardware(8, 16<<30),
		WithProviders(func() bool { return true }, func() bool { return false }))

	got := d.Detect()
	require.Equal(t, match.Tier2, got.MaxSupportedTier)
	require.True(t, got.HasEmbeddingModel)
	require.False(t, got.HasLLMModel)
}

func TestDetectCachesUntilInvalidated(t *testing.T) {
	dir := t.TempDir()
	d := NewDetector(dir, WithHardware(8, 16<<30))

	require.Equal(t, match.Tier1, d.Detect().MaxSupportedTier)

	// A newly installed asset is invisible until the cache is dropped.
	installAsset(t, dir, "embedding", "model.onnx")
	require.Equal(t, match.Tier1, d.Detect().MaxSupportedTier)

	d.Invalidate()
	require.Equal(t, match.Tier2, d.Detect().MaxSupportedTier)
}
