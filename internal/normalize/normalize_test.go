package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	t.Run("lowercases", func(t *testing.T) {
		require.Equal(t, "mississippi", Text("Mississippi"))
	})

	t.Run("strips punctuation", func(t *testing.T) {
		require.Equal(t, "dont stop", Text("Don't stop!"))
	})

	t.Run("folds diacritics", func(t *testing.T) {
		require.Equal(t, "cafe", Text("Café"))
		require.Equal(t, "sao paulo", Text("São Paulo"))
	})

	t.Run("collapses whitespace", func(t *testing.T) {
		require.Equal(t, "united states", Text("  United \t States \n"))
	})

	t.Run("expands number words", func(t *testing.T) {
		require.Equal(t, "7", Text("seven"))
		require.Equal(t, "7 seas", Text("Seven Seas"))
		require.Equal(t, "1000", Text("thousand"))
	})

	t.Run("hyphen joins become spaces", func(t *testing.T) {
		require.Equal(t, "jean paul sartre", Text("Jean-Paul Sartre"))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Equal(t, "", Text(""))
		require.Equal(t, "", Text("  !?  "))
	})

	t.Run("deterministic", func(t *testing.T) {
		const in = "Åland Islands — twenty-one!"
		first := Text(in)
		for i := 0; i < 5; i++ {
			require.Equal(t, first, Text(in))
		}
	})
}

func TestWithOptions(t *testing.T) {
	t.Run("diacritics kept when disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.StripDiacritics = false
		require.Equal(t, "café", WithOptions("Café", opts))
	})

	t.Run("punctuation kept when disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.StripPunctuation = false
		require.Equal(t, "don't", WithOptions("Don't", opts))
	})

	t.Run("number words kept when disabled", func(t *testing.T) {
		opts := DefaultOptions()
		opts.ExpandNumberWords = false
		require.Equal(t, "seven", WithOptions("Seven", opts))
	})
}

func TestTokens(t *testing.T) {
	require.Equal(t, []string{"the", "mississippi", "river"}, Tokens("The Mississippi River!"))
	require.Nil(t, Tokens("  "))
}
