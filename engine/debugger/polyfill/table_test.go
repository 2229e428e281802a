package polyfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should load the embedded table", func(t *testing.T) {
		entries, err := Load()

		require.NoError(t, err)
		require.NotEmpty(t, entries)
		for _, e := range entries {
			assert.NotEmpty(t, e.Symbol)
			assert.NotEmpty(t, e.Language)
		}
	})

	t.Run("Should return a copy of the cached entries", func(t *testing.T) {
		first, err := Load()
		require.NoError(t, err)
		first[0].Symbol = "mutated"

		second, err := Load()
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", second[0].Symbol)
	})
}

func TestForSymbol(t *testing.T) {
	t.Run("Should find excluded symbols with their metadata", func(t *testing.T) {
		e, ok := ForSymbol("Proxy")

		require.True(t, ok)
		assert.Equal(t, "es2015", e.Language)
		assert.NotEmpty(t, e.Note)
	})

	t.Run("Should miss symbols that have fallbacks", func(t *testing.T) {
		_, ok := ForSymbol("Promise")

		assert.False(t, ok)
	})
}

func TestExcluded(t *testing.T) {
	t.Run("Should report exclusion by symbol name", func(t *testing.T) {
		assert.True(t, Excluded("Atomics"))
		assert.False(t, Excluded("Map"))
	})
}

func TestParse(t *testing.T) {
	t.Run("Should reject malformed yaml", func(t *testing.T) {
		_, _, err := parse([]byte("exclusions: ["))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("Should reject entries without a symbol", func(t *testing.T) {
		raw := []byte("exclusions:\n  - language: es2015\n")

		_, _, err := parse(raw)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("Should reject duplicate symbols", func(t *testing.T) {
		raw := []byte(
			"exclusions:\n" +
				"  - symbol: Proxy\n    language: es2015\n" +
				"  - symbol: Proxy\n    language: es2015\n")

		_, _, err := parse(raw)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate exclusion")
	})
}
