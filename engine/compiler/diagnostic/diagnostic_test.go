package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	t.Run("Should list every group once with a unique name", func(t *testing.T) {
		groups := Registered()

		require.NotEmpty(t, groups)
		seen := make(map[string]bool, len(groups))
		for _, g := range groups {
			assert.NotEmpty(t, g.Name())
			assert.False(t, seen[g.Name()], "duplicate group %s", g.Name())
			seen[g.Name()] = true
		}
	})

	t.Run("Should return a copy", func(t *testing.T) {
		first := Registered()
		first[0] = Group{}

		assert.Equal(t, AccessControls, Registered()[0])
	})
}

func TestForName(t *testing.T) {
	t.Run("Should resolve registered names", func(t *testing.T) {
		g, ok := ForName("strictCheckTypes")

		require.True(t, ok)
		assert.Equal(t, StrictCheckTypes, g)
	})

	t.Run("Should reject unknown names", func(t *testing.T) {
		_, ok := ForName("notAGroup")

		assert.False(t, ok)
	})
}

func TestCheckLevel_String(t *testing.T) {
	t.Run("Should name every level", func(t *testing.T) {
		assert.Equal(t, "off", Off.String())
		assert.Equal(t, "warning", Warning.String())
		assert.Equal(t, "error", Error.String())
	})
}
