package param

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AllSorted(t *testing.T) {
	t.Run("Should return every param exactly once in strict name order", func(t *testing.T) {
		r := New()
		all := r.AllSorted()

		require.Len(t, all, r.Len())
		assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
			return all[i].Name < all[j].Name
		}))

		seen := make(map[string]bool, len(all))
		for _, p := range all {
			assert.False(t, seen[p.Name], "duplicate name %s", p.Name)
			seen[p.Name] = true
		}
	})

	t.Run("Should be stable across calls and safe against mutation", func(t *testing.T) {
		r := New()
		first := r.AllSorted()
		first[0] = nil

		second := r.AllSorted()
		require.NotNil(t, second[0])
		assert.Equal(t, r.Len(), len(second))
	})
}

func TestRegistry_ByGroup(t *testing.T) {
	t.Run("Should contain a bucket for every declared group", func(t *testing.T) {
		grouped := New().ByGroup()

		require.Len(t, grouped, len(Groups()))
		for _, g := range Groups() {
			_, ok := grouped[g]
			assert.True(t, ok, "missing bucket for group %s", g)
		}
	})

	t.Run("Should partition the catalog exactly", func(t *testing.T) {
		r := New()
		grouped := r.ByGroup()

		total := 0
		seen := make(map[string]Group)
		for g, bucket := range grouped {
			total += len(bucket)
			for _, p := range bucket {
				prev, dup := seen[p.Name]
				assert.False(t, dup, "%s appears in both %s and %s", p.Name, prev, g)
				seen[p.Name] = g
				assert.Equal(t, g, p.Group)
			}
		}
		assert.Equal(t, r.Len(), total)
	})

	t.Run("Should preserve declaration order within a group", func(t *testing.T) {
		r := New()
		errorChecking := r.Group(GroupErrorChecking)

		require.NotEmpty(t, errorChecking)
		// ENABLE_ALL_DIAGNOSTIC_GROUPS is declared first in its group even
		// though it sorts after CHECK_* alphabetically.
		assert.Equal(t, "ENABLE_ALL_DIAGNOSTIC_GROUPS", errorChecking[0].Name)
	})
}

func TestRegistry_Lookup(t *testing.T) {
	t.Run("Should find params by exact name", func(t *testing.T) {
		p, err := Default().Lookup("CHECK_TYPES")

		require.NoError(t, err)
		assert.Equal(t, "CHECK_TYPES", p.Name)
		assert.Equal(t, GroupErrorChecking, p.Group)
	})

	t.Run("Should return ErrParamNotFound for unknown names", func(t *testing.T) {
		p, err := Default().Lookup("NO_SUCH_PARAM")

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, ErrParamNotFound)
		assert.Contains(t, err.Error(), "NO_SUCH_PARAM")
	})

	t.Run("Should be case sensitive", func(t *testing.T) {
		_, err := Default().Lookup("check_types")

		assert.ErrorIs(t, err, ErrParamNotFound)
	})
}

func TestDefault(t *testing.T) {
	t.Run("Should return the same registry on every call", func(t *testing.T) {
		assert.Same(t, Default(), Default())
	})
}

func TestGroup_DisplayName(t *testing.T) {
	t.Run("Should map every group to its label", func(t *testing.T) {
		expected := map[Group]string{
			GroupErrorChecking: "Lint and Error Checking",
			GroupTranspilation: "Transpilation",
			GroupOptimization:  "Optimization",
			GroupSpecialPasses: "Specialized Passes",
			GroupMisc:          "Other",
		}
		for g, label := range expected {
			assert.Equal(t, label, g.DisplayName())
		}
	})
}
