package sortedvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedVec(t *testing.T) {
	t.Run("BuildThenQuery", func(t *testing.T) {
		s := New()

		for _, v := range []uint32{5, 1, 9, 3, 7} {
			require.NoError(t, s.Insert(v))
		}

		for _, v := range []uint32{1, 3, 5, 7, 9} {
			found, err := s.Contains(v)
			require.NoError(t, err)
			assert.True(t, found, "missing %d", v)
		}
		for _, v := range []uint32{0, 2, 4, 6, 8, 10} {
			found, err := s.Contains(v)
			require.NoError(t, err)
			assert.False(t, found, "unexpected %d", v)
		}
	})

	t.Run("InterleavedNoFalseNegative", func(t *testing.T) {
		// Staged values must be visible to the very next query.
		s := New()

		require.NoError(t, s.Insert(10))
		found, err := s.Contains(10)
		require.NoError(t, err)
		assert.True(t, found)

		require.NoError(t, s.Insert(4))
		found, err = s.Contains(4)
		require.NoError(t, err)
		assert.True(t, found)

		found, err = s.Contains(10)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("DuplicatesCollapse", func(t *testing.T) {
		s := New()

		// Duplicates both inside one staged batch and across merges.
		for _, v := range []uint32{2, 2, 2, 5} {
			require.NoError(t, s.Insert(v))
		}
		assert.Equal(t, 2, s.Len())

		require.NoError(t, s.Insert(5))
		require.NoError(t, s.Insert(8))
		assert.Equal(t, 3, s.Len())
	})

	t.Run("Eager", func(t *testing.T) {
		s := New(func(o *Options) {
			o.Eager = true
		})

		for _, v := range []uint32{6, 2, 4, 2} {
			require.NoError(t, s.Insert(v))
		}
		assert.Equal(t, 3, s.Len())

		for _, v := range []uint32{2, 4, 6} {
			found, err := s.Contains(v)
			require.NoError(t, err)
			assert.True(t, found)
		}
		found, err := s.Contains(3)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Empty", func(t *testing.T) {
		s := New()

		found, err := s.Contains(1)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 0, s.Len())
	})
}
