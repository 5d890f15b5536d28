package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ville03/programming-for-performance/set"
)

func TestBitVec(t *testing.T) {
	t.Run("InsertAndContains", func(t *testing.T) {
		b, err := New(100)
		require.NoError(t, err)
		assert.Equal(t, uint32(100), b.Limit())

		require.NoError(t, b.Insert(0))
		require.NoError(t, b.Insert(100))
		require.NoError(t, b.Insert(50))
		require.NoError(t, b.Insert(50))

		assert.Equal(t, 3, b.Len())

		for _, v := range []uint32{0, 50, 100} {
			found, err := b.Contains(v)
			require.NoError(t, err)
			assert.True(t, found)
		}
		found, err := b.Contains(99)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		b, err := New(100)
		require.NoError(t, err)

		err = b.Insert(101)
		require.Error(t, err)
		assert.IsType(t, &set.ErrOutOfRange{}, err)

		_, err = b.Contains(101)
		require.Error(t, err)
		assert.IsType(t, &set.ErrOutOfRange{}, err)
	})

	t.Run("ZeroLimit", func(t *testing.T) {
		// A zero limit still admits the value 0 and nothing else.
		b, err := New(0)
		require.NoError(t, err)

		require.NoError(t, b.Insert(0))
		found, err := b.Contains(0)
		require.NoError(t, err)
		assert.True(t, found)

		err = b.Insert(1)
		require.Error(t, err)
		assert.IsType(t, &set.ErrOutOfRange{}, err)

		_, err = b.Contains(1)
		require.Error(t, err)
		assert.IsType(t, &set.ErrOutOfRange{}, err)
	})

	t.Run("LimitTooLarge", func(t *testing.T) {
		_, err := New(MaxLimit + 1)
		require.Error(t, err)
		assert.IsType(t, &set.ErrLimitTooLarge{}, err)

		b, err := New(MaxLimit)
		require.NoError(t, err)
		require.NoError(t, b.Insert(MaxLimit))
	})
}
