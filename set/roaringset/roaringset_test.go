package roaringset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoaringSet(t *testing.T) {
	r := New()

	require.NoError(t, r.Insert(0))
	require.NoError(t, r.Insert(1_000_000))
	require.NoError(t, r.Insert(1_000_000))

	assert.Equal(t, 2, r.Len())

	found, err := r.Contains(1_000_000)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = r.Contains(999_999)
	require.NoError(t, err)
	assert.False(t, found)
}
