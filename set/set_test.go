package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"", KindAuto},
		{"auto", KindAuto},
		{"0", KindAuto},
		{"roaring", KindRoaring},
		{"1", KindRoaring},
		{"hash", KindHash},
		{"2", KindHash},
		{"tree", KindTree},
		{"3", KindTree},
		{"sortedvec", KindSortedVec},
		{"sorted", KindSortedVec},
		{"4", KindSortedVec},
		{"BitVec", KindBitVec},
		{"5", KindBitVec},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParseKind("skiplist")
		require.Error(t, err)
		assert.IsType(t, &ErrUnknownKind{}, err)
		assert.Contains(t, err.Error(), "skiplist")
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "auto", KindAuto.String())
	assert.Equal(t, "tree", KindTree.String())
	assert.Equal(t, "bitvec", KindBitVec.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
