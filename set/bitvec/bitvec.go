// Package bitvec provides a dense bit-indexed set over a fixed value range.
package bitvec

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/ville03/programming-for-performance/set"
)

// Compile-time check to ensure BitVec satisfies the set interface.
var _ set.Set = (*BitVec)(nil)

// MaxLimit is the largest inclusive upper bound this implementation accepts.
// The backing bitset costs one bit per representable value regardless of how
// many values are inserted, so an unbounded or near-unbounded limit would
// allocate gigabytes for a possibly tiny set.
const MaxLimit = 1 << 30

// BitVec represents a set backed by one flag bit per representable value.
// Both operations are O(1); construction allocates the whole range up front.
type BitVec struct {
	limit uint32
	bits  *bitset.BitSet
}

// New creates a bit-indexed set accepting values in [0, limit].
// Limits above MaxLimit are rejected.
func New(limit uint64) (*BitVec, error) {
	if limit > MaxLimit {
		return nil, &set.ErrLimitTooLarge{Limit: limit, Max: MaxLimit}
	}

	return &BitVec{
		limit: uint32(limit),
		bits:  bitset.New(uint(limit) + 1),
	}, nil
}

// Name identifies the implementation.
func (*BitVec) Name() string { return "BitVec" }

// Len returns the number of distinct members.
func (b *BitVec) Len() int { return int(b.bits.Count()) }

// Limit returns the inclusive upper bound of accepted values.
func (b *BitVec) Limit() uint32 { return b.limit }

// Insert ensures v is a member. Values above the configured limit are
// rejected; this is the only implementation that can refuse a value.
func (b *BitVec) Insert(v uint32) error {
	if v > b.limit {
		return &set.ErrOutOfRange{Value: v, Limit: b.limit}
	}
	b.bits.Set(uint(v))
	return nil
}

// Contains reports whether v is a member. Values above the configured limit
// are rejected rather than reported absent, so a misconfigured run fails
// loudly instead of answering queries it cannot represent.
func (b *BitVec) Contains(v uint32) (bool, error) {
	if v > b.limit {
		return false, &set.ErrOutOfRange{Value: v, Limit: b.limit}
	}
	return b.bits.Test(uint(v)), nil
}
