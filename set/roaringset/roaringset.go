// Package roaringset provides a compressed-bitmap set.
//
// It wraps the official roaring implementation. Memory tracks the inserted
// values rather than the value range, which makes it the general-purpose
// choice when no workload hint applies.
package roaringset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/ville03/programming-for-performance/set"
)

// Compile-time check to ensure RoaringSet satisfies the set interface.
var _ set.Set = (*RoaringSet)(nil)

// RoaringSet represents a set backed by a 32-bit roaring bitmap.
type RoaringSet struct {
	rb *roaring.Bitmap
}

// New creates an empty roaring set.
func New() *RoaringSet {
	return &RoaringSet{rb: roaring.New()}
}

// Name identifies the implementation.
func (*RoaringSet) Name() string { return "RoaringSet" }

// Len returns the number of distinct members.
func (r *RoaringSet) Len() int { return int(r.rb.GetCardinality()) }

// Insert ensures v is a member.
func (r *RoaringSet) Insert(v uint32) error {
	r.rb.Add(v)
	return nil
}

// Contains reports whether v is a member.
func (r *RoaringSet) Contains(v uint32) (bool, error) {
	return r.rb.Contains(v), nil
}
