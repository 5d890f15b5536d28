// Package hashset provides a map-backed integer set.
//
// It doubles as the reference oracle in validation runs: membership answers
// come straight from the runtime map, making it the trusted implementation
// the others are checked against.
package hashset

import (
	"github.com/ville03/programming-for-performance/set"
)

// Compile-time check to ensure HashSet satisfies the set interface.
var _ set.Set = (*HashSet)(nil)

// HashSet represents a set backed by a Go map.
type HashSet struct {
	m map[uint32]struct{}
}

// New creates an empty hash set.
func New() *HashSet {
	return &HashSet{m: make(map[uint32]struct{})}
}

// Name identifies the implementation.
func (*HashSet) Name() string { return "HashSet" }

// Len returns the number of distinct members.
func (h *HashSet) Len() int { return len(h.m) }

// Insert ensures v is a member.
func (h *HashSet) Insert(v uint32) error {
	h.m[v] = struct{}{}
	return nil
}

// Contains reports whether v is a member.
func (h *HashSet) Contains(v uint32) (bool, error) {
	_, ok := h.m[v]
	return ok, nil
}
