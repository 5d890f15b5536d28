// Package sortedvec provides a sorted-slice set optimized for workloads
// where all insertions happen before any queries.
package sortedvec

import (
	"slices"

	"github.com/ville03/programming-for-performance/set"
)

// Compile-time check to ensure SortedVec satisfies the set interface.
var _ set.Set = (*SortedVec)(nil)

// Options contains configuration options for the sorted vector set.
type Options struct {
	// Eager places every insertion directly into the sorted slice instead
	// of staging it. Cheaper when insertions and queries interleave,
	// since staged values force a merge on the next query.
	Eager bool
}

// DefaultOptions contains the default configuration options for the sorted
// vector set. Batched (staged) insertion is the default because the structure
// targets build-then-query workloads.
var DefaultOptions = Options{
	Eager: false,
}

// SortedVec represents a set backed by a sorted slice.
//
// In batched mode insertions append to an unsorted staging slice; the first
// query after one or more insertions sorts the staging slice once and merges
// it into the main slice. A staged value is therefore visible to every
// subsequent query and is never dropped.
type SortedVec struct {
	vals   []uint32 // sorted ascending, no duplicates
	staged []uint32 // pending insertions, unsorted
	opts   Options
}

// New creates a new sorted vector set.
func New(optFns ...func(o *Options)) *SortedVec {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return &SortedVec{opts: opts}
}

// Name identifies the implementation.
func (*SortedVec) Name() string { return "SortedVec" }

// Len returns the number of distinct members.
func (s *SortedVec) Len() int {
	s.merge()
	return len(s.vals)
}

// Insert ensures v is a member. Inserting an existing value is a no-op.
func (s *SortedVec) Insert(v uint32) error {
	if !s.opts.Eager {
		s.staged = append(s.staged, v)
		return nil
	}

	i, ok := slices.BinarySearch(s.vals, v)
	if ok {
		return nil
	}
	s.vals = slices.Insert(s.vals, i, v)
	return nil
}

// Contains reports whether v is a member. Any staged insertions are merged
// first, so lookups always run as a single binary search over sorted data.
func (s *SortedVec) Contains(v uint32) (bool, error) {
	s.merge()
	_, ok := slices.BinarySearch(s.vals, v)
	return ok, nil
}

// merge folds the staging slice into the sorted slice. One sort plus one
// linear merge per insertion batch, instead of an ordered insert per value.
func (s *SortedVec) merge() {
	if len(s.staged) == 0 {
		return
	}

	slices.Sort(s.staged)

	merged := make([]uint32, 0, len(s.vals)+len(s.staged))
	i, j := 0, 0
	for i < len(s.vals) || j < len(s.staged) {
		// Skip duplicates within the staged batch.
		for j > 0 && j < len(s.staged) && s.staged[j] == s.staged[j-1] {
			j++
		}
		switch {
		case j == len(s.staged):
			merged = append(merged, s.vals[i:]...)
			i = len(s.vals)
		case i == len(s.vals):
			merged = append(merged, s.staged[j])
			j++
		case s.vals[i] < s.staged[j]:
			merged = append(merged, s.vals[i])
			i++
		case s.vals[i] > s.staged[j]:
			merged = append(merged, s.staged[j])
			j++
		default:
			merged = append(merged, s.vals[i])
			i++
			j++
		}
	}

	s.vals = merged
	s.staged = s.staged[:0]
}
