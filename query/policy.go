package query

import (
	"github.com/ville03/programming-for-performance/set"
	"github.com/ville03/programming-for-performance/set/bitvec"
	"github.com/ville03/programming-for-performance/set/hashset"
	"github.com/ville03/programming-for-performance/set/roaringset"
	"github.com/ville03/programming-for-performance/set/sortedvec"
	"github.com/ville03/programming-for-performance/set/tree"
)

// Named selection defaults.
const (
	// DefaultLimit is the inclusive upper bound on values when none is
	// configured.
	DefaultLimit uint64 = 1<<31 - 1

	// AutoBitVecLimit is the practicality threshold for the automatic
	// choice of the bit-indexed set: below it the dense allocation is
	// affordable for any inserted count.
	AutoBitVecLimit uint64 = 10_000_000
)

// Config describes one run of the harness.
type Config struct {
	// Kind selects the implementation. KindAuto defers to the policy.
	Kind set.Kind

	// Limit is the inclusive upper bound on values.
	Limit uint64

	// Separated declares that all insertions precede all queries.
	Separated bool

	// Validate mirrors every operation into a reference hash set and
	// stops the run on the first disagreement.
	Validate bool

	// Interactive switches query output to descriptive messages with
	// mode-transition prompts.
	Interactive bool
}

// Select instantiates the set implementation for cfg. An explicit kind is
// honored unconditionally, even when it is a poor fit for the declared limit
// or access pattern; selection is a hint-driven optimization, not a guard.
//
// With KindAuto the policy prefers the bit-indexed set when the limit is
// bounded tightly enough for dense allocation, then the sorted vector when
// insertions and queries are separated, and otherwise the roaring set.
func Select(cfg Config) (set.Set, error) {
	kind := cfg.Kind
	if kind == set.KindAuto {
		switch {
		case cfg.Limit > 0 && cfg.Limit < AutoBitVecLimit:
			kind = set.KindBitVec
		case cfg.Separated:
			kind = set.KindSortedVec
		default:
			kind = set.KindRoaring
		}
	}

	switch kind {
	case set.KindRoaring:
		return roaringset.New(), nil
	case set.KindHash:
		return hashset.New(), nil
	case set.KindTree:
		return tree.New(), nil
	case set.KindSortedVec:
		return sortedvec.New(func(o *sortedvec.Options) {
			o.Eager = !cfg.Separated
		}), nil
	case set.KindBitVec:
		return bitvec.New(cfg.Limit)
	default:
		return nil, &set.ErrUnknownKind{Kind: kind.String()}
	}
}
