// Package set defines the common contract for integer set implementations.
package set

import (
	"fmt"
	"strings"
)

// ErrOutOfRange is a named error type for values outside a set's configured range.
type ErrOutOfRange struct {
	Value uint32 // Offending value
	Limit uint32 // Inclusive upper bound of the set
}

// Error returns the error message for an out-of-range value.
func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("value out of range: %d exceeds limit %d", e.Value, e.Limit)
}

// ErrLimitTooLarge is a named error type for limits a bounded implementation
// cannot afford to allocate.
type ErrLimitTooLarge struct {
	Limit uint64 // Requested inclusive upper bound
	Max   uint64 // Largest supported bound
}

// Error returns the error message for an unaffordable limit.
func (e *ErrLimitTooLarge) Error() string {
	return fmt.Sprintf("limit too large: %d exceeds maximum %d", e.Limit, e.Max)
}

// ErrUnknownKind is a named error type for unrecognized implementation kinds.
type ErrUnknownKind struct {
	Kind string // The unrecognized kind as given
}

// Error returns the error message for an unknown kind.
func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown set kind: %q", e.Kind)
}

// Kind identifies a concrete set implementation.
type Kind int

// Constants representing the available set implementations.
const (
	// KindAuto defers the choice to the selection policy.
	KindAuto Kind = iota
	KindRoaring
	KindHash
	KindTree
	KindSortedVec
	KindBitVec
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindRoaring:
		return "roaring"
	case KindHash:
		return "hash"
	case KindTree:
		return "tree"
	case KindSortedVec:
		return "sortedvec"
	case KindBitVec:
		return "bitvec"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name to a Kind. Numeric aliases match the
// positions above, so "3" selects the tree the same way the name does.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "0":
		return KindAuto, nil
	case "roaring", "1":
		return KindRoaring, nil
	case "hash", "2":
		return KindHash, nil
	case "tree", "3":
		return KindTree, nil
	case "sortedvec", "sorted", "4":
		return KindSortedVec, nil
	case "bitvec", "5":
		return KindBitVec, nil
	default:
		return KindAuto, &ErrUnknownKind{Kind: s}
	}
}

// Set represents an integer set supporting insertion and membership queries.
//
// Implementations collapse duplicate insertions and never expose internal
// storage. A single instance is owned by one goroutine; implementations do
// not synchronize.
type Set interface {
	// Insert ensures v is a member of the set. Inserting an existing
	// value is a no-op.
	Insert(v uint32) error

	// Contains reports whether v is a member of the set.
	Contains(v uint32) (bool, error)

	// Len returns the number of distinct members.
	Len() int

	// Name identifies the implementation.
	Name() string
}
