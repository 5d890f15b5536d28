// Package tree provides an unbalanced binary search tree set.
//
// No rebalancing is performed, so tree shape depends on insertion order and
// sorted input degenerates to a linked list. Nodes live in an index-addressed
// arena slice, which keeps allocation cheap and makes descent and teardown
// independent of tree depth.
package tree

import (
	"github.com/ville03/programming-for-performance/set"
)

// Compile-time check to ensure Tree satisfies the set interface.
var _ set.Set = (*Tree)(nil)

// none marks an absent child.
const none = -1

// node holds one value and the arena indexes of its children.
type node struct {
	val         uint32
	left, right int32
}

// Tree represents an unbalanced binary search tree set.
type Tree struct {
	nodes []node
}

// New creates an empty tree set.
func New() *Tree {
	return &Tree{}
}

// Name identifies the implementation.
func (*Tree) Name() string { return "Tree" }

// Len returns the number of distinct members. Every node holds exactly one
// distinct value, so the arena length is the cardinality.
func (t *Tree) Len() int { return len(t.nodes) }

// Insert ensures v is a member. Inserting an existing value is a no-op.
func (t *Tree) Insert(v uint32) error {
	if len(t.nodes) == 0 {
		t.nodes = append(t.nodes, node{val: v, left: none, right: none})
		return nil
	}

	// Iterative descent; the arena index of the parent survives the
	// append that a recursive pointer-based version would invalidate.
	i := int32(0)
	for {
		n := t.nodes[i]
		switch {
		case v == n.val:
			return nil
		case v > n.val:
			if n.right == none {
				t.nodes = append(t.nodes, node{val: v, left: none, right: none})
				t.nodes[i].right = int32(len(t.nodes) - 1)
				return nil
			}
			i = n.right
		default:
			if n.left == none {
				t.nodes = append(t.nodes, node{val: v, left: none, right: none})
				t.nodes[i].left = int32(len(t.nodes) - 1)
				return nil
			}
			i = n.left
		}
	}
}

// Contains reports whether v is a member.
func (t *Tree) Contains(v uint32) (bool, error) {
	i := int32(0)
	if len(t.nodes) == 0 {
		return false, nil
	}
	for i != none {
		n := t.nodes[i]
		switch {
		case v == n.val:
			return true, nil
		case v > n.val:
			i = n.right
		default:
			i = n.left
		}
	}
	return false, nil
}
