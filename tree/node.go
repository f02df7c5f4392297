package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is one key in a binary tree.
// Left and Right are ownership slots: a nil slot is an empty subtree,
// and a node is owned by exactly one slot. There are no parent pointers.
type Node[T any] struct {
	Key         T
	Left, Right *Node[T]
}

func NodeOf[T any](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Take empties the slot and returns whatever it held.
func Take[T any](slot **Node[T]) *Node[T] {
	n := *slot
	*slot = nil
	return n
}

// Clone copies the subtree rooted at n.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}

	return &Node[T]{
		Key:   n.Key,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
