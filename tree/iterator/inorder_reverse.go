package iterator

import (
	"go.lepak.sg/ordtree/chops"
	"go.lepak.sg/ordtree/tree"
)

var _ chops.Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any] struct {
	root    *tree.Node[T]
	stack   nodeStack[tree.Node[T]]
	started bool
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](root *tree.Node[T], heightHint int) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		root:  root,
		stack: make(nodeStack[tree.Node[T]], 0, heightHint+1),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushRight(i.root)
		return len(i.stack) != 0
	}

	if len(i.stack) == 0 {
		return false
	}

	i.pushRight(i.stack.pop().Left)

	return len(i.stack) != 0
}

func (i *InOrderReverse[T]) pushRight(n *tree.Node[T]) {
	for n != nil {
		i.stack.push(n)
		n = n.Right
	}
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.stack.top().Key
}
