package iterator

import (
	"go.lepak.sg/ordtree/chops"
	"go.lepak.sg/ordtree/tree"
)

var _ chops.Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any] struct {
	root    *tree.Node[T]
	stack   nodeStack[tree.Node[T]]
	started bool
}

// Recursive in order iteration looks like this:
//
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
//
// When Next is called, everything up to (1) can be run,
// all the way down to the leftmost child node. This adds
// visit stack frames and we can replicate this in i.stack.
// The associated call to Item is equivalent to f(n).
// The next call to Next continues from (2): pop the frame
// and push the left spine of its right child.

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any](root *tree.Node[T], heightHint int) *InOrder[T] {
	return &InOrder[T]{
		root:  root,
		stack: make(nodeStack[tree.Node[T]], 0, heightHint+1),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.pushLeft(i.root)
		return len(i.stack) != 0
	}

	if len(i.stack) == 0 {
		return false
	}

	i.pushLeft(i.stack.pop().Right)

	return len(i.stack) != 0
}

func (i *InOrder[T]) pushLeft(n *tree.Node[T]) {
	for n != nil {
		i.stack.push(n)
		n = n.Left
	}
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.stack.top().Key
}
