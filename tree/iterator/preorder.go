package iterator

import (
	"go.lepak.sg/ordtree/chops"
	"go.lepak.sg/ordtree/tree"
)

var _ chops.Iterator[int] = (*PreOrder[int])(nil)

// PreOrder yields every node before its children, left subtree first.
// Feeding its output back into an empty binary tree rebuilds
// exactly the same shape.
type PreOrder[T any] struct {
	root    *tree.Node[T]
	stack   nodeStack[tree.Node[T]]
	started bool
}

// NewPreOrder returns a new PreOrder iterator over the tree rooted at root.
func NewPreOrder[T any](root *tree.Node[T], heightHint int) *PreOrder[T] {
	return &PreOrder[T]{
		root:  root,
		stack: make(nodeStack[tree.Node[T]], 0, heightHint+1),
	}
}

func (i *PreOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		if i.root != nil {
			i.stack.push(i.root)
		}
		return len(i.stack) != 0
	}

	if len(i.stack) == 0 {
		return false
	}

	n := i.stack.pop()
	// right goes in first so that left comes out first
	if n.Right != nil {
		i.stack.push(n.Right)
	}
	if n.Left != nil {
		i.stack.push(n.Left)
	}

	return len(i.stack) != 0
}

func (i *PreOrder[T]) Item() T {
	return i.stack.top().Key
}
