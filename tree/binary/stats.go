package binary

import (
	"math/bits"

	"go.lepak.sg/ordtree/tree"
)

// Height returns the number of nodes on the longest path from the root
// to a leaf, along with the smallest height any binary tree holding
// the same number of keys could have.
// An empty tree has height 0, a single node has height 1.
func (t *Tree[T]) Height() (actual, ideal int) {
	return height(t.root), bits.Len(uint(t.count))
}

func height[T any](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	l, r := height(n.Left), height(n.Right)
	if l > r {
		return l + 1
	}

	return r + 1
}

// Balanced reports whether, at every node, the heights of the left and
// right subtrees differ by at most one.
func (t *Tree[T]) Balanced() bool {
	_, ok := balanced(t.root)
	return ok
}

func balanced[T any](n *tree.Node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}

	l, ok := balanced(n.Left)
	if !ok {
		return 0, false
	}

	r, ok := balanced(n.Right)
	if !ok {
		return 0, false
	}

	if l-r > 1 || r-l > 1 {
		return 0, false
	}

	if l > r {
		return l + 1, true
	}

	return r + 1, true
}
