// Package iterator provides tree iterators for use
// by tree implementations.
//
// Nodes carry no parent pointers, so every iterator keeps
// its own stack of pending nodes. A stack never holds more
// than height+1 nodes.
package iterator

import (
	"go.lepak.sg/ordtree/chops"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)

// nodeStack is the explicit call stack shared by the iterators.
type nodeStack[T any] []*T

func (s *nodeStack[T]) push(n *T) {
	*s = append(*s, n)
}

func (s *nodeStack[T]) pop() *T {
	old := *s
	n := old[len(old)-1]
	// don't keep the popped node alive through the backing array
	old[len(old)-1] = nil
	*s = old[:len(old)-1]
	return n
}

func (s nodeStack[T]) top() *T {
	return s[len(s)-1]
}
