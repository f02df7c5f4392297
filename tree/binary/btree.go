package binary

import (
	"fmt"

	"go.lepak.sg/ordtree/chops"
	"go.lepak.sg/ordtree/tree"
	"go.lepak.sg/ordtree/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (inserting, deleting, merging).
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use New or &Tree{} when creating one).
//
// This tree is not self-balancing.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
//   - Every node is owned by exactly one slot: the root, or the Left or Right
//     of exactly one other node
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root *tree.Node[T]
	// number of keys, kept in step by every mutating operation
	count int
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// slot walks down from the root and returns the slot where k lives,
// or the empty slot where k would be attached.
// The tree is not modified.
func (t *Tree[T]) slot(k T) **tree.Node[T] {
	s := &t.root

	for *s != nil {
		switch tree.Compare(k, (*s).Key) {
		case tree.Less:
			s = &(*s).Left
		case tree.Greater:
			s = &(*s).Right
		case tree.Equal:
			return s
		default:
			panic("unreachable")
		}
	}

	return s
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns an error matching
// ErrAlreadyExists and the tree is left as it was.
func (t *Tree[T]) Insert(k T) error {
	s := t.slot(k)
	if *s != nil {
		return fmt.Errorf("insert %v: %w", k, ErrAlreadyExists)
	}

	*s = tree.NodeOf(k)
	t.count++

	return nil
}

// Delete removes k from the tree.
// If k is not in the tree, Delete returns an error matching ErrNotFound.
//
// When the node holding k has a left subtree, the node is kept and its
// key is replaced with the largest key of that left subtree (the in-order
// predecessor), which is then unlinked. The successor is never used.
// Otherwise the node's slot takes over its right subtree.
func (t *Tree[T]) Delete(k T) error {
	s := t.slot(k)
	n := *s
	if n == nil {
		return fmt.Errorf("delete %v: %w", k, ErrNotFound)
	}

	if n.Left != nil {
		n.Key = takeMax(&n.Left)
	} else {
		*s = tree.Take(&n.Right)
	}
	t.count--

	return nil
}

// takeMax unlinks the rightmost node under the non-empty slot s and
// returns its key. The rightmost node's left subtree moves up into the
// slot that owned it.
func takeMax[T any](s **tree.Node[T]) T {
	for (*s).Right != nil {
		s = &(*s).Right
	}

	n := *s
	*s = tree.Take(&n.Left)

	return n.Key
}

// AddToEnd grafts all of other onto t. The root key of other is routed
// like Insert would route it, and the empty slot it reaches takes the
// whole of other's nodes. On success other is left empty.
//
// If other is nil or empty, AddToEnd returns an error matching
// ErrEmptyInput. If other's root key is already in t, it returns an
// error matching ErrAlreadyExists; in both cases neither tree changes,
// and other can still be used by the caller.
//
// Only other's root key is compared against t. Keeping the rest of
// other's keys within the range allowed at the target slot is the
// caller's responsibility; AddToEnd does not check it, and a graft that
// breaks the range leaves t unordered.
func (t *Tree[T]) AddToEnd(other *Tree[T]) error {
	if other == nil || other.root == nil {
		return fmt.Errorf("add to end: %w", ErrEmptyInput)
	}

	k := other.root.Key
	s := t.slot(k)
	if *s != nil {
		return fmt.Errorf("add to end %v: %w", k, ErrAlreadyExists)
	}

	*s = tree.Take(&other.root)
	t.count += other.count
	other.count = 0

	return nil
}

// Min returns the smallest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Min() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}

	for n.Left != nil {
		n = n.Left
	}

	return n.Key, true
}

// Max returns the largest key in the tree.
// If the tree is empty, ok is false.
func (t *Tree[T]) Max() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}

	for n.Right != nil {
		n = n.Right
	}

	return n.Key, true
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Walk down as if searching for k. Every time we turn right,
	// the node we turned at is less than k and larger than every
	// such node seen before it.
	// https://courses.csail.mit.edu/6.006/fall11/rec/rec05.pdf
	var less *tree.Node[T]
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			less, n = n, n.Right
		case tree.Equal:
			// will be the max in the left subtree, if there is one
			if n.Left != nil {
				less = n.Left
				for less.Right != nil {
					less = less.Right
				}
			}
			n = nil
		default:
			panic("unreachable")
		}
	}

	if less == nil {
		return
	}

	return less.Key, true
}

// Clone returns a deep copy of the tree.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root:  t.root.Clone(),
		count: t.count,
	}
}

// Equal reports whether both trees have the same shape and the same
// key at every position.
func (t *Tree[T]) Equal(other *Tree[T]) bool {
	return t.count == other.count && equalNodes(t.root, other.root)
}

func equalNodes[T comparable](a, b *tree.Node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Key == b.Key &&
		equalNodes(a.Left, b.Left) &&
		equalNodes(a.Right, b.Right)
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	visitInOrder(t.root, f)
}

func visitInOrder[T any](n *tree.Node[T], f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n == nil {
		return true
	}

	return visitInOrder(n.Left, f) &&
		f(n.Key) &&
		visitInOrder(n.Right, f)
}

// PreOrder applies f to each key in the tree, visiting every node
// before its children. If f returns false, the iteration is stopped early.
// Inserting the keys in this order into an empty tree rebuilds the
// same shape.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	visitPreOrder(t.root, f)
}

func visitPreOrder[T any](n *tree.Node[T], f func(k T) bool) bool {
	if n == nil {
		return true
	}

	return f(n.Key) &&
		visitPreOrder(n.Left, f) &&
		visitPreOrder(n.Right, f)
}

// Keys returns all keys in ascending order.
func (t *Tree[T]) Keys() []T {
	return chops.Collect[T](t.InOrderIterator(), t.count)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterate ??
	return chops.CoIterate[T](t.InOrderIterator())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root, 0)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in reverse order, largest first.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, 0)
}

// PreOrderIterator returns an iterator object that yields
// keys from the tree in pre-order.
func (t *Tree[T]) PreOrderIterator() *iterator.PreOrder[T] {
	return iterator.NewPreOrder(t.root, 0)
}
