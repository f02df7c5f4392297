package binary

import (
	"errors"
	"fmt"
	"math/rand"

	"go.lepak.sg/ordtree/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// BuildFrom inserts keys into a new tree in the order given.
// Duplicated keys are skipped; the returned error joins one
// ErrAlreadyExists error per skipped key, and the tree is still
// returned with everything else in it.
func BuildFrom[S ~[]T, T constraints.Ordered](keys S) (*Tree[T], error) {
	tr := New[T]()

	var errs []error
	for _, k := range keys {
		if err := tr.Insert(k); err != nil {
			errs = append(errs, err)
		}
	}

	return tr, errors.Join(errs...)
}

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	// keys are distinct, so this never fails
	tr, _ := BuildFrom(nodes)

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
// maxAttempts bounds the search; if it is used up, the last tree
// built is returned with ok set to false. Pass 0 for no bound.
func BuildRandomBalanced(num int, seed int64, maxAttempts int) (tr *Tree[int], attempts int, ok bool) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	for tr == nil || !tr.Balanced() {
		if maxAttempts > 0 && attempts == maxAttempts {
			return tr, attempts, false
		}
		attempts++

		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr, _ = BuildFrom(nodes)
	}

	return tr, attempts, true
}

var errNotInInOrder = errors.New("pre-order key not found in in-order traversal")

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversals.
// It can build trees that do not respect the ordering invariant,
// which is useful for exercising code that has to cope with them.
func BuildFromPreAndInOrderIter[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	if len(in) == 0 {
		return nil, errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	inOrderMap := make(map[T]int)
	for i, v := range in {
		if _, ok := inOrderMap[v]; ok {
			return nil, errors.New("duplicated key in in-order traversal")
		}
		inOrderMap[v] = i
	}

	if _, ok := inOrderMap[pre[0]]; !ok {
		return nil, errNotInInOrder
	}

	tr := &Tree[T]{root: tree.NodeOf(pre[0]), count: 1}

	for _, toInsert := range pre[1:] {
		toInsertIdx, ok := inOrderMap[toInsert]
		if !ok {
			return nil, errNotInInOrder
		}

		// The idea: walk down the tree to find where toInsert should go,
		// ordering by position in the in-order traversal instead of by key
		s := &tr.root
		for *s != nil {
			// every key already placed was looked up before it went in
			currentKeyIdx := inOrderMap[(*s).Key]
			// not actually tree-related, this Compare function is just handy
			switch tree.Compare(toInsertIdx, currentKeyIdx) {
			case tree.Less:
				// toInsert is first - go left
				s = &(*s).Left
			case tree.Greater:
				// current node key is first - go right
				s = &(*s).Right
			default:
				// since we've already checked that the in-order traversal
				// doesn't contain any duplicate keys while building inOrderMap,
				// this can only be caused by:
				return nil, errors.New("duplicated key in pre-order traversal")
			}
		}

		*s = tree.NodeOf(toInsert)
		tr.count++
	}

	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversals.
func BuildFromPreAndInOrderRec[S ~[]T, T constraints.Ordered](
	pre, in S) (tr *Tree[T], err error) {
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if len(in) == 0 {
		return nil, errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	seen := make(map[T]struct{}, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			return nil, errors.New("duplicated key in in-order traversal")
		}
		seen[v] = struct{}{}
	}

	root, err := buildFromPreAndInOrderRecVisit(pre, in)
	if err != nil {
		return nil, err
	}

	return &Tree[T]{root: root, count: len(in)}, nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T constraints.Ordered](
	pre, in S) (*tree.Node[T], error) {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil, nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return nil, fmt.Errorf("pre-order key %v not found in in-order traversal", x)
	}

	inleft, inright := in[0:xi], in[xi+1:]
	preleft, preright := pre[1:xi+1], pre[xi+1:]

	n := tree.NodeOf(x)

	var err error
	if n.Left, err = buildFromPreAndInOrderRecVisit(preleft, inleft); err != nil {
		return nil, err
	}
	if n.Right, err = buildFromPreAndInOrderRecVisit(preright, inright); err != nil {
		return nil, err
	}

	return n, nil
}
