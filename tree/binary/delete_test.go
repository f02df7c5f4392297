package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

// handBuilt rebuilds the exact tree with the given pre-order traversal.
// The in-order traversal of a search tree is just its sorted keys.
func handBuilt(t *testing.T, pre ...int) *Tree[int] {
	t.Helper()

	in := slices.Clone(pre)
	slices.Sort(in)

	tr, err := BuildFromPreAndInOrderRec(pre, in)
	require.NoError(t, err)

	return tr
}

func preOrderKeys[T int | string](tr *Tree[T]) []T {
	var out []T
	tr.PreOrder(func(k T) bool {
		out = append(out, k)
		return true
	})
	return out
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		pre     []int
		del     int
		wantErr error
		wantPre []int
	}{
		{
			name:    "empty",
			del:     1,
			wantErr: ErrNotFound,
		},
		{
			name:    "missing",
			pre:     []int{4, 2, 1, 3, 6, 5, 7},
			del:     8,
			wantErr: ErrNotFound,
			wantPre: []int{4, 2, 1, 3, 6, 5, 7},
		},
		{
			name:    "only node",
			pre:     []int{1},
			del:     1,
			wantPre: nil,
		},
		{
			name:    "leaf",
			pre:     []int{4, 2, 1, 3, 6, 5, 7},
			del:     5,
			wantPre: []int{4, 2, 1, 3, 6, 7},
		},
		{
			name:    "no left, right moves up",
			pre:     []int{2, 1, 5, 7, 6, 8},
			del:     5,
			wantPre: []int{2, 1, 7, 6, 8},
		},
		{
			name:    "root with no left",
			pre:     []int{1, 3, 2, 4},
			del:     1,
			wantPre: []int{3, 2, 4},
		},
		{
			name:    "left child is the predecessor",
			pre:     []int{5, 3, 1, 8},
			del:     5,
			wantPre: []int{3, 1, 8},
		},
		{
			// 30's right spine ends at 45, whose left child 43
			// takes 45's old place under 40
			name:    "deep predecessor with left child",
			pre:     []int{50, 30, 20, 40, 35, 45, 43, 70},
			del:     50,
			wantPre: []int{45, 30, 20, 40, 35, 43, 70},
		},
		{
			// 4 has both children; the successor 5 would also work
			// but the predecessor 3 must be chosen
			name:    "predecessor not successor",
			pre:     []int{4, 2, 1, 3, 6, 5, 7},
			del:     4,
			wantPre: []int{3, 2, 1, 6, 5, 7},
		},
		{
			name:    "inner node with only left",
			pre:     []int{8, 4, 2, 1, 3, 9},
			del:     4,
			wantPre: []int{8, 3, 2, 1, 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New[int]()
			if len(tt.pre) != 0 {
				tr = handBuilt(t, tt.pre...)
			}
			before := tr.Clone()

			err := tr.Delete(tt.del)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, tr.Equal(before), "failed delete changed the tree")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPre, preOrderKeys(tr))
			assert.Equal(t, before.Len()-1, tr.Len())
			assert.False(t, tr.Contains(tt.del))
			assert.True(t, slices.IsSorted(tr.Keys()))
		})
	}
}

func TestDelete_ReplacementIsMaxOfLeft(t *testing.T) {
	// every node with a left subtree, deleted on its own
	pre := []int{50, 30, 20, 10, 25, 40, 35, 45, 43, 70, 60, 55, 80}

	for _, del := range pre {
		tr := handBuilt(t, pre...)

		var leftMax int
		var hasLeft bool
		{
			// find del and the max of its left subtree by hand
			n := tr.root
			for n.Key != del {
				if del < n.Key {
					n = n.Left
				} else {
					n = n.Right
				}
			}
			if n.Left != nil {
				hasLeft = true
				m := n.Left
				for m.Right != nil {
					m = m.Right
				}
				leftMax = m.Key
			}
		}

		require.NoError(t, tr.Delete(del))

		if hasLeft {
			// the predecessor now sits where del was; its own old node is gone
			got := preOrderKeys(tr)
			want := slices.Clone(pre)
			i := slices.Index(want, del)
			want[i] = leftMax
			j := i + 1 + slices.Index(want[i+1:], leftMax)
			want = slices.Delete(want, j, j+1)
			assert.Equal(t, want, got, "delete %d", del)
		}

		assert.False(t, tr.Contains(del))
		for _, k := range pre {
			if k != del {
				assert.True(t, tr.Contains(k), "delete %d lost %d", del, k)
			}
		}
	}
}

func TestDelete_Scenario(t *testing.T) {
	tr := New[int]()

	for _, k := range []int{15, 10, 20} {
		require.NoError(t, tr.Insert(k))
	}
	assert.ErrorIs(t, tr.Insert(20), ErrAlreadyExists)
	for _, k := range []int{8, 12, 18, 30, 16, 19} {
		require.NoError(t, tr.Insert(k))
	}
	require.Equal(t, 9, tr.Len())

	require.NoError(t, tr.Delete(20))

	// the node that held 20 now holds 19, the max of {16, 18, 19}
	n := tr.root.Right
	require.NotNil(t, n)
	assert.Equal(t, 19, n.Key)
	require.NotNil(t, n.Left)
	assert.Equal(t, 18, n.Left.Key)
	require.NotNil(t, n.Left.Left)
	assert.Equal(t, 16, n.Left.Left.Key)
	assert.Nil(t, n.Left.Right)
	assert.Equal(t, 30, n.Right.Key)

	assert.ErrorIs(t, tr.Delete(20), ErrNotFound)
	assert.Equal(t, []int{8, 10, 12, 15, 16, 18, 19, 30}, tr.Keys())
	assert.Equal(t, 8, tr.Len())
}

func TestDelete_UntilEmpty(t *testing.T) {
	tr := BuildRandom(50, 42)

	for k := 0; k < 50; k++ {
		require.NoError(t, tr.Delete(k))
		assert.Equal(t, 49-k, tr.Len())
	}

	assert.Nil(t, tr.root)
	assert.Equal(t, "", tr.Sideways(DefaultIndent))

	// an emptied tree is as good as a new one
	require.NoError(t, tr.Insert(3))
	assert.Equal(t, []int{3}, tr.Keys())
}
