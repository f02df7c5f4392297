package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/ordtree/tree"
)

func TestPreOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() *tree.Node[int]
		want   []int
	}{
		{
			name: "empty",
			create: func() *tree.Node[int] {
				return nil
			},
			want: nil,
		},
		{
			name: "one",
			create: func() *tree.Node[int] {
				return &tree.Node[int]{Key: 1}
			},
			want: []int{1},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			want:   []int{4, 2, 1, 3, 6, 5, 7},
		},
		{
			name:   "dogleg",
			create: newDogleg,
			want:   []int{8, 5, 1, 7, 6, 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := NewPreOrder(tt.create(), 0)
			assert.Equal(t, tt.want, collect(i))
			assert.False(t, i.Next(), "exhausted")
		})
	}
}
