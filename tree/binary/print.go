package binary

import (
	"fmt"
	"strings"

	"go.lepak.sg/ordtree/tree"
	"golang.org/x/exp/constraints"
)

// String returns a string representation of the tree.
// A complete binary tree with height 2 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}

// DefaultIndent is one level of indentation for Sideways.
const DefaultIndent = "    "

// Sideways renders the tree rotated a quarter turn counterclockwise:
// right subtree first, then the node, then the left subtree, one key per
// line, each indented by indent once per level of depth.
// Read with your head tilted left, the root is on the left edge and
// larger keys are above smaller ones:
//
//	        7
//	    6
//	        5
//	4
//	        3
//	    2
//	        1
func (t *Tree[T]) Sideways(indent string) string {
	var sb strings.Builder

	sidewaysvisit(&sb, t.root, indent, 0)

	return sb.String()
}

func sidewaysvisit[T constraints.Ordered](
	sb *strings.Builder, n *tree.Node[T], indent string, depth int) {
	if n == nil {
		return
	}

	sidewaysvisit(sb, n.Right, indent, depth+1)

	sb.WriteString(strings.Repeat(indent, depth))
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	sidewaysvisit(sb, n.Left, indent, depth+1)
}
