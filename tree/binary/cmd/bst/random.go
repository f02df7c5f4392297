package main

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.lepak.sg/ordtree/tree/binary"
)

func newRandomCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Builds a tree from a random permutation of 0..n-1",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.random(cmd)
		},
	}

	cmd.Flags().Int64P("seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().IntP("num", "n", 10, "number of nodes in the tree")
	cmd.Flags().BoolP("balanced", "b", false, "if true, keep building the tree until it is balanced")
	cmd.Flags().Int("max-attempts", 100000, "give up on -b after this many trees (0 for no limit)")

	return cmd
}

func (a *app) random(cmd *cobra.Command) error {
	flags := cmd.Flags()
	seed, _ := flags.GetInt64("seed")
	num, _ := flags.GetInt("num")
	balanced, _ := flags.GetBool("balanced")
	maxAttempts, _ := flags.GetInt("max-attempts")

	if num < 0 {
		return errors.Errorf("--num must not be negative, got %d", num)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.log.Debug().Int64("seed", seed).Int("num", num).Msg("building random tree")

	var tr *binary.Tree[int]
	attempts := 0

	if balanced {
		var ok bool
		tr, attempts, ok = binary.BuildRandomBalanced(num, seed, maxAttempts)
		if !ok {
			a.log.Warn().Int("attempts", attempts).Msg("gave up, tree is not balanced")
		}
	} else {
		tr = binary.BuildRandom(num, seed)
	}

	preorder := make([]int, 0, num)
	tr.PreOrder(func(k int) bool {
		preorder = append(preorder, k)
		return true
	})

	inorder := make([]int, 0, num)
	for n := range tr.InOrderCoroutine().Items() {
		inorder = append(inorder, n)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "seed:", seed)
	fmt.Fprintln(out, "preorder:", preorder)
	fmt.Fprintln(out, "inorder:", inorder)

	fmt.Fprintln(out, "tree:")
	fmt.Fprintln(out, tr.String())

	actual, ideal := tr.Height()
	fmt.Fprintln(out, "height:", actual, "ideal:", ideal)

	if balanced {
		fmt.Fprintln(out, "attempts:", attempts)
	}

	return nil
}
