package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.lepak.sg/ordtree/tree/binary"
)

func newBuildCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Rebuilds a tree from its pre-order and in-order traversals",
		Example: `bst build --pre "4 2 1 3 6" --in "1 2 3 4 6"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.build(cmd)
		},
	}

	cmd.Flags().String("pre", "", "pre-order traversal, whitespace-separated")
	cmd.Flags().String("in", "", "in-order traversal, whitespace-separated")
	cmd.Flags().StringP("mode", "m", "r", "i for the iterative builder, r for the recursive one")

	_ = cmd.MarkFlagRequired("pre")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func (a *app) build(cmd *cobra.Command) error {
	flags := cmd.Flags()
	rawPre, _ := flags.GetString("pre")
	rawIn, _ := flags.GetString("in")
	mode, _ := flags.GetString("mode")

	pre, err := parseKeys(strings.NewReader(rawPre))
	if err != nil {
		return errors.Wrap(err, "pre-order")
	}

	in, err := parseKeys(strings.NewReader(rawIn))
	if err != nil {
		return errors.Wrap(err, "in-order")
	}

	var impl func([]int, []int) (*binary.Tree[int], error)
	switch mode {
	case "i":
		// interesting...
		// actual type params of the function cannot be inferred
		// even though the variable has the fully instantiated type
		impl = binary.BuildFromPreAndInOrderIter[[]int, int]
	case "r":
		impl = binary.BuildFromPreAndInOrderRec[[]int, int]
	default:
		return errors.Errorf("not a valid mode: %q", mode)
	}

	tr, err := impl(pre, in)
	if err != nil {
		return errors.Wrap(err, "cannot build tree")
	}
	a.log.Debug().Int("size", tr.Len()).Str("mode", mode).Msg("tree rebuilt")

	fmt.Fprintln(cmd.OutOrStdout(), "tree:")
	fmt.Fprint(cmd.OutOrStdout(), tr.String())

	return nil
}
