package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.lepak.sg/ordtree/tree/binary"
)

var demoKeys = []int{15, 10, 20, 8, 12, 18, 30, 16, 19}

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Runs a scripted insert/delete session and checks every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.demo(cmd)
		},
	}
}

// demo inserts demoKeys with a duplicate 20 after the third key,
// then deletes 20 twice. Every step must succeed or fail exactly
// as a search tree should.
func (a *app) demo(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	tr := binary.New[int]()

	for i, k := range demoKeys {
		if err := tr.Insert(k); err != nil {
			return errors.Wrap(err, "failed to insert")
		}

		if i == 2 {
			err := tr.Insert(20)
			if !errors.Is(err, binary.ErrAlreadyExists) {
				return errors.Errorf("second insert of 20: want %v, got %v", binary.ErrAlreadyExists, err)
			}
			a.log.Info().Err(err).Msg("duplicate rejected")
		}
	}

	fmt.Fprintln(out, "after inserts:")
	fmt.Fprint(out, tr.String())

	if err := tr.Delete(20); err != nil {
		return errors.Wrap(err, "failed to delete")
	}

	if err := tr.Delete(20); !errors.Is(err, binary.ErrNotFound) {
		return errors.Errorf("second delete of 20: want %v, got %v", binary.ErrNotFound, err)
	}

	fmt.Fprintln(out, "after deleting 20:")
	fmt.Fprint(out, tr.String())

	return nil
}
