package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"go.lepak.sg/ordtree/tree/binary"
)

const (
	flagQuery   = "query"
	flagDelete  = "delete"
	flagWorkers = "workers"
)

func newLoadCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load FILE...",
		Short: "Builds a tree from files of whitespace-separated integers and looks up values",
		Long: "Builds a tree from files of whitespace-separated integers, inserted in file order.\n" +
			"Duplicated values are skipped with a warning. The tree is printed sideways\n" +
			"(root on the left, larger values above), followed by one line per query.",
		Example: "bst load numbers.txt -q 42 -q 19",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd, args)
		},
	}

	cmd.Flags().IntSliceP(flagQuery, "q", nil, "value to look up, repeatable (default from config: 42,19)")
	cmd.Flags().IntSliceP(flagDelete, "d", nil, "value to delete after loading, repeatable")
	cmd.Flags().Int(flagWorkers, 0, "files parsed at once (default from config)")

	return cmd
}

func (a *app) load(cmd *cobra.Command, files []string) error {
	flags := cmd.Flags()

	queries := a.cfg.Queries
	if flags.Changed(flagQuery) {
		queries, _ = flags.GetIntSlice(flagQuery)
	}

	workers := a.cfg.Workers
	if flags.Changed(flagWorkers) {
		workers, _ = flags.GetInt(flagWorkers)
		if workers < 1 {
			return errors.Errorf("--%s must be at least 1, got %d", flagWorkers, workers)
		}
	}

	deletes, _ := flags.GetIntSlice(flagDelete)

	contents, err := readAll(cmd.Context(), files, workers)
	if err != nil {
		return err
	}

	tr := binary.New[int]()
	for i, keys := range contents {
		for _, k := range keys {
			if err := tr.Insert(k); err != nil {
				if !errors.Is(err, binary.ErrAlreadyExists) {
					return err
				}
				a.log.Warn().Str("file", files[i]).Int("key", k).Msg("duplicate value skipped")
			}
		}
		a.log.Debug().Str("file", files[i]).Int("values", len(keys)).Msg("file loaded")
	}

	for _, k := range deletes {
		if err := tr.Delete(k); err != nil {
			a.log.Warn().Err(err).Int("key", k).Msg("cannot delete")
		}
	}

	actual, ideal := tr.Height()
	a.log.Info().Int("size", tr.Len()).Int("height", actual).Int("ideal_height", ideal).Msg("tree built")

	out := cmd.OutOrStdout()
	fmt.Fprint(out, tr.Sideways(a.cfg.Indent))

	for _, q := range queries {
		fmt.Fprintf(out, "%d is in the BST: %t\n", q, tr.Contains(q))
	}

	return nil
}
