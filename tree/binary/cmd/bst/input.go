package main

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// readAll parses every file at once, with at most workers files open at
// the same time. Results keep the order of names.
// The first error cancels the files that have not been started yet.
func readAll(ctx context.Context, names []string, workers int) ([][]int, error) {
	results := make([][]int, len(names))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, name := range names {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			keys, err := readFile(name)
			if err != nil {
				return err
			}

			results[i] = keys
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func readFile(name string) ([]int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read file")
	}
	defer f.Close()

	keys, err := parseKeys(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}

	return keys, nil
}

// parseKeys reads whitespace-separated integers.
func parseKeys(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var keys []int
	for sc.Scan() {
		k, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, errors.Errorf("value %q is not a number", sc.Text())
		}
		keys = append(keys, k)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "scanning")
	}

	return keys, nil
}
