// Command bst drives a binary search tree from the command line.
//
//	bst load numbers.txt -q 42 -q 19
//	bst demo
//	bst random -n 15 -b
//	bst build --pre "4 2 1 3 6" --in "1 2 3 4 6"
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
