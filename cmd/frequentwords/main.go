// Command frequentwords counts the words of a text file, keeps those that
// occur at least min-count times and writes them in alphabetical order.
//
// Usage:
//
//	frequentwords [--config file.yaml] [--log-level debug] <input> <min-count> <output>
//
// The words are counted twice, once with a sorted linked list and once with a
// binary search tree, and the two results are checked against each other.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
