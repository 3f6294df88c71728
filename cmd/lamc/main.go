// Command lamc parses logic programs and lowers their clauses.
//
// Usage:
//
//	lamc parse [flags] [FILE...]
//	lamc lower [flags] [FILE...]
//
// With no files, or with "-", the program is read from stdin.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
