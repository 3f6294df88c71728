// Package fuzz is a harness for go-fuzz over the program parser.
package fuzz

import (
	"github.com/brunokim/lam/parser"
)

// Fuzz reports inputs that parse as interesting. It panics if a parsed clause
// doesn't survive being printed and parsed again.
func Fuzz(data []byte) int {
	result, err := parser.ParseProgram(string(data))
	if err != nil {
		return 0
	}
	for _, c := range result.Clauses {
		if _, rest, err := parser.ParseClause(c.String()); err != nil || rest != "" {
			panic(c.String())
		}
	}
	return 1
}
