package test_helpers

import (
	"github.com/brunokim/lam/logic"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	// EquateTrees compares syntax trees treating nil and empty slices alike, so that
	// `f()` built by hand compares equal to `f()` built by the parser.
	EquateTrees = cmp.Options{
		cmpopts.EquateEmpty(),
	}

	// ClauseComparer compares clauses with logic.ClauseEq.
	ClauseComparer = cmp.Comparer(func(c1, c2 logic.Clause) bool {
		return logic.ClauseEq(c1, c2)
	})
)
