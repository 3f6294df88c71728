// Package lam lowers parsed clauses into records for the logic abstract machine.
//
// Lowering is currently a placeholder for a future instruction stream: each
// clause becomes a single record naming its head predicate, at address 0. The
// Lowerer interface is the extension point for a real addressing scheme.
package lam

import (
	"fmt"

	"github.com/brunokim/lam/logic"
)

// Record asserts a clause for a predicate, with code starting at Address.
type Record struct {
	Predicate string
	Address   int
}

func (r Record) String() string {
	return fmt.Sprintf("assert_clause %s@%d", r.Predicate, r.Address)
}

// Lowerer converts a clause into a record. Implementations must be total over
// well-formed clauses, and must not modify them.
type Lowerer interface {
	Lower(c logic.Clause) Record
}

// LowererFunc adapts a function to the Lowerer interface.
type LowererFunc func(c logic.Clause) Record

// Lower calls f(c).
func (f LowererFunc) Lower(c logic.Clause) Record {
	return f(c)
}

// HeadLowerer records the head predicate name of facts and rules alike, at
// address 0. A rule's body is ignored.
var HeadLowerer Lowerer = LowererFunc(lowerHead)

func lowerHead(c logic.Clause) Record {
	return Record{Predicate: logic.HeadOf(c).Name, Address: 0}
}

// LowerAll lowers each clause in order, returning one record per clause. A nil
// lowerer is taken as HeadLowerer.
func LowerAll(l Lowerer, clauses []logic.Clause) []Record {
	if l == nil {
		l = HeadLowerer
	}
	records := make([]Record, len(clauses))
	for i, c := range clauses {
		records[i] = l.Lower(c)
	}
	return records
}
