// Package parser reads logic programs made of facts and rules.
//
// The grammar is, informally:
//
//	program  ::= ws (clause (ws1 clause)*)? ws
//	clause   ::= rule | fact
//	rule     ::= atom ws ":-" ws (atom (ws "," ws atom)*)? ws "."
//	fact     ::= atom ws "."
//	atom     ::= name ws "(" ws terms ws ")" ws | term
//	term     ::= constant | variable | compound
//	compound ::= name ws "(" ws terms ws ")" ws
//	terms    ::= (term (ws "," ws term)*)?
//
// Alternatives are tried in the order written, and the first to match wins.
// Constants are runs of ASCII digits, and both variables and names are runs of
// ASCII letters, digits and underscores. An identifier followed by "(" is never
// a variable.
//
// There are no symbolic constants: in `parent(john, mary).` both arguments are
// variables. An atom written without parens, like `halt.`, is kept as a single
// argument of an atom named after its debug form, `Variable("halt")`.
package parser

import (
	"github.com/brunokim/lam/logic"
)

// Result holds the clauses of a program and the input left unparsed after them.
type Result struct {
	Clauses   []logic.Clause
	Remaining string
}

// ParseProgram parses a sequence of whitespace-separated clauses.
//
// The whole program fails if any clause fails. Parsing stops without error
// when a clause is followed by something other than whitespace, leaving it in
// Remaining.
func ParseProgram(text string) (*Result, error) {
	clauses, rest, err := program(input{text: text})
	if err != nil {
		return nil, locate(text, err)
	}
	return &Result{Clauses: clauses, Remaining: rest.rest()}, nil
}

// ParseClause parses a single fact or rule from the start of text, returning it
// and the unconsumed input.
//
// A rule is tried before a fact, and a text that is neither reports the fact's
// failure: for `a :- b` the error points at ":- b", where a period was expected.
func ParseClause(text string) (logic.Clause, string, error) {
	c, rest, err := clause(input{text: text})
	if err != nil {
		return nil, text, locate(text, err)
	}
	return c, rest.rest(), nil
}

// ParseAtom parses an atom from the start of text, returning it and the
// unconsumed input.
func ParseAtom(text string) (logic.Atom, string, error) {
	a, rest, err := atom(input{text: text})
	if err != nil {
		return logic.Atom{}, text, locate(text, err)
	}
	return a, rest.rest(), nil
}

// ParseTerm parses a term from the start of text, returning it and the
// unconsumed input.
func ParseTerm(text string) (logic.Term, string, error) {
	t, rest, err := term(input{text: text})
	if err != nil {
		return nil, text, locate(text, err)
	}
	return t, rest.rest(), nil
}
