// Package dsl has short constructors to write syntax trees in Go code.
//
// Constructors panic on names the parser would never produce.
package dsl

import (
	"fmt"

	"github.com/brunokim/lam/logic"
)

func Terms(terms ...logic.Term) []logic.Term {
	return terms
}

func Const(value int32) logic.Constant {
	return logic.Constant{Value: value}
}

func Var(name string) logic.Variable {
	if !logic.IsVariable(name) {
		panic(fmt.Sprintf("dsl.Var: invalid name: %q", name))
	}
	return logic.Variable{Name: name}
}

// Vars creates a variable for each name.
func Vars(names ...string) []logic.Term {
	terms := make([]logic.Term, len(names))
	for i, name := range names {
		terms[i] = Var(name)
	}
	return terms
}

func Comp(functor string, args ...logic.Term) *logic.Compound {
	if !logic.IsFunctor(functor) {
		panic(fmt.Sprintf("dsl.Comp: invalid functor: %q", functor))
	}
	return logic.NewCompound(functor, args...)
}

func Atom(name string, terms ...logic.Term) logic.Atom {
	if !logic.IsFunctor(name) {
		panic(fmt.Sprintf("dsl.Atom: invalid name: %q", name))
	}
	return logic.NewAtom(name, terms...)
}

// Wrap creates the atom the parser builds for a bare term in atom position.
func Wrap(t logic.Term) logic.Atom {
	return logic.WrapTerm(t)
}

func Fact(head logic.Atom) *logic.Fact {
	return logic.NewFact(head)
}

func Rule(head logic.Atom, body ...logic.Atom) *logic.Rule {
	return logic.NewRule(head, body...)
}

func Clauses(cs ...logic.Clause) []logic.Clause {
	return cs
}
