// Package logic implements the syntax tree of a logic program: terms, atoms and
// clauses.
//
// A logic term can fall in one of three categories:
//
// * constant: a signed 32-bit integer literal.
//
// * variable: an identifier standing for a yet-to-be-bound term.
//
// * compound: a functor applied to an ordered list of terms, recursively.
//
// A logic program is composed of clauses of the form 'head :- atom1, atom2.', that
// must be read as "head holds if atom1 and atom2 hold". A clause with no body is
// called a fact, and is written 'head.'.
//
// Values are immutable once built; a compound owns its args and trees are never
// shared between clauses.
package logic

import (
	"fmt"
	"strconv"
	"strings"
)

// ---- Terms

// Term is a representation of a logic term.
type Term interface {
	fmt.Stringer
	fmt.GoStringer
	isTerm()
}

// Constant is a leaf term holding an integer.
type Constant struct {
	Value int32
}

// Variable is a leaf term holding an identifier.
//
// Parsing doesn't follow any capitalization convention, so `john` is as much a
// variable as `X`.
type Variable struct {
	Name string
}

// Compound is a functor applied to zero or more args, like `f(X, 1)`.
type Compound struct {
	Functor string
	Args    []Term
}

func (Constant) isTerm()  {}
func (Variable) isTerm()  {}
func (*Compound) isTerm() {}

// NewCompound creates a compound term.
func NewCompound(functor string, args ...Term) *Compound {
	return &Compound{Functor: functor, Args: args}
}

// ---- Atoms

// Atom is a predicate name applied to zero or more terms.
type Atom struct {
	Name  string
	Terms []Term
}

// NewAtom creates an atom.
func NewAtom(name string, terms ...Term) Atom {
	return Atom{Name: name, Terms: terms}
}

// WrapTerm creates an atom from a bare term, named after the term's debug form.
// The resulting atom has the term as its single argument.
func WrapTerm(t Term) Atom {
	return Atom{Name: t.GoString(), Terms: []Term{t}}
}

// IsWrapped returns whether the atom was created by WrapTerm, i.e., it stands for
// a bare term written where an atom was expected.
func (a Atom) IsWrapped() bool {
	return len(a.Terms) == 1 && a.Name == a.Terms[0].GoString()
}

// Indicator returns the atom's name/arity notation, e.g., parent/2.
func (a Atom) Indicator() string {
	return fmt.Sprintf("%s/%d", a.Name, len(a.Terms))
}

// ---- Clauses

// Clause is either a Fact or a Rule.
type Clause interface {
	fmt.Stringer
	head() Atom
}

// Fact is a clause that holds unconditionally.
type Fact struct {
	Head Atom
}

// Rule is a clause whose head holds if all atoms in its body hold.
//
// Body order is preserved from the source text.
type Rule struct {
	Head Atom
	Body []Atom
}

func (c *Fact) head() Atom { return c.Head }
func (c *Rule) head() Atom { return c.Head }

// NewFact creates a fact.
func NewFact(head Atom) *Fact {
	return &Fact{Head: head}
}

// NewRule creates a rule.
func NewRule(head Atom, body ...Atom) *Rule {
	return &Rule{Head: head, Body: body}
}

// HeadOf returns the head atom of a clause.
func HeadOf(c Clause) Atom {
	return c.head()
}

// ---- Eq()

// Eq returns whether t1 and t2 are structurally identical terms.
func Eq(t1, t2 Term) bool {
	switch u := t1.(type) {
	case Constant:
		v, ok := t2.(Constant)
		return ok && u == v
	case Variable:
		v, ok := t2.(Variable)
		return ok && u == v
	case *Compound:
		v, ok := t2.(*Compound)
		return ok && u.Functor == v.Functor && termsEq(u.Args, v.Args)
	default:
		panic(fmt.Sprintf("logic.Eq: unhandled type %T", t1))
	}
}

func termsEq(ts1, ts2 []Term) bool {
	if len(ts1) != len(ts2) {
		return false
	}
	for i := range ts1 {
		if !Eq(ts1[i], ts2[i]) {
			return false
		}
	}
	return true
}

// AtomEq returns whether a1 and a2 are structurally identical atoms.
func AtomEq(a1, a2 Atom) bool {
	return a1.Name == a2.Name && termsEq(a1.Terms, a2.Terms)
}

// ClauseEq returns whether c1 and c2 are structurally identical clauses.
func ClauseEq(c1, c2 Clause) bool {
	switch u := c1.(type) {
	case *Fact:
		v, ok := c2.(*Fact)
		return ok && AtomEq(u.Head, v.Head)
	case *Rule:
		v, ok := c2.(*Rule)
		if !ok || !AtomEq(u.Head, v.Head) || len(u.Body) != len(v.Body) {
			return false
		}
		for i := range u.Body {
			if !AtomEq(u.Body[i], v.Body[i]) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("logic.ClauseEq: unhandled type %T", c1))
	}
}

// ---- String()

func (t Constant) String() string {
	return strconv.FormatInt(int64(t.Value), 10)
}

func (t Variable) String() string {
	return t.Name
}

func (t *Compound) String() string {
	return t.Functor + "(" + joinTerms(t.Args, Term.String) + ")"
}

// String returns the atom in concrete syntax. A wrapped term is rendered as the
// bare term it came from.
func (a Atom) String() string {
	if a.IsWrapped() {
		return a.Terms[0].String()
	}
	return a.Name + "(" + joinTerms(a.Terms, Term.String) + ")"
}

func (c *Fact) String() string {
	return c.Head.String() + "."
}

func (c *Rule) String() string {
	body := make([]string, len(c.Body))
	for i, a := range c.Body {
		body[i] = a.String()
	}
	return fmt.Sprintf("%v :- %s.", c.Head, strings.Join(body, ", "))
}

func joinTerms(ts []Term, f func(Term) string) string {
	args := make([]string, len(ts))
	for i, t := range ts {
		args[i] = f(t)
	}
	return strings.Join(args, ", ")
}

// ---- GoString()

func (t Constant) GoString() string {
	return fmt.Sprintf("Constant(%d)", t.Value)
}

func (t Variable) GoString() string {
	return fmt.Sprintf("Variable(%s)", strconv.Quote(t.Name))
}

func (t *Compound) GoString() string {
	return fmt.Sprintf("Compound(%s, [%s])", strconv.Quote(t.Functor), joinTerms(t.Args, Term.GoString))
}
