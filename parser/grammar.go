package parser

import (
	"strconv"
	"strings"

	"github.com/brunokim/lam/logic"
	"github.com/brunokim/lam/runes"

	"github.com/pkg/errors"
)

// input is a cursor over the text being parsed.
type input struct {
	text string
	pos  int
}

func (in input) rest() string {
	return in.text[in.pos:]
}

func (in input) advance(n int) input {
	return input{in.text, in.pos + n}
}

// fail records where a rule failed. Line and Col are filled by locate when the
// failure is returned from the package.
func (in input) fail(expected string) *ParseFailure {
	return &ParseFailure{
		Expected:  expected,
		Remaining: in.rest(),
		Offset:    in.pos,
	}
}

// Grammar rules have the signature
//
//	func(in input) (T, input, error)
//
// On success they return the parsed value and the input past it; on failure
// they return the input unchanged.

// first tries each rule in order, returning the result of the first to succeed.
// If none succeeds, it returns the last failure. A fatal error is returned
// immediately.
func first[T any](in input, rules ...func(input) (T, input, error)) (T, input, error) {
	var zero T
	var err error
	for _, r := range rules {
		var x T
		var next input
		x, next, err = r(in)
		if err == nil {
			return x, next, nil
		}
		if IsFatal(err) {
			return zero, in, err
		}
	}
	return zero, in, err
}

// separatedList parses zero or more elements separated by sep. A separator not
// followed by an element is left unconsumed.
func separatedList[T any](in input, elem func(input) (T, input, error), sep func(input) (input, error)) ([]T, input, error) {
	x, next, err := elem(in)
	if err != nil {
		if IsFatal(err) {
			return nil, in, err
		}
		return nil, in, nil
	}
	xs := []T{x}
	in = next
	for {
		afterSep, err := sep(in)
		if err != nil {
			return xs, in, nil
		}
		x, next, err := elem(afterSep)
		if err != nil {
			if IsFatal(err) {
				return nil, in, err
			}
			return xs, in, nil
		}
		xs = append(xs, x)
		in = next
	}
}

// ---- lexical rules

// ws consumes zero or more whitespace chars.
func ws(in input) input {
	return in.advance(runes.Span(in.rest(), runes.IsSpace))
}

// ws1 consumes one or more whitespace chars.
func ws1(in input) (input, error) {
	n := runes.Span(in.rest(), runes.IsSpace)
	if n == 0 {
		return in, in.fail("whitespace")
	}
	return in.advance(n), nil
}

// tag consumes lit.
func tag(in input, lit string) (input, error) {
	if !strings.HasPrefix(in.rest(), lit) {
		return in, in.fail(strconv.Quote(lit))
	}
	return in.advance(len(lit)), nil
}

// punct consumes lit surrounded by optional whitespace.
func punct(lit string) func(input) (input, error) {
	return func(in input) (input, error) {
		next, err := tag(ws(in), lit)
		if err != nil {
			return in, err
		}
		return ws(next), nil
	}
}

var (
	comma      = punct(",")
	openParen  = punct("(")
	closeParen = punct(")")
)

// ---- terms

func constant(in input) (logic.Term, input, error) {
	n := runes.Span(in.rest(), runes.IsDigit)
	if n == 0 {
		return nil, in, in.fail("integer")
	}
	literal := in.rest()[:n]
	value, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return nil, in, &NumericOverflow{
			Literal: literal,
			Offset:  in.pos,
			Err:     errors.WithStack(err),
		}
	}
	return logic.Constant{Value: int32(value)}, in.advance(n), nil
}

// variable parses an identifier. An identifier followed by an open paren is
// declined, so that it may be parsed as a compound's functor.
func variable(in input) (logic.Term, input, error) {
	n := runes.Span(in.rest(), runes.IsIdent)
	if n == 0 {
		return nil, in, in.fail("variable")
	}
	next := in.advance(n)
	if strings.HasPrefix(ws(next).rest(), "(") {
		return nil, in, in.fail("variable")
	}
	return logic.Variable{Name: in.rest()[:n]}, next, nil
}

func functor(in input) (string, input, error) {
	n := runes.Span(in.rest(), runes.IsIdent)
	if n == 0 {
		return "", in, in.fail("functor")
	}
	return in.rest()[:n], in.advance(n), nil
}

func termList(in input) ([]logic.Term, input, error) {
	return separatedList(in, term, comma)
}

// application parses `name(term, ...)`, with optional whitespace around parens and
// commas. Trailing whitespace after the closing paren is consumed.
func application(in input) (string, []logic.Term, input, error) {
	name, next, err := functor(in)
	if err != nil {
		return "", nil, in, err
	}
	if next, err = openParen(next); err != nil {
		return "", nil, in, err
	}
	args, next, err := termList(next)
	if err != nil {
		return "", nil, in, err
	}
	if next, err = closeParen(next); err != nil {
		return "", nil, in, err
	}
	return name, args, next, nil
}

func compound(in input) (logic.Term, input, error) {
	name, args, next, err := application(in)
	if err != nil {
		return nil, in, err
	}
	return logic.NewCompound(name, args...), next, nil
}

func term(in input) (logic.Term, input, error) {
	return first(in, constant, variable, compound)
}

// ---- atoms

func atomApplication(in input) (logic.Atom, input, error) {
	name, terms, next, err := application(in)
	if err != nil {
		return logic.Atom{}, in, err
	}
	return logic.NewAtom(name, terms...), next, nil
}

// wrappedTerm accepts a bare term in atom position.
func wrappedTerm(in input) (logic.Atom, input, error) {
	t, next, err := term(in)
	if err != nil {
		return logic.Atom{}, in, err
	}
	return logic.WrapTerm(t), next, nil
}

func atom(in input) (logic.Atom, input, error) {
	return first(in, atomApplication, wrappedTerm)
}

// ---- clauses

func fact(in input) (logic.Clause, input, error) {
	head, next, err := atom(in)
	if err != nil {
		return nil, in, err
	}
	if next, err = tag(ws(next), "."); err != nil {
		return nil, in, err
	}
	return logic.NewFact(head), next, nil
}

func rule(in input) (logic.Clause, input, error) {
	head, next, err := atom(in)
	if err != nil {
		return nil, in, err
	}
	if next, err = tag(ws(next), ":-"); err != nil {
		return nil, in, err
	}
	body, next, err := separatedList(ws(next), atom, comma)
	if err != nil {
		return nil, in, err
	}
	if next, err = tag(ws(next), "."); err != nil {
		return nil, in, err
	}
	return logic.NewRule(head, body...), next, nil
}

func clause(in input) (logic.Clause, input, error) {
	return first(in, rule, fact)
}

// program parses whitespace-separated clauses. Once a clause is expected, its
// failure fails the whole program. A clause not followed by whitespace ends the
// program, leaving the rest of the input unconsumed.
func program(in input) ([]logic.Clause, input, error) {
	var clauses []logic.Clause
	in = ws(in)
	for in.rest() != "" {
		c, next, err := clause(in)
		if err != nil {
			return nil, in, err
		}
		clauses = append(clauses, c)
		if in, err = ws1(next); err != nil {
			return clauses, next, nil
		}
	}
	return clauses, in, nil
}
