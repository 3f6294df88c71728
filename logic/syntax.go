package logic

import (
	"fmt"

	"github.com/brunokim/lam/runes"
)

// IsFunctor returns whether text is a valid functor or atom name: one or more
// ASCII letters, digits or underscores.
func IsFunctor(text string) bool {
	return runes.IsIdents(text)
}

// IsVariable returns whether text is a valid variable name. Variables share the
// functor's character class; what tells them apart is position.
func IsVariable(text string) bool {
	return runes.IsIdents(text)
}

// InvalidNameError is returned by Validate for a name outside the grammar.
type InvalidNameError struct {
	Kind string // "functor", "variable" or "atom"
	Name string
}

func (err *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid %s name: %q", err.Kind, err.Name)
}

// Validate checks that every name within the clause could have been produced by
// the parser. Names of wrapped atoms are exempt.
func Validate(c Clause) error {
	switch c := c.(type) {
	case *Fact:
		return validateAtom(c.Head)
	case *Rule:
		if err := validateAtom(c.Head); err != nil {
			return err
		}
		for _, a := range c.Body {
			if err := validateAtom(a); err != nil {
				return err
			}
		}
		return nil
	default:
		panic(fmt.Sprintf("logic.Validate: unhandled type %T", c))
	}
}

func validateAtom(a Atom) error {
	if !a.IsWrapped() && !IsFunctor(a.Name) {
		return &InvalidNameError{"atom", a.Name}
	}
	return validateTerms(a.Terms)
}

func validateTerms(ts []Term) error {
	for _, t := range ts {
		if err := validateTerm(t); err != nil {
			return err
		}
	}
	return nil
}

func validateTerm(t Term) error {
	switch t := t.(type) {
	case Constant:
		return nil
	case Variable:
		if !IsVariable(t.Name) {
			return &InvalidNameError{"variable", t.Name}
		}
		return nil
	case *Compound:
		if !IsFunctor(t.Functor) {
			return &InvalidNameError{"functor", t.Functor}
		}
		return validateTerms(t.Args)
	default:
		panic(fmt.Sprintf("logic.validateTerm: unhandled type %T", t))
	}
}
