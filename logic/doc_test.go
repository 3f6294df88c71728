package logic_test

import (
	"fmt"

	. "github.com/brunokim/lam/logic"
)

func ExampleAtom() {
	a := NewAtom("parent", Variable{"john"}, NewCompound("age", Constant{42}))
	fmt.Println(a)
	fmt.Printf("%#v\n", a.Terms[1])
	// Output: parent(john, age(42))
	// Compound("age", [Constant(42)])
}

func ExampleWrapTerm() {
	a := WrapTerm(Variable{"foo"})
	fmt.Println(a.Name)
	fmt.Println(a)
	// Output: Variable("foo")
	// foo
}

func ExampleRule() {
	rule := NewRule(
		NewAtom("ancestor", Variable{"X"}, Variable{"Y"}),
		NewAtom("parent", Variable{"X"}, Variable{"Z"}),
		NewAtom("ancestor", Variable{"Z"}, Variable{"Y"}))
	fmt.Println(rule)
	fmt.Println(HeadOf(rule).Indicator())
	// Output: ancestor(X, Y) :- parent(X, Z), ancestor(Z, Y).
	// ancestor/2
}
