package logic_test

import (
	"encoding/json"
	"testing"

	"github.com/brunokim/lam/dsl"
	"github.com/brunokim/lam/logic"
	"github.com/brunokim/lam/test_helpers"

	"github.com/google/go-cmp/cmp"
)

var (
	const_ = dsl.Const
	var_   = dsl.Var
	comp   = dsl.Comp
	atom   = dsl.Atom
	fact   = dsl.Fact
	rule   = dsl.Rule
)

func TestString(t *testing.T) {
	tests := []struct {
		clause logic.Clause
		want   string
	}{
		{fact(atom("parent", var_("john"), var_("mary"))), "parent(john, mary)."},
		{fact(atom("f")), "f()."},
		{fact(atom("f", comp("g"), const_(-3))), "f(g(), -3)."},
		{fact(dsl.Wrap(var_("foo"))), "foo."},
		{fact(dsl.Wrap(const_(7))), "7."},
		{rule(atom("a", var_("X")), atom("b", var_("X")), atom("c")), "a(X) :- b(X), c()."},
		{rule(atom("a")), "a() :- ."},
	}
	for _, test := range tests {
		if got := test.clause.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}
}

func TestGoString(t *testing.T) {
	tests := []struct {
		term logic.Term
		want string
	}{
		{const_(1), `Constant(1)`},
		{const_(-2147483648), `Constant(-2147483648)`},
		{var_("X"), `Variable("X")`},
		{comp("f"), `Compound("f", [])`},
		{comp("foo", comp("bar", const_(1), const_(2)), var_("X")),
			`Compound("foo", [Compound("bar", [Constant(1), Constant(2)]), Variable("X")])`},
	}
	for _, test := range tests {
		if got := test.term.GoString(); got != test.want {
			t.Errorf("got %s, want %s", got, test.want)
		}
	}
}

func TestEq(t *testing.T) {
	tests := []struct {
		x, y logic.Term
		want bool
	}{
		{const_(1), const_(1), true},
		{const_(1), const_(2), false},
		{var_("X"), var_("X"), true},
		{var_("X"), var_("x"), false},
		{comp("f", var_("X")), comp("f", var_("X")), true},
		{comp("f", var_("X")), comp("g", var_("X")), false},
		{comp("f", var_("X")), comp("f", var_("X"), var_("Y")), false},
		{comp("f", comp("g", const_(1))), comp("f", comp("g", const_(1))), true},
		{comp("f"), var_("f"), false},
		{const_(1), var_("X1"), false},
	}
	for _, test := range tests {
		if got := logic.Eq(test.x, test.y); got != test.want {
			t.Errorf("Eq(%v, %v) = %v, want %v", test.x, test.y, got, test.want)
		}
	}
}

func TestClauseEq(t *testing.T) {
	r1 := rule(atom("a", var_("X")), atom("b", var_("X")))
	r2 := rule(atom("a", var_("X")), atom("b", var_("X")))
	r3 := rule(atom("a", var_("X")), atom("b", var_("Y")))
	f1 := fact(atom("a", var_("X")))
	if !logic.ClauseEq(r1, r2) {
		t.Errorf("%v != %v", r1, r2)
	}
	if logic.ClauseEq(r1, r3) {
		t.Errorf("%v == %v", r1, r3)
	}
	if logic.ClauseEq(r1, f1) || logic.ClauseEq(f1, r1) {
		t.Errorf("rule and fact compare equal")
	}
	if !logic.ClauseEq(f1, fact(atom("a", var_("X")))) {
		t.Errorf("facts compare different")
	}
}

func TestValidate(t *testing.T) {
	valid := []logic.Clause{
		fact(atom("parent", var_("john"), var_("mary"))),
		fact(dsl.Wrap(comp("f", const_(1)))),
		rule(atom("a"), atom("b", comp("c_1", var_("_")))),
	}
	for _, c := range valid {
		if err := logic.Validate(c); err != nil {
			t.Errorf("%v: got err: %v", c, err)
		}
	}
	invalid := []logic.Clause{
		fact(logic.NewAtom("a b")),
		fact(logic.NewAtom("a", logic.Variable{Name: ""})),
		rule(atom("a"), logic.NewAtom("b", logic.NewCompound("g(", const_(1)))),
	}
	for _, c := range invalid {
		if err := logic.Validate(c); err == nil {
			t.Errorf("%v: want err, got nil", c)
		}
	}
}

func TestEncode(t *testing.T) {
	clauses := dsl.Clauses(
		fact(atom("parent", var_("john"), const_(3))),
		rule(atom("a", var_("X")), atom("b", comp("f", var_("X")))),
	)
	bs, err := json.Marshal(logic.EncodeAll(clauses))
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	want := test_helpers.Dedent(`
        [{"fact":{"name":"parent","terms":[{"var":"john"},{"const":3}]}},
        {"rule":{"body":[{"name":"b","terms":[{"comp":{"args":[{"var":"X"}],"functor":"f"}}]}],"head":{"name":"a","terms":[{"var":"X"}]}}}]`)
	if diff := cmp.Diff(test_helpers.Unwrap(want), string(bs)); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}
