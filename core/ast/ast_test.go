package ast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConstructorsFlatten(t *testing.T) {
	nested := And(Var("a"), And(Var("b"), Var("c")))
	want := &Node{Kind: KindAnd, Kids: []*Node{Var("a"), Var("b"), Var("c")}}
	if diff := cmp.Diff(want, nested); diff != "" {
		t.Errorf("And did not flatten (-want +got):\n%s", diff)
	}

	mixed := Or(Var("a"), And(Var("b"), Var("c")))
	if len(mixed.Kids) != 2 {
		t.Errorf("Or flattened across kinds: %d kids", len(mixed.Kids))
	}
}

func TestCloneIsDisjoint(t *testing.T) {
	original := Or(Var("a"), Not(And(Var("b"), Var("c"))))
	clone := original.Clone()

	if !Equal(original, clone) {
		t.Fatal("clone is not structurally equal")
	}

	// mutate the clone, the original must not see it
	clone.Kids[1].Kids[0].Kids[0].Name = "z"
	if original.Kids[1].Kids[0].Kids[0].Name != "b" {
		t.Error("clone shares nodes with the original")
	}
}

func TestEqual(t *testing.T) {
	a := And(Var("a"), Var("b"))
	same := And(Var("a"), Var("b"))
	swapped := And(Var("b"), Var("a"))

	if !Equal(a, same) {
		t.Error("identical trees must be equal")
	}
	if Equal(a, swapped) {
		t.Error("equality is order-sensitive, canonicalisation handles commutativity")
	}

	hinted := And(Var("a"), Var("b"))
	hinted.ForceParens = true
	if !Equal(a, hinted) {
		t.Error("the printer hint must not affect equality")
	}
}

func TestVariables(t *testing.T) {
	node := Or(
		And(Var("b"), Var("a"), One()),
		Not(Var("c")),
		Zero(),
		Var("a"),
	)
	want := []string{"a", "b", "c"}
	if diff := cmp.Diff(want, Variables(node)); diff != "" {
		t.Errorf("Variables mismatch (-want +got):\n%s", diff)
	}

	if got := Variables(One()); len(got) != 0 {
		t.Errorf("constants contribute no variables, got %v", got)
	}
}

func TestCounts(t *testing.T) {
	// a & (b | !c): And, a, Or, b, Not, c
	node := And(Var("a"), Or(Var("b"), Not(Var("c"))))

	if got := NodeCount(node); got != 6 {
		t.Errorf("NodeCount = %d, want 6", got)
	}
	if got := LiteralCount(node); got != 3 {
		t.Errorf("LiteralCount = %d, want 3", got)
	}
	if got := Depth(node); got != 4 {
		t.Errorf("Depth = %d, want 4", got)
	}
	if got := Depth(Var("a")); got != 1 {
		t.Errorf("leaf Depth = %d, want 1", got)
	}
}

func TestKeyIgnoresForceParens(t *testing.T) {
	plain := And(Var("a"), Var("b"))
	hinted := And(Var("a"), Var("b"))
	hinted.ForceParens = true
	if Key(plain) != Key(hinted) {
		t.Error("Key must not depend on the printer hint")
	}

	if Key(plain) == Key(Or(Var("a"), Var("b"))) {
		t.Error("Key must distinguish operator kinds")
	}
}

func TestComplement(t *testing.T) {
	if !Equal(Complement(Var("a")), Not(Var("a"))) {
		t.Error("complement of a variable is its negation")
	}
	if !Equal(Complement(Not(Var("a"))), Var("a")) {
		t.Error("complement of a negation is its operand")
	}
}

func TestLiteralPredicates(t *testing.T) {
	cases := []struct {
		node *Node
		want bool
	}{
		{Var("a"), true},
		{Not(Var("a")), true},
		{One(), true},
		{Not(And(Var("a"), Var("b"))), false},
		{And(Var("a"), Var("b")), false},
	}
	for _, tc := range cases {
		if got := tc.node.IsLiteral(); got != tc.want {
			t.Errorf("IsLiteral(%s) = %v, want %v", Key(tc.node), got, tc.want)
		}
	}

	if !Zero().IsConst() || !One().IsConst() || Var("x").IsConst() {
		t.Error("constant detection is wrong")
	}
}

func TestWellFormed(t *testing.T) {
	good := Or(Var("a"), Not(Var("b")))
	if !WellFormed(good) {
		t.Error("valid tree rejected")
	}

	bad := &Node{Kind: KindAnd, Kids: []*Node{Var("a")}}
	if WellFormed(bad) {
		t.Error("single-operand And accepted")
	}

	unnamed := &Node{Kind: KindVar}
	if WellFormed(unnamed) {
		t.Error("empty leaf name accepted")
	}
}
