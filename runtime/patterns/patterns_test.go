package patterns

import (
	"testing"

	"github.com/logic-lang/logicopt/core/ast"
	"github.com/logic-lang/logicopt/runtime/parser"
	"github.com/logic-lang/logicopt/runtime/printer"
	"github.com/logic-lang/logicopt/runtime/truthtable"
)

func advanced(t *testing.T, input string) (string, *ast.Node) {
	t.Helper()
	node, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	out := ToAdvanced(node)
	return printer.Print(out), out
}

func TestRecognisesXor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"(a & !b) | (!a & b)", "a XOR b"},
		{"(!a & b) | (a & !b)", "a XOR b"},
		{"(!b & a) | (b & !a)", "a XOR b"},
		{"x & !y | !x & y", "x XOR y"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got, _ := advanced(t, tt.input); got != tt.want {
				t.Errorf("ToAdvanced(%q) prints %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecognisesImplication(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"!a | b", "a → b"},
		{"b | !a", "a → b"},
		{"!x | y", "x → y"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got, _ := advanced(t, tt.input); got != tt.want {
				t.Errorf("ToAdvanced(%q) prints %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecognitionInsideLargerTrees(t *testing.T) {
	got, _ := advanced(t, "c & ((a & !b) | (!a & b))")
	if got != "c & (a XOR b)" {
		t.Errorf("nested xor: got %q", got)
	}

	got, _ = advanced(t, "(!a | b) & c")
	if got != "(a → b) & c" {
		t.Errorf("nested implication: got %q", got)
	}
}

// TestNonMatchingShapesAreLeftIntact pins the deliberately narrow scope
func TestNonMatchingShapesAreLeftIntact(t *testing.T) {
	inputs := []string{
		// XNOR has matching, not opposite, polarities
		"(a & b) | (!a & !b)",
		// same variable on both sides
		"!a | a",
		// both operands negated is not an implication
		"!a | !b",
		// three-operand or
		"!a | b | c",
		// and of three literals
		"(a & !b & c) | (!a & b & c)",
		// operand mentions a third variable
		"(a & !b) | (!a & c)",
		// constants never form an implication
		"!a | 1",
		// plain shapes
		"a & b",
		"a | b & c",
	}
	for _, input := range inputs {
		node, err := parser.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		out := ToAdvanced(node)
		if !ast.Equal(node, out) {
			t.Errorf("ToAdvanced(%q) rewrote a non-matching shape to %q", input, printer.Print(out))
		}
	}
}

// TestAdvancedPreservesSemantics interprets XOR and → by their definitions
// and compares truth tables
func TestAdvancedPreservesSemantics(t *testing.T) {
	inputs := []string{
		"(a & !b) | (!a & b)",
		"!a | b",
		"c & ((a & !b) | (!a & b))",
		"(!x | y) & (x & !z | !x & z)",
	}
	for _, input := range inputs {
		node, err := parser.Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		out := ToAdvanced(node)

		baseTable, baseVars, err := truthtable.TableOf(node)
		if err != nil {
			t.Fatal(err)
		}
		advTable, advVars, err := truthtable.TableOf(out)
		if err != nil {
			t.Fatal(err)
		}
		if !truthtable.Equivalent(baseTable, baseVars, advTable, advVars) {
			t.Errorf("advanced form of %q changed semantics: %q", input, printer.Print(out))
		}
	}
}

func TestAdvancedDoesNotMutateInput(t *testing.T) {
	node, err := parser.Parse("(a & !b) | (!a & b)")
	if err != nil {
		t.Fatal(err)
	}
	before := printer.Print(node)
	_ = ToAdvanced(node)
	if after := printer.Print(node); after != before {
		t.Errorf("ToAdvanced mutated its input: %q -> %q", before, after)
	}
}
