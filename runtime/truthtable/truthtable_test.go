package truthtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logic-lang/logicopt/core/ast"
	oerrors "github.com/logic-lang/logicopt/core/errors"
	"github.com/logic-lang/logicopt/runtime/parser"
)

func mustParse(t *testing.T, input string) *ast.Node {
	t.Helper()
	node, err := parser.Parse(input)
	require.NoError(t, err, "Parse(%q)", input)
	return node
}

func TestTable(t *testing.T) {
	tests := []struct {
		input string
		vars  []string
		want  []bool
	}{
		{"a & b", []string{"a", "b"}, []bool{false, false, false, true}},
		{"(a & !b) | (!a & b)", []string{"a", "b"}, []bool{false, true, true, false}},
		{"a | b", []string{"a", "b"}, []bool{false, true, true, true}},
		{"!a", []string{"a"}, []bool{true, false}},
		{"1", nil, []bool{true}},
		{"0", nil, []bool{false}},
		{"a | !a", []string{"a"}, []bool{true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			table, err := Table(mustParse(t, tt.input), tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, table)
		})
	}
}

// TestRowOrder pins the canonical assignment order: bit i of the row index
// is the value of variables[i]
func TestRowOrder(t *testing.T) {
	// rows for (a, b): 00, 10, 01, 11 -> a is bit 0
	table, err := Table(mustParse(t, "a & !b"), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, false}, table)
}

func TestTableVariableLimit(t *testing.T) {
	vars := make([]string, MaxTableVariables+1)
	for i := range vars {
		vars[i] = string(rune('a'+i%26)) + string(rune('0'+i/26))
	}
	_, err := Table(ast.Var("a0"), vars)
	require.Error(t, err)
	assert.True(t, oerrors.IsKind(err, oerrors.ErrTooManyVariables), "got %v", err)
}

func TestCompileEvaluatesAdvancedKinds(t *testing.T) {
	xor := ast.Xor(ast.Var("a"), ast.Var("b"))
	table, err := Table(xor, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, table)

	imp := ast.Imp(ast.Var("a"), ast.Var("b"))
	table, err = Table(imp, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, true}, table)
}

func TestEquivalent(t *testing.T) {
	tableOf := func(input string) ([]bool, []string) {
		table, vars, err := TableOf(mustParse(t, input))
		require.NoError(t, err)
		return table, vars
	}

	t.Run("same variables", func(t *testing.T) {
		t1, v1 := tableOf("a & b")
		t2, v2 := tableOf("b & a")
		assert.True(t, Equivalent(t1, v1, t2, v2))
	})

	t.Run("missing variable is a free dimension", func(t *testing.T) {
		t1, v1 := tableOf("a")
		t2, v2 := tableOf("a & (b | !b)")
		// a & (b | !b) only mentions b vacuously, but its table spans b
		assert.True(t, Equivalent(t1, v1, t2, v2))
	})

	t.Run("disjoint variables differ", func(t *testing.T) {
		t1, v1 := tableOf("a")
		t2, v2 := tableOf("b")
		assert.False(t, Equivalent(t1, v1, t2, v2))
	})

	t.Run("scalar tables", func(t *testing.T) {
		t1, v1 := tableOf("1")
		t2, v2 := tableOf("a | !a")
		assert.True(t, Equivalent(t1, v1, t2, v2))

		t3, v3 := tableOf("0")
		assert.False(t, Equivalent(t1, v1, t3, v3))
	})
}

func TestClassification(t *testing.T) {
	taut, _, err := TableOf(mustParse(t, "a | !a"))
	require.NoError(t, err)
	assert.True(t, IsTautology(taut))
	assert.True(t, IsSatisfiable(taut))
	assert.False(t, IsContradiction(taut))

	contra, _, err := TableOf(mustParse(t, "a & !a"))
	require.NoError(t, err)
	assert.True(t, IsContradiction(contra))
	assert.False(t, IsSatisfiable(contra))

	mixed, _, err := TableOf(mustParse(t, "a & b"))
	require.NoError(t, err)
	assert.False(t, IsTautology(mixed))
	assert.True(t, IsSatisfiable(mixed))
}

// TestCompileWalksOnce exercises the compiled evaluator directly over many
// assignments
func TestCompileWalksOnce(t *testing.T) {
	node := mustParse(t, "a & !b | c")
	vars := []string{"a", "b", "c"}
	eval := Compile(node, vars)

	for row := 0; row < 8; row++ {
		env := []bool{row&1 != 0, row&2 != 0, row&4 != 0}
		want := (env[0] && !env[1]) || env[2]
		assert.Equal(t, want, eval(env), "row %d", row)
	}
}
