// Package truthtable compiles an expression into an assignment evaluator and
// enumerates full truth tables.
//
// Compilation walks the tree exactly once and returns a closure over closure
// composition, so enumerating the 2^n assignments never re-traverses nodes
// or strings. Row order is canonical: bit i of the row index is the value of
// variables[i] in sorted order.
package truthtable

import (
	"sort"

	"github.com/logic-lang/logicopt/core/ast"
	oerrors "github.com/logic-lang/logicopt/core/errors"
	"github.com/logic-lang/logicopt/core/invariant"
)

// MaxTableVariables caps table enumeration; 2^20 rows is the largest table
// the engine will materialise.
const MaxTableVariables = 20

// Evaluator computes the expression under one assignment. The slice is
// indexed by the variable order fixed at compile time.
type Evaluator func(env []bool) bool

// Compile builds an evaluator over the given variable order. Variables of
// the expression missing from the order are a programming error.
func Compile(n *ast.Node, variables []string) Evaluator {
	invariant.NotNil(n, "node")
	index := make(map[string]int, len(variables))
	for i, v := range variables {
		index[v] = i
	}
	return compile(n, index)
}

func compile(n *ast.Node, index map[string]int) Evaluator {
	switch n.Kind {
	case ast.KindVar:
		switch n.Name {
		case "0":
			return func([]bool) bool { return false }
		case "1":
			return func([]bool) bool { return true }
		default:
			i, ok := index[n.Name]
			invariant.Precondition(ok, "variable %q missing from compile order", n.Name)
			return func(env []bool) bool { return env[i] }
		}

	case ast.KindNot:
		kid := compile(n.Kids[0], index)
		return func(env []bool) bool { return !kid(env) }

	case ast.KindAnd:
		kids := compileKids(n, index)
		return func(env []bool) bool {
			for _, k := range kids {
				if !k(env) {
					return false
				}
			}
			return true
		}

	case ast.KindOr:
		kids := compileKids(n, index)
		return func(env []bool) bool {
			for _, k := range kids {
				if k(env) {
					return true
				}
			}
			return false
		}

	case ast.KindXor:
		l := compile(n.Kids[0], index)
		r := compile(n.Kids[1], index)
		return func(env []bool) bool { return l(env) != r(env) }

	default: // Imp
		l := compile(n.Kids[0], index)
		r := compile(n.Kids[1], index)
		return func(env []bool) bool { return !l(env) || r(env) }
	}
}

func compileKids(n *ast.Node, index map[string]int) []Evaluator {
	kids := make([]Evaluator, len(n.Kids))
	for i, k := range n.Kids {
		kids[i] = compile(k, index)
	}
	return kids
}

// Table enumerates all 2^n assignments over the given variable order and
// returns the row vector of results. Bit i of the row index maps to
// variables[i].
func Table(n *ast.Node, variables []string) ([]bool, error) {
	if len(variables) > MaxTableVariables {
		return nil, oerrors.LimitExceeded(oerrors.ErrTooManyVariables,
			"too many variables for truth table", len(variables), MaxTableVariables)
	}

	eval := Compile(n, variables)
	rows := 1 << len(variables)
	table := make([]bool, rows)
	env := make([]bool, len(variables))
	for row := 0; row < rows; row++ {
		for i := range variables {
			env[i] = row&(1<<i) != 0
		}
		table[row] = eval(env)
	}
	return table, nil
}

// TableOf is a convenience that tables the expression over its own sorted
// free-variable set.
func TableOf(n *ast.Node) ([]bool, []string, error) {
	vars := ast.Variables(n)
	table, err := Table(n, vars)
	if err != nil {
		return nil, nil, err
	}
	return table, vars, nil
}

// Equivalent compares two truth tables over the union of their variable
// sets. A variable missing from one side is a free dimension and does not
// affect that side's value. Tables over empty variable sets compare by
// their single scalar row.
func Equivalent(t1 []bool, v1 []string, t2 []bool, v2 []string) bool {
	union := unionSorted(v1, v2)

	pos1 := positions(v1, union)
	pos2 := positions(v2, union)

	rows := 1 << len(union)
	for row := 0; row < rows; row++ {
		if t1[project(row, pos1)] != t2[project(row, pos2)] {
			return false
		}
	}
	return true
}

// IsTautology reports whether every row is true
func IsTautology(table []bool) bool {
	for _, v := range table {
		if !v {
			return false
		}
	}
	return true
}

// IsContradiction reports whether every row is false
func IsContradiction(table []bool) bool {
	for _, v := range table {
		if v {
			return false
		}
	}
	return true
}

// IsSatisfiable reports whether at least one row is true
func IsSatisfiable(table []bool) bool {
	return !IsContradiction(table)
}

func unionSorted(v1, v2 []string) []string {
	seen := make(map[string]struct{}, len(v1)+len(v2))
	for _, v := range v1 {
		seen[v] = struct{}{}
	}
	for _, v := range v2 {
		seen[v] = struct{}{}
	}
	union := make([]string, 0, len(seen))
	for v := range seen {
		union = append(union, v)
	}
	sort.Strings(union)
	return union
}

// positions maps each variable of vars to its bit position in union
func positions(vars, union []string) []int {
	unionIndex := make(map[string]int, len(union))
	for i, v := range union {
		unionIndex[v] = i
	}
	pos := make([]int, len(vars))
	for i, v := range vars {
		pos[i] = unionIndex[v]
	}
	return pos
}

// project extracts the sub-table row index for a union row
func project(row int, pos []int) int {
	sub := 0
	for i, p := range pos {
		if row&(1<<p) != 0 {
			sub |= 1 << i
		}
	}
	return sub
}
