package export

import (
	"fmt"
	"strings"

	"github.com/logic-lang/logicopt/core/ast"
)

// DIMACS encodes a CNF tree in DIMACS CNF format. Variables map to 1-based
// indices in lexicographic order; a comment line records the mapping.
//
// The constants degenerate cleanly: a tautology has no clauses, a
// contradiction is the single empty clause.
func DIMACS(cnf *ast.Node) (string, error) {
	vars, index := variableIndex(cnf)

	var b strings.Builder

	if cnf.IsOne() {
		fmt.Fprintf(&b, "p cnf %d 0\n", len(vars))
		return b.String(), nil
	}
	if cnf.IsZero() {
		fmt.Fprintf(&b, "p cnf %d 1\n0\n", len(vars))
		return b.String(), nil
	}

	clauses, err := terms(cnf, ast.KindAnd)
	if err != nil {
		return "", err
	}

	for i, v := range vars {
		fmt.Fprintf(&b, "c %d = %s\n", i+1, v)
	}
	fmt.Fprintf(&b, "p cnf %d %d\n", len(vars), len(clauses))

	for _, clause := range clauses {
		for _, lit := range clause {
			idx, ok := index[lit.name]
			if !ok {
				return "", fmt.Errorf("constant %q inside a clause; fold constants before export", lit.name)
			}
			if lit.negated {
				fmt.Fprintf(&b, "-%d ", idx)
			} else {
				fmt.Fprintf(&b, "%d ", idx)
			}
		}
		b.WriteString("0\n")
	}
	return b.String(), nil
}
