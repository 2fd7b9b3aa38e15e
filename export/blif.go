package export

import (
	"fmt"
	"strings"

	"github.com/logic-lang/logicopt/core/ast"
)

// BLIF encodes a DNF tree as a single-output BLIF model. Each DNF term
// becomes one cover row: 1 for a positive literal, 0 for a negated one,
// - for a variable the term does not mention.
func BLIF(dnf *ast.Node, model string) (string, error) {
	if model == "" {
		model = "expr"
	}
	vars, index := variableIndex(dnf)

	var b strings.Builder
	fmt.Fprintf(&b, ".model %s\n", model)
	if len(vars) > 0 {
		fmt.Fprintf(&b, ".inputs %s\n", strings.Join(vars, " "))
	}
	b.WriteString(".outputs f\n")

	switch {
	case dnf.IsOne():
		b.WriteString(".names f\n1\n")
	case dnf.IsZero():
		b.WriteString(".names f\n")
	default:
		rows, err := terms(dnf, ast.KindOr)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, ".names %s f\n", strings.Join(vars, " "))
		for _, term := range rows {
			row := make([]byte, len(vars))
			for i := range row {
				row[i] = '-'
			}
			for _, lit := range term {
				idx, ok := index[lit.name]
				if !ok {
					return "", fmt.Errorf("constant %q inside a term; fold constants before export", lit.name)
				}
				if lit.negated {
					row[idx-1] = '0'
				} else {
					row[idx-1] = '1'
				}
			}
			fmt.Fprintf(&b, "%s 1\n", row)
		}
	}

	b.WriteString(".end\n")
	return b.String(), nil
}
