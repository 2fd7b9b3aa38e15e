// Package export contains the format encoders over a finished expression
// tree. Every encoder is a pure function of the AST (or of a truth table);
// none of them feeds anything back into the engine.
package export

import (
	"fmt"
	"sort"

	"github.com/logic-lang/logicopt/core/ast"
)

// Format names accepted by the CLI export surface
const (
	FormatDIMACS  = "dimacs"
	FormatBLIF    = "blif"
	FormatVerilog = "verilog"
	FormatLaTeX   = "latex"
	FormatMath    = "math"
	FormatCSV     = "csv"
)

// Formats lists the supported format names in stable order
func Formats() []string {
	return []string{FormatDIMACS, FormatBLIF, FormatVerilog, FormatLaTeX, FormatMath, FormatCSV}
}

// literal is one variable occurrence inside a normal-form term
type literal struct {
	name    string
	negated bool
}

// terms decomposes a normal form into its term list: an outer node of the
// given kind contributes one term per operand, anything else is a single
// term. Each term is a list of literals.
func terms(n *ast.Node, outer ast.Kind) ([][]literal, error) {
	var groups []*ast.Node
	if n.Kind == outer {
		groups = n.Kids
	} else {
		groups = []*ast.Node{n}
	}

	out := make([][]literal, 0, len(groups))
	for _, g := range groups {
		var ops []*ast.Node
		inner := ast.KindAnd
		if outer == ast.KindAnd {
			inner = ast.KindOr
		}
		if g.Kind == inner {
			ops = g.Kids
		} else {
			ops = []*ast.Node{g}
		}

		term := make([]literal, 0, len(ops))
		for _, op := range ops {
			switch {
			case op.Kind == ast.KindVar:
				term = append(term, literal{name: op.Name})
			case op.Kind == ast.KindNot && op.Kids[0].Kind == ast.KindVar:
				term = append(term, literal{name: op.Kids[0].Name, negated: true})
			default:
				return nil, fmt.Errorf("expression is not in normal form: unexpected %s operand", op.Kind)
			}
		}
		out = append(out, term)
	}
	return out, nil
}

// variableIndex assigns 1-based indices to the sorted free variables
func variableIndex(n *ast.Node) ([]string, map[string]int) {
	vars := ast.Variables(n)
	sort.Strings(vars)
	index := make(map[string]int, len(vars))
	for i, v := range vars {
		index[v] = i + 1
	}
	return vars, index
}
