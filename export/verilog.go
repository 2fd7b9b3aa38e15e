package export

import (
	"fmt"
	"strings"

	"github.com/logic-lang/logicopt/core/ast"
)

// Verilog encodes the tree as a combinational module with a single assign.
// Operators map to ~ & | ^; implication is lowered to (~a | b) since
// Verilog has no implication operator.
func Verilog(n *ast.Node, module string) (string, error) {
	if module == "" {
		module = "expr"
	}
	vars, _ := variableIndex(n)

	var b strings.Builder
	if len(vars) > 0 {
		fmt.Fprintf(&b, "module %s(input %s, output f);\n", module, strings.Join(vars, ", input "))
	} else {
		fmt.Fprintf(&b, "module %s(output f);\n", module)
	}
	b.WriteString("  assign f = ")
	writeVerilog(&b, n, 0)
	b.WriteString(";\nendmodule\n")
	return b.String(), nil
}

// Verilog precedence levels for the operators we emit: ~ > & > ^ > |
func verilogPrec(k ast.Kind) int {
	switch k {
	case ast.KindNot:
		return 4
	case ast.KindAnd:
		return 3
	case ast.KindXor:
		return 2
	default:
		return 1
	}
}

func writeVerilog(b *strings.Builder, n *ast.Node, parentPrec int) {
	switch n.Kind {
	case ast.KindVar:
		switch n.Name {
		case "0":
			b.WriteString("1'b0")
		case "1":
			b.WriteString("1'b1")
		default:
			b.WriteString(n.Name)
		}

	case ast.KindNot:
		b.WriteByte('~')
		writeVerilog(b, n.Kids[0], verilogPrec(ast.KindNot))

	case ast.KindImp:
		// a -> b lowers to ~a | b
		wrap := parentPrec > 0
		if wrap {
			b.WriteByte('(')
		}
		b.WriteByte('~')
		writeVerilog(b, n.Kids[0], verilogPrec(ast.KindNot))
		b.WriteString(" | ")
		writeVerilog(b, n.Kids[1], verilogPrec(ast.KindOr))
		if wrap {
			b.WriteByte(')')
		}

	default:
		op := " & "
		switch n.Kind {
		case ast.KindOr:
			op = " | "
		case ast.KindXor:
			op = " ^ "
		}
		wrap := verilogPrec(n.Kind) < parentPrec
		if wrap {
			b.WriteByte('(')
		}
		for i, kid := range n.Kids {
			if i > 0 {
				b.WriteString(op)
			}
			writeVerilog(b, kid, verilogPrec(n.Kind))
		}
		if wrap {
			b.WriteByte(')')
		}
	}
}
