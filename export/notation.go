package export

import (
	"strings"

	"github.com/logic-lang/logicopt/core/ast"
)

// glyphSet parameterises the two symbolic renderings
type glyphSet struct {
	not, and, or, xor, imp string
	zero, one              string
	varWrap                func(string) string
}

var latexGlyphs = glyphSet{
	not: `\lnot `, and: ` \land `, or: ` \lor `, xor: ` \oplus `, imp: ` \rightarrow `,
	zero: "0", one: "1",
	varWrap: func(s string) string {
		if len(s) > 1 {
			return `\mathit{` + strings.ReplaceAll(s, "_", `\_`) + `}`
		}
		return s
	},
}

var mathGlyphs = glyphSet{
	not: "¬", and: " ∧ ", or: " ∨ ", xor: " ⊕ ", imp: " → ",
	zero: "0", one: "1",
	varWrap: func(s string) string { return s },
}

// LaTeX renders the tree in LaTeX math notation
func LaTeX(n *ast.Node) string {
	var b strings.Builder
	writeGlyphs(&b, n, latexGlyphs, 0)
	return b.String()
}

// Math renders the tree in conventional mathematical notation
func Math(n *ast.Node) string {
	var b strings.Builder
	writeGlyphs(&b, n, mathGlyphs, 0)
	return b.String()
}

// symbolic precedence mirrors the printer: ¬ > ∧ > ⊕ > ∨ > →
func glyphPrec(k ast.Kind) int {
	switch k {
	case ast.KindNot:
		return 5
	case ast.KindAnd:
		return 4
	case ast.KindXor:
		return 3
	case ast.KindOr:
		return 2
	default:
		return 1
	}
}

func writeGlyphs(b *strings.Builder, n *ast.Node, g glyphSet, parentPrec int) {
	switch n.Kind {
	case ast.KindVar:
		switch n.Name {
		case "0":
			b.WriteString(g.zero)
		case "1":
			b.WriteString(g.one)
		default:
			b.WriteString(g.varWrap(n.Name))
		}

	case ast.KindNot:
		b.WriteString(g.not)
		kid := n.Kids[0]
		if kid.Kind == ast.KindVar {
			writeGlyphs(b, kid, g, glyphPrec(ast.KindNot))
		} else {
			b.WriteByte('(')
			writeGlyphs(b, kid, g, 0)
			b.WriteByte(')')
		}

	default:
		var op string
		switch n.Kind {
		case ast.KindAnd:
			op = g.and
		case ast.KindOr:
			op = g.or
		case ast.KindXor:
			op = g.xor
		default:
			op = g.imp
		}
		wrap := glyphPrec(n.Kind) < parentPrec
		if wrap {
			b.WriteByte('(')
		}
		for i, kid := range n.Kids {
			if i > 0 {
				b.WriteString(op)
			}
			writeGlyphs(b, kid, g, glyphPrec(n.Kind))
		}
		if wrap {
			b.WriteByte(')')
		}
	}
}
