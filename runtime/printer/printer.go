// Package printer renders an expression tree back to source syntax with
// minimal yet context-correct parentheses.
//
// Binary operators get single spaces, ! sits directly on its operand, XOR
// renders as the word XOR and implication as the arrow U+2192. A subtree is
// wrapped when its ForceParens hint is set, when its precedence is strictly
// lower than its parent's, or when it is the right operand of an equal
// precedence left-associative operator of the same kind. The wrap decision
// is taken exactly once per subtree, so double parentheses cannot occur even
// when hints and precedence agree.
package printer

import (
	"strings"

	"github.com/logic-lang/logicopt/core/ast"
)

// Operator precedence, high to low: Not > And > Xor > Or > Imp.
const (
	precImp = 1
	precOr  = 2
	precXor = 3
	precAnd = 4
	precNot = 5
)

func precedence(k ast.Kind) int {
	switch k {
	case ast.KindNot:
		return precNot
	case ast.KindAnd:
		return precAnd
	case ast.KindXor:
		return precXor
	case ast.KindOr:
		return precOr
	case ast.KindImp:
		return precImp
	default: // leaves bind tightest
		return precNot + 1
	}
}

func operator(k ast.Kind) string {
	switch k {
	case ast.KindAnd:
		return " & "
	case ast.KindOr:
		return " | "
	case ast.KindXor:
		return " XOR "
	default:
		return " → "
	}
}

// Print renders the tree to source syntax
func Print(n *ast.Node) string {
	var b strings.Builder
	render(&b, n, false)
	return b.String()
}

// render writes n, already knowing whether the parent context requires the
// subtree to be wrapped
func render(b *strings.Builder, n *ast.Node, wrapped bool) {
	if wrapped {
		b.WriteByte('(')
	}

	switch n.Kind {
	case ast.KindVar:
		b.WriteString(n.Name)

	case ast.KindNot:
		b.WriteByte('!')
		operand := n.Kids[0]
		// the operand of ! is wrapped iff it is a binary node
		render(b, operand, operand.Kind != ast.KindVar && operand.Kind != ast.KindNot)

	default:
		op := operator(n.Kind)
		for i, kid := range n.Kids {
			if i > 0 {
				b.WriteString(op)
			}
			render(b, kid, needsParens(kid, n, i))
		}
	}

	if wrapped {
		b.WriteByte(')')
	}
}

// needsParens decides the wrap for kid printed as operand i of parent
func needsParens(kid, parent *ast.Node, i int) bool {
	if kid.Kind == ast.KindVar {
		// a leaf is never wrapped
		return false
	}
	if kid.ForceParens {
		return true
	}
	kp, pp := precedence(kid.Kind), precedence(parent.Kind)
	if kp < pp {
		return true
	}
	// equal precedence: wrap the right operand of a left-associative
	// operator of the same kind (only Xor/Imp can nest same-kind; flat
	// And/Or never hold a same-kind child)
	return kp == pp && kid.Kind == parent.Kind && i > 0
}
