// Package patterns performs structural recognition of XOR and implication
// shapes over a simplified tree.
//
// Exactly two shapes are recognised, both on an Or with exactly two
// operands: the two-And XOR form (a & !b) | (!a & b), and the implication
// form !a | b. Deeper or mixed shapes are deliberately left intact; broader
// recognition risks false positives.
package patterns

import (
	"github.com/logic-lang/logicopt/core/ast"
)

// ToAdvanced rewrites recognised shapes into Xor/Imp nodes, bottom-up,
// returning a fresh tree. Non-matching subtrees are copied unchanged.
func ToAdvanced(n *ast.Node) *ast.Node {
	out := &ast.Node{Kind: n.Kind, Name: n.Name, ForceParens: n.ForceParens}
	if len(n.Kids) > 0 {
		out.Kids = make([]*ast.Node, len(n.Kids))
		for i, k := range n.Kids {
			out.Kids[i] = ToAdvanced(k)
		}
	}

	if out.Kind != ast.KindOr || len(out.Kids) != 2 {
		return out
	}

	if xor, ok := matchXor(out.Kids[0], out.Kids[1]); ok {
		return xor
	}
	if imp, ok := matchImp(out.Kids[0], out.Kids[1]); ok {
		return imp
	}
	return out
}

// matchXor recognises (a & !b) | (!a & b): two two-operand Ands of literals
// over the same variable pair with opposite polarities per variable.
func matchXor(left, right *ast.Node) (*ast.Node, bool) {
	lp, ok := literalPair(left)
	if !ok {
		return nil, false
	}
	rp, ok := literalPair(right)
	if !ok {
		return nil, false
	}

	if lp.aName != rp.aName || lp.bName != rp.bName {
		return nil, false
	}
	if lp.aNeg == rp.aNeg || lp.bNeg == rp.bNeg {
		return nil, false
	}
	// opposite polarity per variable, and opposite within each And:
	// (a & !b) with (!a & b) is XOR, (a & b) with (!a & !b) is not
	if lp.aNeg == lp.bNeg {
		return nil, false
	}

	return ast.Xor(ast.Var(lp.aName), ast.Var(lp.bName)), true
}

// matchImp recognises !a | b in either operand order, with a and b distinct
// variables.
func matchImp(left, right *ast.Node) (*ast.Node, bool) {
	for _, try := range [2][2]*ast.Node{{left, right}, {right, left}} {
		neg, pos := try[0], try[1]
		if neg.Kind != ast.KindNot || neg.Kids[0].Kind != ast.KindVar {
			continue
		}
		if pos.Kind != ast.KindVar {
			continue
		}
		a, b := neg.Kids[0], pos
		if a.IsConst() || b.IsConst() || a.Name == b.Name {
			continue
		}
		return ast.Imp(ast.Var(a.Name), ast.Var(b.Name)), true
	}
	return nil, false
}

// pair is the polarity signature of a two-literal And, keyed with the
// lexicographically smaller variable first
type pair struct {
	aName, bName string
	aNeg, bNeg   bool
}

// literalPair decomposes a two-operand And of literals over two distinct
// non-constant variables
func literalPair(n *ast.Node) (pair, bool) {
	if n.Kind != ast.KindAnd || len(n.Kids) != 2 {
		return pair{}, false
	}
	xName, xNeg, ok := literal(n.Kids[0])
	if !ok {
		return pair{}, false
	}
	yName, yNeg, ok := literal(n.Kids[1])
	if !ok {
		return pair{}, false
	}
	if xName == yName {
		return pair{}, false
	}
	if xName < yName {
		return pair{aName: xName, aNeg: xNeg, bName: yName, bNeg: yNeg}, true
	}
	return pair{aName: yName, aNeg: yNeg, bName: xName, bNeg: xNeg}, true
}

func literal(n *ast.Node) (name string, negated bool, ok bool) {
	if n.Kind == ast.KindVar && !n.IsConst() {
		return n.Name, false, true
	}
	if n.Kind == ast.KindNot && n.Kids[0].Kind == ast.KindVar && !n.Kids[0].IsConst() {
		return n.Kids[0].Name, true, true
	}
	return "", false, false
}
