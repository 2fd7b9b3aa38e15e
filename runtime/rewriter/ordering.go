package rewriter

import (
	"sort"

	"github.com/logic-lang/logicopt/core/ast"
)

// Canonical operand ordering is the smart commutativity that lets
// factorisation notice common factors: within a flat And/Or, simple literals
// come before compound subtrees, literals order by variable name with the
// positive form before the negated one, and compounds tiebreak on their
// structural key. The comparison is a strict weak order with a
// printable-stable key, which keeps the fixed point from oscillating.

// operandLess is the total order over operands of a flat node
func operandLess(a, b *ast.Node) bool {
	aLit, bLit := a.IsLiteral(), b.IsLiteral()
	if aLit != bLit {
		return aLit
	}
	if aLit {
		an, aneg := literalParts(a)
		bn, bneg := literalParts(b)
		if an != bn {
			return an < bn
		}
		return !aneg && bneg
	}
	return ast.Key(a) < ast.Key(b)
}

func literalParts(n *ast.Node) (name string, negated bool) {
	if n.Kind == ast.KindNot {
		return n.Kids[0].Name, true
	}
	return n.Name, false
}

// reorder sorts the operand list into canonical order. Sorting is
// idempotent and memoised by construction: a second attempt on the same
// node observes the order unchanged and does not fire.
func (rw *Rewriter) reorder(n *ast.Node) (*ast.Node, bool) {
	sorted := true
	for i := 1; i < len(n.Kids); i++ {
		if operandLess(n.Kids[i], n.Kids[i-1]) {
			sorted = false
			break
		}
	}
	if sorted {
		return nil, false
	}

	rw.count(RuleCanonicalOrdering)
	kids := make([]*ast.Node, len(n.Kids))
	copy(kids, n.Kids)
	sort.SliceStable(kids, func(i, j int) bool { return operandLess(kids[i], kids[j]) })
	return &ast.Node{Kind: n.Kind, Kids: kids, ForceParens: n.ForceParens}, true
}
