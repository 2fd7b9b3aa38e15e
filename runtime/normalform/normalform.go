// Package normalform produces conjunctive and disjunctive normal forms by
// controlled distribution over a copy of the tree.
//
// Xor and Imp are first expanded into their base definitions and De Morgan
// is re-applied so negation sits only on variables, then And distributes
// over Or (DNF) or Or over And (CNF) until no candidate remains. The result
// is not simplified further; blow-up is accepted.
package normalform

import (
	"github.com/logic-lang/logicopt/core/ast"
	"github.com/logic-lang/logicopt/core/invariant"
)

// ToCNF returns the conjunctive normal form of n as a fresh tree
func ToCNF(n *ast.Node) *ast.Node {
	invariant.NotNil(n, "node")
	out := distribute(pushNegations(expand(n.Clone())), ast.KindOr)
	invariant.Postcondition(ast.WellFormed(out), "cnf conversion must preserve well-formedness")
	return out
}

// ToDNF returns the disjunctive normal form of n as a fresh tree
func ToDNF(n *ast.Node) *ast.Node {
	invariant.NotNil(n, "node")
	out := distribute(pushNegations(expand(n.Clone())), ast.KindAnd)
	invariant.Postcondition(ast.WellFormed(out), "dnf conversion must preserve well-formedness")
	return out
}

// expand rewrites Xor and Imp into And/Or/Not form, bottom-up
func expand(n *ast.Node) *ast.Node {
	for i, k := range n.Kids {
		n.Kids[i] = expand(k)
	}
	switch n.Kind {
	case ast.KindImp:
		return ast.Or(ast.Not(n.Kids[0]), n.Kids[1])
	case ast.KindXor:
		l, r := n.Kids[0], n.Kids[1]
		return ast.Or(
			ast.And(l, ast.Not(r.Clone())),
			ast.And(ast.Not(l.Clone()), r),
		)
	default:
		return n
	}
}

// pushNegations drives every Not down to a variable via De Morgan and
// double-negation elimination
func pushNegations(n *ast.Node) *ast.Node {
	switch n.Kind {
	case ast.KindVar:
		return n

	case ast.KindNot:
		kid := n.Kids[0]
		switch kid.Kind {
		case ast.KindVar:
			return n
		case ast.KindNot:
			return pushNegations(kid.Kids[0])
		default:
			opposite := ast.KindOr
			if kid.Kind == ast.KindOr {
				opposite = ast.KindAnd
			}
			negated := make([]*ast.Node, len(kid.Kids))
			for i, op := range kid.Kids {
				negated[i] = pushNegations(ast.Not(op))
			}
			return flatNary(opposite, negated)
		}

	default:
		kids := make([]*ast.Node, len(n.Kids))
		for i, k := range n.Kids {
			kids[i] = pushNegations(k)
		}
		return flatNary(n.Kind, kids)
	}
}

// opposite maps And to Or and back
func opposite(k ast.Kind) ast.Kind {
	if k == ast.KindAnd {
		return ast.KindOr
	}
	return ast.KindAnd
}

// distribute pushes the trigger operator through its opposite until no
// trigger node has an opposite-kind child. DNF uses trigger And (And
// distributes over Or); CNF uses trigger Or.
func distribute(n *ast.Node, trigger ast.Kind) *ast.Node {
	if n.Kind == ast.KindVar || n.Kind == ast.KindNot {
		return n
	}

	kids := make([]*ast.Node, len(n.Kids))
	for i, k := range n.Kids {
		kids[i] = distribute(k, trigger)
	}
	node := flatNary(n.Kind, kids)
	if node.Kind != trigger {
		return node
	}

	// find an operand of the opposite kind; none means this subtree is
	// already in normal form
	pivotKind := opposite(trigger)
	pivot := -1
	for i, k := range node.Kids {
		if k.Kind == pivotKind {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return node
	}

	// build one trigger term per pivot operand, cloning the shared rest
	terms := make([]*ast.Node, len(node.Kids[pivot].Kids))
	for i, choice := range node.Kids[pivot].Kids {
		ops := make([]*ast.Node, 0, len(node.Kids))
		for j, k := range node.Kids {
			if j == pivot {
				ops = append(ops, choice.Clone())
			} else {
				ops = append(ops, k.Clone())
			}
		}
		terms[i] = distribute(flatNary(trigger, ops), trigger)
	}
	return flatNary(pivotKind, terms)
}

// flatNary builds a flat node, collapsing the single-operand case. Fresh
// structure carries no printer hints; cloned leaves and untouched subtrees
// keep theirs.
func flatNary(kind ast.Kind, kids []*ast.Node) *ast.Node {
	invariant.Precondition(len(kids) >= 1, "flatNary needs at least one operand")
	flat := make([]*ast.Node, 0, len(kids))
	for _, k := range kids {
		if k.Kind == kind {
			flat = append(flat, k.Kids...)
		} else {
			flat = append(flat, k)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &ast.Node{Kind: kind, Kids: flat}
}
