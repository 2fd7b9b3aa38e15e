package rewriter

import (
	"github.com/logic-lang/logicopt/core/ast"
	"github.com/logic-lang/logicopt/core/invariant"
)

// Factorisation extracts the largest common literal set out of a flat node
// whose terms are all of the opposite kind:
//
//	direct:  (a & b) | (a & c) | (a & d) -> a & (b | c | d)
//	reverse: (a | b) & (a | c)           -> a | (b & c)
//
// The constructed inner node is tagged ForceParens so the printer preserves
// the factorised reading. The rule does not fire when no literal is common
// to every term.
func (rw *Rewriter) factor(n *ast.Node) (*ast.Node, bool) {
	inner := ast.KindAnd
	if n.Kind == ast.KindAnd {
		inner = ast.KindOr
	}

	if len(n.Kids) < 2 {
		return nil, false
	}
	for _, t := range n.Kids {
		if t.Kind != inner {
			return nil, false
		}
	}

	// intersect the literal operands across every term
	common := literalKeys(n.Kids[0])
	for _, t := range n.Kids[1:] {
		keys := literalKeys(t)
		for k := range common {
			if _, ok := keys[k]; !ok {
				delete(common, k)
			}
		}
		if len(common) == 0 {
			return nil, false
		}
	}

	// residual operand lists with the common literals stripped; an empty
	// residual means one term is exactly the common set, which absorption
	// removes before this rule is attempted
	residuals := make([][]*ast.Node, len(n.Kids))
	for i, t := range n.Kids {
		rest := make([]*ast.Node, 0, len(t.Kids))
		for _, op := range t.Kids {
			if _, shared := common[ast.Key(op)]; !shared || !op.IsLiteral() {
				rest = append(rest, op)
			}
		}
		if len(rest) == 0 {
			return nil, false
		}
		residuals[i] = rest
	}

	if n.Kind == ast.KindOr {
		rw.count(RuleFactorization)
	} else {
		rw.count(RuleReverseFactorization)
	}

	// pull the factored literal nodes out of the first term so each
	// appears exactly once in the result
	factored := make([]*ast.Node, 0, len(common))
	for _, op := range n.Kids[0].Kids {
		if _, shared := common[ast.Key(op)]; shared && op.IsLiteral() {
			factored = append(factored, op)
		}
	}
	invariant.Invariant(len(factored) == len(common), "factored literal extraction lost operands")

	terms := make([]*ast.Node, len(residuals))
	for i, rest := range residuals {
		terms[i] = rebuild(inner, rest, false)
	}

	grouped := &ast.Node{Kind: n.Kind, Kids: terms}
	// the inner node keeps the outer kind and may itself reduce further
	reduced, _ := rw.applyNaryRules(grouped)
	if reduced.Kind == ast.KindAnd || reduced.Kind == ast.KindOr {
		reduced.ForceParens = true
	}

	return rebuild(inner, append(factored, reduced), false), true
}

// literalKeys collects the identity keys of the literal operands of a term
func literalKeys(t *ast.Node) map[string]struct{} {
	keys := make(map[string]struct{}, len(t.Kids))
	for _, op := range t.Kids {
		if op.IsLiteral() {
			keys[ast.Key(op)] = struct{}{}
		}
	}
	return keys
}
