// Package rewriter applies the algebraic rule battery to an expression tree
// until a fixed point is reached.
//
// The driver runs bottom-up passes over the tree. Within a pass each node is
// rewritten after its children; the first rule that fires replaces the node
// and rule application restarts for that subtree. A pass that changes
// nothing is the fixed point. Every rule except flattening, canonical
// ordering and De Morgan strictly decreases the (node count, literal count,
// depth) measure. Flattening and ordering are idempotent; De Morgan can add
// nodes (!(a & b) becomes !a | !b) and only moves negations towards the
// leaves. The pass limit exists to contain bugs, not to prove termination.
package rewriter

import (
	"time"

	"github.com/logic-lang/logicopt/core/ast"
	oerrors "github.com/logic-lang/logicopt/core/errors"
	"github.com/logic-lang/logicopt/core/invariant"
)

// MaxIterations bounds the number of full rewrite passes. Exceeding it is a
// fatal engine error, never a recoverable state.
const MaxIterations = 50

// maxSteps is the defence-in-depth valve on individual rule attempts
const maxSteps = 1_000_000

// Rule names as they appear in the per-rule application counters
const (
	RuleConstantFolding      = "constant_folding"
	RuleIdempotence          = "idempotence"
	RuleDuplicateElimination = "duplicate_elimination"
	RuleComplement           = "complement"
	RuleDoubleNegation       = "double_negation"
	RuleDeMorgan             = "de_morgan"
	RuleAbsorption           = "absorption"
	RuleExtendedAbsorption   = "extended_absorption"
	RuleFlattening           = "flattening"
	RuleCanonicalOrdering    = "canonical_ordering"
	RuleFactorization        = "factorization"
	RuleReverseFactorization = "reverse_factorization"
	RuleConsensus            = "consensus"
)

// Rewriter drives the rule set to a fixed point and counts applications
// per rule. A Rewriter is single-use state for one expression; callers
// wanting concurrency create one per call.
type Rewriter struct {
	counts   map[string]int
	deadline time.Time // zero means unbounded
	steps    int
}

// New creates a rewriter with no wall-clock bound
func New() *Rewriter {
	return &Rewriter{counts: make(map[string]int)}
}

// NewWithDeadline creates a rewriter that fails with TIMEOUT when a pass
// starts after the deadline
func NewWithDeadline(deadline time.Time) *Rewriter {
	return &Rewriter{counts: make(map[string]int), deadline: deadline}
}

// Counts returns the per-rule application counters
func (rw *Rewriter) Counts() map[string]int {
	return rw.counts
}

// Rewrite applies the rule set until no rule fires. It returns the rewritten
// tree and the number of passes taken, including the final no-change pass.
func (rw *Rewriter) Rewrite(n *ast.Node) (*ast.Node, int, error) {
	invariant.Precondition(ast.WellFormed(n), "rewriter input must be well-formed")

	cur := n
	for iter := 1; ; iter++ {
		if iter > MaxIterations {
			return nil, iter - 1, oerrors.LimitExceeded(oerrors.ErrIterationLimitExceeded,
				"rewrite iteration limit exceeded", iter, MaxIterations)
		}
		if !rw.deadline.IsZero() && time.Now().After(rw.deadline) {
			return nil, iter - 1, oerrors.New(oerrors.ErrTimeout,
				"wall-clock budget exhausted during rewriting")
		}

		next, changed := rw.pass(cur)
		invariant.Invariant(ast.WellFormed(next), "rewrite pass must preserve well-formedness")
		cur = next
		if !changed {
			return cur, iter, nil
		}
	}
}

// pass rewrites one full bottom-up sweep
func (rw *Rewriter) pass(n *ast.Node) (*ast.Node, bool) {
	switch n.Kind {
	case ast.KindVar:
		return n, false

	case ast.KindNot:
		kid, kidChanged := rw.pass(n.Kids[0])
		node := n
		if kidChanged {
			node = ast.Not(kid)
		}
		out, fired := rw.applyNotRules(node)
		return out, kidChanged || fired

	case ast.KindAnd, ast.KindOr:
		kidsChanged := false
		kids := make([]*ast.Node, len(n.Kids))
		for i, k := range n.Kids {
			rewritten, c := rw.pass(k)
			kids[i] = rewritten
			kidsChanged = kidsChanged || c
		}
		node := n
		if kidsChanged {
			node = &ast.Node{Kind: n.Kind, Kids: kids, ForceParens: n.ForceParens}
		}
		out, fired := rw.applyNaryRules(node)
		return out, kidsChanged || fired

	default:
		// Xor/Imp never reach the rewriter through the façade; recurse
		// defensively so a direct caller still gets its operands reduced
		kidsChanged := false
		kids := make([]*ast.Node, len(n.Kids))
		for i, k := range n.Kids {
			rewritten, c := rw.pass(k)
			kids[i] = rewritten
			kidsChanged = kidsChanged || c
		}
		if !kidsChanged {
			return n, false
		}
		return &ast.Node{Kind: n.Kind, Kids: kids, ForceParens: n.ForceParens}, true
	}
}

// applyNotRules reduces a Not node. The operand has already been rewritten.
func (rw *Rewriter) applyNotRules(n *ast.Node) (*ast.Node, bool) {
	rw.step()
	kid := n.Kids[0]

	switch {
	case kid.IsZero():
		rw.count(RuleConstantFolding)
		return ast.One(), true

	case kid.IsOne():
		rw.count(RuleConstantFolding)
		return ast.Zero(), true

	case kid.Kind == ast.KindNot:
		// !!x -> x; the grandchild is already fully rewritten
		rw.count(RuleDoubleNegation)
		return kid.Kids[0], true

	case kid.Kind == ast.KindAnd || kid.Kind == ast.KindOr:
		// De Morgan, applied eagerly so negations sit only on literals
		rw.count(RuleDeMorgan)
		opposite := ast.KindOr
		if kid.Kind == ast.KindOr {
			opposite = ast.KindAnd
		}
		negated := make([]*ast.Node, len(kid.Kids))
		for i, op := range kid.Kids {
			negated[i] = ast.Not(op)
		}
		pushed := &ast.Node{Kind: opposite, Kids: negated}
		// the fresh Nots may sit on compounds; push them the rest of
		// the way down and reduce the new node in place
		out, _ := rw.pass(pushed)
		return out, true
	}

	return n, false
}

// count records one application of the named rule
func (rw *Rewriter) count(rule string) {
	rw.counts[rule]++
}

// step burns one unit of the defence-in-depth budget
func (rw *Rewriter) step() {
	rw.steps++
	invariant.Invariant(rw.steps <= maxSteps, "rewrite step budget exhausted, rule set is oscillating")
}
