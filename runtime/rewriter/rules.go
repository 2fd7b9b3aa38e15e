package rewriter

import (
	"github.com/logic-lang/logicopt/core/ast"
	"github.com/logic-lang/logicopt/core/invariant"
)

// applyNaryRules reduces a flat And/Or node whose children are already
// rewritten. Rules are attempted in a fixed order; the first that fires
// replaces the node and the attempt sequence restarts, so rule interactions
// are deterministic.
func (rw *Rewriter) applyNaryRules(n *ast.Node) (*ast.Node, bool) {
	changed := false
	for {
		rw.step()
		if n.Kind != ast.KindAnd && n.Kind != ast.KindOr {
			return n, changed
		}
		if out, ok := rw.flatten(n); ok {
			n, changed = out, true
			continue
		}
		if out, ok := rw.foldConstants(n); ok {
			n, changed = out, true
			continue
		}
		if out, ok := rw.dedupe(n); ok {
			n, changed = out, true
			continue
		}
		if out, ok := rw.complementCollapse(n); ok {
			n, changed = out, true
			continue
		}
		if out, ok := rw.absorb(n); ok {
			n, changed = out, true
			continue
		}
		if out, ok := rw.extendedAbsorb(n); ok {
			n, changed = out, true
			continue
		}
		if out, ok := rw.consensus(n); ok {
			n, changed = out, true
			continue
		}
		if out, ok := rw.reorder(n); ok {
			n, changed = out, true
			continue
		}
		if out, ok := rw.factor(n); ok {
			n, changed = out, true
			continue
		}
		return n, changed
	}
}

// rebuild assembles an operand list back into a node, collapsing the
// single-operand case
func rebuild(kind ast.Kind, kids []*ast.Node, forceParens bool) *ast.Node {
	invariant.Precondition(len(kids) >= 1, "rebuild needs at least one operand")
	if len(kids) == 1 {
		return kids[0]
	}
	return &ast.Node{Kind: kind, Kids: kids, ForceParens: forceParens}
}

// complementKey returns the operand-identity key of the complement of n
func complementKey(n *ast.Node) string {
	if n.Kind == ast.KindNot {
		return ast.Key(n.Kids[0])
	}
	return "!" + ast.Key(n)
}

// termSet computes the operand-identity set of a term as seen from a parent
// of the given kind: an And term under an Or contributes its operand keys,
// anything else is a singleton. The same-kind case cannot occur on a flat
// node.
func termSet(t *ast.Node, parent ast.Kind) map[string]struct{} {
	inner := ast.KindAnd
	if parent == ast.KindAnd {
		inner = ast.KindOr
	}
	set := make(map[string]struct{})
	if t.Kind == inner {
		for _, op := range t.Kids {
			set[ast.Key(op)] = struct{}{}
		}
		return set
	}
	set[ast.Key(t)] = struct{}{}
	return set
}

func isSubset(small, big map[string]struct{}) bool {
	for k := range small {
		if _, ok := big[k]; !ok {
			return false
		}
	}
	return true
}

// flatten absorbs same-kind children into the operand list. The parser
// already emits the flat form; this reinstates it after child rewrites
// collapse a subtree into the parent's own kind.
func (rw *Rewriter) flatten(n *ast.Node) (*ast.Node, bool) {
	nested := false
	for _, k := range n.Kids {
		if k.Kind == n.Kind {
			nested = true
			break
		}
	}
	if !nested {
		return nil, false
	}

	rw.count(RuleFlattening)
	flat := make([]*ast.Node, 0, len(n.Kids)+2)
	for _, k := range n.Kids {
		if k.Kind == n.Kind {
			flat = append(flat, k.Kids...)
		} else {
			flat = append(flat, k)
		}
	}
	return &ast.Node{Kind: n.Kind, Kids: flat, ForceParens: n.ForceParens}, true
}

// foldConstants removes identity operands and collapses on the annihilator:
// x & 0 -> 0, x & 1 -> x, x | 1 -> 1, x | 0 -> x.
func (rw *Rewriter) foldConstants(n *ast.Node) (*ast.Node, bool) {
	annihilates := (*ast.Node).IsZero
	identity := (*ast.Node).IsOne
	makeAnnihilator, makeIdentity := ast.Zero, ast.One
	if n.Kind == ast.KindOr {
		annihilates, identity = identity, annihilates
		makeAnnihilator, makeIdentity = makeIdentity, makeAnnihilator
	}

	for _, k := range n.Kids {
		if annihilates(k) {
			rw.count(RuleConstantFolding)
			return makeAnnihilator(), true
		}
	}

	kept := n.Kids[:0:0]
	for _, k := range n.Kids {
		if !identity(k) {
			kept = append(kept, k)
		}
	}
	if len(kept) == len(n.Kids) {
		return nil, false
	}

	rw.count(RuleConstantFolding)
	if len(kept) == 0 {
		return makeIdentity(), true
	}
	return rebuild(n.Kind, kept, n.ForceParens), true
}

// dedupe removes structurally equal duplicate operands: the n-ary face of
// idempotence.
func (rw *Rewriter) dedupe(n *ast.Node) (*ast.Node, bool) {
	seen := make(map[string]struct{}, len(n.Kids))
	kept := n.Kids[:0:0]
	for _, k := range n.Kids {
		key := ast.Key(k)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, k)
	}
	if len(kept) == len(n.Kids) {
		return nil, false
	}

	if len(kept) == 1 {
		rw.count(RuleIdempotence)
	} else {
		rw.count(RuleDuplicateElimination)
	}
	return rebuild(n.Kind, kept, n.ForceParens), true
}

// complementCollapse fires when the flat operand set contains an operand and
// its complement: x & !x -> 0, x | !x -> 1.
func (rw *Rewriter) complementCollapse(n *ast.Node) (*ast.Node, bool) {
	keys := make(map[string]struct{}, len(n.Kids))
	for _, k := range n.Kids {
		keys[ast.Key(k)] = struct{}{}
	}
	for _, k := range n.Kids {
		if _, ok := keys[complementKey(k)]; ok {
			rw.count(RuleComplement)
			if n.Kind == ast.KindAnd {
				return ast.Zero(), true
			}
			return ast.One(), true
		}
	}
	return nil, false
}

// absorb removes any term whose operand set strictly contains another
// term's: x | (x & y) -> x, x & (x | y) -> x.
func (rw *Rewriter) absorb(n *ast.Node) (*ast.Node, bool) {
	sets := make([]map[string]struct{}, len(n.Kids))
	for i, k := range n.Kids {
		sets[i] = termSet(k, n.Kind)
	}

	removed := make([]bool, len(n.Kids))
	any := false
	for j := range n.Kids {
		for i := range n.Kids {
			if i == j || removed[i] {
				continue
			}
			if len(sets[i]) < len(sets[j]) && isSubset(sets[i], sets[j]) {
				removed[j] = true
				any = true
				break
			}
		}
	}
	if !any {
		return nil, false
	}

	rw.count(RuleAbsorption)
	kept := n.Kids[:0:0]
	for i, k := range n.Kids {
		if !removed[i] {
			kept = append(kept, k)
		}
	}
	return rebuild(n.Kind, kept, n.ForceParens), true
}

// extendedAbsorb strips the complement of a sibling out of a compound term:
// x | (!x & y) -> x | y, x & (!x | y) -> x & y.
func (rw *Rewriter) extendedAbsorb(n *ast.Node) (*ast.Node, bool) {
	inner := ast.KindAnd
	if n.Kind == ast.KindAnd {
		inner = ast.KindOr
	}

	for xi, x := range n.Kids {
		ck := complementKey(x)
		for ti, t := range n.Kids {
			if ti == xi || t.Kind != inner {
				continue
			}
			kept := t.Kids[:0:0]
			for _, op := range t.Kids {
				if ast.Key(op) != ck {
					kept = append(kept, op)
				}
			}
			if len(kept) == len(t.Kids) {
				continue
			}
			// an all-complement term would have collapsed earlier via
			// dedupe and the complement rule
			invariant.Invariant(len(kept) >= 1, "extended absorption emptied a term")

			rw.count(RuleExtendedAbsorption)
			kids := make([]*ast.Node, len(n.Kids))
			copy(kids, n.Kids)
			kids[ti] = rebuild(inner, kept, t.ForceParens)
			return &ast.Node{Kind: n.Kind, Kids: kids, ForceParens: n.ForceParens}, true
		}
	}
	return nil, false
}
