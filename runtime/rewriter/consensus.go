package rewriter

import (
	"github.com/logic-lang/logicopt/core/ast"
)

// consensus removes a redundant consensus term from a flat Or: when two
// terms have the shape x & α and !x & β, any third term equal to α & β is
// implied by the first two and is dropped.
//
// Contradiction guard: a consensus set containing both a literal and its
// complement is degenerate and is rejected outright, never used to remove
// anything. The symmetric form for And is deliberately omitted.
func (rw *Rewriter) consensus(n *ast.Node) (*ast.Node, bool) {
	if n.Kind != ast.KindOr || len(n.Kids) < 3 {
		return nil, false
	}

	sets := make([]map[string]struct{}, len(n.Kids))
	for i, t := range n.Kids {
		if t.Kind == ast.KindAnd {
			sets[i] = termSet(t, ast.KindOr)
		}
	}

	for i, ti := range n.Kids {
		if sets[i] == nil {
			continue
		}
		for j := range n.Kids {
			if i == j || sets[j] == nil {
				continue
			}
			// find a pivot literal x in ti whose complement sits in tj
			for _, op := range ti.Kids {
				if !op.IsLiteral() {
					continue
				}
				pivot := ast.Key(op)
				if _, ok := sets[j][complementKey(op)]; !ok {
					continue
				}

				cons, ok := consensusSet(sets[i], sets[j], pivot, complementKey(op))
				if !ok {
					continue
				}

				for k := range n.Kids {
					if k == i || k == j || sets[k] == nil {
						continue
					}
					if len(sets[k]) == len(cons) && isSubset(sets[k], cons) {
						rw.count(RuleConsensus)
						kept := make([]*ast.Node, 0, len(n.Kids)-1)
						for idx, kid := range n.Kids {
							if idx != k {
								kept = append(kept, kid)
							}
						}
						return rebuild(ast.KindOr, kept, n.ForceParens), true
					}
				}
			}
		}
	}
	return nil, false
}

// consensusSet forms α ∪ β from the two term sets with the pivot literals
// removed. It reports !ok when the union would contain a literal and its
// complement.
func consensusSet(si, sj map[string]struct{}, pivot, pivotComp string) (map[string]struct{}, bool) {
	cons := make(map[string]struct{}, len(si)+len(sj))
	for k := range si {
		if k != pivot {
			cons[k] = struct{}{}
		}
	}
	for k := range sj {
		if k != pivotComp {
			cons[k] = struct{}{}
		}
	}
	for k := range cons {
		comp := "!" + k
		if len(k) > 0 && k[0] == '!' {
			comp = k[1:]
		}
		if _, clash := cons[comp]; clash {
			return nil, false
		}
	}
	return cons, true
}
