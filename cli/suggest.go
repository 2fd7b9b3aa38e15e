package cli

import (
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest returns the closest candidate to a mistyped name, or "" when
// nothing ranks close enough to be a plausible intention.
func Suggest(name string, candidates []string) string {
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return best.Target
}
