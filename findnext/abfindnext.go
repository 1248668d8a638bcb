package findnext

import (
	"github.com/clueroute/crs/abtree"
	"github.com/clueroute/crs/clue"
)

// ABFindNext answers FindNext over a set of pre-built, per-source AB-Trees
// (§4.5). It is the simpler of the two realizations: the tree is already
// keyed by true network distance from source, so no triangle composition
// or pivot loop is needed.
type ABFindNext struct {
	trees map[int64]*abtree.Tree
}

// NewABFindNext wraps one AB-Tree per eligible source vertex. trees is
// keyed by source vertex id.
func NewABFindNext(trees map[int64]*abtree.Tree) *ABFindNext {
	return &ABFindNext{trees: trees}
}

// FindNext implements Finder.
func (f *ABFindNext) FindNext(source int64, c clue.Clue, theta, ub float64, forbidden map[int64]struct{}) Candidate {
	tree, ok := f.trees[source]
	if !ok {
		return Candidate{}
	}

	budget := ub - theta
	if budget <= 0 {
		return Candidate{}
	}

	lo := maxFloat(c.DMin(), c.Distance-budget)
	hi := minFloat(c.DMax(), c.Distance+budget)
	if lo > hi {
		return Candidate{}
	}

	candidates := tree.RangeScan(lo, hi, c.Keyword, forbidden)

	var best Candidate
	trace := make([]Step, 0, len(candidates))
	for _, r := range candidates {
		m := c.MatchingDistance(r.Dist)
		cand := Candidate{Found: true, Vertex: r.Vertex, NetworkDist: r.Dist, MatchingDist: m}
		trace = append(trace, Step{Vertex: r.Vertex, NetworkDist: r.Dist, MatchingDist: m})
		if theta+m >= ub {
			continue
		}
		if !best.Found || better(cand, best) {
			best = cand
		}
	}
	best.Trace = trace

	return best
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
