package findnext

import (
	"sort"

	"github.com/clueroute/crs/clue"
	"github.com/clueroute/crs/pbtree"
	"github.com/clueroute/crs/twohop"
)

// PBFindNext answers FindNext by composing, pivot by pivot, a window over
// L(s,o)+L(v,o) (triangle composition, §4.6) and traversing that pivot's
// PB-Tree, falling back to the 2-Hop oracle for the true distance of every
// surviving candidate.
type PBFindNext struct {
	idx   *twohop.Index
	trees map[int64]*pbtree.Tree // keyed by pivot vertex id
}

// NewPBFindNext wraps a built 2-Hop Index and one PB-Tree per pivot.
func NewPBFindNext(idx *twohop.Index, trees map[int64]*pbtree.Tree) *PBFindNext {
	return &PBFindNext{idx: idx, trees: trees}
}

// FindNext implements Finder.
func (f *PBFindNext) FindNext(source int64, c clue.Clue, theta, ub float64, forbidden map[int64]struct{}) Candidate {
	budget := ub - theta
	if budget <= 0 {
		return Candidate{}
	}

	labels := f.idx.Labels(source)
	sort.Slice(labels, func(i, j int) bool {
		return abs(labels[i].Dist-c.Distance) < abs(labels[j].Dist-c.Distance)
	})

	var best Candidate
	var trace []Step

	for _, l := range labels {
		tree, ok := f.trees[l.Pivot]
		if !ok {
			continue
		}

		sumLo := maxFloat(c.DMin(), c.Distance-budget)
		sumHi := minFloat(c.DMax(), c.Distance+budget)
		if sumLo > sumHi {
			continue
		}
		vLo := sumLo - l.Dist
		vHi := sumHi - l.Dist

		for _, cand := range tree.WindowScan(vLo, vHi, c.Keyword, forbidden) {
			dG := f.idx.Query(source, cand.Vertex)
			// The window bounds L(s,o)+L(v,o), which can exceed d_G(s,v);
			// keep only candidates whose true distance is in the window.
			if !c.IsWithinConfidenceInterval(dG) {
				continue
			}
			m := c.MatchingDistance(dG)
			trace = append(trace, Step{Vertex: cand.Vertex, NetworkDist: dG, MatchingDist: m})
			if theta+m >= ub {
				continue
			}
			next := Candidate{Found: true, Vertex: cand.Vertex, NetworkDist: dG, MatchingDist: m}
			if !best.Found || better(next, best) {
				best = next
			}
		}
	}
	best.Trace = trace

	return best
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
