package pbtree

import "github.com/clueroute/crs/twohop"

// Build constructs a PB-Tree for pivot from entries, which must already be
// sorted by Dist ascending (the shape twohop.Index.PivotReverse returns).
//
// Complexity: O(n) where n = len(entries); the recursive median split
// visits each entry exactly once.
func Build(pivot int64, entries []twohop.PREntry) *Tree {
	t := &Tree{Pivot: pivot, size: len(entries)}
	t.root = buildRange(entries, 0, len(entries))

	return t
}

// buildRange builds a balanced subtree over entries[lo:hi] by picking the
// median index as the subtree root and recursing on both halves.
func buildRange(entries []twohop.PREntry, lo, hi int) *node {
	if lo >= hi {
		return nil
	}
	mid := lo + (hi-lo)/2

	n := &node{entry: entries[mid]}
	n.left = buildRange(entries, lo, mid)
	n.right = buildRange(entries, mid+1, hi)
	recalc(n)

	return n
}

func recalc(n *node) {
	n.minDist, n.maxDist = n.entry.Dist, n.entry.Dist
	if n.left != nil {
		n.minDist = minFloat(n.minDist, n.left.minDist)
		n.maxDist = maxFloat(n.maxDist, n.left.maxDist)
	}
	if n.right != nil {
		n.minDist = minFloat(n.minDist, n.right.minDist)
		n.maxDist = maxFloat(n.maxDist, n.right.maxDist)
	}

	union := make(map[string]struct{}, len(n.entry.Keywords))
	for kw := range n.entry.Keywords {
		union[kw] = struct{}{}
	}
	if n.left != nil {
		for kw := range n.left.keywordUnion {
			union[kw] = struct{}{}
		}
	}
	if n.right != nil {
		for kw := range n.right.keywordUnion {
			union[kw] = struct{}{}
		}
	}
	n.keywordUnion = union
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
