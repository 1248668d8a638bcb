// Package pbtree implements the PB-Tree (C6): one balanced binary tree per
// pivot, built directly over twohop.Index.PivotReverse(o) (already sorted
// by distance) via a median-split array-to-BST build rather than repeated
// insertion — O(|PR(o)|) instead of O(|PR(o)| log |PR(o)|).
//
// Each node carries a subtree summary (minDist, maxDist, keywordUnion),
// the same augmentation scheme as abtree, grounded on the pack's augmented
// treap reference (other_examples CIDR treap's bottom-up recalc()).
package pbtree

import "github.com/clueroute/crs/twohop"

type node struct {
	entry       twohop.PREntry
	left, right *node

	minDist      float64
	maxDist      float64
	keywordUnion map[string]struct{}
}

// Tree is a PB-Tree for a single pivot.
type Tree struct {
	Pivot int64
	root  *node
	size  int
}

// Size returns the number of PR(pivot) entries in the tree.
func (t *Tree) Size() int { return t.size }
