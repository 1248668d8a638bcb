// Package abtree implements the AB-Tree (C5): a per-source, self-balancing
// AVL tree keyed by network distance, augmented at every internal node
// with a subtree keyword union and a [minDist,maxDist] summary.
//
// The augmentation scheme is grounded on the pack's augmented-treap
// reference (an IP routing treap carrying a per-node "maxUpper" subtree
// bound, recomputed bottom-up on every structural change) translated from
// a generic treap into an explicit AVL rebalanced by height, in the
// teacher's struct-and-method idiom rather than a parameterized treap.
//
// A Tree is built once per source vertex (Build) and is read-only
// thereafter; Predecessor/Successor/RangeScan never mutate it.
package abtree

// entry is one (distance, vertex, keywords) record — the AB-Tree's key is
// (dist, vertex) composite-ordered, so ties at equal distance remain
// distinct nodes rather than colliding.
type entry struct {
	dist     float64
	vertex   int64
	keywords map[string]struct{}
}

func less(a, b entry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}

	return a.vertex < b.vertex
}

// node is one AVL node, augmented with a subtree summary: minDist/maxDist
// bound every entry.dist in the subtree, keywordUnion is the union of every
// entry.keywords in the subtree (including this node's own).
type node struct {
	entry
	left, right *node
	height      int

	minDist      float64
	maxDist      float64
	keywordUnion map[string]struct{}
}

func heightOf(n *node) int {
	if n == nil {
		return 0
	}

	return n.height
}

func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}

	return heightOf(n.left) - heightOf(n.right)
}

// recalc refreshes n's height and subtree summary from its children plus
// its own entry. Called bottom-up after every structural change (insert,
// rotation), mirroring the treap's recalc() pattern.
func recalc(n *node) {
	n.height = 1 + maxInt(heightOf(n.left), heightOf(n.right))

	n.minDist, n.maxDist = n.dist, n.dist
	if n.left != nil {
		n.minDist = minFloat(n.minDist, n.left.minDist)
		n.maxDist = maxFloat(n.maxDist, n.left.maxDist)
	}
	if n.right != nil {
		n.minDist = minFloat(n.minDist, n.right.minDist)
		n.maxDist = maxFloat(n.maxDist, n.right.maxDist)
	}

	union := make(map[string]struct{}, len(n.keywords))
	for kw := range n.keywords {
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

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
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

// Tree is an AB-Tree rooted for a single source vertex.
type Tree struct {
	Source int64
	root   *node
	size   int
}

// Size returns the number of entries (reachable vertices) in the tree.
func (t *Tree) Size() int { return t.size }
