// Package twohop builds and queries the 2-Hop Label Index (C3) and its
// Pivot-Reverse inversion (C4).
//
// Build algorithm (§4.3): process vertices as pivots in highest-degree-first
// order (ties by ascending id); for each pivot, run a pruned Dijkstra that
// skips adding a label to v (and skips expanding v further) whenever the
// oracle already explains d(o,v) using labels built so far. This is the
// teacher's heap-based Dijkstra loop (nodeItem/nodePQ lazy-decrease-key,
// see network.ShortestPathTree) adapted with an early-termination check at
// pop time instead of running to exhaustion.
//
// Query (§4.3): hash-join over the smaller of the two label sets, returning
// min(L(u,o)+L(v,o)) over common pivots o, or +Inf if none.
package twohop

import "errors"

// ErrNodeNotFound indicates a query referenced a vertex with no labels,
// i.e. one never seen by Build (disconnected from every processed pivot,
// or simply absent from the network at build time).
var ErrNodeNotFound = errors.New("twohop: node not found in label index")

// LabelEntry is one (pivot, distance) pair in a vertex's label set L(v).
// Sort key: Dist ascending, then Pivot ascending.
type LabelEntry struct {
	Pivot int64
	Dist  float64
}

// PREntry is one (vertex, distance, keywords) record in a pivot's reverse
// list PR(o). Same sort key as LabelEntry: Dist ascending, then Vertex
// ascending.
type PREntry struct {
	Vertex   int64
	Dist     float64
	Keywords map[string]struct{}
}

// Index is the built 2-Hop Label Index plus its Pivot-Reverse inversion.
// Both are immutable after Build; safe for concurrent read-only queries.
type Index struct {
	// labels[v] is L(v), sorted by Dist ascending.
	labels map[int64][]LabelEntry

	// byPivot[v] is a pivot->dist lookup for L(v), used by Query's hash-join.
	byPivot map[int64]map[int64]float64

	// pr[o] is PR(o), sorted by Dist ascending.
	pr map[int64][]PREntry

	// pivotOrder is the build-time pivot processing order (highest degree
	// first, ties by ascending id) — exposed through Pivots so callers can
	// build one PB-Tree per pivot in a stable, documented order.
	pivotOrder []int64
}

// Labels returns L(v), sorted by Dist ascending. The returned slice is a
// fresh copy; callers may reorder or modify it without affecting the index.
func (idx *Index) Labels(v int64) []LabelEntry {
	src := idx.labels[v]
	out := make([]LabelEntry, len(src))
	copy(out, src)

	return out
}

// PivotReverse returns PR(o), sorted by Dist ascending. The returned slice
// is a fresh copy.
func (idx *Index) PivotReverse(o int64) []PREntry {
	src := idx.pr[o]
	out := make([]PREntry, len(src))
	copy(out, src)

	return out
}

// Pivots returns every vertex that was used as a pivot during Build, in
// build order (highest-degree-first, ties by ascending id).
func (idx *Index) Pivots() []int64 {
	out := make([]int64, len(idx.pivotOrder))
	copy(out, idx.pivotOrder)

	return out
}
