package abtree

import "github.com/clueroute/crs/network"

// reachedVertex pairs a reachable vertex with its distance from the source
// being indexed, used only to recover Dijkstra's visitation order from the
// map network.ShortestPathTree returns.
type reachedVertex struct {
	vertex int64
	dist   float64
}

// Build runs a single Dijkstra from source over n (network.ShortestPathTree)
// and inserts every reachable vertex — in Dijkstra order, naturally
// ascending by distance — into a fresh AVL tree keyed by distance (§4.5
// Build).
//
// Complexity: O((V+E) log V) for the Dijkstra pass, O(V^2) worst case for
// the insertion sort, O(V log V) for the inserts. Space O(V) for this one
// tree; building one AB-Tree per source in
// the network costs O(V^2) overall, which is exactly why the PB-Tree
// alternative (pbtree package) exists for multi-source workloads.
func Build(n *network.Network, source int64) *Tree {
	dist, _ := n.ShortestPathTree(source)

	ordered := make([]reachedVertex, 0, len(dist))
	for v, d := range dist {
		ordered = append(ordered, reachedVertex{vertex: v, dist: d})
	}
	insertionSortByDist(ordered)

	t := &Tree{Source: source}
	for _, r := range ordered {
		kw := make(map[string]struct{})
		if nd, ok := n.Node(r.vertex); ok {
			for k := range nd.Keywords {
				kw[k] = struct{}{}
			}
		}
		t.root = insert(t.root, entry{dist: r.dist, vertex: r.vertex, keywords: kw})
		t.size++
	}

	return t
}

// insertionSortByDist sorts reached vertices by (dist, vertex) ascending.
// Insertion sort keeps this file dependency-free. The input is collected by
// ranging over the distance map, so its order is arbitrary and the sort is
// O(n^2) in the worst case.
func insertionSortByDist(r []reachedVertex) {
	for i := 1; i < len(r); i++ {
		key := r[i]
		j := i - 1
		for j >= 0 && (r[j].dist > key.dist || (r[j].dist == key.dist && r[j].vertex > key.vertex)) {
			r[j+1] = r[j]
			j--
		}
		r[j+1] = key
	}
}
