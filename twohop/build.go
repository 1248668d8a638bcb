package twohop

import (
	"container/heap"
	"sort"

	"github.com/clueroute/crs/network"
)

// heapItem and pq mirror the teacher's lazy-decrease-key Dijkstra heap
// (see network.nodeItem/nodePQ), kept private here since pruned Dijkstra's
// pop-time pruning check is specific to label-index construction.
type heapItem struct {
	id   int64
	dist float64
}

type pq []*heapItem

func (p pq) Len() int            { return len(p) }
func (p pq) Less(i, j int) bool  { return p[i].dist < p[j].dist }
func (p pq) Swap(i, j int)       { p[i], p[j] = p[j], p[i] }
func (p *pq) Push(x interface{}) { *p = append(*p, x.(*heapItem)) }
func (p *pq) Pop() interface{} {
	old := *p
	n := len(old)
	item := old[n-1]
	*p = old[:n-1]

	return item
}

// Build constructs the 2-Hop Label Index and its Pivot-Reverse inversion
// over n, per §4.3–4.4.
//
// Pivot ordering is highest-degree-first, ties by ascending id (§4.3 step
// 1, §9 design note). For each pivot in that order, a pruned Dijkstra runs
// from the pivot: at each pop, if the oracle (using labels built so far)
// already explains the popped distance, the vertex is pruned — no label is
// added and its neighbors are not relaxed; this is the standard
// pruned-landmark-labeling optimization and is what makes the index
// canonical (§4.3 Correctness).
func Build(n *network.Network) *Index {
	ids := n.NodeIDs()
	order := make([]int64, len(ids))
	copy(order, ids)
	degree := make(map[int64]int, len(ids))
	for _, id := range ids {
		degree[id] = n.Degree(id)
	}
	sort.Slice(order, func(i, j int) bool {
		if degree[order[i]] != degree[order[j]] {
			return degree[order[i]] > degree[order[j]]
		}

		return order[i] < order[j]
	})

	idx := &Index{
		labels:     make(map[int64][]LabelEntry, len(ids)),
		byPivot:    make(map[int64]map[int64]float64, len(ids)),
		pr:         make(map[int64][]PREntry, len(order)),
		pivotOrder: order,
	}

	for _, pivot := range order {
		prunedDijkstraFrom(n, idx, pivot)
	}

	for pivot := range idx.pr {
		sortPREntries(idx.pr[pivot])
	}
	for v := range idx.labels {
		sortLabelEntries(idx.labels[v])
	}

	return idx
}

// prunedDijkstraFrom runs one pivot's pruned Dijkstra pass and folds the
// resulting labels directly into idx (both the forward label map and the
// pivot-reverse list).
func prunedDijkstraFrom(n *network.Network, idx *Index, pivot int64) {
	visited := make(map[int64]bool)
	dist := make(map[int64]float64)

	frontier := make(pq, 0, 64)
	heap.Init(&frontier)
	dist[pivot] = 0
	heap.Push(&frontier, &heapItem{id: pivot, dist: 0})

	for frontier.Len() > 0 {
		item := heap.Pop(&frontier).(*heapItem)
		v := item.id
		if visited[v] {
			continue
		}
		visited[v] = true

		// Pruning check: if the oracle, using labels built so far (across
		// all prior pivots plus this pivot's own labels added earlier in
		// this very pass), already witnesses d(pivot,v) <= item.dist, skip
		// adding a label and do not expand v's neighbors.
		if covered := idx.Query(pivot, v); covered <= item.dist {
			continue
		}

		addLabel(n, idx, pivot, v, item.dist)

		for _, e := range n.Neighbors(v) {
			newDist := item.dist + e.Weight
			if d, ok := dist[e.To]; ok && newDist >= d {
				continue
			}
			dist[e.To] = newDist
			heap.Push(&frontier, &heapItem{id: e.To, dist: newDist})
		}
	}
}

// addLabel records (pivot,dist) in L(v) and the matching PR(pivot) entry,
// copying v's current keyword set from the network so PR(pivot) entries
// remain valid even if the network's Node.Keywords map is later mutated.
func addLabel(n *network.Network, idx *Index, pivot, v int64, dist float64) {
	idx.labels[v] = append(idx.labels[v], LabelEntry{Pivot: pivot, Dist: dist})
	if idx.byPivot[v] == nil {
		idx.byPivot[v] = make(map[int64]float64)
	}
	idx.byPivot[v][pivot] = dist

	keywords := make(map[string]struct{})
	if node, ok := n.Node(v); ok {
		for kw := range node.Keywords {
			keywords[kw] = struct{}{}
		}
	}
	idx.pr[pivot] = append(idx.pr[pivot], PREntry{Vertex: v, Dist: dist, Keywords: keywords})
}

func sortLabelEntries(entries []LabelEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Dist != entries[j].Dist {
			return entries[i].Dist < entries[j].Dist
		}

		return entries[i].Pivot < entries[j].Pivot
	})
}

func sortPREntries(entries []PREntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Dist != entries[j].Dist {
			return entries[i].Dist < entries[j].Dist
		}

		return entries[i].Vertex < entries[j].Vertex
	})
}
