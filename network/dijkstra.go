package network

import (
	"container/heap"
	"math"
)

// nodeItem and nodePQ implement the teacher's lazy-decrease-key min-heap:
// stale entries are pushed rather than mutated in place, and are discarded
// on pop by checking a visited set.
type nodeItem struct {
	id   int64
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// ShortestPathTree runs Dijkstra from source over the whole network and
// returns the distance and predecessor maps for every reachable vertex.
// Unreachable vertices are simply absent from dist.
//
// Complexity: O((V+E) log V).
func (n *Network) ShortestPathTree(source int64) (dist map[int64]float64, prev map[int64]int64) {
	dist = make(map[int64]float64)
	prev = make(map[int64]int64)
	visited := make(map[int64]bool)

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)
	dist[source] = 0
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range n.Neighbors(u) {
			newDist := dist[u] + e.Weight
			if d, ok := dist[e.To]; ok && newDist >= d {
				continue
			}
			dist[e.To] = newDist
			prev[e.To] = u
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return dist, prev
}

// shortestPathTreeEarlyExit is ShortestPathTree but stops as soon as target
// is popped (finalized), returning its distance and whether it was reached.
// Used by NetworkDistance to avoid a full traversal for a single pair.
func (n *Network) shortestPathTreeEarlyExit(source, target int64) (float64, bool) {
	if source == target {
		return 0, true
	}

	visited := make(map[int64]bool)
	dist := make(map[int64]float64)

	pq := make(nodePQ, 0, 64)
	heap.Init(&pq)
	dist[source] = 0
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == target {
			return item.dist, true
		}

		for _, e := range n.Neighbors(u) {
			newDist := dist[u] + e.Weight
			if d, ok := dist[e.To]; ok && newDist >= d {
				continue
			}
			dist[e.To] = newDist
			heap.Push(&pq, &nodeItem{id: e.To, dist: newDist})
		}
	}

	return 0, false
}

// NetworkDistance returns d_G(u,v), consulting the symmetric memo first and
// memoizing both (u,v) and (v,u) on completion (§4.1). Unreachable pairs are
// memoized as +Inf rather than erroring (§7, Unreachable policy).
//
// Complexity: O(1) on a memo hit; O((V+E) log V) on a miss.
func (n *Network) NetworkDistance(u, v int64) (float64, error) {
	if !n.HasNode(u) || !n.HasNode(v) {
		return 0, ErrNodeNotFound
	}

	if d, ok := n.memoGet(u, v); ok {
		return d, nil
	}

	d, reached := n.shortestPathTreeEarlyExit(u, v)
	if !reached {
		d = math.Inf(1)
	}
	n.memoSet(u, v, d)

	return d, nil
}

func (n *Network) memoGet(u, v int64) (float64, bool) {
	n.muMemo.RLock()
	defer n.muMemo.RUnlock()

	row, ok := n.memo[u]
	if !ok {
		return 0, false
	}
	d, ok := row[v]

	return d, ok
}

// memoSet records d for both (u,v) and (v,u), preserving the symmetric-memo
// invariant from §3 ("for every cached pair (u,v)->d, (v,u)->d also cached").
func (n *Network) memoSet(u, v int64, d float64) {
	n.muMemo.Lock()
	defer n.muMemo.Unlock()

	if n.memo[u] == nil {
		n.memo[u] = make(map[int64]float64)
	}
	if n.memo[v] == nil {
		n.memo[v] = make(map[int64]float64)
	}
	n.memo[u][v] = d
	n.memo[v][u] = d
}

// ShortestPath reconstructs the vertex sequence u -> ... -> v via a single
// Dijkstra run from u, returning the path and its length. Used to expand
// SearchResult.FullPath for visualization (§4.8). Returns ok=false if v is
// unreachable from u.
func (n *Network) ShortestPath(u, v int64) (path []int64, dist float64, ok bool) {
	if u == v {
		if n.HasNode(u) {
			return []int64{u}, 0, true
		}

		return nil, 0, false
	}

	distMap, prev := n.ShortestPathTree(u)
	d, reached := distMap[v]
	if !reached {
		return nil, 0, false
	}

	seq := []int64{v}
	cur := v
	for cur != u {
		p, ok := prev[cur]
		if !ok {
			return nil, 0, false
		}
		seq = append(seq, p)
		cur = p
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq, d, true
}
