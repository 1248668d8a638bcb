package network

// AddEdge inserts an undirected edge between from and to with the given
// weight, storing it as a symmetric pair in the adjacency list (an entry
// From->To and one To->From). Both endpoints must already exist
// (ErrNodeNotFound); weight must be > 0 (ErrEdgeWeight); from == to is
// rejected (ErrSelfLoop).
//
// If an edge already exists between from and to, the stored weight is
// replaced by the minimum of the existing and new weight (duplicate-edge
// merge-by-minimum-weight, per the ingest contract in §6).
//
// Complexity: O(deg(from) + deg(to)) to find-or-append into the adjacency
// slices. Fine for the offline build phase this network targets.
func (n *Network) AddEdge(from, to int64, weight float64) error {
	if from == to {
		return ErrSelfLoop
	}
	if weight <= 0 {
		return ErrEdgeWeight
	}

	n.muNodes.RLock()
	_, okFrom := n.nodes[from]
	_, okTo := n.nodes[to]
	n.muNodes.RUnlock()
	if !okFrom || !okTo {
		return ErrNodeNotFound
	}

	n.muAdj.Lock()
	defer n.muAdj.Unlock()

	if !mergeOrAppend(n.adjacency, from, to, weight) {
		n.adjacency[from] = append(n.adjacency[from], Edge{From: from, To: to, Weight: weight})
	}
	if !mergeOrAppend(n.adjacency, to, from, weight) {
		n.adjacency[to] = append(n.adjacency[to], Edge{From: to, To: from, Weight: weight})
	}

	return nil
}

// mergeOrAppend finds the edge from->to in adj[from] and, if present,
// replaces its weight with min(existing, weight); returns true if found.
func mergeOrAppend(adj map[int64][]Edge, from, to int64, weight float64) bool {
	for i := range adj[from] {
		if adj[from][i].To == to {
			if weight < adj[from][i].Weight {
				adj[from][i].Weight = weight
			}

			return true
		}
	}

	return false
}

// Neighbors returns the edges incident to id, each with From == id.
// Order is unspecified; callers needing determinism should sort by To.
func (n *Network) Neighbors(id int64) []Edge {
	n.muAdj.RLock()
	defer n.muAdj.RUnlock()

	out := make([]Edge, len(n.adjacency[id]))
	copy(out, n.adjacency[id])

	return out
}

// EdgeCount returns the number of undirected edges (i.e. half the number of
// directed adjacency entries).
func (n *Network) EdgeCount() int {
	n.muAdj.RLock()
	defer n.muAdj.RUnlock()

	total := 0
	for _, edges := range n.adjacency {
		total += len(edges)
	}

	return total / 2
}
