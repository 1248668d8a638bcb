// Package network implements the road network: an in-memory, undirected,
// weighted graph with per-vertex keyword sets, a Haversine helper, and a
// memoized Dijkstra shortest-path primitive.
//
// The network is built once (via AddNode/AddEdge, or the ingest package's
// parser-driven loader) and then treated as read-only by every index and
// query in this module. The only mutable state touched after construction
// is the pairwise distance memo, which is append-only and safe for
// concurrent readers (see the locking notes on Network).
//
// Errors:
//
//	ErrEmptyKeyword   - keyword indexed or queried is empty.
//	ErrNodeNotFound   - requested node id does not exist.
//	ErrEdgeWeight     - edge weight is not strictly positive.
//	ErrSelfLoop       - an edge's From and To are identical.
package network

import (
	"errors"
	"sync"
)

// Sentinel errors for network operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrEmptyKeyword indicates a keyword operation was given the empty string.
	ErrEmptyKeyword = errors.New("network: keyword is empty")

	// ErrEdgeWeight indicates a non-positive edge weight was supplied.
	ErrEdgeWeight = errors.New("network: edge weight must be > 0")

	// ErrSelfLoop indicates an edge whose From equals its To.
	ErrSelfLoop = errors.New("network: self-loop edges are not supported")
)

// EarthRadiusMeters is the mean Earth radius used by Haversine.
const EarthRadiusMeters = 6371000.0

// Node is a vertex in the road network. Identity is by ID alone; Lat/Lon
// are only consulted by Haversine and by callers building edge weights.
type Node struct {
	ID  int64
	Lat float64
	Lon float64

	// Keywords is the lowercased keyword set carried by this node.
	// The network's keywordIndex is the authority for "which nodes carry
	// keyword w"; Keywords is a convenience mirror kept in sync by the
	// network on AddNode/IndexKeyword.
	Keywords map[string]struct{}
}

// Edge is a directed view of a connection between two nodes. Network stores
// edges as a symmetric pair in the adjacency list (see AddEdge); a caller
// iterating Neighbors(v) always sees v as From.
type Edge struct {
	From   int64
	To     int64
	Weight float64
}

// Network is the road network G = (V, E): a mapping of node id to Node, an
// adjacency list, an inverted keyword index, and a memo of computed
// pairwise shortest distances.
//
// Locking mirrors the teacher's two-mutex-per-struct discipline: muNodes
// guards the node catalog and keyword index; muAdj guards the adjacency
// list; muMemo guards the distance memo. Lock order when more than one is
// needed is muNodes -> muAdj -> muMemo, never reversed, to avoid inversion.
type Network struct {
	muNodes sync.RWMutex
	muAdj   sync.RWMutex
	muMemo  sync.RWMutex

	nodes        map[int64]*Node
	adjacency    map[int64][]Edge
	keywordIndex map[string]map[int64]struct{}

	// memo[u][v] = shortest network distance; both (u,v) and (v,u) are
	// populated together on first computation (see NetworkDistance/memoSet).
	memo map[int64]map[int64]float64

	haversineRadius float64
}

// NetworkOption configures a Network at construction time.
type NetworkOption func(*Network)

// WithHaversineRadius overrides the great-circle radius used by
// HaversineNodes, replacing EarthRadiusMeters — reserved for test networks
// built on a non-Earth radius.
func WithHaversineRadius(metres float64) NetworkOption {
	return func(n *Network) { n.haversineRadius = metres }
}

// New creates an empty, ready-to-use Network.
func New(opts ...NetworkOption) *Network {
	n := &Network{
		nodes:           make(map[int64]*Node),
		adjacency:       make(map[int64][]Edge),
		keywordIndex:    make(map[string]map[int64]struct{}),
		memo:            make(map[int64]map[int64]float64),
		haversineRadius: EarthRadiusMeters,
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
