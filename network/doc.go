// Package network is the road network collaborator (C1): nodes with
// lat/lon and keyword sets, a symmetric weighted adjacency list, an
// inverted keyword index, Haversine, and a memoized Dijkstra.
//
// AI-HINT (file): build with AddNode/AddEdge/IndexKeyword (or via the
// ingest package), then hand the *Network to twohop/abtree builders. Call
// RemoveIsolatedNodes before building any index over the network — network
// has no way to detect or refuse a call made afterward, so this ordering is
// the caller's responsibility, not the type's.
package network
