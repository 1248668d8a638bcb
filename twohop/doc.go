// AI-HINT (package twohop): Build() is O(pivots * (V+E) log V) in the
// worst case but typically far cheaper once pruning kicks in on networks
// with realistic degree skew. Query() never touches the network; the
// index is fully self-contained after Build returns.
package twohop
