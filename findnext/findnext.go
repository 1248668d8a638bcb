// Package findnext implements the findNext operator (C7): a single
// capability contract, `FindNext`, realized two interchangeable ways —
// ABFindNext over a per-source abtree.Tree, PBFindNext over per-pivot
// pbtree.Trees layered on a twohop.Index oracle. Neither realization
// inherits from the other; both are tagged alternatives behind the same
// interface, per the teacher's preference for small capability interfaces
// over class hierarchies (core.Graph-style composition rather than
// embedding a base type).
package findnext

import "github.com/clueroute/crs/clue"

// Step is one candidate considered while answering a FindNext call, kept
// for the caller's trace/diagnostics (the CLI's findnext subcommand prints
// it as part of the returned Candidate).
type Step struct {
	Vertex       int64
	NetworkDist  float64
	MatchingDist float64
}

// Candidate is the result of a FindNext call.
type Candidate struct {
	Found        bool
	Vertex       int64
	NetworkDist  float64
	MatchingDist float64
	Trace        []Step
}

// Finder is the uniform findNext contract consumed by the bab driver
// (§4.7): given the vertex reached so far, the next clue, the matching
// distance already accumulated (theta), the current global upper bound,
// and the set of vertices already on the partial route, return the best
// candidate or Found=false.
type Finder interface {
	FindNext(source int64, c clue.Clue, theta, ub float64, forbidden map[int64]struct{}) Candidate
}

// better reports whether a beats b under the tie-break rule (§4.6/§9):
// smaller matching distance, then smaller network distance, then smaller
// vertex id.
func better(a, b Candidate) bool {
	if a.MatchingDist != b.MatchingDist {
		return a.MatchingDist < b.MatchingDist
	}
	if a.NetworkDist != b.NetworkDist {
		return a.NetworkDist < b.NetworkDist
	}

	return a.Vertex < b.Vertex
}
