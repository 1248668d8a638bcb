// Package bab implements the Branch-and-Bound driver (C8): a best-first
// search over partial routes, each step extended with the candidates
// returned by repeated findnext.Finder calls, pruned by a running upper
// bound on total matching distance.
//
// Grounded directly on the teacher's tsp package: an explicit engine
// struct rather than closures (bbEngine) and eps-tolerant bound
// comparisons (lb >= bestCost-eps) reused here as theta+matchingDist <
// UB-eps. Unlike bbEngine's sparse sampling, the deadline is checked at
// every pop of the frontier.
package bab

import (
	"errors"
	"time"
)

// ErrEmptyQuery indicates a Search call with zero clues.
var ErrEmptyQuery = errors.New("bab: query must have at least one clue")

// ErrTimeLimit indicates a positive deadline was exceeded before the
// search frontier was exhausted; the best route found so far (if any) is
// still returned alongside this error.
var ErrTimeLimit = errors.New("bab: time limit exceeded")

// TraceEvent records one partial-route expansion step, kept for
// diagnostics and the §8 determinism property (identical inputs and
// index builds must reproduce an identical trace).
type TraceEvent struct {
	Depth  int
	Vertex int64
	Theta  float64
}

// Timings carries wall-clock durations for reporting, consistent with
// §4.8's "build/search timings" requirement. BuildDuration is the
// caller's responsibility to stamp (index construction happens outside
// Search); Search only measures itself.
type Timings struct {
	BuildDuration  time.Duration
	SearchDuration time.Duration
}

// SearchResult is the outcome of a BAB search. A nil Route means no
// route was found (§7: NoRoute is a value, never an error).
type SearchResult struct {
	Route            []int64
	FullPath         []int64
	MatchingDistance float64
	NetworkDistance  float64
	Trace            []TraceEvent
	Timings          Timings
}
