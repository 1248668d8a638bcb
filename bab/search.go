package bab

import (
	"container/heap"
	"math"
	"time"

	"github.com/clueroute/crs/clue"
	"github.com/clueroute/crs/findnext"
	"github.com/clueroute/crs/network"
)

// Options configures a Search call. The zero value runs with no deadline.
type Options struct {
	Deadline time.Time
}

// Search runs the Branch-and-Bound driver (§4.8): starting at query.Source,
// find an ordered sequence of k = len(query.Clues) vertices minimizing the
// aggregate matching distance, using finder to advance one clue at a time.
// net is consulted only to check that query.Source exists (otherwise
// network.ErrNodeNotFound is returned) and to re-expand the winning route's
// full path and its total network distance for reporting; the search itself
// never touches the network directly.
func Search(finder findnext.Finder, net *network.Network, query clue.Query, opts Options) (SearchResult, error) {
	if len(query.Clues) == 0 {
		return SearchResult{}, ErrEmptyQuery
	}
	if !net.HasNode(query.Source) {
		return SearchResult{}, network.ErrNodeNotFound
	}

	start := time.Now()

	e := &engine{
		finder:      finder,
		clues:       query.Clues,
		useDeadline: !opts.Deadline.IsZero(),
		deadline:    opts.Deadline,
		ub:          math.Inf(1),
	}
	heap.Init(&e.frontier)
	e.push([]int64{query.Source}, map[int64]struct{}{query.Source: {}}, 0, 0)

	var trace []TraceEvent
	runErr := e.run(&trace)

	result := SearchResult{
		Trace:   trace,
		Timings: Timings{SearchDuration: time.Since(start)},
	}
	if !e.found {
		return result, runErr
	}

	result.Route = e.bestRoute
	result.MatchingDistance = e.bestTheta

	fullPath, networkDist := expandFullPath(net, e.bestRoute)
	result.FullPath = fullPath
	result.NetworkDistance = networkDist

	return result, runErr
}

// expandFullPath re-expands each hop of route via Dijkstra (§4.8:
// "re-expand d_G paths on demand via Dijkstra for visualization"),
// concatenating the hop paths (sharing the joint vertex) and summing the
// true network distance traveled.
func expandFullPath(net *network.Network, route []int64) (path []int64, total float64) {
	if len(route) == 0 {
		return nil, 0
	}

	path = []int64{route[0]}
	for i := 1; i < len(route); i++ {
		hop, d, ok := net.ShortestPath(route[i-1], route[i])
		if !ok || len(hop) == 0 {
			continue
		}
		path = append(path, hop[1:]...)
		total += d
	}

	return path, total
}
