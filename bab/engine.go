package bab

import (
	"container/heap"
	"time"

	"github.com/clueroute/crs/clue"
	"github.com/clueroute/crs/findnext"
)

// routeItem is one partial route on the frontier.
type routeItem struct {
	route     []int64
	forbidden map[int64]struct{}
	theta     float64
	depth     int
	seq       int64 // insertion order, breaks theta ties deterministically
}

// routePQ is a best-first min-heap keyed by theta ascending, then by
// insertion order — the same nodeItem/nodePQ lazy-push shape the teacher
// uses for Dijkstra, here keyed by accumulated matching distance instead
// of network distance.
type routePQ []*routeItem

func (pq routePQ) Len() int { return len(pq) }
func (pq routePQ) Less(i, j int) bool {
	if pq[i].theta != pq[j].theta {
		return pq[i].theta < pq[j].theta
	}

	return pq[i].seq < pq[j].seq
}
func (pq routePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *routePQ) Push(x interface{}) { *pq = append(*pq, x.(*routeItem)) }
func (pq *routePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// engine holds all search state and policy for one Search call — an
// explicit struct rather than closures, mirroring tsp's bbEngine.
type engine struct {
	finder findnext.Finder
	clues  []clue.Clue

	useDeadline bool
	deadline    time.Time

	frontier routePQ
	nextSeq  int64

	ub        float64
	bestRoute []int64
	bestTheta float64
	found     bool
}

// deadlineCheck is consulted at every pop of the frontier: a time.Now() call
// is cheap next to the findNext work a pop triggers, so unlike tsp.bbEngine's
// sparse sampling there is no reason to check any less often than the spec
// requires.
func (e *engine) deadlineCheck() bool {
	if !e.useDeadline {
		return false
	}

	return time.Now().After(e.deadline)
}

func (e *engine) push(route []int64, forbidden map[int64]struct{}, theta float64, depth int) {
	e.nextSeq++
	heap.Push(&e.frontier, &routeItem{
		route:     route,
		forbidden: forbidden,
		theta:     theta,
		depth:     depth,
		seq:       e.nextSeq,
	})
}

const eps = 1e-9

// run drains the frontier, extending each popped partial route with every
// findNext candidate that still beats UB, pruning by UB and recording the
// best complete route (§4.8 steps 3-5).
func (e *engine) run(trace *[]TraceEvent) error {
	k := len(e.clues)

	for e.frontier.Len() > 0 {
		if e.deadlineCheck() {
			return ErrTimeLimit
		}

		item := heap.Pop(&e.frontier).(*routeItem)
		if item.theta >= e.ub-eps {
			continue
		}

		last := item.route[len(item.route)-1]
		*trace = append(*trace, TraceEvent{Depth: item.depth, Vertex: last, Theta: item.theta})

		if item.depth == k {
			if item.theta < e.ub-eps {
				e.ub = item.theta
				e.bestTheta = item.theta
				e.bestRoute = item.route
				e.found = true
			}

			continue
		}

		// Call findNext repeatedly, excluding each returned vertex from the
		// next call, so every candidate is pushed in ascending matching
		// distance until one no longer beats UB.
		excluded := make(map[int64]struct{}, len(item.forbidden))
		for v := range item.forbidden {
			excluded[v] = struct{}{}
		}
		for {
			cand := e.finder.FindNext(last, e.clues[item.depth], item.theta, e.ub, excluded)
			if !cand.Found {
				break
			}
			excluded[cand.Vertex] = struct{}{}

			nextTheta := item.theta + cand.MatchingDist
			if nextTheta >= e.ub-eps {
				break
			}

			nextRoute := make([]int64, len(item.route)+1)
			copy(nextRoute, item.route)
			nextRoute[len(item.route)] = cand.Vertex

			nextForbidden := make(map[int64]struct{}, len(item.forbidden)+1)
			for v := range item.forbidden {
				nextForbidden[v] = struct{}{}
			}
			nextForbidden[cand.Vertex] = struct{}{}

			e.push(nextRoute, nextForbidden, nextTheta, item.depth+1)
		}
	}

	return nil
}
