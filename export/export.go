// Package export renders a *network.Network and a bab.SearchResult as JSON
// for the visualizer collaborator (§6), which lives outside this module.
//
// Grounded on the only JSON-marshalling code in the retrieval pack
// (gaissmai-bart's Table.MarshalJSON): a custom MarshalJSON method that
// builds a plain, fully json-tagged anonymous struct and delegates to
// encoding/json, rather than tagging the domain types themselves (the
// domain types carry no json tags of their own, same separation the
// teacher keeps between Table[V] and ListElement[V]).
package export

import (
	"encoding/json"
	"sort"

	"github.com/clueroute/crs/bab"
	"github.com/clueroute/crs/network"
)

// Graph wraps a *network.Network purely for JSON export.
type Graph struct {
	net *network.Network
}

// NewGraph wraps net for export.
func NewGraph(net *network.Network) Graph {
	return Graph{net: net}
}

type jsonNode struct {
	ID       int64    `json:"id"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
	Keywords []string `json:"keywords,omitempty"`
}

type jsonEdge struct {
	From   int64   `json:"from"`
	To     int64   `json:"to"`
	Weight float64 `json:"weight"`
}

// MarshalJSON renders {nodes:[{id,lat,lon,keywords}], edges:[{from,to,weight}]},
// each list sorted for reproducible output (node by id; edge by from,to).
func (g Graph) MarshalJSON() ([]byte, error) {
	ids := g.net.NodeIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	nodes := make([]jsonNode, 0, len(ids))
	edgeSet := make(map[[2]int64]float64)
	for _, id := range ids {
		n, _ := g.net.Node(id)
		kws := make([]string, 0, len(n.Keywords))
		for kw := range n.Keywords {
			kws = append(kws, kw)
		}
		sort.Strings(kws)
		nodes = append(nodes, jsonNode{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Keywords: kws})

		for _, e := range g.net.Neighbors(id) {
			key := [2]int64{e.From, e.To}
			if e.From > e.To {
				key = [2]int64{e.To, e.From}
			}
			edgeSet[key] = e.Weight
		}
	}

	edges := make([]jsonEdge, 0, len(edgeSet))
	for pair, w := range edgeSet {
		edges = append(edges, jsonEdge{From: pair[0], To: pair[1], Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	result := struct {
		Nodes []jsonNode `json:"nodes"`
		Edges []jsonEdge `json:"edges"`
	}{Nodes: nodes, Edges: edges}

	return json.Marshal(result)
}

// Result wraps a bab.SearchResult purely for JSON export.
type Result struct {
	res bab.SearchResult
}

// NewResult wraps res for export.
func NewResult(res bab.SearchResult) Result {
	return Result{res: res}
}

type jsonTraceEvent struct {
	Depth  int     `json:"depth"`
	Vertex int64   `json:"vertex"`
	Theta  float64 `json:"theta"`
}

// MarshalJSON renders {route, fullPath, matchingDistance, networkDistance,
// trace, buildMillis, searchMillis}: the two timings are flattened into
// top-level millisecond fields rather than a nested timings object.
func (r Result) MarshalJSON() ([]byte, error) {
	trace := make([]jsonTraceEvent, 0, len(r.res.Trace))
	for _, ev := range r.res.Trace {
		trace = append(trace, jsonTraceEvent{Depth: ev.Depth, Vertex: ev.Vertex, Theta: ev.Theta})
	}

	result := struct {
		Route            []int64          `json:"route"`
		FullPath         []int64          `json:"fullPath"`
		MatchingDistance float64          `json:"matchingDistance"`
		NetworkDistance  float64          `json:"networkDistance"`
		Trace            []jsonTraceEvent `json:"trace"`
		BuildMillis      int64            `json:"buildMillis"`
		SearchMillis     int64            `json:"searchMillis"`
	}{
		Route:            r.res.Route,
		FullPath:         r.res.FullPath,
		MatchingDistance: r.res.MatchingDistance,
		NetworkDistance:  r.res.NetworkDistance,
		Trace:            trace,
		BuildMillis:      r.res.Timings.BuildDuration.Milliseconds(),
		SearchMillis:     r.res.Timings.SearchDuration.Milliseconds(),
	}

	return json.Marshal(result)
}
