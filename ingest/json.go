package ingest

import (
	"encoding/json"
	"io"
)

// JSONParser replays the {nodes:[...], edges:[...]} document produced by
// the export package, implementing Parser. It reads the whole document up
// front (this module targets offline, in-memory networks, not streaming
// ingestion of arbitrarily large files).
type JSONParser struct {
	nodes []Node
	edges []Edge
	ni    int
	ei    int
}

type jsonNodeRecord struct {
	ID       int64    `json:"id"`
	Lat      float64  `json:"lat"`
	Lon      float64  `json:"lon"`
	Keywords []string `json:"keywords"`
}

type jsonEdgeRecord struct {
	From   int64   `json:"from"`
	To     int64   `json:"to"`
	Weight float64 `json:"weight"`
}

type jsonGraphDocument struct {
	Nodes []jsonNodeRecord `json:"nodes"`
	Edges []jsonEdgeRecord `json:"edges"`
}

// NewJSONParser decodes r as a graph document and returns a Parser over it.
func NewJSONParser(r io.Reader) (*JSONParser, error) {
	var doc jsonGraphDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	p := &JSONParser{
		nodes: make([]Node, len(doc.Nodes)),
		edges: make([]Edge, len(doc.Edges)),
	}
	for i, n := range doc.Nodes {
		p.nodes[i] = Node{ID: n.ID, Lat: n.Lat, Lon: n.Lon, Keywords: n.Keywords}
	}
	for i, e := range doc.Edges {
		p.edges[i] = Edge{From: e.From, To: e.To, Weight: e.Weight}
	}

	return p, nil
}

// NextNode implements Parser.
func (p *JSONParser) NextNode() (Node, bool, error) {
	if p.ni >= len(p.nodes) {
		return Node{}, false, nil
	}
	n := p.nodes[p.ni]
	p.ni++

	return n, true, nil
}

// NextEdge implements Parser.
func (p *JSONParser) NextEdge() (Edge, bool, error) {
	if p.ei >= len(p.edges) {
		return Edge{}, false, nil
	}
	e := p.edges[p.ei]
	p.ei++

	return e, true, nil
}
