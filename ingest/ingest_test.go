package ingest_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clueroute/crs/ingest"
)

// sliceParser replays fixed Node/Edge slices, implementing ingest.Parser.
type sliceParser struct {
	nodes   []ingest.Node
	edges   []ingest.Edge
	nodePos int
	edgePos int
	failAt  int // if >= 0, NextEdge fails once edgePos reaches this index
}

func (p *sliceParser) NextNode() (ingest.Node, bool, error) {
	if p.nodePos >= len(p.nodes) {
		return ingest.Node{}, false, nil
	}
	n := p.nodes[p.nodePos]
	p.nodePos++

	return n, true, nil
}

func (p *sliceParser) NextEdge() (ingest.Edge, bool, error) {
	if p.failAt >= 0 && p.edgePos == p.failAt {
		return ingest.Edge{}, false, errors.New("boom")
	}
	if p.edgePos >= len(p.edges) {
		return ingest.Edge{}, false, nil
	}
	e := p.edges[p.edgePos]
	p.edgePos++

	return e, true, nil
}

func TestLoad_NodesAndEdges(t *testing.T) {
	p := &sliceParser{
		nodes: []ingest.Node{
			{ID: 1, Lat: 0, Lon: 0, Keywords: []string{"Bank", " cafe "}},
			{ID: 2, Lat: 0, Lon: 1},
		},
		edges:  []ingest.Edge{{From: 1, To: 2, Weight: 100}},
		failAt: -1,
	}

	n, err := ingest.Load(p)
	require.NoError(t, err)
	require.Equal(t, 2, n.NodeCount())
	require.True(t, n.HasKeyword(1, "bank"))
	require.True(t, n.HasKeyword(1, "cafe"))
	require.Equal(t, 1, n.EdgeCount())
}

func TestLoad_MergesDuplicateEdgesByMinWeight(t *testing.T) {
	p := &sliceParser{
		nodes: []ingest.Node{{ID: 1}, {ID: 2}},
		edges: []ingest.Edge{
			{From: 1, To: 2, Weight: 100},
			{From: 1, To: 2, Weight: 40},
		},
		failAt: -1,
	}

	n, err := ingest.Load(p)
	require.NoError(t, err)
	require.Equal(t, 1, n.EdgeCount())
	d, err := n.NetworkDistance(1, 2)
	require.NoError(t, err)
	require.Equal(t, 40.0, d)
}

func TestLoad_NilParserRejected(t *testing.T) {
	_, err := ingest.Load(nil)
	require.ErrorIs(t, err, ingest.ErrNilParser)
}

func TestLoad_PropagatesParserError(t *testing.T) {
	p := &sliceParser{
		nodes:  []ingest.Node{{ID: 1}, {ID: 2}},
		edges:  []ingest.Edge{{From: 1, To: 2, Weight: 10}},
		failAt: 0,
	}

	_, err := ingest.Load(p)
	require.Error(t, err)
}

func TestLoad_PropagatesEdgeValidationError(t *testing.T) {
	p := &sliceParser{
		nodes:  []ingest.Node{{ID: 1}},
		edges:  []ingest.Edge{{From: 1, To: 1, Weight: 10}},
		failAt: -1,
	}

	_, err := ingest.Load(p)
	require.Error(t, err)
}
