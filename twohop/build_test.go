package twohop_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clueroute/crs/network"
	"github.com/clueroute/crs/twohop"
)

func buildPath4(t *testing.T) *network.Network {
	t.Helper()
	n := network.New()
	n.AddNode(1, 0, 0)
	n.AddNode(2, 0, 0)
	n.AddNode(3, 0, 0)
	n.AddNode(4, 0, 0)
	require.NoError(t, n.AddEdge(1, 2, 100))
	require.NoError(t, n.AddEdge(2, 3, 100))
	require.NoError(t, n.AddEdge(3, 4, 100))
	require.NoError(t, n.IndexKeyword(2, "bank"))
	require.NoError(t, n.IndexKeyword(4, "cafe"))

	return n
}

func TestBuild_OracleMatchesDijkstra(t *testing.T) {
	n := buildPath4(t)
	idx := twohop.Build(n)

	for u := int64(1); u <= 4; u++ {
		for v := int64(1); v <= 4; v++ {
			want, err := n.NetworkDistance(u, v)
			require.NoError(t, err)
			got := idx.Query(u, v)
			require.InDelta(t, want, got, 1e-6)
		}
	}
}

func TestBuild_PivotReverseCarriesKeywords(t *testing.T) {
	n := buildPath4(t)
	idx := twohop.Build(n)

	found := false
	for _, pivot := range idx.Pivots() {
		for _, e := range idx.PivotReverse(pivot) {
			if e.Vertex == 2 {
				_, ok := e.Keywords["bank"]
				require.True(t, ok)
				found = true
			}
		}
	}
	require.True(t, found, "vertex 2's keyword should surface in at least one pivot's reverse list")
}

func TestBuild_UnreachablePairIsInf(t *testing.T) {
	n := network.New()
	n.AddNode(1, 0, 0)
	n.AddNode(2, 0, 0)
	idx := twohop.Build(n)
	require.True(t, math.IsInf(idx.Query(1, 2), 1))
}

func TestBuild_RandomNetworkOracleAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := network.New()
	const nNodes = 60
	for i := int64(0); i < nNodes; i++ {
		n.AddNode(i, 0, 0)
	}
	for i := int64(0); i < nNodes; i++ {
		for j := int64(0); j < 3; j++ {
			to := int64(rng.Intn(nNodes))
			if to == i {
				continue
			}
			_ = n.AddEdge(i, to, float64(1+rng.Intn(50)))
		}
	}
	idx := twohop.Build(n)

	for i := 0; i < 200; i++ {
		u := int64(rng.Intn(nNodes))
		v := int64(rng.Intn(nNodes))
		want, err := n.NetworkDistance(u, v)
		require.NoError(t, err)
		got := idx.Query(u, v)
		if math.IsInf(want, 1) {
			require.True(t, math.IsInf(got, 1))

			continue
		}
		require.InDelta(t, want, got, 1e-6)
	}
}
