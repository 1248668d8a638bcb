package findnext_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clueroute/crs/abtree"
	"github.com/clueroute/crs/clue"
	"github.com/clueroute/crs/findnext"
	"github.com/clueroute/crs/network"
	"github.com/clueroute/crs/pbtree"
	"github.com/clueroute/crs/twohop"
)

func buildStar(t *testing.T) *network.Network {
	t.Helper()
	n := network.New()
	n.AddNode(0, 0, 0)
	for i := int64(1); i <= 6; i++ {
		n.AddNode(i, 0, 0)
		require.NoError(t, n.AddEdge(0, i, float64(i*10)))
	}
	require.NoError(t, n.IndexKeyword(2, "shop"))
	require.NoError(t, n.IndexKeyword(5, "shop"))

	return n
}

func abFinder(t *testing.T, n *network.Network) *findnext.ABFindNext {
	t.Helper()
	trees := make(map[int64]*abtree.Tree)
	for _, id := range n.NodeIDs() {
		trees[id] = abtree.Build(n, id)
	}

	return findnext.NewABFindNext(trees)
}

func pbFinder(t *testing.T, n *network.Network) (*findnext.PBFindNext, *twohop.Index) {
	t.Helper()
	idx := twohop.Build(n)
	trees := make(map[int64]*pbtree.Tree)
	for _, pivot := range idx.Pivots() {
		trees[pivot] = pbtree.Build(pivot, idx.PivotReverse(pivot))
	}

	return findnext.NewPBFindNext(idx, trees), idx
}

func TestABFindNext_PrefersClosestMatch(t *testing.T) {
	n := buildStar(t)
	f := abFinder(t, n)

	c, err := clue.New("shop", 20, 0.5)
	require.NoError(t, err)

	got := f.FindNext(0, c, 0, 1e9, nil)
	require.True(t, got.Found)
	require.Equal(t, int64(2), got.Vertex)
	require.InDelta(t, 0, got.MatchingDist, 1e-9)
}

func TestABFindNext_HonorsForbidden(t *testing.T) {
	n := buildStar(t)
	f := abFinder(t, n)

	c, err := clue.New("shop", 30, 0.9)
	require.NoError(t, err)

	forbidden := map[int64]struct{}{2: {}}
	got := f.FindNext(0, c, 0, 1e9, forbidden)
	require.True(t, got.Found)
	require.Equal(t, int64(5), got.Vertex)
}

func TestABFindNext_RejectsWhenBudgetExhausted(t *testing.T) {
	n := buildStar(t)
	f := abFinder(t, n)

	c, err := clue.New("shop", 20, 0.1)
	require.NoError(t, err)

	got := f.FindNext(0, c, 100, 100, nil)
	require.False(t, got.Found)
}

// buildTieNetwork puts two "shop" nodes at the identical network distance
// from the source, differing only by vertex id, to exercise the tie-break
// rule (smaller matching distance, then smaller network distance, then
// smaller vertex id — see better in findnext.go).
func buildTieNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New()
	n.AddNode(0, 0, 0)
	n.AddNode(5, 0, 0)
	n.AddNode(7, 0, 0)
	require.NoError(t, n.AddEdge(0, 5, 200))
	require.NoError(t, n.AddEdge(0, 7, 200))
	require.NoError(t, n.IndexKeyword(5, "shop"))
	require.NoError(t, n.IndexKeyword(7, "shop"))

	return n
}

func TestABFindNext_TieBreaksBySmallerVertexID(t *testing.T) {
	n := buildTieNetwork(t)
	f := abFinder(t, n)

	c, err := clue.New("shop", 200, 0)
	require.NoError(t, err)

	got := f.FindNext(0, c, 0, 1e9, nil)
	require.True(t, got.Found)
	require.InDelta(t, 0, got.MatchingDist, 1e-9)
	require.InDelta(t, 200, got.NetworkDist, 1e-9)
	require.Equal(t, int64(5), got.Vertex)
}

func TestPBFindNext_TieBreaksBySmallerVertexID(t *testing.T) {
	n := buildTieNetwork(t)
	pb, _ := pbFinder(t, n)

	c, err := clue.New("shop", 200, 0)
	require.NoError(t, err)

	got := pb.FindNext(0, c, 0, 1e9, nil)
	require.True(t, got.Found)
	require.Equal(t, int64(5), got.Vertex)
}

func TestPBFindNext_MatchesABFindNext(t *testing.T) {
	n := buildStar(t)
	ab := abFinder(t, n)
	pb, _ := pbFinder(t, n)

	c, err := clue.New("shop", 20, 0.9)
	require.NoError(t, err)

	gotAB := ab.FindNext(0, c, 0, 1e9, nil)
	gotPB := pb.FindNext(0, c, 0, 1e9, nil)

	require.Equal(t, gotAB.Found, gotPB.Found)
	require.InDelta(t, gotAB.MatchingDist, gotPB.MatchingDist, 1e-6)
}

func TestFindNext_CrossIndexAgreement_RandomNetwork(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	n := network.New()
	const nNodes = 40
	keywords := []string{"shop", "cafe", "bank"}
	for i := int64(0); i < nNodes; i++ {
		n.AddNode(i, 0, 0)
		require.NoError(t, n.IndexKeyword(i, keywords[rng.Intn(len(keywords))]))
	}
	for i := int64(0); i < nNodes; i++ {
		for j := 0; j < 3; j++ {
			to := int64(rng.Intn(nNodes))
			if to == i {
				continue
			}
			_ = n.AddEdge(i, to, float64(1+rng.Intn(50)))
		}
	}

	ab := abFinder(t, n)
	pb, _ := pbFinder(t, n)

	for i := 0; i < 30; i++ {
		source := int64(rng.Intn(nNodes))
		kw := keywords[rng.Intn(len(keywords))]
		c, err := clue.New(kw, float64(10+rng.Intn(100)), 0.5)
		require.NoError(t, err)

		gotAB := ab.FindNext(source, c, 0, 1e9, nil)
		gotPB := pb.FindNext(source, c, 0, 1e9, nil)

		require.Equal(t, gotAB.Found, gotPB.Found)
		if gotAB.Found {
			require.InDelta(t, gotAB.MatchingDist, gotPB.MatchingDist, 1e-6)
		}
	}
}
