package powergraph

import (
	"testing"

	"github.com/nicholasyager/dagview/cluster"
	"github.com/nicholasyager/dagview/core"
	"github.com/nicholasyager/dagview/graph"
	"github.com/stretchr/testify/require"
)

func buildS3Graph() (nodes []graph.Node, edges []graph.Edge) {
	nodes = []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"}}
	edges = []graph.Edge{
		{From: "a", To: "c"}, {From: "a", To: "d"}, {From: "a", To: "e"},
		{From: "b", To: "c"}, {From: "b", To: "d"}, {From: "b", To: "e"},
	}
	return nodes, edges
}

// TestDecompose_BicliqueDetection is scenario S3 from the specification:
// a complete bipartite graph between {a,b} and {c,d,e} decomposes into
// exactly one power edge between those two groups.
func TestDecompose_BicliqueDetection(t *testing.T) {
	nodes, edges := buildS3Graph()
	pg := New(nodes, edges)
	pg.Decompose()

	require.Len(t, pg.PowerEdges, 1)
	pe := pg.PowerEdges[0]
	endpoints := []string{pe.From, pe.To}
	require.Contains(t, endpoints, "c-d-e")

	other := pe.From
	if other == "c-d-e" {
		other = pe.To
	}
	require.Equal(t, "a-b", other)
}

// TestDecompose_EveryOriginalEdgeIsCovered is the property-based form of
// invariant 8: decomposition never drops an original edge.
func TestDecompose_EveryOriginalEdgeIsCovered(t *testing.T) {
	nodes, edges := buildS3Graph()
	pg := New(nodes, edges)
	pg.Decompose()

	clusterByID := make(map[string]*cluster.Cluster)
	for _, pn := range pg.PowerNodes {
		clusterByID[pn.ID] = pn.Cluster
	}

	covered := make(map[graph.Edge]bool)
	for _, pe := range pg.PowerEdges {
		from, to := clusterByID[pe.From], clusterByID[pe.To]
		require.NotNil(t, from, "power edge references an unregistered power node %q", pe.From)
		require.NotNil(t, to, "power edge references an unregistered power node %q", pe.To)
		for _, u := range from.Items.Slice() {
			for _, v := range to.Items.Slice() {
				covered[graph.Edge{From: u, To: v}] = true
				covered[graph.Edge{From: v, To: u}] = true
			}
		}
	}

	for _, e := range edges {
		require.True(t, covered[e], "edge %+v not covered by any power edge", e)
	}
}

// TestDecompose_NoPartialOverlapBetweenPowerNodes is the property-based
// form of invariants 6 and 9: no two power nodes partially overlap — they
// are always equal, disjoint, or one strictly contains the other.
func TestDecompose_NoPartialOverlapBetweenPowerNodes(t *testing.T) {
	nodes, edges := buildS3Graph()
	pg := New(nodes, edges)
	pg.Decompose()

	for i, a := range pg.PowerNodes {
		for j, b := range pg.PowerNodes {
			if i == j {
				continue
			}
			inter := a.Cluster.Items.Intersection(b.Cluster.Items)
			if inter.Len() == 0 {
				continue
			}
			partial := !a.Cluster.Items.IsSubsetOf(b.Cluster.Items) &&
				!b.Cluster.Items.IsSubsetOf(a.Cluster.Items)
			require.False(t, partial, "power nodes %q and %q partially overlap", a.ID, b.ID)
		}
	}
}

// isClique is the clique predicate used by candidate generation; this
// exercises the clause of scenario S5 that the cluster ({a,c}) formed by
// agglomerating the triangle a-b-c satisfies clusters_are_clique against
// itself.
func TestIsClique_TriangleEdgeSubset(t *testing.T) {
	repo := graph.NewEdgeRepository()
	for _, e := range []graph.Edge{{From: "a", To: "b"}, {From: "a", To: "c"}, {From: "b", To: "c"}, {From: "b", To: "d"}} {
		repo.AddEdge(e)
	}

	ac := cluster.New(core.NewSet("a", "c"), core.NewSet("b"))
	require.True(t, isClique(repo, ac))

	abc := cluster.New(core.NewSet("a", "b", "c"), core.NewSet("d"))
	require.True(t, isClique(repo, abc))

	abd := cluster.New(core.NewSet("a", "b", "d"), core.NewSet("c"))
	require.False(t, isClique(repo, abd))
}

// TestProcessCandidate_CliqueSelfLoop exercises rule 5 directly: a clique
// candidate large enough to clear the degenerate-self-edge floor (size >
// 2) registers one power node and one self-loop power edge.
func TestProcessCandidate_CliqueSelfLoop(t *testing.T) {
	repo := graph.NewEdgeRepository()
	for _, e := range []graph.Edge{
		{From: "a", To: "b"}, {From: "a", To: "c"}, {From: "a", To: "d"},
		{From: "b", To: "c"}, {From: "b", To: "d"}, {From: "c", To: "d"},
	} {
		repo.AddEdge(e)
	}

	pg := New([]graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}, repo.Edges())
	pg.powerNodeIndex = make(map[string]*PowerNode)
	pg.powerEdgeIndex = make(map[string]bool)

	abcd := cluster.New(core.NewSet("a", "b", "c", "d"), core.NewSet())
	candidate := PowerEdgeCandidate{From: abcd, To: abcd, Size: 3}

	next := pg.processCandidate(candidate)
	require.Empty(t, next)
	require.Len(t, pg.PowerEdges, 1)
	pe := pg.PowerEdges[0]
	require.Equal(t, "a-b-c-d", pe.From)
	require.Equal(t, pe.From, pe.To)
	require.Len(t, pg.PowerNodes, 1)
	require.Equal(t, "a-b-c-d", pg.PowerNodes[0].ID)
}

// TestDecompose_CompleteGraphCoversEveryEdge runs a full decomposition of
// K4: agglomeration never folds every node into one cluster (the
// penultimate merge always exhausts the surviving cluster's last
// neighbor), so the emitted power edges are a biclique between the
// 3-clique core and the last node plus raw fallback edges for the
// triangle's own internal edges — never a single self-loop. What holds
// regardless is full coverage of the original graph with no partial
// power-node overlap.
func TestDecompose_CompleteGraphCoversEveryEdge(t *testing.T) {
	nodes := []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []graph.Edge{
		{From: "a", To: "b"}, {From: "a", To: "c"}, {From: "a", To: "d"},
		{From: "b", To: "c"}, {From: "b", To: "d"}, {From: "c", To: "d"},
	}
	pg := New(nodes, edges)
	pg.Decompose()

	clusterByID := make(map[string]*cluster.Cluster)
	for _, pn := range pg.PowerNodes {
		clusterByID[pn.ID] = pn.Cluster
	}

	covered := make(map[graph.Edge]bool)
	for _, pe := range pg.PowerEdges {
		from, to := clusterByID[pe.From], clusterByID[pe.To]
		require.NotNil(t, from)
		require.NotNil(t, to)
		for _, u := range from.Items.Slice() {
			for _, v := range to.Items.Slice() {
				covered[graph.Edge{From: u, To: v}] = true
				covered[graph.Edge{From: v, To: u}] = true
			}
		}
	}
	for _, e := range edges {
		require.True(t, covered[e], "edge %+v not covered by any power edge", e)
	}
}

// TestDecompose_EmptyGraphIsNoop covers the empty-input edge case.
func TestDecompose_EmptyGraphIsNoop(t *testing.T) {
	pg := New(nil, nil)
	pg.Decompose()
	require.Equal(t, 0, pg.NodeCount())
	require.Equal(t, 0, pg.EdgeCount())
	require.Equal(t, 0.0, pg.CompressionRatio())
}

// TestResolveCoverageConflict_UnregisteredClusterPanics exercises the
// internal-lookup-miss invariant: a power edge referencing a cluster id
// absent from the repository is a programmer error, not a recoverable one.
func TestResolveCoverageConflict_UnregisteredClusterPanics(t *testing.T) {
	repo := graph.NewEdgeRepository()
	for _, e := range []graph.Edge{{From: "a", To: "b"}} {
		repo.AddEdge(e)
	}
	pg := New([]graph.Node{{ID: "a"}, {ID: "b"}}, repo.Edges())
	pg.powerNodeIndex = make(map[string]*PowerNode)
	pg.powerEdgeIndex = make(map[string]bool)
	pg.PowerEdges = append(pg.PowerEdges, &PowerEdge{From: "ghost-1", To: "ghost-2"})

	a := cluster.New(core.NewSet("a"), core.NewSet("b"))
	b := cluster.New(core.NewSet("b"), core.NewSet("a"))

	require.Panics(t, func() {
		pg.resolveCoverageConflict(a, b)
	})
}

// TestDecompose_TriangleWithPendantCoversEveryEdge is the coverage form
// of scenario S5's graph: nodes {a,b,c,d}, edges {(a,b),(a,c),(b,c),
// (b,d)}. Agglomeration merges {a,c} and then {a,c,d}, so no cluster
// holds the whole triangle a-b-c and it never reaches rule 5 as a 3-item
// self-candidate (a clique's size clears the degenerate-edge floor only
// at 4+ items); what the specification guarantees regardless is full
// edge coverage, which this test checks.
func TestDecompose_TriangleWithPendantCoversEveryEdge(t *testing.T) {
	nodes := []graph.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	edges := []graph.Edge{
		{From: "a", To: "b"}, {From: "a", To: "c"},
		{From: "b", To: "c"}, {From: "b", To: "d"},
	}
	pg := New(nodes, edges)
	pg.Decompose()

	clusterByID := make(map[string]*cluster.Cluster)
	for _, pn := range pg.PowerNodes {
		clusterByID[pn.ID] = pn.Cluster
	}

	covered := make(map[graph.Edge]bool)
	for _, pe := range pg.PowerEdges {
		from, to := clusterByID[pe.From], clusterByID[pe.To]
		require.NotNil(t, from)
		require.NotNil(t, to)
		for _, u := range from.Items.Slice() {
			for _, v := range to.Items.Slice() {
				covered[graph.Edge{From: u, To: v}] = true
				covered[graph.Edge{From: v, To: u}] = true
			}
		}
	}
	for _, e := range edges {
		require.True(t, covered[e], "edge %+v not covered by any power edge", e)
	}
}
