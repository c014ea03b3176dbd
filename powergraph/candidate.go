package powergraph

import (
	"github.com/nicholasyager/dagview/cluster"
	"github.com/nicholasyager/dagview/core"
	"github.com/nicholasyager/dagview/graph"
)

// generateCandidates scans every unordered pair of clusters in the
// repository, including a cluster paired with itself, and pushes a
// PowerEdgeCandidate for each pair whose members form a biclique (disjoint
// item sets, every cross edge present) or whose single cluster forms a
// clique (every distinct pair of members connected).
func (pg *PowerGraph) generateCandidates(q *candidateQueue) {
	all := pg.clusters.All()

	for i, x := range all {
		for j := i; j < len(all); j++ {
			y := all[j]

			if x.ID() == y.ID() {
				if isClique(pg.edges, x) {
					q.Push(PowerEdgeCandidate{
						From: x,
						To:   x,
						Size: float32(len(pg.edges.Subgraph(x.Items))) / 2,
					})
				}
				continue
			}

			if isBiclique(pg.edges, x, y) {
				union := x.Items.Union(y.Items)
				q.Push(PowerEdgeCandidate{
					From: x,
					To:   y,
					Size: float32(len(pg.edges.Subgraph(union))),
				})
			}
		}
	}
}

// isBiclique reports whether x and y have disjoint item sets and every
// cross pair (u ∈ x.Items, w ∈ y.Items) is connected by an edge in either
// direction.
func isBiclique(edges *graph.EdgeRepository, x, y *cluster.Cluster) bool {
	if x.Items.Intersection(y.Items).Len() != 0 {
		return false
	}
	for _, u := range x.Items.Slice() {
		for _, w := range y.Items.Slice() {
			if !edges.HasDirectEdge(u, w) {
				return false
			}
		}
	}
	return true
}

// isClique reports whether every distinct pair of members of x is
// connected by an edge in either direction.
func isClique(edges *graph.EdgeRepository, x *cluster.Cluster) bool {
	items := x.Items.Slice()
	for i := range items {
		for j := i + 1; j < len(items); j++ {
			if !edges.HasDirectEdge(items[i], items[j]) {
				return false
			}
		}
	}
	return true
}

// deriveCluster rebuilds a cluster for an ad hoc item subset produced by
// splitting or shrinking a candidate, recomputing neighbors from the
// original edge repository and registering it in the cluster repository.
func (pg *PowerGraph) deriveCluster(items *core.Set) *cluster.Cluster {
	neighbors := core.NewSet()
	for _, n := range items.Slice() {
		neighbors = neighbors.Union(pg.edges.Neighbors(n))
	}
	c := cluster.New(items, neighbors)
	pg.clusters.Add(c)
	return c
}
