package powergraph

import (
	"github.com/nicholasyager/dagview/cluster"
	"github.com/nicholasyager/dagview/core"
)

// expandNeighborhoods runs phase C: two sweeps over a snapshot of the
// cluster repository. For each cluster A, it builds A′ with items = A's
// neighbors and neighbors = the union of those neighbors' own
// parents/children, and keeps A′ only if J(A, A′) clears the threshold.
// The first sweep finds first-order neighborhoods; the second, run over
// the enlarged repository, finds second-order ones. Duplicates collapse
// via the repository's id-based de-duplication.
func (pg *PowerGraph) expandNeighborhoods() {
	threshold := pg.threshold()

	for sweep := 0; sweep < 2; sweep++ {
		snapshot := pg.clusters.All()
		for _, a := range snapshot {
			if a.Neighbors.Len() == 0 {
				continue
			}
			expanded := pg.buildExpansion(a)
			if jaccard(a, expanded) >= threshold {
				pg.clusters.Add(expanded)
			}
		}
	}
}

// buildExpansion constructs A′ for cluster a: items = a.Neighbors, and
// neighbors = the union of parents/children of every node in a.Neighbors.
func (pg *PowerGraph) buildExpansion(a *cluster.Cluster) *cluster.Cluster {
	expandedNeighbors := core.NewSet()
	for _, n := range a.Neighbors.Slice() {
		expandedNeighbors = expandedNeighbors.Union(pg.edges.Neighbors(n))
	}
	return cluster.New(a.Neighbors, expandedNeighbors)
}
