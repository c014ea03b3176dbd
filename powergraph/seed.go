package powergraph

import "github.com/nicholasyager/dagview/cluster"

// seedSingletons builds the singleton cluster C_n = ({n}, parents(n) ∪
// children(n)) for every input node and inserts each into the cluster
// repository. It returns the initial working set (C′) for phase B, keyed
// by cluster id.
func (pg *PowerGraph) seedSingletons() map[string]*cluster.Cluster {
	working := make(map[string]*cluster.Cluster, len(pg.nodes))
	for _, n := range pg.nodes {
		neighbors := pg.edges.Neighbors(n.ID)
		c := cluster.Singleton(n.ID, neighbors)
		pg.clusters.Add(c)
		working[c.ID()] = c
	}
	return working
}
