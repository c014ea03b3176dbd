package powergraph

import (
	"sort"

	"github.com/nicholasyager/dagview/cluster"
	"github.com/nicholasyager/dagview/core"
	"github.com/nicholasyager/dagview/similarity"
)

// agglomerate runs phase B: greedy hierarchical agglomeration of the
// working set by descending Jaccard similarity, stopping once the working
// set is exhausted or the best remaining similarity drops below the
// configured threshold. working is mutated in place; on return it holds
// whatever clusters were never merged away (it is discarded by the caller,
// since every interesting cluster — singleton or union — already lives in
// pg.clusters).
func (pg *PowerGraph) agglomerate(working map[string]*cluster.Cluster) {
	sim := similarity.NewMatrix()

	// Initial population: only pairs that share at least one neighbor.
	for _, id := range sortedKeys(working) {
		c := working[id]
		for _, sibling := range pg.clusters.SiblingClusters(c) {
			if _, ok := working[sibling.ID()]; !ok {
				continue
			}
			pair := core.NewUnorderedTuple(c.ID(), sibling.ID())
			sim.SetSimilarity(pair, jaccard(c, sibling))
		}
	}

	threshold := pg.threshold()

	for len(working) > 0 {
		pair, s, ok := sim.GetMaxSimilarity()
		if !ok || s < threshold {
			break
		}

		aID, bID := pair.One(), pair.Two()
		a, aOK := working[aID]
		b, bOK := working[bID]
		if !aOK || !bOK {
			// Stale entry referencing an already-merged cluster; drop it
			// and keep going rather than getting stuck.
			sim.RemoveElement(aID)
			sim.RemoveElement(bID)
			continue
		}

		delete(working, aID)
		delete(working, bID)
		sim.RemoveElement(aID)
		sim.RemoveElement(bID)

		union := a.Merge(b)
		pg.clusters.Add(union)
		working[union.ID()] = union

		for _, sibling := range pg.clusters.SiblingClusters(union) {
			if sibling.ID() == union.ID() {
				continue
			}
			if _, ok := working[sibling.ID()]; !ok {
				continue
			}
			pair := core.NewUnorderedTuple(union.ID(), sibling.ID())
			sim.SetSimilarity(pair, jaccard(union, sibling))
		}
	}
}

// sortedKeys returns the keys of m in lexicographic order, for
// deterministic iteration over the working set.
func sortedKeys(m map[string]*cluster.Cluster) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
