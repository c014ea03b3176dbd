package cluster

import (
	"sort"

	"github.com/nicholasyager/dagview/core"
)

// Repository owns Clusters keyed by their stable id, and maintains two
// auxiliary indices used by the decomposition engine:
//
//   - overlaps: for every ordered pair (new cluster, existing cluster)
//     whose Items interact, the OverlapType between them.
//   - nodeClusterNeighbors: node id → set of ids of clusters that have
//     that node in their Neighbors. This is what makes
//     GetSiblingClusters cheap: it need only visit c.Neighbors, not every
//     stored cluster.
type Repository struct {
	clusters map[string]*Cluster

	overlaps map[string]map[string]OverlapType

	nodeClusterNeighbors map[string]*core.Set // node id -> set of cluster ids
}

// NewRepository builds an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		clusters:             make(map[string]*Cluster),
		overlaps:             make(map[string]map[string]OverlapType),
		nodeClusterNeighbors: make(map[string]*core.Set),
	}
}

// Add inserts c keyed by c.ID(), recomputes its overlap against every
// stored cluster (c itself included, which records Equal under its own
// id), and indexes c's Neighbors into the
// node→cluster-neighbor map. Re-adding a cluster with an id already present
// is a no-op (invariant 3: no two distinct keys map to identical clusters,
// and equal Items always produce the same id).
//
// Complexity: O(k) where k is the number of currently stored clusters, plus
// O(|c.Neighbors|) for the neighbor index update.
func (r *Repository) Add(c *Cluster) {
	id := c.ID()
	if _, exists := r.clusters[id]; exists {
		return
	}
	r.clusters[id] = c

	pairOverlaps := make(map[string]OverlapType)
	for existingID, existing := range r.clusters {
		if ot, interacts := overlapOf(c, existing); interacts {
			pairOverlaps[existingID] = ot
		}
	}
	if len(pairOverlaps) > 0 {
		r.overlaps[id] = pairOverlaps
	}

	for _, n := range c.Neighbors.Slice() {
		if _, ok := r.nodeClusterNeighbors[n]; !ok {
			r.nodeClusterNeighbors[n] = core.NewSet()
		}
		r.nodeClusterNeighbors[n].Insert(id)
	}
}

// overlapOf classifies newC.Items relative to existingC.Items. ok is false
// when the two Items sets are disjoint (no interaction to record).
func overlapOf(newC, existingC *Cluster) (ot OverlapType, ok bool) {
	if newC.Items.Equal(existingC.Items) {
		return Equal, true
	}
	inter := newC.Items.Intersection(existingC.Items)
	if inter.Len() == 0 {
		return 0, false
	}
	if newC.Items.IsProperSubsetOf(existingC.Items) {
		return Subset, true
	}
	return Partial, true
}

// Get returns the cluster stored under id, or nil if absent.
func (r *Repository) Get(id string) *Cluster {
	return r.clusters[id]
}

// Len returns the number of distinct clusters currently stored.
func (r *Repository) Len() int {
	return len(r.clusters)
}

// Overlap returns the recorded OverlapType of the cluster stored as newID
// relative to existingID, as computed when newID was Add-ed.
func (r *Repository) Overlap(newID, existingID string) (OverlapType, bool) {
	m, ok := r.overlaps[newID]
	if !ok {
		return 0, false
	}
	ot, ok := m[existingID]
	return ot, ok
}

// Remove deletes the cluster stored under id: its overlap entries, its
// node→cluster-neighbor registrations, and the cluster itself.
//
// Complexity: O(k + n), k = stored clusters (to scrub reverse overlap
// references), n = size of the removed cluster's Neighbors.
func (r *Repository) Remove(id string) {
	c, ok := r.clusters[id]
	if !ok {
		return
	}
	delete(r.clusters, id)
	delete(r.overlaps, id)
	for _, m := range r.overlaps {
		delete(m, id)
	}
	for _, n := range c.Neighbors.Slice() {
		if set, ok := r.nodeClusterNeighbors[n]; ok {
			*set = *removeFromSet(set, id)
		}
	}
}

// removeFromSet returns a copy of s with id removed, since core.Set has no
// in-place removal (its algebra is pure by design).
func removeFromSet(s *core.Set, id string) *core.Set {
	return s.Difference(core.NewSet(id))
}

// SiblingClusters returns the set of stored clusters X (X != c) such that
// some n ∈ c.Neighbors has X registered in the node→cluster-neighbor
// index — i.e. clusters reachable from c via a shared neighbor. The result
// is sorted by cluster id for deterministic iteration downstream.
//
// Complexity: O(Σ |neighbors|) as documented by the specification, versus
// O(k) for a naive scan of every stored cluster.
func (r *Repository) SiblingClusters(c *Cluster) []*Cluster {
	seen := core.NewSet()
	for _, n := range c.Neighbors.Slice() {
		if ids, ok := r.nodeClusterNeighbors[n]; ok {
			for _, id := range ids.Slice() {
				seen.Insert(id)
			}
		}
	}
	seen = seen.Difference(core.NewSet(c.ID()))

	ids := seen.Slice()
	sort.Strings(ids)
	out := make([]*Cluster, 0, len(ids))
	for _, id := range ids {
		if cl := r.clusters[id]; cl != nil {
			out = append(out, cl)
		}
	}
	return out
}

// All returns every stored cluster, sorted by id for deterministic
// iteration.
func (r *Repository) All() []*Cluster {
	ids := make([]string, 0, len(r.clusters))
	for id := range r.clusters {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*Cluster, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.clusters[id])
	}
	return out
}
