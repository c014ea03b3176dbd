package cluster

import "github.com/nicholasyager/dagview/core"

// Cluster is a pair of disjoint identifier sets: Items, the member nodes,
// and Neighbors, the union of in- and out-neighbors of Items in the source
// graph with Items subtracted out.
//
// Two clusters are equal iff their Items and Neighbors are equal; their ids
// then coincide. The id is a derived, stable function of Items alone:
// member identifiers sorted lexicographically and joined with "-".
type Cluster struct {
	Items     *core.Set
	Neighbors *core.Set
}

// New builds a Cluster from items and neighbors, re-establishing the
// Items ∩ Neighbors = ∅ invariant by subtracting items out of neighbors.
//
// Complexity: O(|neighbors|).
func New(items, neighbors *core.Set) *Cluster {
	return &Cluster{
		Items:     items.Clone(),
		Neighbors: neighbors.Difference(items),
	}
}

// Singleton builds the Cluster for a single node: Items = {id}, Neighbors =
// the given neighbor set (already exclusive of id by construction, but New
// re-establishes the invariant defensively regardless).
func Singleton(id string, neighbors *core.Set) *Cluster {
	return New(core.NewSet(id), neighbors)
}

// Size returns |Items|.
func (c *Cluster) Size() int {
	return c.Items.Len()
}

// ID returns the cluster's stable, deterministic identifier.
//
// Complexity: O(k log k), k = |Items|.
func (c *Cluster) ID() string {
	return c.Items.Key()
}

// Equal reports whether c and other have identical Items and Neighbors.
func (c *Cluster) Equal(other *Cluster) bool {
	if other == nil {
		return false
	}
	return c.Items.Equal(other.Items) && c.Neighbors.Equal(other.Neighbors)
}

// Merge returns the componentwise union of c and other: the union of their
// Items and the union of their Neighbors, with the invariant re-established
// by the New constructor.
func (c *Cluster) Merge(other *Cluster) *Cluster {
	return New(c.Items.Union(other.Items), c.Neighbors.Union(other.Neighbors))
}
