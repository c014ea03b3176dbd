package powergraph

import "github.com/nicholasyager/dagview/cluster"

// jaccard computes the similarity between clusters a and b as the Jaccard
// index over the union of their neighborhoods, excluding any node that is a
// member of either cluster:
//
//	J(A,B) = |(N_A ∩ N_B) \ (A.items ∪ B.items)| / |(N_A ∪ N_B) \ (A.items ∪ B.items)|
//
// The denominator is zero exactly when both neighborhoods are empty or
// wholly contained in the combined item set; in that case J is defined to
// be 0, never NaN.
func jaccard(a, b *cluster.Cluster) float64 {
	items := a.Items.Union(b.Items)
	union := a.Neighbors.Union(b.Neighbors).Difference(items)
	if union.Len() == 0 {
		return 0
	}
	inter := a.Neighbors.Intersection(b.Neighbors).Difference(items)
	return float64(inter.Len()) / float64(union.Len())
}
