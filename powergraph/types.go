package powergraph

import (
	"fmt"

	"github.com/nicholasyager/dagview/cluster"
)

// PowerNode is a named group of original nodes treated as a unit in the
// compressed graph. Its id is always its backing cluster's id, and that
// cluster is always present in the engine's cluster repository.
type PowerNode struct {
	ID      string
	Cluster *cluster.Cluster
}

// PowerEdge is a directed connection between two power node ids. A power
// edge (s, s) denotes a clique on the members of power node s; otherwise it
// denotes a biclique between the two power nodes' members.
type PowerEdge struct {
	From string
	To   string
}

// PowerEdgeCandidate is a pending power-edge decision: From and To are the
// clusters under consideration, and Size is the heuristic priority used to
// order the worklist — not a precise edge count.
type PowerEdgeCandidate struct {
	From *cluster.Cluster
	To   *cluster.Cluster
	Size float32
}

// Equal reports whether c and other denote the same candidate, per the
// specification's (from, to, size) equality.
func (c PowerEdgeCandidate) Equal(other PowerEdgeCandidate) bool {
	return c.From.ID() == other.From.ID() && c.To.ID() == other.To.ID() && c.Size == other.Size
}

// key returns a stable digest used to dedupe candidates in the `completed`
// set, per the specification's (from, to, size) equality.
func (c PowerEdgeCandidate) key() string {
	return fmt.Sprintf("%s|%s|%.6f", c.From.ID(), c.To.ID(), c.Size)
}
