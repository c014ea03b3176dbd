package powergraph

import (
	"fmt"

	"github.com/nicholasyager/dagview/cluster"
	"github.com/nicholasyager/dagview/core"
	"github.com/nicholasyager/dagview/graph"
)

// synthesizePowerEdges runs phase D: every singleton cluster becomes a
// power node immediately, then the candidate worklist is generated and
// drained by the candidate processor until empty, and finally any original
// edge left uncovered by the emitted power edges is surfaced as a raw power
// edge between the corresponding singleton power nodes.
func (pg *PowerGraph) synthesizePowerEdges() {
	pg.powerNodeIndex = make(map[string]*PowerNode)
	pg.powerEdgeIndex = make(map[string]bool)

	for _, c := range pg.clusters.All() {
		if c.Size() == 1 {
			pg.registerPowerNode(c)
		}
	}

	q := newCandidateQueue()
	pg.generateCandidates(q)

	completed := make(map[string]bool)
	for q.Len() > 0 {
		candidate, ok := q.Pop()
		if !ok {
			break
		}
		key := candidate.key()
		if completed[key] {
			continue
		}
		completed[key] = true

		for _, next := range pg.processCandidate(candidate) {
			if !completed[next.key()] {
				q.Push(next)
			}
		}
	}

	pg.coverUncoveredEdges()
}

// registerPowerNode returns the PowerNode backed by c, creating and
// indexing one if this is the first time c's id has been seen.
func (pg *PowerGraph) registerPowerNode(c *cluster.Cluster) *PowerNode {
	if pn, ok := pg.powerNodeIndex[c.ID()]; ok {
		return pn
	}
	pg.clusters.Add(c)
	pn := &PowerNode{ID: c.ID(), Cluster: c}
	pg.powerNodeIndex[c.ID()] = pn
	pg.PowerNodes = append(pg.PowerNodes, pn)
	return pn
}

// registerPowerEdge records a power edge from → to, deduplicated on the
// ordered (from, to) pair.
func (pg *PowerGraph) registerPowerEdge(from, to string) {
	key := from + "\x00" + to
	if pg.powerEdgeIndex[key] {
		return
	}
	pg.powerEdgeIndex[key] = true
	pg.PowerEdges = append(pg.PowerEdges, &PowerEdge{From: from, To: to})
}

// processCandidate runs the six ordered candidate-processor rules against
// candidate, evaluated in order: the first matching rule terminates
// processing and either drops the candidate, emits derived candidates to
// requeue, or registers power nodes/edges directly. It returns any derived
// candidates that still need processing.
func (pg *PowerGraph) processCandidate(candidate PowerEdgeCandidate) []PowerEdgeCandidate {
	from, to := candidate.From, candidate.To

	// Rule 1: degenerate self-edge.
	if candidate.Size <= 2 && from.ID() == to.ID() {
		return nil
	}

	// Rule 2: partial overlap with an existing power node on the from side.
	if s, ok := pg.findPartialOverlap(from); ok {
		left := pg.deriveCluster(from.Items.Difference(s.Items))
		right := pg.deriveCluster(from.Items.Intersection(s.Items))
		return []PowerEdgeCandidate{
			derive(left, to),
			derive(right, to),
		}
	}

	// Rule 3: partial overlap with an existing power node on the to side.
	if s, ok := pg.findPartialOverlap(to); ok {
		left := pg.deriveCluster(to.Items.Difference(s.Items))
		right := pg.deriveCluster(to.Items.Intersection(s.Items))
		return []PowerEdgeCandidate{
			derive(from, left),
			derive(from, right),
		}
	}

	// Rule 4: edge-coverage conflict against an already-emitted power edge.
	if next, handled := pg.resolveCoverageConflict(from, to); handled {
		if next == nil {
			return nil
		}
		return []PowerEdgeCandidate{*next}
	}

	// Rule 5: clique.
	if from.ID() == to.ID() {
		pn := pg.registerPowerNode(from)
		pg.registerPowerEdge(pn.ID, pn.ID)
		return nil
	}

	// Rule 6: biclique.
	fromNode := pg.registerPowerNode(from)
	toNode := pg.registerPowerNode(to)
	pg.registerPowerEdge(fromNode.ID, toNode.ID)
	return nil
}

// derive builds a new candidate from the given from/to clusters, with Size
// recomputed as the heuristic sum of their sizes per the specification.
func derive(from, to *cluster.Cluster) PowerEdgeCandidate {
	return PowerEdgeCandidate{
		From: from,
		To:   to,
		Size: float32(from.Size() + to.Size()),
	}
}

// findPartialOverlap reports the first registered power node S whose items
// partially overlap c's items: they intersect, but neither is a subset of
// the other. Power nodes are scanned in registration order, which is
// deterministic given the deterministic candidate-processing order.
func (pg *PowerGraph) findPartialOverlap(c *cluster.Cluster) (*cluster.Cluster, bool) {
	for _, pn := range pg.PowerNodes {
		s := pn.Cluster
		if s.ID() == c.ID() {
			continue
		}
		inter := c.Items.Intersection(s.Items)
		if inter.Len() == 0 {
			continue
		}
		if c.Items.IsSubsetOf(s.Items) || s.Items.IsSubsetOf(c.Items) {
			continue
		}
		return s, true
	}
	return nil, false
}

// resolveCoverageConflict implements rule 4: it locates an already emitted
// power edge (S, T) whose induced subgraph intersects the candidate's. If
// the candidate's coverage is already a subset of that edge's, the
// candidate is fully redundant and dropped. Otherwise it is shrunk along
// whichever axis applies, or dropped if none applies. handled is true
// whenever rule 4 fired at all (including the drop cases, where the
// returned candidate is nil).
func (pg *PowerGraph) resolveCoverageConflict(from, to *cluster.Cluster) (next *PowerEdgeCandidate, handled bool) {
	candidateEdges := pg.inducedSubgraph(from.Items.Union(to.Items))
	if len(candidateEdges) == 0 {
		return nil, false
	}

	for _, pe := range pg.PowerEdges {
		s := pg.clusters.Get(pe.From)
		t := pg.clusters.Get(pe.To)
		if s == nil || t == nil {
			panic(fmt.Sprintf("powergraph: power edge %q -> %q references an unregistered cluster", pe.From, pe.To))
		}

		edgeItems := s.Items.Union(t.Items)
		conflictEdges := pg.inducedSubgraph(edgeItems)
		if !edgeSetsIntersect(candidateEdges, conflictEdges) {
			continue
		}

		if edgeSubsetOf(candidateEdges, conflictEdges) {
			// The candidate's coverage is already fully subsumed by the
			// existing power edge: nothing new to add.
			return nil, true
		}

		switch {
		case from.Items.IsProperSubsetOf(s.Items):
			c := derive(from, pg.deriveCluster(to.Items.Difference(t.Items)))
			return &c, true
		case from.Items.IsProperSubsetOf(t.Items):
			c := derive(from, pg.deriveCluster(to.Items.Difference(s.Items)))
			return &c, true
		case to.Items.IsProperSubsetOf(s.Items):
			c := derive(pg.deriveCluster(from.Items.Difference(t.Items)), to)
			return &c, true
		case to.Items.IsProperSubsetOf(t.Items):
			c := derive(pg.deriveCluster(from.Items.Difference(s.Items)), to)
			return &c, true
		default:
			return nil, true
		}
	}

	return nil, false
}

// inducedSubgraph returns the edges of the original graph with both
// endpoints in items, keyed for set-style comparison.
func (pg *PowerGraph) inducedSubgraph(items *core.Set) map[graph.Edge]bool {
	edges := pg.edges.Subgraph(items)
	out := make(map[graph.Edge]bool, len(edges))
	for _, e := range edges {
		out[e] = true
	}
	return out
}

func edgeSetsIntersect(a, b map[graph.Edge]bool) bool {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for e := range small {
		if big[e] {
			return true
		}
	}
	return false
}

func edgeSubsetOf(a, b map[graph.Edge]bool) bool {
	for e := range a {
		if !b[e] {
			return false
		}
	}
	return true
}

// coverUncoveredEdges implements the uncovered-edge fallback: after the
// worklist drains, every original edge not covered by the cartesian
// product of any emitted power edge's endpoints is surfaced directly,
// referencing the singleton power nodes for its endpoints. An endpoint that
// was not among the input nodes has no singleton power node, and the raw
// edge still names its id.
func (pg *PowerGraph) coverUncoveredEdges() {
	covered := make(map[graph.Edge]bool)
	for _, pe := range pg.PowerEdges {
		s := pg.clusters.Get(pe.From)
		t := pg.clusters.Get(pe.To)
		if s == nil || t == nil {
			panic(fmt.Sprintf("powergraph: power edge %q -> %q references an unregistered cluster", pe.From, pe.To))
		}
		for _, u := range s.Items.Slice() {
			for _, v := range t.Items.Slice() {
				covered[graph.Edge{From: u, To: v}] = true
				covered[graph.Edge{From: v, To: u}] = true
			}
		}
	}

	for _, e := range pg.edges.Edges() {
		if covered[e] {
			continue
		}
		pg.registerPowerEdge(e.From, e.To)
		covered[e] = true
		covered[graph.Edge{From: e.To, To: e.From}] = true
	}
}
