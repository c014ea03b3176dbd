package graph

import (
	"sort"

	"github.com/nicholasyager/dagview/core"
)

// EdgeRepository stores directed edges and exposes forward/reverse
// adjacency queries and subgraph extraction. It is built once from a
// driver's (nodes, edges) input and is read-only for the remainder of a
// decomposition.
//
// Complexity: AddEdge is O(1) amortized; Children/Parents are O(1) lookup
// plus O(k) to materialize the neighbor set.
type EdgeRepository struct {
	childMap map[string]*core.Set // from → set of to
	parentMap map[string]*core.Set // to → set of from
	edgeCount int
}

// NewEdgeRepository builds an empty repository.
func NewEdgeRepository() *EdgeRepository {
	return &EdgeRepository{
		childMap:  make(map[string]*core.Set),
		parentMap: make(map[string]*core.Set),
	}
}

// AddEdge inserts e into both the forward (child) and reverse (parent)
// adjacency indices. Unknown endpoints are indexed transparently: the
// repository never validates that From/To were declared as Nodes.
//
// Complexity: O(1) amortized.
func (r *EdgeRepository) AddEdge(e Edge) {
	if _, ok := r.childMap[e.From]; !ok {
		r.childMap[e.From] = core.NewSet()
	}
	if !r.childMap[e.From].Contains(e.To) {
		r.edgeCount++
	}
	r.childMap[e.From].Insert(e.To)

	if _, ok := r.parentMap[e.To]; !ok {
		r.parentMap[e.To] = core.NewSet()
	}
	r.parentMap[e.To].Insert(e.From)
}

// GetEdge reports whether a directed edge from → to exists.
//
// Complexity: O(1).
func (r *EdgeRepository) GetEdge(from, to string) bool {
	children, ok := r.childMap[from]
	if !ok {
		return false
	}
	return children.Contains(to)
}

// Children returns the set of nodes that n has an outgoing edge to. Empty
// if n is absent or has no outgoing edges.
//
// Complexity: O(k) to clone the result, k = out-degree of n.
func (r *EdgeRepository) Children(n string) *core.Set {
	if s, ok := r.childMap[n]; ok {
		return s.Clone()
	}
	return core.NewSet()
}

// Parents returns the set of nodes that have an outgoing edge to n. Empty
// if n is absent or has no incoming edges.
//
// Complexity: O(k) to clone the result, k = in-degree of n.
func (r *EdgeRepository) Parents(n string) *core.Set {
	if s, ok := r.parentMap[n]; ok {
		return s.Clone()
	}
	return core.NewSet()
}

// Neighbors returns Children(n) ∪ Parents(n).
//
// Complexity: O(in-degree + out-degree).
func (r *EdgeRepository) Neighbors(n string) *core.Set {
	return r.Children(n).Union(r.Parents(n))
}

// Subgraph returns every edge (u, v) in the repository with both endpoints
// in nodes. The order of the returned slice is deterministic (sorted by
// From, then To) but is not otherwise part of the contract.
//
// Complexity: O(|nodes| · avg out-degree).
func (r *EdgeRepository) Subgraph(nodes *core.Set) []Edge {
	var out []Edge
	for _, from := range nodes.Slice() {
		children, ok := r.childMap[from]
		if !ok {
			continue
		}
		for _, to := range children.Slice() {
			if nodes.Contains(to) {
				out = append(out, Edge{From: from, To: to})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Edges returns every edge stored in the repository. Order is deterministic
// (sorted by From, then To) but not otherwise part of the contract.
//
// Complexity: O(E).
func (r *EdgeRepository) Edges() []Edge {
	var out []Edge
	for from, children := range r.childMap {
		for _, to := range children.Slice() {
			out = append(out, Edge{From: from, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// Len returns the number of distinct directed edges stored.
//
// Complexity: O(1).
func (r *EdgeRepository) Len() int {
	return r.edgeCount
}

// HasDirectEdge reports whether either orientation of (u, v) exists — used
// by the engine's biclique/clique predicates, which treat the underlying
// graph as effectively undirected for coverage purposes.
//
// Complexity: O(1).
func (r *EdgeRepository) HasDirectEdge(u, v string) bool {
	return r.GetEdge(u, v) || r.GetEdge(v, u)
}
