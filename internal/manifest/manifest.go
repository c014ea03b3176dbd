// Package manifest loads decomposition input from JSON and marshals
// decomposition output back to JSON. It is the only package in this module
// that touches encoding/json or io — the core packages (core, graph,
// cluster, similarity, powergraph) remain I/O-free.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nicholasyager/dagview/graph"
	"github.com/nicholasyager/dagview/powergraph"
)

// document is the on-disk shape of a decomposition input manifest: a map of
// node id to metadata, plus an adjacency list of edges.
type document struct {
	Nodes map[string]nodeMeta `json:"nodes"`
	Edges []edgeRef           `json:"edges"`
}

type nodeMeta struct {
	Data string `json:"data"`
}

type edgeRef struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Load reads a manifest document from r and returns the (nodes, edges) pair
// ready to hand to powergraph.New. Dangling edge references (an edge naming
// a node id absent from the nodes map) are passed through unchanged, per the
// engine's malformed-input policy: Load does not validate cross-references.
func Load(r io.Reader) (nodes []graph.Node, edges []graph.Edge, err error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("manifest: %w", err)
	}

	nodes = make([]graph.Node, 0, len(doc.Nodes))
	for id, meta := range doc.Nodes {
		nodes = append(nodes, graph.Node{ID: id, Data: meta.Data})
	}

	edges = make([]graph.Edge, 0, len(doc.Edges))
	for _, e := range doc.Edges {
		edges = append(edges, graph.Edge{From: e.From, To: e.To})
	}

	return nodes, edges, nil
}

// result is the on-disk shape of a decomposition output manifest.
type result struct {
	PowerNodes []powerNode `json:"power_nodes"`
	PowerEdges []powerEdge `json:"power_edges"`
}

type powerNode struct {
	ID    string   `json:"id"`
	Items []string `json:"items"`
}

type powerEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Write marshals pg's power nodes and power edges to w. Decompose must have
// already run; Write does not call it.
func Write(w io.Writer, pg *powergraph.PowerGraph, pretty bool) error {
	out := result{
		PowerNodes: make([]powerNode, 0, len(pg.PowerNodes)),
		PowerEdges: make([]powerEdge, 0, len(pg.PowerEdges)),
	}

	for _, pn := range pg.PowerNodes {
		out.PowerNodes = append(out.PowerNodes, powerNode{
			ID:    pn.ID,
			Items: pn.Cluster.Items.Slice(),
		})
	}
	for _, pe := range pg.PowerEdges {
		out.PowerEdges = append(out.PowerEdges, powerEdge{From: pe.From, To: pe.To})
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	return nil
}
