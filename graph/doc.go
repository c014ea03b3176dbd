// Package graph defines Node and Edge, the opaque source-graph primitives,
// and EdgeRepository, a directed adjacency store with subgraph extraction
// and neighbor queries.
//
// EdgeRepository never validates that an edge's endpoints were declared as
// Nodes: an edge referencing an unknown id is still indexed transparently,
// per the decomposition engine's "malformed input" policy.
package graph
