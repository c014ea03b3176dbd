// Package dagview compresses a directed graph into a power graph: an
// equivalent but more compact representation in which groups of nodes
// sharing identical connectivity are replaced by a single power node, and
// uniformly wired groups of edges between such groups are replaced by a
// single power edge.
//
// The package is organized as a handful of small, focused packages under
// this module:
//
//	core/        — Set and UnorderedTuple, the foundational containers
//	graph/       — Node, Edge and the directed EdgeRepository adjacency store
//	cluster/     — Cluster and the Repository overlap/neighbor index
//	similarity/  — Matrix, a max-similarity structure over cluster pairs
//	powergraph/  — the PowerGraph decomposition engine itself
//
// Manifest loading, CLI argument handling, and result serialization live
// outside the core under internal/manifest and cmd/dagview; the core
// packages do no I/O and are safe to embed in any driver.
//
//	go get github.com/nicholasyager/dagview
package dagview
